package profile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/folio/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported document type %q (want .yaml, .toml or .json)", filepath.Ext(path))
}

// Load reads and parses the document at path. An intro naming a markdown
// file is read relative to the document's directory.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "portfolio %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	doc.resolveIntro(filepath.Dir(path))
	return doc, nil
}

// Parse decodes a document without touching the filesystem. Intro content
// that names a markdown file is left unresolved.
func Parse(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
		}
		var names []string
		for _, k := range md.Keys() {
			if len(k) == 2 && k[0] == "sections" {
				names = append(names, k[1])
			}
		}
		doc.Sections.orderBy(names)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}

	if len(doc.Profile.Links) == 0 && len(doc.Profile.SocialMedia) > 0 {
		doc.Profile.Links = doc.Profile.SocialMedia
	}
	doc.Profile.SocialMedia = nil

	if !isIntroFile(doc.Intro.Content) {
		doc.Intro.Markdown = doc.Intro.Content
	}
	doc.Warnings = append(doc.Warnings, doc.Validate()...)
	return doc, nil
}

// isIntroFile reports whether content looks like a markdown file name
// rather than inline markdown.
func isIntroFile(content string) bool {
	if content == "" || strings.ContainsAny(content, "\n") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(content))
	return ext == ".md" || ext == ".markdown"
}

func (d *Document) resolveIntro(dir string) {
	name := d.Intro.Content
	if !isIntroFile(name) {
		return
	}
	if err := errors.ValidatePath(name); err != nil {
		d.Warnings = append(d.Warnings, err)
		return
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		d.Warnings = append(d.Warnings, errors.Wrap(errors.ErrCodeFileNotFound, err, "intro %s", name))
		return
	}
	d.Intro.Markdown = string(data)
}
