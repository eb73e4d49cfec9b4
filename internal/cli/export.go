package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/render/resume"
	"github.com/matzehuels/folio/pkg/theme"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output  string
	formats []resume.Format
	theme   string
	all     bool
	noStars bool
	scale   float64
}

func (c *CLI) exportCommand() *cobra.Command {
	var formatsStr string
	opts := exportOpts{scale: 2}

	cmd := &cobra.Command{
		Use:   "export [config]",
		Short: "Export the portfolio as a resume",
		Long: `Export the portfolio as a single-page resume.

The document's meta.resumeExport.sections decides which parts are included;
--all includes everything. PDF and PNG need rsvg-convert on PATH.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(formatsStr)
			if err != nil {
				return err
			}
			opts.formats = formats
			return c.runExport(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), svg, txt, pdf, png (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme ID (default: the document's current theme)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "include every part regardless of export settings")
	cmd.Flags().BoolVar(&opts.noStars, "no-stars", false, "skip GitHub star lookups")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	return cmd
}

// parseFormats parses the --format flag. An empty flag means html.
func parseFormats(s string) ([]resume.Format, error) {
	if s == "" {
		return []resume.Format{resume.FormatHTML}, nil
	}
	var formats []resume.Format
	for _, name := range strings.Split(s, ",") {
		f, err := resume.ParseFormat(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// basePath derives the base output path. With no output it is the document
// path without extension plus "-resume"; a known format extension on output
// is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input)) + "-resume"
	}
	ext := filepath.Ext(output)
	if _, err := resume.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil && ext != "" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath names the file for format f.
func outputPath(output, input string, f resume.Format, multiple bool) string {
	if output != "" && !multiple {
		return output
	}
	return basePath(output, input) + f.Ext()
}

func (c *CLI) runExport(ctx context.Context, args []string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	doc, err := c.loadDocument(ctx, args)
	if err != nil {
		return err
	}
	if !doc.Meta.ResumeExport.Enabled {
		logger.Debug("resume export is disabled in the document; exporting on request")
	}
	if opts.output == "-" && len(opts.formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "stdout output takes a single format")
	}

	t, err := resolveTheme(ctx, doc.Themes, opts.theme)
	if err != nil {
		return err
	}

	var stars map[string]int
	if !opts.noStars && len(doc.Projects) > 0 {
		store := c.openCache(ctx, false)
		defer store.Close()
		starsCtx, cancel := context.WithTimeout(ctx, starsTimeout)
		stars = c.fetchStars(starsCtx, doc, store, false)
		cancel()
	}

	ropts := resume.Options{Theme: t, Stars: stars, All: opts.all, Scale: opts.scale}
	input := c.documentPath(args)
	multiple := len(opts.formats) > 1
	failed := 0
	for _, f := range opts.formats {
		prog := newProgress(logger)
		data, err := resume.Render(ctx, doc, f, ropts)
		if err != nil {
			if !multiple {
				return fmt.Errorf("%s: %w", f, err)
			}
			printError("%s: %s", f, errors.UserMessage(err))
			failed++
			continue
		}
		if opts.output == "-" {
			_, err := os.Stdout.Write(data)
			return err
		}
		path := outputPath(opts.output, input, f, multiple)
		if err := writeFile(path, data); err != nil {
			return err
		}
		prog.done("Rendered " + string(f))
		printFile(path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d formats failed", failed, len(opts.formats))
	}
	return nil
}

// resolveTheme picks id from cfg, or cfg's current theme when id is empty.
func resolveTheme(ctx context.Context, cfg theme.Config, id string) (theme.Theme, error) {
	sw := theme.NewSwitch(ctx, cfg, nil)
	if id == "" {
		return sw.Current(), nil
	}
	t, ok := theme.Find(sw.Available(), id)
	if !ok {
		return theme.Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", id)
	}
	return t, nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput opens path for writing, or stdout when path is empty or "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
