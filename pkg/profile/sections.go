package profile

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/folio/pkg/errors"
)

// Section is one entry of the sections mapping. Orders of zero or less
// hide the section.
type Section struct {
	Name  string
	Order int
}

// Sections is the ordered sections mapping. A malformed mapping decodes
// without error into an empty value whose Err reports the problem.
type Sections struct {
	list     []Section
	declared bool
	err      error
}

// NewSections builds a mapping from entries in declaration order.
func NewSections(entries ...Section) Sections {
	s := Sections{declared: true}
	for _, e := range entries {
		if !s.add(e.Name, e.Order) {
			break
		}
	}
	return s
}

// All returns every entry in declaration order, including hidden ones.
func (s Sections) All() []Section { return slices.Clone(s.list) }

// Declared reports whether the document contained a sections mapping.
func (s Sections) Declared() bool { return s.declared }

// Err returns the reason the mapping was discarded, if any.
func (s Sections) Err() error { return s.err }

// Active returns the names with a positive order, sorted ascending by order.
// Equal orders keep declaration order.
func (s Sections) Active() []string {
	var active []Section
	for _, e := range s.list {
		if e.Order > 0 {
			active = append(active, e)
		}
	}
	slices.SortStableFunc(active, func(a, b Section) int { return cmp.Compare(a.Order, b.Order) })

	names := make([]string, len(active))
	for i, e := range active {
		names[i] = e.Name
	}
	return names
}

func (s *Sections) add(name string, order int) bool {
	if slices.ContainsFunc(s.list, func(e Section) bool { return e.Name == name }) {
		s.fail("duplicate section %q", name)
		return false
	}
	s.list = append(s.list, Section{Name: name, Order: order})
	return true
}

func (s *Sections) fail(format string, args ...any) {
	s.list = nil
	s.err = errors.New(errors.ErrCodeInvalidSections, format, args...)
}

// UnmarshalYAML walks the mapping node so declaration order survives.
func (s *Sections) UnmarshalYAML(n *yaml.Node) error {
	*s = Sections{}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil
	}
	s.declared = true
	if n.Kind != yaml.MappingNode {
		s.fail("sections must be a mapping of name to order (line %d)", n.Line)
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode || v.Tag != "!!int" {
			s.fail("section %q: order must be an integer (line %d)", k.Value, v.Line)
			return nil
		}
		var order int
		if err := v.Decode(&order); err != nil {
			s.fail("section %q: %v", k.Value, err)
			return nil
		}
		if !s.add(k.Value, order) {
			return nil
		}
	}
	return nil
}

// UnmarshalJSON streams the object tokens so declaration order survives.
func (s *Sections) UnmarshalJSON(data []byte) error {
	*s = Sections{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	s.declared = true

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		s.fail("sections must be an object of name to order")
		return nil
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			s.fail("sections: %v", err)
			return nil
		}
		name, _ := tok.(string)
		tok, err = dec.Token()
		if err != nil {
			s.fail("sections: %v", err)
			return nil
		}
		num, ok := tok.(json.Number)
		if !ok {
			s.fail("section %q: order must be an integer", name)
			return nil
		}
		order, err := num.Int64()
		if err != nil {
			s.fail("section %q: order must be an integer", name)
			return nil
		}
		if !s.add(name, int(order)) {
			return nil
		}
	}
	return nil
}

// UnmarshalTOML receives the table as a map, so it yields entries sorted by
// name. The decoder then restores declaration order with orderBy.
func (s *Sections) UnmarshalTOML(v any) error {
	*s = Sections{declared: true}
	table, ok := v.(map[string]any)
	if !ok {
		s.fail("sections must be a table of name to order")
		return nil
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		order, ok := table[name].(int64)
		if !ok {
			s.fail("section %q: order must be an integer", name)
			return nil
		}
		s.list = append(s.list, Section{Name: name, Order: int(order)})
	}
	return nil
}

// orderBy sorts the entries to follow names. Entries not named keep their
// relative position at the end.
func (s *Sections) orderBy(names []string) {
	pos := make(map[string]int, len(names))
	for i, n := range names {
		pos[n] = i
	}
	rank := func(e Section) int {
		if p, ok := pos[e.Name]; ok {
			return p
		}
		return len(names)
	}
	slices.SortStableFunc(s.list, func(a, b Section) int { return cmp.Compare(rank(a), rank(b)) })
}

// String renders the mapping for debugging.
func (s Sections) String() string {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range s.list {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%d", e.Name, e.Order)
	}
	b.WriteByte('}')
	return b.String()
}
