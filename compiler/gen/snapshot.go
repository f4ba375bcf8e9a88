package gen

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Snapshot formats.
const (
	FormatYAML    = "yaml"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

type (
	// Snapshot is a serializable description of a graph.
	Snapshot struct {
		Quantities []QuantitySnapshot `json:"quantities" yaml:"quantities" msgpack:"quantities"`
		Edges      []EdgeSnapshot     `json:"edges" yaml:"edges" msgpack:"edges"`
	}

	// QuantitySnapshot describes a quantity type.
	QuantitySnapshot struct {
		Name      string         `json:"name" yaml:"name" msgpack:"name"`
		Label     string         `json:"label" yaml:"label" msgpack:"label"`
		Category  string         `json:"category" yaml:"category" msgpack:"category"`
		Dimension string         `json:"dimension" yaml:"dimension" msgpack:"dimension"`
		Field     string         `json:"field" yaml:"field" msgpack:"field"`
		Inverse   string         `json:"inverse,omitempty" yaml:"inverse,omitempty" msgpack:"inverse,omitempty"`
		Units     []UnitSnapshot `json:"units" yaml:"units" msgpack:"units"`
	}

	// UnitSnapshot describes a unit.
	UnitSnapshot struct {
		Name   string  `json:"name" yaml:"name" msgpack:"name"`
		Symbol string  `json:"symbol" yaml:"symbol" msgpack:"symbol"`
		Slope  float64 `json:"slope" yaml:"slope" msgpack:"slope"`
		Offset float64 `json:"offset,omitempty" yaml:"offset,omitempty" msgpack:"offset,omitempty"`
		Kind   string  `json:"kind" yaml:"kind" msgpack:"kind"`
	}

	// EdgeSnapshot describes a conversion edge.
	EdgeSnapshot struct {
		Left   string `json:"left" yaml:"left" msgpack:"left"`
		Op     string `json:"op" yaml:"op" msgpack:"op"`
		Right  string `json:"right" yaml:"right" msgpack:"right"`
		Result string `json:"result" yaml:"result" msgpack:"result"`
		Source string `json:"source" yaml:"source" msgpack:"source"`
	}
)

// Snapshot returns the snapshot of the graph. Quantities are in table
// order, edges in the order they were added.
func (g *Graph) Snapshot() *Snapshot {
	s := &Snapshot{}
	for _, t := range g.Nodes {
		q := QuantitySnapshot{
			Name:      t.Name,
			Label:     t.Label,
			Category:  t.Category,
			Dimension: t.Dimension.String(),
			Field:     t.Field,
		}
		if t.Inverse != nil {
			q.Inverse = t.Inverse.Name
		}
		for _, u := range t.Units {
			q.Units = append(q.Units, UnitSnapshot{
				Name:   u.Name,
				Symbol: u.Symbol,
				Slope:  u.Slope,
				Offset: u.Offset,
				Kind:   u.Kind.String(),
			})
		}
		s.Quantities = append(s.Quantities, q)
	}
	for _, e := range g.order {
		s.Edges = append(s.Edges, EdgeSnapshot{
			Left:   e.Left.Name,
			Op:     e.Op.String(),
			Right:  e.Right.Name,
			Result: e.Result.Name,
			Source: e.Source,
		})
	}
	return s
}

// Encode writes the snapshot to w in the given format.
func (s *Snapshot) Encode(w io.Writer, format string) error {
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(s)
	default:
		return NewConfigError("Format", format, fmt.Sprintf("expect one of %s, %s or %s", FormatYAML, FormatJSON, FormatMsgpack))
	}
}

// DecodeSnapshot reads a snapshot in the given format from r.
func DecodeSnapshot(r io.Reader, format string) (*Snapshot, error) {
	s := &Snapshot{}
	var err error
	switch format {
	case FormatYAML, "":
		err = yaml.NewDecoder(r).Decode(s)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(s)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(s)
	default:
		return nil, NewConfigError("Format", format, fmt.Sprintf("expect one of %s, %s or %s", FormatYAML, FormatJSON, FormatMsgpack))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s snapshot: %w", format, err)
	}
	return s, nil
}

// Diff lists the edges of s missing from other, prefixed with "- ", then
// the edges of other missing from s, prefixed with "+ ". An empty result
// means both snapshots hold the same edges.
func (s *Snapshot) Diff(other *Snapshot) []string {
	key := func(e EdgeSnapshot) string {
		return fmt.Sprintf("%s %s %s = %s", e.Left, e.Op, e.Right, e.Result)
	}
	in := func(edges []EdgeSnapshot) map[string]bool {
		m := make(map[string]bool, len(edges))
		for _, e := range edges {
			m[key(e)] = true
		}
		return m
	}
	mine, theirs := in(s.Edges), in(other.Edges)
	var diff []string
	for _, e := range s.Edges {
		if k := key(e); !theirs[k] {
			diff = append(diff, "- "+k)
		}
	}
	for _, e := range other.Edges {
		if k := key(e); !mine[k] {
			diff = append(diff, "+ "+k)
		}
	}
	return diff
}
