// Package report renders the output of a run. The text format is the
// canonical line-oriented console output; json and yaml emit the same data
// as a single document.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/nodelist/pkg/types"
)

// Format selects how a Writer renders a run.
type Format string

// Supported formats.
const (
	FormatText Format = types.OutputText
	FormatJSON Format = types.OutputJSON
	FormatYAML Format = types.OutputYAML
)

// ParseFormat maps an output name to a Format.
// Returns types.ErrOutputUnknown for anything else.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", types.ErrOutputUnknown, s)
}

// Perms is the structured form of a node's permission flags.
type Perms struct {
	R uint8 `json:"r" yaml:"r"`
	W uint8 `json:"w" yaml:"w"`
	X uint8 `json:"x" yaml:"x"`
}

// NodeRecord is the structured form of one node.
type NodeRecord struct {
	ID    int32  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Value int32  `json:"value" yaml:"value"`
	Perms Perms  `json:"perms" yaml:"perms"`
}

// Document is what the json and yaml formats emit.
type Document struct {
	Numbers []int        `json:"numbers" yaml:"numbers"`
	Nodes   []NodeRecord `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

// Record converts a node to its structured form.
func Record(n types.Node) NodeRecord {
	return NodeRecord{
		ID:    n.ID,
		Name:  n.Name,
		Value: n.Value.Int32(),
		Perms: Perms{
			R: n.Perms.Bit(types.PermReadable),
			W: n.Perms.Bit(types.PermWritable),
			X: n.Perms.Bit(types.PermExecutable),
		},
	}
}

// WriteNumber writes one "numbers[i] = v" line.
func WriteNumber(w io.Writer, i, v int) error {
	_, err := fmt.Fprintf(w, "numbers[%d] = %d\n", i, v)
	return err
}

// WriteNode writes one canonical node line.
func WriteNode(w io.Writer, n types.Node) error {
	r := Record(n)
	_, err := fmt.Fprintf(w, "Node{id=%d, name=%s, value=%d, perms=[r:%d w:%d x:%d]}\n",
		r.ID, r.Name, r.Value, r.Perms.R, r.Perms.W, r.Perms.X)
	return err
}

// Writer renders a run in one Format. Text output is streamed as it is
// produced; structured formats buffer until Flush.
type Writer struct {
	out    io.Writer
	format Format
	doc    Document
}

// NewWriter returns a Writer that renders to out.
func NewWriter(out io.Writer, format Format) *Writer {
	return &Writer{out: out, format: format, doc: Document{Numbers: []int{}}}
}

// Numbers records the sorted array.
func (w *Writer) Numbers(ints []int) error {
	if w.format != FormatText {
		w.doc.Numbers = append(w.doc.Numbers, ints...)
		return nil
	}
	for i, v := range ints {
		if err := WriteNumber(w.out, i, v); err != nil {
			return err
		}
	}
	return nil
}

// Node records one list node.
func (w *Writer) Node(n types.Node) error {
	if w.format != FormatText {
		w.doc.Nodes = append(w.doc.Nodes, Record(n))
		return nil
	}
	return WriteNode(w.out, n)
}

// Flush emits the buffered document for structured formats. It is a no-op
// for text.
func (w *Writer) Flush() error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(w.doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(w.doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return nil
}
