package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"readerscout/internal/core/domain/models"

	"gopkg.in/yaml.v3"
)

// Format selects how a result set is printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: output %q (choose from text, json, yaml)", models.ErrInvalidFlag, s)
	}
}

type Writer struct {
	out       io.Writer
	format    Format
	formatter Formatter
}

func NewWriter(out io.Writer, format Format, formatter Formatter) *Writer {
	return &Writer{out: out, format: format, formatter: formatter}
}

func (w *Writer) Write(docs []models.Document) error {
	if docs == nil {
		docs = []models.Document{}
	}

	switch w.format {
	case FormatJSON:
		return w.writeJSON(docs)
	case FormatYAML:
		return w.writeYAML(docs)
	default:
		for _, doc := range docs {
			if _, err := fmt.Fprintln(w.out, w.formatter.Format(doc)); err != nil {
				return err
			}
		}
		return nil
	}
}

func (w *Writer) writeJSON(docs []models.Document) error {
	enc := json.NewEncoder(w.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode documents as JSON: %w", err)
	}
	return nil
}

// writeYAML re-reads the JSON dump as a YAML node tree so key order is kept,
// then switches every node to block style.
func (w *Writer) writeYAML(docs []models.Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(buf.Bytes(), &root); err != nil {
		return fmt.Errorf("failed to convert documents to YAML: %w", err)
	}
	blockStyle(&root)

	ye := yaml.NewEncoder(w.out)
	ye.SetIndent(2)
	if err := ye.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode documents as YAML: %w", err)
	}
	return ye.Close()
}

func blockStyle(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		n.Tag = n.ShortTag()
	}
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
