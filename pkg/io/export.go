package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ratiosplit/pkg/errors"
)

// WriteJSON encodes v as indented JSON and writes it to w.
func WriteJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes v to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(v any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(v, f)
}

// WriteLayout encodes l in the given format. The output can be re-read
// with [ReadLayout]; defaults are written out explicitly.
func WriteLayout(l *Layout, w io.Writer, format Format) error {
	out := layoutFile{Total: l.Total, Edges: make([]edgeFile, len(l.Edges))}
	for i, e := range l.Edges {
		ef := edgeFile{Name: e.Name}
		if e.Size != nil {
			size := *e.Size
			ef.Size = &size
		} else {
			r, m := e.Weight(), e.MinimumSize
			ef.Ratio, ef.MinimumSize = &r, &m
		}
		out.Edges[i] = ef
	}

	var err error
	switch format {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(out); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		return WriteJSON(out, w)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported layout format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
