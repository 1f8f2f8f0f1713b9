package io

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ratiosplit/pkg/errors"
	"github.com/matzehuels/ratiosplit/pkg/ratio"
)

// Format identifies a layout file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported layout file extension %q (want .toml, .yaml, .yml or .json)", filepath.Ext(path))
}

// Layout is a decoded layout file.
type Layout struct {
	// Total is the space to split, if the file fixes one.
	Total *int
	Edges []NamedEdge
}

// NamedEdge is an edge with an optional display name.
type NamedEdge struct {
	Name string
	ratio.Edge
}

// RatioEdges returns the edges in file order, ready for ratio.Resolve.
func (l *Layout) RatioEdges() []ratio.Edge {
	out := make([]ratio.Edge, len(l.Edges))
	for i, e := range l.Edges {
		out[i] = e.Edge
	}
	return out
}

// Names returns the edge names in file order. Unnamed edges are labelled
// by their 1-based position.
func (l *Layout) Names() []string {
	out := make([]string, len(l.Edges))
	for i, e := range l.Edges {
		out[i] = e.Name
		if out[i] == "" {
			out[i] = fmt.Sprintf("#%d", i+1)
		}
	}
	return out
}

// ReadLayout decodes a layout in the given format from r.
//
// Missing ratio and minimum_size fields take their defaults (1). Negative
// values and unknown keys are rejected. An empty document yields an empty
// layout. ReadLayout does not close r.
func ReadLayout(r io.Reader, format Format) (*Layout, error) {
	var data layoutFile

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&data); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&data); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported layout format %q", format)
	}

	return data.layout()
}

// ImportLayout reads the layout file at path, choosing the decoder from the
// file extension.
//
// A missing file is reported with code errors.ErrCodeFileNotFound; other
// failures are wrapped with the path for context.
func ImportLayout(path string) (*Layout, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	l, err := ReadLayout(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

type layoutFile struct {
	Total *int       `json:"total,omitempty" toml:"total,omitempty" yaml:"total,omitempty"`
	Edges []edgeFile `json:"edges" toml:"edges" yaml:"edges"`
}

type edgeFile struct {
	Name        string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Size        *int   `json:"size,omitempty" toml:"size,omitempty" yaml:"size,omitempty"`
	Ratio       *int   `json:"ratio,omitempty" toml:"ratio,omitempty" yaml:"ratio,omitempty"`
	MinimumSize *int   `json:"minimum_size,omitempty" toml:"minimum_size,omitempty" yaml:"minimum_size,omitempty"`
}

func (f layoutFile) layout() (*Layout, error) {
	if f.Total != nil && *f.Total < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "total must be >= 0, got %d", *f.Total)
	}

	l := &Layout{Total: f.Total, Edges: make([]NamedEdge, len(f.Edges))}
	for i, e := range f.Edges {
		label := e.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}

		edge := ratio.Edge{Ratio: ratio.DefaultRatio, MinimumSize: ratio.DefaultMinimumSize}
		if e.Size != nil {
			if *e.Size < 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "edge %s: size must be >= 0, got %d", label, *e.Size)
			}
			size := *e.Size
			edge.Size = &size
		}
		if e.Ratio != nil {
			if *e.Ratio < 1 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "edge %s: ratio must be >= 1, got %d", label, *e.Ratio)
			}
			edge.Ratio = *e.Ratio
		}
		if e.MinimumSize != nil {
			if *e.MinimumSize < 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "edge %s: minimum_size must be >= 0, got %d", label, *e.MinimumSize)
			}
			edge.MinimumSize = *e.MinimumSize
		}
		l.Edges[i] = NamedEdge{Name: e.Name, Edge: edge}
	}
	return l, nil
}
