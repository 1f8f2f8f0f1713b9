// Package io reads layout files and writes allocation results.
//
// # Overview
//
// A layout file names a list of edges and, optionally, the total space to
// split between them. It is the file-based counterpart of building a
// []ratio.Edge in code, used by the CLI and by the preview TUI.
//
// # Formats
//
// Three encodings are accepted, selected by file extension:
//
//   - .toml: decoded with BurntSushi/toml
//   - .yaml, .yml: decoded with gopkg.in/yaml.v3
//   - .json: decoded with encoding/json
//
// The same field names are used in every format. In TOML:
//
//	total = 80
//
//	[[edges]]
//	name = "sidebar"
//	size = 20
//
//	[[edges]]
//	name = "main"
//	ratio = 3
//	minimum_size = 10
//
// # Edge Fields
//
//   - name: Optional label, shown by the CLI and the preview
//   - size: Fixed size; when present the edge is not flexible (0 is allowed)
//   - ratio: Weight of a flexible edge (default 1)
//   - minimum_size: Floor of a flexible edge (default 1)
//
// Unknown keys are rejected so that typos such as "minimum" do not silently
// fall back to defaults.
//
// # Import
//
// Use [ImportLayout] for a path or [ReadLayout] for any io.Reader:
//
//	l, err := io.ImportLayout("layout.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sizes, err := ratio.Resolve(80, l.RatioEdges())
//
// # Export
//
// [WriteJSON] and [ExportJSON] write any result value as indented JSON.
// [WriteLayout] encodes a [Layout] back into one of the three formats.
package io
