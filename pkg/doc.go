// Package pkg provides the libraries behind ratiosplit.
//
// # Overview
//
// Ratiosplit divides a fixed amount of integer space (terminal cells,
// pixels, budget units) between weighted slots. The pkg directory is
// organized into three areas:
//
//  1. [ratio] - The allocation functions: Resolve, Reduce and Distribute
//  2. [rule] - A titled horizontal rule drawn into an allocated width
//  3. Plumbing shared by the CLI and the HTTP API: [pipeline], [server],
//     [io], [errors], [observability] and [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	layout file / flags / HTTP request
//	         ↓
//	    [io] package (decode edges)
//	         ↓
//	    [pipeline] package (validate, time, log)
//	         ↓
//	    [ratio] package (allocate)
//	         ↓
//	    table / JSON / [rule] output
//
// # Quick Start
//
//	import "github.com/matzehuels/ratiosplit/pkg/ratio"
//
//	sizes, err := ratio.Resolve(80, []ratio.Edge{
//	    ratio.Fixed(20),
//	    ratio.Flex(3).WithMinimum(10),
//	    ratio.Flex(1),
//	})
//	// sizes == [20 45 15]
//
// # Main Packages
//
// [ratio] - Pure integer allocation. No floating point is used, so results
// are identical on every platform.
//
// [rule] - Renders a line of exactly the requested cell width with an
// optional left, centered or right aligned title.
//
// [pipeline] - Runs allocation requests with validation, logging and
// observability hooks.
//
// [server] - chi based HTTP API over the pipeline.
//
// [io] - Layout files in TOML, YAML or JSON.
package pkg
