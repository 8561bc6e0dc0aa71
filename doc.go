// Package treasury provides the types and functions to track a public
// company's Bitcoin treasury month by month. It is designed to be
// local-first and auditable: the whole dataset lives in a single
// human-readable JSON file that is rewritten in full on every update.
//
// The core functionalities include:
//   - Spreadsheet Import: Converting a monthly-holdings spreadsheet
//     (.xlsx or .csv) into an ordered, validated sequence of Records,
//     rejecting missing fields, unparseable numbers, and duplicate months.
//   - Canonical Data File: Encoding and decoding the JSON array the
//     chart page consumes, with atomic overwrite semantics so a failed
//     conversion never clobbers good data.
//   - Summary Statistics: Latest holdings and value, growth since
//     inception, and the optional mNAV and premium/discount metrics.
//   - Spot Price: Fetching the current BTC spot price from a public
//     JSON API, with a daily on-disk cache.
//
// This package serves as the foundational logic for the `hodl`
// command-line tool; chart and report rendering live in the renderer
// subpackage.
package treasury
