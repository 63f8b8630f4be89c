// Package swatch assigns a stable color to every product identifier in
// packing-result tables.
//
// The packer writes item_placements_*.csv files into a results directory,
// and two independent tools draw on them: the swatch CLI, which bakes a
// Color column into each table, and the browser visualizer, which colors
// products on the fly. Neither consults the other at runtime. They agree
// because both compute the same pure function from identifier to color;
// ColorFor is that function, and everything else here is plumbing around
// it.
//
// # Conceptual Overview
//
//  1. ColorFor maps an identifier to a "#RRGGBB" color.
//     - A Palette memoizes assignments within one run and renders
//     terminal swatches.
//  2. ReadTable and LoadTable parse a delimited table into a Schema and
//     its Records.
//  3. Augment appends a Color field to every Record, calling the color
//     function once per distinct ProductId.
//  4. Batch applies Augment to every matching table in a results
//     directory. Watch keeps doing so as new tables land. Preview
//     browses the colored results in a terminal UI.
package swatch
