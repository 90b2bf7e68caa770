// Package graph synthesizes the build dependency graph for one run.
//
// Build composes the rule catalog, the target namer and the path resolver
// into the fixed pipeline topology: one normalize edge per input, the
// codepoint and feature singleton edges, the many-to-one font assembly
// edge, and optionally the rasterize/diff/report branch.
//
// Two properties matter more than anything else here:
//
//   - Order preservation. Every fan-in list repeats the original input
//     ordering, never a re-sorted or filesystem-enumerated one. That keeps
//     the serialized description byte-reproducible across runs and
//     preserves the downstream assembler's order-sensitive glyph handling.
//   - Structural soundness. The executor parallelizes edges freely, so the
//     graph must declare every dependency: validate checks that each edge
//     input is a source file or the output of exactly one other edge, and
//     that the edge relation is acyclic.
package graph
