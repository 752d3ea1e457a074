// Package linearkit is a library of classical algorithms over linear data
// structures: linked chains in all their variants, in-place array sorts and
// monotonic stacks.
//
// 🚀 What is in linearkit?
//
//	• chain/     index-addressed node Arena, slice builders, invariant checks
//	• linked/    chain mutation engine: insert, delete, reverse, merge,
//	             Floyd cycle detection & repair, segregate, dedupe, lookups
//	• sorting/   Lomuto & Hoare quicksort, mergesort, insertion, selection,
//	             adaptive bubble and counting sort, sorted/unsorted intersect
//	• monostack/ next/previous greater & smaller, stock span (stream and
//	             batch), largest rectangle in a histogram and in a 0/1 grid
//	• stack/     fixed, chain-backed, min-tracking and two-in-one stacks,
//	             bracket balancing
//
// ✨ Why an Arena?
//
//   - Nodes are addressed by stable IDs, never by pointers, so a cycle is an
//     inspectable relation between IDs instead of an aliasing hazard.
//   - Every mutation takes the current head and returns the new one.
//   - Views (chain.Values and friends) are bounded by the arena size and
//     report chain.ErrCyclic instead of looping forever.
//
// Quick ASCII example:
//
//	head ─▶ [1] ─▶ [2] ─▶ [3] ─▶ [4]
//	                     ▲       │
//	                     └───────┘
//
//	linked.CycleEntry finds [3], linked.RemoveCycle cuts 4→3.
//
// The linearkit command (cmd/linearkit) runs every engine from the shell,
// one operation at a time or as a YAML batch.
//
//	go install github.com/katalvlaran/linearkit/cmd/linearkit@latest
package linearkit
