// Package listview holds the list-management core shared by every admin screen.
//
// It contains:
//   - Sort: stable, non-mutating ordering by a named field and direction
//   - Paginate: 1-indexed page slicing that never fails past the end
//   - Column: declarative column descriptors decoupled from rendering
//   - Model: a generic per-screen view model combining load, sort, paginate,
//     filter and optimistic delete with rollback
//
// A Model is owned by a single event loop (the Bubble Tea Update function) and
// is not safe for concurrent use. Network work happens outside the model; its
// results are fed back through FinishLoad and ResolveDelete.
package listview
