// Package grid provides a fixed-size, generic 2D container that maps
// integer cell coordinates to elements of a single type T.
//
// What:
//
//   - Grid[T] stores Width×Height elements in a flat row-major slice.
//   - Every element is built exactly once, at construction, by a Factory
//     that receives a Notifier handle and the element's coordinates.
//   - World-space translation: WorldPosition(x,y) and its inverse XY(pos),
//     laid out along the horizontal ground plane (AxisXZ) or a vertical
//     plane (AxisXY).
//   - Change observation: element mutators call TriggerChanged(x,y) and
//     every Observer registered with Subscribe is invoked synchronously.
//
// Out-of-range reads are routine (neighbor enumeration at edges) and are
// reported with a false ok flag, never an error. Out-of-range writes are
// rejected with ErrOutOfRange.
//
// Complexity:
//
//   - New:                 O(W×H) time and memory.
//   - Element/SetElement:  O(1).
//   - TriggerChanged:      O(k), k = number of observers.
//
// Concurrency:
//
//	A Grid performs no locking. Mutation, observation and reads must not
//	be interleaved across goroutines without external synchronization.
package grid
