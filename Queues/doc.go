// Package Queues provides queues backed by an auto-resizing circular buffer:
// Dqueue, a double ended queue, and Squeue, a FIFO queue. Both keep push and
// pop amortized O(1) at the ends they serve; growth and shrink of the backing
// ring are invisible to logical behavior.
//
// Emptiness is reported through structs.Maybe, never through errors. The only
// errors in this package come from invalid constructor capacities and from
// pushing a bounded Dqueue past its configured maximum.
package Queues
