package Queues

import (
	"iter"

	structs "github.com/splitend/go-structs"
)

// Dqueue is a double ended queue over an exclusively owned CircularBuffer.
// Pushing into a full ring grows it and popping well below occupancy shrinks
// it; neither is observable through the queue's logical behavior.
type Dqueue[T any] struct {
	buf    CircularBuffer[T]
	maxCap uint // 0 means unbounded
}

// MakeDqueue returns an unbounded deque holding vs front to back.
func MakeDqueue[T any](vs ...T) *Dqueue[T] {
	t := &Dqueue[T]{buf: *MakeCircularBuffer[T](uint(len(vs)) + defaultCap)}
	for _, v := range vs {
		t.buf.PushBack(v)
	}
	return t
}

// MakeDqueueCap returns an unbounded deque with the given initial capacity.
// initCap 0 selects the default.
func MakeDqueueCap[T any](initCap int) (*Dqueue[T], error) {
	if initCap < 0 {
		return nil, &structs.BadCapacityError{Cap: initCap}
	}
	return &Dqueue[T]{buf: *MakeCircularBuffer[T](uint(initCap))}, nil
}

// MakeDqueueBounded returns a deque that refuses to grow past maxCap
// elements; pushes at the bound fail with an ExhaustedError.
func MakeDqueueBounded[T any](initCap, maxCap int) (*Dqueue[T], error) {
	if initCap < 0 {
		return nil, &structs.BadCapacityError{Cap: initCap}
	}
	if maxCap <= 0 || maxCap < initCap {
		return nil, &structs.BadCapacityError{Cap: maxCap}
	}
	return &Dqueue[T]{*MakeCircularBuffer[T](uint(initCap)), uint(maxCap)}, nil
}

func (this *Dqueue[T]) atBound() bool {
	return this.maxCap != 0 && this.buf.Size() == this.maxCap
}

func (this *Dqueue[T]) PushFront(v T) error {
	if this.atBound() {
		return &structs.ExhaustedError{Max: this.maxCap}
	}
	this.buf.PushFront(v)
	return nil
}

func (this *Dqueue[T]) PushBack(v T) error {
	if this.atBound() {
		return &structs.ExhaustedError{Max: this.maxCap}
	}
	this.buf.PushBack(v)
	return nil
}

// PopFront removes and returns the first element, or Nothing when empty.
func (this *Dqueue[T]) PopFront() structs.Maybe[T] {
	return this.buf.PopFront()
}

// PopBack removes and returns the last element, or Nothing when empty.
func (this *Dqueue[T]) PopBack() structs.Maybe[T] {
	return this.buf.PopBack()
}

func (this *Dqueue[T]) PeekFront() structs.Maybe[T] {
	return this.buf.PeekFront()
}

func (this *Dqueue[T]) PeekBack() structs.Maybe[T] {
	return this.buf.PeekBack()
}

func (this *Dqueue[T]) Size() uint {
	return this.buf.Size()
}

func (this *Dqueue[T]) Empty() bool {
	return this.buf.Empty()
}

func (this *Dqueue[T]) Clear() {
	this.buf.Clear()
}

// Copy returns an independent deque with the same logical sequence and
// minimal sufficient capacity. Buffers are never shared.
func (this *Dqueue[T]) Copy() *Dqueue[T] {
	return &Dqueue[T]{this.buf.Copy(), this.maxCap}
}

// All yields the elements front to back. Do not push or pop while ranging.
func (this *Dqueue[T]) All() iter.Seq[T] {
	return this.buf.All()
}
