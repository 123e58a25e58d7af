package Queues

import (
	"iter"

	structs "github.com/splitend/go-structs"
)

// Squeue is a FIFO queue over an exclusively owned CircularBuffer.
type Squeue[T any] struct {
	buf CircularBuffer[T]
}

// MakeSqueue returns a queue holding vs with vs[0] next out.
func MakeSqueue[T any](vs ...T) *Squeue[T] {
	t := &Squeue[T]{buf: *MakeCircularBuffer[T](uint(len(vs)) + defaultCap)}
	for _, v := range vs {
		t.buf.PushBack(v)
	}
	return t
}

func (this *Squeue[T]) Push(v T) {
	this.buf.PushBack(v)
}

// Pop removes and returns the oldest element, or Nothing when empty.
func (this *Squeue[T]) Pop() structs.Maybe[T] {
	return this.buf.PopFront()
}

// Peek returns the value Pop would return next.
func (this *Squeue[T]) Peek() structs.Maybe[T] {
	return this.buf.PeekFront()
}

// PeekLastIn returns the most recently pushed value.
func (this *Squeue[T]) PeekLastIn() structs.Maybe[T] {
	return this.buf.PeekBack()
}

func (this *Squeue[T]) Size() uint {
	return this.buf.Size()
}

func (this *Squeue[T]) Empty() bool {
	return this.buf.Empty()
}

func (this *Squeue[T]) Clear() {
	this.buf.Clear()
}

// Copy returns an independent queue with the same logical sequence.
func (this *Squeue[T]) Copy() *Squeue[T] {
	return &Squeue[T]{this.buf.Copy()}
}

// All yields the elements oldest first. Do not push or pop while ranging.
func (this *Squeue[T]) All() iter.Seq[T] {
	return this.buf.All()
}
