package Queues

import (
	"iter"

	structs "github.com/splitend/go-structs"
)

const (
	defaultCap  = 2
	shrinkFloor = 8
)

// CircularBuffer is a resizable ring. Logical slot i lives at
// content[(head+i) % cap]; resizing rebuilds the ring starting at slot 0,
// never shifting in place. Each buffer is exclusively owned by the structure
// wrapping it.
type CircularBuffer[T any] struct {
	head, sz uint
	content  []T
}

func MakeCircularBuffer[T any](initCap uint) *CircularBuffer[T] {
	if initCap == 0 {
		initCap = defaultCap
	}
	return &CircularBuffer[T]{0, 0, make([]T, initCap)}
}

func (this *CircularBuffer[T]) Size() uint {
	return this.sz
}

func (this *CircularBuffer[T]) Empty() bool {
	return this.sz == 0
}

func (this *CircularBuffer[T]) Cap() uint {
	return uint(len(this.content))
}

func (this *CircularBuffer[T]) slot(i uint) uint {
	return (this.head + i) % uint(len(this.content))
}

// compact lays the logical sequence out into a fresh slice of length newCap,
// which must be at least sz.
func (this *CircularBuffer[T]) compact(newCap uint) []T {
	nc := make([]T, newCap)
	if c := uint(len(this.content)); this.head+this.sz <= c {
		copy(nc, this.content[this.head:this.head+this.sz])
	} else {
		n := uint(copy(nc, this.content[this.head:]))
		copy(nc[n:], this.content[:this.sz-n])
	}
	return nc
}

func (this *CircularBuffer[T]) resize(newCap uint) {
	this.content = this.compact(newCap)
	this.head = 0
}

func (this *CircularBuffer[T]) growIfFull() {
	if this.sz == uint(len(this.content)) {
		this.resize(max(1, this.sz*2))
	}
}

func (this *CircularBuffer[T]) shrinkIfSparse() {
	if c := uint(len(this.content)); c > shrinkFloor && this.sz <= c/4 {
		this.resize(c / 2)
	}
}

func (this *CircularBuffer[T]) PushBack(v T) {
	this.growIfFull()
	this.content[this.slot(this.sz)] = v
	this.sz++
}

func (this *CircularBuffer[T]) PushFront(v T) {
	this.growIfFull()
	c := uint(len(this.content))
	this.head = (this.head + c - 1) % c
	this.content[this.head] = v
	this.sz++
}

// PopFront removes the first element, clearing the vacated slot so the value
// is not retained past its removal.
func (this *CircularBuffer[T]) PopFront() structs.Maybe[T] {
	if this.sz == 0 {
		return structs.Nothing[T]()
	}
	v := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	this.shrinkIfSparse()
	return structs.Just(v)
}

func (this *CircularBuffer[T]) PopBack() structs.Maybe[T] {
	if this.sz == 0 {
		return structs.Nothing[T]()
	}
	i := this.slot(this.sz - 1)
	v := this.content[i]
	this.content[i] = *new(T)
	this.sz--
	this.shrinkIfSparse()
	return structs.Just(v)
}

func (this *CircularBuffer[T]) PeekFront() structs.Maybe[T] {
	if this.sz == 0 {
		return structs.Nothing[T]()
	}
	return structs.Just(this.content[this.head])
}

func (this *CircularBuffer[T]) PeekBack() structs.Maybe[T] {
	if this.sz == 0 {
		return structs.Nothing[T]()
	}
	return structs.Just(this.content[this.slot(this.sz-1)])
}

func (this *CircularBuffer[T]) Clear() {
	clear(this.content)
	this.head, this.sz = 0, 0
}

// Copy returns an independent buffer holding the same logical sequence,
// compacted to the minimal sufficient capacity.
func (this *CircularBuffer[T]) Copy() CircularBuffer[T] {
	return CircularBuffer[T]{0, this.sz, this.compact(max(this.sz, defaultCap))}
}

// All yields the logical sequence front to back. Do not push or pop while
// ranging; the walk reads the live ring.
func (this *CircularBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := uint(0); i < this.sz; i++ {
			if !yield(this.content[this.slot(i)]) {
				return
			}
		}
	}
}
