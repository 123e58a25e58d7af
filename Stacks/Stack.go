package Stacks

import (
	"iter"

	structs "github.com/splitend/go-structs"
)

// Stack is a LIFO stack over a chain of immutable nodes. Copy gives a second
// handle over the same chain in O(1); both handles can then push and pop
// independently.
type Stack[T any] struct {
	top *node[T]
	sz  uint
}

// MakeStack pushes vs left to right, so the last argument ends up on top.
func MakeStack[T any](vs ...T) *Stack[T] {
	t := new(Stack[T])
	for _, v := range vs {
		t.Push(v)
	}
	return t
}

func (this *Stack[T]) Push(v T) {
	this.top = &node[T]{v, this.top}
	this.sz++
}

// Pop removes and returns the top value, or Nothing when empty. The removed
// node itself is untouched; other handles may still reach it.
func (this *Stack[T]) Pop() structs.Maybe[T] {
	if this.top == nil {
		return structs.Nothing[T]()
	}
	v := this.top.v
	this.top = this.top.next
	this.sz--
	return structs.Just(v)
}

func (this *Stack[T]) Peek() structs.Maybe[T] {
	if this.top == nil {
		return structs.Nothing[T]()
	}
	return structs.Just(this.top.v)
}

func (this *Stack[T]) Size() uint {
	return this.sz
}

func (this *Stack[T]) Empty() bool {
	return this.sz == 0
}

// Copy returns a new handle over the same chain in O(1).
func (this *Stack[T]) Copy() *Stack[T] {
	return &Stack[T]{this.top, this.sz}
}

// CopyDeep rebuilds the whole chain with fresh nodes in O(n). Only useful
// when the chain itself must not be shared; Copy is otherwise sufficient.
func (this *Stack[T]) CopyDeep() *Stack[T] {
	t := &Stack[T]{nil, this.sz}
	var last *node[T]
	for cur := this.top; cur != nil; cur = cur.next {
		n := &node[T]{v: cur.v}
		if last == nil {
			t.top = n
		} else {
			last.next = n
		}
		last = n
	}
	return t
}

// All yields the values from top to bottom. The sequence is restartable and
// never consumes the stack.
func (this *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := this.top; cur != nil; cur = cur.next {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// StackEq reports whether a and b hold equal values in the same order.
// Identical nodes short-circuit the walk, so stacks sharing most of a chain
// only pay for the unshared prefix.
func StackEq[T comparable](a, b *Stack[T]) bool {
	if a.sz != b.sz {
		return false
	}
	for x, y := a.top, b.top; x != y; x, y = x.next, y.next {
		if x.v != y.v {
			return false
		}
	}
	return true
}
