package Queues

import structs "github.com/splitend/go-structs"

type Queue[T any] interface {
	Push(item T)
	Pop() structs.Maybe[T]
	Peek() structs.Maybe[T]
	Size() uint
	Empty() bool
}

type Deque[T any] interface {
	PushFront(item T) error
	PushBack(item T) error
	PopFront() structs.Maybe[T]
	PopBack() structs.Maybe[T]
	PeekFront() structs.Maybe[T]
	PeekBack() structs.Maybe[T]
	Size() uint
	Empty() bool
}

var (
	_ Queue[int] = (*Squeue[int])(nil)
	_ Deque[int] = (*Dqueue[int])(nil)
)
