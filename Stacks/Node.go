package Stacks

// node is one cell of a singly linked chain. A node is never written after
// construction, which is what makes sharing tails between stacks safe. Chains
// strictly descend toward nil, so the GC reclaims them as soon as the last
// handle lets go.
type node[T any] struct {
	v    T
	next *node[T]
}
