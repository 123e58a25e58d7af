// Package Stacks provides LIFO stacks built on singly linked chains of
// immutable nodes. Separate stacks may share tail segments of a chain; a
// handle's Push and Pop replace only the handle's own head reference, so no
// mutation is ever visible through another handle sharing the chain.
package Stacks
