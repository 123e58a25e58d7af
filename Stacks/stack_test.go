package Stacks

import (
	"slices"
	"testing"
)

func TestStack_LIFO(t *testing.T) {
	s := new(Stack[int])
	for i := 0; i < 100; i++ {
		s.Push(i)
	}
	if s.Size() != 100 {
		t.Errorf("size is %d, want 100", s.Size())
	}
	for i := 99; i >= 0; i-- {
		if v, ok := s.Pop().Get(); !ok || v != i {
			t.Errorf("popped %v %v, want %d", v, ok, i)
		}
	}
	if !s.Empty() || s.Size() != 0 {
		t.Error("stack not empty after popping everything")
	}
	if s.Pop().Present() {
		t.Error("pop on empty stack returned a value")
	}
	if s.Size() != 0 {
		t.Error("pop on empty stack changed size")
	}
}

func TestStack_Make(t *testing.T) {
	s := MakeStack(1, 2, 3)
	if v, _ := s.Peek().Get(); v != 3 {
		t.Errorf("top is %d, want 3", v)
	}
	if got := slices.Collect(s.All()); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("wrong order: %v", got)
	}
}

func TestStack_Scenario(t *testing.T) {
	s := new(Stack[int])
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if v, _ := s.Peek().Get(); v != 3 {
		t.Errorf("peek is %d, want 3", v)
	}
	if v, _ := s.Pop().Get(); v != 3 {
		t.Errorf("pop is %d, want 3", v)
	}
	if s.Size() != 2 {
		t.Errorf("size is %d, want 2", s.Size())
	}
	if got := slices.Collect(s.All()); !slices.Equal(got, []int{2, 1}) {
		t.Errorf("wrong remainder: %v", got)
	}
}

func TestStack_Sharing(t *testing.T) {
	s1 := MakeStack(1, 2)
	s2 := s1.Copy()
	s2.Push(3)
	if s1.Size() != 2 {
		t.Errorf("s1 size changed to %d", s1.Size())
	}
	if s1.top != s2.top.next {
		t.Error("s2 does not share s1's chain")
	}
	s2.Pop()
	s2.Pop()
	s2.Push(9)
	if got := slices.Collect(s1.All()); !slices.Equal(got, []int{2, 1}) {
		t.Errorf("s1 observed s2's mutations: %v", got)
	}
}

func TestStack_CopyIndependence(t *testing.T) {
	s := MakeStack("a", "b", "c")
	c := s.Copy()
	c.Pop()
	c.Push("x")
	c.Push("y")
	if got := slices.Collect(s.All()); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("original changed: %v", got)
	}
	if got := slices.Collect(c.All()); !slices.Equal(got, []string{"y", "x", "b", "a"}) {
		t.Errorf("wrong copy content: %v", got)
	}
}

func TestStack_CopyDeep(t *testing.T) {
	s := MakeStack(1, 2, 3)
	d := s.CopyDeep()
	if d.Size() != 3 {
		t.Errorf("deep copy size is %d", d.Size())
	}
	for a, b := s.top, d.top; a != nil; a, b = a.next, b.next {
		if a == b {
			t.Fatal("deep copy shares a node")
		}
		if a.v != b.v {
			t.Errorf("deep copy value %d != %d", b.v, a.v)
		}
	}
	if !StackEq(s, d) {
		t.Error("deep copy compares unequal")
	}
}

func TestStack_Eq(t *testing.T) {
	s1 := MakeStack(1, 2, 3)
	s2 := s1.Copy()
	if !StackEq(s1, s2) {
		t.Error("shared stacks compare unequal")
	}
	if !StackEq(s1, MakeStack(1, 2, 3)) {
		t.Error("equal sequences compare unequal")
	}
	if StackEq(s1, MakeStack(1, 2)) {
		t.Error("different sizes compare equal")
	}
	if StackEq(s1, MakeStack(1, 2, 4)) {
		t.Error("different tops compare equal")
	}
}

func TestStack_AllRestartable(t *testing.T) {
	s := MakeStack(1, 2, 3)
	it := s.All()
	first := slices.Collect(it)
	second := slices.Collect(it)
	if !slices.Equal(first, second) {
		t.Errorf("restarted iteration differs: %v vs %v", first, second)
	}
	if s.Size() != 3 {
		t.Error("iteration consumed the stack")
	}
	for range s.All() {
		break
	}
	if got := slices.Collect(s.All()); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("early break corrupted state: %v", got)
	}
}

func TestStack_IdempotentReads(t *testing.T) {
	s := MakeStack(5)
	for i := 0; i < 3; i++ {
		if v, _ := s.Peek().Get(); v != 5 {
			t.Errorf("peek %d returned %d", i, v)
		}
		if s.Size() != 1 || s.Empty() {
			t.Errorf("read %d changed size", i)
		}
	}
}
