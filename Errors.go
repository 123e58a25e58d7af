package structs

import "fmt"

// BadCapacityError reports an invalid capacity argument to a constructor.
type BadCapacityError struct {
	Cap int
}

func (e *BadCapacityError) Error() string {
	return fmt.Sprintf("invalid capacity %d", e.Cap)
}

// ExhaustedError reports a push that would grow a bounded structure past its
// configured maximum element count.
type ExhaustedError struct {
	Max uint
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("capacity bound %d exhausted", e.Max)
}
