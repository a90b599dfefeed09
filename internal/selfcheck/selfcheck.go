// Package selfcheck runs the reference scenarios of the sequence package as a
// list of named checks.
package selfcheck

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"

	"github.com/geofduf/vector/sequence"
)

// A Check is a named scenario. Run returns nil when the scenario holds.
type Check struct {
	Name string
	Run  func(log logr.Logger) error
}

// Checks returns the reference scenarios in execution order.
func Checks() []Check {
	return []Check{
		{"basic", checkBasic},
		{"iter", checkIter},
		{"swap", checkSwap},
		{"move", checkMove},
		{"resize", checkResize},
		{"emplace_back", checkEmplaceBack},
		{"cursor_invalidation", checkCursorInvalidation},
		{"reserve_atomic", checkReserveAtomic},
	}
}

// Run executes checks and returns the combined error of those that failed.
// Every check runs regardless of earlier failures.
func Run(log logr.Logger, checks []Check) error {
	var err error
	for _, c := range checks {
		l := log.WithValues("check", c.Name)
		if e := c.Run(l); e != nil {
			l.Error(e, "check failed")
			err = multierr.Append(err, fmt.Errorf("%s: %w", c.Name, e))
			continue
		}
		l.Info("check passed")
	}
	return err
}

func checkBasic(log logr.Logger) error {
	a := sequence.New[int](sequence.WithLogger(log))
	for i := 0; i < 10; i++ {
		if err := a.PushBack(i); err != nil {
			return err
		}
	}
	if err := expectShape(a, 10, 16); err != nil {
		return err
	}
	if a.Empty() {
		return errors.New("sequence should not be empty")
	}
	for i := 0; i < 10; i++ {
		v, err := a.At(i)
		if err != nil {
			return err
		}
		if v != i || a.Index(i) != i {
			return fmt.Errorf("element %d: got %d, want %d", i, v, i)
		}
	}
	if err := a.ShrinkToFit(); err != nil {
		return err
	}
	if err := expectShape(a, 10, 10); err != nil {
		return err
	}
	if err := a.PopBack(); err != nil {
		return err
	}
	if n := a.Size(); n != 9 {
		return fmt.Errorf("size: got %d, want 9", n)
	}
	a.Clear()
	if n := a.Size(); n != 0 {
		return fmt.Errorf("size: got %d, want 0", n)
	}
	if err := a.PopBack(); !errors.Is(err, sequence.ErrUnderflow) {
		return fmt.Errorf("pop on empty: got error %v, want %v", err, sequence.ErrUnderflow)
	}
	if err := a.Reserve(1000); err != nil {
		return err
	}
	if n := a.Capacity(); n != 1000 {
		return fmt.Errorf("capacity: got %d, want 1000", n)
	}
	return nil
}

func checkIter(log logr.Logger) error {
	a := sequence.New[int](sequence.WithLogger(log))
	for i := 0; i < 10; i++ {
		if err := a.PushBack(i); err != nil {
			return err
		}
	}
	i := 0
	for c := a.Begin(); !c.Equal(a.End()); c = c.Next() {
		v, err := c.Value()
		if err != nil {
			return err
		}
		if v != i {
			return fmt.Errorf("element %d: got %d", i, v)
		}
		i++
	}
	if i != 10 {
		return fmt.Errorf("visited %d elements, want 10", i)
	}
	return nil
}

func checkSwap(log logr.Logger) error {
	a := sequence.New[int](sequence.WithLogger(log))
	b := sequence.New[int](sequence.WithLogger(log))
	if err := multierr.Combine(a.PushBack(1), b.PushBack(2)); err != nil {
		return err
	}
	a.Swap(b)
	x, errA := a.At(0)
	y, errB := b.At(0)
	if err := multierr.Combine(errA, errB); err != nil {
		return err
	}
	if x != 2 || y != 1 {
		return fmt.Errorf("got %d and %d, want 2 and 1", x, y)
	}
	return nil
}

func checkMove(log logr.Logger) error {
	a := sequence.New[string](sequence.WithLogger(log))
	t := "abcde1"
	if err := a.PushBackMove(&t); err != nil {
		return err
	}
	if t != "" {
		return fmt.Errorf("source: got %q, want empty", t)
	}
	if v, _ := a.At(0); v != "abcde1" {
		return fmt.Errorf("element 0: got %q, want %q", v, "abcde1")
	}
	b := a.Move()
	if err := expectShape(a, 0, 1); err != nil {
		return fmt.Errorf("moved-from sequence: %w", err)
	}
	if v, _ := b.At(0); v != "abcde1" {
		return fmt.Errorf("moved element: got %q, want %q", v, "abcde1")
	}
	return nil
}

func checkResize(log logr.Logger) error {
	a := sequence.New[string](sequence.WithLogger(log))
	if err := a.ResizeWith(10, "asb"); err != nil {
		return err
	}
	if n := a.Size(); n != 10 {
		return fmt.Errorf("size: got %d, want 10", n)
	}
	for i, v := range a.All() {
		if v != "asb" {
			return fmt.Errorf("element %d: got %q, want %q", i, v, "asb")
		}
	}
	return nil
}

func checkEmplaceBack(log logr.Logger) error {
	a := sequence.New[*sequence.Sequence[int]](sequence.WithLogger(log))
	err := a.EmplaceBack(func() *sequence.Sequence[int] {
		return sequence.NewFilled(1, 2)
	})
	if err != nil {
		return err
	}
	if n := a.Size(); n != 1 {
		return fmt.Errorf("size: got %d, want 1", n)
	}
	if v := a.Index(0).Index(0); v != 2 {
		return fmt.Errorf("nested element: got %d, want 2", v)
	}
	return nil
}

func checkCursorInvalidation(log logr.Logger) error {
	a := sequence.NewFromValues([]int{1}, sequence.WithLogger(log))
	c := a.Begin()
	if err := a.PushBack(2); err != nil {
		return err
	}
	if _, err := c.Value(); !errors.Is(err, sequence.ErrInvalidated) {
		return fmt.Errorf("stale cursor: got error %v, want %v", err, sequence.ErrInvalidated)
	}
	return nil
}

func checkReserveAtomic(log logr.Logger) error {
	a := sequence.NewFromValues([]int{1, 2, 3}, sequence.WithLogger(log))
	if err := a.Reserve(2); !errors.Is(err, sequence.ErrInvalidArgument) {
		return fmt.Errorf("reserve below size: got error %v, want %v", err, sequence.ErrInvalidArgument)
	}
	if err := a.Reserve(a.MaxSize() + 1); !errors.Is(err, sequence.ErrAllocation) {
		return fmt.Errorf("oversized reserve: got error %v, want %v", err, sequence.ErrAllocation)
	}
	if err := expectShape(a, 3, 3); err != nil {
		return err
	}
	if !sequence.Equal(a, sequence.NewFromValues([]int{1, 2, 3})) {
		return fmt.Errorf("elements changed: got %v", a.Values())
	}
	return nil
}

func expectShape[T any](s *sequence.Sequence[T], size, capacity int) error {
	if n := s.Size(); n != size {
		return fmt.Errorf("size: got %d, want %d", n, size)
	}
	if n := s.Capacity(); n != capacity {
		return fmt.Errorf("capacity: got %d, want %d", n, capacity)
	}
	return nil
}
