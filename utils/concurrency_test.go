package utils

import (
	"fmt"
	"testing"
)

func TestConcurrently(t *testing.T) {
	t.Run("preserves the order of the provided functions", func(t *testing.T) {
		res := Concurrently(
			func() (any, error) { return 1, nil },
			func() (any, error) { return "two", nil },
			func() (any, error) { return []int{3}, nil },
		)

		if res.HasErrors() {
			t.Fatalf("expected no errors, got %v", res.Errors())
		}
		if res.GetValue(0).(int) != 1 {
			t.Errorf("expected 1, got %v", res.GetValue(0))
		}
		if res.GetValue(1).(string) != "two" {
			t.Errorf("expected two, got %v", res.GetValue(1))
		}
		if res.GetValue(2).([]int)[0] != 3 {
			t.Errorf("expected [3], got %v", res.GetValue(2))
		}
	})

	t.Run("collects errors from all functions", func(t *testing.T) {
		res := Concurrently(
			func() (any, error) { return nil, fmt.Errorf("first") },
			func() (any, error) { return 42, nil },
			func() (any, error) { return nil, fmt.Errorf("third") },
		)

		if !res.HasErrors() {
			t.Fatal("expected errors")
		}
		if len(res.Errors()) != 2 {
			t.Errorf("expected 2 errors, got %d", len(res.Errors()))
		}
	})
}
