package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestThen_ShortCircuitsOnFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	secondRan := false

	first := Step[int, int](func(ctx context.Context, in int) (int, error) {
		return 0, boom
	})
	second := Step[int, string](func(ctx context.Context, in int) (string, error) {
		secondRan = true
		return strconv.Itoa(in), nil
	})

	got, err := Then(first, second)(context.Background(), 7)
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if secondRan {
		t.Fatal("second step ran after a failure")
	}
	if got != "" {
		t.Fatalf("want zero value, got %q", got)
	}
}

func TestThen_PassesValueThrough(t *testing.T) {
	t.Parallel()

	double := Step[int, int](func(ctx context.Context, in int) (int, error) {
		return in * 2, nil
	})
	describe := Step[int, string](func(ctx context.Context, in int) (string, error) {
		return "n=" + strconv.Itoa(in), nil
	})

	got, err := Then(double, describe)(context.Background(), 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "n=42" {
		t.Fatalf("want n=42, got %q", got)
	}
}

func TestFinally_RunsOnBothPaths(t *testing.T) {
	t.Parallel()

	for _, fail := range []bool{false, true} {
		ran := false
		step := Step[int, int](func(ctx context.Context, in int) (int, error) {
			if fail {
				return 0, errors.New("boom")
			}
			return in, nil
		})

		_, err := Finally(step, func() { ran = true })(context.Background(), 1)
		if fail && err == nil {
			t.Fatal("expected error")
		}
		if !fail && err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ran {
			t.Fatalf("finally hook skipped (fail=%v)", fail)
		}
	}
}
