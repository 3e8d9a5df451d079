package concurrency

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
	"testing"
)

func TestMapPreservesOrder(t *testing.T) {
	items := []int{5, 3, 8, 1, 9, 2, 7}

	got, errs := Map(context.Background(), items, Options{MaxWorkers: 3},
		func(ctx context.Context, n int) (int, error) {
			return n * 10, nil
		})
	if len(errs) != 0 {
		t.Fatalf("errs = %v", errs)
	}

	want := []int{50, 30, 80, 10, 90, 20, 70}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("results = %v, want %v", got, want)
	}
}

func TestMapCollectsErrors(t *testing.T) {
	items := []string{"a", "bad", "c", "bad"}

	results, errs := Map(context.Background(), items, DefaultOptions(),
		func(ctx context.Context, s string) (string, error) {
			if s == "bad" {
				return "", fmt.Errorf("cannot process %q", s)
			}
			return s + "!", nil
		})

	if len(errs) != 2 {
		t.Fatalf("errs = %v, want 2 errors", errs)
	}
	if results[0] != "a!" || results[2] != "c!" {
		t.Errorf("successful results lost: %v", results)
	}
}

func TestMapEmptyInput(t *testing.T) {
	results, errs := Map(context.Background(), nil, DefaultOptions(),
		func(ctx context.Context, n int) (int, error) { return n, nil })
	if len(results) != 0 || errs != nil {
		t.Errorf("Map(nil) = %v, %v", results, errs)
	}
}

func TestMapZeroWorkersFallsBack(t *testing.T) {
	var inflight, peak atomic.Int32
	items := make([]int, 50)

	_, errs := Map(context.Background(), items, Options{},
		func(ctx context.Context, n int) (int, error) {
			cur := inflight.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			defer inflight.Add(-1)
			return n, nil
		})
	if len(errs) != 0 {
		t.Fatalf("errs = %v", errs)
	}
	if p := peak.Load(); p > int32(DefaultOptions().MaxWorkers) {
		t.Errorf("peak concurrency = %d, want <= %d", p, DefaultOptions().MaxWorkers)
	}
}

func TestMapCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, errs := Map(ctx, []int{1, 2, 3}, Options{MaxWorkers: 1},
		func(ctx context.Context, n int) (int, error) { return n, nil })

	if len(errs) == 0 {
		t.Fatal("expected cancellation errors, got none")
	}
	for _, err := range errs {
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	}
}
