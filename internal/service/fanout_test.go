package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"profiledash/internal/jsonapi"
)

func newTestBatch(f *fetcherStub, countDelay time.Duration) *BatchService {
	return NewBatchService(newTestProfiles(f, nil, countDelay))
}

func TestBatchService_ResultsFollowInputOrder(t *testing.T) {
	t.Parallel()

	f := threeUsersStub()
	svc := newTestBatch(f, time.Millisecond)

	got, err := svc.FetchSummaries(context.Background(), []int{3, 1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 summaries, got %d", len(got))
	}
	wantNames := []string{"User 3", "User 1", "User 2"}
	wantCounts := []int{4, 2, 3}
	for i := range got {
		if got[i].Name != wantNames[i] {
			t.Errorf("summary %d name: want %q, got %q", i, wantNames[i], got[i].Name)
		}
		if got[i].PostCount != wantCounts[i] {
			t.Errorf("summary %d count: want %d, got %d", i, wantCounts[i], got[i].PostCount)
		}
	}
}

func TestBatchService_FailFastReturnsNoPartialResults(t *testing.T) {
	t.Parallel()

	f := threeUsersStub()
	svc := newTestBatch(f, time.Millisecond)

	// id 42 is unknown; 1 and 3 are valid but must not leak through.
	got, err := svc.FetchSummaries(context.Background(), []int{1, 42, 3})
	if err == nil {
		t.Fatal("expected error")
	}
	var se *jsonapi.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("message must carry the status code, got %q", err.Error())
	}
	if got != nil {
		t.Fatalf("want nil results on failure, got %v", got)
	}
}

func TestBatchService_PipelinesRunConcurrently(t *testing.T) {
	t.Parallel()

	const step = 60 * time.Millisecond
	f := threeUsersStub()
	f.delay = step
	svc := newTestBatch(f, step)

	start := time.Now()
	if _, err := svc.FetchSummaries(context.Background(), []int{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	elapsed := time.Since(start)

	// One pipeline costs 3*step. Three sequential pipelines would cost
	// 9*step; concurrent ones finish near the single-pipeline cost.
	if elapsed >= 6*step {
		t.Fatalf("batch took %v, expected parallel completion near %v", elapsed, 3*step)
	}
}

func TestBatchService_EmptyInput(t *testing.T) {
	t.Parallel()

	svc := newTestBatch(threeUsersStub(), time.Millisecond)

	got, err := svc.FetchSummaries(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty result, got %v", got)
	}
}

func TestBatchService_FailureCancelsSiblings(t *testing.T) {
	t.Parallel()

	f := threeUsersStub()
	f.delay = 50 * time.Millisecond
	f.userErr[2] = &jsonapi.StatusError{Endpoint: "/users", Code: 500}
	svc := newTestBatch(f, 300*time.Millisecond)

	start := time.Now()
	_, err := svc.FetchSummaries(context.Background(), []int{1, 2, 3})
	if err == nil {
		t.Fatal("expected error")
	}
	// Siblings sit in the count delay when the failure lands; group
	// cancellation means the join does not wait the full delay out.
	if elapsed := time.Since(start); elapsed > 250*time.Millisecond {
		t.Fatalf("join took %v, expected early return on first failure", elapsed)
	}
}
