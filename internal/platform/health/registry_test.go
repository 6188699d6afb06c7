package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/health"
	"github.com/jsamuelsen11/todo-lifecycle/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.EXPECT().Name().Return("todo-store")
	checkerA.EXPECT().HealthCheck(mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.EXPECT().Name().Return("publisher")
	checkerB.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["todo-store"] != nil {
		t.Errorf("todo-store check = %v, want nil", results["todo-store"])
	}
	if results["publisher"] != nil {
		t.Errorf("publisher check = %v, want nil", results["publisher"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("todo-store")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("connection refused")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("publisher")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["todo-store"] != nil {
		t.Errorf("todo-store check = %v, want nil", results["todo-store"])
	}
	if results["publisher"] == nil {
		t.Fatal("publisher check = nil, want error")
	}
	if results["publisher"].Error() != "connection refused" {
		t.Errorf("publisher check = %q, want %q", results["publisher"].Error(), "connection refused")
	}
}

func TestCheckAll_CancelledContextSkipsChecks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// No HealthCheck expectation: the check must not run.
	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("publisher")

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["publisher"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["publisher"])
	}
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	var barrier sync.WaitGroup
	barrier.Add(2)
	waitForPeer := func(ctx context.Context) error {
		barrier.Done()
		done := make(chan struct{})
		go func() {
			barrier.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	store := mocks.NewMockHealthChecker(t)
	store.EXPECT().Name().Return("todo-store")
	store.EXPECT().HealthCheck(mock.Anything).RunAndReturn(waitForPeer)

	publisher := mocks.NewMockHealthChecker(t)
	publisher.EXPECT().Name().Return("publisher")
	publisher.EXPECT().HealthCheck(mock.Anything).RunAndReturn(waitForPeer)

	r := health.New(health.WithConcurrency(2), health.WithCheckTimeout(time.Second))
	r.Register(store)
	r.Register(publisher)

	results := r.CheckAll(context.Background())

	if !health.Healthy(results) {
		t.Errorf("expected both checks to meet at the barrier, got %v", results)
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("todo-store")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("todo-store")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["todo-store"]
	if !ok {
		t.Fatal(`expected result for key "todo-store", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("todo-store check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}

func TestCheckAll_AppliesTimeout(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("todo-store")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil)

	r := health.New(health.WithCheckTimeout(time.Second))
	r.Register(checker)

	if err := r.CheckAll(context.Background())["todo-store"]; err != nil {
		t.Errorf("todo-store check = %v, want nil", err)
	}
}

func TestCheckAll_TimeoutDisabled(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("todo-store")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return !ok
	})).Return(nil)

	r := health.New(health.WithCheckTimeout(0))
	r.Register(checker)

	r.CheckAll(context.Background())
}

func TestHealthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results map[string]error
		want    bool
	}{
		{name: "empty", results: map[string]error{}, want: true},
		{name: "all nil", results: map[string]error{"todo-store": nil, "publisher": nil}, want: true},
		{name: "one failing", results: map[string]error{"todo-store": errors.New("down"), "publisher": nil}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := health.Healthy(tt.results); got != tt.want {
				t.Errorf("Healthy() = %v, want %v", got, tt.want)
			}
		})
	}
}
