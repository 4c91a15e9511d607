// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// mockRefresher implements CatalogRefresher for testing.
type mockRefresher struct {
	runErr     error
	runBlocks  bool
	runCount   atomic.Int32
	runStarted chan struct{}
	stopCh     chan struct{}
}

func newMockRefresher() *mockRefresher {
	return &mockRefresher{
		runStarted: make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
	}
}

func (m *mockRefresher) Run(ctx context.Context) error {
	m.runCount.Add(1)

	// Signal that we've started
	select {
	case m.runStarted <- struct{}{}:
	default:
	}

	// Return error immediately if set
	if m.runErr != nil {
		return m.runErr
	}

	// If blocking, wait until context canceled or stopped
	if m.runBlocks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.stopCh:
			return nil
		}
	}

	return nil
}

func (m *mockRefresher) RunCallCount() int {
	return int(m.runCount.Load())
}

// --- Test: RefreshService implements suture.Service ---

func TestRefreshService_Interface(t *testing.T) {
	t.Parallel()

	// Verify RefreshService implements suture.Service
	var _ suture.Service = (*RefreshService)(nil)
}

// --- Test: NewRefreshService ---

func TestNewRefreshService(t *testing.T) {
	t.Parallel()

	refresher := newMockRefresher()
	svc := NewRefreshService(refresher)

	if svc == nil {
		t.Fatal("NewRefreshService() = nil, want non-nil")
	}

	if svc.refresher != refresher {
		t.Error("refresher not assigned correctly")
	}

	if svc.name != "catalog-refresher" {
		t.Errorf("expected name 'catalog-refresher', got %q", svc.name)
	}
}

// --- Test: RefreshService.Serve ---

func TestRefreshService_Serve(t *testing.T) {
	t.Parallel()

	t.Run("calls refresher Run", func(t *testing.T) {
		t.Parallel()

		refresher := newMockRefresher()
		refresher.runBlocks = true
		svc := NewRefreshService(refresher)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)

		go func() {
			errCh <- svc.Serve(ctx)
		}()

		// Wait for refresher to start
		select {
		case <-refresher.runStarted:
		case <-time.After(time.Second):
			t.Fatal("refresher did not start")
		}

		// Cancel context
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() error = %v, want context.Canceled", err)
			}
		case <-time.After(time.Second):
			t.Error("Serve() did not return after context cancellation")
		}

		if refresher.RunCallCount() != 1 {
			t.Errorf("Run called %d times, want 1", refresher.RunCallCount())
		}
	})

	t.Run("propagates refresher error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("refresher error")
		refresher := newMockRefresher()
		refresher.runErr = expectedErr
		svc := NewRefreshService(refresher)

		err := svc.Serve(context.Background())

		if !errors.Is(err, expectedErr) {
			t.Errorf("Serve() error = %v, want %v", err, expectedErr)
		}
	})

	t.Run("returns immediately when refresher returns", func(t *testing.T) {
		t.Parallel()

		refresher := newMockRefresher()
		refresher.runBlocks = false // Returns immediately
		svc := NewRefreshService(refresher)

		done := make(chan struct{})
		go func() {
			_ = svc.Serve(context.Background())
			close(done)
		}()

		select {
		case <-done:
			// Expected
		case <-time.After(time.Second):
			t.Error("Serve() did not return when refresher returned")
		}
	})
}

// --- Test: RefreshService.String ---

func TestRefreshService_String(t *testing.T) {
	t.Parallel()

	refresher := newMockRefresher()
	svc := NewRefreshService(refresher)

	if got := svc.String(); got != "catalog-refresher" {
		t.Errorf("String() = %q, want 'catalog-refresher'", got)
	}
}

// --- Test: Integration with Suture supervisor ---

func TestRefreshService_WithSupervisor(t *testing.T) {
	t.Parallel()

	refresher := newMockRefresher()
	refresher.runBlocks = true
	svc := NewRefreshService(refresher)

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	errCh := sup.ServeBackground(ctx)

	// Wait for refresher to start
	select {
	case <-refresher.runStarted:
	case <-time.After(time.Second):
		t.Fatal("refresher did not start under supervisor")
	}

	if refresher.RunCallCount() < 1 {
		t.Error("Run was not called")
	}

	cancel()
	<-errCh
}

func TestRefreshService_RestartOnError(t *testing.T) {
	t.Parallel()

	refresher := newMockRefresher()
	refresher.runErr = errors.New("transient error")
	svc := NewRefreshService(refresher)

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   5 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	errCh := sup.ServeBackground(ctx)
	<-errCh

	// Should have been restarted multiple times due to error
	if refresher.RunCallCount() < 2 {
		t.Errorf("expected multiple restarts, got %d runs", refresher.RunCallCount())
	}
}
