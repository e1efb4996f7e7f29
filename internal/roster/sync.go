// Package roster keeps the rendered activity list in sync with the
// sign-up service. A Synchronizer owns the last fetched snapshot;
// turning the snapshot into a render model is a pure transform so it
// can be tested without any HTTP or page substrate.
package roster

import (
	"context"
	"log"
	"sync"

	"github.com/good-yellow-bee/rollcall/internal/metrics"
	"github.com/good-yellow-bee/rollcall/internal/models"
	"github.com/good-yellow-bee/rollcall/internal/upstream"
)

// FailureText replaces the activity list when the snapshot cannot be
// fetched. List failures render in place; they never raise a transient
// notice, unlike failed mutations.
const FailureText = "Failed to load activities. Please try again later."

// Synchronizer fetches activity snapshots and holds the latest one.
type Synchronizer struct {
	client *upstream.Client

	mu         sync.RWMutex
	activities map[string]models.Activity
	failed     bool
}

// NewSynchronizer creates a Synchronizer with an empty snapshot.
func NewSynchronizer(client *upstream.Client) *Synchronizer {
	return &Synchronizer{client: client}
}

// Refresh fetches the full activity map and replaces the snapshot
// wholesale. On failure it records the failed state and logs the error;
// the error is never propagated to callers. Concurrent refreshes race
// and the last one to finish wins the snapshot.
func (s *Synchronizer) Refresh(ctx context.Context) {
	activities, err := s.client.List(ctx)
	if err != nil {
		log.Printf("refresh activities: %v", err)
		metrics.RefreshesTotal.WithLabelValues("failure").Inc()
		s.mu.Lock()
		s.activities = nil
		s.failed = true
		s.mu.Unlock()
		return
	}

	metrics.RefreshesTotal.WithLabelValues("success").Inc()
	s.mu.Lock()
	s.activities = activities
	s.failed = false
	s.mu.Unlock()
}

// View renders the current snapshot for a viewer. The authenticated
// flag is evaluated on every call, never cached, so removal affordances
// always reflect the viewer's current login state.
func (s *Synchronizer) View(authenticated bool) View {
	s.mu.RLock()
	activities, failed := s.activities, s.failed
	s.mu.RUnlock()

	if failed {
		return View{Failed: true, FailureText: FailureText}
	}
	return View{Activities: BuildCards(activities, authenticated)}
}
