package session

import (
	"context"
	"log"

	"github.com/good-yellow-bee/rollcall/internal/metrics"
	"github.com/good-yellow-bee/rollcall/internal/models"
	"github.com/good-yellow-bee/rollcall/internal/upstream"
)

// Manager performs login and logout against the sign-up service and
// records the outcome on the session.
type Manager struct {
	store  *Store
	client *upstream.Client
}

// NewManager creates a Manager backed by store and the upstream client.
func NewManager(store *Store, client *upstream.Client) *Manager {
	return &Manager{store: store, client: client}
}

// Store returns the underlying session store.
func (m *Manager) Store() *Store {
	return m.store
}

// Login verifies the credentials with the service and, on success,
// attaches the returned identity and the credentials to the session in
// one step. On failure the session is left exactly as it was.
func (m *Manager) Login(ctx context.Context, sess *Session, username, secret string) (*models.Teacher, error) {
	creds := models.Credentials{Username: username, Secret: secret}

	teacher, err := m.client.Login(ctx, creds)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	sess.authenticate(*teacher, creds)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	log.Printf("teacher %s logged in", teacher.Username)
	return teacher, nil
}

// Logout clears the session back to anonymous. It never contacts the
// service: there is no server-side session to invalidate. Logging out
// an already-anonymous session is a harmless no-op.
func (m *Manager) Logout(sess *Session) {
	sess.clear()
}
