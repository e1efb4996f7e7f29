package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/good-yellow-bee/rollcall/internal/upstream"
)

func newTestManager(t *testing.T, handler http.HandlerFunc) *Manager {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewManager(NewStore(time.Hour), upstream.NewClient(srv.URL, time.Second))
}

func TestManager_Login_Success(t *testing.T) {
	mgr := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"teacher": {"name": "Ms. Wilson", "username": "ms.wilson"}}`))
	})
	sess, _ := mgr.Store().Create()

	teacher, err := mgr.Login(context.Background(), sess, "ms.wilson", "art123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if teacher.Name != "Ms. Wilson" {
		t.Errorf("teacher.Name = %q, want %q", teacher.Name, "Ms. Wilson")
	}
	if !sess.IsAuthenticated() {
		t.Error("session not authenticated after successful login")
	}
	creds, ok := sess.Credentials()
	if !ok || creds.Secret != "art123" {
		t.Errorf("Credentials() = %v, %v after login", creds, ok)
	}
}

func TestManager_Login_RejectionLeavesSessionUntouched(t *testing.T) {
	mgr := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Invalid username or password"}`))
	})
	sess, _ := mgr.Store().Create()

	_, err := mgr.Login(context.Background(), sess, "ms.wilson", "wrong")
	if err == nil {
		t.Fatal("Login() error = nil, want rejection")
	}
	rej, ok := upstream.AsRejection(err)
	if !ok || rej.Detail != "Invalid username or password" {
		t.Errorf("error = %v, want rejection with server detail", err)
	}
	if sess.IsAuthenticated() {
		t.Error("session authenticated after failed login")
	}
	if _, ok := sess.Credentials(); ok {
		t.Error("session holds credentials after failed login")
	}
}

func TestManager_Logout_Idempotent(t *testing.T) {
	mgr := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"teacher": {"name": "Ms. Wilson", "username": "ms.wilson"}}`))
	})
	sess, _ := mgr.Store().Create()

	if _, err := mgr.Login(context.Background(), sess, "ms.wilson", "art123"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	mgr.Logout(sess)
	if sess.IsAuthenticated() {
		t.Error("session authenticated after logout")
	}

	// Second logout on an already-anonymous session is a no-op.
	mgr.Logout(sess)
	if sess.IsAuthenticated() {
		t.Error("session authenticated after double logout")
	}
}

func TestManager_Logout_NeverContactsServer(t *testing.T) {
	calls := 0
	mgr := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"teacher": {"name": "Ms. Wilson", "username": "ms.wilson"}}`))
	})
	sess, _ := mgr.Store().Create()

	if _, err := mgr.Login(context.Background(), sess, "ms.wilson", "art123"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	mgr.Logout(sess)

	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1 (logout must be local)", calls)
	}
}
