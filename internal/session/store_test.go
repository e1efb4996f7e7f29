package session

import (
	"testing"
	"time"

	"github.com/good-yellow-bee/rollcall/internal/models"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	sess, err := store.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sess.ID == "" {
		t.Error("session.ID is empty")
	}
	if sess.IsAuthenticated() {
		t.Error("new session is authenticated, want anonymous")
	}

	got, ok := store.Get(sess.ID)
	if !ok {
		t.Fatal("Get() returned false, want true")
	}
	if got.ID != sess.ID {
		t.Errorf("ID = %q, want %q", got.ID, sess.ID)
	}
}

func TestStore_GetExpired(t *testing.T) {
	store := NewStore(time.Millisecond)

	sess, _ := store.Create()
	time.Sleep(5 * time.Millisecond)

	if _, ok := store.Get(sess.ID); ok {
		t.Error("Get() returned true for expired session")
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Hour)

	sess, _ := store.Create()
	store.Delete(sess.ID)

	if _, ok := store.Get(sess.ID); ok {
		t.Error("Get() returned true after Delete()")
	}
}

func TestSession_AuthenticateSetsIdentityAndCredentialsTogether(t *testing.T) {
	store := NewStore(time.Hour)
	sess, _ := store.Create()

	if _, ok := sess.Teacher(); ok {
		t.Error("anonymous session has a teacher")
	}
	if _, ok := sess.Credentials(); ok {
		t.Error("anonymous session has credentials")
	}

	sess.authenticate(
		models.Teacher{Name: "Ms. Wilson", Username: "ms.wilson"},
		models.Credentials{Username: "ms.wilson", Secret: "art123"},
	)

	teacher, ok := sess.Teacher()
	if !ok || teacher.Name != "Ms. Wilson" {
		t.Errorf("Teacher() = %v, %v, want Ms. Wilson, true", teacher, ok)
	}
	creds, ok := sess.Credentials()
	if !ok || creds.Username != "ms.wilson" {
		t.Errorf("Credentials() = %v, %v, want ms.wilson, true", creds, ok)
	}

	sess.clear()

	if _, ok := sess.Teacher(); ok {
		t.Error("cleared session still has a teacher")
	}
	if _, ok := sess.Credentials(); ok {
		t.Error("cleared session still has credentials")
	}
}

func TestSession_CredentialsReturnsCopy(t *testing.T) {
	store := NewStore(time.Hour)
	sess, _ := store.Create()
	sess.authenticate(
		models.Teacher{Name: "Ms. Wilson", Username: "ms.wilson"},
		models.Credentials{Username: "ms.wilson", Secret: "art123"},
	)

	creds, _ := sess.Credentials()
	sess.clear()

	// A copy captured before logout stays usable for in-flight requests.
	if creds.Username != "ms.wilson" || creds.Secret != "art123" {
		t.Errorf("captured credentials mutated by clear: %+v", creds)
	}
}
