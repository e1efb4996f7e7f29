package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/good-yellow-bee/rollcall/internal/models"
	"github.com/good-yellow-bee/rollcall/internal/upstream"
)

func snapshot() map[string]models.Activity {
	return map[string]models.Activity{
		"Drama Club": {
			Description:     "Acting and stagecraft",
			Schedule:        "Mondays, 4:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"zoe@mergington.edu", "amy@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn chess",
			Schedule:        "Fridays, 3:30 PM",
			MaxParticipants: 2,
			Participants:    []string{"b@mergington.edu", "a@mergington.edu", "c@mergington.edu"},
		},
	}
}

func TestBuildCards_SortedByName(t *testing.T) {
	cards := BuildCards(snapshot(), false)

	if len(cards) != 2 {
		t.Fatalf("len(cards) = %d, want 2", len(cards))
	}
	if cards[0].Name != "Chess Club" || cards[1].Name != "Drama Club" {
		t.Errorf("card order = [%s, %s], want [Chess Club, Drama Club]", cards[0].Name, cards[1].Name)
	}
}

func TestBuildCards_SpotsLeftNeverNegative(t *testing.T) {
	cards := BuildCards(snapshot(), false)

	// Chess Club is over capacity (3 participants, 2 spots).
	if cards[0].SpotsLeft != 0 {
		t.Errorf("SpotsLeft = %d, want 0", cards[0].SpotsLeft)
	}
	if cards[1].SpotsLeft != 18 {
		t.Errorf("SpotsLeft = %d, want 18", cards[1].SpotsLeft)
	}
}

func TestBuildCards_ParticipantsKeepServiceOrder(t *testing.T) {
	cards := BuildCards(snapshot(), false)

	want := []string{"b@mergington.edu", "a@mergington.edu", "c@mergington.edu"}
	for i, p := range cards[0].Participants {
		if p.Email != want[i] {
			t.Errorf("participant[%d] = %q, want %q", i, p.Email, want[i])
		}
	}
}

func TestBuildCards_RemovalAffordanceFollowsAuth(t *testing.T) {
	for _, authenticated := range []bool{false, true} {
		cards := BuildCards(snapshot(), authenticated)
		for _, card := range cards {
			for _, p := range card.Participants {
				if p.CanRemove != authenticated {
					t.Errorf("CanRemove = %v with authenticated = %v", p.CanRemove, authenticated)
				}
				if p.Activity != card.Name {
					t.Errorf("participant bound to %q, want %q", p.Activity, card.Name)
				}
			}
		}
	}
}

func TestSynchronizer_RefreshThenView(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Chess Club": {"description": "Learn chess", "schedule": "Fridays", "max_participants": 12, "participants": []}}`))
	}))
	defer srv.Close()

	sync := NewSynchronizer(upstream.NewClient(srv.URL, time.Second))
	sync.Refresh(context.Background())

	view := sync.View(false)
	if view.Failed {
		t.Fatalf("view failed: %s", view.FailureText)
	}
	if len(view.Activities) != 1 || view.Activities[0].Name != "Chess Club" {
		t.Errorf("Activities = %v, want one Chess Club card", view.Activities)
	}
	if got := view.Names(); len(got) != 1 || got[0] != "Chess Club" {
		t.Errorf("Names() = %v, want [Chess Club]", got)
	}
}

func TestSynchronizer_FailureRendersInPlace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	sync := NewSynchronizer(upstream.NewClient(srv.URL, time.Second))
	sync.Refresh(context.Background())

	view := sync.View(false)
	if !view.Failed {
		t.Fatal("view.Failed = false, want true")
	}
	if view.FailureText != FailureText {
		t.Errorf("FailureText = %q, want %q", view.FailureText, FailureText)
	}
}

func TestSynchronizer_RefreshReplacesSnapshot(t *testing.T) {
	payload := `{"Chess Club": {"description": "d", "schedule": "s", "max_participants": 12, "participants": []}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	sync := NewSynchronizer(upstream.NewClient(srv.URL, time.Second))
	sync.Refresh(context.Background())

	payload = `{"Drama Club": {"description": "d", "schedule": "s", "max_participants": 20, "participants": []}}`
	sync.Refresh(context.Background())

	view := sync.View(false)
	if len(view.Activities) != 1 || view.Activities[0].Name != "Drama Club" {
		t.Errorf("Activities = %v, want only Drama Club after second refresh", view.Activities)
	}
}

func TestSynchronizer_ViewReevaluatesAuthPerRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Chess Club": {"description": "d", "schedule": "s", "max_participants": 12, "participants": ["a@mergington.edu"]}}`))
	}))
	defer srv.Close()

	sync := NewSynchronizer(upstream.NewClient(srv.URL, time.Second))
	sync.Refresh(context.Background())

	if sync.View(true).Activities[0].Participants[0].CanRemove != true {
		t.Error("authenticated view missing removal affordance")
	}
	// Same snapshot, logged-out render: affordance must disappear.
	if sync.View(false).Activities[0].Participants[0].CanRemove != false {
		t.Error("anonymous view has removal affordance")
	}
}
