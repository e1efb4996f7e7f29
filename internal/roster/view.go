package roster

import (
	"sort"

	"github.com/good-yellow-bee/rollcall/internal/models"
)

// View is the render model for the activity page.
type View struct {
	Activities  []Card
	Failed      bool
	FailureText string
}

// Names returns the activity names in render order, for the signup
// form's activity selector.
func (v View) Names() []string {
	names := make([]string, len(v.Activities))
	for i, card := range v.Activities {
		names[i] = card.Name
	}
	return names
}

// Card is one activity as rendered.
type Card struct {
	Name         string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []Participant
}

// Participant is one roster row. CanRemove carries the removal
// affordance, bound to the (activity, email) pair it renders.
type Participant struct {
	Activity  string
	Email     string
	CanRemove bool
}

// BuildCards transforms an activity snapshot into render cards. Cards
// are sorted by name for a stable render; participants keep the
// service's order. Removal affordances appear only when the viewer is
// authenticated.
func BuildCards(activities map[string]models.Activity, authenticated bool) []Card {
	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)

	cards := make([]Card, 0, len(names))
	for _, name := range names {
		activity := activities[name]
		card := Card{
			Name:        name,
			Description: activity.Description,
			Schedule:    activity.Schedule,
			SpotsLeft:   activity.SpotsLeft(),
		}
		for _, email := range activity.Participants {
			card.Participants = append(card.Participants, Participant{
				Activity:  name,
				Email:     email,
				CanRemove: authenticated,
			})
		}
		cards = append(cards, card)
	}
	return cards
}
