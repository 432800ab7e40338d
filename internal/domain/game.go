package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Game is a user-defined card game.
// JSON keys follow the format the mobile app persisted.
type Game struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"nameGame"`
	Players     string    `json:"players"`
	Duration    string    `json:"gameTime"`
	Rules       string    `json:"rules"`
	CardIndices []int     `json:"cards"`
}

// NewGame creates a game with a freshly generated id
func NewGame(name, players, duration, rules string, cardIndices []int) Game {
	cards := slices.Clone(cardIndices)
	if cards == nil {
		cards = []int{}
	}
	return Game{
		ID:          uuid.New(),
		Name:        name,
		Players:     players,
		Duration:    duration,
		Rules:       rules,
		CardIndices: cards,
	}
}

// Clone returns a deep copy of the game
func (g Game) Clone() Game {
	g.CardIndices = slices.Clone(g.CardIndices)
	return g
}

// GameUpdate is a sparse set of field replacements for a stored game.
// A nil field is left untouched; a non-nil field replaces the stored value.
type GameUpdate struct {
	Name        *string
	Players     *string
	Duration    *string
	Rules       *string
	CardIndices *[]int
}

// WithName sets the name slot
func (u GameUpdate) WithName(name string) GameUpdate {
	u.Name = &name
	return u
}

// WithPlayers sets the players slot
func (u GameUpdate) WithPlayers(players string) GameUpdate {
	u.Players = &players
	return u
}

// WithDuration sets the duration slot
func (u GameUpdate) WithDuration(duration string) GameUpdate {
	u.Duration = &duration
	return u
}

// WithRules sets the rules slot
func (u GameUpdate) WithRules(rules string) GameUpdate {
	u.Rules = &rules
	return u
}

// WithCardIndices sets the card indices slot. An empty slice clears the cards.
func (u GameUpdate) WithCardIndices(indices []int) GameUpdate {
	c := slices.Clone(indices)
	if c == nil {
		c = []int{}
	}
	u.CardIndices = &c
	return u
}

// IsEmpty reports whether no slot is set
func (u GameUpdate) IsEmpty() bool {
	return u.Name == nil && u.Players == nil && u.Duration == nil && u.Rules == nil && u.CardIndices == nil
}

// Apply returns a copy of g with every set slot replaced
func (u GameUpdate) Apply(g Game) Game {
	out := g.Clone()
	if u.Name != nil {
		out.Name = *u.Name
	}
	if u.Players != nil {
		out.Players = *u.Players
	}
	if u.Duration != nil {
		out.Duration = *u.Duration
	}
	if u.Rules != nil {
		out.Rules = *u.Rules
	}
	if u.CardIndices != nil {
		out.CardIndices = slices.Clone(*u.CardIndices)
	}
	return out
}
