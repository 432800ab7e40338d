package domain

import "github.com/google/uuid"

// Statistic holds the user's personal play record. Only one is stored at a time.
type Statistic struct {
	ID           uuid.UUID `json:"id"`
	Wins         string    `json:"wins"`
	Defeats      string    `json:"defeats"`
	HoursPlayed  string    `json:"hours"`
	FavoriteGame string    `json:"game"`
}

// NewStatistic creates a statistic with a freshly generated id
func NewStatistic(wins, defeats, hoursPlayed, favoriteGame string) Statistic {
	return Statistic{
		ID:           uuid.New(),
		Wins:         wins,
		Defeats:      defeats,
		HoursPlayed:  hoursPlayed,
		FavoriteGame: favoriteGame,
	}
}
