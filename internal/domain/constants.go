package domain

// Store keys. These match the keys the mobile app wrote to its local
// key-value storage so existing exports can be imported unchanged.
const (
	StoreKeyGames         = "gameKey"
	StoreKeySelectedCards = "selectedCardsKey"
	StoreKeyStatistics    = "statisticsData"
)

// SelectedCardsSeparator joins card indices in the editor scratch scalar.
const SelectedCardsSeparator = ","

// StoreKeys lists every key the repositories write
var StoreKeys = []string{StoreKeyGames, StoreKeySelectedCards, StoreKeyStatistics}
