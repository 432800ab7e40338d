package domain

// Card is an entry of the static card catalog.
// Index is the join key used by Game.CardIndices.
type Card struct {
	ImageRef string `json:"image_ref"`
	Index    int    `json:"index"`
}
