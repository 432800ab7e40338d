// Package catalog serves the fixed set of cards a game can be built from.
// The catalog is compiled into the binary and never changes at runtime.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	"github.com/osse101/CardBuilder_Go/internal/domain"
	"github.com/osse101/CardBuilder_Go/internal/validation"
)

//go:embed data
var dataFS embed.FS

type document struct {
	Version string        `json:"version"`
	Cards   []domain.Card `json:"cards"`
}

// Catalog is an immutable, ordered list of cards
type Catalog struct {
	version  string
	cards    []domain.Card
	position map[int]int
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	data, err := fs.ReadFile(dataFS, DataPathCards)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}
	return Parse(data, SchemaValidator())
})

// Default returns the built-in catalog
func Default() (*Catalog, error) {
	return loadDefault()
}

// SchemaValidator returns a validator over the embedded catalog schema
func SchemaValidator() validation.SchemaValidator {
	schemas, err := fs.Sub(dataFS, DataDir)
	if err != nil {
		// DataDir is embedded above, so Sub cannot fail
		panic(err)
	}
	return validation.NewSchemaValidator(schemas)
}

// Parse builds a catalog from a JSON document after checking it against the
// catalog schema. Card indices must be unique.
func Parse(data []byte, v validation.SchemaValidator) (*Catalog, error) {
	if err := v.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	position := make(map[int]int, len(doc.Cards))
	for i, c := range doc.Cards {
		if _, dup := position[c.Index]; dup {
			return nil, fmt.Errorf("%w: %s %d", domain.ErrInvalidCatalog, ErrMsgDuplicateIndex, c.Index)
		}
		position[c.Index] = i
	}

	return &Catalog{version: doc.Version, cards: doc.Cards, position: position}, nil
}

// Version of the catalog document
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of cards
func (c *Catalog) Len() int {
	return len(c.cards)
}

// All returns every card in catalog order
func (c *Catalog) All() []domain.Card {
	return slices.Clone(c.cards)
}

// Get looks up a card by index
func (c *Catalog) Get(index int) (domain.Card, bool) {
	i, ok := c.position[index]
	if !ok {
		return domain.Card{}, false
	}
	return c.cards[i], true
}

// Filter returns the cards whose index is in indices, in catalog order.
// indices is treated as a set; unknown indices are ignored.
func (c *Catalog) Filter(indices []int) []domain.Card {
	wanted := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		wanted[idx] = struct{}{}
	}

	out := make([]domain.Card, 0, len(wanted))
	for _, card := range c.cards {
		if _, ok := wanted[card.Index]; ok {
			out = append(out, card)
		}
	}
	return out
}
