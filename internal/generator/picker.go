// Package generator picks which player goes first.
package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/osse101/CardBuilder_Go/internal/domain"
	"github.com/osse101/CardBuilder_Go/internal/metrics"
)

// Picker draws a player number uniformly from 1..count
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker creates a picker seeded from the clock
func NewPicker() *Picker {
	return NewSeededPicker(time.Now().UnixNano())
}

// NewSeededPicker creates a picker with a fixed seed so draws are reproducible
func NewSeededPicker(seed int64) *Picker {
	//nolint:gosec // G404: math/rand is acceptable for picking a player, not for cryptographic purposes
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a player number in [1, count]
func (p *Picker) Pick(count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidPlayerCount, count)
	}

	p.mu.Lock()
	n := p.rng.Intn(count) + 1
	p.mu.Unlock()

	metrics.PlayersGenerated.Inc()
	return n, nil
}

// PickFromInput parses a typed player count and picks from it
func (p *Picker) PickFromInput(text string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPlayerCount, text)
	}
	return p.Pick(count)
}
