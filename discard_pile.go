package main

import (
	"sync"
)

// DiscardPile is the ordered history of played cards. The turn goroutine is
// the only writer; the render layer reads snapshots, so access is guarded by
// a mutex.
type DiscardPile struct {
	mu    sync.Mutex
	cards []Card
}

// NewDiscardPile creates an empty pile. The engine seeds it with the first
// flipped card before the first turn, so it is never empty during play.
func NewDiscardPile() *DiscardPile {
	return &DiscardPile{cards: make([]Card, 0, DeckSize)}
}

// Push appends a played card.
func (p *DiscardPile) Push(card Card) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = append(p.cards, card)
}

// PeekTop returns the most recently pushed card. Peeking at an empty pile is
// a logic error and panics; after the opening flip the pile always holds at
// least one card.
func (p *DiscardPile) PeekTop() Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.cards) == 0 {
		panic("uno: peek at an empty discard pile")
	}
	return p.cards[len(p.cards)-1]
}

// Cards returns a copy of the pile from bottom to top, for rendering.
func (p *DiscardPile) Cards() []Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	cards := make([]Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// Size returns the number of cards in the pile.
func (p *DiscardPile) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cards)
}

// TakeAllButTop removes and returns every card except the current top. The
// engine uses it to refill an exhausted deck.
func (p *DiscardPile) TakeAllButTop() []Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.cards) <= 1 {
		return nil
	}
	taken := make([]Card, len(p.cards)-1)
	copy(taken, p.cards[:len(p.cards)-1])
	p.cards[0] = p.cards[len(p.cards)-1]
	p.cards = p.cards[:1]
	return taken
}
