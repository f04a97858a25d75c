package main

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
)

// Position is a compass seat at the table. Seats are fixed at creation and
// determine where a hand is rendered.
type Position int

const (
	North Position = iota
	East
	South
	West
)

func (p Position) String() string {
	switch p {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// Strategy decides which card a player plays and which color they name for a
// wild card. Human implementations block until input arrives from the UI;
// cancelling the context unblocks them during shutdown.
type Strategy interface {
	// SelectCard returns the index of the card to play from hand. The caller
	// guarantees that at least one card in hand can be played on top.
	SelectCard(ctx context.Context, hand []Card, top Card) (int, error)
	// SelectColor names a replacement color for a wild card that was just
	// played. The hand no longer contains that wild card.
	SelectColor(ctx context.Context, hand []Card) (Color, error)
}

// Player holds a sorted hand at a fixed seat and delegates decisions to its
// Strategy. The hand is read by the render thread while the turn goroutine
// mutates it, so it is guarded by a mutex; critical sections stay short and
// never include strategy calls.
type Player struct {
	position Position
	strategy Strategy

	mu    sync.Mutex
	cards []Card
}

// NewPlayer creates a player with an empty hand; the engine deals the
// starting cards.
func NewPlayer(position Position, strategy Strategy) *Player {
	return &Player{
		position: position,
		strategy: strategy,
		cards:    make([]Card, 0, 14),
	}
}

// Position returns the player's seat.
func (p *Player) Position() Position {
	return p.position
}

// AddCard inserts a drawn card, keeping the hand sorted by atlas index.
func (p *Player) AddCard(card Card) {
	p.mu.Lock()
	defer p.mu.Unlock()
	index := sort.Search(len(p.cards), func(i int) bool {
		return p.cards[i].AtlasIndex() >= card.AtlasIndex()
	})
	p.cards = append(p.cards, Card{})
	copy(p.cards[index+1:], p.cards[index:])
	p.cards[index] = card
}

// Hand returns a snapshot of the hand for rendering and decisions.
func (p *Player) Hand() []Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	cards := make([]Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// HandSize returns the number of cards in the hand.
func (p *Player) HandSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cards)
}

// HandEmpty reports whether the player has played their last card.
func (p *Player) HandEmpty() bool {
	return p.HandSize() == 0
}

// HasPlayableCard reports whether any hand card can be played on top.
func (p *Player) HasPlayableCard(top Card) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, card := range p.cards {
		if card.CanPlayOn(top) {
			return true
		}
	}
	return false
}

// PlayCard removes and returns one card that can be played on top. The
// engine's draw-until-playable loop guarantees such a card exists. A
// strategy that names an unplayable index is asked again rather than
// trusted; only the turn goroutine mutates the hand during its own turn, so
// the snapshot the strategy saw stays valid.
func (p *Player) PlayCard(ctx context.Context, top Card) (Card, error) {
	hand := p.Hand()
	for {
		index, err := p.strategy.SelectCard(ctx, hand, top)
		if err != nil {
			return Card{}, err
		}
		if index < 0 || index >= len(hand) || !hand[index].CanPlayOn(top) {
			log.Printf("%s selected an unplayable card (index %d), asking again", p.position, index)
			continue
		}
		p.mu.Lock()
		card := p.cards[index]
		p.cards = append(p.cards[:index], p.cards[index+1:]...)
		p.mu.Unlock()
		return card, nil
	}
}

// SelectWildColor asks the strategy to name a color for a wild card the
// player just played.
func (p *Player) SelectWildColor(ctx context.Context) (Color, error) {
	return p.strategy.SelectColor(ctx, p.Hand())
}
