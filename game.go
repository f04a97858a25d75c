package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
)

// PlayerCount is the fixed number of seats at the table.
const PlayerCount = 4

// startingHandSize is the number of cards dealt to each player at genesis.
const startingHandSize = 7

// Direction of play around the table.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// seatOrder is the clockwise order of seats around the table. Players are
// stored in this order; index 0 (South) is the human seat in the UI.
var seatOrder = [PlayerCount]Position{South, West, North, East}

// Game owns the deck, the discard pile and the four players, and runs the
// turn state machine. A single turn goroutine drives Update; the render
// layer only reads snapshots through the accessors.
type Game struct {
	deck     *Deck
	pile     *DiscardPile
	players  [PlayerCount]*Player
	listener GameListener

	mu        sync.Mutex
	current   int
	direction Direction
	winner    int // index into players, -1 while the game is running
	started   bool
}

// NewGame creates a shuffled deck from the supplied random source, seats the
// four strategies in seatOrder and deals each player their starting hand.
// The discard pile stays empty until Start flips the first card.
func NewGame(rng *rand.Rand, strategies [PlayerCount]Strategy, listener GameListener) *Game {
	if listener == nil {
		listener = NopListener{}
	}
	g := &Game{
		deck:      NewDeck(rng),
		pile:      NewDiscardPile(),
		listener:  listener,
		direction: Clockwise,
		winner:    -1,
	}
	for i, position := range seatOrder {
		g.players[i] = NewPlayer(position, strategies[i])
	}
	for _, player := range g.players {
		for i := 0; i < startingHandSize; i++ {
			player.AddCard(g.deck.Draw())
		}
	}
	return g
}

// Start seeds the discard pile with one card from the deck. If that card is
// a wild, the first player names its color before the first real turn; this
// bootstrap flip triggers no skip, reverse or forced draw.
func (g *Game) Start(ctx context.Context) error {
	if g.started {
		return nil
	}
	card := g.deck.Draw()
	if card.Kind() == KindWild {
		color, err := g.currentPlayer().SelectWildColor(ctx)
		if err != nil {
			return err
		}
		card.AssignColor(color)
		g.listener.ColorPicked(g.currentPlayer().Position(), color)
	}
	g.pile.Push(card)
	g.started = true
	g.listener.FirstCardFlipped(card)
	return nil
}

// Update runs one full turn cycle for the current player: draw until a
// playable card is in hand, obtain the play, resolve the card's effect,
// push the card and advance the turn pointer. It blocks while a human
// strategy waits for input and returns the context error on cancellation.
func (g *Game) Update(ctx context.Context) error {
	if g.Over() {
		return nil
	}
	player := g.currentPlayer()

	// Wild cards are always playable, so this loop terminates well before
	// the card pool runs dry.
	top := g.pile.PeekTop()
	for !player.HasPlayableCard(top) {
		player.AddCard(g.drawCard())
		g.listener.CardsDrawn(player.Position(), 1)
	}

	card, err := player.PlayCard(ctx, top)
	if err != nil {
		return err
	}
	won := player.HandEmpty()

	// Resolve the card's effect before the push, so the pile top changes
	// only once resolution is complete. A winning play still resolves its
	// effect: the final Draw Two or Wild Draw Four lands, and the final wild
	// gets its color so the pile top is never colorless.
	switch card.Kind() {
	case KindWild:
		color, err := player.SelectWildColor(ctx)
		if err != nil {
			return err
		}
		card.AssignColor(color)
		g.listener.ColorPicked(player.Position(), color)
		if card.Wild() == SymbolWildDrawFour {
			g.advance()
			g.forceDraw(g.currentPlayer(), 4)
		}
	case KindAction:
		switch card.Action() {
		case ActionDrawTwo:
			g.advance()
			g.forceDraw(g.currentPlayer(), 2)
		case ActionReverse:
			g.reverse()
		case ActionSkip:
			g.advance()
		}
	}

	if !card.CanPlayOn(g.pile.PeekTop()) {
		panic(fmt.Sprintf("uno: illegal play of %s on %s", card, g.pile.PeekTop()))
	}
	g.pile.Push(card)
	g.listener.CardPlayed(player.Position(), card)

	if won {
		g.mu.Lock()
		for i, p := range g.players {
			if p == player {
				g.winner = i
			}
		}
		g.mu.Unlock()
		g.listener.GameOver(player.Position())
		return nil
	}

	// The mandatory end-of-turn advance. Together with the effect advances
	// above, a Draw Two or Wild Draw Four skips its victim entirely.
	g.advance()
	g.listener.TurnChanged(g.currentPlayer().Position())
	return nil
}

// Run flips the first card and resolves turns until a player wins or the
// context is cancelled.
func (g *Game) Run(ctx context.Context) error {
	if err := g.Start(ctx); err != nil {
		return err
	}
	for !g.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Update(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drawCard takes one card from the deck, refilling it from the discard pile
// (minus the top card) when it runs out. Exhausting both is impossible with
// correct 108-card accounting and fails loudly.
func (g *Game) drawCard() Card {
	if g.deck.Empty() {
		reclaimed := g.pile.TakeAllButTop()
		if len(reclaimed) == 0 {
			log.Panic("uno: deck and discard pile exhausted; cards were lost or duplicated")
		}
		g.deck.Refill(reclaimed)
	}
	return g.deck.Draw()
}

// forceDraw makes a player draw count cards with no playability check.
func (g *Game) forceDraw(player *Player, count int) {
	for i := 0; i < count; i++ {
		player.AddCard(g.drawCard())
	}
	g.listener.CardsDrawn(player.Position(), count)
}

func (g *Game) currentPlayer() *Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.players[g.current]
}

// advance moves the turn pointer one seat in the direction of play, wrapping
// without ever producing a negative index.
func (g *Game) advance() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = (g.current + int(g.direction) + PlayerCount) % PlayerCount
}

func (g *Game) reverse() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.direction = -g.direction
}

// Players returns the players in seat order (South, West, North, East).
func (g *Game) Players() []*Player {
	return g.players[:]
}

// CurrentPosition returns the seat whose turn it is.
func (g *Game) CurrentPosition() Position {
	return g.currentPlayer().Position()
}

// Direction returns the current direction of play.
func (g *Game) Direction() Direction {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.direction
}

// Pile returns the discard pile for rendering.
func (g *Game) Pile() *DiscardPile {
	return g.pile
}

// DeckSize returns the number of cards left in the deck.
func (g *Game) DeckSize() int {
	return g.deck.Size()
}

// Winner returns the winning seat once a player has emptied their hand.
func (g *Game) Winner() (Position, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.winner < 0 {
		return 0, false
	}
	return g.players[g.winner].Position(), true
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	_, over := g.Winner()
	return over
}
