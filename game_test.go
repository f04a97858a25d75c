package main

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScriptedGame builds a game in a known mid-game state: fixed hands, a
// fixed deck order and a seeded discard pile, with zero-delay AIs in every
// seat. Deck cards are drawn from the end of the slice.
func newScriptedGame(hands [PlayerCount][]Card, deckCards []Card, top Card) *Game {
	g := &Game{
		deck:      &Deck{cards: deckCards, rng: testRNG(1)},
		pile:      NewDiscardPile(),
		listener:  NopListener{},
		direction: Clockwise,
		winner:    -1,
		started:   true,
	}
	for i, position := range seatOrder {
		g.players[i] = NewPlayer(position, AIStrategy{})
		for _, card := range hands[i] {
			g.players[i].AddCard(card)
		}
	}
	g.pile.Push(top)
	return g
}

func fillerHand() []Card {
	return []Card{mustNumberCard(ColorGreen, 6), mustNumberCard(ColorBlue, 2)}
}

func TestSkipAdvancesTwoSeats(t *testing.T) {
	g := newScriptedGame(
		[PlayerCount][]Card{
			{NewActionCard(ColorRed, ActionSkip), mustNumberCard(ColorYellow, 9)},
			fillerHand(), fillerHand(), fillerHand(),
		},
		nil,
		mustNumberCard(ColorRed, 5),
	)

	require.NoError(t, g.Update(context.Background()))

	assert.Equal(t, North, g.CurrentPosition(), "the next seat in turn order is skipped")
	assert.Equal(t, NewActionCard(ColorRed, ActionSkip), g.pile.PeekTop())
}

func TestReverseFlipsDirection(t *testing.T) {
	g := newScriptedGame(
		[PlayerCount][]Card{
			{NewActionCard(ColorRed, ActionReverse), mustNumberCard(ColorYellow, 9)},
			fillerHand(), fillerHand(), fillerHand(),
		},
		nil,
		mustNumberCard(ColorRed, 5),
	)

	require.NoError(t, g.Update(context.Background()))

	assert.Equal(t, CounterClockwise, g.Direction())
	assert.Equal(t, East, g.CurrentPosition(), "play now proceeds against the clock")
}

func TestDrawTwoFeedsAndSkipsVictim(t *testing.T) {
	g := newScriptedGame(
		[PlayerCount][]Card{
			{NewActionCard(ColorRed, ActionDrawTwo), mustNumberCard(ColorYellow, 9)},
			fillerHand(), fillerHand(), fillerHand(),
		},
		[]Card{mustNumberCard(ColorGreen, 3), mustNumberCard(ColorGreen, 4)},
		mustNumberCard(ColorRed, 5),
	)

	require.NoError(t, g.Update(context.Background()))

	assert.Equal(t, 4, g.players[1].HandSize(), "victim drew two cards")
	assert.Equal(t, North, g.CurrentPosition(), "victim loses their turn")
}

func TestWildDrawFourFeedsAndSkipsVictim(t *testing.T) {
	g := newScriptedGame(
		[PlayerCount][]Card{
			{NewWildCard(SymbolWildDrawFour), mustNumberCard(ColorYellow, 9)},
			fillerHand(), fillerHand(), fillerHand(),
		},
		[]Card{
			mustNumberCard(ColorGreen, 3), mustNumberCard(ColorGreen, 4),
			mustNumberCard(ColorBlue, 3), mustNumberCard(ColorBlue, 4),
		},
		mustNumberCard(ColorRed, 5),
	)

	require.NoError(t, g.Update(context.Background()))

	top := g.pile.PeekTop()
	require.Equal(t, KindWild, top.Kind())
	color, ok := top.Color()
	require.True(t, ok, "a pushed wild always carries its named color")
	assert.Equal(t, ColorYellow, color, "the AI names its majority color")
	assert.Equal(t, 6, g.players[1].HandSize(), "victim drew four cards")
	assert.Equal(t, North, g.CurrentPosition(), "victim loses their turn")
}

func TestDrawsUntilPlayable(t *testing.T) {
	// Green 1 is drawn first and cannot be played on Red 5; Red 7 can.
	g := newScriptedGame(
		[PlayerCount][]Card{
			{mustNumberCard(ColorBlue, 9)},
			fillerHand(), fillerHand(), fillerHand(),
		},
		[]Card{mustNumberCard(ColorRed, 7), mustNumberCard(ColorGreen, 1)},
		mustNumberCard(ColorRed, 5),
	)

	require.NoError(t, g.Update(context.Background()))

	assert.Equal(t, mustNumberCard(ColorRed, 7), g.pile.PeekTop())
	assert.Equal(t, 2, g.players[0].HandSize(), "both drawn cards minus the played one")
	assert.Equal(t, 0, g.DeckSize())
	assert.Equal(t, West, g.CurrentPosition())
}

func TestWinningPlayEndsGame(t *testing.T) {
	g := newScriptedGame(
		[PlayerCount][]Card{
			{mustNumberCard(ColorRed, 3)},
			fillerHand(), fillerHand(), fillerHand(),
		},
		nil,
		mustNumberCard(ColorRed, 5),
	)

	require.NoError(t, g.Update(context.Background()))

	require.True(t, g.Over())
	winner, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, South, winner)
	assert.Equal(t, mustNumberCard(ColorRed, 3), g.pile.PeekTop(), "the final card is still pushed")
	assert.Equal(t, South, g.CurrentPosition(), "no advance after the winning play")
}

func TestUpdateAfterGameOverIsNoop(t *testing.T) {
	g := newScriptedGame(
		[PlayerCount][]Card{
			{mustNumberCard(ColorRed, 3)},
			fillerHand(), fillerHand(), fillerHand(),
		},
		nil,
		mustNumberCard(ColorRed, 5),
	)
	require.NoError(t, g.Update(context.Background()))
	require.True(t, g.Over())

	require.NoError(t, g.Update(context.Background()))
	assert.Equal(t, mustNumberCard(ColorRed, 3), g.pile.PeekTop())
}

func TestAdvanceWrapsBothDirections(t *testing.T) {
	scenarios := []struct {
		current   int
		direction Direction
		want      int
	}{
		{0, Clockwise, 1},
		{1, Clockwise, 2},
		{2, Clockwise, 3},
		{3, Clockwise, 0},
		{0, CounterClockwise, 3},
		{1, CounterClockwise, 0},
		{2, CounterClockwise, 1},
		{3, CounterClockwise, 2},
	}
	for _, s := range scenarios {
		t.Run(fmt.Sprintf("from_%d_dir_%d", s.current, s.direction), func(t *testing.T) {
			g := newScriptedGame(
				[PlayerCount][]Card{fillerHand(), fillerHand(), fillerHand(), fillerHand()},
				nil,
				mustNumberCard(ColorRed, 5),
			)
			g.current = s.current
			g.direction = s.direction
			g.advance()
			assert.Equal(t, s.want, g.current)
		})
	}
}

func TestStartAssignsColorToWildFirstFlip(t *testing.T) {
	g := newScriptedGame(
		[PlayerCount][]Card{
			{mustNumberCard(ColorGreen, 2), NewActionCard(ColorGreen, ActionSkip), mustNumberCard(ColorRed, 8)},
			fillerHand(), fillerHand(), fillerHand(),
		},
		[]Card{NewWildCard(SymbolWild)},
		mustNumberCard(ColorRed, 5),
	)
	// Rebuild the start state: nothing flipped yet.
	g.pile = NewDiscardPile()
	g.started = false

	require.NoError(t, g.Start(context.Background()))

	top := g.pile.PeekTop()
	require.Equal(t, KindWild, top.Kind())
	color, ok := top.Color()
	require.True(t, ok)
	assert.Equal(t, ColorGreen, color, "the first player names their majority color")
	assert.Equal(t, South, g.CurrentPosition(), "the bootstrap flip triggers no effect")
	assert.Equal(t, 3, g.players[0].HandSize(), "naming a color costs no card")
}

func TestStartIsIdempotent(t *testing.T) {
	g := NewGame(testRNG(7), [PlayerCount]Strategy{
		AIStrategy{}, AIStrategy{}, AIStrategy{}, AIStrategy{},
	}, nil)

	require.NoError(t, g.Start(context.Background()))
	deckBefore := g.DeckSize()
	require.NoError(t, g.Start(context.Background()))

	assert.Equal(t, deckBefore, g.DeckSize())
	assert.Equal(t, 1, g.pile.Size())
}

func TestNewGameDealsSevenEach(t *testing.T) {
	g := NewGame(testRNG(3), [PlayerCount]Strategy{
		AIStrategy{}, AIStrategy{}, AIStrategy{}, AIStrategy{},
	}, nil)

	for _, player := range g.Players() {
		assert.Equal(t, startingHandSize, player.HandSize())
	}
	assert.Equal(t, DeckSize-PlayerCount*startingHandSize, g.DeckSize())
	assert.Equal(t, 0, g.pile.Size())
}

func TestReshuffleFromDiscardOnEmptyDeck(t *testing.T) {
	g := newScriptedGame(
		[PlayerCount][]Card{fillerHand(), fillerHand(), fillerHand(), fillerHand()},
		nil,
		mustNumberCard(ColorRed, 5),
	)
	wild := NewWildCard(SymbolWild)
	wild.AssignColor(ColorBlue)
	g.pile.Push(wild)
	g.pile.Push(mustNumberCard(ColorBlue, 8))
	g.pile.Push(mustNumberCard(ColorYellow, 1))

	drawn := g.drawCard()

	assert.Equal(t, 1, g.pile.Size(), "only the top card stays on the pile")
	assert.Equal(t, mustNumberCard(ColorYellow, 1), g.pile.PeekTop())
	assert.Equal(t, 2, g.DeckSize())

	// The buried cards, including the wild stripped back to colorless, are
	// now the draw pool.
	pool := []Card{drawn}
	for !g.deck.Empty() {
		pool = append(pool, g.deck.Draw())
	}
	assert.ElementsMatch(t, []Card{
		mustNumberCard(ColorRed, 5),
		NewWildCard(SymbolWild),
		mustNumberCard(ColorBlue, 8),
	}, pool)
}

// legalityListener verifies on every event that each play was legal against
// the previous pile top and that the 108 cards stay conserved across the
// deck, the pile and the four hands.
type legalityListener struct {
	NopListener
	t       *testing.T
	game    *Game
	prevTop Card
	plays   int
}

func (l *legalityListener) FirstCardFlipped(card Card) {
	l.prevTop = card
}

func (l *legalityListener) CardPlayed(position Position, card Card) {
	if !card.CanPlayOn(l.prevTop) {
		l.t.Errorf("%s played %s on %s", position, card, l.prevTop)
	}
	l.prevTop = card
	l.plays++
}

func (l *legalityListener) TurnChanged(Position) {
	total := l.game.DeckSize() + l.game.Pile().Size()
	for _, player := range l.game.Players() {
		total += player.HandSize()
	}
	if total != DeckSize {
		l.t.Errorf("card count drifted to %d", total)
	}
}

func TestFullGamesPlayOutLegally(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			listener := &legalityListener{t: t}
			g := NewGame(testRNG(seed), [PlayerCount]Strategy{
				AIStrategy{}, AIStrategy{}, AIStrategy{}, AIStrategy{},
			}, listener)
			listener.game = g

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			require.NoError(t, g.Run(ctx))

			require.True(t, g.Over())
			winner, ok := g.Winner()
			require.True(t, ok)
			assert.True(t, g.players[positionIndex(winner)].HandEmpty())
			assert.Positive(t, listener.plays)

			// The full card set survives the game, wilds normalized back to
			// colorless for comparison.
			remaining := g.pile.Cards()
			for !g.deck.Empty() {
				remaining = append(remaining, g.deck.Draw())
			}
			for _, player := range g.Players() {
				remaining = append(remaining, player.Hand()...)
			}
			for i := range remaining {
				if remaining[i].Kind() == KindWild {
					remaining[i].colored = false
					remaining[i].color = 0
				}
			}
			assert.ElementsMatch(t, standardSet(), remaining)

			for _, player := range g.Players() {
				hand := player.Hand()
				sorted := sort.SliceIsSorted(hand, func(i, j int) bool {
					return hand[i].AtlasIndex() < hand[j].AtlasIndex()
				})
				assert.True(t, sorted, "%s hand out of order: %v", player.Position(), hand)
			}
		})
	}
}

func positionIndex(position Position) int {
	for i, p := range seatOrder {
		if p == position {
			return i
		}
	}
	return -1
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	human := NewHumanStrategy()
	g := NewGame(testRNG(11), [PlayerCount]Strategy{
		human, AIStrategy{}, AIStrategy{}, AIStrategy{},
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- g.Run(ctx)
	}()

	// The human never answers; cancellation must unwind the turn goroutine.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancellation")
	}
}
