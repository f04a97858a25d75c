package main

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerHandStaysSorted(t *testing.T) {
	player := NewPlayer(South, AIStrategy{})
	for _, card := range []Card{
		mustNumberCard(ColorYellow, 9),
		NewWildCard(SymbolWild),
		mustNumberCard(ColorRed, 2),
		NewActionCard(ColorBlue, ActionSkip),
		mustNumberCard(ColorRed, 2),
		mustNumberCard(ColorGreen, 0),
	} {
		player.AddCard(card)
	}

	hand := player.Hand()
	require.Len(t, hand, 6)
	sorted := sort.SliceIsSorted(hand, func(i, j int) bool {
		return hand[i].AtlasIndex() < hand[j].AtlasIndex()
	})
	assert.True(t, sorted, "hand must be sorted by atlas index: %v", hand)
}

func TestPlayerHasPlayableCard(t *testing.T) {
	player := NewPlayer(West, AIStrategy{})
	player.AddCard(mustNumberCard(ColorBlue, 3))
	player.AddCard(NewActionCard(ColorGreen, ActionReverse))

	assert.True(t, player.HasPlayableCard(mustNumberCard(ColorBlue, 7)))
	assert.True(t, player.HasPlayableCard(mustNumberCard(ColorRed, 3)))
	assert.False(t, player.HasPlayableCard(mustNumberCard(ColorRed, 7)))

	player.AddCard(NewWildCard(SymbolWild))
	assert.True(t, player.HasPlayableCard(mustNumberCard(ColorRed, 7)))
}

func TestAIPlaysFirstCompatibleInSortedOrder(t *testing.T) {
	player := NewPlayer(North, AIStrategy{})
	player.AddCard(mustNumberCard(ColorBlue, 5))
	player.AddCard(mustNumberCard(ColorRed, 7))
	player.AddCard(mustNumberCard(ColorRed, 2))

	// Red 2 and Red 7 are both playable on Red 9; the lowest atlas index
	// wins.
	card, err := player.PlayCard(context.Background(), mustNumberCard(ColorRed, 9))
	require.NoError(t, err)
	assert.Equal(t, mustNumberCard(ColorRed, 2), card)
	assert.Equal(t, 2, player.HandSize())
}

func TestAISelectWildColor(t *testing.T) {
	t.Run("majority_color", func(t *testing.T) {
		player := NewPlayer(North, AIStrategy{})
		player.AddCard(mustNumberCard(ColorGreen, 1))
		player.AddCard(NewActionCard(ColorGreen, ActionSkip))
		player.AddCard(mustNumberCard(ColorRed, 4))

		color, err := player.SelectWildColor(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ColorGreen, color)
	})

	t.Run("tie_breaks_in_declaration_order", func(t *testing.T) {
		player := NewPlayer(North, AIStrategy{})
		player.AddCard(mustNumberCard(ColorYellow, 4))
		player.AddCard(mustNumberCard(ColorBlue, 1))

		color, err := player.SelectWildColor(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ColorBlue, color)
	})

	t.Run("wilds_do_not_count", func(t *testing.T) {
		player := NewPlayer(North, AIStrategy{})
		player.AddCard(NewWildCard(SymbolWildDrawFour))
		player.AddCard(mustNumberCard(ColorYellow, 4))

		color, err := player.SelectWildColor(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ColorYellow, color)
	})
}

func TestHumanPlayCardWaitsForSubmission(t *testing.T) {
	human := NewHumanStrategy()
	player := NewPlayer(South, human)
	player.AddCard(mustNumberCard(ColorRed, 5))
	player.AddCard(mustNumberCard(ColorBlue, 9))

	type result struct {
		card Card
		err  error
	}
	done := make(chan result, 1)
	go func() {
		card, err := player.PlayCard(context.Background(), mustNumberCard(ColorRed, 9))
		done <- result{card, err}
	}()

	require.Eventually(t, human.AwaitingCard, time.Second, 5*time.Millisecond)
	// Both hand cards are playable on Red 9; the human picks the second.
	human.SubmitCard(1)

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Equal(t, mustNumberCard(ColorBlue, 9), res.card)
		assert.Equal(t, 1, player.HandSize())
	case <-time.After(time.Second):
		t.Fatal("PlayCard did not return after submission")
	}
}

func TestHumanSelectColorWaitsForSubmission(t *testing.T) {
	human := NewHumanStrategy()
	player := NewPlayer(South, human)

	type result struct {
		color Color
		err   error
	}
	done := make(chan result, 1)
	go func() {
		color, err := player.SelectWildColor(context.Background())
		done <- result{color, err}
	}()

	require.Eventually(t, human.PickingColor, time.Second, 5*time.Millisecond)
	human.SubmitColor(ColorYellow)

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Equal(t, ColorYellow, res.color)
	case <-time.After(time.Second):
		t.Fatal("SelectWildColor did not return after submission")
	}
}

func TestHumanWaitsUnblockOnCancel(t *testing.T) {
	human := NewHumanStrategy()
	player := NewPlayer(South, human)
	player.AddCard(mustNumberCard(ColorRed, 5))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := player.PlayCard(ctx, mustNumberCard(ColorRed, 9))
		errCh <- err
	}()

	require.Eventually(t, human.AwaitingCard, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("PlayCard did not unblock on cancellation")
	}
}

func TestHumanSubmissionsDroppedWhenNotPrompted(t *testing.T) {
	human := NewHumanStrategy()
	// Stray taps before any prompt must not queue up a stale selection.
	human.SubmitCard(3)
	human.SubmitColor(ColorRed)

	select {
	case index := <-human.cardCh:
		t.Fatalf("unexpected queued card index %d", index)
	default:
	}
	select {
	case color := <-human.colorCh:
		t.Fatalf("unexpected queued color %s", color)
	default:
	}
}
