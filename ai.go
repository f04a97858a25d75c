package main

import (
	"context"
	"errors"
	"time"
)

// defaultThinkingDelay is the cosmetic pause before a computer move, so
// plays remain readable at the table. It involves no real computation.
const defaultThinkingDelay = 1500 * time.Millisecond

// AIStrategy is a fully deterministic computer opponent: it plays the first
// playable card in sorted hand order and names the most common color left in
// its hand for wilds.
type AIStrategy struct {
	Delay time.Duration // 0 disables the thinking pause (used in tests)
}

// SelectCard returns the index of the first card in hand playable on top.
func (s AIStrategy) SelectCard(ctx context.Context, hand []Card, top Card) (int, error) {
	for index, card := range hand {
		if card.CanPlayOn(top) {
			if err := s.think(ctx); err != nil {
				return 0, err
			}
			return index, nil
		}
	}
	return 0, errors.New("no playable card in hand")
}

// SelectColor picks the color with the highest count among the colored cards
// remaining in hand. Ties break in declaration order (Red, Blue, Green,
// Yellow); a hand of only wilds falls back to Red the same way.
func (s AIStrategy) SelectColor(ctx context.Context, hand []Card) (Color, error) {
	if err := s.think(ctx); err != nil {
		return 0, err
	}
	var counts [NumColors]int
	for _, card := range hand {
		if card.Kind() == KindWild {
			continue
		}
		color, _ := card.Color()
		counts[color]++
	}
	best := ColorRed
	for color := ColorRed; color < NumColors; color++ {
		if counts[color] > counts[best] {
			best = color
		}
	}
	return best, nil
}

func (s AIStrategy) think(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
