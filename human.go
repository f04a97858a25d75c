package main

import (
	"context"
	"sync/atomic"
)

// HumanStrategy bridges the Fyne event thread and the turn goroutine. The
// turn goroutine blocks on a single-slot channel until the UI delivers the
// selected hand index or color; no card is ever chosen on the human's
// behalf. Cancelling the context unblocks both waits so closing the window
// never leaves the turn goroutine hanging.
type HumanStrategy struct {
	cardCh  chan int
	colorCh chan Color

	awaitingCard atomic.Bool
	pickingColor atomic.Bool

	// prompt is invoked when a wait begins, so the event-driven UI can
	// highlight playable cards or open the color picker without polling.
	prompt func()
}

// NewHumanStrategy creates an input bridge for one human player.
func NewHumanStrategy() *HumanStrategy {
	return &HumanStrategy{
		cardCh:  make(chan int, 1),
		colorCh: make(chan Color, 1),
	}
}

// SetPrompt registers the UI notification callback. It must be set before
// the game starts; the callback runs on the turn goroutine.
func (s *HumanStrategy) SetPrompt(prompt func()) {
	s.prompt = prompt
}

func (s *HumanStrategy) notifyPrompt() {
	if s.prompt != nil {
		s.prompt()
	}
}

// SelectCard blocks until the UI submits a hand index. The UI only permits
// tapping playable cards, so the index it delivers references a card
// compatible with the pile top.
func (s *HumanStrategy) SelectCard(ctx context.Context, hand []Card, top Card) (int, error) {
	s.awaitingCard.Store(true)
	defer s.awaitingCard.Store(false)
	s.notifyPrompt()
	select {
	case index := <-s.cardCh:
		return index, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// SelectColor blocks until the UI submits one of the four colors from the
// color picker.
func (s *HumanStrategy) SelectColor(ctx context.Context, hand []Card) (Color, error) {
	s.pickingColor.Store(true)
	defer s.pickingColor.Store(false)
	s.notifyPrompt()
	select {
	case color := <-s.colorCh:
		return color, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// SubmitCard delivers a tapped hand index. Taps that arrive while no
// selection is pending are dropped.
func (s *HumanStrategy) SubmitCard(index int) {
	if !s.awaitingCard.Load() {
		return
	}
	select {
	case s.cardCh <- index:
	default:
	}
}

// SubmitColor delivers a color-picker choice. Clicks that arrive while no
// pick is pending are dropped.
func (s *HumanStrategy) SubmitColor(color Color) {
	if !s.pickingColor.Load() {
		return
	}
	select {
	case s.colorCh <- color:
	default:
	}
}

// AwaitingCard reports whether the turn goroutine is waiting for a card
// selection; the UI uses it to enable taps and highlight playable cards.
func (s *HumanStrategy) AwaitingCard() bool {
	return s.awaitingCard.Load()
}

// PickingColor reports whether the color picker should be shown.
func (s *HumanStrategy) PickingColor() bool {
	return s.pickingColor.Load()
}
