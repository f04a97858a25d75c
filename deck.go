package main

import (
	"math/rand"
	"sync"
)

// DeckSize is the number of cards in a full UNO deck.
const DeckSize = 108

// Deck is a shuffled stack of UNO cards. Cards are drawn from the top; when
// the deck runs out, the engine refills it from the discard pile. The turn
// goroutine is the only writer, but the render layer reads the remaining
// count, so access is guarded by a mutex.
type Deck struct {
	mu    sync.Mutex
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds the full 108-card set and shuffles it with the supplied
// random source. A fixed seed produces a reproducible order.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: standardSet(),
		rng:   rng,
	}
	d.shuffle()
	return d
}

// standardSet returns the 108 cards of a UNO deck: for each of the four
// colors one zero, two each of 1 through 9 and two each of Draw Two, Reverse
// and Skip, plus four Wild and four Wild Draw Four cards.
func standardSet() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, color := range []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow} {
		cards = append(cards, mustNumberCard(color, 0))
		for number := 1; number <= 9; number++ {
			cards = append(cards, mustNumberCard(color, number), mustNumberCard(color, number))
		}
		for _, symbol := range []ActionSymbol{ActionDrawTwo, ActionReverse, ActionSkip} {
			cards = append(cards, NewActionCard(color, symbol), NewActionCard(color, symbol))
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, NewWildCard(SymbolWild), NewWildCard(SymbolWildDrawFour))
	}
	return cards
}

// shuffle permutes the remaining cards in place. Callers hold the mutex or
// have exclusive access during construction.
func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. Drawing from an empty deck means
// the engine failed to refill it first; with 108 cards in circulation that
// is a card accounting bug, so it panics rather than misbehaving quietly.
func (d *Deck) Draw() Card {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.cards) == 0 {
		panic("uno: draw from an empty deck")
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

// Refill returns reclaimed discard-pile cards to the deck and shuffles.
// Wild cards lose their assigned color so they re-enter circulation
// colorless.
func (d *Deck) Refill(cards []Card) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range cards {
		if cards[i].kind == KindWild {
			cards[i].colored = false
			cards[i].color = 0
		}
	}
	d.cards = append(d.cards, cards...)
	d.shuffle()
}

// Size returns the number of cards left in the deck.
func (d *Deck) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cards)
}

// Empty reports whether the deck has no cards left.
func (d *Deck) Empty() bool {
	return d.Size() == 0
}
