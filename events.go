package main

// GameListener receives one-way notifications from the turn engine. The UI
// refreshes and the audio layer plays cues in response; the engine itself
// never depends on either. Callbacks run on the turn goroutine and must not
// block.
type GameListener interface {
	// FirstCardFlipped is the bootstrap flip that seeds the discard pile.
	FirstCardFlipped(card Card)
	// CardPlayed fires after a resolved play has been pushed to the pile.
	CardPlayed(position Position, card Card)
	// CardsDrawn fires once per draw batch, voluntary or forced.
	CardsDrawn(position Position, count int)
	// ColorPicked fires when a wild card has been given its color.
	ColorPicked(position Position, color Color)
	// TurnChanged fires when the turn pointer lands on the next player.
	TurnChanged(position Position)
	// GameOver fires when a player sheds their last card.
	GameOver(winner Position)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) FirstCardFlipped(Card)       {}
func (NopListener) CardPlayed(Position, Card)   {}
func (NopListener) CardsDrawn(Position, int)    {}
func (NopListener) ColorPicked(Position, Color) {}
func (NopListener) TurnChanged(Position)        {}
func (NopListener) GameOver(Position)           {}
