package main

import (
	"fmt"
)

// Color is one of the four UNO suit colors.
type Color int

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
)

// NumColors is the fixed number of suit colors.
const NumColors = 4

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "Red"
	case ColorBlue:
		return "Blue"
	case ColorGreen:
		return "Green"
	case ColorYellow:
		return "Yellow"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// CardKind discriminates the card variants.
type CardKind int

const (
	KindNumber CardKind = iota
	KindAction
	KindWild
)

// ActionSymbol is the face of an action card.
type ActionSymbol int

const (
	ActionDrawTwo ActionSymbol = iota
	ActionReverse
	ActionSkip
)

func (s ActionSymbol) String() string {
	switch s {
	case ActionDrawTwo:
		return "Draw Two"
	case ActionReverse:
		return "Reverse"
	case ActionSkip:
		return "Skip"
	}
	return fmt.Sprintf("ActionSymbol(%d)", int(s))
}

// WildSymbol is the face of a wild card.
type WildSymbol int

const (
	SymbolWild WildSymbol = iota
	SymbolWildDrawFour
)

func (s WildSymbol) String() string {
	switch s {
	case SymbolWild:
		return "Wild"
	case SymbolWildDrawFour:
		return "Wild Draw Four"
	}
	return fmt.Sprintf("WildSymbol(%d)", int(s))
}

// Card is a single UNO card. It is a small value type with a closed set of
// variants (number, action, wild); the zero Card is not a valid card, cards
// are created through the New*Card constructors.
type Card struct {
	kind    CardKind
	color   Color
	number  int
	action  ActionSymbol
	wild    WildSymbol
	colored bool // wild cards only: a replacement color has been assigned
}

// NewNumberCard creates a number card. The number must be between 0 and 9.
func NewNumberCard(color Color, number int) (Card, error) {
	if number < 0 || number > 9 {
		return Card{}, fmt.Errorf("invalid card number %d: must be between 0 and 9", number)
	}
	return Card{kind: KindNumber, color: color, number: number}, nil
}

// mustNumberCard is used where the number is known to be valid, such as deck
// genesis.
func mustNumberCard(color Color, number int) Card {
	card, err := NewNumberCard(color, number)
	if err != nil {
		panic(err)
	}
	return card
}

// NewActionCard creates a Draw Two, Reverse or Skip card.
func NewActionCard(color Color, symbol ActionSymbol) Card {
	return Card{kind: KindAction, color: color, action: symbol}
}

// NewWildCard creates a Wild or Wild Draw Four card. The card starts
// colorless; a color is assigned when it is played.
func NewWildCard(symbol WildSymbol) Card {
	return Card{kind: KindWild, wild: symbol}
}

// Kind returns which variant this card is.
func (c Card) Kind() CardKind {
	return c.kind
}

// Color returns the card's color. The second return value is false only for
// a wild card that has not had a color assigned yet.
func (c Card) Color() (Color, bool) {
	if c.kind == KindWild && !c.colored {
		return 0, false
	}
	return c.color, true
}

// Number returns the face number of a number card.
func (c Card) Number() int {
	return c.number
}

// Action returns the symbol of an action card.
func (c Card) Action() ActionSymbol {
	return c.action
}

// Wild returns the symbol of a wild card.
func (c Card) Wild() WildSymbol {
	return c.wild
}

// Value returns the scoring value of the card.
func (c Card) Value() int {
	switch c.kind {
	case KindNumber:
		return c.number
	case KindAction:
		return 20
	default:
		return 50
	}
}

// AtlasIndex returns the index of the card's face in the sprite atlas. It is
// also the sort key for hands: each distinct (color, face) pair maps to a
// distinct index, and colorless wild cards occupy a range of their own.
func (c Card) AtlasIndex() int {
	switch c.kind {
	case KindNumber:
		return int(c.color)*13 + c.number
	case KindAction:
		return int(c.color)*13 + 10 + int(c.action)
	default:
		if !c.colored {
			return NumColors*13 + int(c.wild)
		}
		return 56 + int(c.wild)*4 + int(c.color)
	}
}

// AssignColor gives a wild card its replacement color. Assignment happens
// exactly once per play; assigning to a non-wild card or to a wild card that
// already has a color is a logic error and panics.
func (c *Card) AssignColor(color Color) {
	if c.kind != KindWild {
		panic("uno: AssignColor called on a non-wild card")
	}
	if c.colored {
		panic("uno: wild card color assigned twice")
	}
	c.color = color
	c.colored = true
}

// CanPlayOn reports whether this card may legally be played on top of other.
// The other card is the current top of the discard pile; it must never be a
// colorless wild card, because the engine assigns a color to every wild
// before it reaches the pile.
func (c Card) CanPlayOn(other Card) bool {
	if c.kind == KindWild {
		return true
	}
	otherColor, ok := other.Color()
	if !ok {
		panic("uno: compatibility check against a wild card with no color")
	}
	if c.color == otherColor {
		return true
	}
	switch c.kind {
	case KindNumber:
		return other.kind == KindNumber && c.number == other.number
	case KindAction:
		return other.kind == KindAction && c.action == other.action
	}
	return false
}

// String representation for debugging and logs.
func (c Card) String() string {
	switch c.kind {
	case KindNumber:
		return fmt.Sprintf("%s %d", c.color, c.number)
	case KindAction:
		return fmt.Sprintf("%s %s", c.color, c.action)
	default:
		if !c.colored {
			return c.wild.String()
		}
		return fmt.Sprintf("%s (%s)", c.wild, c.color)
	}
}
