package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// tableUI holds the Fyne widgets and drives one game at a time. It renders
// snapshots of the game state; the turn engine runs on its own goroutine and
// notifies the UI through the GameListener callbacks below.
type tableUI struct {
	window   fyne.Window
	settings Settings
	sounds   *soundBank

	game   *Game
	human  *HumanStrategy
	cancel context.CancelFunc

	// Hand containers are rebuilt on every refresh since hand sizes change
	// constantly.
	southHand *fyne.Container
	westHand  *fyne.Container
	northHand *fyne.Container
	eastHand  *fyne.Container

	topCard     *cardImage
	underCard   *cardImage
	deckBack    *canvas.Image
	deckLabel   *widget.Label
	infoLabel   *widget.Label
	startButton *widget.Button

	pickerOpen bool
	colorPick  dialog.Dialog
}

func newTableUI(window fyne.Window, settings Settings, sounds *soundBank) *tableUI {
	return &tableUI{
		window:   window,
		settings: settings,
		sounds:   sounds,
	}
}

// minSizeLayout enforces a minimum size on its content; used for fixed-size
// spacers around the table center.
type minSizeLayout struct {
	min fyne.Size
}

func (m *minSizeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(size)
	}
}

func (m *minSizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return m.min
}

func (ui *tableUI) buildLayout() fyne.CanvasObject {
	ui.southHand = container.NewHBox()
	ui.northHand = container.NewHBox()
	ui.westHand = container.NewVBox()
	ui.eastHand = container.NewVBox()

	// Table center: face-down deck on the left, discard pile on the right
	// with the previous card peeking out from under the top card.
	ui.deckBack = canvas.NewImageFromResource(resourceCardBack)
	ui.deckBack.FillMode = canvas.ImageFillContain
	ui.deckBack.SetMinSize(fyne.NewSize(75, 99))
	ui.deckLabel = widget.NewLabel("")
	ui.deckLabel.Alignment = fyne.TextAlignCenter
	deckGroup := container.NewVBox(ui.deckBack, ui.deckLabel)

	ui.underCard = newCardImage(nil)
	ui.topCard = newCardImage(nil)
	pileStack := container.NewWithoutLayout(ui.underCard, ui.topCard)
	pileStack.Resize(fyne.NewSize(81, 105))
	ui.underCard.Resize(fyne.NewSize(75, 99))
	ui.underCard.Move(fyne.NewPos(6, 6))
	ui.topCard.Resize(fyne.NewSize(75, 99))
	ui.topCard.Move(fyne.NewPos(0, 0))
	sizedPile := container.New(&minSizeLayout{min: pileStack.Size()}, pileStack)

	ui.infoLabel = widget.NewLabel("Welcome to UNO! Press Start to play.")
	ui.infoLabel.Alignment = fyne.TextAlignCenter
	ui.startButton = widget.NewButton("Start", func() {
		if ui.game != nil && !ui.game.Over() {
			dialog.ShowConfirm("New Game", "Abandon the current game?", func(confirmed bool) {
				if confirmed {
					ui.startGame()
				}
			}, ui.window)
			return
		}
		ui.startGame()
	})

	centerRow := container.New(layout.NewCenterLayout(),
		container.NewHBox(deckGroup, container.New(&minSizeLayout{min: fyne.NewSize(40, 0)}), sizedPile))
	center := container.NewVBox(
		layout.NewSpacer(),
		centerRow,
		ui.infoLabel,
		container.New(layout.NewCenterLayout(), ui.startButton),
		layout.NewSpacer(),
	)

	background := canvas.NewImageFromResource(resourceBackground)
	table := container.NewBorder(
		container.New(layout.NewCenterLayout(), ui.northHand),
		container.New(layout.NewCenterLayout(), ui.southHand),
		container.New(layout.NewCenterLayout(), ui.westHand),
		container.New(layout.NewCenterLayout(), ui.eastHand),
		center,
	)
	return container.NewStack(background, table)
}

// startGame cancels any running game and starts a fresh one. The human sits
// at the South seat; the three other seats are deterministic AI opponents.
func (ui *tableUI) startGame() {
	ui.stopGame()

	seed := ui.settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ui.human = NewHumanStrategy()
	ui.human.SetPrompt(func() { fyne.Do(ui.refresh) })
	ai := AIStrategy{Delay: ui.settings.ThinkingDelay()}
	strategies := [PlayerCount]Strategy{ui.human, ai, ai, ai}
	ui.game = NewGame(rng, strategies, ui)

	ctx, cancel := context.WithCancel(context.Background())
	ui.cancel = cancel
	game := ui.game
	go func() {
		if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("game stopped: %v", err)
		}
	}()

	ui.sounds.Play(SoundGameStart)
	ui.sounds.Play(SoundShuffle)
	ui.startButton.SetText("New Game")
	ui.infoLabel.SetText("")
	ui.refresh()
}

// stopGame unblocks and terminates the turn goroutine. Safe to call with no
// game running.
func (ui *tableUI) stopGame() {
	if ui.cancel != nil {
		ui.cancel()
		ui.cancel = nil
	}
	if ui.colorPick != nil {
		ui.colorPick.Hide()
		ui.colorPick = nil
		ui.pickerOpen = false
	}
}

// refresh redraws the table from a snapshot of the game state. Runs on the
// Fyne event thread only.
func (ui *tableUI) refresh() {
	g := ui.game
	if g == nil {
		return
	}

	pileCards := g.Pile().Cards()
	if len(pileCards) > 0 {
		ui.topCard.Resource = cardResource(pileCards[len(pileCards)-1])
	} else {
		ui.topCard.Resource = nil
	}
	if len(pileCards) > 1 {
		ui.underCard.Resource = cardResource(pileCards[len(pileCards)-2])
	} else {
		ui.underCard.Resource = nil
	}
	ui.topCard.Refresh()
	ui.underCard.Refresh()
	ui.deckLabel.SetText(fmt.Sprintf("%d", g.DeckSize()))

	current := g.CurrentPosition()
	for _, player := range g.Players() {
		ui.refreshHand(player, pileCards, current)
	}

	if winner, over := g.Winner(); over {
		ui.infoLabel.SetText(fmt.Sprintf("Game over: %s wins!", seatName(winner)))
	} else if current == South && ui.human.AwaitingCard() {
		ui.infoLabel.SetText("Your turn: tap a highlighted card.")
	} else {
		ui.infoLabel.SetText(fmt.Sprintf("%s is thinking...", seatName(current)))
	}

	if ui.human.PickingColor() && !ui.pickerOpen {
		ui.showColorPicker()
	}
}

// refreshHand rebuilds one seat's hand container. The South hand is face-up
// and tappable; the other three render card backs only.
func (ui *tableUI) refreshHand(player *Player, pileCards []Card, current Position) {
	hand := player.Hand()
	var box *fyne.Container
	switch player.Position() {
	case South:
		box = ui.southHand
	case West:
		box = ui.westHand
	case North:
		box = ui.northHand
	case East:
		box = ui.eastHand
	}
	box.RemoveAll()

	if player.Position() != South {
		for range hand {
			back := canvas.NewImageFromResource(resourceCardBack)
			back.FillMode = canvas.ImageFillContain
			back.SetMinSize(fyne.NewSize(45, 60))
			box.Add(back)
		}
		box.Refresh()
		return
	}

	var top Card
	hasTop := len(pileCards) > 0
	if hasTop {
		top = pileCards[len(pileCards)-1]
	}
	selectable := current == South && ui.human != nil && ui.human.AwaitingCard()
	for i, card := range hand {
		index := i
		img := newCardImage(func() {
			ui.playCard(index)
		})
		img.Resource = cardResource(card)
		img.Dimmed = selectable && hasTop && !card.CanPlayOn(top)
		box.Add(img)
	}
	box.Refresh()
}

// playCard submits the tapped hand index to the turn goroutine, after
// checking the tap is valid right now: it must be the human's turn, a
// selection must be pending, and the card must be playable on the top card.
func (ui *tableUI) playCard(index int) {
	g := ui.game
	if g == nil || ui.human == nil || !ui.human.AwaitingCard() || g.CurrentPosition() != South {
		return
	}
	hand := g.Players()[0].Hand()
	pileCards := g.Pile().Cards()
	if index >= len(hand) || len(pileCards) == 0 {
		return
	}
	if !hand[index].CanPlayOn(pileCards[len(pileCards)-1]) {
		return
	}
	ui.human.SubmitCard(index)
}

// showColorPicker opens the four-color chooser for a wild card the human
// just played.
func (ui *tableUI) showColorPicker() {
	ui.pickerOpen = true
	buttons := container.NewGridWithColumns(2)
	for _, c := range []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow} {
		chosen := c
		buttons.Add(widget.NewButton(chosen.String(), func() {
			ui.human.SubmitColor(chosen)
			if ui.colorPick != nil {
				ui.colorPick.Hide()
				ui.colorPick = nil
			}
			ui.pickerOpen = false
		}))
	}
	ui.colorPick = dialog.NewCustomWithoutButtons("Choose a color", buttons, ui.window)
	ui.colorPick.Show()
}

// showGameOver announces the winner and offers a rematch.
func (ui *tableUI) showGameOver(winner Position) {
	message := fmt.Sprintf("%s wins! Play again?", seatName(winner))
	if winner == South {
		message = "You win! Play again?"
	}
	dialog.ShowConfirm("Game Over", message, func(confirmed bool) {
		if confirmed {
			ui.startGame()
		}
	}, ui.window)
}

// seatName names a seat from the human's point of view.
func seatName(position Position) string {
	if position == South {
		return "You"
	}
	return position.String()
}

// The GameListener callbacks below run on the turn goroutine; they play a
// sound cue and hand the redraw to the Fyne event thread.

func (ui *tableUI) FirstCardFlipped(Card) {
	ui.sounds.Play(SoundCardPlace)
	fyne.Do(ui.refresh)
}

func (ui *tableUI) CardPlayed(Position, Card) {
	ui.sounds.Play(SoundCardPlace)
	fyne.Do(ui.refresh)
}

func (ui *tableUI) CardsDrawn(Position, int) {
	ui.sounds.Play(SoundCardDraw)
	fyne.Do(ui.refresh)
}

func (ui *tableUI) ColorPicked(Position, Color) {
	fyne.Do(ui.refresh)
}

func (ui *tableUI) TurnChanged(Position) {
	fyne.Do(ui.refresh)
}

func (ui *tableUI) GameOver(winner Position) {
	if winner == South {
		ui.sounds.Play(SoundPlayerWins)
	} else {
		ui.sounds.Play(SoundOpponentWins)
	}
	fyne.Do(func() {
		ui.refresh()
		ui.showGameOver(winner)
	})
}
