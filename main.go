package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

func main() {
	settings := loadSettings(settingsFile)

	myApp := app.New()
	myApp.Settings().SetTheme(newTableTheme(myApp.Settings().Theme()))
	myWindow := myApp.NewWindow("UNO")
	myWindow.Resize(fyne.NewSize(settings.WindowWidth, settings.WindowHeight))

	// Resources and audio are initialized after the app exists.
	loadResources()
	sounds := newSoundBank(settings.Volume)

	ui := newTableUI(myWindow, settings, sounds)
	myWindow.SetContent(ui.buildLayout())
	myWindow.CenterOnScreen()

	// Closing the window must unblock the turn goroutine, which may be
	// waiting on a card or color selection.
	myWindow.SetCloseIntercept(func() {
		dialog.ShowConfirm("Exit", "Are you sure you want to quit?", func(confirmed bool) {
			if confirmed {
				ui.stopGame()
				myApp.Quit()
			}
		}, myWindow)
	})

	myWindow.ShowAndRun()
}
