package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pngify/pngify/internal/convert"
	"github.com/pngify/pngify/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.pngify.pngify")
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("PNGify")
	myWindow.Resize(fyne.NewSize(640, 560))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, convert.NewService())

	// Show and run
	myWindow.ShowAndRun()
}
