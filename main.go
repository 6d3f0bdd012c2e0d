package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pngify/pngify/internal/config"
	"github.com/pngify/pngify/internal/convert"
	"github.com/pngify/pngify/internal/platform"
	"github.com/pngify/pngify/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.pngify.pngify"
	AppName = "PNGify"

	WindowWidth  = 640
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		log.Printf("failed to ensure output dir: %v", err)
	}

	convertSvc := convert.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, convertSvc)

	// Show and run
	myWindow.ShowAndRun()
}
