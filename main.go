package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/ytget/uikit/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.uikit"
	AppName = "UI Kit Playground"

	// LogLevelEnv selects the logrus level, e.g. UIKIT_LOG_LEVEL=debug
	LogLevelEnv = "UIKIT_LOG_LEVEL"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(os.Getenv(LogLevelEnv)); err == nil {
		log.SetLevel(level)
	}

	log.WithField("version", version).Info("UI Kit Playground starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI; it applies the compact theme with the configured toast colors
	ui.NewRootUI(myWindow, myApp, ui.WithLogger(log))

	// Show and run
	myWindow.ShowAndRun()
}
