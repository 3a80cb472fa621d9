package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/group-creator/internal/config"
	"github.com/ytget/group-creator/internal/journal"
	"github.com/ytget/group-creator/internal/logging"
	"github.com/ytget/group-creator/internal/ui"
	"github.com/ytget/group-creator/internal/workflow"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.group-creator"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	logger := logging.New(settings.GetLogLevel(), logging.FormatText, os.Stderr)
	slog.SetDefault(logger)
	logger.Info("group creator starting", slog.String("version", version))

	myWindow := myApp.NewWindow(ui.TextWindowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if icon, err := ui.LoadAppIconResource(); err == nil {
		myWindow.SetIcon(icon)
	}

	// Initialize services
	groupLog := journal.NewFileJournal(settings.GetJournalPath())
	logger.Debug("group log", slog.String("path", groupLog.Path()))
	creator := workflow.NewService(settings.WorkflowConfig(), groupLog, logger)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, creator, logger)

	// Show and run
	myWindow.ShowAndRun()
}
