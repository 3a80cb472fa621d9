package ui

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/group-creator/internal/config"
	"github.com/ytget/group-creator/internal/model"
	"github.com/ytget/group-creator/internal/platform"
	"github.com/ytget/group-creator/internal/validation"
	"github.com/ytget/group-creator/internal/workflow"
)

// RootUI represents the group creation screen
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	creator  workflow.Creator
	settings *config.Settings
	logger   *slog.Logger

	// ctx is cancelled when the window closes, which aborts a running creation
	ctx    context.Context
	cancel context.CancelFunc

	// Draft edited by the user. Only touched on the UI goroutine.
	draft model.GroupDraft
	// Logo of the submitted run, shown in its summary
	runLogo string
	// Goroutines forwarding run events
	watchers sync.WaitGroup

	nameEntry   *widget.Entry
	phonesEntry *widget.Entry
	uploadBtn   *widget.Button
	createBtn   *widget.Button
	logoPreview *canvas.Image
	progressBar *widget.ProgressBar
	activity    *widget.ProgressBarInfinite

	hintText    *fadingText
	successText *fadingText
	errorText   *fadingText
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, creator workflow.Creator, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	ui := &RootUI{
		window:   window,
		app:      app,
		creator:  creator,
		settings: settings,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}

	window.SetTitle(TextWindowTitle)
	window.SetOnClosed(ui.Close)

	ui.creator.SetStateCallback(ui.onStateChange)

	ui.setupUI()
	logger.Debug("group creation screen initialized")
	return ui
}

// Close aborts any running creation
func (ui *RootUI) Close() {
	ui.cancel()
}

// Draft returns a copy of the draft as currently edited
func (ui *RootUI) Draft() model.GroupDraft {
	return ui.draft
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.nameEntry = widget.NewEntry()
	ui.nameEntry.SetPlaceHolder(TextNamePlaceholder)
	ui.nameEntry.OnChanged = func(text string) {
		ui.draft.Name = text
	}
	ui.nameEntry.OnSubmitted = func(string) {
		ui.onCreateClick()
	}

	ui.uploadBtn = widget.NewButton(TextUploadLogo, ui.onUploadClick)

	ui.logoPreview = canvas.NewImageFromResource(nil)
	ui.logoPreview.FillMode = canvas.ImageFillContain
	ui.logoPreview.SetMinSize(fyne.NewSize(LogoPreviewSize, LogoPreviewSize))

	ui.phonesEntry = widget.NewMultiLineEntry()
	ui.phonesEntry.SetPlaceHolder(TextPhonesPlaceholder)
	ui.phonesEntry.Wrapping = fyne.TextWrapWord
	ui.phonesEntry.OnChanged = func(text string) {
		ui.draft.PhoneNumbersRaw = text
	}

	ui.createBtn = widget.NewButton(TextCreateGroup, ui.onCreateClick)
	ui.createBtn.Importance = widget.HighImportance

	ui.progressBar = widget.NewProgressBar()
	ui.activity = widget.NewProgressBarInfinite()
	ui.activity.Stop()
	ui.activity.Hide()

	ui.hintText = newFadingText(TextHint, ColorHintBlack, true)
	ui.successText = newFadingText(TextSuccess, ColorGroupGreen, false)
	ui.errorText = newFadingText(TextInvalidNumber, ColorErrorRed, false)

	field := func(obj fyne.CanvasObject, height float32) fyne.CanvasObject {
		return container.NewGridWrap(fyne.NewSize(FieldWidth, height), obj)
	}

	form := container.NewVBox(
		field(ui.nameEntry, NameFieldHeight),
		container.NewCenter(ui.uploadBtn),
		container.NewCenter(ui.logoPreview),
		field(ui.phonesEntry, PhonesHeight),
		container.NewCenter(ui.createBtn),
		field(container.NewStack(ui.progressBar, ui.activity), ProgressHeight),
		container.NewCenter(ui.hintText.text),
		container.NewCenter(ui.successText.text),
		container.NewCenter(ui.errorText.text),
	)

	var content fyne.CanvasObject = container.NewCenter(form)
	if bg, err := LoadBackgroundResource(); err == nil {
		background := canvas.NewImageFromResource(bg)
		background.FillMode = canvas.ImageFillStretch
		content = container.NewStack(background, content)
	} else {
		ui.logger.Debug("background image not loaded", slog.String("path", BackgroundImage), slog.Any("error", err))
	}

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(TextMenuSettings, ui.onShowSettings)
	revealItem := fyne.NewMenuItem(TextMenuRevealLog, ui.onRevealJournal)
	openItem := fyne.NewMenuItem(TextMenuOpenLog, ui.onOpenJournal)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(TextMenuFile, settingsItem, fyne.NewMenuItemSeparator(), revealItem, openItem),
	)
	ui.window.SetMainMenu(mainMenu)
}

// onStateChange records workflow transitions. Widgets follow the run's event
// stream instead, so every update of a run comes from one goroutine.
func (ui *RootUI) onStateChange(state model.RunState) {
	ui.logger.Debug("workflow state changed", slog.String("state", state.String()))
}

// onUploadClick opens the image picker
func (ui *RootUI) onUploadClick() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.logger.Warn("logo picker failed", slog.Any("error", err))
			ui.showError(TextInvalidLogo + ": " + err.Error())
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		_ = reader.Close()
		ui.setLogo(path)
	}, ui.window)

	picker.SetFilter(storage.NewExtensionFileFilter(platform.LogoExtensions))
	if dir := ui.settings.GetLastLogoDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			picker.SetLocation(lister)
		}
	}
	picker.Show()
}

// setLogo loads the chosen image into the preview and marks the draft
func (ui *RootUI) setLogo(path string) {
	if err := platform.CheckLogoFile(path); err != nil {
		ui.logger.Warn("logo rejected", slog.String("path", path), slog.Any("error", err))
		ui.showError(TextInvalidLogo + ": " + err.Error())
		return
	}

	ui.draft.LogoSelected = true
	ui.draft.LogoPath = path
	ui.settings.SetLastLogoDirectory(filepath.Dir(path))

	ui.logoPreview.Resource = nil
	ui.logoPreview.File = path
	ui.logoPreview.Refresh()
	ui.logger.Debug("logo selected", slog.String("path", path))
}

// onCreateClick submits the current draft
func (ui *RootUI) onCreateClick() {
	run, err := ui.creator.Submit(ui.ctx, ui.draft)
	if err != nil {
		ui.onSubmitError(err)
		return
	}

	ui.runLogo = ui.draft.LogoPath
	ui.createBtn.Disable()
	ui.progressBar.SetValue(0)
	ui.activity.Show()
	ui.activity.Start()
	ui.successText.FadeIn()
	ui.errorText.FadeOut()

	ui.watchers.Add(1)
	go ui.watchRun(run)
}

// onSubmitError renders a refused submission
func (ui *RootUI) onSubmitError(err error) {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		ui.showError(RejectionMessage(verr.Reason))
	case errors.Is(err, workflow.ErrBusy):
		ui.showError(TextBusy)
	default:
		ui.logger.Error("group creation failed to start", slog.Any("error", err))
		ui.showError(err.Error())
	}
}

// watchRun forwards run events to the UI goroutine until the stream closes
func (ui *RootUI) watchRun(run *workflow.Run) {
	defer ui.watchers.Done()

	for ev := range run.Events() {
		fyne.Do(func() {
			ui.handleEvent(ev)
		})
	}
	// The stream closes once the workflow accepts a new submission
	fyne.Do(ui.createBtn.Enable)
}

// handleEvent applies one workflow event to the widgets
func (ui *RootUI) handleEvent(ev workflow.Event) {
	switch ev.Kind {
	case workflow.EventProgress:
		ui.progressBar.SetValue(ev.Progress)
	case workflow.EventSummary:
		ui.stopActivity()
		ui.showSummary(ev.Summary)
	case workflow.EventLogWriteFailed:
		msg := TextLogWriteFailed
		if ev.Err != nil {
			msg += ": " + ev.Err.Error()
		}
		ui.showError(msg)
	case workflow.EventCompleted:
		ui.sendCompletionNotification(ev.Summary)
	case workflow.EventAborted:
		ui.stopActivity()
		ui.showError(TextAborted)
	}
}

func (ui *RootUI) stopActivity() {
	ui.activity.Stop()
	ui.activity.Hide()
}

// showError replaces the error line and fades it in over the success line
func (ui *RootUI) showError(message string) {
	ui.errorText.SetText(message)
	ui.errorText.FadeIn()
	ui.successText.FadeOut()
}

// sendCompletionNotification sends a system notification for a created group
func (ui *RootUI) sendCompletionNotification(summary model.GroupSummary) {
	if ui.app == nil || summary.Name == "" {
		return
	}
	ui.app.SendNotification(&fyne.Notification{
		Title:   TextSuccess,
		Content: summary.NameLine(),
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window).Show()
}

// onRevealJournal reveals the group log in the system file manager
func (ui *RootUI) onRevealJournal() {
	ui.openJournal(platform.OpenFileInManager)
}

// onOpenJournal opens the group log with the default application
func (ui *RootUI) onOpenJournal() {
	ui.openJournal(platform.OpenFileWithDefaultApp)
}

// journalPath returns the log the running workflow writes to. Settings only
// apply on next start, so the workflow's path wins over the stored one.
func (ui *RootUI) journalPath() string {
	if path := ui.creator.JournalPath(); path != "" {
		return path
	}
	return strings.TrimSpace(ui.settings.GetJournalPath())
}

func (ui *RootUI) openJournal(open func(string) error) {
	path := ui.journalPath()
	if err := open(path); err != nil {
		ui.logger.Warn("cannot open group log", slog.String("path", path), slog.Any("error", err))
		dialog.ShowError(errors.New(TextErrorOpeningLog+": "+err.Error()), ui.window)
	}
}
