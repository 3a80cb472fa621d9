package ui

import (
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/group-creator/internal/config"
	"github.com/ytget/group-creator/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	journalPathEntry *widget.Entry
	stepDelayEntry   *widget.Entry
	logLevelSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.journalPathEntry = widget.NewEntry()
	browseBtn := widget.NewButton(TextBrowse, sd.onBrowseJournal)
	journalRow := container.NewBorder(nil, nil, nil, browseBtn, sd.journalPathEntry)

	sd.stepDelayEntry = widget.NewEntry()
	sd.stepDelayEntry.SetPlaceHolder(strconv.Itoa(config.MinStepDelayMs) + "-" + strconv.Itoa(config.MaxStepDelayMs))

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	form := container.NewVBox(
		widget.NewLabel(TextJournalPath),
		journalRow,

		widget.NewLabel(TextStepDelay),
		sd.stepDelayEntry,

		widget.NewLabel(TextLogLevel),
		sd.logLevelSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		TextMenuSettings,
		TextSave,
		TextCancel,
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.journalPathEntry.SetText(sd.settings.GetJournalPath())
	sd.stepDelayEntry.SetText(strconv.Itoa(sd.settings.GetStepDelayMs()))
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
}

// onBrowseJournal picks the folder of the group log. The file name is kept, and
// nothing is opened for writing so an existing log is left untouched.
func (sd *SettingsDialog) onBrowseJournal() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.setJournalFolder(uri.Path())
	}, sd.window)
}

// setJournalFolder moves the log path into dir, keeping the current file name
func (sd *SettingsDialog) setJournalFolder(dir string) {
	name := filepath.Base(strings.TrimSpace(sd.journalPathEntry.Text))
	if name == "." || name == string(filepath.Separator) {
		name = platform.JournalFileName
	}
	sd.journalPathEntry.SetText(filepath.Join(dir, name))
}

// onSave stores the edited values; the workflow picks them up on next start
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if path := sd.journalPathEntry.Text; path != "" {
		sd.settings.SetJournalPath(path)
	}

	if ms, err := strconv.Atoi(sd.stepDelayEntry.Text); err == nil {
		sd.settings.SetStepDelayMs(ms)
	}

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	dialog.ShowInformation(TextMenuSettings, TextSettingsSaved, sd.window)
}
