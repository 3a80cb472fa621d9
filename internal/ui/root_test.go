package ui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/group-creator/internal/config"
	"github.com/ytget/group-creator/internal/journal"
	"github.com/ytget/group-creator/internal/logging"
	"github.com/ytget/group-creator/internal/platform"
	"github.com/ytget/group-creator/internal/validation"
	"github.com/ytget/group-creator/internal/workflow"
)

func newTestScreen(t *testing.T, journalPath string) (*RootUI, fyne.App) {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := a.NewWindow("test")
	svc := workflow.NewService(
		workflow.Config{Steps: workflow.DefaultSteps, StepDelay: time.Millisecond},
		journal.NewFileJournal(journalPath),
		logging.Discard(),
	)
	ui := NewRootUI(w, a, config.NewSettings(a), svc, logging.Discard())
	t.Cleanup(ui.Close)
	return ui, a
}

func writeTestLogo(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "logo.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 18, G: 140, B: 126, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _ := newTestScreen(t, filepath.Join(t.TempDir(), "groupe_info.txt"))

	assert.Equal(t, TextWindowTitle, ui.window.Title())
	assert.False(t, ui.createBtn.Disabled())
	assert.True(t, ui.hintText.Visible())
	assert.False(t, ui.successText.Visible())
	assert.False(t, ui.errorText.Visible())
	assert.Equal(t, TextInvalidNumber, ui.errorText.text.Text)
	assert.Equal(t, 0.0, ui.progressBar.Value)
}

func TestRootUI_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		group    string
		withLogo bool
		phones   string
		want     string
	}{
		{"empty name", "   ", true, "0612345678", TextEmptyName},
		{"missing logo", "Amis", false, "0612345678", TextMissingLogo},
		{"bad phone", "Amis", true, "0612345678, 123", TextBadPhones},
		{"no phones", "Amis", true, "", TextBadPhones},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journalPath := filepath.Join(t.TempDir(), "groupe_info.txt")
			ui, _ := newTestScreen(t, journalPath)

			test.Type(ui.nameEntry, tt.group)
			test.Type(ui.phonesEntry, tt.phones)
			if tt.withLogo {
				ui.setLogo(writeTestLogo(t))
			}

			test.Tap(ui.createBtn)

			assert.Equal(t, tt.want, ui.errorText.text.Text)
			assert.True(t, ui.errorText.Visible())
			assert.False(t, ui.successText.Visible())
			assert.NoFileExists(t, journalPath)
		})
	}
}

func TestRootUI_DraftFollowsInputs(t *testing.T) {
	ui, _ := newTestScreen(t, filepath.Join(t.TempDir(), "groupe_info.txt"))

	test.Type(ui.nameEntry, "Famille")
	test.Type(ui.phonesEntry, "0612345678 0698765432")
	logo := writeTestLogo(t)
	ui.setLogo(logo)

	draft := ui.Draft()
	assert.Equal(t, "Famille", draft.Name)
	assert.Equal(t, "0612345678 0698765432", draft.PhoneNumbersRaw)
	assert.True(t, draft.LogoSelected)
	assert.Equal(t, logo, draft.LogoPath)
}

func TestRootUI_SetLogoRejectsUnsupportedFile(t *testing.T) {
	ui, _ := newTestScreen(t, filepath.Join(t.TempDir(), "groupe_info.txt"))

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	ui.setLogo(path)

	assert.False(t, ui.Draft().LogoSelected)
	assert.True(t, strings.HasPrefix(ui.errorText.text.Text, TextInvalidLogo))
}

func TestRootUI_CreatesGroup(t *testing.T) {
	journalPath := filepath.Join(t.TempDir(), "groupe_info.txt")
	ui, _ := newTestScreen(t, journalPath)

	test.Type(ui.nameEntry, "  Amis  ")
	test.Type(ui.phonesEntry, "0612345678,0698765432")
	ui.setLogo(writeTestLogo(t))

	test.Tap(ui.createBtn)
	ui.watchers.Wait()

	assert.Equal(t, 1.0, ui.progressBar.Value)
	assert.False(t, ui.createBtn.Disabled())
	assert.True(t, ui.successText.Visible())
	assert.False(t, ui.errorText.Visible())
	assert.NotNil(t, ui.window.Canvas().Overlays().Top(), "summary dialog should be shown")

	data, err := os.ReadFile(journalPath)
	require.NoError(t, err)
	assert.Equal(t, "Nom du groupe : Amis\nNuméros : 0612345678,0698765432\n\n-------------------------------\n", string(data))
}

func TestRootUI_JournalPathFollowsWorkflow(t *testing.T) {
	journalPath := filepath.Join(t.TempDir(), "groupe_info.txt")
	ui, _ := newTestScreen(t, journalPath)

	ui.settings.SetJournalPath(filepath.Join(t.TempDir(), "elsewhere.txt"))

	assert.Equal(t, journalPath, ui.journalPath())
}

func TestSettingsDialog_BrowseKeepsExistingLog(t *testing.T) {
	journalPath := filepath.Join(t.TempDir(), "groupe_info.txt")
	ui, _ := newTestScreen(t, journalPath)

	record := "Nom du groupe : Amis\nNuméros : 0612345678\n\n-------------------------------\n"
	require.NoError(t, os.WriteFile(journalPath, []byte(record), 0o644))
	ui.settings.SetJournalPath(journalPath)

	sd := NewSettingsDialog(ui.settings, ui.window)
	sd.loadCurrentSettings()

	// Re-selecting the folder of the current log keeps the same file
	sd.setJournalFolder(filepath.Dir(journalPath))
	sd.onSave(true)

	assert.Equal(t, journalPath, ui.settings.GetJournalPath())
	data, err := os.ReadFile(journalPath)
	require.NoError(t, err)
	assert.Equal(t, record, string(data))

	// Moving to another folder keeps the file name and creates nothing
	otherDir := t.TempDir()
	sd.setJournalFolder(otherDir)
	sd.onSave(true)

	assert.Equal(t, filepath.Join(otherDir, "groupe_info.txt"), ui.settings.GetJournalPath())
	assert.NoFileExists(t, filepath.Join(otherDir, "groupe_info.txt"))
}

func TestSettingsDialog_BrowseWithEmptyPath(t *testing.T) {
	ui, _ := newTestScreen(t, filepath.Join(t.TempDir(), "groupe_info.txt"))

	sd := NewSettingsDialog(ui.settings, ui.window)
	dir := t.TempDir()
	sd.setJournalFolder(dir)

	assert.Equal(t, filepath.Join(dir, platform.JournalFileName), sd.journalPathEntry.Text)
}

func TestRejectionMessage(t *testing.T) {
	assert.Equal(t, TextEmptyName, RejectionMessage(validation.ReasonEmptyName))
	assert.Equal(t, TextMissingLogo, RejectionMessage(validation.ReasonMissingLogo))
	assert.Equal(t, TextBadPhones, RejectionMessage(validation.ReasonBadPhoneNumbers))
	assert.Equal(t, TextInvalidNumber, RejectionMessage(validation.ReasonNone))
}

func TestFadingText(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	f := newFadingText("hello", ColorErrorRed, false)
	assert.False(t, f.Visible())
	assert.Equal(t, uint8(0), f.text.Color.(color.NRGBA).A)

	f.FadeIn()
	assert.True(t, f.Visible())

	f.SetText("bye")
	assert.Equal(t, "bye", f.text.Text)

	f.FadeOut()
	assert.False(t, f.Visible())
}
