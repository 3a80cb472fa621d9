package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/group-creator/internal/model"
)

// showSummary opens the modal recap of a created group
func (ui *RootUI) showSummary(summary model.GroupSummary) {
	dialog.NewCustom(TextSummaryTitle, TextSummaryDismiss, ui.summaryContent(summary), ui.window).Show()
}

// summaryContent lays out the header, the logo and the two summary lines
func (ui *RootUI) summaryContent(summary model.GroupSummary) fyne.CanvasObject {
	header := widget.NewLabelWithStyle(TextSummaryHeader, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	details := container.NewVBox(
		widget.NewLabel(summary.NameLine()),
		widget.NewLabel(summary.ContactsLine()),
	)

	body := fyne.CanvasObject(details)
	if ui.runLogo != "" {
		logo := canvas.NewImageFromFile(ui.runLogo)
		logo.FillMode = canvas.ImageFillContain
		logo.SetMinSize(fyne.NewSize(SummaryLogoSize, SummaryLogoSize))
		body = container.NewHBox(logo, details)
	}

	return container.NewVBox(header, widget.NewSeparator(), body)
}
