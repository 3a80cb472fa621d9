package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon         = "group-creator.png"
	BackgroundImage = "EcranDeCreationDeGroupe.png"
)

// LoadAppIconResource loads the window icon from file path
func LoadAppIconResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// LoadBackgroundResource loads the optional screen background from file path
func LoadBackgroundResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(BackgroundImage)
}
