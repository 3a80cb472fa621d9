package ui

import (
	"time"

	"github.com/ytget/group-creator/internal/validation"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Screen texts
const (
	TextWindowTitle       = "Écran de création de groupe"
	TextNamePlaceholder   = "Nom du groupe"
	TextPhonesPlaceholder = "Collez ici les numéros de téléphone\n(séparés par des virgules ou des espaces)"
	TextUploadLogo        = "Uploader un logo"
	TextCreateGroup       = "Créer le groupe"
	TextHint              = "Entrez les numéros correctement pour continuer."
	TextSuccess           = "Groupe créé avec succès !"
	TextInvalidNumber     = "Numéro invalide détecté"
)

// Rejection and failure messages
const (
	TextEmptyName      = "Veuillez entrer un nom de groupe."
	TextMissingLogo    = "Veuillez uploader un logo pour le groupe."
	TextBadPhones      = "Veuillez entrer des numéros valides."
	TextBusy           = "Une création de groupe est déjà en cours."
	TextAborted        = "La création du groupe a été interrompue."
	TextLogWriteFailed = "Le groupe n'a pas pu être enregistré dans le journal"
	TextInvalidLogo    = "Logo invalide"
)

// Summary dialog
const (
	TextSummaryTitle   = "Récapitulatif de la création du groupe"
	TextSummaryHeader  = TextSuccess
	TextSummaryDismiss = "OK"
)

// Menu and settings dialog
const (
	TextMenuFile        = "Fichier"
	TextMenuSettings    = "Paramètres"
	TextMenuRevealLog   = "Afficher le journal"
	TextMenuOpenLog     = "Ouvrir le journal"
	TextSave            = "Enregistrer"
	TextCancel          = "Annuler"
	TextBrowse          = "Parcourir"
	TextJournalPath     = "Fichier journal :"
	TextStepDelay       = "Délai entre les étapes (ms) :"
	TextLogLevel        = "Niveau de log :"
	TextSettingsSaved   = "Paramètres enregistrés. Ils seront appliqués au prochain démarrage."
	TextErrorOpeningLog = "Impossible d'ouvrir le journal"
)

// Layout sizing
const (
	WindowWidth  float32 = 400
	WindowHeight float32 = 600

	FieldWidth      float32 = 300
	NameFieldHeight float32 = 40
	PhonesHeight    float32 = 100
	ProgressHeight  float32 = 24
	LogoPreviewSize float32 = 80
	SummaryLogoSize float32 = 100
	MessageTextSize float32 = 12
	SettingsWidth   float32 = 460
	SettingsHeight  float32 = 280
)

// Animation
const (
	FadeDuration = 500 * time.Millisecond
)

// RejectionMessage returns the message shown for a refused draft
func RejectionMessage(reason validation.Reason) string {
	switch reason {
	case validation.ReasonEmptyName:
		return TextEmptyName
	case validation.ReasonMissingLogo:
		return TextMissingLogo
	case validation.ReasonBadPhoneNumbers:
		return TextBadPhones
	default:
		return TextInvalidNumber
	}
}
