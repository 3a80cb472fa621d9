package model

import (
	"fmt"
	"strings"
	"unicode"
)

// GroupDraft holds the fields edited on the creation screen. It lives for the
// lifetime of the screen and is read once per creation request.
type GroupDraft struct {
	Name            string
	LogoSelected    bool
	LogoPath        string // path or URI of the chosen logo, informational only
	PhoneNumbersRaw string
}

// TrimmedName returns the group name without surrounding whitespace
func (d GroupDraft) TrimmedName() string {
	return strings.TrimSpace(d.Name)
}

// PhoneNumbers returns the phone tokens typed in the draft
func (d GroupDraft) PhoneNumbers() []string {
	return SplitPhoneNumbers(d.PhoneNumbersRaw)
}

// SplitPhoneNumbers splits raw text on runs of commas and whitespace.
// Leading and trailing separators never produce empty tokens.
func SplitPhoneNumbers(raw string) []string {
	return strings.FieldsFunc(raw, isPhoneSeparator)
}

func isPhoneSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// GroupRecord is the entry appended to the group log once a run completes
type GroupRecord struct {
	Name            string
	PhoneNumbersRaw string
}

// NewGroupRecord builds the log record for a validated draft
func NewGroupRecord(d GroupDraft) GroupRecord {
	return GroupRecord{
		Name:            d.TrimmedName(),
		PhoneNumbersRaw: d.PhoneNumbersRaw,
	}
}

// GroupSummary is what the summary dialog shows after a completed run
type GroupSummary struct {
	Name     string
	Contacts int
}

// NameLine returns the summary line naming the group
func (s GroupSummary) NameLine() string {
	return fmt.Sprintf("Nom du groupe : %s", s.Name)
}

// ContactsLine returns the summary line counting added numbers
func (s GroupSummary) ContactsLine() string {
	return fmt.Sprintf("Nombre de numéros ajoutés : %d", s.Contacts)
}

// String returns both summary lines separated by a newline
func (s GroupSummary) String() string {
	return s.NameLine() + "\n" + s.ContactsLine()
}
