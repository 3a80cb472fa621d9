package validation

import (
	"regexp"

	"github.com/ytget/group-creator/internal/model"
)

// Reason enumerates why a draft is invalid
type Reason int

const (
	ReasonNone Reason = iota
	ReasonEmptyName
	ReasonMissingLogo
	ReasonBadPhoneNumbers
)

// String returns the reason name
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonEmptyName:
		return "EmptyName"
	case ReasonMissingLogo:
		return "MissingLogo"
	case ReasonBadPhoneNumbers:
		return "BadPhoneNumbers"
	default:
		return "Unknown"
	}
}

// Phone token bounds
const (
	MinPhoneDigits = 10
	MaxPhoneDigits = 15
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// Result is the outcome of validating one draft. The zero value is Valid.
type Result struct {
	Reason Reason
}

// Valid is the result of a draft that passed every check
var Valid = Result{}

// Invalid builds a failed result
func Invalid(reason Reason) Result {
	return Result{Reason: reason}
}

// IsValid reports whether every check passed
func (r Result) IsValid() bool {
	return r.Reason == ReasonNone
}

// Err returns nil for a valid result, otherwise a *ValidationError
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return &ValidationError{Reason: r.Reason}
}

// Validate checks the draft. The first failing check wins.
func Validate(draft model.GroupDraft) Result {
	if draft.TrimmedName() == "" {
		return Invalid(ReasonEmptyName)
	}

	if !draft.LogoSelected {
		return Invalid(ReasonMissingLogo)
	}

	if !ValidPhoneNumbers(draft.PhoneNumbersRaw) {
		return Invalid(ReasonBadPhoneNumbers)
	}

	return Valid
}

// ValidPhoneNumbers reports whether raw holds at least one token and every
// token is 10 to 15 ASCII digits
func ValidPhoneNumbers(raw string) bool {
	tokens := model.SplitPhoneNumbers(raw)
	if len(tokens) == 0 {
		return false
	}

	for _, token := range tokens {
		if !IsPhoneNumber(token) {
			return false
		}
	}
	return true
}

// IsPhoneNumber reports whether a single token is a valid phone number
func IsPhoneNumber(token string) bool {
	return phonePattern.MatchString(token)
}
