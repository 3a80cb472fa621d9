package model

import (
	"reflect"
	"testing"
)

func TestSplitPhoneNumbers(t *testing.T) {
	tests := []struct {
		raw      string
		expected []string
	}{
		{"0612345678, 0798765432", []string{"0612345678", "0798765432"}},
		{"0612345678 0798765432", []string{"0612345678", "0798765432"}},
		{"0612345678,,\n\t0798765432", []string{"0612345678", "0798765432"}},
		{"  ,0612345678, ", []string{"0612345678"}},
		{"123 abc456", []string{"123", "abc456"}},
		{"06-12-34", []string{"06-12-34"}},
		{"", nil},
		{" , \n", nil},
	}

	for _, test := range tests {
		result := SplitPhoneNumbers(test.raw)
		if len(result) == 0 && len(test.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("SplitPhoneNumbers(%q) = %q, expected %q", test.raw, result, test.expected)
		}
	}
}

func TestGroupDraft_TrimmedName(t *testing.T) {
	draft := GroupDraft{Name: "  Amis \t"}
	if draft.TrimmedName() != "Amis" {
		t.Errorf("Expected trimmed name 'Amis', got '%s'", draft.TrimmedName())
	}
}

func TestNewGroupRecord(t *testing.T) {
	draft := GroupDraft{
		Name:            " Amis ",
		LogoSelected:    true,
		PhoneNumbersRaw: "0612345678, 0798765432\n",
	}

	record := NewGroupRecord(draft)

	if record.Name != "Amis" {
		t.Errorf("Expected record name 'Amis', got '%s'", record.Name)
	}

	// Phone text is kept verbatim
	if record.PhoneNumbersRaw != draft.PhoneNumbersRaw {
		t.Errorf("Expected raw phone text %q, got %q", draft.PhoneNumbersRaw, record.PhoneNumbersRaw)
	}
}

func TestGroupSummary_String(t *testing.T) {
	summary := GroupSummary{Name: "Amis", Contacts: 2}
	expected := "Nom du groupe : Amis\nNombre de numéros ajoutés : 2"

	if summary.String() != expected {
		t.Errorf("GroupSummary.String() = %q, expected %q", summary.String(), expected)
	}
}
