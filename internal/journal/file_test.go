package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/group-creator/internal/model"
)

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	record := model.GroupRecord{Name: "Amis", PhoneNumbersRaw: "0612345678, 0798765432"}
	expected := "Nom du groupe : Amis\n" +
		"Numéros : 0612345678, 0798765432\n" +
		"\n" +
		"-------------------------------\n"

	assert.Equal(t, expected, FormatRecord(record))
}

func TestFormatRecord_KeepsNewlines(t *testing.T) {
	t.Parallel()

	record := model.GroupRecord{Name: "Amis", PhoneNumbersRaw: "0612345678\n0798765432"}

	assert.Contains(t, FormatRecord(record), "Numéros : 0612345678\n0798765432\n\n")
}

func TestFileJournal_AppendCreatesAndAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "groupe_info.txt")
	j := NewFileJournal(path)
	assert.Equal(t, path, j.Path())

	first := model.GroupRecord{Name: "Amis", PhoneNumbersRaw: "0612345678, 0798765432"}
	second := model.GroupRecord{Name: "Travail", PhoneNumbersRaw: "0123456789"}

	require.NoError(t, j.Append(first))
	require.NoError(t, j.Append(second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, FormatRecord(first)+FormatRecord(second), string(data))
	assert.Equal(t, 2, strings.Count(string(data), RecordSeparator))
}

func TestFileJournal_AppendKeepsExistingContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o644))

	j := NewFileJournal(path)
	require.NoError(t, j.Append(model.GroupRecord{Name: "Amis", PhoneNumbersRaw: "0612345678"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "existing\nNom du groupe : Amis\n"))
}

func TestFileJournal_AppendFailure(t *testing.T) {
	t.Parallel()

	// A directory cannot be opened for appending.
	dir := t.TempDir()
	j := NewFileJournal(dir)

	err := j.Append(model.GroupRecord{Name: "Amis", PhoneNumbersRaw: "0612345678"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogWrite)
	assert.Contains(t, err.Error(), dir)
}

func TestNewFileJournal_DefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultFileName, NewFileJournal("").Path())
}
