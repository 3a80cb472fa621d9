package journal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ytget/group-creator/internal/model"
	"github.com/ytget/group-creator/internal/platform"
)

// Record layout
const (
	NameLinePrefix  = "Nom du groupe : "
	NumbersPrefix   = "Numéros : "
	RecordSeparator = "-------------------------------"
	DefaultFileName = platform.JournalFileName
	FilePermissions = 0644
	appendOpenFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY
)

// ErrLogWrite marks a failure to append a record to the group log
var ErrLogWrite = errors.New("group log write failed")

// FileJournal appends records to a file on disk
type FileJournal struct {
	path string
	mu   sync.Mutex
}

// NewFileJournal creates a journal writing to path
func NewFileJournal(path string) *FileJournal {
	if path == "" {
		path = DefaultFileName
	}
	return &FileJournal{path: path}
}

// Path returns the log file location
func (j *FileJournal) Path() string {
	return j.path
}

// Append writes one record at the end of the log file
func (j *FileJournal) Append(record model.GroupRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if dir := filepath.Dir(j.path); dir != "." {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return fmt.Errorf("%w: create directory %s: %w", ErrLogWrite, dir, err)
		}
	}

	f, err := os.OpenFile(j.path, appendOpenFlags, FilePermissions)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrLogWrite, j.path, err)
	}

	w := bufio.NewWriter(f)
	if err := WriteRecord(w, record); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrLogWrite, j.path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: flush %s: %w", ErrLogWrite, j.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrLogWrite, j.path, err)
	}

	return nil
}

// WriteRecord writes the text form of a record. Embedded newlines are kept verbatim.
func WriteRecord(w io.Writer, record model.GroupRecord) error {
	_, err := io.WriteString(w, FormatRecord(record))
	return err
}

// FormatRecord returns the text form of a record, newline terminated
func FormatRecord(record model.GroupRecord) string {
	return NameLinePrefix + record.Name + "\n" +
		NumbersPrefix + record.PhoneNumbersRaw + "\n\n" +
		RecordSeparator + "\n"
}
