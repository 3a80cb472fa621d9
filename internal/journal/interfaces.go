package journal

import (
	"github.com/ytget/group-creator/internal/model"
)

// Appender defines the interface for the group log.
type Appender interface {
	Append(record model.GroupRecord) error
	Path() string
}
