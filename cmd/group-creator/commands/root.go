package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ytget/group-creator/internal/logging"
)

// Version is set during build via -ldflags "-X github.com/ytget/group-creator/cmd/group-creator/commands.Version=X.Y.Z"
var Version = "dev"

var (
	logLevel  string
	logFormat string
	logger    *slog.Logger
)

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "group-creator",
		Short:        "Create contact groups and record them in the group log",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.New(logLevel, logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", logging.LevelWarn, "diagnostic log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatText, "diagnostic log format (text, json)")

	root.AddCommand(createCmd(), journalCmd())
	return root
}
