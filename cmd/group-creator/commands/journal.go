package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/group-creator/internal/platform"
)

// journal: print the group log.
func journalCmd() *cobra.Command {
	var (
		logFile  string
		pathOnly bool
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print the group log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if logFile == "" {
				logFile = platform.DefaultJournalPath()
			}
			if pathOnly {
				fmt.Fprintln(cmd.OutOrStdout(), logFile)
				return nil
			}

			data, err := os.ReadFile(logFile)
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(cmd.ErrOrStderr(), "no group recorded yet in %s\n", logFile)
				return nil
			}
			if err != nil {
				return fmt.Errorf("read group log: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "group log path (default under the XDG data dir)")
	cmd.Flags().BoolVar(&pathOnly, "path", false, "print the log location only")
	return cmd
}
