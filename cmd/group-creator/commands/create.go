package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/group-creator/internal/journal"
	"github.com/ytget/group-creator/internal/model"
	"github.com/ytget/group-creator/internal/platform"
	"github.com/ytget/group-creator/internal/validation"
	"github.com/ytget/group-creator/internal/workflow"
)

// progressReportEvery controls how often progress lines are printed, in steps
const progressReportEvery = 10

// create: validate a group and run it through the creation workflow.
func createCmd() *cobra.Command {
	var (
		name       string
		logo       string
		phones     string
		phonesFile string
		logFile    string
		stepDelay  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group from flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := phones
			if phonesFile != "" {
				data, err := os.ReadFile(phonesFile)
				if err != nil {
					return fmt.Errorf("read phone numbers: %w", err)
				}
				raw = string(data)
			}

			draft := model.GroupDraft{
				Name:            name,
				LogoPath:        logo,
				PhoneNumbersRaw: raw,
			}
			if logo != "" {
				if err := platform.CheckLogoFile(logo); err != nil {
					logger.Warn("logo ignored", slog.String("path", logo), slog.Any("error", err))
				} else {
					draft.LogoSelected = true
				}
			}

			if logFile == "" {
				logFile = platform.DefaultJournalPath()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := workflow.NewService(
				workflow.Config{Steps: workflow.DefaultSteps, StepDelay: stepDelay},
				journal.NewFileJournal(logFile),
				logger,
			)

			run, err := svc.Submit(ctx, draft)
			if err != nil {
				var verr *validation.ValidationError
				if errors.As(err, &verr) {
					return fmt.Errorf("group rejected (%s): %w", verr.Reason, err)
				}
				return err
			}

			reportRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), run)

			snapshot, err := run.Wait()
			if err != nil {
				return err
			}
			logger.Info("group created",
				slog.String("run_id", snapshot.ID),
				slog.Int("contacts", snapshot.Contacts),
				slog.String("elapsed", snapshot.GetElapsedString()),
				slog.String("journal", logFile),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "group name")
	cmd.Flags().StringVar(&logo, "logo", "", "path to a .png, .jpg or .jpeg logo")
	cmd.Flags().StringVar(&phones, "phones", "", "phone numbers separated by commas or whitespace")
	cmd.Flags().StringVar(&phonesFile, "phones-file", "", "read phone numbers from a file")
	cmd.Flags().StringVar(&logFile, "log-file", "", "group log path (default under the XDG data dir)")
	cmd.Flags().DurationVar(&stepDelay, "step-delay", workflow.DefaultStepDelay, "delay between progress steps")
	cmd.MarkFlagsMutuallyExclusive("phones", "phones-file")
	return cmd
}

// reportRun prints the run's events until the stream closes
func reportRun(out, errOut io.Writer, run *workflow.Run) {
	for ev := range run.Events() {
		switch ev.Kind {
		case workflow.EventProgress:
			if ev.Step%progressReportEvery == 0 {
				fmt.Fprintf(out, "progression : %3.0f%%\n", ev.Progress*100)
			}
		case workflow.EventSummary:
			fmt.Fprintln(out, ev.Summary.NameLine())
			fmt.Fprintln(out, ev.Summary.ContactsLine())
		case workflow.EventLogWriteFailed:
			fmt.Fprintf(errOut, "warning: group not recorded: %v\n", ev.Err)
		case workflow.EventAborted:
			fmt.Fprintf(errOut, "aborted: %v\n", ev.Err)
		}
	}
}
