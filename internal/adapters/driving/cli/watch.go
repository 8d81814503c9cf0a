package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/studium-labs/studium-cli/internal/connectors/notes"
	"github.com/studium-labs/studium-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a notes directory and re-import on change",
	Long: `Imports all notes under the given directory, then keeps watching
it. Whenever a note file is created or saved, its topic is re-imported
automatically. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}
	if studyService == nil {
		return errors.New("study service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connector := notes.New(args[0], nil)
	if err := connector.Validate(ctx); err != nil {
		return err
	}

	// Initial import so the corpus reflects the directory.
	fetched, err := connector.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("reading notes: %w", err)
	}
	for _, note := range fetched {
		if _, err := studyService.Import(ctx, note.Title, note.Content); err != nil {
			return fmt.Errorf("importing %s: %w", note.Path, err)
		}
	}
	cmd.Printf("Imported %d notes. Watching %s (Ctrl-C to stop)\n", len(fetched), args[0])

	notesCh, errCh := connector.Watch(ctx)
	for {
		select {
		case note, ok := <-notesCh:
			if !ok {
				return nil
			}
			topic, err := studyService.Import(ctx, note.Title, note.Content)
			if err != nil {
				logger.Warn("Re-importing %s: %v", note.Path, err)
				continue
			}
			cmd.Printf("Re-imported %q: %d concepts\n", topic.Name, len(topic.Concepts))

		case err, ok := <-errCh:
			if !ok {
				return nil
			}
			if err != nil {
				logger.Warn("Watch error: %v", err)
			}

		case <-ctx.Done():
			return nil
		}
	}
}
