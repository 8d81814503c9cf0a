package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studium-labs/studium-cli/internal/connectors/notes"
)

var importName string

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import study notes",
	Long: `Imports study notes from a file or directory. Each .txt or .md
file becomes a topic named after the file; concepts and keywords are
extracted automatically.

Use --name to override the topic name when importing a single file.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "topic name (single file only)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}
	if studyService == nil {
		return errors.New("study service not configured")
	}

	ctx := cmd.Context()
	connector := notes.New(args[0], nil)
	if err := connector.Validate(ctx); err != nil {
		return err
	}

	fetched, err := connector.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("reading notes: %w", err)
	}
	if len(fetched) == 0 {
		cmd.Println("No notes found.")
		return nil
	}
	if importName != "" && len(fetched) > 1 {
		return errors.New("--name requires a single note file")
	}

	for _, note := range fetched {
		name := note.Title
		if importName != "" {
			name = importName
		}

		topic, err := studyService.Import(ctx, name, note.Content)
		if err != nil {
			return fmt.Errorf("importing %s: %w", note.Path, err)
		}
		cmd.Printf("Imported %q: %d concepts, %d keywords\n",
			topic.Name, len(topic.Concepts), len(topic.Keywords))
	}
	return nil
}
