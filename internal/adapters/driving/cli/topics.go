package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var topicsJSON bool

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Manage imported topics",
	RunE:  runTopicsList,
}

var topicsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a topic's concepts",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicsShow,
}

var topicsDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicsDelete,
}

var topicsReimportCmd = &cobra.Command{
	Use:   "reimport [name]",
	Short: "Re-run extraction over a topic's stored text",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicsReimport,
}

func init() {
	topicsCmd.Flags().BoolVar(&topicsJSON, "json", false, "output topics as JSON")
	topicsCmd.AddCommand(topicsShowCmd)
	topicsCmd.AddCommand(topicsDeleteCmd)
	topicsCmd.AddCommand(topicsReimportCmd)
	rootCmd.AddCommand(topicsCmd)
}

func runTopicsList(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}
	if studyService == nil {
		return errors.New("study service not configured")
	}

	topics, err := studyService.ListTopics(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing topics: %w", err)
	}

	if topicsJSON {
		data, err := json.MarshalIndent(topics, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal topics: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(topics) == 0 {
		cmd.Println("No topics imported yet.")
		return nil
	}

	cmd.Println("Topics:")
	for i := range topics {
		cmd.Printf("  %s (%d concepts)\n", topics[i].Name, len(topics[i].Concepts))
		if len(topics[i].Keywords) > 0 {
			cmd.Printf("      keywords: %s\n", strings.Join(topics[i].Keywords, ", "))
		}
	}
	return nil
}

func runTopicsShow(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}
	if studyService == nil {
		return errors.New("study service not configured")
	}

	topic, err := studyService.GetTopic(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting topic %q: %w", args[0], err)
	}

	cmd.Printf("%s\n", topic.Name)
	for i := range topic.Concepts {
		concept := &topic.Concepts[i]
		cmd.Printf("\n  %s (importance %.0f, difficulty %d)\n", concept.Term, concept.Importance, concept.Difficulty)
		cmd.Printf("      %s\n", concept.Definition)
	}
	return nil
}

func runTopicsDelete(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}
	if studyService == nil {
		return errors.New("study service not configured")
	}

	if err := studyService.DeleteTopic(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting topic %q: %w", args[0], err)
	}
	cmd.Printf("Deleted %q\n", args[0])
	return nil
}

func runTopicsReimport(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}
	if studyService == nil {
		return errors.New("study service not configured")
	}

	topic, err := studyService.Reimport(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("reimporting topic %q: %w", args[0], err)
	}
	cmd.Printf("Reimported %q: %d concepts\n", topic.Name, len(topic.Concepts))
	return nil
}
