package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

var (
	askJSON  bool
	askLimit int
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your notes",
	Long: `Matches the question against imported topics and, when possible,
answers with the definition of the concept the question refers to.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	askCmd.Flags().IntVar(&askLimit, "limit", 0, "also list up to N candidate topics")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}
	if askService == nil {
		return errors.New("ask service not configured")
	}

	answer, err := askService.Ask(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}
	if err := outputAnswerText(cmd, answer); err != nil {
		return err
	}

	if askLimit > 0 {
		ranked, err := askService.RankTopics(cmd.Context(), args[0], askLimit)
		if err != nil {
			return fmt.Errorf("ranking topics: %w", err)
		}
		if len(ranked) > 0 {
			cmd.Println()
			cmd.Println("Candidate topics:")
			for _, rt := range ranked {
				cmd.Printf("  %.2f  %s\n", rt.Score, rt.Topic.Name)
			}
		}
	}
	return nil
}

func outputAnswerJSON(cmd *cobra.Command, answer *domain.Answer) error {
	data, err := json.MarshalIndent(answer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswerText(cmd *cobra.Command, answer *domain.Answer) error {
	if !answer.Found() {
		cmd.Println("No matching topic found. Try importing more notes.")
		return nil
	}

	cmd.Printf("Topic: %s (%.2f)\n", answer.Topic.Name, answer.TopicScore)
	if answer.Concept != nil {
		cmd.Println()
		cmd.Printf("%s: %s\n", answer.Concept.Term, answer.Concept.Definition)
	} else {
		cmd.Println()
		cmd.Println("No specific concept matched; top concepts in this topic:")
		for i, concept := range answer.Topic.Concepts {
			if i >= 3 {
				break
			}
			cmd.Printf("  - %s\n", concept.Term)
		}
	}
	return nil
}
