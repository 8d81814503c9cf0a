// Package cli implements the studium command line interface. Each
// command lives in its own file and registers itself on the root
// command in init().
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studium-labs/studium-cli/internal/adapters/driven/cache/lru"
	"github.com/studium-labs/studium-cli/internal/adapters/driven/config/file"
	"github.com/studium-labs/studium-cli/internal/adapters/driven/storage/sqlite"
	"github.com/studium-labs/studium-cli/internal/core/ports/driven"
	"github.com/studium-labs/studium-cli/internal/core/ports/driving"
	"github.com/studium-labs/studium-cli/internal/core/services"
	"github.com/studium-labs/studium-cli/internal/logger"
)

// version is set from main at startup.
var version = "dev"

var verbose bool

// Services shared by the commands. Wired by initServices, replaceable
// in tests.
var (
	configStore  driven.ConfigStore
	topicStore   driven.TopicStore
	studyService driving.StudyService
	askService   driving.AskService
)

var rootCmd = &cobra.Command{
	Use:   "studium",
	Short: "Offline study assistant",
	Long: `Studium imports your study notes, extracts key concepts and
definitions, and answers questions about them. Everything runs locally;
no network access is required.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the CLI with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	defer closeServices()
	return rootCmd.Execute()
}

// initServices wires the default adapters. Commands that need the
// corpus call this lazily so that version and help work without
// touching the filesystem.
func initServices() error {
	if askService != nil && studyService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	if !verbose && cfg.GetBool("verbose") {
		logger.SetVerbose(true)
	}

	store, err := sqlite.NewStore(cfg.GetString("storage.dir"))
	if err != nil {
		return fmt.Errorf("opening topic store: %w", err)
	}
	topicStore = store

	studyService = services.NewStudyService(store, nil)
	askService = services.NewAskService(store, lru.New(cfg.GetInt("cache.signatures")))
	return nil
}

// closeServices releases the store if one was opened.
func closeServices() {
	if topicStore != nil {
		if err := topicStore.Close(); err != nil {
			logger.Warn("Closing topic store: %v", err)
		}
	}
}
