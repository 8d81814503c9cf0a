package tui

import (
	"errors"

	"github.com/studium-labs/studium-cli/internal/core/ports/driving"
)

// ErrMissingAskService is returned when no ask service is provided.
var ErrMissingAskService = errors.New("tui: ask service is required")

// Ports aggregates the driving port interfaces the TUI needs.
type Ports struct {
	// Ask answers questions against the topic corpus.
	Ask driving.AskService

	// Study lists imported topics for the sidebar.
	Study driving.StudyService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Ask == nil {
		return ErrMissingAskService
	}
	return nil
}
