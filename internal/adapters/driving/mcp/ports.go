package mcp

import (
	"github.com/studium-labs/studium-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Ask answers questions against the topic corpus.
	Ask driving.AskService

	// Study manages the topic corpus.
	Study driving.StudyService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	// Study is optional; the topics resources degrade to empty lists.
	return nil
}
