package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studium-labs/studium-cli/internal/nlp/extract"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query string `json:"query" jsonschema:"the question to answer from the study corpus"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Found      bool    `json:"found"`
	Topic      string  `json:"topic,omitempty"`
	TopicScore float64 `json:"topic_score"`
	Concept    string  `json:"concept,omitempty"`
	Definition string  `json:"definition,omitempty"`
}

// ExtractInput is the input schema for the extract_concepts tool.
type ExtractInput struct {
	Text string `json:"text" jsonschema:"the study text to extract concepts from"`
}

// ExtractOutput is the output schema for the extract_concepts tool.
type ExtractOutput struct {
	Concepts []ConceptOutput `json:"concepts"`
	Count    int             `json:"count"`
}

// ConceptOutput represents a single extracted concept.
type ConceptOutput struct {
	Term       string  `json:"term"`
	Definition string  `json:"definition"`
	Importance float64 `json:"importance"`
	Difficulty int     `json:"difficulty"`
	Domain     string  `json:"domain,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question from the imported study notes",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_concepts",
		Description: "Extract key concepts and definitions from study text",
	}, s.handleExtract)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Ask.Ask(ctx, input.Query)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Found:      answer.Found(),
		TopicScore: answer.TopicScore,
	}
	if answer.Topic != nil {
		output.Topic = answer.Topic.Name
	}
	if answer.Concept != nil {
		output.Concept = answer.Concept.Term
		output.Definition = answer.Concept.Definition
	}

	return nil, output, nil
}

// handleExtract handles the extract_concepts tool invocation.
// Extraction is stateless; nothing is stored.
func (s *Server) handleExtract(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	concepts := extract.New().Extract(input.Text)

	output := ExtractOutput{
		Concepts: make([]ConceptOutput, len(concepts)),
		Count:    len(concepts),
	}
	for i := range concepts {
		output.Concepts[i] = ConceptOutput{
			Term:       concepts[i].Term,
			Definition: concepts[i].Definition,
			Importance: concepts[i].Importance,
			Difficulty: concepts[i].Difficulty,
			Domain:     concepts[i].Domain,
		}
	}

	return nil, output, nil
}
