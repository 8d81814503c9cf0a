package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Studium resources.
const uriScheme = "studium://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing topics.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "topics",
		Name:        "topics",
		Description: "List of all imported study topics",
		MIMEType:    "application/json",
	}, s.handleTopicsResource)

	// Template for a topic's concepts.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "topics/{topicName}",
		Name:        "topic-concepts",
		Description: "Extracted concepts of a specific topic",
		MIMEType:    "application/json",
	}, s.handleTopicResource)
}

// handleTopicsResource returns a list of all imported topics.
func (s *Server) handleTopicsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Study == nil {
		return emptyJSONResource(req.Params.URI), nil
	}

	topics, err := s.ports.Study.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing topics: %w", err)
	}

	type topicInfo struct {
		Name     string   `json:"name"`
		Keywords []string `json:"keywords"`
		Concepts int      `json:"concepts"`
	}

	infos := make([]topicInfo, len(topics))
	for i := range topics {
		infos[i] = topicInfo{
			Name:     topics[i].Name,
			Keywords: topics[i].Keywords,
			Concepts: len(topics[i].Concepts),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling topics: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleTopicResource returns the concepts of one topic.
func (s *Server) handleTopicResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Study == nil {
		return emptyJSONResource(req.Params.URI), nil
	}

	name := strings.TrimPrefix(req.Params.URI, uriScheme+"topics/")
	topic, err := s.ports.Study.GetTopic(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("getting topic %q: %w", name, err)
	}

	data, err := json.MarshalIndent(topic.Concepts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling concepts: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// emptyJSONResource is the degraded response when no study service is
// wired.
func emptyJSONResource(uri string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     "[]",
		}},
	}
}
