package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studium-labs/studium-cli/internal/core/domain"
)

// readRequest creates a ReadResourceRequest with the given URI.
func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleTopicResource(t *testing.T) {
	ctx := context.Background()
	study := &mockStudyService{topics: []domain.Topic{
		{
			Name: "Cell Biology",
			Concepts: []domain.Concept{
				{Term: "Nucleus", Definition: "The control center of the cell."},
			},
		},
	}}
	server, err := NewServer(&Ports{Ask: &mockAskService{}, Study: study})
	require.NoError(t, err)

	t.Run("returns topic concepts", func(t *testing.T) {
		result, err := server.handleTopicResource(ctx, readRequest(uriScheme+"topics/Cell Biology"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "Nucleus")
	})

	t.Run("unknown topic errors", func(t *testing.T) {
		_, err := server.handleTopicResource(ctx, readRequest(uriScheme+"topics/Missing"))
		assert.Error(t, err)
	})
}
