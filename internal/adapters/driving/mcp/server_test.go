package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ask service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingAskService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Ask: &mockAskService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil ask service returns error", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingAskService)
	})

	t.Run("ask only is valid", func(t *testing.T) {
		ports := &Ports{Ask: &mockAskService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Ask:   &mockAskService{},
			Study: &mockStudyService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
