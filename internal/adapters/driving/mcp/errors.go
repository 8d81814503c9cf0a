// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Studium. It enables AI assistants like Claude to query the local
// study corpus.
package mcp

import "errors"

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")
