// Package connectors provides implementations of the Connector
// interface for study note sources. Each connector knows how to fetch
// notes from a specific source type.
package connectors
