// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - TopicStore: Topic persistence (SQLite or in-memory)
//   - ConfigStore: Application configuration (TOML file)
//   - Connector: Fetches study notes from a source (filesystem)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
