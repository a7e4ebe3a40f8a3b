// Package registry maps logical server names to connection metadata for
// REST-style Minecraft status APIs, and offers a convenience fetch that
// composes a registry entry with the HTTP client.
//
// A Registry is safe for concurrent use. Entries are registered at process
// start from the built-in catalog or configuration and may be overwritten
// at runtime by name; they are never removed automatically and nothing is
// persisted between runs.
package registry
