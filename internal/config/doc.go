// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the settings needed by the server, the session store, the Gemini
// gateway and document ingestion, while keeping configuration details separate
// from the study flows themselves.
package config
