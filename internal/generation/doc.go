// Package generation provides the interface and parsing logic for interacting
// with external AI/LLM services for content generation. It abstracts the
// details of LLM API integration (Gemini), allowing the catalog core to obtain
// raw model output and turn it into structured product candidates without
// coupling to a specific external service.
package generation
