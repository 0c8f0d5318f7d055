// Package gemini provides an implementation of the generation.TextGenerator
// interface that uses Google's Gemini API for producing structured text.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the catalog core to Google's external Gemini AI service. It
// translates between the application's needs (prompt plus schema hint in, raw
// text out) and the genai client library, and maps API-level failures onto
// the generation package's error taxonomy:
//
//   - transport and backend errors become generation.ErrTransientFailure
//   - safety-filter refusals become generation.ErrContentBlocked
//   - empty or malformed response envelopes become generation.ErrInvalidResponse
//
// Retry policy is deliberately NOT implemented here: each Generate call is a
// single attempt, and the catalog core owns the retry budget.
package gemini
