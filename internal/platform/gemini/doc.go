// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for turning study prompts into generated text.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the study flows to Google's external Gemini AI service without
// exposing the details of the external service to the rest of the application.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Generator interface
//   - Is bound to one fixed model for its whole lifetime
//   - Makes exactly one GenerateContent call per Generate
//
// 2. Configuration validation:
//   - A missing credential or model name fails construction with
//     generation.ErrInvalidConfig, which the server treats as fatal
//
// 3. Response handling:
//   - Concatenates the text parts of the first candidate and returns them verbatim
//   - Reports empty, malformed and safety-blocked responses as *generation.Error
//
// The package depends on Google's google.golang.org/genai client library.
// It does not retry: every failure is surfaced once to the caller.
package gemini
