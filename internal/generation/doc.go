// Package generation defines the Text Generation Gateway: the boundary between
// the study flows and the external AI/LLM service (Gemini) that turns an
// assembled natural-language prompt into generated text.
//
// The Generator interface is deliberately narrow so the wizard, the study
// partner session, document Q&A and the single-shot tools can all be exercised
// against a substitute implementation in tests. Every failure is reported once,
// synchronously, as an *Error; nothing in this package retries.
package generation
