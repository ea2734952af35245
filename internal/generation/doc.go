// Package generation defines the boundary between the application core and
// external AI/LLM services used for content generation. It declares the
// Client and ClientFactory interfaces implemented by the Gemini and
// OpenAI-compatible adapters, the per-operation Config (model, output schema,
// safety settings), the error taxonomy shared by all adapters, and the
// response normalizer that turns raw model text into typed values.
package generation
