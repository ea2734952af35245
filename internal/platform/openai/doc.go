// Package openai implements the generation.Client and generation.ClientFactory
// ports against OpenAI-compatible chat completion endpoints
// (github.com/openai/openai-go). It is selected with llm.provider=openai.
//
// Chat completions have no response schema or safety settings equivalent to
// Gemini's. For JSON output the schema is appended to the prompt and the
// normalizer enforces it on the reply; safety settings are logged and skipped.
package openai
