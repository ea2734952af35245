// Package gemini implements the generation.Client and generation.ClientFactory
// ports on top of Google's Gemini API (google.golang.org/genai).
//
// This package is an infrastructure adapter: it translates the provider-neutral
// generation.Config into genai request settings and translates genai replies
// and failures back into the generation package's errors. Nothing outside this
// package imports genai.
//
// The factory checks the credential before building a client, so a missing
// API key is reported as generation.ErrAuthentication without any network
// activity. Each Generate call makes exactly one request; there is no retry
// and no caching.
package gemini
