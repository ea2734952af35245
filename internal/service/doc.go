// Package service contains the application use cases. Its Dispatcher is the
// request router of the generation service: it resolves an action name to an
// operation, validates the payload, checks the model credential, renders the
// prompt, makes the model call and normalizes the reply into a typed result.
//
// The service depends on the generation ports and the prompt library, never
// on a specific model provider. Adapters are injected through
// generation.ClientFactory.
package service
