package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	jsonFence = "```json"
	fence     = "```"
)

// StripFence removes a fenced-code-block wrapper that models sometimes put
// around JSON output. The text is trimmed; a leading "```json" marker (or,
// failing that, a bare "```") is removed together with one trailing "```".
// Text without a leading fence is returned trimmed and otherwise unchanged.
func StripFence(raw string) string {
	text := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(text, jsonFence):
		text = strings.TrimPrefix(text, jsonFence)
	case strings.HasPrefix(text, fence):
		text = strings.TrimPrefix(text, fence)
	default:
		return text
	}

	text = strings.TrimSuffix(text, fence)
	return strings.TrimSpace(text)
}

// DecodeStructured normalizes raw model text and decodes it into v.
//
// The text is stripped of fence markers, validated against schema, and
// unmarshaled. If v implements Validate() error, that check runs last.
// Every failure wraps ErrMalformedResponse so callers can tell "the model
// replied in the wrong shape" apart from transport or credential failures.
func DecodeStructured(raw string, schema *Schema, v any) error {
	text := StripFence(raw)
	if text == "" {
		return fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	if schema != nil {
		result, err := gojsonschema.Validate(
			gojsonschema.NewGoLoader(schema.JSONSchema()),
			gojsonschema.NewStringLoader(text),
		)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		if !result.Valid() {
			errs := make([]string, len(result.Errors()))
			for i, desc := range result.Errors() {
				errs[i] = desc.String()
			}
			return fmt.Errorf("%w: schema violation: %s", ErrMalformedResponse, strings.Join(errs, "; "))
		}
	}

	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("%w: failed to parse JSON response: %v", ErrMalformedResponse, err)
	}

	if validator, ok := v.(interface{ Validate() error }); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}

	return nil
}
