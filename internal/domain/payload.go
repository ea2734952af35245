package domain

// MessageInvalidPayload is the user-facing message for an undecodable request body.
const MessageInvalidPayload = "Payload inválido."

// Payload holds the string fields of a generation request.
type Payload map[string]string

// NewPayload builds a Payload from a decoded JSON object. Only string values
// are kept; any other type is treated as if the field were absent.
func NewPayload(raw map[string]any) Payload {
	p := make(Payload, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			p[k] = s
		}
	}
	return p
}

// Get returns the value of a field, or "" when it is missing.
func (p Payload) Get(field string) string {
	if p == nil {
		return ""
	}
	return p[field]
}
