package domain

// Operation identifies one kind of generation request. The string value is
// the action name used on the wire.
type Operation string

// Supported operations.
const (
	OperationArticleContent Operation = "generateArticleContent"
	OperationSearchInsights Operation = "generateSearchInsights"
	OperationFullPost       Operation = "generateFullPost"
	OperationVideoPrompt    Operation = "generateVideoPrompt"
	OperationVeo3Prompt     Operation = "generateVeo3Prompt"
	OperationSentences      Operation = "generateSentences"
)

// MessageUnknownOperation is the user-facing message for an unknown action.
const MessageUnknownOperation = "Ação inválida."

// resultFields maps each operation to the response field that wraps its result.
var resultFields = map[Operation]string{
	OperationArticleContent: "content",
	OperationSearchInsights: "insight",
	OperationFullPost:       "post",
	OperationVideoPrompt:    "prompt",
	OperationVeo3Prompt:     "prompt",
	OperationSentences:      "sentences",
}

// Operations returns every supported operation in a stable order.
func Operations() []Operation {
	return []Operation{
		OperationArticleContent,
		OperationSearchInsights,
		OperationFullPost,
		OperationVideoPrompt,
		OperationVeo3Prompt,
		OperationSentences,
	}
}

// ParseOperation resolves an action name. Unknown names yield a
// ValidationError wrapping ErrUnknownOperation.
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	if _, ok := resultFields[op]; !ok {
		return "", NewValidationError("action", MessageUnknownOperation, ErrUnknownOperation)
	}
	return op, nil
}

// ResultField returns the name of the response field holding the result.
func (o Operation) ResultField() string {
	return resultFields[o]
}

// String implements fmt.Stringer.
func (o Operation) String() string {
	return string(o)
}
