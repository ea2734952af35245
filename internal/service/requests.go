package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lexiblog/lexiblog-api/internal/domain"
)

// User-facing validation messages, keyed by payload field.
const (
	MessageTitleRequired      = "Título não informado."
	MessageTopicRequired      = "Tópico não informado."
	MessageSceneRequired      = "Cena não informada."
	MessageBasePromptRequired = "Prompt base não informado."
	MessageItemNameRequired   = "Nome do item não informado."
	MessageWordRequired       = "Palavra não informada."
	MessageFormatInvalid      = "Formato inválido."
)

// Output formats accepted by generateArticleContent.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

var fieldMessages = map[string]string{
	"title":      MessageTitleRequired,
	"topic":      MessageTopicRequired,
	"scene":      MessageSceneRequired,
	"basePrompt": MessageBasePromptRequired,
	"itemName":   MessageItemNameRequired,
	"word":       MessageWordRequired,
	"format":     MessageFormatInvalid,
}

// Request types hold the validated payload of each operation. The json tag
// names the payload field and is what validation errors report.
type (
	articleRequest struct {
		Title   string `json:"title"   validate:"required"`
		Excerpt string `json:"excerpt"`
		Format  string `json:"format"  validate:"omitempty,oneof=markdown html"`
	}

	insightRequest struct {
		Query string `json:"query"`
	}

	fullPostRequest struct {
		Topic string `json:"topic" validate:"required"`
	}

	videoRequest struct {
		Scene      string `json:"scene"      validate:"required"`
		BasePrompt string `json:"basePrompt" validate:"required"`
	}

	veo3Request struct {
		ItemName string `json:"itemName" validate:"required"`
	}

	sentencesRequest struct {
		Word string `json:"word" validate:"required"`
	}
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRequest builds and validates the request of op from p. Only the
// empty string counts as missing; whitespace is passed through.
func (d *Dispatcher) decodeRequest(op domain.Operation, p domain.Payload) (any, error) {
	var req any
	switch op {
	case domain.OperationArticleContent:
		req = &articleRequest{
			Title:   p.Get("title"),
			Excerpt: p.Get("excerpt"),
			Format:  p.Get("format"),
		}
	case domain.OperationSearchInsights:
		req = &insightRequest{Query: p.Get("query")}
	case domain.OperationFullPost:
		req = &fullPostRequest{Topic: p.Get("topic")}
	case domain.OperationVideoPrompt:
		req = &videoRequest{Scene: p.Get("scene"), BasePrompt: p.Get("basePrompt")}
	case domain.OperationVeo3Prompt:
		req = &veo3Request{ItemName: p.Get("itemName")}
	case domain.OperationSentences:
		req = &sentencesRequest{Word: p.Get("word")}
	default:
		return nil, domain.NewValidationError("action", domain.MessageUnknownOperation, domain.ErrUnknownOperation)
	}

	if err := d.validate.Struct(req); err != nil {
		return nil, toValidationError(err)
	}
	return req, nil
}

// toValidationError reports the first failing field with its user-facing message.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("", domain.MessageInvalidPayload, domain.ErrInvalidPayload)
	}

	field := verrs[0].Field()
	msg, ok := fieldMessages[field]
	if !ok {
		msg = "Campo inválido: " + field + "."
	}
	return domain.NewValidationError(field, msg, nil)
}
