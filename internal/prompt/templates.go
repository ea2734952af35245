package prompt

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"text/template"

	"github.com/lexiblog/lexiblog-api/internal/domain"
)

// ErrNoTemplate is returned when an operation has no prompt template.
var ErrNoTemplate = errors.New("no prompt template for operation")

//go:embed templates/*.tmpl
var templateFiles embed.FS

var templates = template.Must(template.New("prompts").ParseFS(templateFiles, "templates/*.tmpl"))

type articleData struct {
	Title   string
	Excerpt string
}

type insightData struct {
	Query string
}

type fullPostData struct {
	Topic string
}

type videoData struct {
	Scene      string
	BasePrompt string
}

type sentencesData struct {
	Word string
}

// execute renders the named template with data.
func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}
	return buf.String(), nil
}

// ArticleContent builds the prompt for a full Markdown article about title.
// excerpt is optional context.
func ArticleContent(title, excerpt string) (string, error) {
	return execute("article.tmpl", articleData{Title: title, Excerpt: excerpt})
}

// SearchInsight builds the prompt for a one-sentence insight about a search query.
func SearchInsight(query string) (string, error) {
	return execute("insight.tmpl", insightData{Query: query})
}

// FullPost builds the prompt for a structured blog post about topic.
func FullPost(topic string) (string, error) {
	return execute("full_post.tmpl", fullPostData{Topic: topic})
}

// VideoPrompt builds the prompt that refines basePrompt for the given scene.
func VideoPrompt(scene, basePrompt string) (string, error) {
	return execute("video.tmpl", videoData{Scene: scene, BasePrompt: basePrompt})
}

// Sentences builds the prompt for example sentences using word.
func Sentences(word string) (string, error) {
	return execute("sentences.tmpl", sentencesData{Word: word})
}

// Build renders the prompt for op from an already validated payload.
func Build(op domain.Operation, p domain.Payload) (string, error) {
	switch op {
	case domain.OperationArticleContent:
		return ArticleContent(p.Get("title"), p.Get("excerpt"))
	case domain.OperationSearchInsights:
		return SearchInsight(p.Get("query"))
	case domain.OperationFullPost:
		return FullPost(p.Get("topic"))
	case domain.OperationVideoPrompt:
		return VideoPrompt(p.Get("scene"), p.Get("basePrompt"))
	case domain.OperationVeo3Prompt:
		return Veo3Prompt(p.Get("itemName")), nil
	case domain.OperationSentences:
		return Sentences(p.Get("word"))
	default:
		return "", fmt.Errorf("%w: %s", ErrNoTemplate, op)
	}
}
