package prompt

import (
	"strings"
	"testing"

	"github.com/lexiblog/lexiblog-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EveryOperationPinsPortuguese(t *testing.T) {
	t.Parallel()

	payload := domain.Payload{
		"title":      "Channels em Go",
		"excerpt":    "Comunicação entre goroutines",
		"query":      "goroutines",
		"topic":      "Event sourcing",
		"scene":      "Personagem entra na cozinha",
		"basePrompt": "DNA: cabelo azul, jaqueta amarela",
		"itemName":   "banana",
		"word":       "serendipity",
	}

	for _, op := range domain.Operations() {
		t.Run(op.String(), func(t *testing.T) {
			out, err := Build(op, payload)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
			assert.Contains(t, strings.ToUpper(out), "PORTUGU", "prompt for %s must fix the language", op)
		})
	}
}

func TestBuild_IsDeterministic(t *testing.T) {
	t.Parallel()

	payload := domain.Payload{"topic": "Kubernetes operators"}
	first, err := Build(domain.OperationFullPost, payload)
	require.NoError(t, err)
	second, err := Build(domain.OperationFullPost, payload)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuild_UnknownOperation(t *testing.T) {
	t.Parallel()

	_, err := Build(domain.Operation("nope"), domain.Payload{})
	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestArticleContent(t *testing.T) {
	t.Parallel()

	out, err := ArticleContent("Testes em Go", "table-driven tests")
	require.NoError(t, err)
	assert.Contains(t, out, `sobre o tema: "Testes em Go".`)
	assert.Contains(t, out, "Contexto: table-driven tests")
	assert.Contains(t, out, "IDIOMA: PORTUGUÊS (BRASIL).")

	noExcerpt, err := ArticleContent("Testes em Go", "")
	require.NoError(t, err)
	assert.Contains(t, noExcerpt, "Contexto: \n")
}

func TestTemplatesDoNotEscapeInput(t *testing.T) {
	t.Parallel()

	out, err := SearchInsight(`<script> & "aspas"`)
	require.NoError(t, err)
	assert.Contains(t, out, `"<script> & "aspas""`)
}

func TestVideoPrompt(t *testing.T) {
	t.Parallel()

	out, err := VideoPrompt("Chuva na cidade", "Heroína de capa vermelha")
	require.NoError(t, err)
	assert.Contains(t, out, `Cena informada: "Chuva na cidade"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Heroína de capa vermelha"))
}

func TestSentences(t *testing.T) {
	t.Parallel()

	out, err := Sentences("serendipity")
	require.NoError(t, err)
	assert.Contains(t, out, "Palavra: serendipity")
	assert.Contains(t, out, `"sentences"`)
}
