// Package prompt is the prompt template library. Every function here is pure:
// given the same operation arguments it returns the same prompt string.
//
// Text templates live in templates/*.tmpl and are embedded at build time, so
// the rendered prompts cannot drift from what ships in the binary. Every
// template pins the generated prose to Portuguese (Brazil).
//
// The item-explainer prompt (Veo3) is assembled in Go instead of a template:
// it resolves the item name against a static library, diacritic- and
// case-insensitively, and synthesizes an entry for unknown items so the
// lookup never fails.
package prompt
