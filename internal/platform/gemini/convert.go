package gemini

import (
	"sort"

	"github.com/lexiblog/lexiblog-api/internal/generation"
	"google.golang.org/genai"
)

const jsonMIMEType = "application/json"

var harmCategories = map[generation.HarmCategory]genai.HarmCategory{
	generation.HarmHarassment:       genai.HarmCategoryHarassment,
	generation.HarmHateSpeech:       genai.HarmCategoryHateSpeech,
	generation.HarmSexuallyExplicit: genai.HarmCategorySexuallyExplicit,
	generation.HarmDangerousContent: genai.HarmCategoryDangerousContent,
}

var blockThresholds = map[generation.BlockThreshold]genai.HarmBlockThreshold{
	generation.BlockNone:           genai.HarmBlockThresholdBlockNone,
	generation.BlockOnlyHigh:       genai.HarmBlockThresholdBlockOnlyHigh,
	generation.BlockMediumAndAbove: genai.HarmBlockThresholdBlockMediumAndAbove,
	generation.BlockLowAndAbove:    genai.HarmBlockThresholdBlockLowAndAbove,
}

var schemaTypes = map[generation.SchemaType]genai.Type{
	generation.TypeObject: genai.TypeObject,
	generation.TypeArray:  genai.TypeArray,
	generation.TypeString: genai.TypeString,
}

// contentConfig translates a generation.Config into genai request settings.
func contentConfig(cfg generation.Config) *genai.GenerateContentConfig {
	out := &genai.GenerateContentConfig{
		SafetySettings: safetySettings(cfg.Safety),
	}

	if cfg.Output == generation.OutputJSON {
		out.ResponseMIMEType = jsonMIMEType
		out.ResponseSchema = toSchema(cfg.Schema)
	}

	return out
}

// safetySettings skips categories and thresholds genai does not know.
func safetySettings(in []generation.SafetySetting) []*genai.SafetySetting {
	if len(in) == 0 {
		return nil
	}

	out := make([]*genai.SafetySetting, 0, len(in))
	for _, s := range in {
		category, ok := harmCategories[s.Category]
		if !ok {
			continue
		}
		threshold, ok := blockThresholds[s.Threshold]
		if !ok {
			continue
		}
		out = append(out, &genai.SafetySetting{Category: category, Threshold: threshold})
	}
	return out
}

func toSchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:     schemaTypes[s.Type],
		Items:    toSchema(s.Items),
		Required: append([]string(nil), s.Required...),
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toSchema(prop)
		}
		out.PropertyOrdering = propertyOrder(s)
	}

	return out
}

// propertyOrder returns s.Order followed by any remaining properties sorted
// by name.
func propertyOrder(s *generation.Schema) []string {
	seen := make(map[string]bool, len(s.Properties))
	order := make([]string, 0, len(s.Properties))
	for _, name := range s.Order {
		if _, ok := s.Properties[name]; ok && !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	var rest []string
	for name := range s.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(order, rest...)
}
