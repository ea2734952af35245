package generation

import "fmt"

// OutputMode selects between free text and schema-constrained JSON output.
type OutputMode int

const (
	// OutputText asks the model for free text.
	OutputText OutputMode = iota
	// OutputJSON asks the model for a single JSON object matching Config.Schema.
	OutputJSON
)

// String implements fmt.Stringer.
func (m OutputMode) String() string {
	switch m {
	case OutputText:
		return "text"
	case OutputJSON:
		return "json"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(m))
	}
}

// HarmCategory names a content-safety category understood by the adapters.
type HarmCategory string

// Harm categories configured by this service.
const (
	HarmHarassment       HarmCategory = "harassment"
	HarmHateSpeech       HarmCategory = "hate_speech"
	HarmSexuallyExplicit HarmCategory = "sexually_explicit"
	HarmDangerousContent HarmCategory = "dangerous_content"
)

// BlockThreshold is the level at which a harm category blocks a response.
type BlockThreshold string

// Supported thresholds.
const (
	BlockNone           BlockThreshold = "block_none"
	BlockOnlyHigh       BlockThreshold = "block_only_high"
	BlockMediumAndAbove BlockThreshold = "block_medium_and_above"
	BlockLowAndAbove    BlockThreshold = "block_low_and_above"
)

// SafetySetting pairs a harm category with its threshold.
type SafetySetting struct {
	Category  HarmCategory
	Threshold BlockThreshold
}

// PermissiveSafety returns the policy used by this service: every one of the
// four harm categories is set to BlockNone. It is applied explicitly per
// operation so the choice shows up in code review and logs.
func PermissiveSafety() []SafetySetting {
	return []SafetySetting{
		{Category: HarmDangerousContent, Threshold: BlockNone},
		{Category: HarmHateSpeech, Threshold: BlockNone},
		{Category: HarmHarassment, Threshold: BlockNone},
		{Category: HarmSexuallyExplicit, Threshold: BlockNone},
	}
}

// Config carries the per-operation generation settings.
type Config struct {
	// Model is the target model identifier. Empty means the adapter default.
	Model string

	// Output selects free text or schema-constrained JSON.
	Output OutputMode

	// Schema describes the expected JSON object when Output is OutputJSON.
	Schema *Schema

	// Safety lists the content-safety thresholds to send with the request.
	Safety []SafetySetting
}

// Validate reports whether the config can be sent to an adapter.
func (c Config) Validate() error {
	if c.Output == OutputJSON && c.Schema == nil {
		return fmt.Errorf("%w: JSON output requires a schema", ErrInvalidConfig)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("%w: unknown output mode %s", ErrInvalidConfig, c.Output)
	}
	return nil
}
