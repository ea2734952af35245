package prompt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Veo3Style is the fixed style suffix appended to every item-explainer prompt.
const Veo3Style = "ultra-cute 3D cartoon style, Pixar-style proportions, big expressive eyes, rounded shapes, vibrant colors, smooth animation, cinematic lighting, shallow depth of field, kid-friendly, satisfying motion, vertical 9:16, high detail, soft shadows"

// Veo3VoiceOverLabel introduces the spoken line of an item-explainer prompt.
const Veo3VoiceOverLabel = "Voice-over (Portuguese audio):"

// fallbackName is used when the raw item name has no usable characters.
const fallbackName = "Item"

// Item describes one character of the item-explainer library.
type Item struct {
	Emoji         string
	NameEn        string
	NamePt        string
	Function      string
	Emotion       string
	Action        string
	Environment   string
	VisualDetails string
	Particles     string
	Motion        string
	VoiceOver     string
}

type libraryEntry struct {
	aliases []string
	item    Item
}

// entries holds one canonical record per item; every alias points to it.
var entries = []libraryEntry{
	{
		aliases: []string{"coração", "heart"},
		item: Item{
			Emoji:         "❤️",
			NameEn:        "Heart",
			NamePt:        "Coração",
			Function:      "BLOOD CIRCULATION",
			Emotion:       "warm",
			Action:        "gently pumping glowing red waves",
			Environment:   "a cozy, glowing bloodstream chamber",
			VisualDetails: "Tiny red cells float by as the heart shows a healthy rhythm meter",
			Particles:     "Soft red sparkles and golden pulses radiate outward",
			Motion:        "The character beats steadily with a caring, confident expression",
			VoiceOver:     "Olá, eu sou Coração. Eu bombeio sangue.",
		},
	},
	{
		aliases: []string{"pulmões", "lungs"},
		item: Item{
			Emoji:         "🫁",
			NameEn:        "Lungs",
			NamePt:        "Pulmões",
			Function:      "OXYGEN BREATHING",
			Emotion:       "calm",
			Action:        "expanding and contracting with fresh air",
			Environment:   "a clean breathing chamber filled with soft clouds",
			VisualDetails: "Blue and white oxygen ribbons flow in as gray smoke fades out",
			Particles:     "Light blue bubbles and misty glow swirl gently",
			Motion:        "They breathe in sync with a peaceful, happy vibe",
			VoiceOver:     "Olá, somos os Pulmões. Trazemos ar fresquinho.",
		},
	},
	{
		aliases: []string{"fígado", "liver"},
		item: Item{
			Emoji:         "🫀",
			NameEn:        "Liver",
			NamePt:        "Fígado",
			Function:      "DETOXIFICATION",
			Emotion:       "proud",
			Action:        "filtering dark particles into clean golden drops",
			Environment:   "a friendly filtration lab with glowing pipes",
			VisualDetails: "The liver waves a tiny filter wand over cloudy bubbles",
			Particles:     "Golden sparkles replace the dark mist",
			Motion:        "It works steadily like a helpful hero",
			VoiceOver:     "Olá, eu sou Fígado. Eu limpo coisas ruins.",
		},
	},
	{
		aliases: []string{"banana"},
		item: Item{
			Emoji:         "🍌",
			NameEn:        "Banana",
			NamePt:        "Banana",
			Function:      "ENERGY BOOST",
			Emotion:       "energetic",
			Action:        "running on a tiny treadmill",
			Environment:   "a bright tropical jungle with palm trees",
			VisualDetails: "The banana flexes tiny arms with a playful strength pose",
			Particles:     "Yellow lightning bolts and energy sparkles trail behind",
			Motion:        "Fast, bouncy movement with a joyful grin",
			VoiceOver:     "Olá, eu sou Banana. Eu dou energia.",
		},
	},
	{
		aliases: []string{"morango", "strawberry"},
		item: Item{
			Emoji:         "🍓",
			NameEn:        "Strawberry",
			NamePt:        "Morango",
			Function:      "VITAMIN C",
			Emotion:       "happy",
			Action:        "holding a glowing vitamin shield",
			Environment:   "a sunny berry garden with tiny flowers",
			VisualDetails: "The strawberry shows shiny seeds and rosy cheeks",
			Particles:     "Golden sparkles and soft pink glow float around",
			Motion:        "It bounces lightly, feeling strong and safe",
			VoiceOver:     "Olá, eu sou Morango. Eu protejo você.",
		},
	},
	{
		aliases: []string{"água", "water"},
		item: Item{
			Emoji:         "💧",
			NameEn:        "Water",
			NamePt:        "Água",
			Function:      "HYDRATION",
			Emotion:       "refreshing",
			Action:        "sliding down a sparkling water slide",
			Environment:   "a blue ocean wave tunnel",
			VisualDetails: "The droplet shines with crystal-clear highlights",
			Particles:     "Cool blue bubbles and light reflections dance around",
			Motion:        "It splashes playfully, creating ripples of energy",
			VoiceOver:     "Olá, eu sou Água. Eu hidrato você.",
		},
	},
}

// library maps normalized aliases to their canonical record. It is built
// once and only read afterwards.
var library = buildLibrary(entries)

func buildLibrary(entries []libraryEntry) map[string]*Item {
	lib := make(map[string]*Item)
	for i := range entries {
		item := &entries[i].item
		for _, alias := range entries[i].aliases {
			key := NormalizeKey(alias)
			if _, dup := lib[key]; dup {
				panic(fmt.Sprintf("prompt: duplicate item alias %q", key))
			}
			lib[key] = item
		}
	}
	return lib
}

// NormalizeKey folds an item name into its lookup key: trimmed, lowercased,
// without diacritics, with internal whitespace collapsed to single spaces.
// "Coração", "coracao" and "  CORAÇÃO " all yield "coracao".
func NormalizeKey(s string) string {
	lower := strings.ToLower(s)

	// The chained transformer is stateful, so build one per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, lower)
	if err != nil {
		folded = lower
	}

	return strings.Join(strings.Fields(folded), " ")
}

// TitleCase splits s on whitespace, drops empty segments, uppercases the
// first character of each segment and lowercases the rest.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// LookupItem returns the library record for raw, if there is one.
func LookupItem(raw string) (Item, bool) {
	item, ok := library[NormalizeKey(raw)]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

// ResolveItem returns the library record for raw or, for unknown names, a
// synthesized record built from the title-cased input. It never fails.
func ResolveItem(raw string) Item {
	if item, ok := LookupItem(raw); ok {
		return item
	}

	name := TitleCase(raw)
	if name == "" {
		name = fallbackName
	}

	return Item{
		Emoji:         "✨",
		NameEn:        name,
		NamePt:        name,
		Function:      "EDUCATIONAL HIGHLIGHT",
		Emotion:       "friendly",
		Action:        "showing its main purpose with a gentle gesture",
		Environment:   "a cheerful learning space that matches the theme",
		VisualDetails: "Colorful details reflect its natural features and role",
		Particles:     "Soft glowing particles match its main color palette",
		Motion:        "Smooth, inviting motion with a bright, safe vibe",
		VoiceOver:     fmt.Sprintf("Olá, eu sou %s. Eu ensino algo legal.", name),
	}
}

// Veo3Script holds the six parts of an item-explainer prompt.
type Veo3Script struct {
	Emoji          string
	Title          string
	Body           string
	VoiceOverLabel string
	VoiceOver      string
	Style          string
}

// NewVeo3Script fills the fixed template from an item record.
func NewVeo3Script(item Item) Veo3Script {
	body := fmt.Sprintf(
		"A cute anthropomorphic %s character with big expressive eyes and a %s smile, %s inside %s. %s. %s. %s.",
		strings.ToLower(item.NameEn),
		item.Emotion,
		item.Action,
		item.Environment,
		item.VisualDetails,
		item.Particles,
		item.Motion,
	)

	return Veo3Script{
		Emoji:          item.Emoji,
		Title:          strings.ToUpper(item.NameEn) + " - " + item.Function,
		Body:           body,
		VoiceOverLabel: Veo3VoiceOverLabel,
		VoiceOver:      `"` + item.VoiceOver + `"`,
		Style:          Veo3Style,
	}
}

// Header returns the first line of the prompt, e.g. "🍌 BANANA - ENERGY BOOST".
func (s Veo3Script) Header() string {
	return s.Emoji + " " + s.Title
}

// Parts returns the six parts in prompt order.
func (s Veo3Script) Parts() []string {
	return []string{s.Emoji, s.Title, s.Body, s.VoiceOverLabel, s.VoiceOver, s.Style}
}

// String renders the script with blank lines between sections.
func (s Veo3Script) String() string {
	return strings.Join([]string{
		s.Header(),
		"",
		s.Body,
		"",
		s.VoiceOverLabel,
		s.VoiceOver,
		"",
		s.Style,
	}, "\n")
}

// Veo3Prompt builds the item-explainer prompt for a raw item name.
func Veo3Prompt(itemName string) string {
	return NewVeo3Script(ResolveItem(itemName)).String()
}
