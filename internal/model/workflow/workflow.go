package workflow

import (
	"regexp"
	"strings"
)

// Definition describes one externally hosted ChatKit workflow exposed to the
// frontend. The wf_id is an opaque identifier minted by the vendor.
type Definition struct {
	Name    string        `json:"name"`
	ID      string        `json:"wf_id"`
	Prompts []StartPrompt `json:"prompts"`
}

// StartPrompt is a start-screen suggestion rendered by the widget.
type StartPrompt struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
	Icon   string `json:"icon,omitempty"`
}

const defaultIcon = "circle-question"

// DefaultPrompt is served when a workflow has no prompts configured.
var DefaultPrompt = StartPrompt{
	Label:  "What can you do?",
	Prompt: "What can you do?",
	Icon:   defaultIcon,
}

// allowedIcons mirrors the icon names the ChatKit start screen accepts.
// Anything else is replaced with the default icon before serving.
var allowedIcons = map[string]struct{}{
	"agent":           {},
	"bolt":            {},
	"book-open":       {},
	"chart":           {},
	"circle-question": {},
	"compass":         {},
	"images":          {},
	"lightbulb":       {},
	"notebook":        {},
	"search":          {},
	"sparkle":         {},
	"write":           {},
}

// Seed provides the built-in workflow library. The Hello Agent id comes from
// configuration so a default deployment works without editing code.
func Seed(defaultWorkflowID string) []Definition {
	return []Definition{
		{
			Name: "Hello Agent",
			ID:   strings.TrimSpace(defaultWorkflowID),
			Prompts: []StartPrompt{
				p("What can you do?", "circle-question"),
			},
		},
		{
			Name: "Content Manager",
			ID:   "wf_68ea5c2540d48190858e868cf48a050201e47c9c2f133b23",
			Prompts: []StartPrompt{
				p("Where should we start writing the article?", "write"),
				p("How to conduct SEO research?", "search"),
				p("In what format and style should the illustration be created?", "images"),
			},
		},
		{
			Name: "Copywriter AI",
			ID:   "wf_68ef76b4b0f48190a249d1b33295d265079411bb63e6b239",
			Prompts: []StartPrompt{
				p("How to create a content plan for a blog post?", "write"),
			},
		},
	}
}

func p(label, icon string) StartPrompt {
	return StartPrompt{Label: label, Prompt: label, Icon: icon}
}

var (
	slugStrip  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces = regexp.MustCompile(`\s+`)
	slugDashes = regexp.MustCompile(`-+`)
)

// Slugify turns a display name into its lookup slug: trim, lower-case, drop
// anything outside [a-z0-9\s-], then collapse whitespace and dash runs.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugDashes.ReplaceAllString(s, "-")
}
