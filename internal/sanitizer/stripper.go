package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// TextStripperer strips markup from untrusted text before it is persisted.
type TextStripperer interface {
	StripText(s string) string
}

// TextStripper removes all HTML from upstream feed fields.
type TextStripper struct {
	bm *bluemonday.Policy
}

// Ensure TextStripper implements TextStripperer.
var _ TextStripperer = (*TextStripper)(nil)

// NewTextStripper returns a stripper backed by bluemonday's strict policy.
func NewTextStripper() *TextStripper {
	return &TextStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

func (ts *TextStripper) StripText(s string) string {
	return strings.TrimSpace(ts.bm.Sanitize(s))
}
