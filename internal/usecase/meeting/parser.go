package meeting

import (
	"strings"

	apperrors "github.com/meeting-summarizer/meeting-summarizer/errors"
)

const (
	summaryToken     = "SUMMARY:"
	actionItemsToken = "ACTION_ITEMS:"
)

// GenerationResult is the typed payload returned by the text-generation
// provider, expected to follow the two-section template.
type GenerationResult struct {
	Text string
}

// Parser extracts the summary and action-item sections from a
// generation result. Pure text transform, no I/O.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits the generation text on the action-items token. The split
// must yield exactly two segments; zero or multiple occurrences of the
// token fail rather than guess. The dash-prefixed-line convention for
// action items is a generation instruction and is not validated here.
func (p *Parser) Parse(result GenerationResult) (summary string, actionItems string, err error) {
	parts := strings.Split(result.Text, actionItemsToken)
	if len(parts) != 2 {
		return "", "", apperrors.ErrUnexpectedResponseFormat()
	}

	summary = strings.TrimSpace(strings.ReplaceAll(parts[0], summaryToken, ""))
	actionItems = strings.TrimSpace(parts[1])
	return summary, actionItems, nil
}
