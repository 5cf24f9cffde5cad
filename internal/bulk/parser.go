// Package bulk parses free-form pasted text into candidate records.
//
// Input is expected to contain one or more blocks of lines like:
//
//	First name: Jo
//	Last name: Doe
//	Email: jo@example.com
//	Password: hunter2
//
// Field lines may repeat or be omitted; a candidate is committed when a
// Password line arrives and both email and password are present. The parser
// performs no deduplication and never touches the store.
package bulk

import (
	"strings"

	"github.com/dmitrijs2005/stocktrack/internal/common"
	"github.com/dmitrijs2005/stocktrack/internal/models"
)

const (
	prefixFirstName = "First name:"
	prefixLastName  = "Last name:"
	prefixEmail     = "Email:"
	prefixPassword  = "Password:"
)

// Parse converts text into an ordered list of complete candidates.
//
// Blank or whitespace-only input yields common.ErrEmptyInput; non-empty
// input committing zero candidates yields common.ErrNoValidCandidates.
//
// Prefix matching is case-sensitive. The value is the segment between the
// first and second colon on the line, trimmed; anything after a second
// colon is cut off. Name and email lines overwrite earlier values within
// the same in-progress candidate. A Password line without an email seen
// yet does not commit; such partials are dropped silently.
func Parse(text string) ([]models.Candidate, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrEmptyInput
	}

	var candidates []models.Candidate
	var current models.Candidate

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, prefixFirstName):
			current.FirstName = value(trimmed)
		case strings.HasPrefix(trimmed, prefixLastName):
			current.LastName = value(trimmed)
		case strings.HasPrefix(trimmed, prefixEmail):
			current.Email = value(trimmed)
		case strings.HasPrefix(trimmed, prefixPassword):
			current.Pass = value(trimmed)
			if current.Complete() {
				candidates = append(candidates, current)
				current = models.Candidate{}
			}
		}
	}

	if len(candidates) == 0 {
		return nil, common.ErrNoValidCandidates
	}

	return candidates, nil
}

// value extracts the first colon-delimited segment after the prefix.
func value(line string) string {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
