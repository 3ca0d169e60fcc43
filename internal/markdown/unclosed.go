package markdown

import (
	"fmt"
	"strings"
)

// UnclosedPolicy decides what to do with the final record when the document
// ends inside a fence. Exactly one policy is active per invocation.
type UnclosedPolicy string

const (
	// UnclosedProceed keeps the record as parsed, stray partial line and all.
	UnclosedProceed UnclosedPolicy = "proceed"
	// UnclosedOmitLastLine drops the final line of the record's text, since
	// truncated generation commonly stops mid-line.
	UnclosedOmitLastLine UnclosedPolicy = "omit-last-line"
	// UnclosedSkip discards the unclosed record entirely.
	UnclosedSkip UnclosedPolicy = "skip"
	// UnclosedError fails the whole parse.
	UnclosedError UnclosedPolicy = "error"
)

// ParseUnclosedPolicy validates a policy string.
func ParseUnclosedPolicy(s string) (UnclosedPolicy, error) {
	switch UnclosedPolicy(s) {
	case UnclosedProceed, UnclosedOmitLastLine, UnclosedSkip, UnclosedError:
		return UnclosedPolicy(s), nil
	}
	return "", fmt.Errorf("invalid unclosed-block policy %q (want proceed, omit-last-line, skip, or error)", s)
}

// ApplyUnclosedPolicy applies the policy to the parse result. It is a no-op
// when the last block was closed. The estimator, when non-nil, refreshes
// the final record's token estimate after its text changes.
func (r *ParseResult) ApplyUnclosedPolicy(policy UnclosedPolicy, est TokenEstimator) error {
	if !r.LastBlockUnclosed || len(r.Records) == 0 {
		return nil
	}
	switch policy {
	case UnclosedProceed:
	case UnclosedOmitLastLine:
		last := &r.Records[len(r.Records)-1]
		last.Text = dropLastLine(last.Text)
		if est != nil {
			last.TokenEstimate = est.Estimate(last.Text)
		}
	case UnclosedSkip:
		r.Records = r.Records[:len(r.Records)-1]
	case UnclosedError:
		return ErrUnclosedBlock
	default:
		return fmt.Errorf("invalid unclosed-block policy %q", policy)
	}
	return nil
}

// dropLastLine removes the final physical line of a trailing-newline
// normalized text.
func dropLastLine(text string) string {
	text = strings.TrimSuffix(text, "\n")
	idx := strings.LastIndexByte(text, '\n')
	if idx < 0 {
		return ""
	}
	return text[:idx+1]
}
