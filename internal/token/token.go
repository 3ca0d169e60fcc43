// Package token estimates token counts for embedded files. Counts are
// attached to records for display purposes only.
package token

import (
	"github.com/tiktoken-go/tokenizer"
)

// Estimator counts tokens with the o200k BPE vocabulary. When the codec is
// unavailable it falls back to a bytes/4 heuristic rather than failing the
// conversion.
type Estimator struct {
	codec tokenizer.Codec
}

// NewEstimator creates an Estimator.
func NewEstimator() *Estimator {
	codec, err := tokenizer.Get(tokenizer.O200kBase)
	if err != nil {
		codec = nil
	}
	return &Estimator{codec: codec}
}

// Estimate returns the token count of text.
func (e *Estimator) Estimate(text string) int {
	if text == "" {
		return 0
	}
	if e.codec != nil {
		if ids, _, err := e.codec.Encode(text); err == nil {
			return len(ids)
		}
	}
	return (len(text) + 3) / 4
}
