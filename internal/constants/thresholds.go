package constants

// Centralized threshold values used across the library.
// Keep these stable; change deliberately and document why.

const (
	// DefaultTailLength is the trailing window, in characters of normalized
	// text, that similarity is computed over. Recent edits and truncation
	// artifacts show up at the end of a processed text, so only the tail
	// feeds the trust signal.
	DefaultTailLength = 250

	// Confidence level thresholds over the Jaccard score (0.0 - 1.0)
	HighConfidenceThreshold   = 0.7
	MediumConfidenceThreshold = 0.4
)

// Display color tokens per confidence level.
const (
	ColorHigh   = "emerald"
	ColorMedium = "amber"
	ColorLow    = "rose"
)
