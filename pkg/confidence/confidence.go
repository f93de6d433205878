// Package confidence scores how much a processing pass may have altered the
// tail of a text. It compares unique-word sets drawn from the trailing
// windows of the original and processed text using Jaccard similarity, then
// buckets the score into a discrete confidence level.
package confidence

import (
	"github.com/ViaxCo/gemini-file-processor-sub001/internal/constants"
	"github.com/ViaxCo/gemini-file-processor-sub001/pkg/logging"
	"github.com/ViaxCo/gemini-file-processor-sub001/pkg/textutil"
)

// Level classifies a similarity score. The set is closed; switch on it
// exhaustively and treat anything unrecognized as low.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Result is the outcome of scoring one original/processed pair.
// Score is always within [0,1] and Level follows Score monotonically under
// the scorer's thresholds. Returned by value; nothing outlives the call.
type Result struct {
	Score float64 `json:"score"`
	Level Level   `json:"level"`
}

// Config allows tuning the scorer without code changes.
// Defaults mirror the centralized threshold table.
type Config struct {
	TailLength      int
	HighThreshold   float64
	MediumThreshold float64
}

// DefaultConfig returns thresholds that match the standard scoring contract.
func DefaultConfig() Config {
	return Config{
		TailLength:      constants.DefaultTailLength,
		HighThreshold:   constants.HighConfidenceThreshold,
		MediumThreshold: constants.MediumConfidenceThreshold,
	}
}

// Scorer computes confidence results consistently. Safe for concurrent use;
// all scoring state is function-local.
type Scorer struct {
	cfg Config
	log *logging.ComponentLogger
}

func NewScorer(cfg Config) *Scorer { return &Scorer{cfg: cfg} }
func NewDefault() *Scorer          { return NewScorer(DefaultConfig()) }

// SetLogger wires a logger for per-score debug output. Wire before first use;
// not synchronized against concurrent Score calls.
func (s *Scorer) SetLogger(l *logging.Logger) {
	if l != nil {
		s.log = l.WithComponent("confidence")
	}
}

// Score compares the trailing windows of the original and processed text.
// Total over all string inputs: when either window holds no words there is no
// measurable overlap and the result is {0, low}.
func (s *Scorer) Score(original, processed string) Result {
	a := textutil.WordSet(textutil.Tail(textutil.Normalize(original), s.cfg.TailLength))
	b := textutil.WordSet(textutil.Tail(textutil.Normalize(processed), s.cfg.TailLength))

	if len(a) == 0 || len(b) == 0 {
		return s.report(Result{Score: 0, Level: LevelLow}, len(a), len(b))
	}

	j := textutil.Jaccard(a, b)
	return s.report(Result{Score: j, Level: s.levelFor(j)}, len(a), len(b))
}

func (s *Scorer) levelFor(j float64) Level {
	switch {
	case j >= s.cfg.HighThreshold:
		return LevelHigh
	case j >= s.cfg.MediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

func (s *Scorer) report(r Result, originalWords, processedWords int) Result {
	if s.log != nil {
		s.log.Debug("scored pair",
			logging.Float64("score", r.Score),
			logging.String("confidence_level", string(r.Level)),
			logging.Int("original_words", originalWords),
			logging.Int("processed_words", processedWords),
		)
	}
	return r
}

var defaultScorer = NewDefault()

// Score compares original and processed text with the default configuration
// (250-character tail window, 0.7/0.4 thresholds).
func Score(original, processed string) Result {
	return defaultScorer.Score(original, processed)
}

// ColorClass maps a confidence level to its display color token.
// Unrecognized levels fall back to the low token.
func ColorClass(l Level) string {
	switch l {
	case LevelHigh:
		return constants.ColorHigh
	case LevelMedium:
		return constants.ColorMedium
	default:
		return constants.ColorLow
	}
}
