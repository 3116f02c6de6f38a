package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meera/lingua/internal/question"
)

// bankEntry is the on-disk JSON shape of a question.
type bankEntry struct {
	ID               string   `json:"id"`
	Variant          string   `json:"variant"`
	Prompt           string   `json:"prompt"`
	AnswerKey        string   `json:"answer_key"`
	Options          []string `json:"options,omitempty"`
	Targets          []string `json:"targets,omitempty"`
	Items            []string `json:"items,omitempty"`
	Regions          []string `json:"regions,omitempty"`
	Mode             string   `json:"mode,omitempty"`
	PointValue       int      `json:"point_value"`
	MaxAttempts      int      `json:"max_attempts,omitempty"`
	TimeLimitSeconds int      `json:"time_limit_seconds,omitempty"`
	AllowPartial     bool     `json:"allow_partial,omitempty"`
	Explanation      string   `json:"explanation,omitempty"`
}

// LoadBank reads a JSON question bank from path. Every entry is fully
// validated, including its answer key; a single bad entry fails the
// whole load so a broken bank never half-works.
func LoadBank(path string) ([]question.Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}

	var entries []bankEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse bank %s: %w", path, err)
	}

	questions := make([]question.Question, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for i, e := range entries {
		q, err := fromEntry(e)
		if err != nil {
			return nil, fmt.Errorf("bank %s entry %d (%s): %w", path, i, e.ID, err)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("bank %s entry %d: duplicate id %q", path, i, q.ID)
		}
		seen[q.ID] = true
		questions = append(questions, q)
	}

	return questions, nil
}

func fromEntry(e bankEntry) (question.Question, error) {
	q := question.Question{
		ID:               e.ID,
		Variant:          question.Variant(e.Variant),
		Prompt:           e.Prompt,
		AnswerKey:        e.AnswerKey,
		Options:          e.Options,
		Targets:          e.Targets,
		Items:            e.Items,
		Regions:          e.Regions,
		Mode:             question.RegionMode(e.Mode),
		PointValue:       e.PointValue,
		MaxAttempts:      e.MaxAttempts,
		TimeLimitSeconds: e.TimeLimitSeconds,
		AllowPartial:     e.AllowPartial,
		Explanation:      e.Explanation,
	}

	if q.ID == "" {
		return question.Question{}, fmt.Errorf("missing id")
	}
	if !q.Variant.Valid() {
		return question.Question{}, fmt.Errorf("unknown variant %q", e.Variant)
	}
	if q.Prompt == "" {
		return question.Question{}, fmt.Errorf("missing prompt")
	}
	if q.PointValue <= 0 {
		return question.Question{}, fmt.Errorf("point_value must be positive")
	}
	if q.Variant == question.ImageBased && q.Mode == "" {
		q.Mode = question.RegionSingle
	}

	// The answer key must parse for the engine to ever mark it correct.
	if _, err := question.ParseKey(&q); err != nil {
		return question.Question{}, fmt.Errorf("answer key: %w", err)
	}

	return q, nil
}
