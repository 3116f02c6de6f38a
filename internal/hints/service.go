package hints

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/meera/lingua/internal/llm"
	"github.com/meera/lingua/internal/question"
)

// Service generates graded hints asynchronously. When no provider is
// configured, or generation fails, it falls back to the deterministic
// hints derived from the answer key.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu         sync.Mutex
	questionID string
	pending    []question.HintSpec
	ready      bool
}

// NewService creates a hint generation service. Provider may be nil, in
// which case every request resolves to fallback hints.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestHints starts async hint generation for the given question. Only
// one request is in-flight at a time; a new request replaces a pending one.
func (s *Service) RequestHints(ctx context.Context, q question.Question) {
	if s.provider == nil {
		s.store(q.ID, question.GenerateHints(&q))
		return
	}

	go func() {
		specs, err := s.generate(ctx, q)
		if err != nil {
			specs = question.GenerateHints(&q)
		}
		s.store(q.ID, specs)
	}()
}

// ConsumeHints returns the generated hints for the given question if
// they are ready, clearing the pending slot. Returns (nil, false) when
// nothing is ready or the pending hints belong to another question.
func (s *Service) ConsumeHints(questionID string) ([]question.HintSpec, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready || s.questionID != questionID {
		return nil, false
	}
	specs := s.pending
	s.pending = nil
	s.ready = false
	s.questionID = ""
	return specs, true
}

func (s *Service) store(questionID string, specs []question.HintSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questionID = questionID
	s.pending = specs
	s.ready = true
}

type hintSetOutput struct {
	Gentle string `json:"gentle"`
	Medium string `json:"medium"`
	Strong string `json:"strong"`
}

func (s *Service) generate(ctx context.Context, q question.Question) ([]question.HintSpec, error) {
	ctx = llm.WithPurpose(ctx, "hint-generation")

	req := llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHintUserMessage(q)},
		},
		Schema:      HintSetSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("hint generation: %w", err)
	}

	var out hintSetOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse hint response: %w", err)
	}

	return []question.HintSpec{
		{ID: q.ID + "-h1", Tier: question.TierGentle, Text: out.Gentle, Cost: question.TierGentle.Cost()},
		{ID: q.ID + "-h2", Tier: question.TierMedium, Text: out.Medium, Cost: question.TierMedium.Cost()},
		{ID: q.ID + "-h3", Tier: question.TierStrong, Text: out.Strong, Cost: question.TierStrong.Cost()},
	}, nil
}
