package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)

	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}
	if data.RequestBody != "" {
		builder = builder.SetRequestBody(data.RequestBody)
	}
	if data.ResponseBody != "" {
		builder = builder.SetResponseBody(data.ResponseBody)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}
