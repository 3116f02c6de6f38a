package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func hintSchema() *Schema {
	return &Schema{
		Name:        "hint-set-test",
		Description: "A set of graded hints",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"gentle": map[string]any{"type": "string"},
				"medium": map[string]any{"type": "string"},
				"strong": map[string]any{"type": "string"},
			},
			"required": []any{"gentle", "medium", "strong"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"gentle":"think of gender","medium":"it is masculine","strong":"the answer starts with der"}`)
	if err := validateResponse(hintSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"gentle":"think of gender"}`)
	err := validateResponse(hintSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required fields")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"gentle":`)
	err := validateResponse(hintSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`anything at all`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error without a schema, got: %v", err)
	}
}
