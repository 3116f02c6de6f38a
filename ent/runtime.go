// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/meera/lingua/ent/activityevent"
	"github.com/meera/lingua/ent/hintevent"
	"github.com/meera/lingua/ent/llmrequestevent"
	"github.com/meera/lingua/ent/schema"
	"github.com/meera/lingua/ent/sessionevent"
	"github.com/meera/lingua/ent/submissionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescRunID is the schema descriptor for run_id field.
	activityeventDescRunID := activityeventFields[0].Descriptor()
	// activityevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	activityevent.RunIDValidator = activityeventDescRunID.Validators[0].(func(string) error)
	// activityeventDescActivityType is the schema descriptor for activity_type field.
	activityeventDescActivityType := activityeventFields[1].Descriptor()
	// activityevent.ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	activityevent.ActivityTypeValidator = activityeventDescActivityType.Validators[0].(func(string) error)
	// activityeventDescQuestionID is the schema descriptor for question_id field.
	activityeventDescQuestionID := activityeventFields[4].Descriptor()
	// activityevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	activityevent.QuestionIDValidator = activityeventDescQuestionID.Validators[0].(func(string) error)
	// activityeventDescVariant is the schema descriptor for variant field.
	activityeventDescVariant := activityeventFields[5].Descriptor()
	// activityevent.VariantValidator is a validator for the "variant" field. It is called by the builders before save.
	activityevent.VariantValidator = activityeventDescVariant.Validators[0].(func(string) error)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescRunID is the schema descriptor for run_id field.
	hinteventDescRunID := hinteventFields[0].Descriptor()
	// hintevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	hintevent.RunIDValidator = hinteventDescRunID.Validators[0].(func(string) error)
	// hinteventDescQuestionID is the schema descriptor for question_id field.
	hinteventDescQuestionID := hinteventFields[1].Descriptor()
	// hintevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	hintevent.QuestionIDValidator = hinteventDescQuestionID.Validators[0].(func(string) error)
	// hinteventDescHintID is the schema descriptor for hint_id field.
	hinteventDescHintID := hinteventFields[2].Descriptor()
	// hintevent.HintIDValidator is a validator for the "hint_id" field. It is called by the builders before save.
	hintevent.HintIDValidator = hinteventDescHintID.Validators[0].(func(string) error)
	// hinteventDescTier is the schema descriptor for tier field.
	hinteventDescTier := hinteventFields[3].Descriptor()
	// hintevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	hintevent.TierValidator = hinteventDescTier.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescRunID is the schema descriptor for run_id field.
	sessioneventDescRunID := sessioneventFields[0].Descriptor()
	// sessionevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	sessionevent.RunIDValidator = sessioneventDescRunID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescPointsEarned is the schema descriptor for points_earned field.
	sessioneventDescPointsEarned := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultPointsEarned holds the default value on creation for the points_earned field.
	sessionevent.DefaultPointsEarned = sessioneventDescPointsEarned.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescRunID is the schema descriptor for run_id field.
	submissioneventDescRunID := submissioneventFields[0].Descriptor()
	// submissionevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	submissionevent.RunIDValidator = submissioneventDescRunID.Validators[0].(func(string) error)
	// submissioneventDescQuestionID is the schema descriptor for question_id field.
	submissioneventDescQuestionID := submissioneventFields[1].Descriptor()
	// submissionevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	submissionevent.QuestionIDValidator = submissioneventDescQuestionID.Validators[0].(func(string) error)
	// submissioneventDescVariant is the schema descriptor for variant field.
	submissioneventDescVariant := submissioneventFields[2].Descriptor()
	// submissionevent.VariantValidator is a validator for the "variant" field. It is called by the builders before save.
	submissionevent.VariantValidator = submissioneventDescVariant.Validators[0].(func(string) error)
	// submissioneventDescTimedOut is the schema descriptor for timed_out field.
	submissioneventDescTimedOut := submissioneventFields[9].Descriptor()
	// submissionevent.DefaultTimedOut holds the default value on creation for the timed_out field.
	submissionevent.DefaultTimedOut = submissioneventDescTimedOut.Default.(bool)
}
