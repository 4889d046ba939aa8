package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"dndadventure/internal/debug"
	"dndadventure/internal/observability"
)

// Service wraps the OpenAI chat completions API for single-shot text
// generation. It holds no conversation state between calls.
type Service struct {
	client *openai.Client
	model  string
	debug  *debug.Logger
	tracer trace.Tracer
}

func NewService(apiKey, model string, debug *debug.Logger) *Service {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Service{
		client: &client,
		model:  model,
		debug:  debug,
		tracer: otel.Tracer("llm-service"),
	}
}

type TextCompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
	Model        string // optional override
}

// CompleteText issues one chat completion and returns the generated text.
func (s *Service) CompleteText(ctx context.Context, req TextCompletionRequest) (string, error) {
	model := s.model
	if strings.TrimSpace(req.Model) != "" {
		model = req.Model
	}

	ctx, span := s.tracer.Start(ctx, "llm.complete_text",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			observability.CreateGenAIAttributes("openai", model, 0, 0, req.Temperature)...,
		),
	)
	defer span.End()

	span.SetAttributes(
		attribute.Int("gen_ai.request.max_tokens", req.MaxTokens),
		attribute.String("langfuse.observation.type", "generation"),
	)

	span.AddEvent("gen_ai.user.message", trace.WithAttributes(
		attribute.String("gen_ai.system", "openai"),
		attribute.String("content", req.UserPrompt),
	))

	startTime := time.Now()

	openaiReq := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		MaxCompletionTokens: openai.Int(int64(req.MaxTokens)),
	}

	if req.Temperature > 0 {
		openaiReq.Temperature = openai.Float(req.Temperature)
	}

	s.debug.Printf("LLM completion - model: %s, max tokens: %d, prompt length: %d",
		model, req.MaxTokens, len(req.UserPrompt))

	resp, err := s.client.Chat.Completions.New(ctx, openaiReq)
	if err != nil {
		span.SetAttributes(attribute.String("error.type", "llm_completion_error"))
		span.RecordError(err)
		s.debug.Printf("LLM completion error: %v", err)
		return "", fmt.Errorf("text completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("no completion choices returned")
		span.RecordError(err)
		return "", err
	}

	content := resp.Choices[0].Message.Content
	duration := time.Since(startTime)

	span.SetAttributes(
		attribute.Int64("gen_ai.usage.input_tokens", resp.Usage.PromptTokens),
		attribute.Int64("gen_ai.usage.output_tokens", resp.Usage.CompletionTokens),
		attribute.Int64("response_time_ms", duration.Milliseconds()),
		attribute.String("langfuse.observation.input", req.SystemPrompt+"\n\n"+req.UserPrompt),
		attribute.String("langfuse.observation.output", content),
		attribute.String("langfuse.observation.model.name", model),
	)

	span.AddEvent("gen_ai.choice", trace.WithAttributes(
		attribute.String("gen_ai.system", "openai"),
		attribute.String("content", content),
	))

	s.debug.Printf("LLM completion response length: %d, tokens: %d/%d, duration: %v",
		len(content), resp.Usage.PromptTokens, resp.Usage.CompletionTokens, duration)

	return content, nil
}

// WithSessionID attaches the play session id to the context so every LLM
// span carries it.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return observability.WithSessionID(ctx, sessionID)
}
