package providers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"solar_cli/pkg/ai"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// completionsSettings is the common shape of every endpoint speaking the
// OpenAI chat completions protocol.
type completionsSettings struct {
	Name           string
	APIKey         string
	APIURL         string
	Model          string
	Temperature    *float64
	MaxTokens      int
	TimeoutSeconds int
	Headers        map[string]string
}

// CompletionsProvider implements ai.Provider for chat-completions
// endpoints (OpenRouter, OpenAI).
type CompletionsProvider struct {
	name               string
	client             openai.Client
	defaultModel       string
	defaultTemperature *float64
	defaultMaxTokens   int
}

func newCompletionsProvider(s completionsSettings, httpClient *http.Client) (*CompletionsProvider, error) {
	if strings.TrimSpace(s.APIKey) == "" {
		slog.Debug("completions_provider_missing_key", "provider", s.Name)
		return nil, fmt.Errorf("%s api_key is required: %w", s.Name, ai.ErrMissingCredential)
	}
	if strings.TrimSpace(s.APIURL) == "" {
		return nil, fmt.Errorf("%s api_url is required", s.Name)
	}
	if strings.TrimSpace(s.Model) == "" {
		return nil, fmt.Errorf("%s model is required", s.Name)
	}
	if s.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%s api_timeout_seconds must be positive", s.Name)
	}

	if httpClient == nil {
		httpClient = ai.NewHTTPClient(time.Duration(s.TimeoutSeconds) * time.Second)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(s.APIKey),
		option.WithBaseURL(s.APIURL),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	for name, value := range s.Headers {
		if strings.TrimSpace(value) != "" {
			opts = append(opts, option.WithHeader(name, value))
		}
	}

	slog.Debug("completions_provider_ready",
		"provider", s.Name,
		"api_url", s.APIURL,
		"model", s.Model,
		"timeout_seconds", s.TimeoutSeconds,
	)
	return &CompletionsProvider{
		name:               s.Name,
		client:             openai.NewClient(opts...),
		defaultModel:       s.Model,
		defaultTemperature: s.Temperature,
		defaultMaxTokens:   s.MaxTokens,
	}, nil
}

// CreateChatCompletion sends a non-streaming chat completion request.
func (p *CompletionsProvider) CreateChatCompletion(ctx context.Context, req ai.ChatRequest) (ai.ChatResponse, error) {
	params, err := p.buildChatParams(req)
	if err != nil {
		return ai.ChatResponse{}, err
	}

	slog.Debug("chat_request",
		"provider", p.name,
		"model", string(params.Model),
		"message_count", len(req.Messages),
	)
	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil || len(resp.Choices) == 0 {
		if recorded, ok := decodeRecordedCompletion(ctx); ok {
			resp, err = recorded, nil
		}
	}
	if err != nil {
		return ai.ChatResponse{}, err
	}

	if len(resp.Choices) == 0 {
		raw := resp.RawJSON()
		if ex := ai.ExchangeFrom(ctx); raw == "" && ex != nil {
			raw = string(ex.Body())
		}
		return ai.ChatResponse{}, &ai.FormatError{Raw: raw}
	}

	return ai.ChatResponse{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
	}, nil
}

func (p *CompletionsProvider) buildChatParams(req ai.ChatRequest) (openai.ChatCompletionNewParams, error) {
	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = p.defaultModel
	}
	if model == "" {
		return openai.ChatCompletionNewParams{}, fmt.Errorf("%w: model is required", ai.ErrInvalidRequest)
	}
	if len(req.Messages) == 0 {
		return openai.ChatCompletionNewParams{}, fmt.Errorf("%w: messages are required", ai.ErrInvalidRequest)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		param, err := toChatMessageParam(msg)
		if err != nil {
			return openai.ChatCompletionNewParams{}, err
		}
		messages = append(messages, param)
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}

	temperature := p.defaultTemperature
	if req.Temperature != nil {
		temperature = req.Temperature
	}
	if temperature != nil {
		params.Temperature = openai.Float(*temperature)
	}

	maxTokens := p.defaultMaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}

	return params, nil
}

// decodeRecordedCompletion decodes a 200 body the SDK would not, which
// happens when a gateway labels JSON with another content type.
func decodeRecordedCompletion(ctx context.Context) (*openai.ChatCompletion, bool) {
	ex := ai.ExchangeFrom(ctx)
	if ex == nil || !ex.Responded() || ex.StatusCode() != http.StatusOK {
		return nil, false
	}
	var completion openai.ChatCompletion
	if err := completion.UnmarshalJSON(ex.Body()); err != nil {
		return nil, false
	}
	slog.Debug("chat_response_decoded_from_exchange", "choices", len(completion.Choices))
	return &completion, true
}

func toChatMessageParam(msg ai.Message) (openai.ChatCompletionMessageParamUnion, error) {
	switch msg.Role {
	case ai.RoleSystem:
		return openai.SystemMessage(msg.Content), nil
	case ai.RoleUser:
		return openai.UserMessage(msg.Content), nil
	case ai.RoleAssistant:
		return openai.AssistantMessage(msg.Content), nil
	default:
		return openai.ChatCompletionMessageParamUnion{}, fmt.Errorf("%w: unsupported role: %s", ai.ErrInvalidRequest, msg.Role)
	}
}

var _ ai.Provider = (*CompletionsProvider)(nil)
