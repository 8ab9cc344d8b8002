package assistant

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"solar_cli/pkg/ai"
	_ "solar_cli/pkg/ai/providers"
	"solar_cli/pkg/config"
)

type fakeProvider struct {
	resp    ai.ChatResponse
	err     error
	got     ai.ChatRequest
	calls   int
	hasTime bool
}

func (f *fakeProvider) CreateChatCompletion(ctx context.Context, req ai.ChatRequest) (ai.ChatResponse, error) {
	f.calls++
	f.got = req
	_, f.hasTime = ctx.Deadline()
	return f.resp, f.err
}

func newOpenRouterGenerator(t *testing.T, url string) *Generator {
	t.Helper()
	cfg := config.Default()
	cfg.OpenRouter.APIKey = "test-key"
	cfg.OpenRouter.APIURL = url
	cfg.OpenRouter.APITimeoutSeconds = 5

	provider, err := ai.GetProviderFromConfig(cfg)
	if err != nil {
		t.Fatalf("GetProviderFromConfig() error: %v", err)
	}
	return NewGenerator(provider, OptionsFromConfig(cfg))
}

func serve(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGenerate_Success(t *testing.T) {
	server := serve(http.StatusOK, `{"choices":[{"message":{"content":"Hello"}}]}`)
	defer server.Close()

	result := newOpenRouterGenerator(t, server.URL).Generate(context.Background(), "Hi there", nil)
	if !result.OK() {
		t.Fatalf("Expected success, got %q", result.Display())
	}
	if result.Text() != "Hello" || result.Display() != "Hello" {
		t.Fatalf("Expected 'Hello', got %q", result.Text())
	}
}

func TestGenerate_EmptyChoices(t *testing.T) {
	server := serve(http.StatusOK, `{"choices":[]}`)
	defer server.Close()

	result := newOpenRouterGenerator(t, server.URL).Generate(context.Background(), "Hi", nil)
	if result.OK() {
		t.Fatal("Expected failure")
	}
	if !strings.Contains(result.Display(), "Unexpected response format") {
		t.Fatalf("Expected format failure, got %q", result.Display())
	}
	if result.Kind() != "format" {
		t.Fatalf("Expected kind 'format', got %q", result.Kind())
	}
}

func TestGenerate_ServerError(t *testing.T) {
	server := serve(http.StatusInternalServerError, `{"error":"boom"}`)
	defer server.Close()

	result := newOpenRouterGenerator(t, server.URL).Generate(context.Background(), "Hi", nil)
	if result.OK() {
		t.Fatal("Expected failure")
	}
	if !strings.Contains(result.Display(), "500") {
		t.Fatalf("Expected status code in display, got %q", result.Display())
	}
	if !strings.HasPrefix(result.Display(), ErrorPrefix) {
		t.Fatalf("Expected %q prefix, got %q", ErrorPrefix, result.Display())
	}
	var protocolErr *ai.ProtocolError
	if !errors.As(result.Err(), &protocolErr) {
		t.Fatalf("Expected ProtocolError, got %T", result.Err())
	}
}

func TestGenerate_ConnectionError(t *testing.T) {
	server := serve(http.StatusOK, `{}`)
	url := server.URL
	server.Close()

	result := newOpenRouterGenerator(t, url).Generate(context.Background(), "Hi", nil)
	var transportErr *ai.TransportError
	if !errors.As(result.Err(), &transportErr) {
		t.Fatalf("Expected TransportError, got %T: %v", result.Err(), result.Err())
	}
	if !strings.Contains(result.Display(), transportErr.TypeName()) {
		t.Fatalf("Expected display to name %s, got %q", transportErr.TypeName(), result.Display())
	}
	if result.Kind() != "transport" {
		t.Fatalf("Expected kind 'transport', got %q", result.Kind())
	}
}

func TestGenerate_Timeout(t *testing.T) {
	provider := &fakeProvider{err: &ai.TransportError{Cause: context.DeadlineExceeded}}
	g := NewGenerator(provider, Options{Model: "m", Timeout: time.Second})

	result := g.Generate(context.Background(), "Hi", nil)
	if result.Kind() != "timeout" {
		t.Fatalf("Expected kind 'timeout', got %q", result.Kind())
	}
	if !provider.hasTime {
		t.Fatal("Expected the provider call to carry a deadline")
	}
}

func TestGenerate_SendsSystemAndPromptOnly(t *testing.T) {
	provider := &fakeProvider{resp: ai.ChatResponse{Content: "ok"}}
	g := NewGenerator(provider, Options{Model: "m", MaxHistory: 10})

	history := []Turn{
		{Role: ai.RoleUser, Content: "earlier"},
		{Role: ai.RoleAssistant, Content: "answer"},
	}
	g.Generate(context.Background(), "  new question ", history)

	if provider.got.Model != "m" {
		t.Fatalf("Expected model 'm', got %q", provider.got.Model)
	}
	if len(provider.got.Messages) != 2 {
		t.Fatalf("Expected 2 messages without history, got %d", len(provider.got.Messages))
	}
	if provider.got.Messages[0].Content != ai.SolarSystemPrompt {
		t.Fatalf("Expected system prompt first, got %q", provider.got.Messages[0].Content)
	}
	if provider.got.Messages[1].Content != "new question" {
		t.Fatalf("Expected trimmed prompt, got %q", provider.got.Messages[1].Content)
	}
}

func TestGenerate_IncludesHistoryWhenEnabled(t *testing.T) {
	provider := &fakeProvider{resp: ai.ChatResponse{Content: "ok"}}
	g := NewGenerator(provider, Options{Model: "m", IncludeHistory: true, MaxHistory: 10})

	history := []Turn{
		{Role: ai.RoleUser, Content: "earlier"},
		{Role: ai.RoleAssistant, Content: "answer"},
		{Role: ai.RoleUser, Content: "broken"},
		{Role: ai.RoleAssistant, Content: "Error: boom", Failed: true},
	}
	g.Generate(context.Background(), "next", history)

	msgs := provider.got.Messages
	if len(msgs) != 4 {
		t.Fatalf("Expected system + 2 history + prompt, got %d", len(msgs))
	}
	if msgs[1].Content != "earlier" || msgs[2].Content != "answer" || msgs[3].Content != "next" {
		t.Fatalf("Unexpected message order: %+v", msgs)
	}
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	provider := &fakeProvider{}
	g := NewGenerator(provider, Options{Model: "m"})

	result := g.Generate(context.Background(), "   ", nil)
	if result.OK() {
		t.Fatal("Expected failure for empty prompt")
	}
	if provider.calls != 0 {
		t.Fatalf("Expected no provider call, got %d", provider.calls)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.LLMProvider = "google"
	cfg.Providers.Google.APITimeoutSeconds = 12
	cfg.Chat.IncludeHistory = true

	opts := OptionsFromConfig(cfg)
	if opts.Model != config.DefaultGoogleModel {
		t.Fatalf("Expected google model, got %q", opts.Model)
	}
	if opts.Timeout != 12*time.Second {
		t.Fatalf("Expected 12s timeout, got %s", opts.Timeout)
	}
	if !opts.IncludeHistory || opts.MaxHistory != 10 {
		t.Fatalf("Expected history options from config, got %+v", opts)
	}
}
