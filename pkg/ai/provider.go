package ai

import (
	"context"
	"errors"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single chat message for LLM requests.
type Message struct {
	Role    Role
	Content string
}

// ChatRequest defines the input to an LLM chat completion.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature *float64
	MaxTokens   *int
}

// ChatResponse is a normalized response from an LLM.
type ChatResponse struct {
	Content string
	Model   string
}

// Provider defines the LLM interface used by the app.
//
// Implementations send their HTTP traffic through an *http.Client whose
// transport is a RecordingTransport so Complete can classify failures.
type Provider interface {
	CreateChatCompletion(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

var (
	// ErrInvalidRequest is returned before any network I/O when a request
	// cannot be built.
	ErrInvalidRequest = errors.New("invalid chat request")

	// ErrMissingCredential is returned by provider factories without an API key.
	ErrMissingCredential = errors.New("missing credential")
)
