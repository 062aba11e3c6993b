// Package advisor forwards free-text sourcing questions to a hosted
// text-generation endpoint and returns the raw reply. This is a narrow
// collaborator with no dependency on the recommendation engine: one
// synchronous request per question, a bounded timeout, and on any failure
// the caller's state is left untouched.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"tariff-optimizer/internal/errors"
	"tariff-optimizer/internal/logging"
)

// DefaultTimeout bounds a single advisory request
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is the hosted text-generation endpoint
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultModel is the model identifier appended to the endpoint path
const DefaultModel = "gemini-pro"

// systemInstruction frames every question with the advisor role context
const systemInstruction = "You are a highly knowledgeable global trade advisor specializing in " +
	"international tariffs, sourcing optimization, and supply chain strategy. " +
	"Provide accurate, strategic, and detailed advice to businesses impacted " +
	"by 2025 US trade policy changes."

// Config configures the advisory client
type Config struct {
	// APIKey is the bearer credential. Never logged, never echoed in errors.
	APIKey string

	// BaseURL overrides the endpoint base URL
	BaseURL string

	// Model overrides the model identifier
	Model string

	// Timeout overrides the per-request timeout
	Timeout time.Duration
}

// Client is the advisory chat connector
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates an advisory client with defaults filled in
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Role identifies the author of a conversation message
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one entry in a conversation
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Conversation is an append-only log of questions and answers, owned by
// the caller and threaded through each request explicitly. Nothing in this
// package retains a reference to it.
type Conversation struct {
	Messages []Message `json:"messages"`
}

// Append records a message at the end of the log
func (c *Conversation) Append(role Role, text string) {
	c.Messages = append(c.Messages, Message{Role: role, Text: text})
}

// Len returns the number of logged messages
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// Wire types for the generateContent contract.

type generateRequest struct {
	Contents []wireContent `json:"contents"`
}

type wireContent struct {
	Role  string     `json:"role"`
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []wirePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Ask sends one question and returns the generated reply. On success the
// question and reply are appended to conv; on any failure conv is untouched
// and the error is always recoverable (TypeAdvisory), never fatal to the
// hosting process. Error messages are generic: no credentials, no raw
// response bodies.
func (c *Client) Ask(ctx context.Context, conv *Conversation, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", errors.Input("question must not be empty")
	}
	if c.apiKey == "" {
		return "", errors.Advisory("advisory service is not configured: missing API key", nil)
	}

	body := generateRequest{
		Contents: []wireContent{{
			Role:  string(RoleUser),
			Parts: []wirePart{{Text: systemInstruction + "\n\n" + question}},
		}},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", errors.Internal("failed to encode advisory request", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Internal("failed to build advisory request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	logging.Named("advisor").Debug("sending advisory question",
		zap.String("model", c.model),
		zap.Int("question_len", len(question)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Advisory("advisory service is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Advisory(
			fmt.Sprintf("advisory service returned status %d", resp.StatusCode), nil)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Advisory("advisory service returned a malformed response", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.Advisory("advisory service returned no answer", nil)
	}

	answer := parsed.Candidates[0].Content.Parts[0].Text
	conv.Append(RoleUser, question)
	conv.Append(RoleModel, answer)
	return answer, nil
}
