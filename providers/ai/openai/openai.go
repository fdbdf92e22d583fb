package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/bitrecs/recsgo/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	defaultModel            = "gpt-4o-mini"
	chatCompletionsEndpoint = "/chat/completions"

	// Request tuning for deterministic, fast recommendation output: no
	// sampling temperature, a narrow nucleus, and a bounded completion.
	defaultTemperature = 0.0
	defaultTopP        = 0.3
	defaultMaxTokens   = 512

	// minPromptLength rejects prompts too short to describe a query.
	minPromptLength = 10
)

// Provider implements the ai.Provider interface for the OpenAI
// chat-completions API and compatible endpoints.
type Provider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// New creates a new OpenAI provider with default values. The API key is
// read from OPENAI_API_KEY and can be overridden with [Provider.WithAPIKey].
func New() *Provider {
	return &Provider{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		model:   defaultModel,
		baseURL: defaultBaseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider
func (p *Provider) WithAPIKey(apiKey string) *Provider {
	p.apiKey = apiKey
	return p
}

// WithModel sets the model to use for requests
func (p *Provider) WithModel(model string) *Provider {
	p.model = model
	return p
}

// WithBaseURL sets the base URL for the API
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.baseURL = baseURL
	return p
}

// WithHTTPClient sets a custom HTTP client. Callers that need a call
// timeout configure it here or through ctx.
func (p *Provider) WithHTTPClient(client *http.Client) *Provider {
	p.client = client
	return p
}

// Ensure Provider implements ai.Provider at compile time.
var _ ai.Provider = (*Provider)(nil)

// SendSingleMessage implements the ai.Provider interface.
func (p *Provider) SendSingleMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openai: API key is not set")
	}
	if len(request.Messages) == 0 {
		return nil, fmt.Errorf("openai: request has no messages")
	}
	if n := len(request.Messages[len(request.Messages)-1].Content); n < minPromptLength {
		return nil, fmt.Errorf("openai: prompt too short: %d characters (minimum %d)", n, minPromptLength)
	}

	temperature := defaultTemperature
	if request.Temperature != nil {
		temperature = *request.Temperature
	}
	topP := defaultTopP
	if request.TopP != nil {
		topP = *request.TopP
	}
	maxTokens := request.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	body, err := json.Marshal(map[string]interface{}{
		"model":       p.model,
		"messages":    request.Messages,
		"temperature": temperature,
		"top_p":       topP,
		"max_tokens":  maxTokens,
		"stream":      false,
	})
	if err != nil {
		return nil, fmt.Errorf("error marshaling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+chatCompletionsEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("non-2xx status %d: %s", res.StatusCode, string(respBody))
	}

	var apiResponse struct {
		Model   string `json:"model"`
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
			FinishReason string `json:"finish_reason"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &apiResponse); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}
	if len(apiResponse.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := apiResponse.Choices[0]
	return &ai.ChatResponse{
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
		Model:        apiResponse.Model,
	}, nil
}

// GetModelName returns the current model name
func (p *Provider) GetModelName() string {
	return p.model
}
