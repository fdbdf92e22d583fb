package ai

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is a single chat message.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// ChatRequest carries one completion request. Zero-valued tuning fields
// fall back to the provider's defaults.
type ChatRequest struct {
	Messages    []Message
	Temperature *float64
	TopP        *float64
	MaxTokens   int
}

// ChatResponse is the raw completion result. Content is handed to the
// recovery parser as-is; no structure is assumed here.
type ChatResponse struct {
	Content      string
	FinishReason string
	Model        string
}
