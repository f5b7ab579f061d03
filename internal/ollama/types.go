package ollama

// Message roles used in chat payloads.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatPayload is the body of POST /api/chat.
type ChatPayload struct {
	Model    string    `json:"model"`
	Stream   bool      `json:"stream"`
	Messages []Message `json:"messages"`
}

// NewChatPayload builds a non-streaming payload with the system prompt
// followed by the user message.
func NewChatPayload(model, system, user string) ChatPayload {
	return ChatPayload{
		Model:  model,
		Stream: false,
		Messages: []Message{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: user},
		},
	}
}

// chatResponse is the subset of the non-streaming reply we read.
// A missing message decodes to nil and yields an empty reply.
type chatResponse struct {
	Message *Message `json:"message"`
}
