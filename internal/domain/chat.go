package domain

// Message roles. RoleMapState is a marker message that carries map
// controls through a shared history; it round-trips untouched.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleMapState  = "system_map_state"
)

// ChatMessage is one entry of a conversation history.
type ChatMessage struct {
	Role      string                   `json:"role"`
	Content   string                   `json:"content,omitempty"`
	UserQuery string                   `json:"user_query,omitempty"`
	Data      []map[string]interface{} `json:"data,omitempty"`
	MapID     string                   `json:"map_id,omitempty"`
	MapDest   string                   `json:"map_dest,omitempty"`
}
