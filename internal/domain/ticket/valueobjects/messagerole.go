package valueobjects

import "fmt"

// MessageRole identifies who authored a ticket message.
type MessageRole string

const (
	RoleUser  MessageRole = "user"
	RoleAgent MessageRole = "agent"
	RoleAI    MessageRole = "ai"
)

var validMessageRoles = map[MessageRole]bool{
	RoleUser:  true,
	RoleAgent: true,
	RoleAI:    true,
}

func (r MessageRole) String() string {
	return string(r)
}

func (r MessageRole) IsValid() bool {
	return validMessageRoles[r]
}

func NewMessageRole(s string) (MessageRole, error) {
	r := MessageRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid message role: %s", s)
	}
	return r, nil
}
