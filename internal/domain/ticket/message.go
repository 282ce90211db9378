package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

// Message is one entry in a ticket's conversation, ordered by id ascending.
type Message struct {
	id        uint
	ticketID  uint
	role      vo.MessageRole
	content   string
	createdAt time.Time
}

// NewMessage composes a message. ticketID may be zero for the opening
// message of a ticket that has not been persisted yet; it is bound when the
// ticket is saved.
func NewMessage(ticketID uint, role vo.MessageRole, content string) (*Message, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid message role")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", MaxContentLength)
	}

	return &Message{
		ticketID:  ticketID,
		role:      role,
		content:   content,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(id, ticketID uint, role vo.MessageRole, content string, createdAt time.Time) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid message role")
	}

	return &Message{
		id:        id,
		ticketID:  ticketID,
		role:      role,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) Role() vo.MessageRole {
	return m.role
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// BindTicket attaches an unbound message to its persisted ticket.
func (m *Message) BindTicket(ticketID uint) error {
	if m.ticketID != 0 && m.ticketID != ticketID {
		return fmt.Errorf("message already bound to another ticket")
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	m.ticketID = ticketID
	return nil
}
