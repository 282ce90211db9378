package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

const (
	MinSubjectLength = 3
	MaxSubjectLength = 200
	MaxContentLength = 5000
)

// Ticket is a support case owned by exactly one organization. Deleting the
// organization cascades to its tickets; deleting a ticket cascades to its
// messages.
type Ticket struct {
	id        uint
	orgID     uint
	subject   string
	status    vo.TicketStatus
	priority  vo.Priority
	createdAt time.Time
	updatedAt time.Time
	messages  []*Message
}

func NewTicket(orgID uint, subject string, priority vo.Priority) (*Ticket, error) {
	if orgID == 0 {
		return nil, fmt.Errorf("org ID is required")
	}
	if len(subject) < MinSubjectLength {
		return nil, fmt.Errorf("subject must be at least %d characters", MinSubjectLength)
	}
	if len(subject) > MaxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", MaxSubjectLength)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()
	return &Ticket{
		orgID:     orgID,
		subject:   subject,
		status:    vo.StatusOpen,
		priority:  priority,
		createdAt: now,
		updatedAt: now,
		messages:  []*Message{},
	}, nil
}

func ReconstructTicket(
	id uint,
	orgID uint,
	subject string,
	status vo.TicketStatus,
	priority vo.Priority,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if orgID == 0 {
		return nil, fmt.Errorf("org ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:        id,
		orgID:     orgID,
		subject:   subject,
		status:    status,
		priority:  priority,
		createdAt: createdAt,
		updatedAt: updatedAt,
		messages:  []*Message{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) OrgID() uint {
	return t.orgID
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// Messages returns the conversation in chronological (id ascending) order.
func (t *Ticket) Messages() []*Message {
	msgs := make([]*Message, len(t.messages))
	copy(msgs, t.messages)
	return msgs
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AttachMessages sets the loaded conversation after reconstruction.
func (t *Ticket) AttachMessages(msgs []*Message) {
	t.messages = msgs
}

// UpdateSubject changes the subject and bumps updated_at.
func (t *Ticket) UpdateSubject(subject string) error {
	if len(subject) < MinSubjectLength {
		return fmt.Errorf("subject must be at least %d characters", MinSubjectLength)
	}
	if len(subject) > MaxSubjectLength {
		return fmt.Errorf("subject exceeds maximum length of %d characters", MaxSubjectLength)
	}
	t.subject = subject
	t.touch()
	return nil
}

// ChangeStatus moves the ticket to a new status and bumps updated_at.
func (t *Ticket) ChangeStatus(status vo.TicketStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	t.status = status
	t.touch()
	return nil
}

// ChangePriority changes the priority and bumps updated_at.
func (t *Ticket) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	t.priority = priority
	t.touch()
	return nil
}

// RecordReply notes that a message was added, bumping updated_at so lists
// order by most recent activity.
func (t *Ticket) RecordReply() {
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
}
