package ticket

import "context"

// ListFilter bounds and orders ticket listings. Results are always scoped to
// one org and ordered by most recent activity.
type ListFilter struct {
	Limit  int
	Offset int
}

type Repository interface {
	// Save persists a new ticket together with its initial message,
	// assigning IDs.
	Save(ctx context.Context, t *Ticket, initial *Message) error

	// Update persists subject/status/priority/updated_at changes.
	Update(ctx context.Context, t *Ticket) error

	// GetByID retrieves a ticket scoped to an org, without messages.
	// A ticket belonging to another org reads as not found.
	GetByID(ctx context.Context, orgID, ticketID uint) (*Ticket, error)

	// GetByIDWithMessages retrieves a ticket scoped to an org with its
	// conversation loaded in chronological order.
	GetByIDWithMessages(ctx context.Context, orgID, ticketID uint) (*Ticket, error)

	// List retrieves an org's tickets ordered by updated_at descending.
	List(ctx context.Context, orgID uint, filter ListFilter) ([]*Ticket, int64, error)

	// AddMessage appends a message to a ticket, assigning its ID, and
	// persists the ticket's bumped updated_at.
	AddMessage(ctx context.Context, t *Ticket, m *Message) error

	// Delete removes a ticket and cascades its messages.
	Delete(ctx context.Context, orgID, ticketID uint) error

	// DeleteByOrgID removes all tickets of an org along with their
	// messages. Used when an organization is deleted.
	DeleteByOrgID(ctx context.Context, orgID uint) error
}
