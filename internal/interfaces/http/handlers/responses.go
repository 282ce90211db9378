package handlers

import (
	"time"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/domain/org"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

// Wire representations of the domain aggregates. Domain types keep their
// fields private, so each gets an explicit JSON shape here.

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	OrgID *uint  `json:"org_id"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:    u.ID(),
		Email: u.Email(),
		Role:  string(u.Role()),
		OrgID: u.OrgID(),
	}
}

type OrgResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewOrgResponse(o *org.Org) OrgResponse {
	return OrgResponse{ID: o.ID(), Name: o.Name()}
}

func NewOrgResponses(orgs []*org.Org) []OrgResponse {
	out := make([]OrgResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, NewOrgResponse(o))
	}
	return out
}

type MessageResponse struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessageResponse(m *ticket.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID(),
		TicketID:  m.TicketID(),
		Role:      string(m.Role()),
		Content:   m.Content(),
		CreatedAt: m.CreatedAt(),
	}
}

type TicketResponse struct {
	ID        uint              `json:"id"`
	OrgID     uint              `json:"org_id"`
	Subject   string            `json:"subject"`
	Status    string            `json:"status"`
	Priority  string            `json:"priority"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Messages  []MessageResponse `json:"messages,omitempty"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:        t.ID(),
		OrgID:     t.OrgID(),
		Subject:   t.Subject(),
		Status:    string(t.Status()),
		Priority:  string(t.Priority()),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

// NewTicketWithMessagesResponse includes the full conversation, oldest first.
func NewTicketWithMessagesResponse(t *ticket.Ticket) TicketResponse {
	resp := NewTicketResponse(t)
	resp.Messages = make([]MessageResponse, 0, len(t.Messages()))
	for _, m := range t.Messages() {
		resp.Messages = append(resp.Messages, NewMessageResponse(m))
	}
	return resp
}

func NewTicketResponses(tickets []*ticket.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewTicketResponse(t))
	}
	return out
}

type ArticleResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
	RenderedBody string    `json:"rendered_body,omitempty"`
}

func NewArticleResponse(a *kb.Article) ArticleResponse {
	return ArticleResponse{
		ID:        a.ID(),
		Title:     a.Title(),
		Body:      a.Body(),
		Tags:      a.Tags(),
		CreatedAt: a.CreatedAt(),
	}
}

func NewArticleResponses(articles []*kb.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, NewArticleResponse(a))
	}
	return out
}
