// Package kb holds the knowledge base aggregate. Articles are global: they
// carry no org scoping in the current design.
package kb

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/biztime"
)

const (
	MaxTitleLength = 200
	MaxBodyLength  = 20000
)

type Article struct {
	id        uint
	title     string
	body      string
	tags      []string
	createdAt time.Time
}

func NewArticle(title, body string, tags []string) (*Article, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(body) > MaxBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", MaxBodyLength)
	}

	return &Article{
		title:     title,
		body:      body,
		tags:      CleanTags(tags),
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructArticle(id uint, title, body string, tags []string, createdAt time.Time) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	return &Article{
		id:        id,
		title:     title,
		body:      body,
		tags:      CleanTags(tags),
		createdAt: createdAt,
	}, nil
}

func (a *Article) ID() uint {
	return a.id
}

func (a *Article) Title() string {
	return a.title
}

func (a *Article) Body() string {
	return a.body
}

func (a *Article) Tags() []string {
	tags := make([]string, len(a.tags))
	copy(tags, a.tags)
	return tags
}

func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

// Snippet returns a truncated preview of the body, used by the AI drafter.
func (a *Article) Snippet(maxLen int) string {
	if maxLen <= 0 || len(a.body) <= maxLen {
		return a.body
	}
	return a.body[:maxLen]
}

// CleanTags trims whitespace and drops empty entries.
func CleanTags(tags []string) []string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if x := strings.TrimSpace(t); x != "" {
			clean = append(clean, x)
		}
	}
	return clean
}

// JoinTags serializes tags to the denormalized comma-joined form stored in
// the database.
func JoinTags(tags []string) string {
	return strings.Join(CleanTags(tags), ",")
}

// SplitTags parses the comma-joined stored form back to a tag list.
func SplitTags(csv string) []string {
	if csv == "" {
		return []string{}
	}
	return CleanTags(strings.Split(csv, ","))
}
