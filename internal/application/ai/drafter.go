package ai

import (
	"fmt"
	"strings"
)

// Tone selects the voice of a drafted reply.
type Tone string

const (
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneShort        Tone = "short"
)

const (
	maxSnippets      = 3
	snippetMaxLen    = 140
	summaryMaxLen    = 220
	summaryTailCount = 2
)

func (t Tone) IsValid() bool {
	switch t {
	case ToneFriendly, ToneProfessional, ToneShort:
		return true
	}
	return false
}

// ParseTone normalizes a tone string; empty defaults to friendly.
func ParseTone(s string) (Tone, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ToneFriendly, nil
	}
	t := Tone(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tone: must be friendly, professional or short")
	}
	return t, nil
}

// DraftContext is everything a drafter may use to compose a reply.
type DraftContext struct {
	Subject      string
	LastMessages []string
	KBSnippets   []string
	Tone         Tone
}

// Drafter produces a suggested support reply from a ticket context.
type Drafter interface {
	DraftReply(dc DraftContext) string
}

// MockDrafter is a deterministic template-based drafter. The same context
// always yields the same draft, which keeps it testable and free of any
// external model dependency.
type MockDrafter struct{}

func NewMockDrafter() *MockDrafter {
	return &MockDrafter{}
}

func (d *MockDrafter) DraftReply(dc DraftContext) string {
	if dc.Tone == ToneShort {
		return "Thanks for reaching out. We're looking into it and will get back to you soon.\n\nRef: " + dc.Subject
	}

	opening := "Hello, thank you for contacting support."
	if dc.Tone == ToneFriendly {
		opening = "Hey! Thanks for reaching out."
	}

	var b strings.Builder
	b.WriteString(opening)
	b.WriteString("\n\nI reviewed your ticket about: ")
	b.WriteString(dc.Subject)
	b.WriteString(".\n")

	if summary := summarize(dc.LastMessages); summary != "" {
		b.WriteString("\nSummary of your latest message(s): ")
		b.WriteString(summary)
		b.WriteString("\n")
	}

	if len(dc.KBSnippets) > 0 {
		b.WriteString("\nBased on our knowledge base, here are the relevant points:\n")
		for i, s := range dc.KBSnippets {
			if i == maxSnippets {
				break
			}
			b.WriteString("- ")
			b.WriteString(truncate(s, snippetMaxLen))
			b.WriteString("\n")
		}
	}

	b.WriteString("\nIf you confirm a couple details, I can help you faster.\n\nBest regards,")
	return b.String()
}

// summarize joins the tail of the conversation into a bounded one-liner.
func summarize(messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	tail := messages
	if len(tail) > summaryTailCount {
		tail = tail[len(tail)-summaryTailCount:]
	}
	return truncate(strings.Join(tail, " "), summaryMaxLen)
}

// truncate caps s at maxLen characters, never splitting a multibyte rune.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
