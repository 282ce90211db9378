// Package org holds the organization aggregate. An organization is the
// tenant boundary: every ticket belongs to exactly one org, and all ticket
// access is scoped by it.
package org

import (
	"context"
	"fmt"
	"strings"
)

type Org struct {
	id   uint
	name string
}

func NewOrg(name string) (*Org, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("org name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("org name exceeds maximum length of 255 characters")
	}

	return &Org{name: name}, nil
}

// DefaultNameFor builds the default org name used at signup and during the
// legacy-account self-heal.
func DefaultNameFor(emailLocalPart string) string {
	return fmt.Sprintf("%s's org", emailLocalPart)
}

func ReconstructOrg(id uint, name string) (*Org, error) {
	if id == 0 {
		return nil, fmt.Errorf("org ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("org name is required")
	}

	return &Org{id: id, name: name}, nil
}

func (o *Org) ID() uint {
	return o.id
}

func (o *Org) Name() string {
	return o.name
}

func (o *Org) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("org ID already set")
	}
	if id == 0 {
		return fmt.Errorf("org ID cannot be zero")
	}
	o.id = id
	return nil
}

type Repository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *Org) error

	// GetByID retrieves an organization by ID
	GetByID(ctx context.Context, id uint) (*Org, error)

	// GetByName retrieves an organization by name; returns nil, nil when absent
	GetByName(ctx context.Context, name string) (*Org, error)

	// List retrieves all organizations, newest first
	List(ctx context.Context) ([]*Org, error)

	// Delete removes an organization. Owned tickets and their messages are
	// cascaded by the caller within one transaction.
	Delete(ctx context.Context, id uint) error
}
