// Package policy decides whether a user may act on a resource.
// A Gate holds one Policy per resource type; services call Authorize before
// reading or mutating owned records.
package policy

import (
	"context"
	"errors"
	"fmt"
)

// Action describes the kind of operation a user wants to perform.
type Action string

const (
	ActionView   Action = "view"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
)

// Resource types registered on the gate.
const ResourceQuote = "quote"

// Sentinel errors returned by Gate.Authorize.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNoPolicyDefined = errors.New("no policy defined for resource")
)

// Policy defines authorization rules for a resource type.
// For list/create, resource may be nil.
type Policy interface {
	Can(ctx context.Context, userID uint, action Action, resource any) bool
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc func(ctx context.Context, userID uint, action Action, resource any) bool

func (f PolicyFunc) Can(ctx context.Context, userID uint, action Action, resource any) bool {
	return f(ctx, userID, action, resource)
}

// Gate is the central authorization checkpoint.
type Gate struct {
	policies map[string]Policy
}

// NewGate creates an empty Gate ready to register policies.
func NewGate() *Gate {
	return &Gate{policies: make(map[string]Policy)}
}

// NewQuoteGate returns the gate used by the application: quotes are owner-only.
func NewQuoteGate() *Gate {
	g := NewGate()
	g.Register(ResourceQuote, NewOwnershipPolicy())
	return g
}

// Register adds a policy for a resource type, replacing any previous one.
func (g *Gate) Register(resourceType string, p Policy) {
	g.policies[resourceType] = p
}

// Authorize returns nil when userID may perform action on resource.
// A zero userID yields ErrUnauthenticated, a denial ErrForbidden.
func (g *Gate) Authorize(ctx context.Context, userID uint, action Action, resourceType string, resource any) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	p, ok := g.policies[resourceType]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoPolicyDefined, resourceType)
	}
	if !p.Can(ctx, userID, action, resource) {
		return fmt.Errorf("%w: %s %s", ErrForbidden, action, resourceType)
	}
	return nil
}

// Can is a convenience wrapper returning bool instead of error.
func (g *Gate) Can(ctx context.Context, userID uint, action Action, resourceType string, resource any) bool {
	return g.Authorize(ctx, userID, action, resourceType, resource) == nil
}
