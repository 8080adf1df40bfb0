package policy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/diewo77/go-quotes/internal/models"
	"github.com/diewo77/go-quotes/internal/policy"
)

// mockNonOwnable is a test resource that does NOT implement Ownable.
type mockNonOwnable struct {
	ID uint
}

func TestOwnershipPolicy(t *testing.T) {
	p := policy.NewOwnershipPolicy()
	ctx := context.Background()
	quote := &models.Quote{UserID: 42}

	tests := []struct {
		name     string
		userID   uint
		resource any
		want     bool
	}{
		{"nil resource", 1, nil, true},
		{"owner", 42, quote, true},
		{"non-owner", 99, quote, false},
		{"non-ownable", 1, &mockNonOwnable{ID: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, action := range []policy.Action{policy.ActionView, policy.ActionUpdate, policy.ActionDelete, policy.ActionExport} {
				if got := p.Can(ctx, tt.userID, action, tt.resource); got != tt.want {
					t.Errorf("Can(%s) = %v, want %v", action, got, tt.want)
				}
			}
		})
	}
}

func TestGate_Authorize(t *testing.T) {
	g := policy.NewQuoteGate()
	ctx := context.Background()
	quote := &models.Quote{UserID: 7}

	if err := g.Authorize(ctx, 7, policy.ActionView, policy.ResourceQuote, quote); err != nil {
		t.Errorf("owner: %v", err)
	}
	if err := g.Authorize(ctx, 8, policy.ActionUpdate, policy.ResourceQuote, quote); !errors.Is(err, policy.ErrForbidden) {
		t.Errorf("other user: %v, want ErrForbidden", err)
	}
	if err := g.Authorize(ctx, 0, policy.ActionView, policy.ResourceQuote, quote); !errors.Is(err, policy.ErrUnauthenticated) {
		t.Errorf("anonymous: %v, want ErrUnauthenticated", err)
	}
	if err := g.Authorize(ctx, 7, policy.ActionView, "invoice", quote); !errors.Is(err, policy.ErrNoPolicyDefined) {
		t.Errorf("unknown resource: %v, want ErrNoPolicyDefined", err)
	}
}

func TestGate_PolicyFunc(t *testing.T) {
	g := policy.NewGate()
	g.Register("report", policy.PolicyFunc(func(_ context.Context, _ uint, a policy.Action, _ any) bool {
		return a == policy.ActionList
	}))
	ctx := context.Background()
	if !g.Can(ctx, 1, policy.ActionList, "report", nil) {
		t.Error("list should be allowed")
	}
	if g.Can(ctx, 1, policy.ActionDelete, "report", nil) {
		t.Error("delete should be denied")
	}
}
