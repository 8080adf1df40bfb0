package policy

import "context"

// Ownable is implemented by resources that have an owner.
type Ownable interface {
	GetUserID() uint
}

// OwnershipPolicy allows a user to act only on resources they own.
type OwnershipPolicy struct{}

// NewOwnershipPolicy creates a new ownership policy.
func NewOwnershipPolicy() *OwnershipPolicy {
	return &OwnershipPolicy{}
}

// Can checks if the user owns the resource.
// A nil resource (list/create) is allowed for any signed-in user.
func (p *OwnershipPolicy) Can(_ context.Context, userID uint, _ Action, resource any) bool {
	if resource == nil {
		return true
	}
	// Resources without an owner are denied.
	ownable, ok := resource.(Ownable)
	if !ok {
		return false
	}
	return ownable.GetUserID() == userID
}
