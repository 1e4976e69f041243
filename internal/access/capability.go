package access

import (
	"slices"

	"github.com/polkiloo/procurement-console/internal/domain/model"
)

// Capability names an action gated by role.
type Capability string

const (
	CapabilityCreateOrders Capability = "create_orders"
	CapabilityReviewOrders Capability = "review_orders"
)

var capabilityRoles = map[Capability][]model.Role{
	CapabilityCreateOrders: {model.RolePurchase, model.RoleAdmin},
	CapabilityReviewOrders: {model.RoleApprover, model.RoleAdmin},
}

// Has reports whether role grants capability.
func Has(role model.Role, capability Capability) bool {
	return slices.Contains(capabilityRoles[capability], role)
}

// CanCreateOrders requires the creator organization and a purchasing role.
func CanCreateOrders(user model.User, creatorOrg string) bool {
	return user.Organization == creatorOrg && Has(user.Role, CapabilityCreateOrders)
}

// CanReviewOrders reports whether user may approve or reject orders at all.
func CanReviewOrders(user model.User) bool {
	return Has(user.Role, CapabilityReviewOrders)
}

// CanReview reports whether user may decide on this particular order.
func CanReview(user model.User, order model.Order) bool {
	return CanReviewOrders(user) && order.Status.Reviewable()
}

// Capabilities is what the shell needs to show or hide actions.
type Capabilities struct {
	CreateOrders bool `json:"create_orders"`
	ReviewOrders bool `json:"review_orders"`
}

// Policy binds the capability table to the configured creator organization.
type Policy struct {
	creatorOrg string
}

// NewPolicy constructs Policy.
func NewPolicy(creatorOrg string) *Policy {
	return &Policy{creatorOrg: creatorOrg}
}

// CreatorOrganization returns the organization allowed to raise orders.
func (p *Policy) CreatorOrganization() string {
	return p.creatorOrg
}

// For evaluates every capability for user.
func (p *Policy) For(user model.User) Capabilities {
	return Capabilities{
		CreateOrders: CanCreateOrders(user, p.creatorOrg),
		ReviewOrders: CanReviewOrders(user),
	}
}

// Allowed reports whether user holds capability.
func (p *Policy) Allowed(user model.User, capability Capability) bool {
	switch capability {
	case CapabilityCreateOrders:
		return CanCreateOrders(user, p.creatorOrg)
	case CapabilityReviewOrders:
		return CanReviewOrders(user)
	default:
		return false
	}
}
