package test

import (
	"context"
	"sync"

	"github.com/polkiloo/procurement-console/internal/access"
)

// AuthorizerStub answers capability and route checks for middleware tests.
type AuthorizerStub struct {
	AuthorizeFn func(context.Context, access.Capability) error
	RouteFn     func(context.Context, string) error

	mu     sync.Mutex
	Checks []string
}

// Authorize records capability and delegates to AuthorizeFn.
func (s *AuthorizerStub) Authorize(ctx context.Context, capability access.Capability) error {
	s.record(string(capability))
	if s.AuthorizeFn != nil {
		return s.AuthorizeFn(ctx, capability)
	}
	return nil
}

// AuthorizeRoute records route and delegates to RouteFn.
func (s *AuthorizerStub) AuthorizeRoute(ctx context.Context, route string) error {
	s.record(route)
	if s.RouteFn != nil {
		return s.RouteFn(ctx, route)
	}
	return nil
}

func (s *AuthorizerStub) record(check string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Checks = append(s.Checks, check)
}
