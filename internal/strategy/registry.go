package strategy

import "AuctionBidder/internal/model"

// Registry maps policy names to their implementations.
type Registry map[model.PolicyName]Policy

// NewRegistry returns a registry holding the five built-in policies.
func NewRegistry(t Tuning) Registry {
	r := Registry{}
	r.Register(ZeroPolicy{})
	r.Register(MinimumPolicy{})
	r.Register(MaximumPolicy{})
	r.Register(DefaultPolicy{})
	r.Register(NewAggressivePolicy(t))
	return r
}

// Register adds or replaces a policy under its own name.
func (r Registry) Register(p Policy) {
	r[p.Name()] = p
}

// Get returns the policy registered under name.
func (r Registry) Get(name model.PolicyName) (Policy, bool) {
	p, ok := r[name]
	return p, ok
}
