// Package allocator assigns storage capacity to inventory candidates greedily
// by value density.
//
// Work is split in two phases: validation (pure, returns a typed
// *model.ValidationError) and allocation (pure, cannot fail). The greedy fill
// is an approximation of the bounded knapsack; it is not an exact solver.
package allocator

import (
	"errors"
	"fmt"
	"strings"

	"inventory-optimizer/internal/model"
)

// Policy controls how validation reports violations.
type Policy string

const (
	// PolicyFailFast stops at the first violation, in candidate order.
	PolicyFailFast Policy = "fail_fast"
	// PolicyCollectAll reports every violation joined into one error.
	PolicyCollectAll Policy = "collect_all"
)

// ParsePolicy accepts "fail_fast", "collect_all" or "" (fail_fast).
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyFailFast:
		return PolicyFailFast, nil
	case PolicyCollectAll:
		return PolicyCollectAll, nil
	default:
		return "", fmt.Errorf("unsupported validation policy: %q", s)
	}
}

type Option func(*Allocator)

func WithPolicy(p Policy) Option {
	return func(a *Allocator) {
		if p != "" {
			a.policy = p
		}
	}
}

// Allocator holds no per-call state and is safe for concurrent use.
type Allocator struct {
	policy Policy
}

func New(opts ...Option) *Allocator {
	a := &Allocator{policy: PolicyFailFast}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Allocator) Policy() Policy { return a.policy }

var defaultAllocator = New()

// OptimizeInventory runs the default fail-fast allocator.
func OptimizeInventory(capacity float64, candidates []model.ItemCandidate) (*model.AllocationResult, error) {
	return defaultAllocator.Optimize(capacity, candidates)
}

// Optimize validates the inputs and, if they pass, runs the greedy fill.
// No partial result is returned on a validation failure.
func (a *Allocator) Optimize(capacity float64, candidates []model.ItemCandidate) (*model.AllocationResult, error) {
	if err := a.Validate(capacity, candidates); err != nil {
		return nil, err
	}
	return Allocate(capacity, candidates), nil
}

// OptimizeRecords is Optimize for loosely typed input, such as a decoded JSON
// body or rows read from an item file.
func (a *Allocator) OptimizeRecords(capacity any, records any) (*model.AllocationResult, error) {
	c, candidates, err := a.ParseRecords(capacity, records)
	if err != nil {
		return nil, err
	}
	return Allocate(c, candidates), nil
}

// report applies the policy to the violations found so far.
func (a *Allocator) report(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	if a.policy == PolicyFailFast {
		return errs[0]
	}
	return errors.Join(errs...)
}
