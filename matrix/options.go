// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense storage and numeric
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - Options travel with a matrix. Every matrix derived from a receiver
//     (Clone, Block, CombineWith, RowSplit/ColumnSplit, MinorOf, kernels)
//     inherits the receiver's capacity increment and numeric policy.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacityIncrement is the multiplicative growth factor applied to
	// the storage capacity whenever a structural insert does not fit.
	DefaultCapacityIncrement = 2

	// MinCapacityIncrement is the floor for WithCapacityIncrement. Smaller
	// requests are raised to it so growth always makes progress.
	MinCapacityIncrement = 2

	// DefaultValidateNaNInf toggles strict finite-value validation on Set,
	// Apply, every data-ingesting constructor or insert, and the results of
	// the arithmetic kernels.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent);
// the last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	increment      int  // >= MinCapacityIncrement; DefaultCapacityIncrement
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithCapacityIncrement sets the buffer growth factor.
// Implementation:
//   - Stage 1: floor k at MinCapacityIncrement.
//   - Stage 2: return a setter that writes the factor into Options.
//
// Behavior highlights:
//   - Never panics: a factor below 2 cannot grow a buffer, so it is raised.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCapacityIncrement(k int) Option {
	if k < MinCapacityIncrement {
		k = MinCapacityIncrement
	}

	return func(o *Options) { o.increment = k }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Has no observable effect on integer element types.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation, allowing NaN/±Inf
// to be stored.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns documented defaults.
func defaultOptions() Options {
	return Options{
		increment:      DefaultCapacityIncrement,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options over defaults in order and re-checks
// invariants (a zero-value Option struct could otherwise slip through).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.increment < MinCapacityIncrement {
		o.increment = MinCapacityIncrement
	}

	return o
}

// options snapshots the configuration carried by m, used to propagate
// policy into derived matrices.
func (m *Dense[T]) options() Options {
	return Options{increment: m.store.increment, validateNaNInf: m.validateNaNInf}
}
