// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for elementary row operations and options snapshot
//
// Purpose:
//   - Expose the UNEXPORTED elementary row operations and the internal options
//     of a matrix to matrix_test ONLY, without widening the production API.
//
// Provided Surface:
//   - ExportedRow* method values: thin pass-through to rowInterchange,
//     rowScaling and rowAddition on Dense[float64].
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly / OptionsOf_TestOnly:
//     a stable, read-only view of Options.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields.

var (
	// ExportedRowInterchange exposes Dense.rowInterchange.
	ExportedRowInterchange = (*Dense[float64]).rowInterchange
	// ExportedRowScaling exposes Dense.rowScaling.
	ExportedRowScaling = (*Dense[float64]).rowScaling
	// ExportedRowAddition exposes Dense.rowAddition.
	ExportedRowAddition = (*Dense[float64]).rowAddition
	// ExportedStaircaseRank exposes staircaseRank on Dense[float64].
	ExportedStaircaseRank = staircaseRank[float64]
)

// OptionsSnapshot is a read-only copy of Options for tests.
type OptionsSnapshot struct {
	Increment      int
	ValidateNaNInf bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{Increment: o.increment, ValidateNaNInf: o.validateNaNInf}
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// OptionsOf_TestOnly reports the options carried by m.
func OptionsOf_TestOnly[T Number](m *Dense[T]) OptionsSnapshot {
	return snapshotOf(m.options())
}
