// Package matrix implements a dense, generic, row-major matrix and the
// classical linear algebra built on top of it.
//
// The matrix package provides:
//
//   - Dense[T], a rows×cols matrix over any signed integer or floating type,
//     backed by one contiguous buffer that grows by a configurable factor
//     (WithCapacityIncrement) when rows or columns are inserted.
//   - Structural editing in place: InsertRow/InsertColumn, AddRow/AddColumn,
//     DeleteRow/DeleteColumn, ClearRow/ClearColumn.
//   - Derived matrices as deep copies: Block, CombineWith (eight directions),
//     RowSplit/ColumnSplit and MinorOf.
//   - Arithmetic: Neg, Add, Sub, Scale, Mul, Transpose, Power.
//   - Gauss-Jordan RowReduce, Rank, Invertible and Inverse for float types.
//   - Determinant by cofactor expansion for every element type.
//   - Copy-based interop with gonum (ToGonum, FromGonum).
//
// Indexing conventions:
//
//	At/Set, Block, Do/Apply            0-based
//	ElementAt/SetElement               1-based
//	Insert*/Delete*/Clear*/Split/Minor 1-based positions
//
// Errors are always returned, never panicked; match them with errors.Is
// against the sentinels in errors.go. Pivot and rank decisions compare
// against zero exactly, so results on nearly singular input follow the
// floating-point values as computed.
//
// A Dense exclusively owns its buffer: Clone deep-copies, Take transfers.
// A Dense is not safe for concurrent mutation.
package matrix
