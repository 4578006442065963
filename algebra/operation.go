package algebra

import "fmt"

// TableOp is an Operation backed by a row-major value table.
//
// For arity k over universe size n, table has exactly n^k entries and
// table[i] is the value on the argument tuple whose row-major index is i
// (args[0] is the most significant coordinate). An entry equal to
// Undefined marks a hole in a partial operation.
type TableOp struct {
	symbol string
	arity  int
	size   int
	table  []int
}

// NewTableOp validates and constructs a total table-backed operation.
//
// Error conditions:
//   - ErrBadSize       : size < 1.
//   - ErrBadTable      : arity < 0, len(table) != size^arity, or an entry
//     outside {0..size-1} (Undefined entries are rejected here; use
//     NewPartialTableOp for partial operations).
//
// Complexity: O(size^arity) validation pass.
func NewTableOp(symbol string, arity, size int, table []int) (*TableOp, error) {
	return newTableOp(symbol, arity, size, table, false)
}

// NewPartialTableOp is NewTableOp but permits Undefined entries.
// Evaluating the operation on a hole returns ErrUndefined.
func NewPartialTableOp(symbol string, arity, size int, table []int) (*TableOp, error) {
	return newTableOp(symbol, arity, size, table, true)
}

// newTableOp is the shared constructor body.
func newTableOp(symbol string, arity, size int, table []int, partial bool) (*TableOp, error) {
	// 1. Validate universe size and arity.
	if size < 1 {
		return nil, ErrBadSize
	}
	if arity < 0 {
		return nil, fmt.Errorf("%w: negative arity %d", ErrBadTable, arity)
	}

	// 2. Validate table length: exactly size^arity entries.
	want := 1
	for i := 0; i < arity; i++ {
		want *= size
	}
	if len(table) != want {
		return nil, fmt.Errorf("%w: %s has %d entries, want %d", ErrBadTable, symbol, len(table), want)
	}

	// 3. Validate every entry lies in the universe (or is a permitted hole).
	for i, v := range table {
		if v == Undefined && partial {
			continue
		}
		if v < 0 || v >= size {
			return nil, fmt.Errorf("%w: %s entry %d is %d", ErrBadTable, symbol, i, v)
		}
	}

	// 4. Copy the table so later caller mutation cannot corrupt the operation.
	own := make([]int, len(table))
	copy(own, table)

	return &TableOp{symbol: symbol, arity: arity, size: size, table: own}, nil
}

// Symbol returns the operation's display name.
func (op *TableOp) Symbol() string { return op.symbol }

// Arity returns the number of arguments.
func (op *TableOp) Arity() int { return op.arity }

// Size returns the universe size the table was built for.
func (op *TableOp) Size() int { return op.size }

// Evaluate applies the operation to args via row-major table lookup.
//
// Errors: ErrArityMismatch, ErrIndexOutOfBounds, ErrUndefined.
// Complexity: O(arity).
func (op *TableOp) Evaluate(args []int) (int, error) {
	if len(args) != op.arity {
		return 0, fmt.Errorf("%w: %s got %d args, want %d", ErrArityMismatch, op.symbol, len(args), op.arity)
	}

	// Fold the argument tuple into its row-major index.
	idx := 0
	for _, a := range args {
		if a < 0 || a >= op.size {
			return 0, fmt.Errorf("%w: %s argument %d", ErrIndexOutOfBounds, op.symbol, a)
		}
		idx = idx*op.size + a
	}

	v := op.table[idx]
	if v == Undefined {
		return 0, fmt.Errorf("%w: %s%v", ErrUndefined, op.symbol, args)
	}

	return v, nil
}

// ConstantOp builds a 0-ary operation with the given value.
func ConstantOp(symbol string, size, value int) (*TableOp, error) {
	return NewTableOp(symbol, 0, size, []int{value})
}

// UnaryOp builds a 1-ary operation from values[x] = f(x).
func UnaryOp(symbol string, values []int) (*TableOp, error) {
	return NewTableOp(symbol, 1, len(values), values)
}

// BinaryOp builds a 2-ary operation from rows[x][y] = f(x, y).
// All rows must have length len(rows).
func BinaryOp(symbol string, rows [][]int) (*TableOp, error) {
	n := len(rows)
	flat := make([]int, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: %s row length %d, want %d", ErrBadTable, symbol, len(row), n)
		}
		flat = append(flat, row...)
	}

	return NewTableOp(symbol, 2, n, flat)
}
