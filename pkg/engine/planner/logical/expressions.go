package logical

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/driftlake/driftlake/pkg/engine/internal/scalar"
	"github.com/driftlake/driftlake/pkg/engine/internal/types"
	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

// ExprType represents the type of expression in a logical plan.
type ExprType uint32

const (
	_ ExprType = iota // zero-value is an invalid type

	ExprTypeColumn
	ExprTypeLiteral
	ExprTypeBinary
	ExprTypeScalarFn
	ExprTypeAlias
)

// String returns the string representation of the [ExprType].
func (t ExprType) String() string {
	switch t {
	case ExprTypeColumn:
		return "ColumnExpression"
	case ExprTypeLiteral:
		return "LiteralExpression"
	case ExprTypeBinary:
		return "BinaryExpression"
	case ExprTypeScalarFn:
		return "ScalarFnExpression"
	case ExprTypeAlias:
		return "AliasExpression"
	default:
		panic(fmt.Sprintf("unknown expression type %d", t))
	}
}

// Expr is the common interface for all expressions in a logical plan.
type Expr interface {
	fmt.Stringer
	Type() ExprType
	isExpr()
}

// A ColumnRef references a column of the input relation by name.
type ColumnRef struct {
	Ref types.ColumnRef
}

var _ Expr = (*ColumnRef)(nil)

// NewColumnRef creates a reference to the column with the given name and
// column type.
func NewColumnRef(name string, ty types.ColumnType) *ColumnRef {
	return &ColumnRef{
		Ref: types.ColumnRef{
			Column: name,
			Type:   ty,
		},
	}
}

func (e *ColumnRef) isExpr() {}

// String returns the string representation of the column reference.
func (e *ColumnRef) String() string {
	return e.Ref.String()
}

// Type implements the Expr interface.
func (e *ColumnRef) Type() ExprType {
	return ExprTypeColumn
}

// LiteralType is the set of Go types a [Literal] can hold.
type LiteralType interface {
	bool | int64 | float64 | string
}

// A Literal holds a constant scalar value.
type Literal struct {
	value any
	kind  types.ValueType
}

var _ Expr = (*Literal)(nil)

// NewLiteral creates a literal expression from the given value.
func NewLiteral[T LiteralType](value T) *Literal {
	var kind types.ValueType
	switch any(value).(type) {
	case bool:
		kind = types.ValueTypeBool
	case int64:
		kind = types.ValueTypeInt
	case float64:
		kind = types.ValueTypeFloat
	case string:
		kind = types.ValueTypeStr
	}
	return &Literal{value: value, kind: kind}
}

func (e *Literal) isExpr() {}

// Value returns the literal value.
func (e *Literal) Value() any {
	return e.value
}

// Kind returns the value type of the literal.
func (e *Literal) Kind() types.ValueType {
	return e.kind
}

// String returns the string representation of the literal value. String
// literals are quoted.
func (e *Literal) String() string {
	if s, ok := e.value.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", e.value)
}

// Type implements the Expr interface.
func (e *Literal) Type() ExprType {
	return ExprTypeLiteral
}

// A BinOp applies a binary operation to two expressions.
type BinOp struct {
	Left, Right Expr
	Op          types.BinaryOp
}

var _ Expr = (*BinOp)(nil)

func (e *BinOp) isExpr() {}

// String returns the string representation of the binary operation.
func (e *BinOp) String() string {
	return fmt.Sprintf("%s(%s, %s)", e.Op, e.Left, e.Right)
}

// Type implements the Expr interface.
func (e *BinOp) Type() ExprType {
	return ExprTypeBinary
}

// A ScalarFn invokes a registered scalar function, producing one value per
// row.
type ScalarFn struct {
	// Name of the function in the scalar function registry.
	Name string
	// Args are the argument expressions of the invocation.
	Args []Expr
}

var _ Expr = (*ScalarFn)(nil)

// NewScalarFn creates an invocation of the named scalar function.
func NewScalarFn(name string, args ...Expr) *ScalarFn {
	return &ScalarFn{Name: name, Args: args}
}

func (e *ScalarFn) isExpr() {}

// String returns the string representation of the function invocation.
func (e *ScalarFn) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
}

// Type implements the Expr interface.
func (e *ScalarFn) Type() ExprType {
	return ExprTypeScalarFn
}

// An Alias assigns an output column name to an expression.
type Alias struct {
	// Name is the output column name.
	Name string
	// Expr is the aliased expression.
	Expr Expr
}

var _ Expr = (*Alias)(nil)

// NewAlias creates an alias for the given expression.
func NewAlias(name string, expr Expr) *Alias {
	return &Alias{Name: name, Expr: expr}
}

func (e *Alias) isExpr() {}

// String returns the string representation of the alias.
func (e *Alias) String() string {
	return fmt.Sprintf("%s AS %s", e.Expr, e.Name)
}

// Type implements the Expr interface.
func (e *Alias) Type() ExprType {
	return ExprTypeAlias
}

// exprValueType resolves the value type an expression produces against the
// given input schema.
func exprValueType(e Expr, input schema.Schema) (types.ValueType, error) {
	switch e := e.(type) {
	case *ColumnRef:
		col, ok := input.Column(e.Ref.Column)
		if !ok {
			return types.ValueTypeInvalid, fmt.Errorf("column %q not found in input schema", e.Ref.Column)
		}
		return col.Type, nil
	case *Literal:
		return e.Kind(), nil
	case *Alias:
		return exprValueType(e.Expr, input)
	case *ScalarFn:
		sig, err := scalar.Lookup(e.Name)
		if err != nil {
			return types.ValueTypeInvalid, err
		}
		if len(e.Args) != sig.NumArgs {
			return types.ValueTypeInvalid, fmt.Errorf("scalar function %q takes %d arguments, got %d", e.Name, sig.NumArgs, len(e.Args))
		}
		for _, arg := range e.Args {
			if _, err := exprValueType(arg, input); err != nil {
				return types.ValueTypeInvalid, err
			}
		}
		return sig.ReturnType, nil
	case *BinOp:
		left, err := exprValueType(e.Left, input)
		if err != nil {
			return types.ValueTypeInvalid, err
		}
		if _, err := exprValueType(e.Right, input); err != nil {
			return types.ValueTypeInvalid, err
		}
		switch e.Op {
		case types.BinaryOpAdd, types.BinaryOpSub, types.BinaryOpMul, types.BinaryOpDiv:
			return left, nil
		default:
			return types.ValueTypeBool, nil
		}
	default:
		return types.ValueTypeInvalid, fmt.Errorf("unsupported expression %T", e)
	}
}

// outputColumn determines the schema column a projection expression produces.
// Projection expressions must be named, either by referencing a column or by
// carrying an alias.
func outputColumn(e Expr, input schema.Schema) (schema.ColumnSchema, error) {
	switch e := e.(type) {
	case *ColumnRef:
		col, ok := input.Column(e.Ref.Column)
		if !ok {
			return schema.ColumnSchema{}, fmt.Errorf("column %q not found in input schema", e.Ref.Column)
		}
		return col, nil
	case *Alias:
		ty, err := exprValueType(e.Expr, input)
		if err != nil {
			return schema.ColumnSchema{}, err
		}
		return schema.ColumnSchema{Name: e.Name, Type: ty}, nil
	default:
		return schema.ColumnSchema{}, fmt.Errorf("projection expression %s must be a column reference or alias", e)
	}
}
