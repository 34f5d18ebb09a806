package types

import "fmt"

// BinaryOp denotes the kind of binary operation to perform.
type BinaryOp int

// Recognized values of [BinaryOp].
const (
	// BinaryOpInvalid indicates an invalid binary operation.
	BinaryOpInvalid BinaryOp = iota

	BinaryOpEq  // Equality comparison (==).
	BinaryOpNeq // Inequality comparison (!=).
	BinaryOpGt  // Greater than comparison (>).
	BinaryOpGte // Greater than or equal comparison (>=).
	BinaryOpLt  // Less than comparison (<).
	BinaryOpLte // Less than or equal comparison (<=).
	BinaryOpAnd // Logical AND operation (&&).
	BinaryOpOr  // Logical OR operation (||).

	BinaryOpAdd // Addition operation (+).
	BinaryOpSub // Subtraction operation (-).
	BinaryOpMul // Multiplication operation (*).
	BinaryOpDiv // Division operation (/).
)

var binaryOpStrings = map[BinaryOp]string{
	BinaryOpInvalid: typeInvalid,

	BinaryOpEq:  "EQ",
	BinaryOpNeq: "NEQ",
	BinaryOpGt:  "GT",
	BinaryOpGte: "GTE",
	BinaryOpLt:  "LT",
	BinaryOpLte: "LTE",
	BinaryOpAnd: "AND",
	BinaryOpOr:  "OR",

	BinaryOpAdd: "ADD",
	BinaryOpSub: "SUB",
	BinaryOpMul: "MUL",
	BinaryOpDiv: "DIV",
}

// String returns a human-readable representation of the binary operation.
func (op BinaryOp) String() string {
	if s, ok := binaryOpStrings[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", op)
}
