package types

const (
	typeInvalid = "invalid"
)

// ValueType represents the type of a value, which can either be a literal
// value, or a column value.
type ValueType uint32

const (
	ValueTypeInvalid ValueType = iota // zero-value is an invalid type

	ValueTypeNull    // NULL value.
	ValueTypeBool    // Boolean value
	ValueTypeFloat   // 64bit floating point value
	ValueTypeInt     // Signed 64bit integer value
	ValueTypeStr     // String value
	ValueTypeIntList // List of signed 64bit integer values
)

// String returns the string representation of the ValueType.
func (t ValueType) String() string {
	switch t {
	case ValueTypeNull:
		return "null"
	case ValueTypeBool:
		return "bool"
	case ValueTypeFloat:
		return "float"
	case ValueTypeInt:
		return "int"
	case ValueTypeStr:
		return "string"
	case ValueTypeIntList:
		return "[]int"
	default:
		return typeInvalid
	}
}

// ElementType returns the type of the elements of a list-valued type, or
// ValueTypeInvalid if t is not a list type.
func (t ValueType) ElementType() ValueType {
	if t == ValueTypeIntList {
		return ValueTypeInt
	}
	return ValueTypeInvalid
}
