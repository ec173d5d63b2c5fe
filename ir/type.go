package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	UintType
	FloatType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		IntType:    "Int",
		UintType:   "Uint",
		FloatType:  "Float",
		StringType: "String",
		ArrayType:  "Array",
		ObjectType: "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Int":    IntType,
		"Uint":   UintType,
		"Float":  FloatType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		UintType,
		FloatType,
		StringType,
		ArrayType,
		ObjectType,
	}
}

// IsNumber reports whether t is one of the numeric variants.
func (t Type) IsNumber() bool {
	switch t {
	case IntType, UintType, FloatType:
		return true
	default:
		return false
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}
