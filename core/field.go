package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType identifies the kind of value a Field carries
type FieldType uint8

const (
	// StringType for string values
	StringType FieldType = iota
	// IntType for int values
	IntType
	// Int64Type for int64 values
	Int64Type
	// Float64Type for float64 values
	Float64Type
	// BoolType for bool values
	BoolType
	// TimeType for time.Time values
	TimeType
	// DurationType for time.Duration values
	DurationType
	// ErrorType for error values
	ErrorType
	// AnyType for arbitrary values
	AnyType
)

// Field is a typed key-value pair attached to an entry. Scalar values
// live in the Int64/Float64/Str slots so that common fields avoid an
// interface allocation; only AnyType, TimeType and ErrorType use Any.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue renders the field value as a string.
func (f Field) StringValue() string {
	switch f.Type {
	case StringType:
		return f.Str
	case IntType, Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'g', -1, 64)
	case BoolType:
		if f.Int64 == 1 {
			return "true"
		}
		return "false"
	case TimeType:
		if t, ok := f.Any.(time.Time); ok {
			return t.Format(time.RFC3339)
		}
		return ""
	case DurationType:
		return time.Duration(f.Int64).String()
	case ErrorType:
		if err, ok := f.Any.(error); ok {
			return err.Error()
		}
		return ""
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// Value returns the field value as an interface{}, reconstructing it
// from the typed slots. Handlers bridging to structured backends use
// this instead of StringValue to keep numeric types intact.
func (f Field) Value() interface{} {
	switch f.Type {
	case StringType:
		return f.Str
	case IntType:
		return int(f.Int64)
	case Int64Type:
		return f.Int64
	case Float64Type:
		return f.Float64
	case BoolType:
		return f.Int64 == 1
	case TimeType, ErrorType, AnyType:
		return f.Any
	case DurationType:
		return time.Duration(f.Int64)
	default:
		return nil
	}
}
