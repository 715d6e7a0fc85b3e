package logger

import (
	"time"

	"github.com/logportdev/logport/core"
)

// Field is re-exported from core for the same reason as Level.
type Field = core.Field

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Type: core.StringType, Str: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Type: core.IntType, Int64: int64(value)}
}

// Int64 creates an int64 field
func Int64(key string, value int64) Field {
	return Field{Key: key, Type: core.Int64Type, Int64: value}
}

// Float64 creates a float64 field
func Float64(key string, value float64) Field {
	return Field{Key: key, Type: core.Float64Type, Float64: value}
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	var v int64
	if value {
		v = 1
	}
	return Field{Key: key, Type: core.BoolType, Int64: v}
}

// Time creates a time field
func Time(key string, value time.Time) Field {
	return Field{Key: key, Type: core.TimeType, Any: value}
}

// Duration creates a duration field
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Type: core.DurationType, Int64: int64(value)}
}

// Err creates an error field with the key "error"
func Err(err error) Field {
	return Field{Key: "error", Type: core.ErrorType, Any: err}
}

// Any creates a field holding an arbitrary value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Type: core.AnyType, Any: value}
}
