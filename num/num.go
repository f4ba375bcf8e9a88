// Package num defines the numeric capability set shared by the generated
// quantity types, and the helpers used to apply unit factors to it.
//
// A quantity type is parameterized over any Scalar. The arithmetic of the
// quantity (addition, multiplication, division) is delegated to the scalar
// itself, so adding a new numeric backend means adding a type that satisfies
// Scalar; generated code does not change.
package num

import (
	"math"
	"reflect"
)

// Integer is the set of signed integer kinds a quantity can hold.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the set of floating-point kinds a quantity can hold.
type Float interface {
	~float32 | ~float64
}

// Real is the set of real-valued kinds a quantity can hold.
type Real interface {
	Integer | Float
}

// Complex is the set of complex kinds a quantity can hold.
type Complex interface {
	~complex64 | ~complex128
}

// Scalar is the numeric capability required by every quantity type:
// values are copied by value and support +, -, * and /.
type Scalar interface {
	Real | Complex
}

// Affine returns (v + offset) * slope in the kind of v.
//
// It converts a value expressed in some unit to the canonical unit of its
// quantity. Integer kinds are rounded to the nearest integer; complex kinds
// are scaled by the real factor.
func Affine[T Scalar](v T, slope, offset float64) T {
	switch x := any(v).(type) {
	case float64:
		return any((x + offset) * slope).(T)
	case float32:
		return any(float32((float64(x) + offset) * slope)).(T)
	}
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat((rv.Float() + offset) * slope)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(math.Round((float64(rv.Int()) + offset) * slope)))
	case reflect.Complex64, reflect.Complex128:
		rv.SetComplex((rv.Complex() + complex(offset, 0)) * complex(slope, 0))
	}
	return v
}

// InverseAffine returns v / slope - offset in the kind of v. It undoes Affine.
//
// The factor is applied by division rather than by multiplying with a
// precomputed reciprocal, so Affine followed by InverseAffine returns the
// original value within the precision of the kind.
func InverseAffine[T Scalar](v T, slope, offset float64) T {
	switch x := any(v).(type) {
	case float64:
		return any(x/slope - offset).(T)
	case float32:
		return any(float32(float64(x)/slope - offset)).(T)
	}
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(rv.Float()/slope - offset)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(math.Round(float64(rv.Int())/slope - offset)))
	case reflect.Complex64, reflect.Complex128:
		rv.SetComplex(rv.Complex()/complex(slope, 0) - complex(offset, 0))
	}
	return v
}

// FromFloat converts f to the kind of T. Integer kinds are rounded to the
// nearest integer.
func FromFloat[T Scalar](f float64) T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(math.Round(f)))
	case reflect.Complex64, reflect.Complex128:
		rv.SetComplex(complex(f, 0))
	}
	return v
}
