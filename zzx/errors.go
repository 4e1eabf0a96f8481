package zzx

import (
	"errors"
)

var (
	// ErrDivisionByZero is returned when the divisor is the zero polynomial or the zero integer.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotIntegral is returned when a scaled pseudo-remainder is not exactly divisible
	// by the expected power of the divisor's leading coefficient.
	ErrNotIntegral = errors.New("remainder not defined over the integers")

	// ErrBadArguments is returned when the operands violate the preconditions of an operation,
	// e.g. a non-monic modulus or an operand whose degree is not smaller than the modulus degree.
	ErrBadArguments = errors.New("bad arguments")

	// ErrNonInvertible is returned when a power series inverse is requested for a
	// polynomial whose constant term is not 1 or -1.
	ErrNonInvertible = errors.New("non-invertible constant term")
)
