// Package equations evaluates infix expressions over arbitrary-precision
// decimals.
//
// An expression is compiled once to postfix form and cached, so evaluating
// the same Expression repeatedly is cheap. Operators, functions, and
// variables are per-instance and case-insensitive: "Sin(90)" and "SIN(90)"
// name the same function. Comparison and boolean operators produce exactly 1
// or 0 as decimals, so "sin(y)>0 && max(z, 3)>3" is an expression like any
// other.
//
// All arithmetic happens under a numeric context, a pair of significant-digit
// precision and rounding mode. The default is 7 digits with half-even
// rounding. Fractional exponents and the transcendental functions go through
// float64 and carry only float64 precision.
package equations
