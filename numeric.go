package equations

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// truth returns the decimal representation of a boolean: exactly 1 or 0.
func truth(b bool) *apd.Decimal {
	if b {
		return apd.New(1, 0)
	}
	return apd.New(0, 0)
}

// toFloat converts a decimal to float64, possibly losing precision.
func toFloat(d *apd.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// fromFloat converts a float64 into a decimal rounded under the context. A
// non-finite value becomes a DomainError naming the operation, since NaN and
// infinities have no decimal representation here.
func fromFloat(nctx *apd.Context, f float64, name string) (*apd.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &DomainError{Func: name, Msg: "result is not a finite number"}
	}
	r := new(apd.Decimal)
	if _, err := r.SetFloat64(f); err != nil {
		return nil, err
	}
	if _, err := nctx.Round(r, r); err != nil {
		return nil, err
	}
	return r, nil
}

// decimalPow raises base to an arbitrary decimal exponent. The integer part
// of the exponent is exponentiated exactly under the context; the fractional
// part goes through float64 math.Pow and the two are multiplied under the
// context, so fractional powers carry limited precision. A negative exponent
// reciprocates the result at context precision with round-half-up.
func decimalPow(nctx *apd.Context, base, exp *apd.Decimal) (*apd.Decimal, error) {
	sign := exp.Sign()
	var abs, integ, frac apd.Decimal
	abs.Abs(exp)
	abs.Modf(&integ, &frac)
	r := apd.New(1, 0)
	if !integ.IsZero() {
		if _, err := nctx.Pow(r, base, &integ); err != nil {
			return nil, &DomainError{Func: "^", Msg: err.Error()}
		}
	}
	if !frac.IsZero() {
		fracPow, err := fromFloat(nctx, math.Pow(toFloat(base), toFloat(&frac)), "^")
		if err != nil {
			return nil, err
		}
		if _, err := nctx.Mul(r, r, fracPow); err != nil {
			return nil, &DomainError{Func: "^", Msg: err.Error()}
		}
	}
	if sign < 0 {
		hctx := *nctx
		hctx.Rounding = apd.RoundHalfUp
		if _, err := hctx.Quo(r, apd.New(1, 0), r); err != nil {
			return nil, &DomainError{Func: "^", Msg: err.Error()}
		}
	}
	return r, nil
}

// decimalSqrt computes the square root of a non-negative decimal by scaling
// it to an integer (shifting the point right by twice the context precision)
// and running an integer Newton iteration, then rescaling. Zero
// short-circuits to zero; negative input is a domain error.
func decimalSqrt(nctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if x.IsZero() {
		return new(apd.Decimal), nil
	}
	if x.Sign() < 0 {
		return nil, &DomainError{Func: "SQRT", Msg: "argument must not be negative"}
	}
	prec := int32(nctx.Precision)
	var shifted apd.Decimal
	shifted.Set(x)
	shifted.Exponent += 2 * prec
	n := new(apd.BigInt).Set(&shifted.Coeff)
	if shifted.Exponent > 0 {
		n.Mul(n, new(apd.BigInt).Exp(apd.NewBigInt(10), apd.NewBigInt(int64(shifted.Exponent)), nil))
	} else if shifted.Exponent < 0 {
		n.Quo(n, new(apd.BigInt).Exp(apd.NewBigInt(10), apd.NewBigInt(int64(-shifted.Exponent)), nil))
	}
	if n.Sign() == 0 {
		// The operand is smaller than the least positive square
		// representable at this precision.
		return new(apd.Decimal), nil
	}
	// Initial estimate from the bit length, at most the true root.
	ix := new(apd.BigInt).Rsh(n, uint((n.BitLen()+1)>>1))
	if ix.Sign() == 0 {
		ix.SetInt64(1)
	}
	// One Newton step lands at or above the true root; from there the
	// sequence decreases strictly, so the first non-decrease terminates the
	// loop with the floor of the root.
	q := new(apd.BigInt)
	ix.Rsh(ix.Add(ix, q.Quo(n, ix)), 1)
	y := new(apd.BigInt)
	for {
		y.Rsh(y.Add(q.Quo(n, ix), ix), 1)
		if y.Cmp(ix) >= 0 {
			break
		}
		ix.Set(y)
	}
	return apd.NewWithBigInt(ix, -prec), nil
}
