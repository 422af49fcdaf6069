package frac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shabbyrobe/go-frac/checked"
	"golang.org/x/exp/constraints"
)

// String returns "n" if f is zero or has a magnitude of one, otherwise
// "n/d", so 2 is "2/1". NaN is "0/0" and the infinities are "1/0" and "-1/0".
func (f Fraction[T, U]) String() string {
	n := formatInt(f.numer)
	if f.bare() {
		return n
	}
	return n + "/" + strconv.FormatUint(uint64(f.denom), 10)
}

// bare reports whether f prints without its denominator.
func (f Fraction[T, U]) bare() bool {
	return f.IsZero() || f.Abs().IsOne()
}

func formatInt[X constraints.Integer](x X) string {
	if x < 0 {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatUint(uint64(x), 10)
}

// Format implements fmt.Formatter. Floating point verbs format f.Float64(),
// integer verbs format the numerator and denominator separately and all other
// verbs format f.String().
func (f Fraction[T, U]) Format(s fmt.State, c rune) {
	switch c {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(s, fmt.FormatString(s, c), f.Float64())

	case 'b', 'd', 'o', 'O', 'x', 'X':
		format := fmt.FormatString(s, c)
		if f.bare() {
			fmt.Fprintf(s, format, f.numer)
		} else {
			fmt.Fprintf(s, format+"/"+format, f.numer, f.denom)
		}

	default:
		fmt.Fprintf(s, fmt.FormatString(s, c), f.String())
	}
}

// Parse parses "n" or "n/d", the format produced by String. The result is
// reduced to lowest terms.
func Parse[T constraints.Integer, U constraints.Unsigned](s string) (out Fraction[T, U], err error) {
	ns, ds, hasDenom := strings.Cut(s, "/")

	bits := int(checked.Bits[T]())
	var numer T
	if checked.IsSigned[T]() {
		v, err := strconv.ParseInt(ns, 10, bits)
		if err != nil {
			return out, fmt.Errorf("frac: fraction string %q invalid: %w", s, err)
		}
		numer = T(v)
	} else {
		v, err := strconv.ParseUint(ns, 10, bits)
		if err != nil {
			return out, fmt.Errorf("frac: fraction string %q invalid: %w", s, err)
		}
		numer = T(v)
	}

	denom := U(1)
	if hasDenom {
		v, err := strconv.ParseUint(ds, 10, bits)
		if err != nil {
			return out, fmt.Errorf("frac: fraction string %q invalid: %w", s, err)
		}
		denom = U(v)
	}

	return New(numer, denom), nil
}

func (f Fraction[T, U]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fraction[T, U]) UnmarshalText(bts []byte) (err error) {
	v, err := Parse[T, U](string(bts))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Fraction[T, U]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Fraction[T, U]) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("frac: fraction invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := Parse[T, U](string(bts))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
