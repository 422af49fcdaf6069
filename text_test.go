package frac

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"golang.org/x/exp/constraints"
)

func TestString(t *testing.T) {
	for idx, tc := range []struct {
		in  fmt.Stringer
		out string
	}{
		{New[int8, uint8](3, 4), "3/4"},
		{New[int8, uint8](-3, 4), "-3/4"},
		{New[int8, uint8](4, 2), "2/1"},
		{New[int8, uint8](-10, 2), "-5/1"},
		{New[int8, uint8](3, 3), "1"},
		{New[int8, uint8](-1, 1), "-1"},
		{New[int8, uint8](0, 5), "0"},
		{New[int8, uint8](-128, 255), "-128/255"},
		{NaN[int8, uint8](), "0/0"},
		{Infinity[int8, uint8](), "1/0"},
		{Infinity[int8, uint8]().Neg(), "-1/0"},
		{From[uint64, uint64](math.MaxUint64), "18446744073709551615/1"},
		{From[int64, uint64](math.MinInt64), "-9223372036854775808/1"},
		{New[int64, uint64](math.MinInt64, math.MaxUint64), "-9223372036854775808/18446744073709551615"},
		{New[uint, uint](1, 3), "1/3"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.String())
		})
	}
}

func TestParse(t *testing.T) {
	n := New[int8, uint8]

	for idx, tc := range []struct {
		in  string
		out Int8
	}{
		{"3/4", n(3, 4)},
		{"-3/4", n(-3, 4)},
		{"6/8", n(3, 4)},
		{"5", n(5, 1)},
		{"5/1", n(5, 1)},
		{"-1", n(-1, 1)},
		{"-128/255", n(-128, 255)},
		{"127", n(127, 1)},
		{"+2/3", n(2, 3)},
		{"1/0", Infinity[int8, uint8]()},
		{"-5/0", Infinity[int8, uint8]().Neg()},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			f, err := Parse[int8, uint8](tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.out, f)
		})
	}

	tt := assert.WrapTB(t)
	f, err := Parse[int8, uint8]("0/0")
	tt.MustOK(err)
	mustNaN(tt, f)
}

func TestParseInvalid(t *testing.T) {
	for idx, tc := range []struct {
		in      string
		convert func(s string) error
	}{
		{"", parseErr[int8, uint8]},
		{"1/", parseErr[int8, uint8]},
		{"/2", parseErr[int8, uint8]},
		{"a/b", parseErr[int8, uint8]},
		{"1/2/3", parseErr[int8, uint8]},
		{"1.5", parseErr[int8, uint8]},
		{"128", parseErr[int8, uint8]},
		{"-129", parseErr[int8, uint8]},
		{"1/256", parseErr[int8, uint8]},
		{"1/-2", parseErr[int8, uint8]},
		{"-1", parseErr[uint8, uint8]},
		{"18446744073709551616", parseErr[uint64, uint64]},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.convert(tc.in) != nil)
		})
	}
}

func parseErr[T constraints.Integer, U constraints.Unsigned](s string) error {
	_, err := Parse[T, U](s)
	return err
}

func TestFormat(t *testing.T) {
	for idx, tc := range []struct {
		format string
		in     interface{}
		out    string
	}{
		{"%v", New[int8, uint8](3, 4), "3/4"},
		{"%s", New[int8, uint8](-3, 4), "-3/4"},
		{"%d", New[int8, uint8](-3, 4), "-3/4"},
		{"%d", New[int8, uint8](7, 1), "7/1"},
		{"%d", New[int8, uint8](-1, 1), "-1"},
		{"%x", New[uint8, uint8](10, 11), "a/b"},
		{"%X", From[uint8, uint8](255), "FF/1"},
		{"%b", New[uint8, uint8](5, 2), "101/10"},
		{"%.2f", New[int16, uint16](1, 3), "0.33"},
		{"%g", New[int16, uint16](1, 4), "0.25"},
		{"%f", NaN[int16, uint16](), "NaN"},
		{"%q", New[int8, uint8](3, 4), `"3/4"`},
		{"%6s", New[int8, uint8](3, 4), "   3/4"},
		{"%-6v|", New[int8, uint8](3, 4), "3/4   |"},
		{"%v", []Int8{New[int8, uint8](1, 2), New[int8, uint8](3, 1)}, "[1/2 3/1]"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.format, tc.in))
		})
	}
}

func TestMarshalText(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, in := range []Int32{
		New[int32, uint32](-3, 4),
		From[int32, uint32](math.MinInt32),
		MinPositive[int32, uint32](),
		Infinity[int32, uint32](),
		Zero[int32, uint32](),
	} {
		bts, err := in.MarshalText()
		tt.MustOK(err)

		var out Int32
		tt.MustOK(out.UnmarshalText(bts))
		tt.MustEqual(in, out)
	}

	var out Int32
	tt.MustAssert(out.UnmarshalText([]byte("nope")) != nil)
}

func TestMarshalJSON(t *testing.T) {
	type doc struct {
		F Int64
		G Uint8
	}

	for idx, tc := range []struct {
		in  doc
		out string
	}{
		{doc{New[int64, uint64](-3, 4), New[uint8, uint8](255, 2)}, `{"F":"-3/4","G":"255/2"}`},
		{doc{From[int64, uint64](math.MaxInt64), From[uint8, uint8](0)}, `{"F":"9223372036854775807/1","G":"0"}`},
		{doc{Infinity[int64, uint64]().Neg(), Infinity[uint8, uint8]()}, `{"F":"-1/0","G":"1/0"}`},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			bts, err := json.Marshal(tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.out, string(bts))

			var result doc
			tt.MustOK(json.Unmarshal(bts, &result))
			tt.MustEqual(tc.in, result)
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	var f Int16
	tt.MustOK(json.Unmarshal([]byte(`"6/8"`), &f))
	tt.MustEqual(New[int16, uint16](3, 4), f)

	tt.MustOK(json.Unmarshal([]byte(`-12`), &f))
	tt.MustEqual(From[int16, uint16](-12), f)

	tt.MustAssert(f.UnmarshalJSON([]byte(`"6/8`)) != nil)
	tt.MustAssert(f.UnmarshalJSON([]byte(`"`)) != nil)
	tt.MustAssert(json.Unmarshal([]byte(`"40000"`), &f) != nil)
	tt.MustAssert(json.Unmarshal([]byte(`1.5`), &f) != nil)
}
