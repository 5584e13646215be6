package pdf

import (
	"bytes"
	"math"
	"testing"
)

func encodeString(t *testing.T, obj Object) string {
	t.Helper()
	var buf bytes.Buffer
	if err := encodeMaybeNil(&buf, obj); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return buf.String()
}

func TestEncodePrimitives(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Boolean(true), "true"},
		{Boolean(false), "false"},
		{Integer(0), "0"},
		{Integer(-17), "-17"},
		{Real(3.25), "3.25"},
		{Real(1), "1"},
		{Real(0.5), "0.5"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{NewString("Hello"), "(Hello)"},
		{NewString("a (test)"), "(a \\(test\\))"},
		{NewHexString([]byte{0x01, 0xFF}), "<01FF>"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Dict{{"A", Integer(1)}, {"B", Integer(2)}}, "<</A 1 /B 2>>"},
		{Reference{Number: 5, Generation: 0}, "5 0 R"},
	}
	for _, tc := range cases {
		got := encodeString(t, tc.in)
		if got != tc.out {
			t.Errorf("Encode(%#v) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestRealRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		var buf bytes.Buffer
		err := Real(v).Encode(&buf)
		if err == nil {
			t.Errorf("Real(%v).Encode: expected error, got nil", v)
		}
	}
}

func TestNameEscapesAndLength(t *testing.T) {
	var buf bytes.Buffer
	err := Name("").Encode(&buf)
	if err == nil {
		t.Error("empty Name: expected error")
	}

	long := make([]byte, 128)
	for i := range long {
		long[i] = 'a'
	}
	buf.Reset()
	err = Name(long).Encode(&buf)
	if err == nil {
		t.Error("128-byte Name: expected error")
	}
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d1 := Dict{{"Z", Integer(1)}, {"A", Integer(2)}, {"M", Integer(3)}}
	d2 := Dict{{"M", Integer(3)}, {"Z", Integer(1)}, {"A", Integer(2)}}

	s1 := encodeString(t, d1)
	s2 := encodeString(t, d2)
	if s1 == s2 {
		t.Errorf("dict encoding should depend on insertion order, got the same output for different orders: %q", s1)
	}
	if s1 != "<</Z 1 /A 2 /M 3>>" {
		t.Errorf("unexpected dict encoding: %q", s1)
	}
	if s2 != "<</M 3 /Z 1 /A 2>>" {
		t.Errorf("unexpected dict encoding: %q", s2)
	}
}

func TestDictSetOverwritesInPlace(t *testing.T) {
	d := Dict{{"A", Integer(1)}, {"B", Integer(2)}}
	d.Set("A", Integer(9))
	if got := encodeString(t, d); got != "<</A 9 /B 2>>" {
		t.Errorf("Set should overwrite A's value without moving it, got %q", got)
	}
}

func TestStreamLength(t *testing.T) {
	s := &Stream{Dict: Dict{{"Filter", Name("FlateDecode")}}, Data: []byte("abc")}
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	want := "<</Filter /FlateDecode /Length 3>>\nstream\nabc\nendstream"
	if got != want {
		t.Errorf("Stream.Encode() = %q, want %q", got, want)
	}
}
