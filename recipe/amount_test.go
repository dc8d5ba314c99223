package recipe

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		value float64
		unit  string
		raw   string
	}{
		{"2 cups", 2, "cups", "2"},
		{"0.75 l", 0.75, "l", "0.75"},
		{"3/4 tsp", 0.75, "tsp", "3/4"},
		{"1 1/2 tbsp", 1.5, "tbsp", "1 1/2"},
		{"1½ cups", 1.5, "cups", "1½"},
		{"½", 0.5, "", "½"},
		{"4", 4, "", "4"},
		{"2 fl oz", 2, "fl oz", "2"},
	}

	for _, tc := range cases {
		amount, ok := ParseAmount(tc.input)
		if !ok {
			t.Fatalf("ParseAmount(%q) failed", tc.input)
		}
		if math.Abs(amount.Value-tc.value) > 1e-9 {
			t.Fatalf("ParseAmount(%q) value = %v, want %v", tc.input, amount.Value, tc.value)
		}
		if amount.Unit != tc.unit {
			t.Fatalf("ParseAmount(%q) unit = %q, want %q", tc.input, amount.Unit, tc.unit)
		}
		if amount.RawText != tc.raw {
			t.Fatalf("ParseAmount(%q) raw = %q, want %q", tc.input, amount.RawText, tc.raw)
		}
	}
}

func TestParseAmountRejectsNonNumericLead(t *testing.T) {
	for _, input := range []string{"pinch salt", "some flour", "", "   "} {
		if _, ok := ParseAmount(input); ok {
			t.Fatalf("ParseAmount(%q) unexpectedly succeeded", input)
		}
	}
}

func TestAmountScale(t *testing.T) {
	a := Amount{Value: 2, Unit: "cups", RawText: "2"}

	scaled := a.Scale(1.5)
	if scaled.Value != 3 {
		t.Fatalf("scaled value = %v, want 3", scaled.Value)
	}
	if scaled.RawText != "2" {
		t.Fatalf("scaling must not rewrite raw text, got %q", scaled.RawText)
	}
	if a.Value != 2 {
		t.Fatalf("scaling must not mutate the receiver")
	}

	// Composition: scaling twice equals scaling once by the product.
	twice := a.Scale(1.5).Scale(2)
	once := a.Scale(3)
	if math.Abs(twice.Value-once.Value) > 1e-9 {
		t.Fatalf("scale composition mismatch: %v vs %v", twice.Value, once.Value)
	}
}

func TestFormatOriginal(t *testing.T) {
	a := Amount{Value: 1.5, Unit: "cups", RawText: "1 1/2"}

	if got := a.Format(FormatOriginal); got != "1 1/2 cups" {
		t.Fatalf("Format(Original) = %q", got)
	}

	// A scaled amount's raw text is stale, so it falls back to decimal.
	if got := a.Scale(2).Format(FormatOriginal); got != "3 cups" {
		t.Fatalf("scaled Format(Original) = %q", got)
	}
}

func TestFormatDecimal(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{2.0, "2"},
		{1.5, "1.5"},
		{0.125, "0.13"},
		{0.666666, "0.67"},
		{0, "0"},
	}
	for _, tc := range cases {
		a := Amount{Value: tc.value}
		if got := a.Format(FormatDecimal); got != tc.want {
			t.Fatalf("Format(Decimal) of %v = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatFractionGlyphs(t *testing.T) {
	cases := []struct {
		value float64
		glyph string
	}{
		{1.0 / 8.0, "⅛"},
		{1.0 / 4.0, "¼"},
		{1.0 / 3.0, "⅓"},
		{3.0 / 8.0, "⅜"},
		{1.0 / 2.0, "½"},
		{5.0 / 8.0, "⅝"},
		{2.0 / 3.0, "⅔"},
		{3.0 / 4.0, "¾"},
		{7.0 / 8.0, "⅞"},
	}

	for _, tc := range cases {
		// Values within 0.009 of a standard fraction must render as the glyph.
		for _, offset := range []float64{-0.009, 0, 0.009} {
			a := Amount{Value: tc.value + offset}
			if got := a.Format(FormatFraction); got != tc.glyph {
				t.Fatalf("Format(Fraction) of %v = %q, want %q", tc.value+offset, got, tc.glyph)
			}
		}
	}
}

func TestFormatFraction(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{2.25, "cups", "2¼ cups"},
		{0.5, "", "½"},
		{3.0, "eggs", "3 eggs"},
		{2.004, "", "2"},
		{0.41, "", "0.41"}, // no standard fraction nearby
		{0, "g", "0 g"},
	}
	for _, tc := range cases {
		a := Amount{Value: tc.value, Unit: tc.unit}
		if got := a.Format(FormatFraction); got != tc.want {
			t.Fatalf("Format(Fraction) of %v = %q, want %q", tc.value, got, tc.want)
		}
	}
}
