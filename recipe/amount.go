package recipe

import (
	"math"
	"strconv"
	"strings"
)

// FormatMode selects how an Amount renders its numeric value.
type FormatMode int

const (
	// FormatOriginal reproduces the text the amount was parsed from. Scaled
	// amounts fall back to FormatDecimal because their raw text no longer
	// matches the value.
	FormatOriginal FormatMode = iota
	// FormatDecimal renders the value with up to two fractional digits.
	FormatDecimal
	// FormatFraction renders the value using Unicode cooking fractions when
	// the remainder matches one, otherwise falls back to FormatDecimal.
	FormatFraction
)

// fractionTolerance is how close a remainder must be to a standard cooking
// fraction for glyph rendering, and how close to zero to drop entirely.
const fractionTolerance = 0.01

// cookingFractions maps the standard cooking fractions to their glyphs,
// ordered ascending by value.
var cookingFractions = []struct {
	value float64
	glyph string
}{
	{1.0 / 8.0, "⅛"}, // ⅛
	{1.0 / 4.0, "¼"}, // ¼
	{1.0 / 3.0, "⅓"}, // ⅓
	{3.0 / 8.0, "⅜"}, // ⅜
	{1.0 / 2.0, "½"}, // ½
	{5.0 / 8.0, "⅝"}, // ⅝
	{2.0 / 3.0, "⅔"}, // ⅔
	{3.0 / 4.0, "¾"}, // ¾
	{7.0 / 8.0, "⅞"}, // ⅞
}

var fractionGlyphs = func() map[rune]float64 {
	out := make(map[rune]float64, len(cookingFractions))
	for _, f := range cookingFractions {
		out[[]rune(f.glyph)[0]] = f.value
	}
	return out
}()

// Amount is a parsed quantity: a normalized decimal value, an optional unit,
// and the raw numeric text it was read from. Instances are immutable; Scale
// returns a new value.
type Amount struct {
	Value   float64
	Unit    string
	RawText string

	scaled bool
}

// Scale returns a copy with the value multiplied. The raw text is carried
// over unchanged but is no longer authoritative, so FormatOriginal renders
// the decimal value instead.
func (a Amount) Scale(multiplier float64) Amount {
	if multiplier == 1 {
		return a
	}
	out := a
	out.Value = a.Value * multiplier
	out.scaled = true
	return out
}

// Format renders the amount in the requested mode, appending the unit after
// a single space when one is present.
func (a Amount) Format(mode FormatMode) string {
	text := a.formatValue(mode)
	if unit := strings.TrimSpace(a.Unit); unit != "" {
		return text + " " + unit
	}
	return text
}

func (a Amount) formatValue(mode FormatMode) string {
	if mode == FormatOriginal {
		if raw := strings.TrimSpace(a.RawText); raw != "" && !a.scaled {
			return raw
		}
		mode = FormatDecimal
	}

	if a.Value == 0 {
		return "0"
	}

	if mode == FormatFraction {
		return fractionText(a.Value)
	}
	return decimalText(a.Value)
}

func decimalText(value float64) string {
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func fractionText(value float64) string {
	integer := math.Trunc(value)
	remainder := math.Abs(value - integer)

	if remainder < fractionTolerance {
		return strconv.FormatFloat(integer, 'f', -1, 64)
	}

	for _, f := range cookingFractions {
		if math.Abs(remainder-f.value) < fractionTolerance {
			if integer != 0 {
				return strconv.FormatFloat(integer, 'f', -1, 64) + f.glyph
			}
			if value < 0 {
				return "-" + f.glyph
			}
			return f.glyph
		}
	}

	return decimalText(value)
}

// ParseAmount reads a quantity from text such as "2 cups", "1 1/2 tbsp",
// "1½ cups" or "0.75 l". The first whitespace-delimited token must be
// numeric; a following fraction token is folded into the value and the rest
// becomes the unit. It returns false when the leading token is not a number,
// so inputs like "pinch salt" stay untouched as ingredient names.
func ParseAmount(text string) (Amount, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Amount{}, false
	}

	value, ok := parseNumberToken(fields[0])
	if !ok {
		return Amount{}, false
	}

	consumed := 1
	if len(fields) > 1 {
		if fraction, ok := parseFractionToken(fields[1]); ok {
			value += fraction
			consumed = 2
		}
	}

	return Amount{
		Value:   value,
		Unit:    strings.Join(fields[consumed:], " "),
		RawText: strings.Join(fields[:consumed], " "),
	}, true
}

// parseNumberToken accepts decimals ("0.75"), a/b fractions ("3/4"), a
// fraction glyph ("½"), or an integer with an attached glyph ("1½").
func parseNumberToken(token string) (float64, bool) {
	if token == "" {
		return 0, false
	}

	runes := []rune(token)
	if glyph, ok := fractionGlyphs[runes[len(runes)-1]]; ok {
		prefix := string(runes[:len(runes)-1])
		if prefix == "" {
			return glyph, true
		}
		whole, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return 0, false
		}
		return whole + glyph, true
	}

	if fraction, ok := parseFractionToken(token); ok {
		return fraction, true
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// parseFractionToken accepts only explicit fraction forms: "a/b" or a glyph.
func parseFractionToken(token string) (float64, bool) {
	runes := []rune(token)
	if len(runes) == 1 {
		if glyph, ok := fractionGlyphs[runes[0]]; ok {
			return glyph, true
		}
	}

	num, den, found := strings.Cut(token, "/")
	if !found {
		return 0, false
	}
	numerator, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	denominator, err := strconv.ParseFloat(den, 64)
	if err != nil || denominator == 0 {
		return 0, false
	}
	return numerator / denominator, true
}
