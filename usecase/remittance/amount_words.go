package remittance

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type currencyUnits struct {
	MajorSingular string
	MajorPlural   string
	MinorSingular string
	MinorPlural   string
}

var (
	dollarUnits = currencyUnits{"Dollar", "Dollars", "Cent", "Cents"}
	rialUnits   = currencyUnits{"Rial", "Rials", "Fils", "Fils"}
	dinarUnits  = currencyUnits{"Dinar", "Dinars", "Fils", "Fils"}
)

var currencyUnitTable = map[string]currencyUnits{
	"INR": {"Rupee", "Rupees", "Paisa", "Paise"},
	"USD": dollarUnits,
	"CAD": dollarUnits,
	"AUD": dollarUnits,
	"NZD": dollarUnits,
	"SGD": dollarUnits,
	"HKD": dollarUnits,
	"EUR": {"Euro", "Euros", "Cent", "Cents"},
	"GBP": {"Pound", "Pounds", "Pence", "Pence"},
	"AED": {"Dirham", "Dirhams", "Fils", "Fils"},
	"SAR": rialUnits,
	"QAR": rialUnits,
	"OMR": rialUnits,
	"BHD": dinarUnits,
	"KWD": dinarUnits,
}

var plainAmountPattern = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)

var maxMajor = decimal.NewFromInt(math.MaxInt64)

// AmountToWords renders amount in words for currency, e.g. "2.50", "USD" ->
// "Two Dollars And Fifty Cents Only". Empty or unparsable amounts give "".
func AmountToWords(amount, currency string) string {
	major, minor, ok := splitAmount(amount)
	if !ok {
		return ""
	}

	cur := strings.ToUpper(strings.TrimSpace(currency))
	units := currencyUnitTable[cur]
	indian := cur == "INR"

	majorWords := titleWords(spellCardinal(major, indian))

	switch {
	case minor != 0 && units.MinorPlural != "":
		minorWords := titleWords(spellCardinal(minor, indian))
		return fmt.Sprintf("%s %s And %s %s Only",
			majorWords, unitName(major, units.MajorSingular, units.MajorPlural),
			minorWords, unitName(minor, units.MinorSingular, units.MinorPlural))
	case units.MajorPlural != "":
		return fmt.Sprintf("%s %s Only", majorWords, unitName(major, units.MajorSingular, units.MajorPlural))
	case minor == 0:
		return fmt.Sprintf("%s Only", majorWords)
	default:
		return fmt.Sprintf("%s Point %s Only", majorWords, titleWords(spellCardinal(minor, indian)))
	}
}

// splitAmount parses "1,500.5" into major 1500 and minor 50. Only the first
// two fractional digits count; a non-numeric fraction counts as zero.
func splitAmount(amount string) (int64, int64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(amount), ",", "")
	if s == "" {
		return 0, 0, false
	}

	intPart, frac, _ := strings.Cut(s, ".")
	if intPart == "" || intPart == "+" || intPart == "-" {
		intPart += "0"
	}
	if frac == "" || !isDigits(frac) {
		frac = "0"
	}

	normalized := intPart + "." + frac
	if !plainAmountPattern.MatchString(normalized) {
		return 0, 0, false
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, 0, false
	}

	whole := d.Truncate(0)
	if whole.Abs().GreaterThan(maxMajor) {
		return 0, 0, false
	}

	minor := d.Sub(whole).Abs().Shift(2).Truncate(0).IntPart()
	return whole.IntPart(), minor, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func unitName(n int64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func titleWords(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}
