package remittance

import "strings"

var smallNumbers = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tensNumbers = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

type numberScale struct {
	value int64
	name  string
}

// Short scale, largest first. int64 tops out below ten quintillion.
var westernScales = []numberScale{
	{1_000_000_000_000_000_000, "quintillion"},
	{1_000_000_000_000_000, "quadrillion"},
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

const (
	crore = 10_000_000
	lakh  = 100_000
)

// spellCardinal spells n as lower case cardinal words separated by single
// spaces. indian selects crore/lakh grouping.
func spellCardinal(n int64, indian bool) string {
	if n == 0 {
		return smallNumbers[0]
	}

	var words []string
	if n < 0 {
		words = append(words, "minus")
		n = -n
	}

	if indian {
		words = append(words, spellIndian(n)...)
	} else {
		words = append(words, spellWestern(n)...)
	}
	return strings.Join(words, " ")
}

func spellWestern(n int64) []string {
	var words []string
	for _, s := range westernScales {
		if n >= s.value {
			words = append(words, spellBelowThousand(n/s.value)...)
			words = append(words, s.name)
			n %= s.value
		}
	}
	if n > 0 {
		words = append(words, spellBelowThousand(n)...)
	}
	return words
}

func spellIndian(n int64) []string {
	var words []string
	if n >= crore {
		words = append(words, spellIndian(n/crore)...)
		words = append(words, "crore")
		n %= crore
	}
	if n >= lakh {
		words = append(words, spellBelowHundred(n/lakh)...)
		words = append(words, "lakh")
		n %= lakh
	}
	if n >= 1_000 {
		words = append(words, spellBelowHundred(n/1_000)...)
		words = append(words, "thousand")
		n %= 1_000
	}
	if n > 0 {
		words = append(words, spellBelowThousand(n)...)
	}
	return words
}

func spellBelowThousand(n int64) []string {
	var words []string
	if n >= 100 {
		words = append(words, smallNumbers[n/100], "hundred")
		n %= 100
	}
	if n > 0 {
		words = append(words, spellBelowHundred(n)...)
	}
	return words
}

func spellBelowHundred(n int64) []string {
	if n < 20 {
		return []string{smallNumbers[n]}
	}
	if n%10 == 0 {
		return []string{tensNumbers[n/10]}
	}
	return []string{tensNumbers[n/10], smallNumbers[n%10]}
}
