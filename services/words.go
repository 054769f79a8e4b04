package services

import (
	"math"
	"strings"
)

// indianScales maps the lakh/crore grouping onto divisors, largest first.
// Crore and Lakh pluralize; Thousand and Hundred never do.
var indianScales = []struct {
	value   int64
	name    string
	plurals bool
}{
	{10000000, "Crore", true},
	{100000, "Lakh", true},
	{1000, "Thousand", false},
	{100, "Hundred", false},
}

// AmountInWords renders an amount as the Indian-English closing line of a
// quotation. Paise are spelled out rather than rounded away, so the words
// always agree with the printed figure.
// Example: 125000.50 → "One Lakh Twenty Five Thousand Rupees and Fifty Paise Only"
func AmountInWords(amount float64) string {
	if amount < 0 {
		return "Minus " + AmountInWords(-amount)
	}

	totalPaise := int64(math.Round(amount * 100))
	rupees := totalPaise / 100
	paise := totalPaise % 100

	var b strings.Builder
	if rupees == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(spellNumber(rupees))
	}
	b.WriteString(" Rupees")

	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(spellBelowHundred(paise))
		b.WriteString(" Paise")
	}

	b.WriteString(" Only")
	return b.String()
}

// spellNumber spells a positive integer on the Indian scales. The crore count
// can itself exceed two digits, so scale counts recurse.
func spellNumber(n int64) string {
	var parts []string
	for _, scale := range indianScales {
		if n < scale.value {
			continue
		}
		count := n / scale.value
		n %= scale.value

		name := scale.name
		if scale.plurals && count > 1 {
			name += "s"
		}
		parts = append(parts, spellNumber(count)+" "+name)
	}

	if n > 0 {
		word := spellBelowHundred(n)
		if len(parts) > 0 {
			word = "and " + word
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

func spellBelowHundred(n int64) string {
	if n < 20 {
		return smallNumbers[n]
	}
	word := tensNumbers[n/10]
	if rem := n % 10; rem != 0 {
		word += " " + smallNumbers[rem]
	}
	return word
}

var smallNumbers = [...]string{
	"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensNumbers = [...]string{
	"", "Ten", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}
