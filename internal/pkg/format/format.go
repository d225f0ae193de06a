// Package format provides the pure display transforms applied to enrollment
// fields: name casing, Philippine mobile number grouping and department
// acronyms. Every function is stateless and idempotent.
package format

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
)

var nonDigits = regexp.MustCompile(`\D`)

// CapitalizeWords lowercases s and then uppercases the first letter of each
// word. Hyphens and apostrophes also start a new word, so "jean-paul"
// becomes "Jean-Paul" and "o'brien" becomes "O'Brien". Empty input yields
// empty output.
func CapitalizeWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		runes := []rune(w)
		startOfWord := true
		for j, r := range runes {
			if startOfWord {
				runes[j] = unicode.ToUpper(r)
			}
			startOfWord = r == '-' || r == '\''
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// FormatPhone normalizes a raw phone number to the canonical display form
// 09XX-XXX-XXXX. Accepted shapes:
//
//	9 digits              -> local trunk prefix "09" prepended
//	11 digits, 09 prefix  -> passed through
//	12 digits, 63 prefix  -> country code dropped, trunk digit prepended
//
// Anything else is returned unchanged. Already-canonical input round-trips
// to itself, so the transform is idempotent.
func FormatPhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "63"):
		digits = "0" + digits[2:]
	case len(digits) == 9:
		digits = "09" + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "09"):
		// already in local form
	default:
		return raw
	}

	return digits[:4] + "-" + digits[4:7] + "-" + digits[7:]
}

// departmentAcronyms maps full college names to their acronyms.
var departmentAcronyms = map[string]string{
	models.DeptEngineering: "COE",
	models.DeptCAFAD:       "CAFAD",
	models.DeptEngTech:     "CET",
	models.DeptInformatics: "CICS",
}

// DepartmentAcronym returns the acronym for a known college department.
// Unknown names pass through unchanged.
func DepartmentAcronym(name string) string {
	if acronym, ok := departmentAcronyms[name]; ok {
		return acronym
	}
	return name
}
