// Package customer holds the customer aggregate and its de-duplication key.
package customer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxNameLen bounds the normalized full name.
	MaxNameLen = 50
	// MaxIdentificationLen bounds the identification string.
	MaxIdentificationLen = 20
)

// Customer is a bank customer. Name and Identification together identify a
// customer; neither is ever updated.
type Customer struct {
	ID             uint
	Name           string
	Identification string
}

// Identity is the normalized (name, identification) pair used to look up and
// de-duplicate customers.
type Identity struct {
	Name           string
	Identification string
}

// NewIdentity normalizes the raw registration inputs into an Identity.
func NewIdentity(firstName, surname, identification string) Identity {
	return Identity{
		Name:           FullName(firstName, surname),
		Identification: strings.TrimSpace(identification),
	}
}

// FullName joins the trimmed first name and surname and title-cases the result.
func FullName(firstName, surname string) string {
	return NormalizeName(strings.TrimSpace(firstName) + " " + strings.TrimSpace(surname))
}

// NormalizeName title-cases s: a letter that follows a non-letter (or starts
// the string) is upper-cased, every other letter is lower-cased.
//
//	NormalizeName("thomas anderson") == "Thomas Anderson"
//	NormalizeName("o'neil")          == "O'Neil"
//	NormalizeName("abc1def")         == "Abc1Def"
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// Validate reports the fields of id that exceed their storage bounds.
func (id Identity) Validate() []string {
	var fields []string
	if utf8.RuneCountInString(id.Name) > MaxNameLen {
		fields = append(fields, "name")
	}
	if utf8.RuneCountInString(id.Identification) > MaxIdentificationLen {
		fields = append(fields, "identification")
	}
	return fields
}
