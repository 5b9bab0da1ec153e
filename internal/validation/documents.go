package validation

import (
	"regexp"
	"strings"
)

// PersonType distinguishes CPF holders (individuals) from CNPJ holders
// (organizations). Detection is by raw digit count: anything beyond the
// 11 CPF digits is treated as an organization document.
type PersonType string

const (
	PersonTypeIndividual   PersonType = "FISICA"
	PersonTypeOrganization PersonType = "JURIDICA"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BrazilStateCodes lists the 27 federative unit codes.
var BrazilStateCodes = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA",
	"MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN",
	"RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

func DetectPersonType(value string) PersonType {
	if len(Digits(value)) > 11 {
		return PersonTypeOrganization
	}
	return PersonTypeIndividual
}

// IsValidEmail is intentionally permissive: single @, no whitespace, dotted
// domain. Not an RFC validator.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidCPF checks the two CPF verifier digits.
func IsValidCPF(value string) bool {
	d := Digits(value)
	if len(d) != 11 || allSameDigit(d) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(d[i]-'0') * (10 - i)
	}
	if checkDigitMod11(sum) != int(d[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(d[i]-'0') * (11 - i)
	}
	return checkDigitMod11(sum) == int(d[10]-'0')
}

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCNPJ checks the two CNPJ verifier digits.
func IsValidCNPJ(value string) bool {
	d := Digits(value)
	if len(d) != 14 || allSameDigit(d) {
		return false
	}

	if cnpjCheckDigit(d, cnpjWeightsFirst) != int(d[12]-'0') {
		return false
	}
	return cnpjCheckDigit(d, cnpjWeightsSecond) == int(d[13]-'0')
}

// IsValidDocument dispatches on exact digit count: 11 is a CPF, 14 a CNPJ,
// anything else is invalid.
func IsValidDocument(value string) bool {
	switch len(Digits(value)) {
	case 11:
		return IsValidCPF(value)
	case 14:
		return IsValidCNPJ(value)
	default:
		return false
	}
}

// IsValidPhone accepts landlines (10 digits with DDD) and mobiles (11).
func IsValidPhone(value string) bool {
	n := len(Digits(value))
	return n == 10 || n == 11
}

func IsValidPostalCode(value string) bool {
	return len(Digits(value)) == 8
}

func IsValidStateCode(value string) bool {
	uf := strings.ToUpper(strings.TrimSpace(value))
	for _, s := range BrazilStateCodes {
		if s == uf {
			return true
		}
	}
	return false
}

// checkDigitMod11 applies the CPF rule: remainder of sum*10 mod 11, with
// 10 and 11 collapsing to 0.
func checkDigitMod11(sum int) int {
	r := (sum * 10) % 11
	if r == 10 || r == 11 {
		return 0
	}
	return r
}

func cnpjCheckDigit(d string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(d[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func allSameDigit(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
