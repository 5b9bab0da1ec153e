package validation

import (
	"strings"
	"unicode"
)

// Input masks for Brazilian registration forms. Each mask is a pure function
// over the raw input string: strip everything that is not a digit, cap the
// length and re-insert the display separators progressively, so the mask can
// be re-applied on every keystroke.

// Digits strips every non-digit rune.
func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func capDigits(value string, max int) string {
	d := Digits(value)
	if len(d) > max {
		return d[:max]
	}
	return d
}

// MaskPhone formats as (DD) DDDD-DDDD while up to 10 digits were typed and
// (DD) DDDDD-DDDD once the 11th mobile digit arrives.
func MaskPhone(value string) string {
	d := capDigits(value, 11)
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// MaskCPF formats as DDD.DDD.DDD-DD.
func MaskCPF(value string) string {
	d := capDigits(value, 11)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// MaskCNPJ formats as DD.DDD.DDD/DDDD-DD.
func MaskCNPJ(value string) string {
	d := capDigits(value, 14)
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 5:
		return d[:2] + "." + d[2:]
	case len(d) <= 8:
		return d[:2] + "." + d[2:5] + "." + d[5:]
	case len(d) <= 12:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:]
	default:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
	}
}

// MaskDocument dispatches to the CNPJ mask once the raw digit count crosses
// the 11-digit CPF boundary. Must be applied per keystroke so the mask
// switches shape as the user keeps typing.
func MaskDocument(value string) string {
	if len(Digits(value)) > 11 {
		return MaskCNPJ(value)
	}
	return MaskCPF(value)
}

// MaskPostalCode formats a CEP as DDDDD-DDD.
func MaskPostalCode(value string) string {
	d := capDigits(value, 8)
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// MaskStateCode keeps at most two letters, uppercased.
func MaskStateCode(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsLetter(r) && r < 128 {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() == 2 {
				break
			}
		}
	}
	return b.String()
}

// MaskCardNumber groups up to 16 digits in blocks of 4.
func MaskCardNumber(value string) string {
	d := capDigits(value, 16)
	var parts []string
	for len(d) > 4 {
		parts = append(parts, d[:4])
		d = d[4:]
	}
	parts = append(parts, d)
	return strings.Join(parts, " ")
}

// MaskCardExpiry formats up to 4 digits as MM/YY.
func MaskCardExpiry(value string) string {
	d := capDigits(value, 4)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + "/" + d[2:]
}

// MaskCardCVV keeps at most 4 digits.
func MaskCardCVV(value string) string {
	return capDigits(value, 4)
}
