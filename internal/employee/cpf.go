package employee

import "strings"

// NormalizeCPF maps formatted CPF values like "390.533.447-05" onto the same
// unique index entry as their bare form. Anything that is not a punctuated
// eleven-digit CPF is an opaque identifier and is only trimmed.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	b.Grow(len(cpf))
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if digits := b.String(); len(digits) == 11 && cpfShaped(cpf) {
		return digits
	}
	return strings.TrimSpace(cpf)
}

func cpfShaped(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == ' ':
		default:
			return false
		}
	}
	return true
}

// ValidCPF runs the standard two-digit checksum. Sequences of a single
// repeated digit pass the checksum but are not valid CPFs. The result is
// advisory only; create stores whatever identifier the caller sent.
func ValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	allSame := true
	for i := 0; i < 11; i++ {
		if cpf[i] < '0' || cpf[i] > '9' {
			return false
		}
		if cpf[i] != cpf[0] {
			allSame = false
		}
	}
	if allSame {
		return false
	}

	return checkDigit(cpf, 9) && checkDigit(cpf, 10)
}

func checkDigit(cpf string, pos int) bool {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(cpf[i]-'0') * (pos + 1 - i)
	}
	digit := (sum * 10) % 11
	if digit == 10 {
		digit = 0
	}
	return digit == int(cpf[pos]-'0')
}
