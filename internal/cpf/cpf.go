// Package cpf validates Brazilian CPF registration numbers, the national ID
// carried by every account.
package cpf

// Validate reports whether value is a well-formed CPF: exactly 11 digits,
// not a repeated single digit, and both check digits correct.
func Validate(value string) bool {
	if len(value) != 11 {
		return false
	}

	digits := make([]int, 11)
	allEqual := true
	for i := 0; i < 11; i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
		if digits[i] != digits[0] {
			allEqual = false
		}
	}
	// Sequences like 11111111111 satisfy the checksum but are not valid CPFs.
	if allEqual {
		return false
	}

	return digits[9] == checkDigit(digits[:9]) && digits[10] == checkDigit(digits[:10])
}

// checkDigit computes a CPF verification digit over the given prefix.
// Weights run from len(prefix)+1 down to 2; a remainder below 2 yields 0.
func checkDigit(prefix []int) int {
	sum := 0
	weight := len(prefix) + 1
	for _, d := range prefix {
		sum += d * weight
		weight--
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}
