package pain001

// zeroPad left-pads a digit string to the given width.
func zeroPad(digits string, width int) string {
	for len(digits) < width {
		digits = "0" + digits
	}
	return digits
}

// mod10Table drives the recursive check digit algorithm used by Swiss postal
// account numbers, ISR participant numbers and ESR/QR references.
var mod10Table = [10]int{0, 9, 4, 6, 8, 2, 7, 1, 3, 5}

// Mod10CheckDigit computes the recursive modulo 10 check digit over a string
// of digits. It returns -1 when the input contains a non-digit.
func Mod10CheckDigit(digits string) int {
	carry := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return -1
		}
		carry = mod10Table[(carry+int(r-'0'))%10]
	}
	return (10 - carry) % 10
}

// ValidMod10 reports whether the last digit of number is the correct recursive
// modulo 10 check digit over the preceding digits.
func ValidMod10(number string) bool {
	if len(number) < 2 {
		return false
	}
	check := Mod10CheckDigit(number[:len(number)-1])
	return check >= 0 && number[len(number)-1] == byte('0'+check)
}

// Mod97 computes the ISO 7064 remainder over a rearranged IBAN or creditor
// reference with letters substituted by their position values. Digit-by-digit
// reduction keeps the intermediate value inside an int.
func Mod97(s string) int {
	remainder := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			value := int(r-'A') + 10
			remainder = (remainder*100 + value) % 97
		default:
			return -1
		}
	}
	return remainder
}
