// Package reconcode generates the short remarks codes buyers paste into
// the payment provider's remarks field so manual payments can be matched
// to orders. The code is a human-reconciliation aid, not an auth token, so
// math/rand is deliberately sufficient here.
package reconcode

import "math/rand"

const (
	digits  = "0123456789"
	letters = "ABCDEFGHJKLMNPQRSTUVWXYZ" // I and O dropped, too easy to misread
)

// Length of a generated code: 2 digits + 3 letters, shuffled.
const Length = 5

// New returns a fresh 5-character code such as "1RD2J": two digits and
// three letters from the restricted alphabet, in random order.
func New() string {
	code := make([]byte, 0, Length)
	for i := 0; i < 2; i++ {
		code = append(code, digits[rand.Intn(len(digits))])
	}
	for i := 0; i < 3; i++ {
		code = append(code, letters[rand.Intn(len(letters))])
	}
	// Fisher-Yates so the digit/letter positions aren't predictable.
	for i := len(code) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		code[i], code[j] = code[j], code[i]
	}
	return string(code)
}
