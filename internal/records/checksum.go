// =============================================================================
// NACHA Validator - Routing Number Check Digit
// =============================================================================
//
// ABA routing numbers are nine digits: an eight-digit prefix identifying the
// institution plus a trailing check digit. The check digit is computed by
// weighting the prefix digits 3-7-1 repeating, summing the products, and
// taking the tens-complement of the sum modulo 10.
//
// =============================================================================

package records

// checkWeights are the positional weights applied to the eight prefix digits.
var checkWeights = [8]int{3, 7, 1, 3, 7, 1, 3, 7}

// CheckDigit computes the ABA check digit for an eight-digit routing prefix.
// The input must already be validated as exactly eight ASCII digits; callers
// are responsible for length and numeric checks before invoking.
func CheckDigit(routing string) int {
	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(routing[i]-'0') * checkWeights[i]
	}
	return (10 - sum%10) % 10
}
