// Package pure holds the side-effect free helpers of the testkit library.
// Nothing here talks to a collaborator; see testpkg/integration for that.
package pure

import "strconv"

// Absolute returns the magnitude of n.
func Absolute(n float64) float64 {
	if n >= 0 {
		return n
	}
	return -n
}

// FizzBuzz returns "FizzBuzz" when n is divisible by both 3 and 5, "Fizz"
// when only by 3, "Buzz" when only by 5, and n itself in decimal otherwise.
func FizzBuzz(n int) string {
	switch {
	case n%3 == 0 && n%5 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	}
	return strconv.Itoa(n)
}
