package service

import "strconv"

// FizzBuzz classifies n: multiples of 15 are "FizzBuzz", of 5 "Buzz",
// of 3 "Fizz", anything else is its decimal numeral.
func FizzBuzz(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%5 == 0:
		return "Buzz"
	case n%3 == 0:
		return "Fizz"
	default:
		return strconv.Itoa(n)
	}
}
