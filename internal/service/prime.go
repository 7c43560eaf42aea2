package service

import (
	"fmt"
	"math"

	"github.com/dotpro/tutorial-web/internal/domain"
)

// IsPrime reports whether n is prime using trial division by odd divisors
// up to the integer square root of n. Values below 2, negatives included,
// are not prime.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	limit := isqrt(n)
	for d := 3; d <= limit; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)) for n >= 0, corrected for float rounding
// on large inputs.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

// CheckPrime runs IsPrime and bundles the answer with a display message.
func CheckPrime(n int) domain.PrimeVerdict {
	v := domain.PrimeVerdict{Input: n, IsPrime: IsPrime(n)}
	if v.IsPrime {
		v.Message = fmt.Sprintf("%d is a prime number.", n)
	} else {
		v.Message = fmt.Sprintf("%d is not a prime number.", n)
	}
	return v
}

// DescribePrime is the page variant of CheckPrime: zero and negative
// inputs are reported as not judgeable instead of "not prime".
func DescribePrime(n int) domain.PrimeVerdict {
	if n <= 0 {
		return domain.PrimeVerdict{
			Input:   n,
			Message: fmt.Sprintf("%d is not a positive integer and cannot be judged.", n),
		}
	}
	return CheckPrime(n)
}
