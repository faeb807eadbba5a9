// Package mathx provides integer math utilities: primality testing, prime
// enumeration, and factorials.
package mathx

// IsPrime reports whether n is prime using trial division. After ruling out
// multiples of 2 and 3, only candidates of the form 6k±1 up to √n are
// checked. Numbers ≤ 1 are not prime; 2 and 3 are.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// PrimesUpTo returns all primes in [2, limit] in ascending order. A limit
// below 2 yields an empty (non-nil) slice.
func PrimesUpTo(limit int) []int {
	primes := []int{}
	for n := 2; n <= limit; n++ {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes
}
