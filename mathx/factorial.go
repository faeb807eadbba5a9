package mathx

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNegativeFactorial is returned by Factorial for negative input. Match it
// with errors.Is.
var ErrNegativeFactorial = errors.New("factorial of negative number")

// Factorial returns n! as an arbitrary-precision integer. The computation is
// iterative, so large n neither overflows nor grows the call stack.
// Factorial(0) is 1; negative n returns ErrNegativeFactorial.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeFactorial, n)
	}
	result := big.NewInt(1)
	factor := new(big.Int)
	for i := 2; i <= n; i++ {
		result.Mul(result, factor.SetInt64(int64(i)))
	}
	return result, nil
}
