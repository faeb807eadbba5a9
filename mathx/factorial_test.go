package mathx

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial_BaseCases(t *testing.T) {
	for n, want := range map[int]int64{0: 1, 1: 1, 5: 120, 10: 3628800} {
		got, err := Factorial(n)
		require.NoError(t, err, "factorial(%d)", n)
		assert.Zero(t, got.Cmp(big.NewInt(want)), "factorial(%d)", n)
	}
}

func TestFactorial_LargeInputDoesNotOverflow(t *testing.T) {
	got, err := Factorial(25)
	require.NoError(t, err)
	assert.Equal(t, "15511210043330985984000000", got.String())
}

func TestFactorial_NegativeInput(t *testing.T) {
	_, err := Factorial(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeFactorial)

	_, err = Factorial(-100)
	assert.ErrorIs(t, err, ErrNegativeFactorial)
}
