package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-leo/assembly/numeric"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--product", "chocolate", "--lines", "1", "--rounds", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Finished Production: 1 new, 1 in stock", lines[0])
	assert.Equal(t, "Finished Production: 2 new, 3 in stock", lines[2])
	jsonassert.New(t).Assertf(lines[4], `{"name":"chocolate","lines":2,"stock":3,"batches":2}`)
}

func TestRun_UnknownProduct(t *testing.T) {
	_, err := execute(t, "run", "--product", "truck", "--lines", "1", "--rounds", "1")
	assert.ErrorContains(t, err, "unknown kind")
}

func TestEven(t *testing.T) {
	out, err := execute(t, "even", "7")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	_, err = execute(t, "even", "abc")
	assert.ErrorIs(t, err, numeric.ErrNotANumber)
}

func TestDivide(t *testing.T) {
	out, err := execute(t, "divide", "10", "2")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	_, err = execute(t, "divide", "10", "0")
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}
