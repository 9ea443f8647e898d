package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

func TestRecompute_Result(t *testing.T) {
	r := Recompute(seal.Input{
		DOuter:    0.150,
		NRPM:      10300,
		Rho:       1.225,
		Mu:        1.81e-5,
		LambdaGas: 0.026,
		Pr:        0.71,
		UAxial:    5,
		DeltaGap:  5e-6,
		DHyd:      1e-5,
		B:         2,
	})
	assert.Equal(t, "result", r.Type)
	require.NotNil(t, r.Result)
	assert.Greater(t, r.Result.HS, 0.0)
	assert.Empty(t, r.Field)
}

func TestRecompute_InvalidField(t *testing.T) {
	// A half-edited form: gap cleared to zero.
	r := Recompute(seal.Input{
		DOuter:    0.150,
		NRPM:      10300,
		Rho:       1.225,
		Mu:        1.81e-5,
		LambdaGas: 0.026,
		Pr:        0.71,
		UAxial:    5,
		DeltaGap:  0,
		DHyd:      1e-5,
		B:         2,
	})
	assert.Equal(t, "error", r.Type)
	assert.Equal(t, "delta_gap", r.Field)
	assert.Nil(t, r.Result)
}
