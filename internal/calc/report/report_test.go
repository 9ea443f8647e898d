package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

func validSeal() seal.Input {
	return seal.Input{
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
	}
}

func TestBuild(t *testing.T) {
	var buf bytes.Buffer
	err := Build(&buf, Input{
		Project: "compressor K-201",
		Author:  "test",
		Seal:    validSeal(),
		Summary: "Coefficients within the expected range for air.",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestBuild_InvalidSeal(t *testing.T) {
	in := validSeal()
	in.DeltaGap = 0
	var buf bytes.Buffer
	err := Build(&buf, Input{Seal: in})
	require.Error(t, err)
	var inv *seal.InvalidInputError
	assert.ErrorAs(t, err, &inv)
	assert.Zero(t, buf.Len())
}
