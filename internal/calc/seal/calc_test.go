package seal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Air-on-air reference case used across the tests.
func referenceInput() Input {
	return Input{
		DOuter:    0.150,
		NRPM:      10300,
		Rho:       1.225,
		Mu:        1.81e-5,
		LambdaGas: 0.026,
		Pr:        0.71,
		UAxial:    5.0,
		DeltaGap:  5.0e-6,
		DHyd:      1.0e-5,
		B:         2.0,
	}
}

func TestCalculate_Reference(t *testing.T) {
	res, err := Calculate(referenceInput())
	require.NoError(t, err)

	// Golden values pinned from the correlations evaluated in double
	// precision.
	assert.InEpsilon(t, 54.75006257827241, res.ReRot, 1e-12)
	assert.InEpsilon(t, 3.383977900552487, res.ReAx, 1e-12)
	assert.InEpsilon(t, 0.10636608773752959, res.NuS, 1e-12)
	assert.InEpsilon(t, 276.55182811757686, res.HS, 1e-12)
	assert.InEpsilon(t, 1.3817670194375449, res.NuR, 1e-12)
	assert.InEpsilon(t, 3592.5942505376165, res.HR, 1e-12)
}

func TestCalculate_Deterministic(t *testing.T) {
	in := referenceInput()
	a, err := Calculate(in)
	require.NoError(t, err)
	b, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculate_AllFinite(t *testing.T) {
	cases := map[string]Input{
		"reference": referenceInput(),
		"slow": func() Input {
			in := referenceInput()
			in.NRPM = 1
			in.UAxial = 1e-9
			return in
		}(),
		"fast": func() Input {
			in := referenceInput()
			in.NRPM = 1e6
			in.UAxial = 300
			return in
		}(),
		"thin gap": func() Input {
			in := referenceInput()
			in.DeltaGap = 1e-9
			return in
		}(),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := Calculate(in)
			require.NoError(t, err)
			for _, v := range []float64{res.ReRot, res.ReAx, res.NuS, res.HS, res.NuR, res.HR} {
				assert.False(t, math.IsNaN(v))
				assert.False(t, math.IsInf(v, 0))
			}
		})
	}
}

func TestCalculate_ZeroSpeed(t *testing.T) {
	in := referenceInput()
	in.NRPM = 0
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.Zero(t, res.ReRot)

	in = referenceInput()
	in.UAxial = 0
	res, err = Calculate(in)
	require.NoError(t, err)
	assert.Zero(t, res.ReAx)
	// 0^0.8 = 0, so the static-ring correlation collapses entirely.
	assert.Zero(t, res.NuS)
	assert.Zero(t, res.HS)
	// The rotating ring still sees the rotational term.
	assert.Greater(t, res.NuR, 0.0)
	assert.Greater(t, res.HR, 0.0)
}

func TestCalculate_Monotonic(t *testing.T) {
	in := referenceInput()
	prev, err := Calculate(in)
	require.NoError(t, err)
	for _, rpm := range []float64{11000, 15000, 20000, 50000} {
		in.NRPM = rpm
		res, err := Calculate(in)
		require.NoError(t, err)
		assert.Greater(t, res.ReRot, prev.ReRot, "rpm %v", rpm)
		prev = res
	}

	in = referenceInput()
	prev, err = Calculate(in)
	require.NoError(t, err)
	for _, u := range []float64{6, 10, 25, 100} {
		in.UAxial = u
		res, err := Calculate(in)
		require.NoError(t, err)
		assert.Greater(t, res.ReAx, prev.ReAx, "u %v", u)
		prev = res
	}
}

func TestCalculate_LinearInB(t *testing.T) {
	in := referenceInput()
	base, err := Calculate(in)
	require.NoError(t, err)

	in.B *= 2
	doubled, err := Calculate(in)
	require.NoError(t, err)

	assert.InEpsilon(t, 2*base.NuS, doubled.NuS, 1e-15)
	assert.InEpsilon(t, 2*base.HS, doubled.HS, 1e-15)
	// B only enters the static-ring correlation.
	assert.Equal(t, base.NuR, doubled.NuR)
	assert.Equal(t, base.HR, doubled.HR)
}

func TestCalculate_InvalidInput(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*Input)
	}{
		{"mu", func(in *Input) { in.Mu = 0 }},
		{"mu", func(in *Input) { in.Mu = -1e-5 }},
		{"delta_gap", func(in *Input) { in.DeltaGap = 0 }},
		{"d_hyd", func(in *Input) { in.DHyd = -1 }},
		{"d_outer", func(in *Input) { in.DOuter = 0 }},
		{"rho", func(in *Input) { in.Rho = 0 }},
		{"lambda_gas", func(in *Input) { in.LambdaGas = -0.1 }},
		{"pr", func(in *Input) { in.Pr = 0 }},
		{"b", func(in *Input) { in.B = 0 }},
		{"n_rpm", func(in *Input) { in.NRPM = -500 }},
		{"u_axial", func(in *Input) { in.UAxial = -0.1 }},
		{"rho", func(in *Input) { in.Rho = math.NaN() }},
		{"mu", func(in *Input) { in.Mu = math.Inf(1) }},
	}
	for _, tc := range cases {
		in := referenceInput()
		tc.mutate(&in)
		_, err := Calculate(in)
		require.Error(t, err)
		var inv *InvalidInputError
		require.ErrorAs(t, err, &inv)
		assert.Equal(t, tc.field, inv.Field)
	}
}
