package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goodRow = []string{"0.15", "10300", "1.225", "1.81e-5", "0.026", "0.71", "5", "5e-6", "1e-5", "2"}

func TestParseRow(t *testing.T) {
	in, err := ParseRow(goodRow)
	require.NoError(t, err)
	assert.Equal(t, 0.15, in.DOuter)
	assert.Equal(t, 1.81e-5, in.Mu)
	assert.Equal(t, 2.0, in.B)
}

func TestParseRow_ShortRow(t *testing.T) {
	_, err := ParseRow(goodRow[:9])
	assert.Error(t, err)
}

func TestParseRow_BadNumber(t *testing.T) {
	row := append([]string{}, goodRow...)
	row[3] = "viscous"
	_, err := ParseRow(row)
	assert.Error(t, err)
}

func TestRun_SkipsBadRows(t *testing.T) {
	header := []string{"d_outer", "n_rpm", "rho", "mu", "lambda_gas", "pr", "u_axial", "delta_gap", "d_hyd", "b"}
	invalid := append([]string{}, goodRow...)
	invalid[3] = "0" // mu = 0 fails validation
	rows := [][]string{header, goodRow, invalid, {"truncated"}, goodRow}

	out := Run(rows)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, 2, out.Skipped)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, out.Rows[0].Result, out.Rows[1].Result)
}
