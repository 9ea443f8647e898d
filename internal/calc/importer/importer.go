package importer

import (
	"fmt"
	"strconv"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

// Column order expected in the sheet, one case per row after the header:
// d_outer, n_rpm, rho, mu, lambda_gas, pr, u_axial, delta_gap, d_hyd, b.
const columns = 10

type Row struct {
	Input  seal.Input  `json:"input"`
	Result seal.Result `json:"result"`
}

type ImportResult struct {
	Count   int   `json:"count"`
	Skipped int   `json:"skipped"`
	Rows    []Row `json:"rows"`
}

// ParseRow converts one spreadsheet row into seal inputs. Blank trailing
// cells are not tolerated: every column must carry a number.
func ParseRow(row []string) (seal.Input, error) {
	if len(row) < columns {
		return seal.Input{}, fmt.Errorf("expected %d columns, got %d", columns, len(row))
	}
	vals := make([]float64, columns)
	for i := 0; i < columns; i++ {
		v, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			return seal.Input{}, fmt.Errorf("column %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return seal.Input{
		DOuter:    vals[0],
		NRPM:      vals[1],
		Rho:       vals[2],
		Mu:        vals[3],
		LambdaGas: vals[4],
		Pr:        vals[5],
		UAxial:    vals[6],
		DeltaGap:  vals[7],
		DHyd:      vals[8],
		B:         vals[9],
	}, nil
}

// Run calculates every parseable, valid row and counts the rest as skipped.
func Run(rows [][]string) ImportResult {
	out := ImportResult{}
	for i := 1; i < len(rows); i++ { // rows[0] is the header
		input, err := ParseRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := seal.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Rows = append(out.Rows, Row{Input: input, Result: res})
	}
	out.Count = len(out.Rows)
	return out
}
