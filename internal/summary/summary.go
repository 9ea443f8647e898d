// Package summary turns a seal calculation into a short free-text
// engineering assessment using an external language model. The calculation
// core never depends on this package; callers treat the text as optional and
// must tolerate the service being unavailable.
package summary

import (
	"context"
	"fmt"
	"strings"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

// Summarizer produces prose for one calculated case.
type Summarizer interface {
	Summarize(ctx context.Context, in seal.Input, res seal.Result) (string, error)
}

// ExternalServiceError marks a failure of the summary backend. Handlers
// degrade to an empty summary instead of failing the calculation.
type ExternalServiceError struct {
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("summary service: %v", e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// Prompt serializes inputs and results as field: value: unit triples. This
// block is the whole contract with the text service.
func Prompt(in seal.Input, res seal.Result) string {
	var b strings.Builder
	b.WriteString("Dry gas seal convective heat transfer case.\n\nInputs:\n")
	triples := []struct {
		field string
		value float64
		unit  string
	}{
		{"d_outer", in.DOuter, "m"},
		{"n_rpm", in.NRPM, "rpm"},
		{"rho", in.Rho, "kg/m3"},
		{"mu", in.Mu, "Pa.s"},
		{"lambda_gas", in.LambdaGas, "W/(m.K)"},
		{"pr", in.Pr, "-"},
		{"u_axial", in.UAxial, "m/s"},
		{"delta_gap", in.DeltaGap, "m"},
		{"d_hyd", in.DHyd, "m"},
		{"b", in.B, "-"},
	}
	for _, t := range triples {
		fmt.Fprintf(&b, "%s: %g: %s\n", t.field, t.value, t.unit)
	}
	b.WriteString("\nResults:\n")
	triples = []struct {
		field string
		value float64
		unit  string
	}{
		{"re_rot", res.ReRot, "-"},
		{"re_ax", res.ReAx, "-"},
		{"nu_s", res.NuS, "-"},
		{"h_s", res.HS, "W/(m2.K)"},
		{"nu_r", res.NuR, "-"},
		{"h_r", res.HR, "W/(m2.K)"},
	}
	for _, t := range triples {
		fmt.Fprintf(&b, "%s: %g: %s\n", t.field, t.value, t.unit)
	}
	return b.String()
}
