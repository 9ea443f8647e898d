package seal

import (
	"fmt"
	"math"
)

// Input holds the geometric, operating and fluid-property parameters of a
// dry gas seal. All values are SI.
type Input struct {
	DOuter    float64 `json:"d_outer"`    // outer diameter of the rotating ring, m
	NRPM      float64 `json:"n_rpm"`      // rotational speed, rev/min
	Rho       float64 `json:"rho"`        // gas density, kg/m3
	Mu        float64 `json:"mu"`         // dynamic viscosity, Pa*s
	LambdaGas float64 `json:"lambda_gas"` // thermal conductivity, W/(m*K)
	Pr        float64 `json:"pr"`         // Prandtl number
	UAxial    float64 `json:"u_axial"`    // axial flow velocity, m/s
	DeltaGap  float64 `json:"delta_gap"`  // seal gap thickness, m
	DHyd      float64 `json:"d_hyd"`      // hydraulic diameter, m
	B         float64 `json:"b"`          // empirical correction factor
}

// Result holds the derived Reynolds numbers, Nusselt numbers and convective
// heat-transfer coefficients for the static and rotating rings.
type Result struct {
	ReRot float64 `json:"re_rot"` // rotational Reynolds number
	ReAx  float64 `json:"re_ax"`  // axial Reynolds number
	NuS   float64 `json:"nu_s"`   // static-ring Nusselt number
	HS    float64 `json:"h_s"`    // static-ring coefficient, W/(m2*K)
	NuR   float64 `json:"nu_r"`   // rotating-ring Nusselt number
	HR    float64 `json:"h_r"`    // rotating-ring coefficient, W/(m2*K)
}

// InvalidInputError reports an input outside its physical domain.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s = %g", e.Field, e.Value)
}

// Validate checks every field against its domain constraint. Divisor fields
// (mu, delta_gap, d_hyd) must be strictly positive so the correlations never
// divide by zero; n_rpm and u_axial may be zero but not negative.
func (in Input) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"d_outer", in.DOuter},
		{"rho", in.Rho},
		{"mu", in.Mu},
		{"lambda_gas", in.LambdaGas},
		{"pr", in.Pr},
		{"delta_gap", in.DeltaGap},
		{"d_hyd", in.DHyd},
		{"b", in.B},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 1) {
			return &InvalidInputError{Field: p.name, Value: p.v}
		}
	}
	if !(in.NRPM >= 0) || math.IsInf(in.NRPM, 1) {
		return &InvalidInputError{Field: "n_rpm", Value: in.NRPM}
	}
	if !(in.UAxial >= 0) || math.IsInf(in.UAxial, 1) {
		return &InvalidInputError{Field: "u_axial", Value: in.UAxial}
	}
	return nil
}

// Calculate evaluates the empirical Nusselt correlations for both seal rings.
// It is a pure function: identical inputs always produce identical results.
//
// Static ring uses a Dittus-Boelter form on the axial Reynolds number; the
// rotating ring uses a combined rotational/axial correlation.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	omega := 2 * math.Pi * in.NRPM / 60

	reRot := in.Rho * omega * in.DOuter * in.DHyd / (2 * in.Mu)
	reAx := 2 * in.Rho * in.UAxial * in.DeltaGap / in.Mu

	nuS := 0.023 * in.B * math.Pow(reAx, 0.8) * math.Pow(in.Pr, 0.4)
	hS := nuS * in.LambdaGas / (2 * in.DeltaGap)

	nuR := 0.135 * math.Cbrt((0.5*reRot*reRot+reAx*reAx)*in.Pr)
	hR := nuR * in.LambdaGas / in.DHyd

	return Result{
		ReRot: reRot,
		ReAx:  reAx,
		NuS:   nuS,
		HS:    hS,
		NuR:   nuR,
		HR:    hR,
	}, nil
}
