// sealcalc runs one dry gas seal heat-transfer calculation from the command
// line, for scripting and spot checks without the web service.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

var (
	input  seal.Input
	asJSON bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sealcalc",
		Short: "Convective heat-transfer coefficients for dry gas seal rings",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := seal.Calculate(input)
			if err != nil {
				var inv *seal.InvalidInputError
				if errors.As(err, &inv) {
					return fmt.Errorf("flag --%s: value %g is outside the physical domain", inv.Field, inv.Value)
				}
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printTable(cmd, res)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&input.DOuter, "d_outer", 0, "outer diameter of the rotating ring, m")
	f.Float64Var(&input.NRPM, "n_rpm", 0, "rotational speed, rev/min")
	f.Float64Var(&input.Rho, "rho", 0, "gas density, kg/m3")
	f.Float64Var(&input.Mu, "mu", 0, "dynamic viscosity, Pa*s")
	f.Float64Var(&input.LambdaGas, "lambda_gas", 0, "thermal conductivity, W/(m*K)")
	f.Float64Var(&input.Pr, "pr", 0, "Prandtl number")
	f.Float64Var(&input.UAxial, "u_axial", 0, "axial flow velocity, m/s")
	f.Float64Var(&input.DeltaGap, "delta_gap", 0, "seal gap thickness, m")
	f.Float64Var(&input.DHyd, "d_hyd", 0, "hydraulic diameter, m")
	f.Float64Var(&input.B, "b", 0, "empirical correction factor")
	f.BoolVar(&asJSON, "json", false, "print results as JSON")

	for _, name := range []string{"d_outer", "rho", "mu", "lambda_gas", "pr", "delta_gap", "d_hyd", "b"} {
		cobra.CheckErr(cmd.MarkFlagRequired(name))
	}

	return cmd
}

func printTable(cmd *cobra.Command, res seal.Result) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "re_rot\t%.6g\t-\n", res.ReRot)
	fmt.Fprintf(w, "re_ax\t%.6g\t-\n", res.ReAx)
	fmt.Fprintf(w, "nu_s\t%.6g\t-\n", res.NuS)
	fmt.Fprintf(w, "h_s\t%.6g\tW/(m2*K)\n", res.HS)
	fmt.Fprintf(w, "nu_r\t%.6g\t-\n", res.NuR)
	fmt.Fprintf(w, "h_r\t%.6g\tW/(m2*K)\n", res.HR)
	w.Flush()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
