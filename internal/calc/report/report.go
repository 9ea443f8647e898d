package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

type Input struct {
	Project string     `json:"project"`
	Author  string     `json:"author"`
	Title   string     `json:"title"`
	Seal    seal.Input `json:"seal"`
	Summary string     `json:"summary"`
}

type line struct {
	field string
	value float64
	unit  string
}

func inputLines(in seal.Input) []line {
	return []line{
		{"Outer diameter d_outer", in.DOuter, "m"},
		{"Rotational speed n", in.NRPM, "rpm"},
		{"Density rho", in.Rho, "kg/m3"},
		{"Dynamic viscosity mu", in.Mu, "Pa.s"},
		{"Thermal conductivity lambda", in.LambdaGas, "W/(m.K)"},
		{"Prandtl number Pr", in.Pr, "-"},
		{"Axial velocity u", in.UAxial, "m/s"},
		{"Gap thickness delta", in.DeltaGap, "m"},
		{"Hydraulic diameter d_hyd", in.DHyd, "m"},
		{"Correction factor B", in.B, "-"},
	}
}

func resultLines(res seal.Result) []line {
	return []line{
		{"Rotational Reynolds number Re_rot", res.ReRot, "-"},
		{"Axial Reynolds number Re_ax", res.ReAx, "-"},
		{"Static-ring Nusselt number Nu_s", res.NuS, "-"},
		{"Static-ring coefficient h_s", res.HS, "W/(m2.K)"},
		{"Rotating-ring Nusselt number Nu_r", res.NuR, "-"},
		{"Rotating-ring coefficient h_r", res.HR, "W/(m2.K)"},
	}
}

// Build computes the seal coefficients and renders a one-page A4 report.
func Build(w io.Writer, in Input) error {
	res, err := seal.Calculate(in.Seal)
	if err != nil {
		return err
	}

	if in.Title == "" {
		in.Title = "Dry Gas Seal Heat Transfer Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Inputs", inputLines(in.Seal))
	section(pdf, "Results", resultLines(res))

	if in.Summary != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Assessment")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, in.Summary, "", "L", false)
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string, lines []line) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		pdf.Cell(90, 5, l.field)
		pdf.Cell(50, 5, fmt.Sprintf("%.6g", l.value))
		pdf.Cell(0, 5, l.unit)
		pdf.Ln(5)
	}
	pdf.Ln(4)
}
