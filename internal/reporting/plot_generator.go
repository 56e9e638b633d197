// Package reporting renders SVG plots of a power curve sweep, generalising
// the teacher's gonum/plot altitude-vs-time renderer to P-vs-V and
// Cp-vs-tip-speed-ratio curves.
package reporting

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/zerodha/logf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/windbem/bemcore/pkg/driver"
)

// Plotter writes power-curve SVGs under assetsDir.
type Plotter struct {
	assetsDir string
	log       *logf.Logger
}

// NewPlotter builds a Plotter that writes into assetsDir, which must
// already exist.
func NewPlotter(assetsDir string, log *logf.Logger) *Plotter {
	return &Plotter{assetsDir: assetsDir, log: log}
}

// GeneratePowerCurvePlot renders aerodynamic and electrical power against
// wind speed.
func (pl *Plotter) GeneratePowerCurvePlot(curve *driver.PowerCurve) error {
	if curve == nil || len(curve.Points) == 0 {
		return fmt.Errorf("cannot generate power curve plot: no points")
	}

	aero := make(plotter.XYs, len(curve.Points))
	elec := make(plotter.XYs, len(curve.Points))
	for i, pt := range curve.Points {
		aero[i].X, aero[i].Y = pt.WindSpeed, pt.PAero/1e6
		elec[i].X, elec[i].Y = pt.WindSpeed, pt.PElec/1e6
	}

	p := plot.New()
	p.Title.Text = "Power Curve"
	p.X.Label.Text = "Wind Speed (m/s)"
	p.Y.Label.Text = "Power (MW)"

	aeroLine, err := plotter.NewLine(aero)
	if err != nil {
		return fmt.Errorf("failed to create aero power line: %w", err)
	}
	aeroLine.Color = color.RGBA{B: 255, A: 255}

	elecLine, err := plotter.NewLine(elec)
	if err != nil {
		return fmt.Errorf("failed to create elec power line: %w", err)
	}
	elecLine.Color = color.RGBA{R: 200, A: 255}

	p.Add(aeroLine, elecLine)
	p.Legend.Add("P_aero", aeroLine)
	p.Legend.Add("P_elec", elecLine)

	plotPath := filepath.Join(pl.assetsDir, "power_curve.svg")
	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotPath); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", plotPath, err)
	}
	if pl.log != nil {
		pl.log.Info("generated power curve plot", "path", plotPath)
	}
	return nil
}

// GenerateCpTSRPlot renders Cp against tip-speed ratio, useful for
// inspecting where the rotor tracks its optimum.
func (pl *Plotter) GenerateCpTSRPlot(curve *driver.PowerCurve, rotorRadius float64) error {
	if curve == nil || len(curve.Points) == 0 {
		return fmt.Errorf("cannot generate Cp-TSR plot: no points")
	}

	pts := make(plotter.XYs, 0, len(curve.Points))
	for _, pt := range curve.Points {
		if pt.WindSpeed == 0 {
			continue
		}
		omega := pt.OmegaRPM * 2 * math.Pi / 60
		tsr := omega * rotorRadius / pt.WindSpeed
		pts = append(pts, plotter.XY{X: tsr, Y: pt.Cp})
	}

	p := plot.New()
	p.Title.Text = "Cp vs Tip-Speed Ratio"
	p.X.Label.Text = "Tip-Speed Ratio"
	p.Y.Label.Text = "Cp"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to create Cp-TSR scatter: %w", err)
	}
	p.Add(scatter)

	plotPath := filepath.Join(pl.assetsDir, "cp_tsr.svg")
	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotPath); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", plotPath, err)
	}
	if pl.log != nil {
		pl.log.Info("generated Cp-TSR plot", "path", plotPath)
	}
	return nil
}

// powerCurvePrinter formats the numeric columns of the printed power-curve
// table; en.US gives the thousands separators the AEP/revenue figures need
// once a sweep has more than a handful of points.
var powerCurvePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPowerCurveRow renders one PowerCurvePoint's cells for the CLI table
// through the locale-aware printer, so any cell value of 1,000 or more gets
// thousands separators; AEP and revenue are not part of the row (see
// FormatSweepSummary).
func FormatPowerCurveRow(pt driver.PowerCurvePoint) []string {
	return []string{
		powerCurvePrinter.Sprintf("%.1f", pt.WindSpeed),
		powerCurvePrinter.Sprintf("%.2f", pt.OmegaRPM),
		powerCurvePrinter.Sprintf("%.2f", pt.PitchRad*180/math.Pi),
		powerCurvePrinter.Sprintf("%.3f", pt.PAero/1e6),
		powerCurvePrinter.Sprintf("%.3f", pt.PElec/1e6),
		powerCurvePrinter.Sprintf("%.3f", pt.Cp),
		powerCurvePrinter.Sprintf("%.3f", pt.Ct),
		powerCurvePrinter.Sprintf("%t", pt.Converged),
	}
}

// FormatSweepSummary renders the trailing AEP/revenue line with thousands
// separators, e.g. "AEP: 12,345.6 kWh  Revenue: 1,234.56".
func FormatSweepSummary(curve *driver.PowerCurve) string {
	return powerCurvePrinter.Sprintf("AEP: %.1f kWh  Revenue: %.2f", curve.AEP, curve.Revenue)
}
