// Command bemcli runs a wind-speed sweep over a turbine geometry and prints
// the resulting power curve, mirroring the teacher's CLI wiring of viper
// config, zerodha/logf logging, and tablewriter tabular output.
package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/windbem/bemcore/internal/config"
	"github.com/windbem/bemcore/internal/fixtures"
	"github.com/windbem/bemcore/internal/logger"
	"github.com/windbem/bemcore/internal/reporting"
	"github.com/windbem/bemcore/pkg/driver"
	"github.com/windbem/bemcore/pkg/simconfig"
)

func main() {
	log := logger.GetLogger("info")

	geo := fixtures.NREL5MW()

	var simCfg simconfig.SimulationConfig
	if cfg, err := config.Load(); err != nil {
		log.Warn("no config file found, using NREL 5MW defaults", "error", err)
		simCfg = simconfig.DefaultNREL5MW()
	} else {
		simCfg = cfg.SimulationConfig()
	}

	d := driver.New(geo, simCfg)
	curve := d.Run()

	printPowerCurve(curve)

	if assetsDir := os.Getenv("BEMCORE_ASSETS_DIR"); assetsDir != "" {
		if err := os.MkdirAll(assetsDir, 0o755); err != nil {
			log.Error("failed to create assets dir", "error", err)
		} else {
			plotter := reporting.NewPlotter(assetsDir, log)
			if err := plotter.GeneratePowerCurvePlot(curve); err != nil {
				log.Error("failed to generate power curve plot", "error", err)
			}
			if err := plotter.GenerateCpTSRPlot(curve, geo.RotorRadius()); err != nil {
				log.Error("failed to generate Cp-TSR plot", "error", err)
			}
		}
	}

	log.Info("sweep complete", "aep_kwh", curve.AEP, "revenue", curve.Revenue)
}

func printPowerCurve(curve *driver.PowerCurve) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"V_inf (m/s)", "Omega (rpm)", "Pitch (deg)", "P_aero (MW)", "P_elec (MW)", "Cp", "Ct", "Converged"})

	for _, pt := range curve.Points {
		_ = table.Append(reporting.FormatPowerCurveRow(pt))
	}
	_ = table.Render()

	fmt.Println(reporting.FormatSweepSummary(curve))
}
