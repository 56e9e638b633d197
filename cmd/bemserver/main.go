// Command bemserver exposes the BEM core over HTTP: a single
// operating-point solve and a full wind-speed sweep, both as JSON,
// mirroring the teacher's gin-gonic wiring and zerodha/logf request
// logging middleware.
package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/windbem/bemcore/internal/config"
	"github.com/windbem/bemcore/internal/fixtures"
	"github.com/windbem/bemcore/internal/logger"
	"github.com/windbem/bemcore/pkg/bem"
	"github.com/windbem/bemcore/pkg/driver"
	"github.com/windbem/bemcore/pkg/flow"
	"github.com/windbem/bemcore/pkg/geometry"
	"github.com/windbem/bemcore/pkg/postprocess"
	"github.com/windbem/bemcore/pkg/simconfig"
)

type server struct {
	geo geometry.TurbineGeometry
	cfg simconfig.SimulationConfig
}

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

	srv := &server{geo: geo, cfg: simCfg}

	r := gin.New()
	r.Use(gin.Recovery(), logger.LoggingMiddleware(log))
	r.GET("/healthz", srv.handleHealth)
	r.GET("/operating-point", srv.handleOperatingPoint)
	r.GET("/power-curve", srv.handlePowerCurve)

	addr := os.Getenv("BEMCORE_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Info("bemserver listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("server exited", "error", err)
	}
}

func (s *server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleOperatingPoint solves a single (V_inf, omega, pitch) and returns
// the full per-section post-processed result.
func (s *server) handleOperatingPoint(c *gin.Context) {
	vInf, err := parseFloatQuery(c, "v_inf", 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	omega, err := parseFloatQuery(c, "omega", s.cfg.OptimalTSR()*vInf/s.geo.RotorRadius())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pitch, err := parseFloatQuery(c, "pitch", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	radii := make([]float64, s.geo.NumSections())
	for i := range radii {
		radii[i] = s.geo.Radius(i)
	}
	ff := flow.NewUniform(vInf, omega, radii, nil, nil)

	solver := bem.NewSolver(s.geo, ff, s.cfg, omega, pitch)
	solver.WindSpeed = vInf
	result, err := solver.Solve()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	post := postprocess.Process(s.geo, result, s.cfg, vInf, omega, pitch)
	c.JSON(http.StatusOK, gin.H{
		"solver": result,
		"post":   post,
	})
}

// handlePowerCurve runs the full configured wind-speed sweep.
func (s *server) handlePowerCurve(c *gin.Context) {
	d := driver.New(s.geo, s.cfg)
	curve := d.Run()
	c.JSON(http.StatusOK, curve)
}

func parseFloatQuery(c *gin.Context, key string, fallback float64) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}
