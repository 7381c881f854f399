// Package obs is the ambient structured-logging wiring every CLI entry
// point builds once at startup and threads through the rest of its run:
// a zap.Logger configured for either human-readable development output
// or JSON production output, plus the handful of fields every benchgen
// log line carries (suite, table, scale factor).
package obs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger's verbosity and output encoding.
type Config struct {
	// Verbose enables debug-level logging and a human-readable console
	// encoder; the default is info-level JSON, suited to piping into a
	// log aggregator.
	Verbose bool
}

// New builds the process-wide *zap.Logger for a benchgen CLI run.
func New(cfg Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Verbose {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

// Run annotates logger with the fields every table-generation run logs
// under: suite, table, and scale factor.
func Run(logger *zap.Logger, suite, table string, scaleFactor float64) *zap.Logger {
	return logger.With(
		zap.String("suite", suite),
		zap.String("table", table),
		zap.Float64("scale_factor", scaleFactor),
	)
}
