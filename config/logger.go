package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger replaces the package loggers. Production gets JSON output at
// info level; everything else gets the colored development encoder.
func InitLogger(production bool) error {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = logger
	SLog = logger.Sugar()
	return nil
}

func SyncLogger() {
	_ = Log.Sync()
}
