// Copyright 2022 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig serializes log related config in toml/json.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string `toml:"level" json:"level"`
	// Format is console or json.
	Format string `toml:"format" json:"format"`
	// Filename is the log file, stderr when empty.
	Filename string `toml:"filename" json:"filename"`
	// MaxSize is the max size of a log file in MB before rotation.
	MaxSize int `toml:"max-size" json:"max-size"`
	// MaxDays is the max days of log retention.
	MaxDays int `toml:"max-days" json:"max-days"`
	// MaxBackups is the max number of rotated files to keep.
	MaxBackups int `toml:"max-backups" json:"max-backups"`
}

var gLogger atomic.Value

func init() {
	SetupGlobalLogger(&LogConfig{Level: "info", Format: "console"})
}

// SetupGlobalLogger builds the global zap logger from cfg. The last
// call wins; callers typically invoke it once at startup.
func SetupGlobalLogger(cfg *LogConfig) {
	gLogger.Store(newLogger(cfg))
}

// GetGlobalLogger returns the process wide logger.
func GetGlobalLogger() *zap.Logger {
	return gLogger.Load().(*zap.Logger)
}

func newLogger(cfg *LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			level = zapcore.InfoLevel
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	var sink zapcore.WriteSyncer
	if cfg.Filename != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
		})
	} else {
		sink = zapcore.AddSync(os.Stderr)
	}

	core := zapcore.NewCore(enc, sink, level)
	return zap.New(core, zap.AddStacktrace(zapcore.FatalLevel))
}
