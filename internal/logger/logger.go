// Package logger builds the zap logger used by the changetag CLI.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var levelMap = map[int]zapcore.Level{
	5: zapcore.DebugLevel,
	4: zapcore.InfoLevel,
	3: zapcore.WarnLevel,
	2: zapcore.ErrorLevel,
}

// Level maps a numeric level (2 error, 3 warn, 4 info, 5 debug) to zap.
// Unknown values fall back to info.
func Level(ll int) zapcore.Level {
	if l, ok := levelMap[ll]; ok {
		return l
	}
	return zapcore.InfoLevel
}

// New returns a console logger on w. When logDir is set, records are also
// written as JSON to <logDir>/logs/changetag.log with rotation.
func New(w io.Writer, ll int, logDir string) *zap.SugaredLogger {
	atom := zap.NewAtomicLevelAt(Level(ll))

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), atom),
	}

	if logDir != "" {
		fw := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(logDir, "logs", "changetag.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 10,
			MaxAge:     5, // days
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			fw,
			atom,
		))
	}

	return zap.New(zapcore.NewTee(cores...)).Sugar()
}

// Stderr is New on os.Stderr.
func Stderr(ll int, logDir string) *zap.SugaredLogger {
	return New(os.Stderr, ll, logDir)
}
