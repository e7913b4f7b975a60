// Package logger is the diagnostic channel of the client.
//
// The terminal screen owns stdout, so log entries go to a rotating JSON file
// (lumberjack). The console command additionally tees entries to stderr.
package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger, a no-op until Initialize is called.
var Log *zap.Logger = zap.NewNop()

// rotator is the rotating sink behind Log; lumberjack creates its directory.
var rotator *lumberjack.Logger

// Initialize builds Log at the given level, writing to path and, when tee
// is set, to stderr as well. A sink from an earlier call is closed.
func Initialize(level, path string, tee bool) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	closeFile()
	rotator = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	sink := zapcore.AddSync(rotator)

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, lvl),
	}
	if tee {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), lvl))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(sink))
	return nil
}

// Sync flushes buffered entries and closes the log file. Errors are ignored
// because stderr cannot always be synced. Entries logged afterwards reopen
// the file.
func Sync() {
	_ = Log.Sync()
	closeFile()
}

func closeFile() {
	if rotator != nil {
		_ = rotator.Close()
		rotator = nil
	}
}
