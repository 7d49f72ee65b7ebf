package output

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	levelDebug = "DEBUG"
	levelInfo  = "INFO"
	levelWarn  = "WARN"
	levelError = "ERROR"
)

// FileLog writes timestamped, leveled, append-only log lines for a run.
// Errors additionally go to a separate error log so failures can be reviewed
// without scanning the full run log. Rotation is handled by lumberjack.
type FileLog struct {
	run  *lumberjack.Logger
	errs *lumberjack.Logger
}

// NewFileLog creates a FileLog writing repovault.log and repovault-errors.log
// under dir.
func NewFileLog(dir string) *FileLog {
	return &FileLog{
		run: &lumberjack.Logger{
			Filename:   filepath.Join(dir, "repovault.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		},
		errs: &lumberjack.Logger{
			Filename:   filepath.Join(dir, "repovault-errors.log"),
			MaxSize:    10,
			MaxBackups: 3,
		},
	}
}

// Close closes the underlying log files
func (f *FileLog) Close() error {
	if f == nil {
		return nil
	}
	runErr := f.run.Close()
	if err := f.errs.Close(); err != nil {
		return err
	}
	return runErr
}

// log appends one leveled line to the run log. A nil FileLog is a no-op so the
// Splog can be used without file logging configured.
func (f *FileLog) log(level, format string, args ...interface{}) {
	if f == nil {
		return
	}
	fmt.Fprintf(f.run, "%s [%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), level, fmt.Sprintf(format, args...))
}

// logError appends to both the run log and the error log
func (f *FileLog) logError(format string, args ...interface{}) {
	if f == nil {
		return
	}
	f.log(levelError, format, args...)
	fmt.Fprintf(f.errs, "%s [%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), levelError, fmt.Sprintf(format, args...))
}
