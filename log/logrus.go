package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

type LoggerImpl struct {
	l      *logrus.Logger
	fields logrus.Fields
}

var _ Logger = (*LoggerImpl)(nil)

var DefaultLogger *LoggerImpl
var defaultLoggerInit sync.Once

// New returns a text logger at info level writing to stderr. The first logger
// created becomes DefaultLogger.
func New() *LoggerImpl {
	l := &LoggerImpl{
		l: logrus.New(),
	}
	l.l.SetLevel(logrus.InfoLevel)
	l.l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	defaultLoggerInit.Do(func() {
		DefaultLogger = l
	})
	return l
}

// decorate tags the entry with the caller `skip` frames up.
func (l *LoggerImpl) decorate(skip int) *logrus.Entry {
	entry := l.l.WithFields(l.fields)
	if pc, file, line, ok := runtime.Caller(skip); ok {
		fName := runtime.FuncForPC(pc).Name()
		path := strings.Split(file, "/")
		if len(path) > 3 {
			path = path[len(path)-3:]
		}
		position := fmt.Sprintf("%s:%d", strings.Join(path, string(os.PathSeparator)), line)
		entry = entry.WithField("position", position).WithField("func", fName)
	}
	return entry
}

func (l *LoggerImpl) Debug(format string, v ...interface{}) {
	l.decorate(2).Debugf(format, v...)
}

func (l *LoggerImpl) Info(format string, v ...interface{}) {
	l.decorate(2).Infof(format, v...)
}

func (l *LoggerImpl) Warn(format string, v ...interface{}) {
	l.decorate(2).Warnf(format, v...)
}

func (l *LoggerImpl) Error(format string, v ...interface{}) {
	l.decorate(2).Errorf(format, v...)
}

func (l *LoggerImpl) Fatal(format string, v ...interface{}) {
	l.decorate(2).Fatalf(format, v...)
}

// WithField shares the underlying logrus logger, so level and output changes
// apply to both loggers.
func (l *LoggerImpl) WithField(key string, value interface{}) Logger {
	fields := make(logrus.Fields, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &LoggerImpl{l: l.l, fields: fields}
}

func (l *LoggerImpl) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "log: set level %q", level)
	}
	l.l.SetLevel(lvl)
	return nil
}

func (l *LoggerImpl) GetLevel() string {
	return l.l.GetLevel().String()
}

func (l *LoggerImpl) SetOutput(out io.Writer) {
	l.l.SetOutput(out)
}

func (l *LoggerImpl) SetFormatter(formatter logrus.Formatter) {
	l.l.SetFormatter(formatter)
}
