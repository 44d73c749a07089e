package logs

import (
	"fmt"
	"io"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

type (
	Fields map[string]interface{}

	Logger interface {
		Debug(args ...interface{})
		Debugf(format string, args ...interface{})
		Info(args ...interface{})
		Infof(format string, args ...interface{})
		Warn(args ...interface{})
		Warnf(format string, args ...interface{})
		Error(args ...interface{})
		Errorf(format string, args ...interface{})
		WithFields(fields Fields) Logger
	}

	logger struct {
		entry *logrus.Entry
	}

	Option struct {
		Level      string
		JSONFormat bool
		// FilePath, when set, mirrors every entry to the given file.
		FilePath string
	}
)

func New() Logger {
	return NewWithOption(Option{})
}

func NewWithOption(option Option) Logger {
	instance := logrus.New()

	if option.JSONFormat {
		instance.SetFormatter(&logrus.JSONFormatter{})
	}

	if option.Level != "" {
		if level, err := logrus.ParseLevel(option.Level); err == nil {
			instance.SetLevel(level)
		}
	}

	if option.FilePath != "" {
		instance.AddHook(lfshook.NewHook(
			lfshook.PathMap{
				logrus.DebugLevel: option.FilePath,
				logrus.InfoLevel:  option.FilePath,
				logrus.WarnLevel:  option.FilePath,
				logrus.ErrorLevel: option.FilePath,
			},
			&logrus.JSONFormatter{},
		))
	}

	return &logger{entry: logrus.NewEntry(instance)}
}

// NewWithOutput is intended for tests that need to capture log output.
func NewWithOutput(out io.Writer) Logger {
	instance := logrus.New()
	instance.SetOutput(out)
	return &logger{entry: logrus.NewEntry(instance)}
}

func (l *logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func ErrorStackTrace(err error) string {
	return fmt.Sprintf("%+v\n", err)
}
