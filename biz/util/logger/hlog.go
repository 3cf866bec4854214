package logger

import (
	"context"
	"io"
	"time"

	"upstagram/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init routes hlog through logrus with rotated file output.
func Init() {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	})

	adapter := &logrusAdapter{l: l}
	adapter.SetOutput(newOutput())
	adapter.SetLevel(newLevel())

	hlog.SetLogger(adapter)
}

// logrusAdapter implements hlog.FullLogger. Ctx variants stamp the request
// log id as a structured field.
type logrusAdapter struct {
	l *logrus.Logger
}

func (a *logrusAdapter) entry(ctx context.Context) *logrus.Entry {
	if logId := trace_info.GetLogId(ctx); logId != "" {
		return a.l.WithField("log_id", logId)
	}
	return logrus.NewEntry(a.l)
}

func (a *logrusAdapter) Trace(v ...any)  { a.l.Trace(v...) }
func (a *logrusAdapter) Debug(v ...any)  { a.l.Debug(v...) }
func (a *logrusAdapter) Info(v ...any)   { a.l.Info(v...) }
func (a *logrusAdapter) Notice(v ...any) { a.l.Info(v...) }
func (a *logrusAdapter) Warn(v ...any)   { a.l.Warn(v...) }
func (a *logrusAdapter) Error(v ...any)  { a.l.Error(v...) }
func (a *logrusAdapter) Fatal(v ...any)  { a.l.Fatal(v...) }

func (a *logrusAdapter) Tracef(format string, v ...any)  { a.l.Tracef(format, v...) }
func (a *logrusAdapter) Debugf(format string, v ...any)  { a.l.Debugf(format, v...) }
func (a *logrusAdapter) Infof(format string, v ...any)   { a.l.Infof(format, v...) }
func (a *logrusAdapter) Noticef(format string, v ...any) { a.l.Infof(format, v...) }
func (a *logrusAdapter) Warnf(format string, v ...any)   { a.l.Warnf(format, v...) }
func (a *logrusAdapter) Errorf(format string, v ...any)  { a.l.Errorf(format, v...) }
func (a *logrusAdapter) Fatalf(format string, v ...any)  { a.l.Fatalf(format, v...) }

func (a *logrusAdapter) CtxTracef(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Tracef(format, v...)
}

func (a *logrusAdapter) CtxDebugf(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Debugf(format, v...)
}

func (a *logrusAdapter) CtxInfof(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Infof(format, v...)
}

func (a *logrusAdapter) CtxNoticef(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Infof(format, v...)
}

func (a *logrusAdapter) CtxWarnf(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Warnf(format, v...)
}

func (a *logrusAdapter) CtxErrorf(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Errorf(format, v...)
}

func (a *logrusAdapter) CtxFatalf(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Fatalf(format, v...)
}

func (a *logrusAdapter) SetLevel(level hlog.Level) {
	switch level {
	case hlog.LevelTrace:
		a.l.SetLevel(logrus.TraceLevel)
	case hlog.LevelDebug:
		a.l.SetLevel(logrus.DebugLevel)
	case hlog.LevelInfo, hlog.LevelNotice:
		a.l.SetLevel(logrus.InfoLevel)
	case hlog.LevelWarn:
		a.l.SetLevel(logrus.WarnLevel)
	case hlog.LevelError:
		a.l.SetLevel(logrus.ErrorLevel)
	case hlog.LevelFatal:
		a.l.SetLevel(logrus.FatalLevel)
	default:
		a.l.SetLevel(logrus.InfoLevel)
	}
}

func (a *logrusAdapter) SetOutput(w io.Writer) {
	a.l.SetOutput(w)
}
