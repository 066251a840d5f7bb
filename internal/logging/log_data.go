package logging

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData collects the fields and millisecond timings of one request so they
// end up on a single log line.
type LogData struct {
	mutex   sync.Mutex
	timings map[string]int64
	fields  logrus.Fields
	logger  *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timings: make(map[string]int64),
		fields:  make(logrus.Fields),
		logger:  logger,
	}
}

// AddTiming starts a timer; calling the returned func records the elapsed
// milliseconds under name, replacing any earlier value.
func (l *LogData) AddTiming(name string) func() {
	return l.startTimer(name, false)
}

// AddToExistingTiming is AddTiming that sums into the previous value.
func (l *LogData) AddToExistingTiming(name string) func() {
	return l.startTimer(name, true)
}

func (l *LogData) startTimer(name string, accumulate bool) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Milliseconds()
		l.mutex.Lock()
		defer l.mutex.Unlock()
		if accumulate {
			elapsed += l.timings[name]
		}
		l.timings[name] = elapsed
	}
}

func (l *LogData) AddData(key string, value any) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.fields[key] = value
}

func (l *LogData) AddFields(fields logrus.Fields) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	for key, value := range fields {
		l.fields[key] = value
	}
}

// Log returns an entry carrying every field and timing collected so far.
func (l *LogData) Log() *logrus.Entry {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	fields := make(logrus.Fields, len(l.fields)+len(l.timings))
	for key, value := range l.fields {
		fields[key] = value
	}
	for key, value := range l.timings {
		fields[key] = value
	}
	return l.logger.WithFields(fields)
}

type logDataKey struct{}

// WithLogData attaches a LogData to ctx for handlers further down the chain.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the LogData attached to ctx, or nil.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}
