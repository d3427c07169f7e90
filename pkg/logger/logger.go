package logger

import (
	"bytes"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps a buffer-backed zap logger. The buffered output is kept
// around in ANSI form and converted to HTML on demand, so the web demo can
// embed the run's log next to the rendered diagram.
type ZapLogger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
	Logs   []string
}

// New returns a logger that records Info and above.
func New() *ZapLogger {
	return newAtLevel(zap.InfoLevel)
}

// NewDebug returns a logger that also records per-merge Debug detail.
func NewDebug() *ZapLogger {
	return newAtLevel(zap.DebugLevel)
}

func newAtLevel(level zapcore.Level) *ZapLogger {
	logBuf := &bytes.Buffer{}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(logBuf), level),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log:    logger,
		logBuf: logBuf,
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m" // Default
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

// Converts ANSI color codes to HTML span with inline styles
func ansiToHTML(input string) string {
	re := regexp.MustCompile(`\033\[(\d+)m`)

	var result strings.Builder
	var lastIndex int

	// currently open color span, if any
	var openTags []string

	result.WriteString("<pre>")

	for _, match := range re.FindAllStringIndex(input, -1) {
		start := match[0]
		end := match[1]

		if start > lastIndex {
			result.WriteString(input[lastIndex:start])
		}

		colorCode := input[start+2 : end-1]
		color, ok := colorMap[colorCode]
		if ok {
			if len(openTags) > 0 {
				result.WriteString("</span>")
				openTags = nil
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			openTags = append(openTags, color)
		} else if colorCode == "0" {
			// reset closes whatever is open
			if len(openTags) > 0 {
				result.WriteString("</span>")
				openTags = nil
			}
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(input[lastIndex:])
	}

	if len(openTags) > 0 {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

func (z *ZapLogger) UpdateLogs() {
	htmlLogs := ansiToHTML(z.logBuf.String())
	z.Logs = []string{htmlLogs}
}

func (z *ZapLogger) ClearLogs() {
	z.logBuf.Reset()
	z.Logs = nil
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
	z.UpdateLogs()
}
