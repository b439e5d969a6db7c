package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Everforest dark palette
const (
	colorReset  = "\x1b[0m"
	colorBold   = "\x1b[1m"
	colorTime   = "\x1b[38;5;107m"
	colorName   = "\x1b[38;5;208m"
	colorID     = "\x1b[38;5;109m"
	colorFg     = "\x1b[38;5;223m"
	colorYellow = "\x1b[38;5;179m"
	colorRed    = "\x1b[38;5;167m"
	colorRedBg  = "\x1b[48;5;52m"
	colorWarnBg = "\x1b[48;5;58m"
)

var bufferPool = buffer.NewPool()

// idKeys are printed in the ID color so sessions and documents stand out
var idKeys = map[string]bool{
	FieldSession: true,
	FieldURI:     true,
	FieldRemote:  true,
}

// consoleEncoder writes compact human-readable lines:
//
//	13:04:35  WARN  lsp  Ignoring incremental change  session=3f2a… uri=file:///a.fsc
//
// Context fields (from With) come first in key order, then the call's fields
// in the order given. No field is ever dropped.
type consoleEncoder struct {
	*zapcore.MapObjectEncoder
	color bool
}

func newConsoleEncoder(color bool) *consoleEncoder {
	return &consoleEncoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		color:            color,
	}
}

func (enc *consoleEncoder) Clone() zapcore.Encoder {
	clone := newConsoleEncoder(enc.color)
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (enc *consoleEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufferPool.Get()

	line.AppendString(enc.paint(colorTime, ent.Time.Format("15:04:05")))

	// Info is the normal case; only other levels are labelled
	if ent.Level != zapcore.InfoLevel {
		line.AppendString("  ")
		line.AppendString(enc.levelString(ent.Level))
	}

	if ent.LoggerName != "" {
		line.AppendString("  ")
		line.AppendString(enc.paint(colorName, ent.LoggerName))
	}

	line.AppendString("  ")
	line.AppendString(enc.paint(colorFg, ent.Message))

	contextKeys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		contextKeys = append(contextKeys, k)
	}
	sort.Strings(contextKeys)

	pairs := make([]string, 0, len(contextKeys)+len(fields))
	for _, k := range contextKeys {
		pairs = append(pairs, enc.pair(k, enc.Fields[k]))
	}

	callFields := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(callFields)
		// zap adds a verbose stack for errors that implement fmt.Formatter
		delete(callFields.Fields, f.Key+"Verbose")
		if v, ok := callFields.Fields[f.Key]; ok {
			pairs = append(pairs, enc.pair(f.Key, v))
		}
	}

	if len(pairs) > 0 {
		line.AppendString("  ")
		line.AppendString(strings.Join(pairs, " "))
	}

	if ent.Stack != "" && ent.Level >= zapcore.ErrorLevel {
		line.AppendString("\n")
		line.AppendString(ent.Stack)
	}

	line.AppendString("\n")
	return line, nil
}

func (enc *consoleEncoder) pair(key string, value interface{}) string {
	s := fmt.Sprintf("%v", value)
	if strings.ContainsAny(s, " \t\n\"") {
		s = fmt.Sprintf("%q", s)
	}
	if idKeys[key] {
		s = enc.paint(colorID, s)
	}
	return key + "=" + s
}

func (enc *consoleEncoder) levelString(level zapcore.Level) string {
	switch {
	case level == zapcore.WarnLevel:
		return enc.paint(colorBold+colorWarnBg+colorYellow, "WARN")
	case level >= zapcore.ErrorLevel:
		return enc.paint(colorBold+colorRedBg+colorRed, level.CapitalString())
	default:
		return level.CapitalString()
	}
}

func (enc *consoleEncoder) paint(color, s string) string {
	if !enc.color {
		return s
	}
	return color + s + colorReset
}
