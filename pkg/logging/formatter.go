/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatter for the Akaylee TestKit. Provides
structured diagnostic output with colors, runtime-specific prefixes and
compact field formatting.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// CustomFormatter provides structured, readable diagnostic output.
type CustomFormatter struct {
	Timestamp bool
	Colors    bool
}

// colorize wraps text in the escape sequence for a single SGR attribute when
// colors are on. Emission is policy-driven, never TTY-sniffed.
func (f *CustomFormatter) colorize(attr color.Attribute, text string) string {
	if !f.Colors {
		return text
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(text)
}

// Format formats a log entry.
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var output strings.Builder

	if f.Timestamp {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		output.WriteString(f.colorize(color.FgCyan, timestamp))
		output.WriteString(" ")
	}

	level := strings.ToUpper(entry.Level.String())
	output.WriteString(f.colorize(f.getLevelColor(entry.Level), level))
	output.WriteString(" ")

	if prefix := f.getRuntimePrefix(entry.Message); prefix != "" {
		output.WriteString(f.colorize(color.FgMagenta, fmt.Sprintf("[%s]", prefix)))
		output.WriteString(" ")
	}

	output.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String()), nil
}

// getLevelColor returns the color attribute for a log level.
func (f *CustomFormatter) getLevelColor(level logrus.Level) color.Attribute {
	switch level {
	case logrus.DebugLevel:
		return color.FgWhite
	case logrus.InfoLevel:
		return color.FgGreen
	case logrus.WarnLevel:
		return color.FgYellow
	case logrus.ErrorLevel:
		return color.FgRed
	case logrus.FatalLevel, logrus.PanicLevel:
		return color.FgMagenta
	default:
		return color.FgWhite
	}
}

// getRuntimePrefix returns a prefix based on the log message.
func (f *CustomFormatter) getRuntimePrefix(message string) string {
	switch {
	case strings.Contains(message, "Run started"), strings.Contains(message, "Run finished"):
		return "RUN"
	case strings.Contains(message, "Suite"):
		return "SUITE"
	case strings.Contains(message, "Test"):
		return "TEST"
	case strings.Contains(message, "Shuffled"):
		return "SHUFFLE"
	default:
		return ""
	}
}

// formatFields formats structured fields in a stable, readable order.
func (f *CustomFormatter) formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		formattedValue := f.formatValue(fields[key])
		parts = append(parts, fmt.Sprintf("%s=%s",
			f.colorize(color.FgBlue, key),
			f.colorize(color.FgGreen, formattedValue)))
	}
	return strings.Join(parts, " ")
}

// formatValue formats a field value appropriately.
func (f *CustomFormatter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case string:
		if len(v) > 50 {
			return fmt.Sprintf("%s...", v[:50])
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
