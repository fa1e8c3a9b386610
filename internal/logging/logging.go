// Package logging wires the shared zerolog logger: human-readable
// console output plus a size-rotated audit file.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to stderr and to the rotating audit log
// at auditPath. Rotation keeps the file at 5 MB with two backups.
func New(auditPath string) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	audit := &lumberjack.Logger{
		Filename:   auditPath,
		MaxSize:    5,
		MaxBackups: 2,
	}
	return zerolog.New(zerolog.MultiLevelWriter(console, audit)).
		With().Timestamp().Logger()
}
