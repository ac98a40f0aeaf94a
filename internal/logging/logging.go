// Package logging builds the game's zap logger. Entries go to a JSON log file
// and the most recent messages are kept in a Ring for the debug panel, since
// the terminal itself is owned by the UI.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLines is the number of messages the debug panel shows.
const DebugLines = 3

// New creates a logger writing JSON to path at the given level. Every entry
// is also formatted into ring when ring is not nil.
func New(path, level string, ring *Ring) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
		DisableCaller:    true,
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	if ring == nil {
		return logger, nil
	}
	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, NewRingCore(ring, lvl))
	})), nil
}

var ringEncoderConfig = zapcore.EncoderConfig{
	MessageKey:       "msg",
	LevelKey:         "level",
	EncodeLevel:      zapcore.CapitalLevelEncoder,
	ConsoleSeparator: " ",
}

// ringCore is a zapcore.Core that formats entries into a Ring.
type ringCore struct {
	zapcore.LevelEnabler
	enc  zapcore.Encoder
	ring *Ring
}

// NewRingCore returns a core that appends entries at or above level to ring.
func NewRingCore(ring *Ring, level zapcore.LevelEnabler) zapcore.Core {
	return &ringCore{
		LevelEnabler: level,
		enc:          zapcore.NewConsoleEncoder(ringEncoderConfig),
		ring:         ring,
	}
}

func (c *ringCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &ringCore{
		LevelEnabler: c.LevelEnabler,
		enc:          c.enc.Clone(),
		ring:         c.ring,
	}
	for _, f := range fields {
		f.AddTo(clone.enc)
	}
	return clone
}

func (c *ringCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *ringCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	c.ring.Push(strings.TrimRight(buf.String(), "\n"))
	buf.Free()
	return nil
}

func (c *ringCore) Sync() error { return nil }
