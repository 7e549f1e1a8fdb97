package glogger

import "github.com/trickstertwo/xclock"

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Adapter  Adapter
	MinLevel Level
	Clock    xclock.Clock // optional; defaults to the process clock (xclock.Now)
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{MinLevel: LevelInfo}}
}

func (b *Builder) WithAdapter(a Adapter) *Builder {
	b.cfg.Adapter = a
	return b
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	if b.cfg.Adapter == nil {
		return nil, ErrNoAdapter
	}
	return newLogger(b.cfg), nil
}
