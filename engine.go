package scaledstyle

// DefaultBaseline is the design frame values are authored against.
var DefaultBaseline = Size{Width: 375, Height: 667}

// Config holds everything the engine needs to resolve a table.
type Config struct {
	Rules    Rules
	Baseline Size
	// Screen is the device window size. It is normalized so Width is the
	// shorter side.
	Screen Size
	Device DeviceClass
}

// DefaultConfig returns the built-in rules and baseline for a screen.
func DefaultConfig(screen Size, device DeviceClass) Config {
	return Config{
		Rules:    DefaultRules(),
		Baseline: DefaultBaseline,
		Screen:   screen.Normalize(),
		Device:   device,
	}
}

// WithBaselineSize replaces either baseline dimension. A zero or negative
// argument leaves that dimension unchanged.
func (c Config) WithBaselineSize(width, height float64) Config {
	if width > 0 {
		c.Baseline.Width = width
	}
	if height > 0 {
		c.Baseline.Height = height
	}
	return c
}

// Engine resolves style-definition tables. An Engine is immutable and safe
// for concurrent use; configuration methods return a new Engine.
type Engine struct {
	cfg Config
}

// NewEngine returns an engine for cfg. The screen is normalized and a
// missing baseline dimension falls back to DefaultBaseline.
func NewEngine(cfg Config) *Engine {
	cfg.Screen = cfg.Screen.Normalize()
	if cfg.Baseline.Width <= 0 {
		cfg.Baseline.Width = DefaultBaseline.Width
	}
	if cfg.Baseline.Height <= 0 {
		cfg.Baseline.Height = DefaultBaseline.Height
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetBaselineSize returns an engine with the given baseline dimensions.
// Omitted (zero) dimensions keep their current value.
func (e *Engine) SetBaselineSize(width, height float64) *Engine {
	return NewEngine(e.cfg.WithBaselineSize(width, height))
}

// AddKeys returns an engine whose rules carry the extra axis keys.
func (e *Engine) AddKeys(vertical, horizontal []string) *Engine {
	cfg := e.cfg
	cfg.Rules = cfg.Rules.AddKeys(vertical, horizontal)
	return NewEngine(cfg)
}

// WithRules returns an engine using rules.
func (e *Engine) WithRules(rules Rules) *Engine {
	cfg := e.cfg
	cfg.Rules = rules
	return NewEngine(cfg)
}

// Ratio returns the screen-to-baseline ratio of axis. AxisNone has ratio 1.
func (e *Engine) Ratio(axis Axis) float64 {
	switch axis {
	case AxisHorizontal:
		return e.cfg.Screen.Width / e.cfg.Baseline.Width
	case AxisVertical:
		return e.cfg.Screen.Height / e.cfg.Baseline.Height
	default:
		return 1
	}
}

// Select applies device-class selection to a raw value. A plain number n
// behaves as the pair [n/2, n]. The large slot falls back to the compact
// slot when it is absent or falsy. Strings and opaque values are returned
// unchanged.
func (e *Engine) Select(v Value) Value {
	switch v.kind {
	case KindNumber:
		return e.Select(Pair(Number(v.num/2), v))
	case KindPair:
		if e.cfg.Device == Compact || len(v.slots) < 2 || !v.slots[1].truthy() {
			return v.slots[0]
		}
		return v.slots[1]
	default:
		return v
	}
}

// Scale selects by device class and multiplies a numeric result by the
// ratio of axis. Non-numeric selections are returned unscaled.
func (e *Engine) Scale(axis Axis, v Value) Value {
	selected := e.Select(v)
	n, ok := selected.Float()
	if !ok {
		return selected
	}
	return Number(e.Ratio(axis) * n)
}

// ResolveBlock resolves every key of block. It is meant for raw
// definitions only: feeding a resolved block back in scales it twice.
//
// When a marked key and its unmarked name both appear (width and width_V),
// the marked key wins.
func (e *Engine) ResolveBlock(block Block) Block {
	if block == nil {
		return nil
	}
	out := make(Block, len(block))
	var renamed []string
	for _, key := range block.Keys() {
		v := block[key]
		if v.kind == KindString {
			out[key] = v
			continue
		}
		c := e.cfg.Rules.Classify(key)
		if c.Key != key {
			renamed = append(renamed, key)
			continue
		}
		out[key] = e.resolveValue(c, v)
	}
	for _, key := range renamed {
		c := e.cfg.Rules.Classify(key)
		out[c.Key] = e.resolveValue(c, block[key])
	}
	return out
}

func (e *Engine) resolveValue(c Classification, v Value) Value {
	switch {
	case c.Ignore:
		return v
	case c.Axis == AxisNone:
		return e.Select(v)
	default:
		return e.Scale(c.Axis, v)
	}
}

// ResolveTable resolves every block of table.
func (e *Engine) ResolveTable(table Table) Table {
	out := make(Table, len(table))
	for name, block := range table {
		out[name] = e.ResolveBlock(block)
	}
	return out
}
