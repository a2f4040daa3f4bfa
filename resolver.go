package scaledstyle

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Orientation is the window orientation tracked by a Resolver.
type Orientation uint8

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// OrientationOf derives the orientation of a window size.
func OrientationOf(s Size) Orientation {
	if s.Landscape() {
		return Landscape
	}
	return Portrait
}

// Mode decides how the landscape style combines with the base style.
type Mode uint8

const (
	// ModeMerge appends the landscape style after the base style.
	ModeMerge Mode = iota
	// ModeReplace swaps the base style for the landscape style.
	ModeReplace
)

func (m Mode) String() string {
	if m == ModeReplace {
		return "replace"
	}
	return "merge"
}

// ParseMode parses "merge" or "replace".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "merge":
		return ModeMerge, nil
	case "replace":
		return ModeReplace, nil
	default:
		return ModeMerge, fmt.Errorf("unknown style mode %q", s)
	}
}

// Window is the host window a Resolver observes.
type Window interface {
	// Size returns the current window size.
	Size() Size
	// Subscribe registers fn for orientation-change notifications and
	// returns a function that removes the registration.
	Subscribe(fn func(Size)) (cancel func())
}

// Animator performs the eased transition requested on orientation change.
type Animator interface {
	EaseInEaseOut()
}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func()

// EaseInEaseOut calls f.
func (f AnimatorFunc) EaseInEaseOut() { f() }

// Update describes one processed orientation notification.
type Update struct {
	Orientation Orientation
	Size        Size
	Animated    bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLandscapeStyle sets the style applied in landscape.
func WithLandscapeStyle(style Block) Option {
	return func(r *Resolver) { r.landscape = style }
}

// WithMode sets merge or replace behaviour. Merge is the default.
func WithMode(mode Mode) Option {
	return func(r *Resolver) { r.mode = mode }
}

// WithExtraProps sets the props overlaid while in landscape.
func WithExtraProps(props Props) Option {
	return func(r *Resolver) { r.extra = props }
}

// WithAnimation enables or disables the eased transition. Enabled by default.
func WithAnimation(enabled bool) Option {
	return func(r *Resolver) { r.animate = enabled }
}

// WithAnimator sets the host transition primitive.
func WithAnimator(a Animator) Option {
	return func(r *Resolver) { r.animator = a }
}

// WithLogger sets the logger used to trace transitions.
func WithLogger(log *zap.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log.Named("resolver")
		}
	}
}

// Resolver tracks the orientation of a Window and derives the style and
// extra props a consumer should receive in the current orientation.
//
// A Resolver is created per consumer instance. Activate subscribes to the
// window; Deactivate releases the subscription, after which late
// notifications are ignored.
type Resolver struct {
	window    Window
	landscape Block
	mode      Mode
	extra     Props
	animate   bool
	animator  Animator
	log       *zap.Logger

	mu          sync.Mutex
	orientation Orientation
	size        Size
	active      bool
	generation  uint64
	cancel      func()
	listeners   []func(Update)
}

// NewResolver creates a resolver whose initial orientation is read from
// the window synchronously.
func NewResolver(window Window, opts ...Option) *Resolver {
	r := &Resolver{
		window:  window,
		animate: true,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.size = window.Size()
	r.orientation = OrientationOf(r.size)
	return r
}

// OnChange registers fn to be called after every processed notification.
// Callbacks run in registration order on the notifying goroutine.
func (r *Resolver) OnChange(fn func(Update)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Activate subscribes to window notifications. Calling it on an active
// resolver does nothing.
func (r *Resolver) Activate() {
	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return
	}
	r.active = true
	r.generation++
	gen := r.generation
	r.mu.Unlock()

	cancel := r.window.Subscribe(func(s Size) { r.handleChange(gen, s) })

	r.mu.Lock()
	if r.active && r.generation == gen {
		r.cancel = cancel
		cancel = nil
	}
	r.mu.Unlock()

	// Deactivated while subscribing.
	if cancel != nil {
		cancel()
	}
}

// Deactivate releases the window subscription. Notifications delivered
// afterwards are no-ops.
func (r *Resolver) Deactivate() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.active = false
	r.generation++
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Active reports whether the resolver is subscribed.
func (r *Resolver) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *Resolver) handleChange(gen uint64, s Size) {
	r.mu.Lock()
	if !r.active || r.generation != gen {
		r.mu.Unlock()
		r.log.Debug("Dropping notification for inactive resolver", zap.Stringer("size", s))
		return
	}
	r.size = s
	r.orientation = OrientationOf(s)
	update := Update{Orientation: r.orientation, Size: s, Animated: r.animate && r.animator != nil}
	listeners := append([]func(Update){}, r.listeners...)
	r.mu.Unlock()

	r.log.Debug("Orientation changed",
		zap.Stringer("orientation", update.Orientation),
		zap.Stringer("size", s),
		zap.Bool("animated", update.Animated))

	if update.Animated {
		r.animator.EaseInEaseOut()
	}
	for _, fn := range listeners {
		fn(update)
	}
}

// Orientation returns the current orientation.
func (r *Resolver) Orientation() Orientation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orientation
}

// ExtraProps returns the configured extra props in landscape and an empty
// set in portrait.
func (r *Resolver) ExtraProps() Props {
	if r.Orientation() != Landscape || r.extra == nil {
		return Props{}
	}
	return r.extra.Clone()
}

// EffectiveStyle derives the style for the current orientation from the
// consumer's base style.
//
// In merge mode the result is base followed, in landscape, by the landscape
// style. In replace mode it is the landscape style in landscape and base
// otherwise. A nil result means no style: the consumer keeps its default.
func (r *Resolver) EffectiveStyle(base Style) Style {
	landscape := r.Orientation() == Landscape

	if r.mode == ModeReplace {
		if landscape {
			if r.landscape == nil {
				return nil
			}
			return Style{r.landscape}
		}
		if len(base) == 0 {
			return nil
		}
		return append(Style(nil), base...)
	}

	if len(base) == 0 && r.landscape == nil {
		return nil
	}
	out := append(Style{}, base...)
	if landscape && r.landscape != nil {
		out = append(out, r.landscape)
	}
	return out
}

// Props returns the props a consumer should render with: incoming props
// unchanged, except "style" replaced by the effective style and the extra
// props overlaid on top.
func (r *Resolver) Props(incoming Props) Props {
	out := incoming.Clone()
	if style := r.EffectiveStyle(StyleOf(incoming["style"])); style != nil {
		out["style"] = style
	} else {
		delete(out, "style")
	}
	for k, v := range r.ExtraProps() {
		out[k] = v
	}
	return out
}

// StyleOf converts a "style" prop into a Style. Unsupported types yield nil.
func StyleOf(v any) Style {
	switch s := v.(type) {
	case Style:
		return s
	case Block:
		if s == nil {
			return nil
		}
		return Style{s}
	case []Block:
		return Style(s)
	default:
		return nil
	}
}
