package tessella

// Option configures a Renderer during creation.
//
// Example:
//
//	// Reproducible installation: same seed, same frames.
//	r, err := tessella.NewRenderer(
//	    tessella.WithSeed(1234),
//	    tessella.WithGroup(tessella.P6M),
//	)
type Option func(*Renderer)

// WithSeed seeds the renderer's RNG for reproducible output.
// Without it the RNG seeds from the wall clock.
func WithSeed(seed int64) Option {
	return func(r *Renderer) {
		r.rng = NewRand(seed)
	}
}

// WithRand injects a shared RNG. Use this when the glyph overlay and the
// renderer must consume one deterministic stream.
func WithRand(rng *Rand) Option {
	return func(r *Renderer) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// WithGroup fixes the starting wallpaper group instead of picking one at
// random.
func WithGroup(g Group) Option {
	return func(r *Renderer) {
		r.group = g
	}
}

// WithPattern sets the starting pattern type. Default is wallpaper.
func WithPattern(p PatternType) Option {
	return func(r *Renderer) {
		r.pattern = p
	}
}

// WithJitter sets the coordinate jitter bound. Zero disables jitter
// entirely, which also makes frames cheaper (no RNG draws per placement).
func WithJitter(amount float64) Option {
	return func(r *Renderer) {
		if amount >= 0 {
			r.jitter = amount
		}
	}
}

// WithAnimationSpeed scales rotation drift and bloom motion. 1 is the
// installation default.
func WithAnimationSpeed(speed float64) Option {
	return func(r *Renderer) {
		if speed > 0 {
			r.speed = speed
		}
	}
}

// WithWidthAwareCells derives the instancer's column count from the
// canvas width instead of its height. The height-based default matches
// the calibration of the rule table; see InstanceConfig.WidthAwareCells.
func WithWidthAwareCells(enabled bool) Option {
	return func(r *Renderer) {
		r.widthAwareCells = enabled
	}
}

// WithPalettes replaces the built-in palettes. An empty slice is ignored.
func WithPalettes(palettes []Palette) Option {
	return func(r *Renderer) {
		if len(palettes) > 0 {
			r.palettes = palettes
		}
	}
}
