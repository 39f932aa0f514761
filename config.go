package twconfig

// Config is the configuration document of a utility-CSS generator: which
// files to scan for class names, which classes to always emit, and theme
// extensions. A loaded Config is treated as immutable; use Clone to derive
// an edited copy.
type Config struct {
	// Content lists glob patterns for the source files the generator scans
	// for class names. Order is preserved for readability only.
	Content []string `koanf:"content" json:"content,omitempty" validate:"dive,required" jsonschema:"description=Glob patterns of source files scanned for class names"`
	// Safelist lists class names that are always emitted, whether or not
	// they are found in scanned content.
	Safelist []string `koanf:"safelist" json:"safelist,omitempty" validate:"dive,required" jsonschema:"description=Class names always emitted regardless of usage,uniqueItems=true"`
	Theme    Theme    `koanf:"theme" json:"theme,omitempty"`
}

// Theme holds theme customizations.
type Theme struct {
	Extend ThemeExtension `koanf:"extend" json:"extend,omitempty" jsonschema:"description=Values merged into the default theme"`
}

// ThemeExtension holds theme values merged into the generator's defaults.
type ThemeExtension struct {
	// Animation maps an animation utility name to a CSS animation shorthand,
	// e.g. "slide-in" -> "slide-in 0.5s ease-out forwards".
	Animation map[string]string `koanf:"animation" json:"animation,omitempty" validate:"dive,keys,required,endkeys,required" jsonschema:"description=Animation name to CSS animation shorthand"`
	// Keyframes maps an animation name to its keyframe steps.
	Keyframes map[string]Keyframes `koanf:"keyframes" json:"keyframes,omitempty" validate:"dive,keys,required,endkeys,min=1,dive,keys,required,endkeys,min=1" jsonschema:"description=Animation name to keyframe steps"`
}

// Keyframes maps a keyframe selector ("0%", "100%", "from", "to") to the
// declarations applied at that point of the animation.
type Keyframes map[string]Declarations

// Declarations maps a CSS property name to its value.
type Declarations map[string]string

// Default returns the project's canonical document: templ sources are
// scanned, the alert variants are safelisted, and a slide-in animation is
// defined together with its keyframes. Each call returns a fresh value.
func Default() *Config {
	return &Config{
		Content: []string{"./internal/**/*.templ"},
		Safelist: []string{
			"alert-error",
			"alert-success",
			"alert-warning",
			"alert-info",
		},
		Theme: Theme{
			Extend: ThemeExtension{
				Animation: map[string]string{
					"slide-in": "slide-in 0.5s ease-out forwards",
				},
				Keyframes: map[string]Keyframes{
					"slide-in": {
						"0%":   {"transform": "translateX(100%)", "opacity": "0"},
						"100%": {"transform": "translateX(0)", "opacity": "1"},
					},
				},
			},
		},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	out := &Config{
		Content:  cloneStrings(c.Content),
		Safelist: cloneStrings(c.Safelist),
	}

	if c.Theme.Extend.Animation != nil {
		out.Theme.Extend.Animation = make(map[string]string, len(c.Theme.Extend.Animation))
		for name, value := range c.Theme.Extend.Animation {
			out.Theme.Extend.Animation[name] = value
		}
	}

	if c.Theme.Extend.Keyframes != nil {
		out.Theme.Extend.Keyframes = make(map[string]Keyframes, len(c.Theme.Extend.Keyframes))
		for name, frames := range c.Theme.Extend.Keyframes {
			out.Theme.Extend.Keyframes[name] = frames.Clone()
		}
	}

	return out
}

// Clone returns a deep copy of k.
func (k Keyframes) Clone() Keyframes {
	if k == nil {
		return nil
	}
	out := make(Keyframes, len(k))
	for offset, decls := range k {
		var copied Declarations
		if decls != nil {
			copied = make(Declarations, len(decls))
			for prop, value := range decls {
				copied[prop] = value
			}
		}
		out[offset] = copied
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
