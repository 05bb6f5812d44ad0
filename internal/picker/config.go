package picker

import (
	"github.com/andyrewlee/valuepicker/internal/anim"
	"github.com/andyrewlee/valuepicker/internal/geom"
)

// Default paddings, in points.
var (
	DefaultContainerPadding = geom.UniformInsets(6)
	DefaultItemPadding      = geom.Insets{Top: 8, Leading: 12, Bottom: 8, Trailing: 12}
)

// DefaultCapsuleNudge lifts the capsule above the item's top edge.
const DefaultCapsuleNudge = 8

// PreselectThreshold is the overlap percentage at which a dragged capsule
// snaps onto an item.
const PreselectThreshold = 25

// Config is the picker's styling and motion surface. Values are scoped: a
// subtree derives its own Config from its parent's with With, inheriting
// every field it does not override.
type Config struct {
	ContainerShape   Shape
	ItemShape        Shape
	ContainerPadding geom.Insets
	ItemPadding      geom.Insets
	CapsuleNudge     float64
	Animation        anim.Profile
}

// DefaultConfig returns the root scope.
func DefaultConfig() Config {
	return Config{
		ContainerShape:   Capsule{},
		ItemShape:        Capsule{},
		ContainerPadding: DefaultContainerPadding,
		ItemPadding:      DefaultItemPadding,
		CapsuleNudge:     DefaultCapsuleNudge,
		Animation:        anim.DefaultProfile,
	}
}

// Option overrides one field of a scope.
type Option func(*Config)

// With derives a child scope from c.
func (c Config) With(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithContainerShape sets the background shape. A nil shape keeps the
// inherited one.
func WithContainerShape(s Shape) Option {
	return func(c *Config) {
		if s != nil {
			c.ContainerShape = s
		}
	}
}

// WithItemShape sets the capsule shape. A nil shape keeps the inherited one.
func WithItemShape(s Shape) Option {
	return func(c *Config) {
		if s != nil {
			c.ItemShape = s
		}
	}
}

// WithContainerPadding sets the container insets; nil restores the default.
func WithContainerPadding(in *geom.Insets) Option {
	return func(c *Config) {
		if in == nil {
			c.ContainerPadding = DefaultContainerPadding
			return
		}
		c.ContainerPadding = *in
	}
}

// WithItemPadding sets the per-item insets; nil restores the default.
func WithItemPadding(in *geom.Insets) Option {
	return func(c *Config) {
		if in == nil {
			c.ItemPadding = DefaultItemPadding
			return
		}
		c.ItemPadding = *in
	}
}

// WithCapsuleNudge sets how far the capsule sits above the item.
func WithCapsuleNudge(v float64) Option {
	return func(c *Config) { c.CapsuleNudge = v }
}

// WithAnimation sets the transition spring.
func WithAnimation(p anim.Profile) Option {
	return func(c *Config) { c.Animation = p }
}
