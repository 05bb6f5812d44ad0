package config

import (
	"fmt"

	"github.com/andyrewlee/valuepicker/internal/geom"
	"github.com/andyrewlee/valuepicker/internal/picker"
)

// Insets are paddings in points.
type Insets struct {
	Top      float64 `json:"top" yaml:"top"`
	Leading  float64 `json:"leading" yaml:"leading"`
	Bottom   float64 `json:"bottom" yaml:"bottom"`
	Trailing float64 `json:"trailing" yaml:"trailing"`
}

func (i Insets) geom() geom.Insets {
	return geom.Insets{Top: i.Top, Leading: i.Leading, Bottom: i.Bottom, Trailing: i.Trailing}
}

// AnimationSettings override the capsule spring. Unset fields keep the
// inherited value.
type AnimationSettings struct {
	Duration *float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
	Bounce   *float64 `json:"bounce,omitempty" yaml:"bounce,omitempty"`
}

// PickerSettings are the file overrides for picker styling and motion.
type PickerSettings struct {
	ContainerShape   string             `json:"container_shape,omitempty" yaml:"container_shape,omitempty"`
	ItemShape        string             `json:"item_shape,omitempty" yaml:"item_shape,omitempty"`
	CornerRadius     float64            `json:"corner_radius,omitempty" yaml:"corner_radius,omitempty"`
	ContainerPadding *Insets            `json:"container_padding,omitempty" yaml:"container_padding,omitempty"`
	ItemPadding      *Insets            `json:"item_padding,omitempty" yaml:"item_padding,omitempty"`
	CapsuleNudge     *float64           `json:"capsule_nudge,omitempty" yaml:"capsule_nudge,omitempty"`
	Animation        *AnimationSettings `json:"animation,omitempty" yaml:"animation,omitempty"`
}

// Validate rejects unknown shape names and negative sizes.
func (p PickerSettings) Validate() error {
	for _, name := range []string{p.ContainerShape, p.ItemShape} {
		if _, ok := picker.ShapeByName(name, p.CornerRadius); !ok {
			return fmt.Errorf("unknown shape %q", name)
		}
	}
	if p.CornerRadius < 0 {
		return fmt.Errorf("corner_radius must not be negative")
	}
	for name, in := range map[string]*Insets{"container_padding": p.ContainerPadding, "item_padding": p.ItemPadding} {
		if in != nil && (in.Top < 0 || in.Leading < 0 || in.Bottom < 0 || in.Trailing < 0) {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	if a := p.Animation; a != nil {
		if a.Duration != nil && *a.Duration < 0 {
			return fmt.Errorf("animation duration must not be negative")
		}
		if a.Bounce != nil && (*a.Bounce < -1 || *a.Bounce > 1) {
			return fmt.Errorf("animation bounce must be within [-1, 1]")
		}
	}
	return nil
}

// Apply derives a picker scope from parent with these overrides.
func (p PickerSettings) Apply(parent picker.Config) picker.Config {
	var opts []picker.Option
	if p.ContainerShape != "" {
		if s, ok := picker.ShapeByName(p.ContainerShape, p.CornerRadius); ok {
			opts = append(opts, picker.WithContainerShape(s))
		}
	}
	if p.ItemShape != "" {
		if s, ok := picker.ShapeByName(p.ItemShape, p.CornerRadius); ok {
			opts = append(opts, picker.WithItemShape(s))
		}
	}
	if p.ContainerPadding != nil {
		in := p.ContainerPadding.geom()
		opts = append(opts, picker.WithContainerPadding(&in))
	}
	if p.ItemPadding != nil {
		in := p.ItemPadding.geom()
		opts = append(opts, picker.WithItemPadding(&in))
	}
	if p.CapsuleNudge != nil {
		opts = append(opts, picker.WithCapsuleNudge(*p.CapsuleNudge))
	}
	if a := p.Animation; a != nil {
		prof := parent.Animation
		if a.Duration != nil {
			prof.Duration = *a.Duration
		}
		if a.Bounce != nil {
			prof.Bounce = *a.Bounce
		}
		opts = append(opts, picker.WithAnimation(prof))
	}
	return parent.With(opts...)
}
