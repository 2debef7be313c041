// Package hero implements Kleiner Held, a side-scrolling action platformer:
// a hero walks through three levels, fights enemies and a boss per level,
// collects coins and buys upgrades.
//
// The World owns the authoritative simulation state and advances it one
// tick at a time. Rendering, audio and input are collaborators behind small
// interfaces so the simulation stays deterministic and testable.
package hero

import "github.com/vovakirdan/kleiner-held/internal/core"

// Hitbox describes a collision box relative to the sprite, before scaling.
// Zero Width or Height fall back to the sprite size.
type Hitbox struct {
	Width, Height    float64
	OffsetX, OffsetY float64
	OffsetXLeft      *float64 // explicit offset when facing left; mirrored from OffsetX if nil
	Centered         bool     // center on the wider of sprite and hitbox
	NoMirror         bool     // keep OffsetX when facing left
}

// Body is the positional state shared by everything that collides.
// Y grows downward; (X, Y) is the sprite's top-left corner.
type Body struct {
	X, Y          float64
	Width, Height float64
	Scale         float64
	Hitbox        Hitbox
	FacingLeft    bool
}

// Physical is implemented by every entity that has a hitbox.
// Physics may return nil for an absent entity.
type Physical interface {
	Physics() *Body
}

// Physics returns the body itself.
func (b *Body) Physics() *Body {
	return b
}

func (b *Body) scale() float64 {
	if b.Scale == 0 {
		return 1
	}
	return b.Scale
}

func (b *Body) hitboxSize() (w, h float64) {
	w, h = b.Hitbox.Width, b.Hitbox.Height
	if w == 0 {
		w = b.Width
	}
	if h == 0 {
		h = b.Height
	}
	return w, h
}

// HitboxWidth returns the scaled hitbox width.
func (b *Body) HitboxWidth() float64 {
	w, _ := b.hitboxSize()
	return w * b.scale()
}

// Rect computes the hitbox in world space from the current position,
// scale and facing. It is never cached.
func (b *Body) Rect() core.Rect {
	if b == nil {
		return core.Rect{}
	}
	sc := b.scale()
	hbW, hbH := b.hitboxSize()
	refW := max(b.Width, hbW)
	hb := b.Hitbox

	var x float64
	switch {
	case hb.Centered:
		x = b.X - (hbW-refW)/2 + hb.OffsetX*sc
	case b.FacingLeft && hb.OffsetXLeft != nil:
		x = b.X + *hb.OffsetXLeft*sc
	case b.FacingLeft && !hb.NoMirror:
		x = b.X + (refW-(hb.OffsetX+hbW))*sc
	default:
		x = b.X + hb.OffsetX*sc
	}

	return core.Rect{
		X: x,
		Y: b.Y + hb.OffsetY*sc,
		W: hbW * sc,
		H: hbH * sc,
	}
}

// CenterX returns the horizontal center of the scaled sprite box.
func (b *Body) CenterX() float64 {
	return b.X + b.Width*b.scale()/2
}

// Rect returns the hitbox of p, or a zero rect when p is absent.
func Rect(p Physical) core.Rect {
	if p == nil {
		return core.Rect{}
	}
	return p.Physics().Rect()
}

// Intersects reports strict AABB overlap of two hitboxes.
func Intersects(a, b Physical) bool {
	if a == nil || b == nil || a.Physics() == nil || b.Physics() == nil {
		return false
	}
	return Rect(a).Intersects(Rect(b))
}
