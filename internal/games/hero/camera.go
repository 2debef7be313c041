package hero

import "math"

// Camera follows the hero with a look-ahead that favors the walking
// direction. X is the left edge of the view in world pixels.
type Camera struct {
	X      float64
	Focus  float64 // hero position inside the view, 0..1
	Clouds float64 // cloud layer offset, wraps at the tile width
	ready  bool
}

func (c *Camera) reset() {
	*c = Camera{Focus: 0.5}
}

// Update eases the focus ratio and the camera position toward the hero.
func (c *Camera) Update(ch *Character, in Controls, levelWidth, view, dt float64) {
	if ch == nil || view <= 0 {
		return
	}
	if c.Focus == 0 {
		c.Focus = 0.5
	}
	target := c.Focus
	switch {
	case in.Right:
		target = 1.0 / 3
	case in.Left:
		target = 0.5
	}
	c.Focus += (target - c.Focus) * 0.25

	center := ch.X + ch.HitboxWidth()/2
	desired := 0.0
	if levelWidth > view {
		desired = min(max(center-view*c.Focus, 0), levelWidth-view)
	}
	if !c.ready {
		c.X = desired
		c.ready = true
		return
	}
	c.X += (desired - c.X) * 0.15
	if math.Abs(desired-c.X) < 0.5 {
		c.X = desired
	}
}

// DriftClouds scrolls the cloud layer by 0.02 px per ms.
func (c *Camera) DriftClouds(dt, tileWidth float64) {
	if tileWidth <= 0 {
		return
	}
	c.Clouds = mod(c.Clouds+0.02*dt, tileWidth)
}

// mod is a floored modulo for floats.
func mod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += b
	}
	return r
}
