package hero

import "github.com/vovakirdan/kleiner-held/internal/core"

// defaultWeaponDamage is the damage per weapon level when config has none.
var defaultWeaponDamage = []int{10, 13, 16, 20}

// DamageForLevel returns the player's damage for a weapon level,
// clamping the level into the table.
func DamageForLevel(table []int, level int) int {
	if len(table) == 0 {
		table = defaultWeaponDamage
	}
	return table[core.Clamp(level, 0, len(table)-1)]
}

// reachRect builds the strip in front of a hitbox that an attack covers.
func reachRect(r core.Rect, reach float64, facingLeft bool) core.Rect {
	x := r.Right()
	if facingLeft {
		x = r.X - reach
	}
	return core.Rect{X: x, Y: r.Y, W: reach, H: r.H}
}

// PlayerAttack resolves one swing of the hero: every living enemy and the
// living boss inside the reach strip takes weapon damage; enemies are
// knocked back, the boss is not. No-op without a living hero.
func (w *World) PlayerAttack(kind State) {
	c := w.character
	if c == nil || c.IsDead() {
		return
	}
	w.play(SoundSword)

	dmg := DamageForLevel(w.cfg.Combat.WeaponDamage, c.WeaponLevel)
	reach := c.AttackRange
	if reach <= 0 {
		reach = w.cfg.AI.EnemyRange
	}
	atk := reachRect(Rect(c), reach, c.FacingLeft)

	var hits []Damageable
	for _, e := range w.enemies {
		if e != nil && !e.IsDead() && atk.Intersects(Rect(e)) {
			hits = append(hits, e)
		}
	}
	if b := w.boss; b != nil && !b.IsDead() && atk.Intersects(Rect(b)) {
		hits = append(hits, b)
	}

	for _, t := range hits {
		w.damage(t, dmg)
		if _, isBoss := t.(*Boss); !isBoss {
			w.ApplyKnockback(t, c, w.cfg.Combat.Knockback)
		}
	}
	if len(hits) > 0 && w.log != nil {
		w.log.Debug("player attack", "kind", kind, "damage", dmg, "hits", len(hits))
	}
}

// ApplyKnockback pushes target horizontally away from source's center by
// amount, then clamps it into the level. A target centered exactly on the
// source is pushed right.
func (w *World) ApplyKnockback(target, source Physical, amount float64) {
	if target == nil || target.Physics() == nil {
		return
	}
	tb := target.Physics()
	from := tb.CenterX()
	if source != nil && source.Physics() != nil {
		from = source.Physics().CenterX()
	}
	dir := 1.0
	if tb.CenterX() < from {
		dir = -1
	}
	tb.X += dir * amount
	w.clampX(tb)
}

// damage applies a hit and schedules the hurt flag to clear.
func (w *World) damage(t Damageable, amount int) {
	if t == nil {
		return
	}
	a := t.Stats()
	if a == nil {
		return
	}
	if a.TakeDamage(amount) {
		w.sched.After(w.cfg.Combat.HurtMs, func() { a.Hurt = false })
	}
}
