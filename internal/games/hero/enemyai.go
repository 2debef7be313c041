package hero

import (
	"math"

	"github.com/vovakirdan/kleiner-held/internal/core"
)

// aiContext is what one AI decision knows about the actor and the hero.
type aiContext struct {
	er, cr     core.Rect
	ecx, ccx   float64
	dist       float64
	reach      float64
	inRange    bool
	facingLeft bool
}

func buildContext(c *Character, self Physical, reach float64) aiContext {
	er, cr := Rect(self), Rect(c)
	ecx, ccx := er.CenterX(), cr.CenterX()
	dist := math.Abs(ccx - ecx)
	return aiContext{
		er:         er,
		cr:         cr,
		ecx:        ecx,
		ccx:        ccx,
		dist:       dist,
		reach:      reach,
		inRange:    dist <= reach,
		facingLeft: ccx < ecx,
	}
}

func orFloat(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

func orInt(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// stepToward faces the hero and walks toward it unless in range or hurt.
func stepToward(a *Actor, ctx aiContext, speed, dt float64) {
	a.FacingLeft = ctx.facingLeft
	if ctx.inRange || a.Hurt {
		return
	}
	dir := -1.0
	if ctx.ccx > ctx.ecx {
		dir = 1
	}
	a.X += dir * speed * dt / 16
}

// tryAttack starts an attack when in range, unhurt, off cooldown and not
// already swinging. The swing hits if the reach strip overlaps the hero.
func (w *World) tryAttack(a *Actor, ctx aiContext, damage int, cooldown, offAfter float64) {
	if !ctx.inRange || a.Hurt {
		return
	}
	if a.AttackCooldown > 0 || a.Attacking {
		return
	}

	a.Attacking = true
	a.Anim.Set(StateAttack, true)
	w.play(SoundSpear)

	if reachRect(ctx.er, ctx.reach, ctx.facingLeft).Intersects(ctx.cr) {
		w.damage(w.character, damage)
	}

	a.AttackCooldown = cooldown
	w.sched.After(offAfter, func() { a.Attacking = false })
}

// updateEnemy runs one AI tick for a regular enemy.
func (w *World) updateEnemy(e *Enemy, dt float64) {
	if w.character == nil || e == nil || e.IsDead() {
		return
	}
	ai := w.cfg.AI
	ctx := buildContext(w.character, e, orFloat(e.AttackRange, ai.EnemyRange))

	stepToward(&e.Actor, ctx, orFloat(e.Speed, 1), dt)
	e.AttackCooldown = max(0, e.AttackCooldown-dt)
	w.tryAttack(&e.Actor, ctx, orInt(e.AttackDamage, ai.EnemyDamage), ai.EnemyCooldownMs, ai.EnemyAttackOffMs)
}

// preCueBoss plays the boss's vocal cue once the hero comes within its
// sound range, before the boss has aggroed.
func (w *World) preCueBoss() {
	b, c := w.boss, w.character
	if b == nil || c == nil || b.AudioCued {
		return
	}
	if math.Abs(c.X-b.X) > orFloat(b.SoundRange, w.cfg.AI.SoundRange) {
		return
	}
	key := b.Kind.SoundKey()
	if key == "" {
		return
	}
	w.play(key)
	b.AudioCued = true
}

// aggroRange is the hero distance at which a boss wakes up.
func (w *World) aggroRange() float64 {
	return max(w.cfg.AI.AggroMin, w.cfg.View.Width*w.cfg.AI.AggroViewFactor)
}

// updateBoss runs one AI tick for the boss. The boss stays passive until
// the hero comes within aggro range; the latch never resets.
func (w *World) updateBoss(b *Boss, dt float64) {
	if w.character == nil || b == nil || b.IsDead() {
		return
	}
	ai := w.cfg.AI
	ctx := buildContext(w.character, b, orFloat(b.AttackRange, ai.BossRange))

	if !b.Aggro && ctx.dist <= w.aggroRange() {
		b.Aggro = true
		if !b.AudioCued {
			w.play(b.Kind.SoundKey())
			b.AudioCued = true
		}
		if w.log != nil {
			w.log.Info("boss aggro", "boss", b.Kind, "level", w.levelIndex+1)
		}
	}
	if !b.Aggro {
		return
	}

	stepToward(&b.Actor, ctx, orFloat(b.Speed, ai.BossSpeed), dt)
	b.AttackCooldown = max(0, b.AttackCooldown-dt)
	w.tryAttack(&b.Actor, ctx, orInt(b.AttackDamage, ai.BossDamage), ai.BossCooldownMs, ai.BossAttackOffMs)
}

// cleanupDead books every death exactly once (defeat counter, coin drop,
// death sound) and removes dead enemies. A dead boss stays in the world
// until its death animation has finished.
func (w *World) cleanupDead() {
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if e == nil {
			continue
		}
		dead := e.IsDead() || e.Health <= 0
		if dead {
			e.Die()
			if e.Life == Dead {
				w.countKill(&e.Actor, false)
			}
			continue
		}
		kept = append(kept, e)
	}
	clear(w.enemies[len(kept):])
	w.enemies = kept

	b := w.boss
	if b == nil || (!b.IsDead() && b.Health > 0) {
		return
	}
	b.Die()
	if b.Life == Dead {
		w.countKill(&b.Actor, true)
	}
	if b.Anim.DeathComplete {
		w.boss = nil
	}
}

func (w *World) countKill(a *Actor, boss bool) {
	a.Life = Counted
	w.defeated++
	w.runDefeated++
	w.dropCoins(a, boss)
	w.play(SoundDeath)
}

// handleRespawns spawns due enemies and tops the queue up to the target
// count. Disabled once the boss has aggroed.
func (w *World) handleRespawns() {
	if !w.autoRespawn {
		return
	}
	now := w.sched.Now()
	for i := len(w.pending) - 1; i >= 0; i-- {
		if w.pending[i] <= now {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			w.spawnEnemyAtEdge()
		}
	}
	w.scheduleRespawns(now)
}

// scheduleRespawns queues one timestamp per missing enemy, each
// RespawnDelayMs plus up to RespawnJitterMs in the future.
func (w *World) scheduleRespawns(now float64) {
	ai := w.cfg.AI
	for n := len(w.enemies) + len(w.pending); n < w.targetEnemies; n++ {
		w.pending = append(w.pending, now+ai.RespawnDelayMs+w.rng.Float64()*ai.RespawnJitterMs)
	}
}

// spawnEnemyAtEdge adds a roster enemy near the far end of the level.
func (w *World) spawnEnemyAtEdge() {
	x := max(0, w.level.Width-w.cfg.AI.SpawnEdgeOffset)
	e := newEnemy(&w.cfg, w.level.Roster.Enemy, x, w.level.GroundY, w.rng)
	w.faceCharacter(&e.Body)
	w.enemies = append(w.enemies, e)
}

func (w *World) faceCharacter(b *Body) {
	if w.character == nil {
		return
	}
	b.FacingLeft = b.X > w.character.X
}
