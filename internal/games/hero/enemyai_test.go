package hero

import "testing"

func TestEnemyMovesTowardHero(t *testing.T) {
	w := newTestWorld(t)
	emptyLevel(w)
	e := testEnemy(w, 1000)
	e.Speed = 2
	x := e.X

	w.updateEnemy(e, 32)

	if want := x - 4; e.X != want {
		t.Errorf("enemy x = %v, expected %v", e.X, want)
	}
	if !e.FacingLeft {
		t.Error("enemy right of the hero should face left")
	}
}

func TestEnemyAttackCycle(t *testing.T) {
	rec := &recorder{}
	w := newTestWorld(t, WithAudio(rec))
	emptyLevel(w)
	c := w.Character()
	e := testEnemy(w, 120)

	w.updateEnemy(e, 16)

	if !e.Attacking {
		t.Fatal("enemy in range should attack")
	}
	if e.Anim.State != StateAttack {
		t.Errorf("state = %v, expected attack", e.Anim.State)
	}
	if want := c.MaxHealth - w.cfg.Enemies.Lizard.AttackDamage; c.Health != want {
		t.Errorf("hero health = %d, expected %d", c.Health, want)
	}
	if e.AttackCooldown != w.cfg.AI.EnemyCooldownMs {
		t.Errorf("cooldown = %v, expected %v", e.AttackCooldown, w.cfg.AI.EnemyCooldownMs)
	}
	if rec.count(SoundSpear) != 1 {
		t.Errorf("spear played %d times, expected 1", rec.count(SoundSpear))
	}

	// Still cooling down: no second hit.
	hp := c.Health
	c.Hurt = false
	w.updateEnemy(e, 16)
	if c.Health != hp {
		t.Errorf("enemy hit again during cooldown: health %d", c.Health)
	}

	w.sched.Advance(w.cfg.AI.EnemyAttackOffMs)
	if e.Attacking {
		t.Error("attack flag should clear after the attack-off delay")
	}
}

func TestEnemyDamageFallback(t *testing.T) {
	w := newTestWorld(t)
	emptyLevel(w)
	c := w.Character()
	e := testEnemy(w, 120)
	e.AttackDamage = 0

	w.updateEnemy(e, 16)

	if want := c.MaxHealth - w.cfg.AI.EnemyDamage; c.Health != want {
		t.Errorf("hero health = %d, expected %d", c.Health, want)
	}
}

func TestEnemyHurtDoesNotAttack(t *testing.T) {
	w := newTestWorld(t)
	emptyLevel(w)
	e := testEnemy(w, 120)
	e.Hurt = true

	w.updateEnemy(e, 16)

	if e.Attacking {
		t.Error("a hurt enemy should not attack")
	}
}

func TestBossAggroGate(t *testing.T) {
	rec := &recorder{}
	w := newTestWorld(t, WithAudio(rec))
	emptyLevel(w)
	c := w.Character()
	b := testBoss(w, 5000)
	x := b.X

	w.updateBoss(b, 16)
	if b.Aggro || b.X != x {
		t.Fatal("boss far away should stay passive")
	}

	c.X = b.X - 500
	w.updateBoss(b, 16)
	if !b.Aggro {
		t.Fatal("boss should aggro within range")
	}
	if rec.count(SoundBossTroll) != 1 {
		t.Errorf("troll cue played %d times, expected 1", rec.count(SoundBossTroll))
	}

	c.X = 100
	w.updateBoss(b, 16)
	if !b.Aggro {
		t.Error("aggro should never reset")
	}
	if rec.count(SoundBossTroll) != 1 {
		t.Errorf("troll cue replayed: %d", rec.count(SoundBossTroll))
	}
}

func TestBossPreCue(t *testing.T) {
	rec := &recorder{}
	w := newTestWorld(t, WithAudio(rec))
	emptyLevel(w)
	c := w.Character()
	b := testBoss(w, 5000)

	c.X = b.X - 700
	w.preCueBoss()
	if !b.AudioCued || b.Aggro {
		t.Fatalf("cued=%v aggro=%v, expected cue before aggro", b.AudioCued, b.Aggro)
	}

	w.preCueBoss()
	c.X = b.X - 100
	w.updateBoss(b, 16)
	if rec.count(SoundBossTroll) != 1 {
		t.Errorf("troll cue played %d times, expected 1", rec.count(SoundBossTroll))
	}
}

func TestAggroDisablesRespawns(t *testing.T) {
	w := newTestWorld(t)
	emptyLevel(w)
	w.autoRespawn = true
	w.targetEnemies = 3
	b := testBoss(w, 400)

	w.Update(16, Controls{})

	if !b.Aggro {
		t.Fatal("boss should aggro")
	}
	if w.autoRespawn || len(w.PendingRespawns()) != 0 {
		t.Errorf("autoRespawn=%v pending=%d, expected disabled and empty", w.autoRespawn, len(w.PendingRespawns()))
	}
}

func TestCleanupCountsOnce(t *testing.T) {
	rec := &recorder{}
	w := newTestWorld(t, WithAudio(rec))
	emptyLevel(w)
	e := testEnemy(w, 3000)
	e.Health = 0

	w.cleanupDead()
	w.cleanupDead()

	if w.Defeated() != 1 {
		t.Errorf("Defeated() = %d, expected 1", w.Defeated())
	}
	if len(w.Enemies()) != 0 {
		t.Errorf("enemies left = %d, expected 0", len(w.Enemies()))
	}
	if len(w.Coins()) != 1 {
		t.Errorf("coins dropped = %d, expected 1", len(w.Coins()))
	}
	if rec.count(SoundDeath) != 1 {
		t.Errorf("death sound played %d times, expected 1", rec.count(SoundDeath))
	}
}

func TestBossRemovedAfterDeathAnimation(t *testing.T) {
	w := newTestWorld(t)
	emptyLevel(w)
	w.Character().Lucky = true
	b := testBoss(w, 3000)
	b.Die()

	w.cleanupDead()
	if w.Boss() == nil {
		t.Fatal("boss removed before its death animation finished")
	}
	if b.Life != Counted || w.Defeated() != 1 {
		t.Errorf("life=%v defeated=%d, expected counted and 1", b.Life, w.Defeated())
	}
	if want := w.cfg.Economy.BossDrop + w.cfg.Economy.LuckyBossBonus; len(w.Coins()) != want {
		t.Errorf("boss drop = %d coins, expected %d", len(w.Coins()), want)
	}

	for !b.Anim.DeathComplete {
		b.Anim.Advance(1000)
	}
	w.cleanupDead()
	if w.Boss() != nil {
		t.Error("boss should be removed once its death animation completes")
	}
	if w.Defeated() != 1 {
		t.Errorf("Defeated() = %d after removal, expected 1", w.Defeated())
	}
}

func TestRespawnThrottling(t *testing.T) {
	w := newTestWorld(t)
	emptyLevel(w)
	w.targetEnemies = 5
	for i := range 3 {
		testEnemy(w, float64(2000+i*300))
	}
	now := w.Now()

	w.scheduleRespawns(now)

	pending := w.PendingRespawns()
	if len(pending) != 2 {
		t.Fatalf("pending = %d, expected 2", len(pending))
	}
	for _, at := range pending {
		if at < now+3000 || at >= now+7000 {
			t.Errorf("respawn at %v, expected within [%v, %v)", at, now+3000, now+7000)
		}
	}

	w.scheduleRespawns(now)
	if len(w.PendingRespawns()) != 2 {
		t.Errorf("second pass queued more: %d", len(w.PendingRespawns()))
	}
}

func TestHandleRespawnsSpawnsDue(t *testing.T) {
	w := newTestWorld(t)
	emptyLevel(w)
	w.autoRespawn = true
	w.targetEnemies = 1
	now := w.Now()
	w.pending = []float64{now - 1}

	w.handleRespawns()

	if len(w.Enemies()) != 1 {
		t.Fatalf("enemies = %d, expected 1", len(w.Enemies()))
	}
	e := w.Enemies()[0]
	if want := w.level.Width - w.cfg.AI.SpawnEdgeOffset; e.X != want {
		t.Errorf("spawn x = %v, expected %v", e.X, want)
	}
	if !e.FacingLeft {
		t.Error("spawned enemy should face the hero")
	}
	if e.Speed < w.cfg.AI.SpeedMin || e.Speed >= w.cfg.AI.SpeedMax {
		t.Errorf("speed = %v, expected in [%v, %v)", e.Speed, w.cfg.AI.SpeedMin, w.cfg.AI.SpeedMax)
	}
	if len(w.PendingRespawns()) != 0 {
		t.Errorf("pending = %d, expected 0", len(w.PendingRespawns()))
	}
}
