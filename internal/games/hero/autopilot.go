package hero

import "math"

// Autopilot is a scripted player: it walks right, fights whatever is in
// reach and spends coins on upgrades. Used for headless runs and tests.
type Autopilot struct {
	tick uint64
}

// nearestThreat returns the signed distance between sprite centers to the
// closest living enemy or boss, and whether there is one. Hitboxes mirror
// with facing, sprite centers do not.
func nearestThreat(w *World) (float64, bool) {
	c := w.Character()
	if c == nil {
		return 0, false
	}
	cx := c.CenterX()
	best, found := math.Inf(1), false
	consider := func(r float64) {
		if math.Abs(r) < math.Abs(best) {
			best, found = r, true
		}
	}
	for _, e := range w.Enemies() {
		if !e.IsDead() {
			consider(e.CenterX() - cx)
		}
	}
	if b := w.Boss(); b != nil && !b.IsDead() {
		consider(b.CenterX() - cx)
	}
	return best, found
}

// Next decides the controls for the coming tick.
func (a *Autopilot) Next(w *World) Controls {
	a.tick++
	var in Controls
	c := w.Character()
	if c == nil {
		return in
	}
	eco := w.Config().Economy
	press := a.tick%2 == 0

	in.Right = true
	if d, ok := nearestThreat(w); ok {
		reach := c.AttackRange + c.HitboxWidth()
		if math.Abs(d) <= reach {
			in.Right = false
			if (d < 0) != c.FacingLeft {
				in.Left, in.Right = d < 0, d >= 0
			} else {
				in.AttackLight = true
			}
		}
	}

	boss := w.Boss()
	bossFight := boss != nil && boss.Aggro && !boss.IsDead()

	if press {
		switch {
		case c.MaxHealth-c.Health >= eco.HealAmount && (c.Hearts > 0 || c.Coins >= eco.HeartPrice):
			in.BuyHeart = true
		case c.WeaponLevel < eco.MaxWeaponLevel && c.Coins >= eco.WeaponPrice:
			in.BuyWeapon = true
		case !c.Lucky && c.Coins >= eco.LuckyPrice:
			in.BuyLucky = true
		case bossFight && c.InvulnOwned && !c.InvulnActive && c.InvulnCooldown <= 0:
			in.BuyInvuln = true
		case !c.InvulnOwned && c.Coins >= eco.InvulnPrice+eco.HeartPrice:
			in.BuyInvuln = true
		}
	}
	return in
}

// SimResult summarizes a headless run.
type SimResult struct {
	Outcome  string // "dead", "final" or "timeout"
	Level    int
	Coins    int
	Defeated int
	Ticks    uint64
	SimMs    float64
}

// RunAutopilot plays w with an Autopilot at a fixed step until the run
// ends or maxMs of simulation time has passed.
func RunAutopilot(w *World, maxMs, step float64) (SimResult, error) {
	if step <= 0 {
		step = 16
	}
	var ap Autopilot
	res := SimResult{Outcome: "timeout"}

	for elapsed := 0.0; elapsed < maxMs; {
		switch w.Presentation().State {
		case OverlayStart, OverlayHelp:
			if err := w.NewRun(); err != nil {
				return res, err
			}
		case OverlayMapChange:
			if err := w.Confirm(); err != nil {
				return res, err
			}
		case OverlayPause:
			w.TogglePause()
		case OverlayDead, OverlayFinal:
			res.Outcome = w.Presentation().State.String()
			return res.fill(w), nil
		}
		w.Update(step, ap.Next(w))
		elapsed += step
	}
	return res.fill(w), nil
}

func (r SimResult) fill(w *World) SimResult {
	r.Level = w.LevelIndex() + 1
	r.Defeated = w.RunDefeated()
	r.Ticks = w.Tick()
	r.SimMs = w.RunTime()
	if c := w.Character(); c != nil {
		r.Coins = c.AllCoins
	}
	return r
}
