package hero

// powerupLatches remembers the last pressed state of each purchase key.
// They belong to the world, so two worlds never share edge state.
type powerupLatches struct {
	heart, weapon, lucky, invuln bool
}

// edge reports a rising edge and records the new state.
func edge(latch *bool, now bool) bool {
	was := *latch
	*latch = now
	return now && !was
}

// updatePowerups runs the invulnerability timers, then fires at most one
// action per purchase key on its rising edge.
func (w *World) updatePowerups(dt float64, in Controls) {
	c := w.character
	if c == nil {
		return
	}
	eco := w.cfg.Economy

	if c.InvulnActive {
		c.InvulnTimer = max(0, c.InvulnTimer-dt)
		if c.InvulnTimer <= 0 {
			c.InvulnActive = false
			c.InvulnCooldown = eco.InvulnCooldownMs
		}
	} else {
		c.InvulnCooldown = max(0, c.InvulnCooldown-dt)
	}

	l := &w.powerups
	if edge(&l.heart, in.BuyHeart) {
		w.useHeart()
	}
	if edge(&l.weapon, in.BuyWeapon) {
		if c.WeaponLevel < eco.MaxWeaponLevel && c.Coins >= eco.WeaponPrice {
			c.Coins -= eco.WeaponPrice
			c.WeaponLevel++
		}
	}
	if edge(&l.lucky, in.BuyLucky) {
		if !c.Lucky && c.Coins >= eco.LuckyPrice {
			c.Coins -= eco.LuckyPrice
			c.Lucky = true
		}
	}
	if edge(&l.invuln, in.BuyInvuln) {
		switch {
		case !c.InvulnOwned && c.Coins >= eco.InvulnPrice:
			c.Coins -= eco.InvulnPrice
			c.InvulnOwned = true
		case c.InvulnOwned && !c.InvulnActive && c.InvulnCooldown <= 0:
			c.InvulnActive = true
			c.InvulnTimer = eco.InvulnDurationMs
		}
	}
}

// useHeart heals with a stored heart when enough health is missing,
// otherwise buys one.
func (w *World) useHeart() {
	c := w.character
	eco := w.cfg.Economy
	missing := max(0, c.MaxHealth-c.Health)
	switch {
	case c.Hearts > 0 && missing >= eco.HealAmount:
		c.Health = min(c.MaxHealth, c.Health+eco.HealAmount)
		c.Hearts--
	case c.Coins >= eco.HeartPrice:
		c.Coins -= eco.HeartPrice
		c.Hearts++
	}
}
