package hero

import "testing"

// press runs n ticks of updatePowerups with in held, then one released.
func press(w *World, in Controls, n int) {
	for range n {
		w.updatePowerups(16, in)
	}
	w.updatePowerups(16, Controls{})
}

func TestBuyHeartOnRisingEdge(t *testing.T) {
	w := newTestWorld(t)
	c := w.Character()
	c.Coins = 50

	press(w, Controls{BuyHeart: true}, 3)

	if c.Hearts != 1 || c.Coins != 0 {
		t.Errorf("hearts=%d coins=%d, expected 1 and 0", c.Hearts, c.Coins)
	}
}

func TestUseHeart(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		hearts     int
		coins      int
		wantHealth int
		wantHearts int
		wantCoins  int
	}{
		{"heals when enough is missing", 50, 1, 0, 80, 0, 0},
		{"heals exactly the heal amount", 70, 2, 0, 100, 1, 0},
		{"buys when too little is missing", 90, 1, 50, 90, 2, 0},
		{"nothing without hearts or coins", 40, 0, 49, 40, 0, 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			c := w.Character()
			c.Health, c.Hearts, c.Coins = tt.health, tt.hearts, tt.coins

			press(w, Controls{BuyHeart: true}, 1)

			if c.Health != tt.wantHealth || c.Hearts != tt.wantHearts || c.Coins != tt.wantCoins {
				t.Errorf("health=%d hearts=%d coins=%d, expected %d %d %d",
					c.Health, c.Hearts, c.Coins, tt.wantHealth, tt.wantHearts, tt.wantCoins)
			}
		})
	}
}

func TestBuyWeaponCapped(t *testing.T) {
	w := newTestWorld(t)
	c := w.Character()
	c.Coins = 1000

	for range 5 {
		press(w, Controls{BuyWeapon: true}, 1)
	}

	if c.WeaponLevel != 3 {
		t.Errorf("WeaponLevel = %d, expected 3", c.WeaponLevel)
	}
	if c.Coins != 400 {
		t.Errorf("Coins = %d, expected 400", c.Coins)
	}
}

func TestBuyLuckyOnce(t *testing.T) {
	w := newTestWorld(t)
	c := w.Character()
	c.Coins = 400

	press(w, Controls{BuyLucky: true}, 1)
	press(w, Controls{BuyLucky: true}, 1)

	if !c.Lucky || c.Coins != 250 {
		t.Errorf("lucky=%v coins=%d, expected true and 250", c.Lucky, c.Coins)
	}
}

func TestInvulnLifecycle(t *testing.T) {
	w := newTestWorld(t)
	c := w.Character()
	c.Coins = 200
	eco := w.cfg.Economy

	press(w, Controls{BuyInvuln: true}, 1)
	if !c.InvulnOwned || c.InvulnActive || c.Coins != 0 {
		t.Fatalf("owned=%v active=%v coins=%d, expected bought but inactive", c.InvulnOwned, c.InvulnActive, c.Coins)
	}

	w.updatePowerups(16, Controls{BuyInvuln: true})
	if !c.InvulnActive || c.InvulnTimer != eco.InvulnDurationMs {
		t.Fatalf("active=%v timer=%v, expected active for %v", c.InvulnActive, c.InvulnTimer, eco.InvulnDurationMs)
	}

	for range 30 {
		w.updatePowerups(100, Controls{})
	}
	if c.InvulnActive {
		t.Fatal("invulnerability should expire after its duration")
	}
	if c.InvulnCooldown != eco.InvulnCooldownMs {
		t.Errorf("cooldown = %v, expected %v", c.InvulnCooldown, eco.InvulnCooldownMs)
	}

	press(w, Controls{BuyInvuln: true}, 1)
	if c.InvulnActive {
		t.Error("activation during cooldown should be ignored")
	}

	c.InvulnCooldown = 0
	press(w, Controls{BuyInvuln: true}, 1)
	if !c.InvulnActive {
		t.Error("activation after cooldown should succeed")
	}
}
