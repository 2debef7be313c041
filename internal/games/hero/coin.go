package hero

import "github.com/vovakirdan/kleiner-held/internal/config"

// CoinType is the coin metal.
type CoinType uint8

const (
	CoinCopper CoinType = iota
	CoinSilver
	CoinGold
)

// String returns the metal name.
func (t CoinType) String() string {
	switch t {
	case CoinGold:
		return "gold"
	case CoinSilver:
		return "silver"
	default:
		return "copper"
	}
}

// Coin is a collectible dropped by defeated enemies. It falls under
// gravity until it lands, then bobs in a triangle wave above the ground.
type Coin struct {
	Body
	Type   CoinType
	Value  int
	SpeedY float64

	Settled bool
	bobBase float64
	bobT    float64
}

// Physics implements Physical.
func (c *Coin) Physics() *Body {
	if c == nil {
		return nil
	}
	return &c.Body
}

// rollCoinType picks gold 10%, silver 30%, copper 60%.
func rollCoinType(rng *SimpleRNG) CoinType {
	r := rng.Float64()
	switch {
	case r > 0.9:
		return CoinGold
	case r > 0.6:
		return CoinSilver
	default:
		return CoinCopper
	}
}

func coinValue(cfg *config.CoinConfig, t CoinType) int {
	switch t {
	case CoinGold:
		return cfg.GoldValue
	case CoinSilver:
		return cfg.SilverValue
	default:
		return cfg.CopperValue
	}
}

// spawnCoins drops count coins 50 to 100px right of (x, y), clamped into
// the level, each thrown upward.
func (w *World) spawnCoins(x, y float64, count int) {
	cc := &w.cfg.Coins
	for range count {
		t := rollCoinType(w.rng)
		coin := &Coin{
			Body:  Body{Width: cc.Size, Height: cc.Size, Scale: cc.Scale},
			Type:  t,
			Value: coinValue(cc, t),
		}
		maxX := max(0, w.level.Width-coin.Width*coin.scale())
		coin.X = min(maxX, max(0, x+50+w.rng.Float64()*50))
		coin.Y = y - 20
		coin.SpeedY = -2 - w.rng.Float64()
		w.coins = append(w.coins, coin)
	}
}

// dropCount returns how many coins a kill is worth.
func (w *World) dropCount(boss bool) int {
	eco := w.cfg.Economy
	lucky := w.character != nil && w.character.Lucky
	if !boss {
		if lucky {
			return eco.LuckyEnemyDrop
		}
		return eco.EnemyDrop
	}
	if lucky {
		return eco.BossDrop + eco.LuckyBossBonus
	}
	return eco.BossDrop
}

// dropCoins spawns the kill reward at the dead actor's position.
func (w *World) dropCoins(a *Actor, boss bool) {
	if a == nil {
		return
	}
	hbW, _ := a.hitboxSize()
	w.spawnCoins(a.X+hbW/2, a.Y, w.dropCount(boss))
}

// Update falls until the coin rests on the ground, then bobs.
// dt is clamped to [0, 100].
func (c *Coin) Update(dt, groundY float64, cfg *config.CoinConfig) {
	if c == nil {
		return
	}
	dt = min(max(dt, 0), 100)
	rest := groundY - c.Height*c.scale()

	if !c.Settled {
		f := dt / 16
		c.Y += c.SpeedY * f
		c.SpeedY += cfg.Gravity * f
		if c.Y >= rest && c.SpeedY >= 0 {
			c.Y = rest
			c.SpeedY = 0
			c.Settled = true
			c.bobBase = rest
			c.bobT = 0
		}
		return
	}

	period := cfg.BobPeriodMs
	if period <= 0 {
		return
	}
	c.bobT += dt
	half := period / 2
	t := mod(c.bobT, period)
	k := t / half
	if t >= half {
		k = 1 - (t-half)/half
	}
	c.Y = c.bobBase - cfg.BobAmplitude*k
}

// collectCoins moves every coin under the hero into the purse in a single
// pass; a collected coin is gone before anything else can see it.
func (w *World) collectCoins() {
	c := w.character
	if c == nil {
		return
	}
	cr := Rect(c)
	kept := w.coins[:0]
	for _, coin := range w.coins {
		if coin == nil {
			continue
		}
		if cr.Intersects(Rect(coin)) {
			c.Coins += coin.Value
			c.AllCoins += coin.Value
			continue
		}
		kept = append(kept, coin)
	}
	clear(w.coins[len(kept):])
	w.coins = kept
}
