package hero

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/kleiner-held/internal/core"
)

// Visual characters for rendering
const (
	GroundTop    = '▀'
	GroundFill   = '░'
	HeroChar     = '█'
	CoinChar     = 'o'
	TreasureChar = '▣'
	CloudChar    = '~'
	SwordChar    = '─'
)

var enemyGlyphs = map[string]struct {
	r rune
	c core.Color
}{
	"lizard":   {'l', core.ColorLizard},
	"skeleton": {'s', core.ColorSkeleton},
	"minotaur": {'M', core.ColorMinotaur},
	"troll":    {'T', core.ColorTroll},
	"dragon":   {'D', core.ColorDragon},
	"demon":    {'Ψ', core.ColorDemon},
}

var coinColors = map[string]core.Color{
	"gold":   core.ColorGold,
	"silver": core.ColorSilver,
	"copper": core.ColorCopper,
}

// viewport maps world pixels inside the camera window onto screen cells.
// Row 0 is reserved for the HUD.
type viewport struct {
	camX   float64
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, camX, viewW, viewH float64) viewport {
	v := viewport{camX: camX, w: dst.Width(), h: dst.Height()}
	if viewW > 0 {
		v.sx = float64(v.w) / viewW
	}
	if viewH > 0 {
		v.sy = float64(v.h-1) / viewH
	}
	return v
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.camX) * v.sx))
}

func (v viewport) row(y float64) int {
	return 1 + int(math.Floor(y*v.sy))
}

// box converts a world rect into at least one cell.
func (v viewport) box(x, y, w, h float64) core.Box {
	b := core.Box{X: v.col(x), Y: v.row(y)}
	b.W = max(1, v.col(x+w)-b.X)
	b.H = max(1, v.row(y+h)-b.Y)
	return b
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		msg := "Kleiner Held failed to start"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, core.ColorAlert)
		return
	}
	view := g.world.Config().View
	RenderSnapshot(dst, g.world.Snapshot(), view.Width, view.Height)
}

// RenderSnapshot draws a snapshot through a viewW x viewH pixel camera.
func RenderSnapshot(dst *core.Screen, s Snapshot, viewW, viewH float64) {
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}
	v := newViewport(dst, s.CameraX, viewW, viewH)

	drawSky(dst, v, s)
	drawGround(dst, v, s.GroundY)

	le := s.LevelEnd
	dst.DrawRect(v.box(le.X, le.Y, le.W, le.H), TreasureChar, core.ColorTreasure)

	for _, b := range s.Birds {
		r := 'v'
		if b.Frame%2 == 1 {
			r = '^'
		}
		dst.SetColored(v.col(b.X), v.row(b.Y), r, core.ColorBird)
	}
	for _, c := range s.Coins {
		dst.SetColored(v.col(c.X), v.row(c.Y), CoinChar, coinColors[c.Type])
	}
	for _, e := range s.Enemies {
		drawActor(dst, v, e)
	}
	if s.Boss != nil {
		drawActor(dst, v, *s.Boss)
	}
	drawHero(dst, v, s)

	drawHUD(dst, s)
	drawOverlay(dst, s)
}

func drawSky(dst *core.Screen, v viewport, s Snapshot) {
	const spacing = 37
	off := int(s.Clouds*v.sx) % spacing
	for x := -off; x < dst.Width(); x += spacing {
		dst.DrawTextColored(x, 2, "~~~", core.ColorCloud)
		dst.DrawTextColored(x+spacing/2, 4, "~~", core.ColorCloud)
	}
}

func drawGround(dst *core.Screen, v viewport, groundY float64) {
	gy := v.row(groundY)
	dst.DrawHLine(0, gy, dst.Width(), GroundTop, core.ColorGrass)
	for y := gy + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundFill, core.ColorSoil)
	}
}

func drawActor(dst *core.Screen, v viewport, e EntitySnapshot) {
	g, ok := enemyGlyphs[e.Kind]
	if !ok {
		g.r, g.c = '?', core.ColorDefault
	}
	c := g.c
	switch e.State {
	case "hurt":
		c = core.ColorHurt
	case "death":
		c = core.ColorFallen
	}
	b := v.box(e.X, e.Y, e.W, e.H)
	dst.DrawRect(b, g.r, c)
	if e.State == "attack" {
		drawSword(dst, b, e.FacingLeft, c)
	}
}

func drawHero(dst *core.Screen, v viewport, s Snapshot) {
	h := s.Hero
	c := core.ColorHero
	switch {
	case s.Invuln:
		c = core.ColorShielded
	case h.State == "hurt":
		c = core.ColorHurt
	case h.State == "death":
		c = core.ColorFallen
	}
	b := v.box(h.X, h.Y, h.W, h.H)
	dst.DrawRect(b, HeroChar, c)

	eye := b.Right() - 1
	face := '>'
	if h.FacingLeft {
		eye, face = b.X, '<'
	}
	dst.SetColored(eye, b.Y, face, core.ColorBlade)

	if h.State == "attack" || h.State == "attack_extra" {
		drawSword(dst, b, h.FacingLeft, core.ColorBlade)
	}
}

func drawSword(dst *core.Screen, b core.Box, left bool, c core.Color) {
	y := b.Y + b.H/2
	if left {
		dst.DrawHLine(b.X-2, y, 2, SwordChar, c)
		return
	}
	dst.DrawHLine(b.Right(), y, 2, SwordChar, c)
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	p := s.Progress
	hud := fmt.Sprintf(" HP %d/%d  Coins %d  Hearts %d  Weapon %d", s.Hero.Health, s.Hero.MaxHealth, p.Coins, p.Hearts, p.WeaponLevel)
	if p.Lucky {
		hud += "  Lucky"
	}
	if p.InvulnOwned {
		switch {
		case s.Invuln:
			hud += fmt.Sprintf("  Shield %.0fs", math.Ceil(p.InvulnTimer/1000))
		case p.InvulnCooldown > 0:
			hud += fmt.Sprintf("  Shield in %.0fs", math.Ceil(p.InvulnCooldown/1000))
		default:
			hud += "  Shield ready"
		}
	}
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)

	right := fmt.Sprintf("Level %d  Kills %d ", s.Level, s.Defeated)
	if s.Boss != nil && s.Boss.Health > 0 {
		right = fmt.Sprintf("%s %d  ", s.Boss.Kind, s.Boss.Health) + right
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorHUDAccent)
}

// overlayLines returns the title and body of a presentation state.
func overlayLines(s Snapshot) (string, []string) {
	st := s.Stats
	switch s.Overlay {
	case "start":
		return "KLEINER HELD", []string{
			"Walk right, defeat the boss, reach the treasure.",
			"",
			"Enter: start    H: controls",
		}
	case "help":
		return "CONTROLS", []string{
			"A/D or arrows  move       Space/Up  jump",
			"E  attack      Q  heavy attack",
			"W  heart (buy/heal)       1  weapon upgrade",
			"2  lucky charm            3  shield (buy/use)",
			"P  pause   M  mute   Ctrl+C  quit",
			"",
			"Enter: back",
		}
	case "pause":
		return "PAUSED", []string{"P: resume    H: controls"}
	case "dead":
		return "YOU DIED", []string{
			fmt.Sprintf("Coins %d    Enemies defeated %d", st.TotalCoins, st.RunDefeated),
			"",
			"Enter: try again",
		}
	case "mapChange":
		return "LEVEL COMPLETE", []string{
			fmt.Sprintf("Coins %d    Enemies defeated %d", st.TotalCoins, st.EnemiesDefeated),
			"",
			fmt.Sprintf("Enter: continue to level %d", s.NextLevel),
		}
	case "final":
		return "VICTORY", []string{
			"The treasure is yours.",
			fmt.Sprintf("Coins %d    Enemies defeated %d", st.TotalCoins, st.RunDefeated),
			"",
			"Enter: play again",
		}
	}
	return "", nil
}

// drawOverlay draws a centered panel for every non-gameplay state.
func drawOverlay(dst *core.Screen, s Snapshot) {
	title, lines := overlayLines(s)
	if title == "" {
		return
	}
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, dst.Width())
	boxH := min(len(lines)+4, dst.Height())
	box := core.Box{X: (dst.Width() - boxW) / 2, Y: (dst.Height() - boxH) / 2, W: boxW, H: boxH}

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorPanel)
	dst.DrawTextCentered(box.Y+1, title, core.ColorPanelTitle)
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorPanelText)
	}
}
