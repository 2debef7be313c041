package core

// Color names what a screen cell shows rather than how it looks.
// The platform renderer owns the palette for each role.
type Color uint8

const (
	ColorDefault Color = iota

	// Scenery
	ColorCloud
	ColorGrass
	ColorSoil
	ColorBird
	ColorTreasure

	// Actors
	ColorHero
	ColorShielded
	ColorHurt
	ColorFallen
	ColorBlade
	ColorLizard
	ColorSkeleton
	ColorMinotaur
	ColorTroll
	ColorDragon
	ColorDemon

	// Coins
	ColorGold
	ColorSilver
	ColorCopper

	// HUD and overlay panels
	ColorHUD
	ColorHUDAccent
	ColorPanel
	ColorPanelTitle
	ColorPanelText
	ColorAlert

	// NumColors is the number of color roles.
	NumColors
)
