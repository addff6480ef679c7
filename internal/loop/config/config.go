// Package config centralizes all tunable game parameters.
package config

import "time"

// Arena - the default playfield in logical units. Terminal frontends replace
// it with the live viewport every frame.
const (
	ArenaWidth  = 1280.0
	ArenaHeight = 720.0
)

// Player reference - where the ship starts and respawns.
const (
	PlayerStartX = 640.0
	PlayerStartY = 360.0
)

// Spawning
const (
	InitialAsteroids = 5     // Big asteroids in the opening wave
	SafeRadius       = 150.0 // Minimum spawn distance from the player reference
)

// HUD
const (
	ScoreFormat = "SCORE: %d"
	ScorePanelX = 15.0
	ScorePanelY = 15.0

	GameOverTitle    = "GAME OVER"
	GameOverSubtitle = "Press R to restart"
	VictoryTitle     = "YOU WIN!"
	VictorySubtitle  = "Press R to play again"
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS

	// MaxFrameDelta caps a single simulation step after a stall.
	MaxFrameDelta = 250 * time.Millisecond
)
