package loop

import (
	"fmt"

	"github.com/fcarvajalbrown/Cacaroids/internal/draw"
	"github.com/fcarvajalbrown/Cacaroids/internal/loop/config"
	"github.com/fcarvajalbrown/Cacaroids/internal/object"
)

// Draw renders the current frame: background, asteroids, bullets, ship,
// score panel and, outside of play, the end-of-game overlay.
func (g *Game) Draw(sink draw.Sink) {
	w, h := sink.Viewport()
	sink.Background(w, h)

	ctx := object.DrawContext{Sink: sink}
	for _, a := range g.asteroids {
		if !a.IsDestroyed() {
			a.Draw(ctx)
		}
	}
	for _, b := range g.bullets {
		if !b.IsDestroyed() {
			b.Draw(ctx)
		}
	}
	if !g.player.IsDestroyed() {
		g.player.Draw(ctx)
	}

	sink.Panel(draw.Panel{
		X:    config.ScorePanelX,
		Y:    config.ScorePanelY,
		Text: fmt.Sprintf(config.ScoreFormat, g.score),
	})

	switch g.state {
	case GameStateGameOver:
		sink.Overlay(config.GameOverTitle, config.GameOverSubtitle)
	case GameStateVictory:
		sink.Overlay(config.VictoryTitle, config.VictorySubtitle)
	}
}
