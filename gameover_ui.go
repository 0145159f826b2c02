package main

import "github.com/ebitenui/ebitenui"

// NewGameOverUI is shown once the hero is defeated.
func NewGameOverUI(g *Game) *ebitenui.UI {
	return newMenuUI("Defeated", "R to restart",
		menuButton{label: "Restart", onClick: g.restart},
		menuButton{label: "Quit", onClick: func() { g.quit = true }},
	)
}
