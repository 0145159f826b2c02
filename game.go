package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/topdown/actor"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/prefabs"
)

type Game struct {
	frames int
	debug  bool
	log    *slog.Logger
	clock  actor.Clock

	arenaName  string
	arenaFile  string
	heroPrefab string

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	scripts   *system.ScriptSystem
	render    *system.RenderSystem
	arena     entity.Arena

	watcher *prefabs.Watcher

	paused     bool
	quit       bool
	pauseUI    *ebitenui.UI
	gameOverUI *ebitenui.UI
}

func NewGame(arenaName string, debug bool, logger *slog.Logger) (*Game, error) {
	return newGame(arenaName, debug, logger, actor.ClockFunc(time.Now))
}

func newGame(arenaName string, debug bool, logger *slog.Logger, clock actor.Clock) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		debug:     debug,
		log:       logger,
		clock:     clock,
		arenaName: arenaName,
		render:    system.NewRenderSystem(),
	}
	if err := g.build(); err != nil {
		return nil, err
	}

	g.pauseUI = NewPauseUI(g)
	g.gameOverUI = NewGameOverUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// build replaces the world with a fresh copy of the arena.
func (g *Game) build() error {
	spec, err := prefabs.LoadArenaSpec(g.arenaName)
	if err != nil {
		return fmt.Errorf("game: load arena: %w", err)
	}

	g.world = ecs.NewWorld()
	g.physics = system.NewPhysicsSystem()
	g.scripts = system.NewScriptSystem(g.log)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewHeroSystem(g.log),
		g.scripts,
		g.physics,
		system.NewProjectileSystem(g.log),
		system.NewHazardSystem(g.log),
		system.NewCooldownSystem(),
		system.NewTTLSystem(),
		system.NewAnimationSystem(),
		system.NewHealthBarSystem(),
	)

	arena, err := entity.BuildArena(g.world, spec, entity.HeroDeps{Clock: g.clock, Logger: g.log})
	if err != nil {
		return fmt.Errorf("game: build arena %s: %w", spec.Name, err)
	}
	g.arena = arena
	g.arenaFile = arenaFile(g.arenaName)
	g.heroPrefab = spec.Hero.Prefab
	g.paused = false

	g.log.Info("arena ready", "arena", spec.Name, "hazards", len(arena.Hazards), "hero", arena.Hero.String())
	return nil
}

func arenaFile(name string) string {
	if strings.HasSuffix(name, ".yaml") {
		return name
	}
	return name + ".yaml"
}

func (g *Game) restart() {
	if err := g.build(); err != nil {
		g.log.Error("restart failed", "err", err)
		return
	}
	g.log.Info("restarted")
}

func (g *Game) defeated() bool {
	return g.arena.Actor != nil && g.arena.Actor.IsDefeated()
}

func (g *Game) Update() error {
	if g.quit {
		g.close()
		return ebiten.Termination
	}

	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.defeated() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.applyChanges(g.watcher.Drain())

	if g.defeated() {
		g.gameOverUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
	}

	g.scheduler.Update(g.world)
	g.drainEvents()
	return nil
}

// applyChanges reacts to edited prefab files. Hero tuning is applied to the
// live hero, scripts are recompiled and an edited arena is rebuilt.
func (g *Game) applyChanges(changes []prefabs.Change) {
	for _, c := range changes {
		switch {
		case c.Script:
			g.scripts.Invalidate(c.Name)
		case c.Name == g.arenaFile:
			g.restart()
		case c.Name == g.heroPrefab:
			spec, ok, err := prefabs.LoadComponentSpec[prefabs.HeroComponentSpec](c.Name, "hero")
			if err != nil {
				g.log.Warn("reload hero", "prefab", c.Name, "err", err)
				continue
			}
			if !ok {
				continue
			}
			if hero, ok := ecs.Get(g.world, g.arena.Hero, component.HeroComponent.Kind()); ok {
				entity.ApplyHeroTuning(hero, spec)
			}
		default:
			continue
		}
		g.world.Events().Push(ecs.Event{Kind: ecs.EventPrefabReloaded, Data: c.Name})
	}
}

func (g *Game) drainEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case ecs.EventHeroDefeated:
			g.log.Info("hero defeated", "entity", evt.Entity.String(), "frame", g.frames)
		case ecs.EventHeroDamaged:
			g.log.Info("hero damaged", "entity", evt.Entity.String(), "hp", evt.Data)
		case ecs.EventPrefabReloaded:
			g.log.Info("prefab reloaded", "file", evt.Data)
		default:
			g.log.Debug(string(evt.Kind), "entity", evt.Entity.String())
		}
	}
}

func (g *Game) close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("close watcher", "err", err)
		}
		g.watcher = nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.physics, screen)
		system.DrawHazardDebug(g.world, screen)
		system.DrawHeroDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 10, common.BaseHeight-20)
	}

	switch {
	case g.paused:
		g.pauseUI.Draw(screen)
	case g.defeated():
		g.gameOverUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
