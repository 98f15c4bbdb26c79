package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/charactercore/character"
	"github.com/milk9111/charactercore/config"
	"github.com/milk9111/charactercore/levels"
	"github.com/milk9111/charactercore/physics"
	"github.com/milk9111/charactercore/prefabs"
	"github.com/milk9111/charactercore/sim"
	"github.com/milk9111/charactercore/terrain"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tileSize = 1.0

	heroName = "hero"
)

type Options struct {
	Level     string
	Debug     bool
	Watch     bool
	PrefabDir string
	// Zoom is pixels per world unit.
	Zoom float64
}

type Game struct {
	frames int

	world   *sim.World
	hero    *character.Character
	sprites *spriteSink
	watcher *prefabs.Watcher
	camera  camera

	paused  bool
	pauseUI *ebitenui.UI

	lastEvent string
}

func NewGame(opts Options) (*Game, error) {
	if opts.PrefabDir != "" {
		prefabs.Dir = opts.PrefabDir
	}

	lvl, err := levels.LoadLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", opts.Level, err)
	}
	chunk, err := terrain.FromLevel(lvl, tileSize)
	if err != nil {
		return nil, err
	}

	tuning, err := prefabs.LoadTuning(prefabs.TuningFile)
	if err != nil {
		log.Printf("failed to load tuning, using defaults: %v", err)
		tuning = physics.DefaultTuning()
	}

	actions := character.DefaultActions()
	if compiled, err := prefabs.LoadActions(prefabs.ActionsFile); err != nil {
		log.Printf("failed to load actions, using built-in set: %v", err)
	} else if fromPrefab, err := character.ActionsFrom(compiled); err != nil {
		log.Printf("incomplete action prefab, using built-in set: %v", err)
	} else {
		actions = fromPrefab
	}

	world := sim.NewWorld(nil, chunk)
	if opts.Debug {
		for _, name := range config.ToggleNames() {
			_ = world.Debug.Set(name, true)
		}
	}

	spawn := terrain.SpawnPoint(lvl, tileSize)
	sprites := &spriteSink{}
	hero, err := world.Spawn(character.Options{
		Name:    heroName,
		X:       spawn.X,
		Y:       spawn.Y,
		Tuning:  &tuning,
		Actions: actions,
		Sink:    sprites,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:   world,
		hero:    hero,
		sprites: sprites,
		camera:  newCamera(spawn, opts.Zoom),
	}
	g.pauseUI = newPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	g.toggleDebug()
	g.pollReload()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.SetIntent(g.hero, readIntent())
	g.world.Step()

	for _, evt := range g.world.Events().Drain() {
		g.lastEvent = fmt.Sprintf("%s @%d", evt.Kind, evt.Tick)
		if g.world.Debug.DrawMovementInputs {
			log.Printf("%s: %s at tick %d", evt.Character, evt.Kind, evt.Tick)
		}
	}

	g.camera.follow(g.hero.Transform.Position, g.world.Debug.FastInspector)
	return nil
}

var debugKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyF1, config.ToggleMovementCollision},
	{ebiten.KeyF2, config.ToggleMovementInputs},
	{ebiten.KeyF3, config.ToggleTerrainCollision},
	{ebiten.KeyF4, config.ToggleAttackHitShapes},
	{ebiten.KeyF5, config.ToggleFastInspector},
}

func (g *Game) toggleDebug() {
	for _, k := range debugKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.toggle(k.name)
		}
	}
}

func (g *Game) toggle(name string) {
	if _, err := g.world.Debug.Toggle(name); err != nil {
		log.Print(err)
	}
}

// pollReload applies prefab changes reported by the watcher. Only tuning is
// swapped live; action changes need a restart since actions are bound to the
// character running them.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	if change.Kind != prefabs.ChangeTuning {
		log.Printf("%s prefab %s changed, restart to apply", change.Kind, change.Name())
		return
	}
	tuning, err := prefabs.LoadTuning(prefabs.TuningFile)
	if err != nil {
		log.Printf("reload tuning: %v", err)
		return
	}
	g.world.SetTuning(tuning)
	log.Printf("reloaded %s", change.Name())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawTerrain(screen)
	g.drawHero(screen)

	body := g.hero.Body
	v := body.Velocity()
	hud := fmt.Sprintf("Frames: %d    FPS: %.2f\nAction: %s  Step: %d\nGrounded: %v  Jumping: %v  WallHang: %v\nVelocity: (%.3f, %.3f)\nLast event: %s\nDebug: %v",
		g.frames, ebiten.ActualFPS(),
		g.hero.Current(), g.hero.Actioner.CurrentAction().StepIndex(),
		body.Grounded(), body.Jumping(), body.WallHanging(),
		v.X, v.Y,
		g.lastEvent,
		g.world.Debug.Enabled(),
	)
	ebitenutil.DebugPrint(screen, hud)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
