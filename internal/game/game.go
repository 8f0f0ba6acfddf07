package game

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/times-circle/internal/audio"
	"github.com/iburimskiy/times-circle/internal/config"
	"github.com/iburimskiy/times-circle/internal/pattern"
	"github.com/iburimskiy/times-circle/internal/view"
)

// Game hosts a pattern in an ebiten window. Config changes from the file
// watcher, the hotkeys and audio loudness are all applied on the ebiten
// update goroutine, so the pattern itself is only touched from one place.
type Game struct {
	pattern *pattern.Pattern
	camera  *view.Camera
	log     *slog.Logger
	updates <-chan config.Config

	player  *player
	picked  chan string
	picking bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// New wires a game around p. updates may be nil when no config file is
// watched.
func New(p *pattern.Pattern, log *slog.Logger, updates <-chan config.Config) *Game {
	return &Game{
		pattern: p,
		camera:  view.NewCamera(config.DefaultScale),
		log:     log,
		updates: updates,
		player:  newPlayer(),
		picked:  make(chan string, 1),
		prevKey: map[ebiten.Key]bool{},
	}
}

// Play starts the audio file at path; its loudness scales the sweep tempo.
func (g *Game) Play(path string) error {
	if err := g.player.load(path); err != nil {
		return err
	}
	g.log.Info("playing audio", "path", path)
	return nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.applyUpdates()
	g.handlePicked()

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.player.stop()
		return ebiten.Termination
	}

	cfg := g.pattern.Config()
	changed := true
	switch {
	case justPressed(ebiten.KeySpace):
		cfg.Animate = !cfg.Animate
	case justPressed(ebiten.KeyD):
		cfg.ThreeDimensional = !cfg.ThreeDimensional
	case justPressed(ebiten.KeyC):
		cfg.ColorMode = !cfg.ColorMode
	case justPressed(ebiten.KeyS):
		cfg.Smooth = !cfg.Smooth
	case justPressed(ebiten.KeyEqual), justPressed(ebiten.KeyKPAdd):
		cfg.N++
	case justPressed(ebiten.KeyMinus), justPressed(ebiten.KeyKPSubtract):
		cfg.N--
	case justPressed(ebiten.KeyBracketRight):
		cfg.M++
	case justPressed(ebiten.KeyBracketLeft):
		cfg.M--
	default:
		changed = false
	}
	if changed {
		g.pattern.Validate(cfg)
		g.log.Debug("config changed from keyboard", "config", g.pattern.Config())
	}

	if justPressed(ebiten.KeyO) {
		g.pickAudio()
	}
	if justPressed(ebiten.KeyP) {
		g.player.togglePause()
	}

	g.handleCamera()

	if g.player.playing() {
		level := g.player.level()
		g.pattern.SetTempo(float32(1 + config.TempoGain*clamp01(level)))
	} else {
		g.pattern.SetTempo(1)
	}

	g.pattern.Update()
	return nil
}

// applyUpdates hands every pending reload to the pattern.
func (g *Game) applyUpdates() {
	for {
		select {
		case cfg, ok := <-g.updates:
			if !ok {
				g.updates = nil
				return
			}
			g.pattern.Validate(cfg)
			g.log.Info("config reloaded", "config", g.pattern.Config())
		default:
			return
		}
	}
}

func (g *Game) handleCamera() {
	var dYaw, dPitch float32
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dYaw -= config.OrbitSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dYaw += config.OrbitSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dPitch += config.OrbitSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dPitch -= config.OrbitSpeed
	}
	if dYaw != 0 || dPitch != 0 {
		g.camera.Orbit(dYaw, dPitch)
	}

	if _, wheelY := ebiten.Wheel(); wheelY > 0 {
		g.camera.Zoom(config.ZoomFactor)
	} else if wheelY < 0 {
		g.camera.Zoom(1 / config.ZoomFactor)
	}
}

// pickAudio opens the file dialog without blocking the update loop. The
// chosen path arrives through g.picked.
func (g *Game) pickAudio() {
	if g.picking {
		return
	}
	g.picking = true
	go func() {
		filename, err := zenity.SelectFile(
			zenity.Title("Open Audio File"),
			zenity.FileFilters{{
				Name:     "Audio",
				Patterns: audio.Patterns,
			}},
		)
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				g.log.Error("file dialog failed", "err", err)
			}
			filename = ""
		}
		g.picked <- filename
	}()
}

func (g *Game) handlePicked() {
	select {
	case filename := <-g.picked:
		g.picking = false
		if filename == "" {
			return
		}
		if err := g.Play(filename); err != nil {
			g.lastErr = err
			g.log.Error("load audio failed", "path", filename, "err", err)
		}
	default:
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
