package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var background = color.RGBA{R: 10, G: 12, B: 20, A: 255}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.drawMesh(screen)
	g.drawHUD(screen)
}

// drawMesh strokes every segment of the published buffer in the color of
// its first vertex.
func (g *Game) drawMesh(screen *ebiten.Image) {
	buf := g.pattern.Mesh()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for i := range buf.SegmentCount() {
		p0, p1, c, _ := buf.Segment(i)
		x0, y0 := g.camera.Project(p0, w, h)
		x1, y1 := g.camera.Project(p1, w, h)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	cfg := g.pattern.Config()
	mode := "angle"
	if cfg.ColorMode {
		mode = "distance"
	}
	status := fmt.Sprintf("n=%d  m=%.2f  current=%.4f  color=%s  vertices=%d",
		cfg.N, cfg.M, g.pattern.Multiplier(), mode, g.pattern.Mesh().VertexCount())
	if pos, total, ok := g.player.progress(); ok {
		status += fmt.Sprintf("  audio %s/%s", formatDuration(pos), formatDuration(total))
		if g.player.paused {
			status += " (paused)"
		}
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	help := "Space: animate  D: 3D  C: color  S: smooth  +/-: n  [/]: m  arrows: orbit  O: audio  P: pause  Esc/Q: quit"
	ebitenutil.DebugPrintAt(screen, help, 12, screen.Bounds().Dy()-20)
}
