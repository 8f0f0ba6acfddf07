// Package pattern drives a times-table pattern: it owns the ring of points,
// the animated multiplier and the mesh built from them.
package pattern

import (
	"github.com/iburimskiy/times-circle/internal/config"
	"github.com/iburimskiy/times-circle/internal/geom"
	"github.com/iburimskiy/times-circle/internal/mesh"
)

// Pattern is not safe for concurrent use. Feed it config changes and ticks
// from a single loop.
type Pattern struct {
	cfg     config.Config
	ring    []geom.Vec2
	driver  Driver
	builder *mesh.Builder
	tempo   float32
}

// New applies cfg and, when it is not animated, builds the first mesh.
func New(cfg config.Config) *Pattern {
	p := &Pattern{
		builder: mesh.NewBuilder(),
		driver:  Driver{Direction: 1},
		tempo:   1,
	}
	p.Validate(cfg)
	return p
}

// Validate handles a configuration change. The ring is always recomputed
// and the multiplier jumps back to the configured m. A static pattern is
// rebuilt immediately; an animated one waits for the next Update.
func (p *Pattern) Validate(cfg config.Config) {
	p.cfg = cfg.Sanitize()
	p.ring = ComputeRing(p.cfg.N, p.cfg.Radius)
	p.driver.Reset(p.cfg.Speed, p.cfg.M)
	if !p.cfg.Animate {
		p.regenerate()
	}
}

// Update runs one frame. It is a no-op unless the pattern is animated.
func (p *Pattern) Update() {
	if !p.cfg.Animate {
		return
	}
	p.cfg.M = max(0, min(p.cfg.M, float32(p.cfg.N)))
	p.driver.Advance(p.cfg.M, p.tempo)
	p.regenerate()
}

// SetTempo scales the animation step; 1 is the configured speed.
func (p *Pattern) SetTempo(tempo float32) {
	p.tempo = max(0, tempo)
}

func (p *Pattern) regenerate() {
	p.builder.Regenerate(p.cfg, p.ring, p.driver.Current)
}

// Mesh returns the last fully built buffer.
func (p *Pattern) Mesh() *mesh.Buffer { return p.builder.Mesh() }

func (p *Pattern) Config() config.Config { return p.cfg }

func (p *Pattern) Ring() []geom.Vec2 { return p.ring }

// Multiplier returns the live multiplier, which differs from Config().M
// while animating.
func (p *Pattern) Multiplier() float32 { return p.driver.Current }

// Direction reports +1 while the sweep climbs and -1 while it falls.
func (p *Pattern) Direction() float32 { return p.driver.Direction }
