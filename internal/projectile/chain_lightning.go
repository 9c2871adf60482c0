package projectile

import (
	"math"

	"survivors-night/internal/component"
	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/internal/utils"
	"survivors-night/pkg/render"
)

const chainSegmentLife = 0.3

type chainSegment struct {
	x1, y1, x2, y2 float64
	age            float64
}

// ChainLightning strikes its first target, then hops to the nearest unhit
// enemy within Range of the last one, every ChainDelay seconds.
type ChainLightning struct {
	X, Y       float64 // caster position at launch
	Range      float64 // hop reach, measured from the current target
	Damage     float64
	MaxChains  int
	ChainCount int
	Current    *component.Enemy

	last     *component.Enemy
	timer    float64
	started  bool
	done     bool
	hit      map[*component.Enemy]bool
	segments []chainSegment
}

var _ Projectile = (*ChainLightning)(nil)

// NewChainLightning prepares a chain aimed at first. Nothing is hit until the first Update.
func NewChainLightning(x, y float64, first *component.Enemy, rng, damage float64, maxChains int) *ChainLightning {
	return &ChainLightning{
		X:         x,
		Y:         y,
		Range:     rng,
		Damage:    damage,
		MaxChains: maxChains,
		Current:   first,
		hit:       make(map[*component.Enemy]bool),
	}
}

func (c *ChainLightning) Kind() Kind { return KindChainLightning }

func (c *ChainLightning) sealed() {}

// HitCount is the number of distinct enemies struck.
func (c *ChainLightning) HitCount() int { return len(c.hit) }

// WasHit reports whether e has been struck by this cast.
func (c *ChainLightning) WasHit(e *component.Enemy) bool { return c.hit[e] }

// ChainMultiplier is the damage share of hop index i, counting from zero.
func ChainMultiplier(i int) float64 {
	return math.Pow(defs.ChainDamageFalloff, float64(i))
}

func (c *ChainLightning) Update(deltaTime float64, w World) bool {
	kept := c.segments[:0]
	for _, seg := range c.segments {
		seg.age += deltaTime
		if seg.age < chainSegmentLife {
			kept = append(kept, seg)
		}
	}
	c.segments = kept

	if !c.done {
		if !c.started {
			c.started = true
			c.executeChain(w)
		} else {
			c.timer += deltaTime
			if c.timer >= defs.ChainDelay {
				c.timer = 0
				c.executeChain(w)
			}
		}
	}
	return !c.IsFinished()
}

func (c *ChainLightning) executeChain(w World) {
	if c.ChainCount >= c.MaxChains {
		c.done = true
		return
	}

	target := c.Current
	if target == nil || !target.Alive() || c.hit[target] {
		target = c.nextTarget(w)
	}
	if target == nil {
		c.Current = nil
		c.done = true
		return
	}

	fromX, fromY := c.X, c.Y
	if c.last != nil {
		fromX, fromY = c.last.X, c.last.Y
	}
	c.segments = append(c.segments, chainSegment{x1: fromX, y1: fromY, x2: target.X, y2: target.Y})

	c.hit[target] = true
	w.DealDamage(target, c.Damage*ChainMultiplier(c.ChainCount), KindChainLightning)
	w.EmitBurst(target.X, target.Y, 6, 80, config.ChainLightningColor)
	c.ChainCount++
	c.Current = target
	c.last = target

	if c.ChainCount >= c.MaxChains {
		c.done = true
		return
	}
	if next := c.nextTarget(w); next != nil {
		c.Current = next
	} else {
		c.done = true
	}
}

// nextTarget is the nearest live, unhit enemy within Range of the current target.
func (c *ChainLightning) nextTarget(w World) *component.Enemy {
	if c.Current == nil {
		return nil
	}
	next, _, ok := utils.Nearest(w.Enemies(), c.Current.X, c.Current.Y, c.Range, func(e *component.Enemy) bool {
		return e.Alive() && !c.hit[e]
	})
	if !ok {
		return nil
	}
	return next
}

// IsFinished is true once no hop is left and every bolt has faded.
func (c *ChainLightning) IsFinished() bool {
	return c.done && len(c.segments) == 0
}

// Exhausted reports whether the chain will strike no further enemies.
func (c *ChainLightning) Exhausted() bool {
	return c.done
}

func (c *ChainLightning) Render(s render.Surface) {
	for _, seg := range c.segments {
		alpha := 1 - seg.age/chainSegmentLife
		s.Line(seg.x1, seg.y1, seg.x2, seg.y2, 3, render.WithAlpha(config.ChainLightningColor, alpha))
		s.Line(seg.x1, seg.y1, seg.x2, seg.y2, 1, render.WithAlpha(config.TextLightColor, alpha))
	}
}
