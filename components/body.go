package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/perfidia-game/perfidia/shared/gamemath"
)

// Solids answers whether a box overlaps level geometry.
type Solids interface {
	Intersects(r gamemath.Rect) bool
}

// BodyData is the physics state of an actor. Position is the hitbox's
// top-left corner with sub-pixel precision; Hitbox is its whole-pixel image.
type BodyData struct {
	Position    dmath.Vec2
	Velocity    dmath.Vec2
	Hitbox      gamemath.Rect
	Gravity     float64
	OnGround    bool
	FacingRight bool
}

var Body = donburi.NewComponentType[BodyData]()

// NewBody places a w x h hitbox with its bottom-center on (x, y).
func NewBody(x, y, w, h int, gravity float64) BodyData {
	hb := gamemath.NewRect(0, 0, w, h).WithMidBottom(x, y)
	return BodyData{
		Position:    dmath.Vec2{X: float64(hb.X), Y: float64(hb.Y)},
		Hitbox:      hb,
		Gravity:     gravity,
		FacingRight: true,
	}
}

// Integrate applies gravity while airborne.
func (b *BodyData) Integrate(dt float64) {
	if !b.OnGround {
		b.Velocity.Y += b.Gravity * dt
	}
}

// MoveHorizontal moves along x, all or nothing. It reports whether the move
// was blocked.
func (b *BodyData) MoveHorizontal(dt float64, grid Solids, extra ...gamemath.Rect) bool {
	nx := b.Position.X + b.Velocity.X*dt
	trial := b.Hitbox
	trial.X = gamemath.Round(nx)
	if trial.X != b.Hitbox.X && blocked(trial, grid, extra) {
		return true
	}
	b.Position.X = nx
	b.Hitbox = trial
	return false
}

// MoveVertical moves along y, all or nothing. OnGround is re-derived every
// call: a blocked downward move lands the body.
func (b *BodyData) MoveVertical(dt float64, grid Solids, extra ...gamemath.Rect) {
	b.OnGround = false
	ny := b.Position.Y + b.Velocity.Y*dt
	trial := b.Hitbox
	trial.Y = gamemath.Round(ny)
	if trial.Y != b.Hitbox.Y && blocked(trial, grid, extra) {
		if b.Velocity.Y > 0 {
			b.OnGround = true
		}
		b.Velocity.Y = 0
		return
	}
	b.Position.Y = ny
	b.Hitbox = trial
}

// GroundSnap probes one pixel below the hitbox so a body resting with zero
// velocity stays grounded. Rising bodies are left alone.
func (b *BodyData) GroundSnap(grid Solids, extra ...gamemath.Rect) {
	if b.Velocity.Y < 0 {
		return
	}
	if blocked(b.Hitbox.Translate(0, 1), grid, extra) {
		b.OnGround = true
		b.Velocity.Y = 0
		return
	}
	b.OnGround = false
}

// Step runs one physics tick: gravity, x pass, y pass, ground snap.
func (b *BodyData) Step(dt float64, grid Solids, extra ...gamemath.Rect) {
	b.Integrate(dt)
	b.MoveHorizontal(dt, grid, extra...)
	b.MoveVertical(dt, grid, extra...)
	b.GroundSnap(grid, extra...)
}

// Center returns the hitbox center.
func (b *BodyData) Center() (float64, float64) {
	return b.Hitbox.Center()
}

func blocked(r gamemath.Rect, grid Solids, extra []gamemath.Rect) bool {
	if grid != nil && grid.Intersects(r) {
		return true
	}
	for _, e := range extra {
		if r.Intersects(e) {
			return true
		}
	}
	return false
}
