package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/overworld/internal/game/world/gen"
)

// Enemy steering thresholds, in pixels and seconds.
const (
	AggroRange     = 250.0
	AttackRange    = 40.0
	AttackCooldown = 1.0

	wanderMin      = 2.0
	wanderMax      = 5.0
	wanderFriction = 0.98
	wanderSpeed    = 0.5 // fraction of full speed
)

// StepEnemy runs one AI tick for an active enemy chasing target and returns
// the damage it deals this tick. The state is chosen from the distance alone:
// inside AttackRange the enemy attacks, inside AggroRange it seeks, otherwise
// it wanders. rng drives wander directions and timers.
func StepEnemy(e *Entity, target mgl64.Vec2, defense int, dt float64, rng *gen.Random) int {
	if e.Kind != KindEnemy || !e.Active {
		return 0
	}
	en := e.Enemy
	en.Cooldown = math.Max(0, en.Cooldown-dt)

	delta := target.Sub(e.Pos)
	dist := delta.Len()

	switch {
	case dist <= AttackRange:
		// Coincident positions land here, so delta is never normalized at zero.
		en.State = Attacking
		en.Vel = mgl64.Vec2{}
		if en.Cooldown > 0 {
			return 0
		}
		en.Cooldown = AttackCooldown
		return max(1, en.Attack-defense)
	case dist <= AggroRange:
		en.State = Seeking
		en.Vel = delta.Mul(en.Speed / dist)
	default:
		if en.State != Wandering {
			en.State = Wandering
			en.WanderTimer = 0
		}
		en.WanderTimer -= dt
		if en.WanderTimer <= 0 {
			angle := rng.Range(0, 2*math.Pi)
			en.Vel = mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(en.Speed * wanderSpeed)
			en.WanderTimer = rng.Range(wanderMin, wanderMax)
		} else {
			en.Vel = en.Vel.Mul(wanderFriction)
		}
	}
	return 0
}

// Advance moves the entity by its velocity, resolving each axis separately.
// An axis step is dropped when walkable rejects the destination.
func (e *Entity) Advance(dt float64, walkable func(p mgl64.Vec2) bool) {
	if e.Enemy == nil || !e.Active {
		return
	}
	v := e.Enemy.Vel.Mul(dt)
	if next := (mgl64.Vec2{e.Pos.X() + v.X(), e.Pos.Y()}); walkable(next) {
		e.Pos = next
	}
	if next := (mgl64.Vec2{e.Pos.X(), e.Pos.Y() + v.Y()}); walkable(next) {
		e.Pos = next
	}
}
