package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/overworld/internal/game/world/gen"
)

func TestStepEnemySeeks(t *testing.T) {
	e := NewEnemy(uuid.New(), Wolf, mgl64.Vec2{0, 0})
	dmg := StepEnemy(e, mgl64.Vec2{100, 0}, 0, 0.016, gen.NewRandom(1))
	if dmg != 0 {
		t.Fatalf("seeking enemy dealt %d", dmg)
	}
	if e.Enemy.State != Seeking {
		t.Fatalf("state = %v, want seeking", e.Enemy.State)
	}
	want := mgl64.Vec2{Wolf.Stats().Speed, 0}
	if !e.Enemy.Vel.ApproxEqual(want) {
		t.Errorf("vel = %v, want %v", e.Enemy.Vel, want)
	}
}

func TestStepEnemyAttacksWithCooldown(t *testing.T) {
	e := NewEnemy(uuid.New(), Orc, mgl64.Vec2{0, 0})
	target := mgl64.Vec2{20, 0}
	rng := gen.NewRandom(1)

	if dmg := StepEnemy(e, target, 2, 0.016, rng); dmg != Orc.Stats().Attack-2 {
		t.Fatalf("first hit = %d, want %d", dmg, Orc.Stats().Attack-2)
	}
	if e.Enemy.State != Attacking {
		t.Errorf("state = %v, want attacking", e.Enemy.State)
	}
	if dmg := StepEnemy(e, target, 2, 0.5, rng); dmg != 0 {
		t.Errorf("hit during cooldown = %d", dmg)
	}
	if e.Enemy.State != Attacking || e.Enemy.Vel != (mgl64.Vec2{}) {
		t.Errorf("cooling enemy should stay attacking and still, got %v %v", e.Enemy.State, e.Enemy.Vel)
	}
	if dmg := StepEnemy(e, target, 2, 0.6, rng); dmg == 0 {
		t.Error("cooldown elapsed but no hit landed")
	}
}

func TestStepEnemyMinimumDamage(t *testing.T) {
	e := NewEnemy(uuid.New(), Slime, mgl64.Vec2{})
	if dmg := StepEnemy(e, mgl64.Vec2{1, 1}, 100, 0.016, gen.NewRandom(1)); dmg != 1 {
		t.Errorf("damage = %d, want 1", dmg)
	}
}

func TestStepEnemyCoincidentPositions(t *testing.T) {
	e := NewEnemy(uuid.New(), Goblin, mgl64.Vec2{50, 50})
	dmg := StepEnemy(e, mgl64.Vec2{50, 50}, 0, 0.016, gen.NewRandom(1))
	if dmg == 0 || e.Enemy.State != Attacking {
		t.Fatalf("coincident target: dmg=%d state=%v", dmg, e.Enemy.State)
	}
	for _, c := range e.Enemy.Vel {
		if math.IsNaN(c) {
			t.Fatalf("velocity is NaN: %v", e.Enemy.Vel)
		}
	}
}

func TestStepEnemyWanders(t *testing.T) {
	e := NewEnemy(uuid.New(), Skeleton, mgl64.Vec2{})
	far := mgl64.Vec2{1000, 1000}
	rng := gen.NewRandom(7)

	StepEnemy(e, far, 0, 0.016, rng)
	if e.Enemy.State != Wandering {
		t.Fatalf("state = %v, want wandering", e.Enemy.State)
	}
	if e.Enemy.WanderTimer < wanderMin || e.Enemy.WanderTimer > wanderMax {
		t.Fatalf("wander timer = %v", e.Enemy.WanderTimer)
	}
	drift := e.Enemy.Vel
	if drift.Len() == 0 {
		t.Fatal("wander should pick a drift")
	}

	StepEnemy(e, far, 0, 0.016, rng)
	if !e.Enemy.Vel.ApproxEqual(drift.Mul(wanderFriction)) {
		t.Errorf("vel = %v, want friction-decayed %v", e.Enemy.Vel, drift.Mul(wanderFriction))
	}
}

func TestStepEnemyDeterministicWander(t *testing.T) {
	a := NewEnemy(uuid.New(), Slime, mgl64.Vec2{})
	b := NewEnemy(uuid.New(), Slime, mgl64.Vec2{})
	ra, rb := gen.NewRandom(99), gen.NewRandom(99)
	far := mgl64.Vec2{5000, 0}
	for i := 0; i < 500; i++ {
		StepEnemy(a, far, 0, 0.05, ra)
		StepEnemy(b, far, 0, 0.05, rb)
	}
	if a.Enemy.Vel != b.Enemy.Vel || a.Enemy.WanderTimer != b.Enemy.WanderTimer {
		t.Error("same rng stream should give same wander")
	}
}

func TestStepEnemyDeadIsNoop(t *testing.T) {
	e := NewEnemy(uuid.New(), Slime, mgl64.Vec2{})
	e.Die()
	if dmg := StepEnemy(e, mgl64.Vec2{}, 0, 0.016, gen.NewRandom(1)); dmg != 0 {
		t.Errorf("dead enemy dealt %d", dmg)
	}
}

func TestAdvanceResolvesAxes(t *testing.T) {
	e := NewEnemy(uuid.New(), Slime, mgl64.Vec2{0, 0})
	e.Enemy.Vel = mgl64.Vec2{10, 10}
	// Block anything right of x=5.
	e.Advance(1, func(p mgl64.Vec2) bool { return p.X() <= 5 })
	if e.Pos != (mgl64.Vec2{0, 10}) {
		t.Errorf("pos = %v, want [0 10]", e.Pos)
	}
}
