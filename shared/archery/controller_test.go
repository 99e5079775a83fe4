package archery

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	eps = 1e-9
	dt  = 1.0 / 60
)

type handle uuid.UUID

func (h handle) ShotID() uuid.UUID { return uuid.UUID(h) }

type recordingSpawner struct {
	requests []SpawnRequest
	err      error
}

func (s *recordingSpawner) SpawnProjectile(req SpawnRequest) (ProjectileHandle, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return handle(req.ShotID), nil
}

// straightAhead keeps the aim at 0 degrees for an archer at the origin.
var straightAhead = dmath.Vec2{X: 100, Y: 0}

func newTestController(t *testing.T, sp Spawner, opts ...Option) *Controller {
	t.Helper()
	return NewController(DefaultSettings(), sp, StaticGravity(9.8), opts...)
}

func press(now float64) TickInput {
	return TickInput{Pointer: straightAhead, Trigger: Trigger{Down: true, Held: true}, Now: now, Delta: dt}
}

func hold(now float64) TickInput {
	return TickInput{Pointer: straightAhead, Trigger: Trigger{Held: true}, Now: now, Delta: dt}
}

func release(now float64) TickInput {
	return TickInput{Pointer: straightAhead, Trigger: Trigger{Up: true}, Now: now, Delta: dt}
}

func idle(now float64) TickInput {
	return TickInput{Pointer: straightAhead, Now: now, Delta: dt}
}

func TestChargeScenario(t *testing.T) {
	tests := []struct {
		name      string
		heldFor   float64
		wantRatio float64
		wantSpeed float64
	}{
		{"one second", 1, 0.5, 20},
		{"exactly full", 2, 1, 30},
		{"held past full", 3.5, 1, 30},
		{"tap", 0, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := &recordingSpawner{}
			c := newTestController(t, sp)

			c.Tick(press(10))
			if tt.heldFor > 0 {
				c.Tick(hold(10 + tt.heldFor))
			}
			res := c.Tick(release(10 + tt.heldFor))

			if res.Shot == nil {
				t.Fatal("expected a shot on release")
			}
			if math.Abs(res.Shot.ChargeRatio-tt.wantRatio) > eps {
				t.Errorf("ratio = %v, want %v", res.Shot.ChargeRatio, tt.wantRatio)
			}
			if math.Abs(res.Shot.Speed-tt.wantSpeed) > eps {
				t.Errorf("speed = %v, want %v", res.Shot.Speed, tt.wantSpeed)
			}
			if math.Abs(res.Shot.Velocity.X-tt.wantSpeed) > eps || math.Abs(res.Shot.Velocity.Y) > eps {
				t.Errorf("velocity = %v, want (%v, 0)", res.Shot.Velocity, tt.wantSpeed)
			}
			if len(sp.requests) != 1 {
				t.Fatalf("expected exactly 1 spawn request, got %d", len(sp.requests))
			}
			if c.Charging() {
				t.Error("controller should be idle after release")
			}
		})
	}
}

func TestElapsedStaysInWindow(t *testing.T) {
	c := newTestController(t, &recordingSpawner{})
	c.Tick(press(0))
	for now := 0.0; now < 5; now += dt {
		c.Tick(hold(now))
		el := c.Charge().Elapsed
		if el < 0 || el > c.Settings().MaxChargeTime {
			t.Fatalf("elapsed %v outside window at t=%v", el, now)
		}
	}
	// Clock running backwards must not produce a negative charge.
	c.Tick(hold(-1))
	if el := c.Charge().Elapsed; el != 0 {
		t.Errorf("elapsed = %v after clock went backwards, want 0", el)
	}
}

func TestPreviewVisibleOnlyWhileCharging(t *testing.T) {
	c := newTestController(t, &recordingSpawner{})
	n := len(c.Preview().Points)
	if n != 5 {
		t.Fatalf("preview has %d points, want 5", n)
	}

	c.Tick(idle(0))
	if c.Preview().Visible() {
		t.Error("preview visible while idle")
	}

	c.Tick(press(0))
	if !c.Preview().Visible() {
		t.Error("preview hidden on the press tick")
	}
	c.Tick(hold(0.5))
	for i, p := range c.Preview().Points {
		if !p.Visible {
			t.Errorf("point %d hidden while charging", i)
		}
	}

	c.Tick(release(0.6))
	if c.Preview().Visible() {
		t.Error("preview visible after release")
	}
	c.Tick(idle(0.7))
	c.Tick(idle(0.8))
	if c.Preview().Visible() {
		t.Error("hiding is not idempotent")
	}
	if len(c.Preview().Points) != n {
		t.Error("preview length changed")
	}
}

func TestPreviewMatchesTrajectory(t *testing.T) {
	c := newTestController(t, &recordingSpawner{})
	c.Tick(press(0))
	c.Tick(hold(1)) // ratio 0.5, speed 20

	pts := c.Preview().Points
	if pts[0].Position != (dmath.Vec2{}) {
		t.Errorf("first point = %v, want the spawn point", pts[0].Position)
	}
	for i, p := range pts {
		ti := float64(i) * 0.1
		wantX := 20 * ti
		wantY := -0.5 * 9.8 * ti * ti
		if math.Abs(p.Position.X-wantX) > eps || math.Abs(p.Position.Y-wantY) > eps {
			t.Errorf("point %d = %v, want (%v, %v)", i, p.Position, wantX, wantY)
		}
	}
}

func TestReleaseWhileIdleIsNoop(t *testing.T) {
	sp := &recordingSpawner{}
	c := newTestController(t, sp)
	res := c.Tick(release(1))
	if res.Shot != nil || len(sp.requests) != 0 {
		t.Error("release without charge must not shoot")
	}
	if c.Stats().Shots != 0 {
		t.Errorf("shots = %d, want 0", c.Stats().Shots)
	}
}

func TestPressAndReleaseSameTick(t *testing.T) {
	sp := &recordingSpawner{}
	c := newTestController(t, sp)
	res := c.Tick(TickInput{Pointer: straightAhead, Trigger: Trigger{Down: true, Up: true}, Now: 3, Delta: dt})
	if res.Shot == nil {
		t.Fatal("expected a minimum-power shot")
	}
	if res.Shot.Speed != 10 {
		t.Errorf("speed = %v, want 10", res.Shot.Speed)
	}
}

func TestLostTrigger(t *testing.T) {
	t.Run("release policy", func(t *testing.T) {
		sp := &recordingSpawner{}
		c := newTestController(t, sp)
		c.Tick(press(0))
		c.Tick(hold(1))
		res := c.Tick(idle(1.5)) // no Up event, trigger just gone
		if res.Shot == nil {
			t.Fatal("lost trigger should release the shot")
		}
		if math.Abs(res.Shot.Speed-25) > eps {
			t.Errorf("speed = %v, want 25", res.Shot.Speed)
		}
		if c.Charging() || c.Preview().Visible() {
			t.Error("controller should be idle with preview hidden")
		}
	})

	t.Run("keep policy", func(t *testing.T) {
		sp := &recordingSpawner{}
		s := DefaultSettings()
		s.ReleaseOnLostTrigger = false
		c := NewController(s, sp, StaticGravity(9.8))
		c.Tick(press(0))
		c.Tick(hold(1))
		res := c.Tick(idle(1.5))
		if res.Shot != nil {
			t.Fatal("keep policy must not fire")
		}
		if !c.Charging() {
			t.Error("charge should be kept")
		}
		if c.Preview().Visible() {
			t.Error("preview hidden while trigger is not held")
		}
		res = c.Tick(release(1.8))
		if res.Shot == nil {
			t.Fatal("explicit release should fire")
		}
	})
}

func TestSpawnFailureResetsAndLogs(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	boom := errors.New("arrow has no rigid body")
	sp := &recordingSpawner{err: boom}
	c := newTestController(t, sp, WithLogger(zap.New(core)))

	c.Tick(press(0))
	c.Tick(hold(0.4))
	res := c.Tick(release(0.5))

	if !errors.Is(res.Err, boom) {
		t.Fatalf("err = %v, want %v", res.Err, boom)
	}
	if c.Charging() {
		t.Error("failed spawn must still consume the shot")
	}
	if got := c.Stats().FailedSpawns; got != 1 {
		t.Errorf("failed spawns = %d, want 1", got)
	}

	errs := recorded.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error log, got %d", len(errs))
	}
	if errs[0].ContextMap()["shot"] != res.Shot.ShotID.String() {
		t.Errorf("log should carry the shot id, got %v", errs[0].ContextMap())
	}

	// Next cycle works normally.
	sp.err = nil
	c.Tick(press(1))
	if res := c.Tick(release(1.2)); res.Err != nil || res.Handle == nil {
		t.Errorf("second shot failed: %v", res.Err)
	}
}

func TestNilSpawner(t *testing.T) {
	c := NewController(DefaultSettings(), nil, nil)
	c.Tick(press(0))
	res := c.Tick(release(0.1))
	if !errors.Is(res.Err, ErrNoSpawner) {
		t.Errorf("err = %v, want ErrNoSpawner", res.Err)
	}
	if c.Charging() {
		t.Error("shot should be consumed")
	}
}

func TestShotCarriesAimAndMuzzle(t *testing.T) {
	s := DefaultSettings()
	s.MuzzleOffset = dmath.Vec2{X: 10}
	sp := &recordingSpawner{}
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	c := NewController(s, sp, StaticGravity(9.8),
		WithInitialAngle(30),
		WithShotIDs(func() uuid.UUID { return id }),
	)

	origin := dmath.Vec2{X: 5, Y: 5}
	up := dmath.Vec2{X: 5 + math.Cos(math.Pi/6), Y: 5 + math.Sin(math.Pi/6)} // 30 degrees
	c.Tick(TickInput{Pointer: up, Origin: origin, Trigger: Trigger{Down: true, Held: true}, Now: 0, Delta: dt})
	res := c.Tick(TickInput{Pointer: up, Origin: origin, Trigger: Trigger{Up: true}, Now: 2, Delta: dt})

	if res.Shot.ShotID != id {
		t.Errorf("shot id = %v, want %v", res.Shot.ShotID, id)
	}
	if math.Abs(res.Shot.Rotation-30) > 1e-6 {
		t.Errorf("rotation = %v, want 30", res.Shot.Rotation)
	}
	wantPos := dmath.Vec2{X: 5 + 10*math.Cos(math.Pi/6), Y: 5 + 10*math.Sin(math.Pi/6)}
	if math.Abs(res.Shot.Position.X-wantPos.X) > 1e-6 || math.Abs(res.Shot.Position.Y-wantPos.Y) > 1e-6 {
		t.Errorf("position = %v, want %v", res.Shot.Position, wantPos)
	}
	if res.Handle.ShotID() != id {
		t.Error("handle should carry the shot id")
	}
}

func TestAimStaysInRange(t *testing.T) {
	c := newTestController(t, &recordingSpawner{})
	behind := dmath.Vec2{X: -100, Y: 5}
	for i := 0; i < 300; i++ {
		res := c.Tick(TickInput{Pointer: behind, Now: float64(i) * dt, Delta: dt})
		if res.Angle < -60 || res.Angle > 60 {
			t.Fatalf("angle %v out of range", res.Angle)
		}
	}
	if c.Angle() != 60 {
		t.Errorf("angle = %v, want saturation at 60", c.Angle())
	}
}

func TestZeroChargeWindowIsFullPower(t *testing.T) {
	s := DefaultSettings()
	s.MaxChargeTime = 0
	c := NewController(s, &recordingSpawner{}, StaticGravity(9.8))
	c.Tick(press(0))
	res := c.Tick(release(0))
	if res.Shot.Speed != 30 || res.Shot.ChargeRatio != 1 {
		t.Errorf("got speed %v ratio %v, want 30 and 1", res.Shot.Speed, res.Shot.ChargeRatio)
	}
}

type scriptedInput struct {
	pointer dmath.Vec2
	trigger Trigger
}

func (s scriptedInput) Pointer() dmath.Vec2 { return s.pointer }
func (s scriptedInput) Trigger() Trigger    { return s.trigger }

func TestUpdatePollsInputSource(t *testing.T) {
	sp := &recordingSpawner{}
	c := newTestController(t, sp)
	c.Update(scriptedInput{pointer: straightAhead, trigger: Trigger{Down: true, Held: true}}, dmath.Vec2{}, 0, dt)
	if !c.Charging() {
		t.Fatal("press through InputSource should start charging")
	}
	c.Update(scriptedInput{pointer: straightAhead, trigger: Trigger{Up: true}}, dmath.Vec2{}, 1, dt)
	if len(sp.requests) != 1 {
		t.Errorf("expected 1 shot, got %d", len(sp.requests))
	}
}

func TestReset(t *testing.T) {
	sp := &recordingSpawner{}
	c := newTestController(t, sp)
	c.Tick(press(0))
	c.Tick(hold(1))
	c.Reset()
	if c.Charging() || c.Preview().Visible() {
		t.Error("reset should return to idle with preview hidden")
	}
	c.Tick(release(2))
	if len(sp.requests) != 0 {
		t.Error("reset charge must not fire")
	}
}
