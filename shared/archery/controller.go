// Package archery is the charge-shot archer: a rate-limited aim, a charge state machine that
// maps hold time to launch speed, and an analytic trajectory preview. It runs one Tick per
// host frame and talks to the host only through the interfaces in host.go.
package archery

import (
	"github.com/automoto/archery/shared/gamemath"
	"github.com/google/uuid"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// Phase is the charge state.
type Phase int

const (
	Idle Phase = iota
	Charging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Charging:
		return "charging"
	}
	return "unknown"
}

// AimState is the bow orientation.
type AimState struct {
	Angle float64 // degrees, within [MinAngle, MaxAngle]
}

// ChargeState tracks a held trigger.
type ChargeState struct {
	Phase     Phase
	StartTime float64 // seconds, game clock
	Elapsed   float64 // seconds, within [0, MaxChargeTime]
}

// Stats counts shots over the controller's lifetime.
type Stats struct {
	Shots        int
	FailedSpawns int
	LastSpeed    float64
	LastRatio    float64
}

// TickInput is everything the controller reads in one tick.
type TickInput struct {
	Pointer dmath.Vec2 // world position the archer aims at
	Origin  dmath.Vec2 // archer pivot in world space
	Trigger Trigger
	Now     float64 // game clock in seconds
	Delta   float64 // seconds since the previous tick
}

// TickResult is what the host applies after a tick.
type TickResult struct {
	Angle  float64
	Shot   *SpawnRequest // set on the tick a shot was released
	Handle ProjectileHandle
	Err    error // spawn failure, already logged
}

// Controller is one archer. It is not safe for concurrent use.
type Controller struct {
	settings Settings
	aim      AimState
	charge   ChargeState
	preview  Preview
	stats    Stats

	spawner Spawner
	gravity GravitySource
	log     *zap.Logger
	shotID  func() uuid.UUID
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger spawn failures are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithInitialAngle sets the starting aim. It is clamped to the aim range.
func WithInitialAngle(deg float64) Option {
	return func(c *Controller) {
		c.aim.Angle = deg
	}
}

// WithShotIDs replaces the shot ID generator.
func WithShotIDs(fn func() uuid.UUID) Option {
	return func(c *Controller) {
		if fn != nil {
			c.shotID = fn
		}
	}
}

// NewController builds a controller. Settings are normalized first.
func NewController(settings Settings, spawner Spawner, gravity GravitySource, opts ...Option) *Controller {
	settings = settings.Normalize()
	if gravity == nil {
		gravity = StaticGravity(0)
	}
	c := &Controller{
		settings: settings,
		preview:  newPreview(settings.PreviewPoints),
		spawner:  spawner,
		gravity:  gravity,
		log:      zap.NewNop(),
		shotID:   uuid.New,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.aim.Angle = clampAngle(c.aim.Angle, settings)
	return c
}

// Update polls src and runs one tick.
func (c *Controller) Update(src InputSource, origin dmath.Vec2, now, dt float64) TickResult {
	return c.Tick(TickInput{
		Pointer: src.Pointer(),
		Origin:  origin,
		Trigger: src.Trigger(),
		Now:     now,
		Delta:   dt,
	})
}

// Tick advances aim and charge by one frame.
func (c *Controller) Tick(in TickInput) TickResult {
	s := c.settings
	c.aim.Angle = gamemath.UpdateAim(c.aim.Angle, in.Pointer, in.Origin, s.RotationRate, in.Delta, s.MinAngle, s.MaxAngle)
	res := TickResult{Angle: c.aim.Angle}

	if in.Trigger.Down {
		c.startCharging(in.Now)
	}

	if in.Trigger.Held && c.charge.Phase == Charging {
		c.updateCharge(in.Now)
		c.showTrajectory(in.Origin)
	} else {
		c.preview.hide()
	}

	if c.charge.Phase == Charging && c.shouldRelease(in.Trigger) {
		res.Shot, res.Handle, res.Err = c.release(in.Now, in.Origin)
	}
	return res
}

func (c *Controller) shouldRelease(t Trigger) bool {
	if t.Up {
		return true
	}
	// The trigger vanished between ticks without a release event.
	return c.settings.ReleaseOnLostTrigger && !t.Held && !t.Down
}

func (c *Controller) startCharging(now float64) {
	c.charge = ChargeState{
		Phase:     Charging,
		StartTime: now,
	}
}

func (c *Controller) updateCharge(now float64) {
	c.charge.Elapsed = gamemath.ElapsedCharge(now, c.charge.StartTime, c.settings.MaxChargeTime)
}

func (c *Controller) showTrajectory(origin dmath.Vec2) {
	start := c.SpawnPoint(origin)
	velocity := gamemath.LaunchVelocity(c.aim.Angle, c.Speed())
	c.preview.fill(start, velocity, c.gravity.GravityMagnitude(), c.settings.SampleInterval)
}

func (c *Controller) release(now float64, origin dmath.Vec2) (*SpawnRequest, ProjectileHandle, error) {
	c.updateCharge(now)
	ratio := c.ChargeRatio()
	speed := c.Speed()
	req := &SpawnRequest{
		ShotID:      c.shotID(),
		Position:    c.SpawnPoint(origin),
		Rotation:    c.aim.Angle,
		Velocity:    gamemath.LaunchVelocity(c.aim.Angle, speed),
		Speed:       speed,
		ChargeRatio: ratio,
	}

	// The shot is spent whether or not the host manages to spawn it.
	c.charge = ChargeState{Phase: Idle}
	c.preview.hide()
	c.stats.Shots++
	c.stats.LastSpeed = speed
	c.stats.LastRatio = ratio

	if c.spawner == nil {
		c.reportSpawnFailure(req, ErrNoSpawner)
		return req, nil, ErrNoSpawner
	}
	handle, err := c.spawner.SpawnProjectile(*req)
	if err != nil {
		c.reportSpawnFailure(req, err)
		return req, nil, err
	}
	c.log.Debug("arrow released",
		zap.Stringer("shot", req.ShotID),
		zap.Float64("speed", speed),
		zap.Float64("charge", ratio),
		zap.Float64("angle", req.Rotation),
	)
	return req, handle, nil
}

func (c *Controller) reportSpawnFailure(req *SpawnRequest, err error) {
	c.stats.FailedSpawns++
	c.log.Error("spawn projectile failed",
		zap.Error(err),
		zap.Stringer("shot", req.ShotID),
		zap.Float64("speed", req.Speed),
	)
}

// Reset drops any charge in progress without firing.
func (c *Controller) Reset() {
	c.charge = ChargeState{Phase: Idle}
	c.preview.hide()
}

// SpawnPoint is the muzzle position for the current aim.
func (c *Controller) SpawnPoint(origin dmath.Vec2) dmath.Vec2 {
	return origin.Add(gamemath.RotateVector(c.settings.MuzzleOffset, c.aim.Angle))
}

// ChargeRatio is the current charge in [0, 1].
func (c *Controller) ChargeRatio() float64 {
	return gamemath.ChargeRatio(c.charge.Elapsed, c.settings.MaxChargeTime)
}

// Speed is the launch speed a release would produce now.
func (c *Controller) Speed() float64 {
	return gamemath.LaunchSpeed(c.settings.MinSpeed, c.settings.MaxSpeed, c.ChargeRatio())
}

func (c *Controller) Angle() float64      { return c.aim.Angle }
func (c *Controller) Aim() AimState       { return c.aim }
func (c *Controller) Charge() ChargeState { return c.charge }
func (c *Controller) Charging() bool      { return c.charge.Phase == Charging }
func (c *Controller) Preview() *Preview   { return &c.preview }
func (c *Controller) Stats() Stats        { return c.stats }
func (c *Controller) Settings() Settings  { return c.settings }

func clampAngle(a float64, s Settings) float64 {
	if a < s.MinAngle {
		return s.MinAngle
	}
	if a > s.MaxAngle {
		return s.MaxAngle
	}
	return a
}
