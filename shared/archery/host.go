package archery

import (
	"errors"

	"github.com/google/uuid"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	// ErrNoPhysicsBody is returned by spawners that cannot give the projectile a body to fly with.
	ErrNoPhysicsBody = errors.New("archery: projectile has no physics body")
	// ErrNoSpawner is reported when a controller was built without a spawner.
	ErrNoSpawner = errors.New("archery: no projectile spawner")
)

// SpawnRequest is emitted once per completed charge and release.
type SpawnRequest struct {
	ShotID      uuid.UUID
	Position    dmath.Vec2
	Rotation    float64 // degrees
	Velocity    dmath.Vec2
	Speed       float64
	ChargeRatio float64
}

// ProjectileHandle identifies a projectile the host created.
type ProjectileHandle interface {
	ShotID() uuid.UUID
}

// Spawner creates projectiles for the controller.
type Spawner interface {
	SpawnProjectile(req SpawnRequest) (ProjectileHandle, error)
}

// GravitySource reports the world's gravity. Only the magnitude is used.
type GravitySource interface {
	GravityMagnitude() float64
}

// StaticGravity is a constant GravitySource.
type StaticGravity float64

func (g StaticGravity) GravityMagnitude() float64 {
	return float64(g)
}

// Trigger is the state of the shoot button for one tick.
type Trigger struct {
	Down bool // pressed this tick
	Held bool // currently pressed
	Up   bool // released this tick
}

// InputSource is polled once per tick for the pointer and trigger.
type InputSource interface {
	Pointer() dmath.Vec2
	Trigger() Trigger
}
