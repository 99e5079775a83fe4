package systems

import (
	"sort"

	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/logging"
	"github.com/automoto/archery/shared/archery"
	"github.com/automoto/archery/systems/factory"
	"github.com/automoto/archery/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ArrowHandle is the projectile handle returned to archers.
type ArrowHandle struct {
	id uuid.UUID
}

func (h ArrowHandle) ShotID() uuid.UUID { return h.id }

type ecsSpawner struct {
	ecs *ecs.ECS
}

// NewSpawner returns an archery.Spawner that creates arrow entities in e.
func NewSpawner(e *ecs.ECS) archery.Spawner {
	return ecsSpawner{ecs: e}
}

func (s ecsSpawner) SpawnProjectile(req archery.SpawnRequest) (archery.ProjectileHandle, error) {
	now := GetOrCreateClock(s.ecs).Now
	if _, err := factory.CreateArrow(s.ecs, req, now); err != nil {
		return nil, err
	}

	logging.L().Debug("arrow spawned",
		zap.Stringer("shot", req.ShotID),
		zap.Float64("speed", req.Speed),
		zap.Float64("angle", req.Rotation),
	)

	enforceArrowLimit(s.ecs, cfg.Arrow.MaxInFlight)
	return ArrowHandle{id: req.ShotID}, nil
}

// enforceArrowLimit removes the oldest arrows when more than limit exist.
func enforceArrowLimit(e *ecs.ECS, limit int) {
	if limit <= 0 {
		return
	}
	var arrows []*donburi.Entry
	tags.Arrow.Each(e.World, func(entry *donburi.Entry) {
		arrows = append(arrows, entry)
	})
	if len(arrows) <= limit {
		return
	}
	sort.SliceStable(arrows, func(i, j int) bool {
		return components.Arrow.Get(arrows[i]).SpawnedAt < components.Arrow.Get(arrows[j]).SpawnedAt
	})
	for _, entry := range arrows[:len(arrows)-limit] {
		destroyEntry(entry)
	}
}

// worldGravity reads the configured gravity each time it is asked.
type worldGravity struct{}

func (worldGravity) GravityMagnitude() float64 {
	return cfg.Physics.Gravity
}

// WorldGravity is the gravity source archers use.
func WorldGravity() archery.GravitySource {
	return worldGravity{}
}
