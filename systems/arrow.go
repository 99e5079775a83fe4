package systems

import (
	"math"

	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/logging"
	"github.com/automoto/archery/mathutil"
	"github.com/automoto/archery/shared/gamemath"
	"github.com/automoto/archery/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

const (
	maxArrowSubsteps  = 32
	outOfBoundsMargin = 5.0 // units outside the level before an arrow is dropped
)

// UpdateArrows integrates arrow flight with gravity, sticks arrows into walls and targets and
// awards points for target hits.
func UpdateArrows(e *ecs.ECS) {
	dt := GetOrCreateClock(e).Delta

	var lost []*donburi.Entry
	tags.Arrow.Each(e.World, func(entry *donburi.Entry) {
		arrow := components.Arrow.Get(entry)
		obj := components.Object.Get(entry)

		if arrow.Stuck {
			followTarget(arrow, obj)
			return
		}

		phys := components.Physics.Get(entry)
		phys.Velocity = IntegrateVelocity(phys.Velocity, phys.Gravity, dt)
		delta := phys.Velocity.MulScalar(dt)

		steps := substeps(delta, cfg.Arrow.HitboxSize/2)
		step := delta.MulScalar(1 / float64(steps))
		for i := 0; i < steps; i++ {
			hit := probe(obj.Object, step)
			obj.X += step.X
			obj.Y += step.Y
			if hit != nil {
				stickArrow(e, entry, arrow, obj, hit)
				break
			}
		}
		obj.Update()

		if !arrow.Stuck && (phys.Velocity.X != 0 || phys.Velocity.Y != 0) {
			arrow.Heading = mathutil.DegToRad(gamemath.HeadingAngle(phys.Velocity))
		}

		if outOfBounds(e, obj) {
			lost = append(lost, entry)
		}
	})

	for _, entry := range lost {
		destroyEntry(entry)
	}
}

// IntegrateVelocity applies gravity for one step. Velocity is updated before position
// (semi-implicit Euler), so after t seconds an arrow sits 0.5*g*dt*t below the closed-form
// arc the trajectory preview draws.
func IntegrateVelocity(v dmath.Vec2, gravity, dt float64) dmath.Vec2 {
	v.Y -= math.Abs(gravity) * dt
	return v
}

// substeps returns how many steps keep each move within maxStep.
func substeps(delta dmath.Vec2, maxStep float64) int {
	if maxStep <= 0 {
		return 1
	}
	n := int(math.Ceil(math.Hypot(delta.X, delta.Y) / maxStep))
	return max(1, min(n, maxArrowSubsteps))
}

// probe returns the first target or wall the object would overlap after moving by step.
// Targets win over walls.
func probe(obj *resolv.Object, step dmath.Vec2) *resolv.Object {
	check := obj.Check(step.X, step.Y, tags.ResolvTarget, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	x, y := obj.X+step.X, obj.Y+step.Y
	for _, tag := range []string{tags.ResolvTarget, tags.ResolvSolid} {
		for _, other := range check.ObjectsByTags(tag) {
			if Overlaps(x, y, obj.W, obj.H, other.X, other.Y, other.W, other.H) {
				return other
			}
		}
	}
	return nil
}

// Overlaps reports whether two axis-aligned boxes intersect.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

func stickArrow(e *ecs.ECS, entry *donburi.Entry, arrow *components.ArrowData, obj *components.ObjectData, hit *resolv.Object) {
	arrow.Stuck = true
	components.Physics.Get(entry).Velocity = dmath.Vec2{}

	targetEntry, ok := hit.Data.(*donburi.Entry)
	if !ok || !hit.HasTags(tags.ResolvTarget) {
		PlaySFX(e, cfg.SoundWallThud)
		return
	}

	arrow.StuckTo = targetEntry
	arrow.StuckOffset = dmath.NewVec2(obj.X-hit.X, obj.Y-hit.Y)
	if arrow.Scored {
		return
	}
	arrow.Scored = true

	target := components.Target.Get(targetEntry)
	tip := obj.Center()
	points, bullseye := HitPoints(target.Points, cfg.Target.BullseyeBonus, hit.Y, hit.H, tip.Y)
	target.Hits++

	if score, ok := getScore(e); ok {
		RecordHit(score, points)
		if score.Score == score.Best && points > 0 {
			saveBest(score)
		}
	}

	if targetEntry.HasComponent(components.Flash) {
		components.Flash.SetValue(targetEntry, components.FlashData{
			Remaining: cfg.Target.HitFlashSeconds,
			R:         3, G: 3, B: 3,
		})
	}
	TriggerScreenShake(e, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
	PlaySFX(e, cfg.SoundTargetHit)

	logging.L().Debug("target hit",
		zap.Stringer("shot", arrow.ShotID),
		zap.String("target", target.Name),
		zap.Int("points", points),
		zap.Bool("bullseye", bullseye),
	)
}

// followTarget keeps an embedded arrow attached to its target.
func followTarget(arrow *components.ArrowData, obj *components.ObjectData) {
	if arrow.StuckTo == nil {
		return
	}
	if !arrow.StuckTo.Valid() {
		arrow.StuckTo = nil
		return
	}
	t := components.Object.Get(arrow.StuckTo)
	obj.X = t.X + arrow.StuckOffset.X
	obj.Y = t.Y + arrow.StuckOffset.Y
	obj.Update()
}

// HitPoints scores a hit at height tipY on a target spanning [targetY, targetY+targetH]. The
// middle third is the bullseye.
func HitPoints(base, bonus int, targetY, targetH, tipY float64) (points int, bullseye bool) {
	lo := targetY + targetH/3
	hi := targetY + 2*targetH/3
	if tipY >= lo && tipY <= hi {
		return base + bonus, true
	}
	return base, false
}

// RecordHit adds a hit worth points to the score board.
func RecordHit(score *components.ScoreData, points int) {
	score.Hits++
	score.Score += points
	score.LastPoints = points
	if score.Score > score.Best {
		score.Best = score.Score
	}
}

func outOfBounds(e *ecs.ECS, obj *components.ObjectData) bool {
	if obj.Y+obj.H < -outOfBoundsMargin {
		return true
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry)
	if level.Range == nil {
		return false
	}
	return obj.X+obj.W < -outOfBoundsMargin || obj.X > level.Range.Width+outOfBoundsMargin
}

func getScore(e *ecs.ECS) (*components.ScoreData, bool) {
	entry, ok := components.Score.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Score.Get(entry), true
}
