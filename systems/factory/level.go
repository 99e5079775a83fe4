package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/archery/archetypes"
	"github.com/automoto/archery/components"
	"github.com/automoto/archery/config"
	"github.com/automoto/archery/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads a range map and stores it on a new Level entity. It does not create the
// walls or targets.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, path string) (*donburi.Entry, error) {
	data, err := leveldata.LoadRange(fsys, path, config.C.PixelsPerUnit)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Path:  path,
		Range: data,
	})
	return level, nil
}

// CreateClock creates the game clock at zero.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(clock, &components.ClockData{})
	return clock
}

// CreateScore creates the score board, carrying over the best score from earlier sessions.
func CreateScore(ecs *ecs.ECS, best int) *donburi.Entry {
	score := archetypes.Score.Spawn(ecs)
	components.Score.Set(score, &components.ScoreData{Best: best})
	return score
}
