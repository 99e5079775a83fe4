package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Object group names in the range maps.
const (
	GroupWalls   = "Walls"
	GroupArcher  = "Archer"
	GroupTargets = "Targets"
)

// ErrNoArcherSpawn is returned for maps without an archer spawn point.
var ErrNoArcherSpawn = errors.New("no archer spawn point defined in map")

// LoadRange parses a TMX file from fsys into world units. pixelsPerUnit converts map pixels to
// units and the Y axis is flipped so that the bottom of the map is y=0. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadRange(fsys fs.FS, tmxPath string, pixelsPerUnit float64) (*RangeData, error) {
	if pixelsPerUnit <= 0 {
		return nil, fmt.Errorf("load range %s: pixels per unit must be positive, got %v", tmxPath, pixelsPerUnit)
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapH := float64(levelMap.Height * levelMap.TileHeight)
	conv := converter{ppu: pixelsPerUnit, mapHeight: mapH}

	data := &RangeData{
		Width:  float64(levelMap.Width*levelMap.TileWidth) / pixelsPerUnit,
		Height: mapH / pixelsPerUnit,
	}

	foundArcher := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, conv.rect(o))
			}
		case GroupArcher:
			if len(og.Objects) > 0 && !foundArcher {
				o := og.Objects[0]
				data.ArcherX, data.ArcherY = conv.point(o.X, o.Y)
				foundArcher = true
			}
		case GroupTargets:
			for _, o := range og.Objects {
				data.Targets = append(data.Targets, TargetSpawn{
					Rect:        conv.rect(o),
					Name:        o.Name,
					Points:      o.Properties.GetInt("points"),
					SwayX:       o.Properties.GetFloat("swayX") / pixelsPerUnit,
					SwayY:       -o.Properties.GetFloat("swayY") / pixelsPerUnit,
					SwaySeconds: o.Properties.GetFloat("swaySeconds"),
				})
			}
		}
	}

	if !foundArcher {
		return nil, fmt.Errorf("load range %s: %w", tmxPath, ErrNoArcherSpawn)
	}

	// Nearest targets first for consistent ordering
	sort.SliceStable(data.Targets, func(i, j int) bool {
		return data.Targets[i].X < data.Targets[j].X
	})

	return data, nil
}

type converter struct {
	ppu       float64
	mapHeight float64
}

func (c converter) point(px, py float64) (x, y float64) {
	return px / c.ppu, (c.mapHeight - py) / c.ppu
}

func (c converter) rect(o *tiled.Object) Rect {
	return Rect{
		X: o.X / c.ppu,
		Y: (c.mapHeight - o.Y - o.Height) / c.ppu,
		W: o.Width / c.ppu,
		H: o.Height / c.ppu,
	}
}
