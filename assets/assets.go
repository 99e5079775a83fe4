package assets

import (
	"embed"
	"image/color"
	"io/fs"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// RangeMap is the default range inside LevelFS.
const RangeMap = "levels/range.tmx"

// LevelFS returns the embedded level files.
func LevelFS() fs.FS {
	return levelFS
}

// Images are drawn procedurally and cached by name; the first call's parameters win.
var imageCache = map[string]*ebiten.Image{}

func cached(name string, build func() *ebiten.Image) *ebiten.Image {
	if img, ok := imageCache[name]; ok {
		return img
	}
	img := build()
	imageCache[name] = img
	return img
}

// BowImage returns the bow drawn facing +x. The string runs down the left edge.
func BowImage(length, thickness float64, c color.Color) *ebiten.Image {
	return cached("bow", func() *ebiten.Image {
		h := int(math.Ceil(length))
		w := int(math.Ceil(length / 3))
		img := ebiten.NewImage(w, h)
		// limb as a polyline bulging away from the string
		const segments = 8
		px, py := float32(0), float32(0)
		for i := 1; i <= segments; i++ {
			t := float64(i) / segments
			x := float32(math.Sin(t*math.Pi)) * float32(w-1)
			y := float32(t) * float32(h)
			vector.StrokeLine(img, px, py, x, y, float32(thickness), c, true)
			px, py = x, y
		}

		// string
		vector.StrokeLine(img, 0, 0, 0, float32(h), 1, color.RGBA{R: 230, G: 230, B: 230, A: 255}, true)
		return img
	})
}

// ArcherImage returns a simple standing figure of w by h pixels.
func ArcherImage(w, h int, c color.Color) *ebiten.Image {
	return cached("archer", func() *ebiten.Image {
		img := ebiten.NewImage(w, h)
		head := float32(w) / 2.6
		cx := float32(w) / 2
		vector.FillCircle(img, cx, head, head, c, true)
		vector.FillRect(img, cx-float32(w)/4, head*2, float32(w)/2, float32(h)*0.45, c, false)
		legTop := head*2 + float32(h)*0.45
		vector.StrokeLine(img, cx, legTop-2, cx-float32(w)/3, float32(h), 3, c, true)
		vector.StrokeLine(img, cx, legTop-2, cx+float32(w)/3, float32(h), 3, c, true)
		return img
	})
}

// ArrowImage returns an arrow pointing along +x with the tip at the right edge.
func ArrowImage(length, thickness float64, c color.Color) *ebiten.Image {
	return cached("arrow", func() *ebiten.Image {
		w := int(math.Ceil(length))
		h := int(math.Ceil(thickness * 4))
		if h < 5 {
			h = 5
		}
		img := ebiten.NewImage(w, h)
		mid := float32(h) / 2
		vector.StrokeLine(img, 0, mid, float32(w)-3, mid, float32(thickness), c, true)

		tip := float32(w)
		vector.StrokeLine(img, tip, mid, tip-5, 0, 1.5, c, true)
		vector.StrokeLine(img, tip, mid, tip-5, float32(h), 1.5, c, true)

		fletch := color.RGBA{R: 200, G: 60, B: 60, A: 255}
		vector.StrokeLine(img, 0, 0, 4, mid, 1, fletch, true)
		vector.StrokeLine(img, 0, float32(h), 4, mid, 1, fletch, true)
		return img
	})
}

// TargetImage returns a side-on target board with rings.
func TargetImage(w, h int, face, ring color.Color) *ebiten.Image {
	return cached("target", func() *ebiten.Image {
		img := ebiten.NewImage(w, h)
		img.Fill(face)
		third := float32(h) / 3
		vector.FillRect(img, 0, third, float32(w), third, ring, false)
		vector.FillRect(img, 0, third+third/3, float32(w), third/3, face, false)
		return img
	})
}

// ClearImageCache drops generated images, used when the window scale changes.
func ClearImageCache() {
	for k, img := range imageCache {
		img.Deallocate()
		delete(imageCache, k)
	}
}
