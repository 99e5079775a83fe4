package assets

import (
	"embed"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// SkyShader fills the background with a vertical gradient
	SkyShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if SkyShader != nil {
		return nil
	}
	src, err := shaderFS.ReadFile("shaders/sky.kage")
	if err != nil {
		return fmt.Errorf("read sky shader: %w", err)
	}
	SkyShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile sky shader: %w", err)
	}
	return nil
}

// SkyUniforms builds the uniforms for SkyShader.
func SkyUniforms(top, bottom color.RGBA, height int) map[string]any {
	return map[string]any{
		"Top":    rgba(top),
		"Bottom": rgba(bottom),
		"Height": float32(height),
	}
}

func rgba(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}
