package config

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderSettings holds the settings that may change while the editor runs
type RenderSettings struct {
	mu         sync.RWMutex
	fpsLimit   int
	renderMode string
	debugRay   bool
	paintColor mgl32.Vec4
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:   defaultFPSLimit,
	renderMode: defaultRenderMode,
	paintColor: defaultPaintColor,
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.fpsLimit = clampFPS(limit)
}

// GetRenderMode returns "wire" or "filled"
func GetRenderMode() string {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.renderMode
}

// SetRenderMode sets the voxel render mode
func SetRenderMode(mode string) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.renderMode = mode
}

// GetDebugRay reports whether the pick ray is drawn
func GetDebugRay() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.debugRay
}

// SetDebugRay toggles drawing of the pick ray
func SetDebugRay(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.debugRay = enabled
}

// GetPaintColor returns the color applied to painted selections
func GetPaintColor() mgl32.Vec4 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.paintColor
}

// SetPaintColor sets the color applied to painted selections
func SetPaintColor(col mgl32.Vec4) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.paintColor = clampColor(col)
}

// Apply copies the runtime part of a loaded config into the global settings.
// Mesh count and window size only take effect on restart.
func Apply(c Config) {
	SetFPSLimit(c.FPSLimit)
	SetRenderMode(c.RenderMode)
	SetDebugRay(c.DebugRay)
	SetPaintColor(mgl32.Vec4(c.PaintColor))
}

func clampFPS(limit int) int {
	if limit < 0 {
		return 0
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}

func clampColor(col mgl32.Vec4) mgl32.Vec4 {
	for i := range col {
		col[i] = mgl32.Clamp(col[i], 0, 1)
	}
	return col
}
