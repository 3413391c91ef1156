// internal/system/camera.go
package system

import (
	"go-maze-runners/internal/config"
	"go-maze-runners/internal/entity"
	"go-maze-runners/internal/utils"
)

// CameraSystem управляет масштабом и следует за игроком
type CameraSystem struct {
	ecs      *entity.ECS
	settings config.CameraSettings
	viewW    float64
	viewH    float64
}

func NewCameraSystem(ecs *entity.ECS, settings config.CameraSettings, viewW, viewH float64) *CameraSystem {
	return &CameraSystem{ecs: ecs, settings: settings, viewW: viewW, viewH: viewH}
}

// UpdateZoom сдвигает целевой масштаб клавишами и плавно подтягивает к нему текущий
func (s *CameraSystem) UpdateZoom(deltaTime float64, zoomIn, zoomOut bool) {
	cam := s.ecs.Camera
	if zoomIn {
		cam.TargetZoom = min(cam.TargetZoom+s.settings.ZoomSpeed*deltaTime, s.settings.MaxZoom)
	}
	if zoomOut {
		cam.TargetZoom = max(cam.TargetZoom-s.settings.ZoomSpeed*deltaTime, s.settings.MinZoom)
	}
	cam.Zoom = utils.Approach(cam.Zoom, cam.TargetZoom, s.settings.InterpRate, deltaTime)
}

// Update пересчитывает смещение камеры по центру игрока
func (s *CameraSystem) Update() {
	cam := s.ecs.Camera
	if s.ecs.Level == nil {
		return
	}
	cs := s.ecs.CellSize
	cx, cy := s.ecs.Player.Center(cs)
	mazeW := float64(s.ecs.Level.Grid.Width) * cs
	mazeH := float64(s.ecs.Level.Grid.Height) * cs
	cam.OffsetX, cam.OffsetY = CameraOffset(cx, cy, mazeW, mazeH, s.viewW, s.viewH, cam.Zoom)
}

// CameraOffset возвращает левый верхний угол видимой области в мировых координатах.
// Центр камеры зажимается так, чтобы вид не выходил за лабиринт;
// если лабиринт меньше вида по оси, он центрируется.
func CameraOffset(centerX, centerY, mazeW, mazeH, viewW, viewH, zoom float64) (float64, float64) {
	halfW := viewW / (2 * zoom)
	halfH := viewH / (2 * zoom)
	return clampAxis(centerX, halfW, mazeW) - halfW, clampAxis(centerY, halfH, mazeH) - halfH
}

func clampAxis(center, half, size float64) float64 {
	if half > size-half {
		return size / 2
	}
	return utils.Clamp(center, half, size-half)
}

// WorldToScreen переводит мировую точку в экранную
func WorldToScreen(x, y float64, ecs *entity.ECS) (float64, float64) {
	cam := ecs.Camera
	return (x - cam.OffsetX) * cam.Zoom, (y - cam.OffsetY) * cam.Zoom
}
