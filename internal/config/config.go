// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	PlayerSpeed  = 300.0
	PlayerRadius = 20.0
	PlayerDepth  = 1.0

	ProjectileSpeed     = 1000.0 // единиц в секунду
	ProjectileRadius    = 4.0
	ProjectileMaxTravel = 2000.0
	ProjectileMaxLive   = 512

	CameraDepth    = 999.9
	CameraPanSpeed = PlayerSpeed
	ZoomStep       = 0.03
	MinZoom        = 0.5
	MaxZoom        = 4.0

	ArrivalEpsilon = 0.5
	NPCSpeed       = 120.0
	NPCRadius      = 12.0

	// Карта: 2x2 чанка по 8x8 тайлов, тайл 16 пикселей
	MapWidthChunks  = 2
	MapHeightChunks = 2
	ChunkSize       = 8
	TileSize        = 16.0
	MapOriginX      = -128.0
	MapOriginY      = -128.0
	DefaultTile     = 0

	ScatterCount         = 40
	ScatterTile          = 2
	ScatterRegionScale   = 0.5
	ScatterStartFrame    = 2
	ScatterFrameCount    = 4
	ScatterFrameDuration = 0.25 // секунд на кадр
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PlayerColor      = color.RGBA{240, 240, 240, 255}
	NPCColor         = color.RGBA{220, 60, 60, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	StrokeColor      = color.RGBA{255, 255, 255, 255}
	// Палитра тайлов по индексу
	TileColors = []color.RGBA{
		{70, 100, 120, 255},
		{60, 90, 110, 255},
		{50, 205, 50, 255},
		{40, 170, 40, 255},
		{30, 140, 30, 255},
		{20, 110, 20, 255},
	}
)
