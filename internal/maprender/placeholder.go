package maprender

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/ShuvayuX/paris-startup-map/internal/directory/domain"
)

const (
	canvasWidth  = 1000
	canvasHeight = 1000
	gridStep     = 200
	markerSize   = 20
	// Zoom level at which the projection scale is exactly 1.
	scaleBaseZoom = 10
)

var (
	backgroundColor = color.RGBA{226, 232, 240, 255}
	gridColor       = color.RGBA{203, 213, 225, 255}
	centerColor     = color.RGBA{59, 130, 246, 255}
	markerFill      = color.RGBA{255, 255, 255, 255}
	markerBorder    = color.RGBA{148, 163, 184, 255}
	selectedBorder  = color.RGBA{59, 130, 246, 255}
	labelColor      = color.RGBA{51, 65, 85, 255}
)

// PlaceholderRenderer draws a simplified local approximation of the map: a
// projected plane with one marker per startup, used when no provider token
// is configured. The projection is a fixed equirectangular style centered on
// the default Paris view.
type PlaceholderRenderer struct {
	face font.Face
}

// NewPlaceholderRenderer parses the bundled font once and returns a renderer.
func NewPlaceholderRenderer() (*PlaceholderRenderer, error) {
	parsed, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(parsed, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &PlaceholderRenderer{face: face}, nil
}

// Project converts geographic coordinates to canvas pixels for the given
// camera. Scale doubles per zoom level; bearing rotates the plane around the
// canvas center. Pitch is ignored, the placeholder is flat.
func Project(lng, lat float64, view domain.ViewState) (float64, float64) {
	center := domain.DefaultViewState()
	scale := math.Pow(2, view.Zoom-scaleBaseZoom)

	x := float64(canvasWidth)/2 + (lng-center.Longitude)*float64(canvasWidth)*scale/10
	y := float64(canvasHeight)/2 - (lat-center.Latitude)*float64(canvasHeight)*scale/5

	if view.Bearing != 0 {
		theta := view.Bearing * math.Pi / 180
		dx := x - float64(canvasWidth)/2
		dy := y - float64(canvasHeight)/2
		x = float64(canvasWidth)/2 + dx*math.Cos(theta) - dy*math.Sin(theta)
		y = float64(canvasHeight)/2 + dx*math.Sin(theta) + dy*math.Cos(theta)
	}

	return x, y
}

// Render draws the current filtered set and camera into a PNG. Selection
// highlighting is purely a function of id equality with selectedID.
func (r *PlaceholderRenderer) Render(view domain.ViewState, startups []domain.Startup, selectedID string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	drawGrid(img)

	center := domain.DefaultViewState()
	cx, cy := Project(center.Longitude, center.Latitude, view)
	fillCircle(img, int(cx), int(cy), 8, centerColor)
	r.drawLabel(img, "Paris", int(cx), int(cy)+22)

	// Draw the selected marker last so its highlight stays on top.
	var selected *domain.Startup
	for i := range startups {
		if startups[i].ID == selectedID {
			selected = &startups[i]
			continue
		}
		r.drawMarker(img, startups[i], view, false)
	}
	if selected != nil {
		r.drawMarker(img, *selected, view, true)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode placeholder map: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PlaceholderRenderer) drawMarker(img *image.RGBA, s domain.Startup, view domain.ViewState, selected bool) {
	x, y := Project(s.Location.Longitude, s.Location.Latitude, view)

	half := markerSize / 2
	rect := image.Rect(int(x)-half, int(y)-half, int(x)+half, int(y)+half)

	border := markerBorder
	if selected {
		border = selectedBorder
		rect = rect.Inset(-2)
	}

	fillRect(img, rect, border)
	fillRect(img, rect.Inset(2), markerFill)

	r.drawLabel(img, s.Name, int(x), rect.Max.Y+14)
}

func (r *PlaceholderRenderer) drawLabel(img *image.RGBA, text string, centerX, baselineY int) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: r.face,
	}
	width := drawer.MeasureString(text)
	drawer.Dot = fixed.Point26_6{
		X: fixed.I(centerX) - width/2,
		Y: fixed.I(baselineY),
	}
	drawer.DrawString(text)
}

func drawGrid(img *image.RGBA) {
	for x := gridStep; x < canvasWidth; x += gridStep {
		for y := 0; y < canvasHeight; y++ {
			img.SetRGBA(x, y, gridColor)
		}
	}
	for y := gridStep; y < canvasHeight; y += gridStep {
		for x := 0; x < canvasWidth; x++ {
			img.SetRGBA(x, y, gridColor)
		}
	}
}

func fillRect(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	draw.Draw(img, rect.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				p := image.Pt(cx+dx, cy+dy)
				if p.In(img.Bounds()) {
					img.SetRGBA(p.X, p.Y, c)
				}
			}
		}
	}
}
