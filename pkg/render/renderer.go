// pkg/render/renderer.go
package render

import (
	"image/color"

	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer рисует все сущности с Renderable как залитые прямоугольники.
type Renderer struct {
	viewport utils.Viewport
	palette  Palette
}

func NewRenderer(screenWidth, screenHeight int, palette Palette) *Renderer {
	return &Renderer{
		viewport: utils.Viewport{Width: float64(screenWidth), Height: float64(screenHeight)},
		palette:  palette,
	}
}

// Draw заливает фон и рисует мир. Замороженная сессия рисуется затемнённой.
func (r *Renderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(r.palette.Background)

	frozen := !ecs.Session.Active
	for _, id := range ecs.DrawOrder() {
		renderable := ecs.Renderables[id]
		if renderable == nil || !ecs.Alive(id) {
			continue
		}
		c := renderable.Color
		if frozen {
			c = DarkenColor(c)
		}
		r.drawBox(screen, ecs, id, c)
	}

	// Обводка поверх, чтобы защитник читался на фоне снарядов
	if !frozen {
		id, _ := ecs.Defender()
		x, y, w, h := r.screenRect(ecs, id)
		vector.StrokeRect(screen, x, y, w, h, r.palette.StrokeWidth, r.palette.DefenderStroke, false)
	}
}

func (r *Renderer) drawBox(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, c color.Color) {
	x, y, w, h := r.screenRect(ecs, id)
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

func (r *Renderer) screenRect(ecs *entity.ECS, id types.EntityID) (x, y, w, h float32) {
	box := ecs.Bounds(id)
	sx, sy := r.viewport.RectToScreen(box)
	return float32(sx), float32(sy), float32(box.Width), float32(box.Height)
}
