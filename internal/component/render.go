// component/render.go
package component

import "image/color"

// Renderable is the fill color of an entity.
type Renderable struct {
	Color color.RGBA
}
