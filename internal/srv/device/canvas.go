package device

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/images"
	"github.com/sirupsen/logrus"
)

const DefaultImageCapacity = 64

type layer struct {
	handle   face.ImageHandle
	placed   bool
	position image.Point
	hidden   bool
}

// Canvas is the face compositor: it allocates slot bitmaps and composes the
// visible ones over the background. Only the event loop uses it.
type Canvas struct {
	capacity   int
	nextHandle face.ImageHandle
	bitmaps    map[face.ImageHandle]*image.RGBA
	layers     [face.SLOT_COUNT]layer
	dirty      bool

	acquireCount int64
	releaseCount int64
}

func NewCanvas(capacity int) *Canvas {
	if capacity <= 0 {
		capacity = DefaultImageCapacity
	}
	return &Canvas{
		capacity: capacity,
		bitmaps:  make(map[face.ImageHandle]*image.RGBA),
		dirty:    true,
	}
}

func (c *Canvas) AcquireImage(imageId face.ImageId) (face.ImageHandle, error) {
	src := images.Image(imageId)
	if src == nil {
		return 0, fmt.Errorf("unknown image %d: %w", imageId, face.ErrResourceUnavailable)
	}
	if len(c.bitmaps) >= c.capacity {
		return 0, fmt.Errorf("%d bitmaps already allocated: %w", len(c.bitmaps), face.ErrResourceUnavailable)
	}

	bitmap := image.NewRGBA(src.Bounds())
	draw.Draw(bitmap, bitmap.Bounds(), src, src.Bounds().Min, draw.Src)

	c.nextHandle++
	c.bitmaps[c.nextHandle] = bitmap
	c.acquireCount++
	return c.nextHandle, nil
}

func (c *Canvas) ReleaseImage(handle face.ImageHandle) {
	if _, ok := c.bitmaps[handle]; !ok {
		logrus.Warnf("Release of unknown bitmap %d", handle)
		return
	}
	delete(c.bitmaps, handle)
	c.releaseCount++

	for i := range c.layers {
		if c.layers[i].placed && c.layers[i].handle == handle {
			c.layers[i].placed = false
			c.dirty = true
		}
	}
}

func (c *Canvas) PlaceImage(slotId face.SlotId, handle face.ImageHandle, position image.Point) {
	c.layers[slotId] = layer{
		handle:   handle,
		placed:   true,
		position: position,
		hidden:   c.layers[slotId].hidden,
	}
	c.dirty = true
}

func (c *Canvas) SetVisible(slotId face.SlotId, visible bool) {
	if c.layers[slotId].hidden == !visible {
		return
	}
	c.layers[slotId].hidden = !visible
	if c.layers[slotId].placed {
		c.dirty = true
	}
}

// Dirty reports whether a layer changed since the last Compose
func (c *Canvas) Dirty() bool {
	return c.dirty
}

// Compose renders the background and every visible layer, in slot order
func (c *Canvas) Compose() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, face.Width, face.Height))
	draw.Draw(img, img.Bounds(), images.BackgroundImage, image.Point{}, draw.Src)

	for _, l := range c.layers {
		if !l.placed || l.hidden {
			continue
		}
		bitmap := c.bitmaps[l.handle]
		draw.Draw(img, bitmap.Bounds().Sub(bitmap.Bounds().Min).Add(l.position), bitmap, bitmap.Bounds().Min, draw.Over)
	}
	c.dirty = false
	return img
}

func (c *Canvas) LiveImages() int {
	return len(c.bitmaps)
}

func (c *Canvas) Counts() (acquired int64, released int64) {
	return c.acquireCount, c.releaseCount
}
