package srv

import (
	"image"

	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/images"
	"github.com/sirupsen/logrus"
)

// refreshDisplay pushes a new frame to the screen when the current one is stale
func (s *ServerApp) refreshDisplay() {
	var imgToDisplay image.Image

	switch s.currentMode {
	case UNDEFINED_MODE:
		imgToDisplay = images.IntroImage
	case FACE_MODE:
		if !s.canvas.Dirty() && s.lastFrame != nil {
			return
		}
		logrus.Debugf("Display face")
		imgToDisplay = s.canvas.Compose()
	case END_MODE:
		img := image.NewRGBA(image.Rect(0, 0, face.Width, face.Height))
		AddCenteredLabel(img, face.Height/2, "See you!")
		imgToDisplay = img
	}

	s.lastFrame = imgToDisplay
	s.screen.ShowImage(imgToDisplay)
}
