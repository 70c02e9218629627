package scenes

import (
	"github.com/decker502/pvcovid/pkg/game"
)

// Scene is a type alias for game.Scene so callers only need to import scenes.
type Scene = game.Scene
