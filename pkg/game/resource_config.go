package game

// Image resource IDs used by the game scene.
// Every ID must be present in the manifest; LoadAll fails otherwise.
const (
	ImageBackground   = "IMAGE_BACKGROUND"
	ImageMouse        = "IMAGE_MOUSE"
	ImageWelcomeGirl  = "IMAGE_WELCOME"
	ImageDialog       = "IMAGE_TOAST"
	ImageStartButton  = "IMAGE_START"
	ImageDropBar      = "IMAGE_START_TOAST"
	ImagePlayer       = "IMAGE_PEASHOOTER"
	ImageProjectile   = "IMAGE_PEA"
	ImageEnemy        = "IMAGE_COVID19"
	ImageHealth       = "IMAGE_LIFE"
	ImageWin          = "IMAGE_WIN"
	ImageLose         = "IMAGE_LOSE"
	ImageRestart      = "IMAGE_RESTART"
	ImageClickMarker  = "IMAGE_CLICK"
	defaultBasePath   = "resources"
	resourceConfigVer = "1.0"
)

// RequiredImageIDs lists the images the game cannot start without, in load order.
var RequiredImageIDs = []string{
	ImageBackground,
	ImageMouse,
	ImageWelcomeGirl,
	ImageDialog,
	ImageStartButton,
	ImageDropBar,
	ImagePlayer,
	ImageProjectile,
	ImageEnemy,
	ImageHealth,
	ImageWin,
	ImageLose,
	ImageRestart,
	ImageClickMarker,
}

// ResourceConfig represents the resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: resources
//	images:
//	  - id: IMAGE_BACKGROUND
//	    path: background.png
type ResourceConfig struct {
	Version  string          `yaml:"version"`   // Configuration file version
	BasePath string          `yaml:"base_path"` // Base path for all resources (e.g., "resources")
	Images   []ImageResource `yaml:"images"`    // Image resources
}

// ImageResource represents a single image resource definition.
//
// Fields:
//   - ID: Unique identifier for the image (e.g., "IMAGE_BACKGROUND")
//   - Path: Relative path from base_path to the image file
type ImageResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// DefaultResourceConfig returns the built-in manifest with the shipped file names.
// It is used when no manifest file is present next to the executable.
func DefaultResourceConfig() *ResourceConfig {
	return &ResourceConfig{
		Version:  resourceConfigVer,
		BasePath: defaultBasePath,
		Images: []ImageResource{
			{ID: ImageBackground, Path: "background.png"},
			{ID: ImageMouse, Path: "mouse.png"},
			{ID: ImageWelcomeGirl, Path: "welcome.png"},
			{ID: ImageDialog, Path: "toast.png"},
			{ID: ImageStartButton, Path: "start.png"},
			{ID: ImageDropBar, Path: "startToust.png"},
			{ID: ImagePlayer, Path: "wd.png"},
			{ID: ImageProjectile, Path: "wdzd.png"},
			{ID: ImageEnemy, Path: "covid19.png"},
			{ID: ImageHealth, Path: "life.png"},
			{ID: ImageWin, Path: "win.png"},
			{ID: ImageLose, Path: "lose.png"},
			{ID: ImageRestart, Path: "restart.png"},
			{ID: ImageClickMarker, Path: "click.png"},
		},
	}
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "resources")
//   - relativePath: The resource's relative path (e.g., "background.png")
//
// Returns:
//   - The full file path (e.g., "resources/background.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	// Simple path joining - handles the case where relative path might start with /
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
