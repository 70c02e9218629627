package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game images.
// It resolves resource IDs through a YAML manifest and caches every decoded image,
// so each file is read exactly once during the whole run.
//
// All images are expected to be loaded up front with LoadAll before the game loop
// starts; draw code only reads the cache through GetImageByID.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches are plain Go maps and are only
// touched from the main goroutine.
//
// Usage:
//
//	rm := NewResourceManager()
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := rm.LoadAll(); err != nil {
//	    log.Fatal(err)
//	}
type ResourceManager struct {
	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image

	config      *ResourceConfig   // Parsed YAML manifest
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates a ResourceManager with empty caches and the built-in manifest.
func NewResourceManager() *ResourceManager {
	rm := &ResourceManager{
		imageCache:  make(map[string]*ebiten.Image),
		resourceMap: make(map[string]string),
	}
	rm.SetResourceConfig(DefaultResourceConfig())
	return rm
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "resources/background.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadResourceConfig loads the resource manifest from a YAML file.
// A missing file is not an error: the built-in manifest stays in effect.
//
// Parameters:
//   - configPath: Path to the YAML manifest (e.g., "assets/config/resources.yaml")
//
// Returns:
//   - An error if the file exists but cannot be read or parsed
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[ResourceManager] %s not found, using built-in manifest", configPath)
			return nil
		}
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.SetResourceConfig(&config)
	log.Printf("[ResourceManager] Loaded manifest %s (version %s, %d images)", configPath, config.Version, len(config.Images))
	return nil
}

// SetResourceConfig replaces the active manifest and rebuilds the ID lookup table.
func (rm *ResourceManager) SetResourceConfig(config *ResourceConfig) {
	rm.config = config
	rm.buildResourceMap()
}

// SetBasePath overrides the manifest's base path (e.g., from the -resources flag).
func (rm *ResourceManager) SetBasePath(basePath string) {
	if rm.config == nil || basePath == "" {
		return
	}
	rm.config.BasePath = basePath
	rm.buildResourceMap()
}

// BasePath returns the base path of the active manifest.
func (rm *ResourceManager) BasePath() string {
	if rm.config == nil {
		return ""
	}
	return rm.config.BasePath
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}
	for _, img := range rm.config.Images {
		rm.resourceMap[img.ID] = buildFullPath(rm.config.BasePath, img.Path)
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// LoadImageByID loads an image using its resource ID from the manifest.
//
// Parameters:
//   - resourceID: The resource ID (e.g., "IMAGE_BACKGROUND")
//
// Returns:
//   - A pointer to the loaded ebiten.Image
//   - An error if the resource ID is not found or the image cannot be loaded
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID.
// It returns nil if the ID is unknown or the image has not been loaded.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.imageCache[filePath]
}

// LoadAll loads every image in RequiredImageIDs.
// It stops at the first failure; the game must not start with missing images.
func (rm *ResourceManager) LoadAll() error {
	for _, id := range RequiredImageIDs {
		if _, err := rm.LoadImageByID(id); err != nil {
			return fmt.Errorf("failed to load %s: %w", id, err)
		}
	}
	log.Printf("[ResourceManager] Loaded %d images from %s", len(RequiredImageIDs), rm.BasePath())
	return nil
}

// Validate checks every required image without creating GPU images.
// Each required ID must resolve through the manifest to a file whose header decodes.
//
// Returns:
//   - One error per broken resource; empty when every image is usable.
func (rm *ResourceManager) Validate() []error {
	var problems []error
	for _, id := range RequiredImageIDs {
		path, ok := rm.ResolvePath(id)
		if !ok {
			problems = append(problems, fmt.Errorf("%s: not declared in manifest", id))
			continue
		}
		if err := checkImageFile(path); err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", id, err))
		}
	}
	return problems
}

// checkImageFile decodes only the image header of path.
func checkImageFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	if _, _, err := image.DecodeConfig(file); err != nil {
		return fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return nil
}
