package game

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTestImage creates a simple test PNG image for testing purposes.
func createTestImage(path string) error {
	// Create a simple 10x10 blue image
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// createDefaultResources writes every image of the built-in manifest under dir.
func createDefaultResources(t *testing.T, dir string) {
	t.Helper()
	for _, img := range DefaultResourceConfig().Images {
		if err := createTestImage(filepath.Join(dir, img.Path)); err != nil {
			t.Fatalf("Failed to create test image %s: %v", img.Path, err)
		}
	}
}

// TestNewResourceManager tests the creation of a new ResourceManager instance.
func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager()

	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.imageCache == nil {
		t.Error("imageCache is nil")
	}
	if rm.BasePath() != "resources" {
		t.Errorf("BasePath: got %q, want %q", rm.BasePath(), "resources")
	}

	// Every required ID must resolve through the built-in manifest
	for _, id := range RequiredImageIDs {
		if _, ok := rm.ResolvePath(id); !ok {
			t.Errorf("Built-in manifest is missing %s", id)
		}
	}
}

// TestLoadImage_Success tests successful image loading.
func TestLoadImage_Success(t *testing.T) {
	testImagePath := filepath.Join(t.TempDir(), "test.png")
	if err := createTestImage(testImagePath); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	rm := NewResourceManager()
	img, err := rm.LoadImage(testImagePath)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img == nil {
		t.Fatal("LoadImage returned nil image")
	}

	bounds := img.Bounds()
	if bounds.Dx() != 10 || bounds.Dy() != 10 {
		t.Errorf("Image dimensions incorrect: got %dx%d, want 10x10", bounds.Dx(), bounds.Dy())
	}
}

// TestLoadImage_CachingMechanism tests that images are cached properly.
func TestLoadImage_CachingMechanism(t *testing.T) {
	testImagePath := filepath.Join(t.TempDir(), "test_cache.png")
	if err := createTestImage(testImagePath); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	rm := NewResourceManager()
	img1, err := rm.LoadImage(testImagePath)
	if err != nil {
		t.Fatalf("First LoadImage failed: %v", err)
	}

	// Removing the file proves the second call is served from the cache
	if err := os.Remove(testImagePath); err != nil {
		t.Fatalf("Failed to remove test image: %v", err)
	}

	img2, err := rm.LoadImage(testImagePath)
	if err != nil {
		t.Fatalf("Second LoadImage failed: %v", err)
	}
	if img1 != img2 {
		t.Error("Image caching failed: different instances returned")
	}
	if rm.GetImage(testImagePath) != img1 {
		t.Error("GetImage did not return the cached image")
	}
}

// TestLoadImage_FileNotFound tests error handling for non-existent files.
func TestLoadImage_FileNotFound(t *testing.T) {
	rm := NewResourceManager()

	img, err := rm.LoadImage(filepath.Join(t.TempDir(), "nonexistent.png"))
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
	if img != nil {
		t.Error("Expected nil image for non-existent file")
	}
}

// TestLoadImage_InvalidFormat tests error handling for files that are not images.
func TestLoadImage_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	rm := NewResourceManager()
	if _, err := rm.LoadImage(path); err == nil {
		t.Error("Expected decode error, got nil")
	}
}

// TestLoadResourceConfig tests manifest parsing and ID resolution.
func TestLoadResourceConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "resources.yaml")
	manifest := `
version: "1.0"
base_path: custom
images:
  - id: IMAGE_BACKGROUND
    path: bg/background.png
  - id: IMAGE_PEA
    path: /pea.png
`
	if err := os.WriteFile(configPath, []byte(manifest), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	rm := NewResourceManager()
	if err := rm.LoadResourceConfig(configPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	tests := []struct {
		id       string
		wantPath string
		wantOK   bool
	}{
		{ImageBackground, "custom/bg/background.png", true},
		{ImageProjectile, "custom/pea.png", true},
		{ImageEnemy, "", false},
	}
	for _, tt := range tests {
		path, ok := rm.ResolvePath(tt.id)
		if ok != tt.wantOK || path != tt.wantPath {
			t.Errorf("ResolvePath(%s) = (%q, %v), want (%q, %v)", tt.id, path, ok, tt.wantPath, tt.wantOK)
		}
	}
}

// TestLoadResourceConfig_Missing tests that a missing manifest keeps the built-in one.
func TestLoadResourceConfig_Missing(t *testing.T) {
	rm := NewResourceManager()
	if err := rm.LoadResourceConfig(filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("Missing manifest should not be an error, got: %v", err)
	}

	path, ok := rm.ResolvePath(ImagePlayer)
	if !ok || path != "resources/wd.png" {
		t.Errorf("ResolvePath(%s) = (%q, %v), want (%q, true)", ImagePlayer, path, ok, "resources/wd.png")
	}
}

// TestLoadResourceConfig_Invalid tests that a malformed manifest is reported.
func TestLoadResourceConfig_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "resources.yaml")
	if err := os.WriteFile(configPath, []byte("images: [unterminated"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	rm := NewResourceManager()
	if err := rm.LoadResourceConfig(configPath); err == nil {
		t.Error("Expected parse error, got nil")
	}
}

// TestLoadAll_Success tests loading the full image set once at startup.
func TestLoadAll_Success(t *testing.T) {
	dir := t.TempDir()
	createDefaultResources(t, dir)

	rm := NewResourceManager()
	rm.SetBasePath(dir)

	if err := rm.LoadAll(); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	for _, id := range RequiredImageIDs {
		if rm.GetImageByID(id) == nil {
			t.Errorf("GetImageByID(%s) returned nil after LoadAll", id)
		}
	}
}

// TestLoadAll_MissingImage tests that one missing image aborts startup.
func TestLoadAll_MissingImage(t *testing.T) {
	dir := t.TempDir()
	createDefaultResources(t, dir)
	if err := os.Remove(filepath.Join(dir, "covid19.png")); err != nil {
		t.Fatalf("Failed to remove image: %v", err)
	}

	rm := NewResourceManager()
	rm.SetBasePath(dir)

	err := rm.LoadAll()
	if err == nil {
		t.Fatal("Expected LoadAll to fail with a missing image")
	}
	if !strings.Contains(err.Error(), ImageEnemy) {
		t.Errorf("Error should name the missing resource ID, got: %v", err)
	}
}

// TestLoadImageByID_UnknownID tests error handling for IDs missing from the manifest.
func TestLoadImageByID_UnknownID(t *testing.T) {
	rm := NewResourceManager()

	if _, err := rm.LoadImageByID("IMAGE_DOES_NOT_EXIST"); err == nil {
		t.Error("Expected error for unknown ID, got nil")
	}
	if rm.GetImageByID("IMAGE_DOES_NOT_EXIST") != nil {
		t.Error("GetImageByID should return nil for unknown ID")
	}
}

// TestBuildFullPath tests path joining for manifest entries.
func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"resources", "wd.png", "resources/wd.png"},
		{"resources", "/wd.png", "resources/wd.png"},
		{"", "wd.png", "wd.png"},
	}
	for _, tt := range tests {
		if got := buildFullPath(tt.base, tt.rel); got != tt.want {
			t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.want)
		}
	}
}

// TestValidate tests manifest validation without loading GPU images.
func TestValidate(t *testing.T) {
	dir := t.TempDir()
	createDefaultResources(t, dir)

	rm := NewResourceManager()
	rm.SetBasePath(dir)
	if problems := rm.Validate(); len(problems) != 0 {
		t.Fatalf("Validate on complete resources: %v", problems)
	}

	// One missing file and one broken file
	if err := os.Remove(filepath.Join(dir, "life.png")); err != nil {
		t.Fatalf("Failed to remove image: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "win.png"), []byte("broken"), 0644); err != nil {
		t.Fatalf("Failed to write broken image: %v", err)
	}

	problems := rm.Validate()
	if len(problems) != 2 {
		t.Fatalf("Validate: got %d problems, want 2: %v", len(problems), problems)
	}
	if !strings.Contains(problems[0].Error(), ImageHealth) && !strings.Contains(problems[1].Error(), ImageHealth) {
		t.Errorf("problems should mention %s: %v", ImageHealth, problems)
	}
}

// TestValidate_UndeclaredID tests that a manifest missing a required ID is reported.
func TestValidate_UndeclaredID(t *testing.T) {
	rm := NewResourceManager()
	rm.SetResourceConfig(&ResourceConfig{BasePath: t.TempDir()})

	problems := rm.Validate()
	if len(problems) != len(RequiredImageIDs) {
		t.Errorf("Validate: got %d problems, want %d", len(problems), len(RequiredImageIDs))
	}
}
