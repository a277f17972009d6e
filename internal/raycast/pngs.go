package raycast

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// SavePNG writes the pixel buffer as an 8-bit RGBA PNG, creating parent directories.
func SavePNG(img *Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := gg.SavePNG(path, img.NRGBA()); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
