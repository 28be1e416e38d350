package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotCapture saves rendered frames as timestamped PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// CaptureFromImage writes the image to a timestamped PNG and returns the
// file name. The framebuffer is already top-down, so no row flip is needed.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// GenerateFilename generates a screenshot filename without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", sc.prefix, timestamp)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}
