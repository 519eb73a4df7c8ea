package renderer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// findVideoFile tries the conventional quality-folder path first, then
// falls back to a recursive search for MainScene.mp4 / MainScene.mov
// anywhere under mediaDir.
func findVideoFile(mediaDir string, q model.Quality) (string, error) {
	conventional := filepath.Join(mediaDir, "videos", "scene", QualityFolder(q), "MainScene.mp4")
	if exists(conventional) {
		return conventional, nil
	}

	var found string
	_ = filepath.WalkDir(mediaDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || found != "" || d.IsDir() {
			return nil
		}
		name := d.Name()
		if name == "MainScene.mp4" || name == "MainScene.mov" {
			found = path
		}
		return nil
	})
	if found == "" {
		return "", fmt.Errorf("renderer: no output file found under %s", mediaDir)
	}
	return found, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
