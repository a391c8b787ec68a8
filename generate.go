package main

import (
	"path/filepath"
	"strings"
)

const (
	defaultAsset     = "human"
	defaultAssetsDir = "../assets"
	selectedSuffix   = "_selected"
)

// sourcePath returns <assetsDir>/<asset>.png.
func sourcePath(assetsDir, asset string) string {
	return filepath.Join(assetsDir, asset+".png")
}

// selectedPath derives the output file next to path: same directory, same
// extension, stem suffixed with _selected.
func selectedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + selectedSuffix + ext
}

// generate reads the asset, builds its selection outline and writes it next
// to the source. It returns the path of the written file.
func generate(assetsDir, asset string) (string, error) {
	src := sourcePath(assetsDir, asset)

	img, err := loadImage(src)
	if err != nil {
		return "", err
	}

	out := selectedPath(src)
	if err := saveImage(out, outline(img)); err != nil {
		return "", err
	}
	return out, nil
}
