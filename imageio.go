package main

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// sniffLen is how much of the file is buffered before decoding.
	sniffLen = 512

	// IHDR is the first chunk: 8-byte signature, 4-byte length, "IHDR",
	// width, height, then bit depth and color type.
	ihdrTypeOffset      = 12
	ihdrBitDepthOffset  = 24
	ihdrColorTypeOffset = 25

	pngColorTypeRGBA = 6
)

// checkHeader makes sure the buffered start of path is an 8-bit RGBA PNG,
// the only color mode the output can be written back in.
func checkHeader(path string, head []byte) error {
	if len(head) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrDecode, path)
	}

	contentType := http.DetectContentType(head)
	if contentType != "image/png" {
		return fmt.Errorf("%w: %s is %s, want image/png", ErrUnsupportedFormat, path, contentType)
	}

	if len(head) <= ihdrColorTypeOffset || string(head[ihdrTypeOffset:ihdrTypeOffset+4]) != "IHDR" {
		return fmt.Errorf("%w: %s: truncated PNG header", ErrDecode, path)
	}
	depth, colorType := head[ihdrBitDepthOffset], head[ihdrColorTypeOffset]
	if depth != 8 || colorType != pngColorTypeRGBA {
		return fmt.Errorf("%w: %s has color type %d at %d bits, want 8-bit RGBA",
			ErrUnsupportedFormat, path, colorType, depth)
	}
	return nil
}

// loadImage opens path once, checks its header and decodes it from the
// same buffered reader.
func loadImage(path string) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrMissingSource, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer file.Close()

	r := bufio.NewReaderSize(file, sniffLen)
	head, err := r.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	if err := checkHeader(path, head); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		return nil, fmt.Errorf("%w: %s decodes as %T, want 8-bit RGBA", ErrUnsupportedFormat, path, img)
	}
	return nrgba, nil
}

// keepAlpha stops the PNG encoder from dropping the alpha channel when every
// pixel happens to be opaque, so the file stays 8-bit RGBA like its source.
type keepAlpha struct {
	*image.NRGBA
}

func (keepAlpha) Opaque() bool { return false }

// saveImage writes img as an RGBA PNG to path. The data goes to a temporary
// file in the same directory first and is renamed into place, so a failed
// write never leaves a truncated file at path.
func saveImage(path string, img *image.NRGBA) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	file, err := os.CreateTemp(dir, "."+strings.TrimSuffix(base, filepath.Ext(base))+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmpPath := file.Name()
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = imaging.Encode(file, keepAlpha{img}, imaging.PNG); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
