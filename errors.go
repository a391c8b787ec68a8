package main

import "errors"

// Error kinds returned by generate. Match them with errors.Is; the wrapped
// error keeps the underlying I/O or decoder message.
var (
	ErrMissingSource     = errors.New("source image not found")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrDecode            = errors.New("cannot decode source image")
	ErrWrite             = errors.New("cannot write output image")
)
