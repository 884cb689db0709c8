// Package bmp writes framebuffers as uncompressed 32-bit bitmap files.
//
// Rows are written in buffer order (row 0 first) with a positive height,
// and each pixel's bytes are emitted exactly as stored (R, G, B, A). Most
// viewers therefore show the image vertically flipped with red and blue
// swapped; the preview package produces an upright copy.
package bmp

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidArgument is returned for an empty image or a pixel slice whose
// length is not width*height*4.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	// PixelOffset is the byte offset of the pixel array.
	PixelOffset = fileHeaderSize + infoHeaderSize
)

// FileHeader is the 14-byte BITMAPFILEHEADER.
type FileHeader struct {
	Type      [2]byte
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

// InfoHeader is the 40-byte BITMAPINFOHEADER.
type InfoHeader struct {
	Size           uint32
	Width          int32
	Height         int32
	Planes         uint16
	BitCount       uint16
	Compression    uint32
	ImageSize      uint32
	XPixPerMeter   int32
	YPixPerMeter   int32
	ColorUsed      uint32
	ColorImportant uint32
}

// Header is both headers as stored at the start of a file.
type Header struct {
	File FileHeader
	Info InfoHeader
}

func newHeader(width, height int) Header {
	imageSize := uint32(width * height * 4)
	return Header{
		File: FileHeader{
			Type:    [2]byte{'B', 'M'},
			Size:    PixelOffset + imageSize,
			OffBits: PixelOffset,
		},
		Info: InfoHeader{
			Size:      infoHeaderSize,
			Width:     int32(width),
			Height:    int32(height),
			Planes:    1,
			BitCount:  32,
			ImageSize: imageSize,
		},
	}
}

// Encode writes a width×height RGBA buffer to w.
func Encode(w io.Writer, width, height int, pix []uint8) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("bmp: size %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if len(pix) != width*height*4 {
		return fmt.Errorf("bmp: %d pixel bytes for %dx%d: %w", len(pix), width, height, ErrInvalidArgument)
	}

	h := newHeader(width, height)
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("bmp: write header: %w", err)
	}
	if _, err := w.Write(pix); err != nil {
		return fmt.Errorf("bmp: write pixels: %w", err)
	}
	return nil
}

// WriteFile encodes the buffer into a new file at path.
func WriteFile(path string, width, height int, pix []uint8) error {
	// Validate before touching the filesystem.
	if width <= 0 || height <= 0 || len(pix) != width*height*4 {
		return Encode(io.Discard, width, height, pix)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bmp: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := Encode(bw, width, height, pix); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("bmp: %w", err)
	}
	return f.Close()
}

// ReadHeader parses the file and info headers from r.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("bmp: read header: %w", err)
	}
	if h.File.Type != [2]byte{'B', 'M'} {
		return Header{}, fmt.Errorf("bmp: bad signature %q", h.File.Type[:])
	}
	return h, nil
}
