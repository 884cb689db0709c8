package main

import (
	"bytes"
	"fmt"
	"os"

	xbmp "golang.org/x/image/bmp"

	"logdepth-renderer/internal/bmp"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: inspectbmp file.bmp")
		os.Exit(2)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	h, err := bmp.ReadHeader(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("File: size=%d (actual %d) offset=%d\n", h.File.Size, len(data), h.File.OffBits)
	fmt.Printf("Info: %dx%d planes=%d bpp=%d compression=%d image=%d\n",
		h.Info.Width, h.Info.Height, h.Info.Planes, h.Info.BitCount, h.Info.Compression, h.Info.ImageSize)

	want := int(h.File.OffBits) + int(h.Info.Width)*int(h.Info.Height)*4
	if h.Info.BitCount == 32 && want != len(data) {
		fmt.Printf("Warning: expected %d bytes\n", want)
	}

	cfg, err := xbmp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("x/image/bmp: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("x/image/bmp: %dx%d ok\n", cfg.Width, cfg.Height)
}
