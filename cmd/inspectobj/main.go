package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"logdepth-renderer/internal/obj"
)

func main() {
	noMaterials := flag.Bool("nomtl", false, "Skip mtllib loading")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspectobj [-nomtl] file.obj")
		os.Exit(2)
	}

	m, err := obj.Load(flag.Arg(0), obj.Options{Materials: !*noMaterials})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Vertices: %d, Triangles: %d, TexCoords: %v, Normals: %v\n",
		len(m.Positions), m.TriangleCount(), m.HasTexCoords, m.HasNormals)

	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for _, v := range m.Positions {
		x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		minZ, maxZ = math.Min(minZ, z), math.Max(maxZ, z)
	}
	if len(m.Positions) > 0 {
		fmt.Printf("BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n", minX, maxX, minY, maxY, minZ, maxZ)
	}

	for i, s := range m.Subsets {
		fmt.Printf("  Subset[%d]: %q offset=%d count=%d\n", i, s.Name, s.Offset, s.Count)
	}
	for _, mat := range m.Materials {
		fmt.Printf("  Material %q: Kd=(%.2f %.2f %.2f) d=%.2f", mat.Name,
			mat.Diffuse[0], mat.Diffuse[1], mat.Diffuse[2], mat.Alpha)
		if mat.DiffuseMap != "" {
			fmt.Printf(" map_Kd=%s", mat.DiffuseMap)
		}
		fmt.Println()
	}
}
