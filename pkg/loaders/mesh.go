package loaders

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

var logger = log.New("loaders")

// ErrUnsupportedFormat is returned by LoadMesh for an unknown file extension
var ErrUnsupportedFormat = errors.New("unsupported mesh format")

// MeshData contains the triangle geometry read from a mesh file
type MeshData struct {
	Vertices []core.Vec3 // Vertex positions
	Faces    []int       // Triangle indices (3 per triangle, 0-based)
	Skipped  int         // Statements or properties the reader ignores (normals, uvs, colors, groups)
}

// TriangleCount returns the number of triangles after fan triangulation
func (d *MeshData) TriangleCount() int {
	return len(d.Faces) / 3
}

// LoadMesh picks a reader from the file extension (.obj or .ply)
func LoadMesh(filename string) (*MeshData, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".obj":
		return LoadOBJ(filename)
	case ".ply":
		return LoadPLY(filename)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
