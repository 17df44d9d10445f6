package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrMalformedOBJ is returned for a vertex or face line that cannot be parsed
var ErrMalformedOBJ = errors.New("malformed OBJ data")

// LoadOBJ opens and parses an OBJ file
func LoadOBJ(filename string) (*MeshData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ReadOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Infof("loaded %s: %d vertices, %d triangles in %v",
		filename, len(data.Vertices), data.TriangleCount(), time.Since(startTime))

	return data, nil
}

// ReadOBJ parses vertex ("v") and face ("f") statements. Polygons are fan
// triangulated; face indices may be 1-based or negative (relative to the
// vertices read so far) and may carry texture/normal references, which are
// dropped.
func ReadOBJ(reader io.Reader) (*MeshData, error) {
	data := &MeshData{}
	lineNum := 0

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		switch tokens[0] {
		case "v":
			v, err := parseOBJVertex(tokens)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			data.Vertices = append(data.Vertices, v)
		case "f":
			indices, err := parseOBJFace(tokens, len(data.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			// Fan triangulation around the first vertex
			for i := 1; i+1 < len(indices); i++ {
				data.Faces = append(data.Faces, indices[0], indices[i], indices[i+1])
			}
		default:
			data.Skipped++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	if data.Skipped > 0 {
		logger.Debugf("ignored %d unsupported OBJ statements", data.Skipped)
	}

	return data, nil
}

// parseOBJVertex reads "v x y z [w]"
func parseOBJVertex(tokens []string) (core.Vec3, error) {
	if len(tokens) < 4 || len(tokens) > 5 {
		return core.Vec3{}, fmt.Errorf("%w: vertex needs 3 coordinates, got %d", ErrMalformedOBJ, len(tokens)-1)
	}

	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(tokens[i+1], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("%w: vertex coordinate %q", ErrMalformedOBJ, tokens[i+1])
		}
		coords[i] = value
	}

	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// parseOBJFace reads "f a b c ..." where each entry is "v", "v/t", "v/t/n" or "v//n"
func parseOBJFace(tokens []string, vertexCount int) ([]int, error) {
	if len(tokens) < 4 {
		return nil, fmt.Errorf("%w: face needs at least 3 vertices, got %d", ErrMalformedOBJ, len(tokens)-1)
	}

	indices := make([]int, 0, len(tokens)-1)
	for _, token := range tokens[1:] {
		ref, _, _ := strings.Cut(token, "/")

		index, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: face index %q", ErrMalformedOBJ, token)
		}

		switch {
		case index > 0:
			index--
		case index < 0:
			index += vertexCount
		default:
			return nil, fmt.Errorf("%w: face index 0 is not valid", ErrMalformedOBJ)
		}

		if index < 0 || index >= vertexCount {
			return nil, fmt.Errorf("%w: face index %s out of range (%d vertices)", ErrMalformedOBJ, ref, vertexCount)
		}
		indices = append(indices, index)
	}

	return indices, nil
}
