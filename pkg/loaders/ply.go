package loaders

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrMalformedPLY is returned for a PLY header or body that cannot be parsed
var ErrMalformedPLY = errors.New("malformed PLY data")

// maxPLYListLength bounds the item count of a single list property
const maxPLYListLength = 1 << 16

// plyProperty represents a property definition in the PLY header
type plyProperty struct {
	name      string
	dataType  string // Value type, or the item type for lists
	isList    bool
	countType string // For list properties, the type of the count
}

// plyElement is one "element" block of the header
type plyElement struct {
	name  string
	count int
	props []plyProperty
}

// plyHeader represents the parsed header information from a PLY file
type plyHeader struct {
	format   string // "ascii", "binary_little_endian" or "binary_big_endian"
	elements []plyElement
}

// plyValueReader yields successive scalar values from the body
type plyValueReader interface {
	next(dataType string) (float64, error)
}

// LoadPLY opens and parses a PLY file
func LoadPLY(filename string) (*MeshData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Infof("loaded %s: %d vertices, %d triangles in %v",
		filename, len(data.Vertices), data.TriangleCount(), time.Since(startTime))

	return data, nil
}

// ReadPLY reads vertex positions and face index lists in ascii or binary
// (either byte order) form. Polygons are fan triangulated; all other
// elements and properties are read and dropped.
func ReadPLY(reader io.Reader) (*MeshData, error) {
	buffered := bufio.NewReader(reader)

	header, err := parsePLYHeader(buffered)
	if err != nil {
		return nil, err
	}

	var values plyValueReader
	switch header.format {
	case "ascii":
		scanner := bufio.NewScanner(buffered)
		scanner.Split(bufio.ScanWords)
		values = &asciiValueReader{scanner: scanner}
	case "binary_little_endian":
		values = &binaryValueReader{reader: buffered, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryValueReader{reader: buffered, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrMalformedPLY, header.format)
	}

	data := &MeshData{}
	for _, element := range header.elements {
		switch element.name {
		case "vertex":
			err = readPLYVertices(values, element, data)
		case "face":
			err = readPLYFaces(values, element, data)
		default:
			data.Skipped++
			err = skipPLYElement(values, element)
		}
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", element.name, err)
		}
	}

	for _, index := range data.Faces {
		if index < 0 || index >= len(data.Vertices) {
			return nil, fmt.Errorf("%w: face index %d out of range (%d vertices)", ErrMalformedPLY, index, len(data.Vertices))
		}
	}

	if data.Skipped > 0 {
		logger.Debugf("ignored %d unsupported PLY elements or properties", data.Skipped)
	}

	return data, nil
}

// parsePLYHeader reads up to and including the end_header line
func parsePLYHeader(reader *bufio.Reader) (*plyHeader, error) {
	header := &plyHeader{}

	line, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(line) != "ply" {
		return nil, fmt.Errorf("%w: missing ply magic", ErrMalformedPLY)
	}

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: header ended before end_header", ErrMalformedPLY)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			if header.format == "" {
				return nil, fmt.Errorf("%w: header has no format line", ErrMalformedPLY)
			}
			return header, nil
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: invalid format line", ErrMalformedPLY)
			}
			header.format = parts[1]
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: invalid element line", ErrMalformedPLY)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: invalid element count %q", ErrMalformedPLY, parts[2])
			}
			header.elements = append(header.elements, plyElement{name: parts[1], count: count})
		case "property":
			if len(header.elements) == 0 {
				return nil, fmt.Errorf("%w: property before any element", ErrMalformedPLY)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			current := &header.elements[len(header.elements)-1]
			current.props = append(current.props, prop)
		default:
			return nil, fmt.Errorf("%w: unknown header keyword %q", ErrMalformedPLY, parts[0])
		}
	}
}

// parsePLYProperty parses "type name" or "list countType itemType name"
func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) >= 4 && parts[0] == "list" {
		if plyTypeSize(parts[1]) == 0 || plyTypeSize(parts[2]) == 0 {
			return plyProperty{}, fmt.Errorf("%w: unknown list type in %q", ErrMalformedPLY, strings.Join(parts, " "))
		}
		return plyProperty{name: parts[3], dataType: parts[2], isList: true, countType: parts[1]}, nil
	}
	if len(parts) >= 2 && parts[0] != "list" {
		if plyTypeSize(parts[0]) == 0 {
			return plyProperty{}, fmt.Errorf("%w: unknown property type %q", ErrMalformedPLY, parts[0])
		}
		return plyProperty{name: parts[1], dataType: parts[0]}, nil
	}
	return plyProperty{}, fmt.Errorf("%w: invalid property definition", ErrMalformedPLY)
}

func readPLYVertices(values plyValueReader, element plyElement, data *MeshData) error {
	axes := map[string]int{"x": 0, "y": 1, "z": 2}
	found := 0
	for _, prop := range element.props {
		if _, ok := axes[prop.name]; ok && !prop.isList {
			found++
		} else {
			data.Skipped++
		}
	}
	if found != 3 {
		return fmt.Errorf("%w: vertex element needs x, y and z properties", ErrMalformedPLY)
	}

	for i := 0; i < element.count; i++ {
		var coords [3]float64
		for _, prop := range element.props {
			if prop.isList {
				if err := skipPLYList(values, prop); err != nil {
					return err
				}
				continue
			}
			value, err := values.next(prop.dataType)
			if err != nil {
				return err
			}
			if axis, ok := axes[prop.name]; ok {
				coords[axis] = value
			}
		}
		data.Vertices = append(data.Vertices, core.NewVec3(coords[0], coords[1], coords[2]))
	}
	return nil
}

func readPLYFaces(values plyValueReader, element plyElement, data *MeshData) error {
	indexProp := -1
	for i, prop := range element.props {
		if prop.isList && (prop.name == "vertex_indices" || prop.name == "vertex_index") {
			indexProp = i
		} else {
			data.Skipped++
		}
	}
	if indexProp < 0 {
		return fmt.Errorf("%w: face element has no vertex_indices list", ErrMalformedPLY)
	}

	for i := 0; i < element.count; i++ {
		for p, prop := range element.props {
			if p != indexProp {
				if err := skipPLYProperty(values, prop); err != nil {
					return err
				}
				continue
			}

			count, err := readPLYListLength(values, prop)
			if err != nil {
				return fmt.Errorf("face %d: %w", i, err)
			}
			if count < 3 {
				return fmt.Errorf("%w: face %d has %d vertices", ErrMalformedPLY, i, count)
			}

			indices := make([]int, count)
			for k := range indices {
				value, err := values.next(prop.dataType)
				if err != nil {
					return err
				}
				index, err := plyInteger(value, math.MaxInt32)
				if err != nil {
					return fmt.Errorf("face %d index: %w", i, err)
				}
				indices[k] = index
			}

			// Fan triangulation around the first vertex
			for k := 1; k+1 < len(indices); k++ {
				data.Faces = append(data.Faces, indices[0], indices[k], indices[k+1])
			}
		}
	}
	return nil
}

func skipPLYElement(values plyValueReader, element plyElement) error {
	for i := 0; i < element.count; i++ {
		for _, prop := range element.props {
			if err := skipPLYProperty(values, prop); err != nil {
				return err
			}
		}
	}
	return nil
}

func skipPLYProperty(values plyValueReader, prop plyProperty) error {
	if prop.isList {
		return skipPLYList(values, prop)
	}
	_, err := values.next(prop.dataType)
	return err
}

func skipPLYList(values plyValueReader, prop plyProperty) error {
	count, err := readPLYListLength(values, prop)
	if err != nil {
		return err
	}
	for k := 0; k < count; k++ {
		if _, err := values.next(prop.dataType); err != nil {
			return err
		}
	}
	return nil
}

// readPLYListLength reads and checks the item count that starts a list property
func readPLYListLength(values plyValueReader, prop plyProperty) (int, error) {
	value, err := values.next(prop.countType)
	if err != nil {
		return 0, err
	}
	count, err := plyInteger(value, maxPLYListLength)
	if err != nil {
		return 0, fmt.Errorf("list %s length: %w", prop.name, err)
	}
	return count, nil
}

// plyInteger converts a decoded value to an int in [0, limit]
func plyInteger(value float64, limit int) (int, error) {
	if math.IsNaN(value) || value < 0 || value > float64(limit) || value != math.Trunc(value) {
		return 0, fmt.Errorf("%w: %g is not an integer in [0, %d]", ErrMalformedPLY, value, limit)
	}
	return int(value), nil
}

// plyTypeSize returns the byte size of a PLY scalar type, or 0 if unknown
func plyTypeSize(dataType string) int {
	switch dataType {
	case "char", "uchar", "int8", "uint8":
		return 1
	case "short", "ushort", "int16", "uint16":
		return 2
	case "int", "uint", "int32", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	default:
		return 0
	}
}

type asciiValueReader struct {
	scanner *bufio.Scanner
}

func (r *asciiValueReader) next(dataType string) (float64, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read PLY data: %w", err)
		}
		return 0, fmt.Errorf("%w: unexpected end of data", ErrMalformedPLY)
	}
	value, err := strconv.ParseFloat(r.scanner.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s value %q", ErrMalformedPLY, dataType, r.scanner.Text())
	}
	return value, nil
}

type binaryValueReader struct {
	reader io.Reader
	order  binary.ByteOrder
	buf    [8]byte
}

func (r *binaryValueReader) next(dataType string) (float64, error) {
	size := plyTypeSize(dataType)
	b := r.buf[:size]
	if _, err := io.ReadFull(r.reader, b); err != nil {
		return 0, fmt.Errorf("%w: unexpected end of data: %v", ErrMalformedPLY, err)
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(b[0])), nil
	case "uchar", "uint8":
		return float64(b[0]), nil
	case "short", "int16":
		return float64(int16(r.order.Uint16(b))), nil
	case "ushort", "uint16":
		return float64(r.order.Uint16(b)), nil
	case "int", "int32":
		return float64(int32(r.order.Uint32(b))), nil
	case "uint", "uint32":
		return float64(r.order.Uint32(b)), nil
	case "float", "float32":
		return float64(math.Float32frombits(r.order.Uint32(b))), nil
	default:
		return math.Float64frombits(r.order.Uint64(b)), nil
	}
}
