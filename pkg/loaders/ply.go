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

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

var logger = log.New("loaders")

// ErrInvalidPLY is returned for PLY files that cannot be parsed
var ErrInvalidPLY = errors.New("invalid PLY file")

// maxListLength bounds the number of items in one list property, such as
// the vertices of a single face
const maxListLength = 1 << 16

// Mesh is an indexed triangle mesh
type Mesh struct {
	Vertices []core.Point3
	Faces    [][3]int // Vertex indices, counter-clockwise seen from the front
}

// Triangles places the mesh in the world, scaling about the origin and
// then translating by offset
func (m *Mesh) Triangles(offset core.Vec3, scale float64, mat *material.Material) []geometry.Hittable {
	place := func(p core.Point3) core.Point3 {
		return core.Point3{}.Offset(p.Vector().Multiply(scale).Add(offset))
	}

	triangles := make([]geometry.Hittable, 0, len(m.Faces))
	for _, face := range m.Faces {
		triangles = append(triangles, geometry.NewTriangle(
			place(m.Vertices[face[0]]),
			place(m.Vertices[face[1]]),
			place(m.Vertices[face[2]]),
			mat,
		))
	}
	return triangles
}

// plyProperty is a property line of the PLY header
type plyProperty struct {
	Name     string
	Type     string // Scalar type, or the element type of a list
	IsList   bool
	ListType string // Type of the list length
}

// plyElement is an element block of the PLY header
type plyElement struct {
	Name       string
	Count      int
	Properties []plyProperty
}

// LoadPLY reads the vertex positions and faces of a PLY file
func LoadPLY(filename string) (*Mesh, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	mesh, err := ParsePLY(file)
	if err != nil {
		return nil, err
	}

	logger.Infof("loaded %s: %d vertices, %d triangles in %v",
		filename, len(mesh.Vertices), len(mesh.Faces), time.Since(startTime))
	return mesh, nil
}

// ParsePLY reads ascii, binary_little_endian or binary_big_endian PLY data.
// Polygons with more than three vertices are split into triangle fans.
// Elements other than vertex and face are skipped.
func ParsePLY(reader io.Reader) (*Mesh, error) {
	buffered := bufio.NewReader(reader)
	format, elements, err := parsePLYHeader(buffered)
	if err != nil {
		return nil, err
	}

	values := &plyValueReader{reader: buffered}
	switch format {
	case "ascii":
	case "binary_little_endian":
		values.order = binary.LittleEndian
	case "binary_big_endian":
		values.order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidPLY, format)
	}

	mesh := &Mesh{}
	for _, element := range elements {
		if err := readPLYElement(values, element, mesh); err != nil {
			return nil, fmt.Errorf("%w: element %s: %v", ErrInvalidPLY, element.Name, err)
		}
	}

	for _, face := range mesh.Faces {
		for _, index := range face {
			if index < 0 || index >= len(mesh.Vertices) {
				return nil, fmt.Errorf("%w: face index %d out of range for %d vertices", ErrInvalidPLY, index, len(mesh.Vertices))
			}
		}
	}
	return mesh, nil
}

func parsePLYHeader(reader *bufio.Reader) (string, []plyElement, error) {
	magic, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return "", nil, fmt.Errorf("%w: missing ply magic", ErrInvalidPLY)
	}

	var format string
	var elements []plyElement
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", nil, fmt.Errorf("%w: header not terminated: %v", ErrInvalidPLY, err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			return format, elements, nil
		case "format":
			if len(parts) < 3 {
				return "", nil, fmt.Errorf("%w: malformed format line", ErrInvalidPLY)
			}
			format = parts[1]
		case "element":
			if len(parts) < 3 {
				return "", nil, fmt.Errorf("%w: malformed element line", ErrInvalidPLY)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return "", nil, fmt.Errorf("%w: invalid element count %q", ErrInvalidPLY, parts[2])
			}
			elements = append(elements, plyElement{Name: parts[1], Count: count})
		case "property":
			if len(elements) == 0 {
				return "", nil, fmt.Errorf("%w: property before element", ErrInvalidPLY)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return "", nil, err
			}
			current := &elements[len(elements)-1]
			current.Properties = append(current.Properties, prop)
		}
	}
}

// plyInteger converts a list length or index. ASCII files can spell any
// float there, so NaN, infinities, fractions and out-of-range values fail.
func plyInteger(value float64) (int, bool) {
	if value != math.Trunc(value) || math.Abs(value) > math.MaxInt32 {
		return 0, false
	}
	return int(value), true
}

// parsePLYProperty parses `type name` or `list count_type item_type name`
func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) >= 4 && parts[0] == "list" {
		return plyProperty{IsList: true, ListType: parts[1], Type: parts[2], Name: parts[3]}, nil
	}
	if len(parts) == 2 && parts[0] != "list" {
		return plyProperty{Type: parts[0], Name: parts[1]}, nil
	}
	return plyProperty{}, fmt.Errorf("%w: invalid property definition %v", ErrInvalidPLY, parts)
}

func readPLYElement(values *plyValueReader, element plyElement, mesh *Mesh) error {
	for i := 0; i < element.Count; i++ {
		var position [3]float64
		var polygon []int

		for _, prop := range element.Properties {
			if !prop.IsList {
				value, err := values.next(prop.Type)
				if err != nil {
					return err
				}
				if axis := strings.Index("xyz", prop.Name); len(prop.Name) == 1 && axis >= 0 {
					position[axis] = value
				}
				continue
			}

			value, err := values.next(prop.ListType)
			if err != nil {
				return err
			}
			count, ok := plyInteger(value)
			if !ok || count < 0 || count > maxListLength {
				return fmt.Errorf("invalid list length %v", value)
			}
			items := make([]int, count)
			for k := range items {
				value, err := values.next(prop.Type)
				if err != nil {
					return err
				}
				if items[k], ok = plyInteger(value); !ok {
					return fmt.Errorf("invalid list item %v", value)
				}
			}
			if prop.Name == "vertex_indices" || prop.Name == "vertex_index" {
				polygon = items
			}
		}

		switch element.Name {
		case "vertex":
			mesh.Vertices = append(mesh.Vertices, core.NewPoint3(position[0], position[1], position[2]))
		case "face":
			for k := 1; k+1 < len(polygon); k++ {
				mesh.Faces = append(mesh.Faces, [3]int{polygon[0], polygon[k], polygon[k+1]})
			}
		}
	}
	return nil
}

// plyValueReader reads scalar values as text tokens when order is nil and
// as fixed-size binary values otherwise
type plyValueReader struct {
	reader *bufio.Reader
	order  binary.ByteOrder
}

func (r *plyValueReader) next(dataType string) (float64, error) {
	if r.order == nil {
		var token string
		if _, err := fmt.Fscan(r.reader, &token); err != nil {
			return 0, err
		}
		return strconv.ParseFloat(token, 64)
	}

	switch dataType {
	case "char", "int8":
		var v int8
		err := binary.Read(r.reader, r.order, &v)
		return float64(v), err
	case "uchar", "uint8":
		var v uint8
		err := binary.Read(r.reader, r.order, &v)
		return float64(v), err
	case "short", "int16":
		var v int16
		err := binary.Read(r.reader, r.order, &v)
		return float64(v), err
	case "ushort", "uint16":
		var v uint16
		err := binary.Read(r.reader, r.order, &v)
		return float64(v), err
	case "int", "int32":
		var v int32
		err := binary.Read(r.reader, r.order, &v)
		return float64(v), err
	case "uint", "uint32":
		var v uint32
		err := binary.Read(r.reader, r.order, &v)
		return float64(v), err
	case "float", "float32":
		var v float32
		err := binary.Read(r.reader, r.order, &v)
		return float64(v), err
	case "double", "float64":
		var v float64
		err := binary.Read(r.reader, r.order, &v)
		return v, err
	}
	return 0, fmt.Errorf("unknown property type %q", dataType)
}
