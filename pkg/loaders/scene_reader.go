package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/integrator"
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

var (
	// ErrMalformedRow is returned for rows with the wrong number or kind of fields
	ErrMalformedRow = errors.New("malformed row")
	// ErrUnknownReference is returned when a row names an undefined point, colour, texture or material
	ErrUnknownReference = errors.New("unknown reference")
	// ErrUnknownRowType is returned for unrecognised row, texture, material or object types
	ErrUnknownRowType = errors.New("unknown row type")
	// ErrInheritCycle is returned when scene files inherit from each other in a loop
	ErrInheritCycle = errors.New("inherit cycle")
)

// defaultSceneWidth is the image width of a loaded scene before any render
// configuration overrides it
const defaultSceneWidth = 400

// sceneParser holds the named dictionaries of one scene file. Rows may only
// refer to names defined on earlier lines.
type sceneParser struct {
	dir       string
	chain     []string // scene names being inherited, outermost first
	line      int
	camera    geometry.CameraConfig
	skyTop    core.Colour
	skyBottom core.Colour
	points    map[string]core.Point3
	colours   map[string]core.Colour
	textures  map[string]material.Texture
	materials map[string]*material.Material
	objects   []geometry.Hittable
}

func newSceneParser(dir string, chain []string) *sceneParser {
	return &sceneParser{
		dir:       dir,
		chain:     chain,
		skyTop:    integrator.DefaultSkyTop,
		skyBottom: integrator.DefaultSkyBottom,
		points:    make(map[string]core.Point3),
		colours:   make(map[string]core.Colour),
		textures:  make(map[string]material.Texture),
		materials: make(map[string]*material.Material),
	}
}

// LoadScene reads a scene file. `inherit` rows are resolved against the
// file's directory.
func LoadScene(filename string) (*scene.Scene, error) {
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseScene(name, file, filepath.Dir(filename))
}

// ParseScene reads a scene description. The first line describes the
// camera, an optional second line the sky, and every further line one
// point, colour, texture, material, object or inherit row. The resulting
// world is optimised into a BVH.
func ParseScene(name string, reader io.Reader, dir string) (*scene.Scene, error) {
	parser := newSceneParser(dir, []string{name})
	if err := parser.parse(reader, true); err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	s := scene.New(name, parser.camera)
	s.SetSky(parser.skyTop, parser.skyBottom)
	s.Add(parser.objects...)
	s.Optimise()
	return s, nil
}

func (p *sceneParser) parse(reader io.Reader, wantCamera bool) error {
	scanner := bufio.NewScanner(reader)
	seenCamera, seenRow := false, false

	for scanner.Scan() {
		p.line++
		row := strings.ToLower(strings.Join(strings.Fields(scanner.Text()), ""))
		if row == "" || strings.HasPrefix(row, "//") {
			continue
		}

		var err error
		switch {
		case !seenCamera:
			seenCamera = true
			if wantCamera {
				err = p.parseCamera(row)
			}
		case !seenRow && strings.HasPrefix(row, "("):
			seenRow = true
			if wantCamera {
				err = p.parseSky(row)
			}
		default:
			seenRow = true
			err = p.parseRow(row)
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", p.line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if !seenCamera {
		return fmt.Errorf("%w: camera data not given", ErrMalformedRow)
	}
	return nil
}

// parseCamera reads `(fx,fy,fz),(ax,ay,az),fov[,aspect[,focus[,defocus]]]`
// or the long form `(fx,fy,fz),(ax,ay,az),tilt,fov,aspect,focus,defocus`
func (p *sceneParser) parseCamera(row string) error {
	values, err := parseFloats(stripParens(row))
	if err != nil {
		return err
	}

	var tilt float64
	switch n := len(values); {
	case n == 11:
		tilt = values[6]
		values = append(values[:6], values[7:]...)
	case n < 7 || n > 10:
		return fmt.Errorf("%w: camera expects (from),(at),fov[,aspect[,focus[,defocus]]], got %q", ErrMalformedRow, row)
	}

	p.camera = geometry.CameraConfig{
		Center: core.NewPoint3(values[0], values[1], values[2]),
		LookAt: core.NewPoint3(values[3], values[4], values[5]),
		VFov:   values[6],
		Width:  defaultSceneWidth,
	}
	p.camera.Up = tiltedUp(p.camera.LookAt.Sub(p.camera.Center), tilt)
	optional := []*float64{&p.camera.AspectRatio, &p.camera.FocusDistance, &p.camera.DefocusAngle}
	for i, value := range values[7:] {
		*optional[i] = value
	}
	return nil
}

// tiltedUp rolls the +y up vector about the viewing direction by degrees
func tiltedUp(forward core.Vec3, degrees float64) core.Vec3 {
	up := core.NewVec3(0, 1, 0)
	axis, ok := forward.TryNormalize()
	if degrees == 0 || !ok {
		return up
	}
	theta := degrees * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	// Rodrigues' rotation formula
	return up.Multiply(cos).
		Add(axis.Cross(up).Multiply(sin)).
		Add(axis.Multiply(axis.Dot(up) * (1 - cos)))
}

// parseSky reads `(r,g,b),(r,g,b)` as the top then bottom sky colour
func (p *sceneParser) parseSky(row string) error {
	values, err := parseFloats(stripParens(row))
	if err != nil {
		return err
	}
	if len(values) != 6 {
		return fmt.Errorf("%w: sky expects (r,g,b),(r,g,b), got %q", ErrMalformedRow, row)
	}
	p.skyTop = core.NewColour(values[0], values[1], values[2])
	p.skyBottom = core.NewColour(values[3], values[4], values[5])
	return nil
}

func (p *sceneParser) parseRow(row string) error {
	rowType, data, ok := strings.Cut(row, ";")
	if !ok {
		return fmt.Errorf("%w: row type not delimited in %q", ErrMalformedRow, row)
	}

	switch rowType {
	case "object":
		return p.parseObject(data)
	case "inherit":
		return p.parseInherit(data)
	}

	name, description, ok := strings.Cut(data, ";")
	if !ok {
		return fmt.Errorf("%w: name not provided in %q", ErrMalformedRow, row)
	}
	name = strings.TrimPrefix(name, "name=")

	switch rowType {
	case "point":
		values, err := parseVector(description)
		if err != nil {
			return err
		}
		p.points[name] = core.NewPoint3(values[0], values[1], values[2])
	case "colour", "color":
		values, err := parseVector(description)
		if err != nil {
			return err
		}
		p.colours[name] = core.NewColour(values[0], values[1], values[2])
	case "texture":
		texture, err := p.parseTexture(description)
		if err != nil {
			return err
		}
		p.textures[name] = texture
	case "material":
		mat, err := p.parseMaterial(description)
		if err != nil {
			return err
		}
		p.materials[name] = mat
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRowType, rowType)
	}
	return nil
}

func (p *sceneParser) parseTexture(description string) (material.Texture, error) {
	textureType, args, _ := strings.Cut(description, ";")
	fields := strings.Split(args, ",")

	switch strings.TrimPrefix(textureType, "type=") {
	case "solid":
		if err := expectFields("solid texture", fields, 1); err != nil {
			return nil, err
		}
		colour, err := p.colour(fields[0])
		if err != nil {
			return nil, err
		}
		return material.NewSolid(colour), nil

	case "perlin":
		if err := expectFields("perlin texture", fields, 2); err != nil {
			return nil, err
		}
		scale, err := parseFloat(fields[0])
		if err != nil {
			return nil, err
		}
		colour, err := p.colour(fields[1])
		if err != nil {
			return nil, err
		}
		return material.NewPerlin(scale, colour), nil

	case "checker":
		if err := expectFields("checker texture", fields, 3); err != nil {
			return nil, err
		}
		scale, err := parseFloat(fields[0])
		if err != nil {
			return nil, err
		}
		even, odd, err := p.texturePair(fields[1], fields[2])
		if err != nil {
			return nil, err
		}
		return material.NewChecker(even, odd, scale), nil

	case "stripe":
		if err := expectFields("stripe texture", fields, 4); err != nil {
			return nil, err
		}
		scale, err := parseFloat(fields[0])
		if err != nil {
			return nil, err
		}
		even, odd, err := p.texturePair(fields[1], fields[2])
		if err != nil {
			return nil, err
		}
		direction, err := parseDirection(fields[3])
		if err != nil {
			return nil, err
		}
		return material.NewStripe(even, odd, scale, direction), nil

	case "gradient":
		if err := expectFields("gradient texture", fields, 3); err != nil {
			return nil, err
		}
		bottom, top, err := p.texturePair(fields[0], fields[1])
		if err != nil {
			return nil, err
		}
		direction, err := parseDirection(fields[2])
		if err != nil {
			return nil, err
		}
		return material.NewGradient(bottom, top, direction), nil

	case "uv":
		return material.NewUV(), nil

	case "image":
		if err := expectFields("image texture", fields, 1); err != nil {
			return nil, err
		}
		path, err := p.assetPath("image", fields[0])
		if err != nil {
			return nil, err
		}
		texture, err := LoadImage(path)
		if err != nil {
			return nil, assetError("image", fields[0], err)
		}
		return texture, nil
	}
	return nil, fmt.Errorf("%w: texture type %q", ErrUnknownRowType, textureType)
}

func (p *sceneParser) parseMaterial(description string) (*material.Material, error) {
	mode, args, _ := strings.Cut(description, ";")
	mode = strings.TrimPrefix(mode, "type=")
	fields := strings.Split(args, ",")

	switch mode {
	case "full":
		if err := expectFields("full material", fields, 5); err != nil {
			return nil, err
		}
		smoothness, err := parseFloat(fields[0])
		if err != nil {
			return nil, err
		}
		texture, err := p.texture(fields[1])
		if err != nil {
			return nil, err
		}
		isGlass, err := parseBool(fields[2])
		if err != nil {
			return nil, err
		}
		index, err := parseFloat(fields[3])
		if err != nil {
			return nil, err
		}
		isLight, err := parseBool(fields[4])
		if err != nil {
			return nil, err
		}
		return material.NewMaterial(smoothness, texture, isGlass, index, isLight), nil

	case "opaque", "light":
		if err := expectFields(mode+" material", fields, 2); err != nil {
			return nil, err
		}
		smoothness, err := parseFloat(fields[0])
		if err != nil {
			return nil, err
		}
		texture, err := p.texture(fields[1])
		if err != nil {
			return nil, err
		}
		if mode == "light" {
			return material.NewLight(texture), nil
		}
		return material.NewOpaque(smoothness, texture), nil

	case "glass":
		if err := expectFields("glass material", fields, 2); err != nil {
			return nil, err
		}
		index, err := parseFloat(fields[0])
		if err != nil {
			return nil, err
		}
		texture, err := p.texture(fields[1])
		if err != nil {
			return nil, err
		}
		return material.NewGlass(index, texture), nil
	}
	return nil, fmt.Errorf("%w: material mode %q", ErrUnknownRowType, mode)
}

// parseObject reads `sphere;centre,radius,material`,
// `movingsphere;centre,centre,radius,material`,
// `triangle;p1,p2,p3,material` or `mesh;file.ply,offset,scale,material`.
// Each point is either a literal x,y,z or the name of a point row.
func (p *sceneParser) parseObject(data string) error {
	objectType, args, ok := strings.Cut(data, ";")
	if !ok {
		return fmt.Errorf("%w: object type not given in %q", ErrMalformedRow, data)
	}
	objectType = strings.TrimPrefix(objectType, "type=")
	fields := strings.Split(stripParens(args), ",")

	if objectType == "mesh" {
		return p.parseMesh(fields)
	}

	var numPoints int
	switch objectType {
	case "sphere":
		numPoints = 1
	case "movingsphere":
		numPoints = 2
	case "triangle":
		numPoints = 3
	default:
		return fmt.Errorf("%w: object type %q", ErrUnknownRowType, objectType)
	}

	points, rest, err := p.consumePoints(fields, numPoints)
	if err != nil {
		return fmt.Errorf("%s: %w", objectType, err)
	}

	if objectType == "triangle" {
		if err := expectFields("triangle material", rest, 1); err != nil {
			return err
		}
		mat, err := p.material(rest[0])
		if err != nil {
			return err
		}
		p.objects = append(p.objects, geometry.NewTriangle(points[0], points[1], points[2], mat))
		return nil
	}

	if err := expectFields(objectType+" radius and material", rest, 2); err != nil {
		return err
	}
	radius, err := parseFloat(rest[0])
	if err != nil {
		return err
	}
	mat, err := p.material(rest[1])
	if err != nil {
		return err
	}
	if objectType == "movingsphere" {
		p.objects = append(p.objects, geometry.NewMovingSphere(points[0], points[1], radius, mat))
	} else {
		p.objects = append(p.objects, geometry.NewSphere(points[0], radius, mat))
	}
	return nil
}

func (p *sceneParser) parseMesh(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: mesh file not given", ErrMalformedRow)
	}
	offset, rest, err := p.consumePoints(fields[1:], 1)
	if err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	if err := expectFields("mesh scale and material", rest, 2); err != nil {
		return err
	}
	scale, err := parseFloat(rest[0])
	if err != nil {
		return err
	}
	mat, err := p.material(rest[1])
	if err != nil {
		return err
	}

	path, err := p.assetPath("mesh", fields[0])
	if err != nil {
		return err
	}
	mesh, err := LoadPLY(path)
	if err != nil {
		return assetError("mesh", fields[0], err)
	}
	p.objects = append(p.objects, mesh.Triangles(offset[0].Vector(), scale, mat)...)
	return nil
}

// consumePoints reads n points from the front of fields
func (p *sceneParser) consumePoints(fields []string, n int) ([]core.Point3, []string, error) {
	points := make([]core.Point3, 0, n)
	for len(points) < n {
		if len(fields) == 0 {
			return nil, nil, fmt.Errorf("%w: expected %d points", ErrMalformedRow, n)
		}
		if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
			point, ok := p.points[fields[0]]
			if !ok {
				return nil, nil, fmt.Errorf("%w: point %q", ErrUnknownReference, fields[0])
			}
			points = append(points, point)
			fields = fields[1:]
			continue
		}
		if len(fields) < 3 {
			return nil, nil, fmt.Errorf("%w: incomplete coordinates %v", ErrMalformedRow, fields)
		}
		values, err := parseFloats(strings.Join(fields[:3], ","))
		if err != nil {
			return nil, nil, err
		}
		points = append(points, core.NewPoint3(values[0], values[1], values[2]))
		fields = fields[3:]
	}
	return points, fields, nil
}

// parseInherit appends the objects of a sibling scene file. Its camera,
// sky and names stay private to that file.
func (p *sceneParser) parseInherit(data string) error {
	name := strings.TrimPrefix(data, "name=")
	for _, ancestor := range p.chain {
		if ancestor == name {
			return fmt.Errorf("%w: %s -> %s", ErrInheritCycle, strings.Join(p.chain, " -> "), name)
		}
	}

	path, err := p.assetPath("inherited scene", name+scene.SceneFileExt)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return assetError("inherited scene", name, err)
	}
	defer file.Close()

	child := newSceneParser(p.dir, append(append([]string{}, p.chain...), name))
	if err := child.parse(file, false); err != nil {
		return fmt.Errorf("inherited scene %q: %w", name, err)
	}
	p.objects = append(p.objects, child.objects...)
	return nil
}

// assetPath resolves a file named by a row against the scene directory.
// Absolute paths and paths that climb out of the directory are rejected.
func (p *sceneParser) assetPath(kind, name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %s %q must be a relative path inside the scene directory", ErrMalformedRow, kind, name)
	}
	return filepath.Join(p.dir, name), nil
}

// assetError reports a failed load without the resolved path on disk
func assetError(kind, name string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return fmt.Errorf("%w: %s %q: %v", ErrUnknownReference, kind, name, err)
}

func (p *sceneParser) colour(name string) (core.Colour, error) {
	colour, ok := p.colours[name]
	if !ok {
		return core.Colour{}, fmt.Errorf("%w: colour %q", ErrUnknownReference, name)
	}
	return colour, nil
}

func (p *sceneParser) texture(name string) (material.Texture, error) {
	texture, ok := p.textures[name]
	if !ok {
		return nil, fmt.Errorf("%w: texture %q", ErrUnknownReference, name)
	}
	return texture, nil
}

func (p *sceneParser) texturePair(first, second string) (material.Texture, material.Texture, error) {
	a, err := p.texture(first)
	if err != nil {
		return nil, nil, err
	}
	b, err := p.texture(second)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (p *sceneParser) material(name string) (*material.Material, error) {
	mat, ok := p.materials[name]
	if !ok {
		return nil, fmt.Errorf("%w: material %q", ErrUnknownReference, name)
	}
	return mat, nil
}

func stripParens(s string) string {
	return strings.NewReplacer("(", "", ")", "").Replace(s)
}

func expectFields(what string, fields []string, n int) error {
	if len(fields) != n {
		return fmt.Errorf("%w: %s expects %d fields, got %d", ErrMalformedRow, what, n, len(fields))
	}
	return nil
}

func parseFloat(s string) (float64, error) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedRow, s)
	}
	return value, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	values := make([]float64, len(fields))
	for i, field := range fields {
		value, err := parseFloat(field)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

// parseVector reads exactly three comma separated numbers
func parseVector(s string) ([]float64, error) {
	values, err := parseFloats(stripParens(s))
	if err != nil {
		return nil, err
	}
	if len(values) != 3 {
		return nil, fmt.Errorf("%w: expected three values, got %q", ErrMalformedRow, s)
	}
	return values, nil
}

func parseBool(s string) (bool, error) {
	value, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", ErrMalformedRow, s)
	}
	return value, nil
}

func parseDirection(s string) (material.Direction, error) {
	direction, err := material.ParseDirection(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	return direction, nil
}
