package scene

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// NewTriangleMeshScene creates a scene showcasing meshes built from
// individual triangles
func NewTriangleMeshScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:       core.NewPoint3(0, 2, 6),
		LookAt:       core.NewPoint3(0, 1, 0),
		Up:           core.NewVec3(0, 1, 0),
		Width:        600,
		AspectRatio:  16.0 / 9.0,
		VFov:         45.0,
		DefocusAngle: 0.3,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("triangle-mesh", cameraConfig)

	s.AddQuad(core.NewPoint3(-20, 0, -20), core.NewVec3(40, 0, 0), core.NewVec3(0, 0, 40),
		material.NewOpaque(0, material.NewSolid(core.NewColour(0.5, 0.5, 0.5))))

	red := material.NewOpaque(0, material.NewSolid(core.NewColour(0.8, 0.1, 0.1)))
	blue := material.NewOpaque(0.4, material.NewSolid(core.NewColour(0.1, 0.2, 0.8)))
	gold := material.NewOpaque(0.9, material.NewSolid(core.NewColour(0.8, 0.6, 0.2)))

	addBoxMesh(s, core.NewPoint3(-2, 0.5, 0), core.NewVec3(1, 1, 1), red)
	addPyramidMesh(s, core.NewPoint3(0, 0.75, 0), 1.2, 1.5, blue)
	addIcosphereMesh(s, core.NewPoint3(2, 0.8, 0), 0.8, 2, gold)

	s.AddSphereLight(core.NewPoint3(5, 10, 5), 3, core.NewColour(4, 4, 3.6))

	s.Optimise()
	return s
}

// addMesh adds one triangle per index triple in faces
func addMesh(s *Scene, vertices []core.Point3, faces []int, mat *material.Material) {
	for i := 0; i+2 < len(faces); i += 3 {
		s.Add(geometry.NewTriangle(vertices[faces[i]], vertices[faces[i+1]], vertices[faces[i+2]], mat))
	}
}

func addBoxMesh(s *Scene, center core.Point3, size core.Vec3, mat *material.Material) {
	h := size.Multiply(0.5)
	vertices := []core.Point3{
		center.Offset(core.NewVec3(-h.X, -h.Y, -h.Z)), // 0: left-bottom-back
		center.Offset(core.NewVec3(+h.X, -h.Y, -h.Z)), // 1: right-bottom-back
		center.Offset(core.NewVec3(+h.X, +h.Y, -h.Z)), // 2: right-top-back
		center.Offset(core.NewVec3(-h.X, +h.Y, -h.Z)), // 3: left-top-back
		center.Offset(core.NewVec3(-h.X, -h.Y, +h.Z)), // 4: left-bottom-front
		center.Offset(core.NewVec3(+h.X, -h.Y, +h.Z)), // 5: right-bottom-front
		center.Offset(core.NewVec3(+h.X, +h.Y, +h.Z)), // 6: right-top-front
		center.Offset(core.NewVec3(-h.X, +h.Y, +h.Z)), // 7: left-top-front
	}
	faces := []int{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
		0, 1, 5, 0, 5, 4, // bottom
		3, 7, 6, 3, 6, 2, // top
	}
	addMesh(s, vertices, faces, mat)
}

func addPyramidMesh(s *Scene, center core.Point3, baseSize, height float64, mat *material.Material) {
	b, h := baseSize/2, height/2
	vertices := []core.Point3{
		center.Offset(core.NewVec3(-b, -h, -b)), // 0: left-back
		center.Offset(core.NewVec3(+b, -h, -b)), // 1: right-back
		center.Offset(core.NewVec3(+b, -h, +b)), // 2: right-front
		center.Offset(core.NewVec3(-b, -h, +b)), // 3: left-front
		center.Offset(core.NewVec3(0, +h, 0)),   // 4: apex
	}
	faces := []int{
		0, 1, 2, 0, 2, 3, // base
		0, 4, 1, 1, 4, 2, 2, 4, 3, 3, 4, 0,
	}
	addMesh(s, vertices, faces, mat)
}

// addIcosphereMesh subdivides an icosahedron, projecting every new vertex
// back onto the sphere. Each level multiplies the face count by four.
func addIcosphereMesh(s *Scene, center core.Point3, radius float64, levels int, mat *material.Material) {
	phi := (1 + math.Sqrt(5)) / 2
	directions := []core.Vec3{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	for i := range directions {
		directions[i] = directions[i].Normalize()
	}
	faces := []int{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	for level := 0; level < levels; level++ {
		midpoints := make(map[[2]int]int)
		midpoint := func(a, b int) int {
			key := [2]int{min(a, b), max(a, b)}
			if index, ok := midpoints[key]; ok {
				return index
			}
			directions = append(directions, directions[a].Add(directions[b]).Normalize())
			midpoints[key] = len(directions) - 1
			return len(directions) - 1
		}

		subdivided := make([]int, 0, len(faces)*4)
		for i := 0; i < len(faces); i += 3 {
			a, b, c := faces[i], faces[i+1], faces[i+2]
			ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
			subdivided = append(subdivided,
				a, ab, ca,
				b, bc, ab,
				c, ca, bc,
				ab, bc, ca,
			)
		}
		faces = subdivided
	}

	vertices := make([]core.Point3, len(directions))
	for i, direction := range directions {
		vertices[i] = center.Offset(direction.Multiply(radius))
	}
	addMesh(s, vertices, faces, mat)
}
