package staticmesh

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mesh is one submesh of already-resolved geometry: a flat xyz vertex
// buffer and an optional index buffer. Empty Indices means the vertices
// are arranged as a flat triangle list (every 3 vertices = 1 triangle).
type Mesh struct {
	Vertices []float32
	Indices  []uint16
}

// Geometry is the mesh data handed over from the asset layer.
type Geometry struct {
	Meshes []Mesh
}

// Triangle is a world-space triangle with its precomputed face normal.
type Triangle struct {
	A, B, C rl.Vector3
	Normal  rl.Vector3
}

func makeTriangle(a, b, c rl.Vector3) Triangle {
	edge1 := rl.Vector3Subtract(b, a)
	edge2 := rl.Vector3Subtract(c, a)
	normal := rl.Vector3Normalize(rl.Vector3CrossProduct(edge1, edge2))
	return Triangle{A: a, B: b, C: c, Normal: normal}
}

// triangles materializes the submesh's triangles offset into world space.
func (m Mesh) triangles(offset rl.Vector3) []Triangle {
	vertexAt := func(i int) rl.Vector3 {
		return rl.Vector3Add(rl.Vector3{
			X: m.Vertices[i*3+0],
			Y: m.Vertices[i*3+1],
			Z: m.Vertices[i*3+2],
		}, offset)
	}

	if len(m.Indices) >= 3 {
		triCount := len(m.Indices) / 3
		tris := make([]Triangle, 0, triCount)
		for t := 0; t < triCount; t++ {
			tris = append(tris, makeTriangle(
				vertexAt(int(m.Indices[t*3+0])),
				vertexAt(int(m.Indices[t*3+1])),
				vertexAt(int(m.Indices[t*3+2])),
			))
		}
		return tris
	}

	// Flat triangle list.
	triCount := len(m.Vertices) / 9
	tris := make([]Triangle, 0, triCount)
	for t := 0; t < triCount; t++ {
		tris = append(tris, makeTriangle(
			vertexAt(t*3+0),
			vertexAt(t*3+1),
			vertexAt(t*3+2),
		))
	}
	return tris
}

// GeometryFromModel copies vertex and index buffers out of a raylib model
// so the registry never holds onto C-owned memory.
func GeometryFromModel(model rl.Model) Geometry {
	if model.MeshCount == 0 || model.Meshes == nil {
		return Geometry{}
	}

	geom := Geometry{Meshes: make([]Mesh, 0, model.MeshCount)}
	meshes := unsafe.Slice(model.Meshes, model.MeshCount)

	for _, mesh := range meshes {
		if mesh.Vertices == nil || mesh.VertexCount == 0 {
			continue
		}
		out := Mesh{}
		vertices := unsafe.Slice(mesh.Vertices, mesh.VertexCount*3)
		out.Vertices = append(out.Vertices, vertices...)
		if mesh.Indices != nil && mesh.TriangleCount > 0 {
			indices := unsafe.Slice(mesh.Indices, mesh.TriangleCount*3)
			out.Indices = append(out.Indices, indices...)
		}
		geom.Meshes = append(geom.Meshes, out)
	}

	return geom
}
