package scene

import (
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"floorwright/pkg/mesh"
)

// ExportGLB serializes the scene to a binary glTF file. The document is
// written to a temporary sibling first and renamed into place, so a failed
// export never leaves a partial file that looks like a finished model.
func (s *Scene) ExportGLB(path string) error {
	doc := encode(s)
	tmp := path + ".tmp"
	if err := gltf.SaveBinary(doc, tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("export scene: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("export scene: %w", err)
	}
	return nil
}

// encode builds a glTF document with one mesh and one root node per scene
// node, preserving insertion order.
func encode(s *Scene) *gltf.Document {
	doc := gltf.NewDocument()

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: "default",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
		DoubleSided: true,
	})
	material := 0

	for _, n := range s.nodes {
		m := n.Mesh
		count := m.VertexCount()

		pos := make([][3]float32, count)
		for i := 0; i < count; i++ {
			pos[i] = [3]float32{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
		}
		attrs := gltf.PrimitiveAttributes{
			gltf.POSITION: modeler.WritePosition(doc, pos),
		}
		if len(m.Normals) == count*3 {
			normals := make([][3]float32, count)
			for i := 0; i < count; i++ {
				normals[i] = [3]float32{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
			}
			attrs[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
		}
		if len(m.Colors) == count*4 {
			colors := make([][4]uint8, count)
			for i := 0; i < count; i++ {
				colors[i] = [4]uint8{m.Colors[i*4], m.Colors[i*4+1], m.Colors[i*4+2], m.Colors[i*4+3]}
			}
			attrs[gltf.COLOR_0] = modeler.WriteColor(doc, colors)
		}

		prim := &gltf.Primitive{
			Attributes: attrs,
			Indices:    gltf.Index(modeler.WriteIndices(doc, m.Indices)),
			Material:   gltf.Index(material),
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       n.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: n.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc
}

// LoadMeshGLB reads a GLB file and merges all of its primitives into one
// mesh. Asset files are expected to be authored about the origin; node
// transforms in the container are not applied.
func LoadMeshGLB(path string) (*mesh.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open asset %s: %w", path, err)
	}

	var parts []*mesh.Mesh
	for _, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			pos, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("read positions in %s: %w", path, err)
			}

			part := &mesh.Mesh{}
			for _, p := range pos {
				part.Vertices = append(part.Vertices, p[0], p[1], p[2])
			}
			if nIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				if normals, err := modeler.ReadNormal(doc, doc.Accessors[nIdx], nil); err == nil {
					for _, n := range normals {
						part.Normals = append(part.Normals, n[0], n[1], n[2])
					}
				}
			}
			if cIdx, ok := prim.Attributes[gltf.COLOR_0]; ok {
				if colors, err := modeler.ReadColor(doc, doc.Accessors[cIdx], nil); err == nil {
					for _, c := range colors {
						part.Colors = append(part.Colors, c[0], c[1], c[2], c[3])
					}
				}
			}
			if prim.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("read indices in %s: %w", path, err)
				}
				part.Indices = indices
			} else {
				for i := 0; i < len(pos); i++ {
					part.Indices = append(part.Indices, uint32(i))
				}
			}
			parts = append(parts, part)
		}
	}

	merged := mesh.Concatenate(parts...)
	if merged.IsEmpty() {
		return nil, fmt.Errorf("asset %s contains no triangle geometry", path)
	}
	return merged, nil
}
