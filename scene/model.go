// Package scene holds the exported model records of one scene.
package scene

import "github.com/binzume/urhoconv/geom"

type Kind int

const (
	StaticModel Kind = iota
	AnimatedModel
	TerrainPatch
)

func (k Kind) String() string {
	switch k {
	case AnimatedModel:
		return "AnimatedModel"
	case TerrainPatch:
		return "TerrainPatch"
	default:
		return "StaticModel"
	}
}

type TextureSlot int

const (
	TextureDiffuse TextureSlot = iota
	TextureNormal
	TextureSpecular
	TextureEmissive
)

type Material struct {
	Name     string
	Textures map[TextureSlot]string
}

// Model is one exported model.
type Model struct {
	Name string
	// ParentName is set only when the parent is also an exported model.
	ParentName  string
	Kind        Kind
	Materials   []*Material
	BoundingBox geom.Box3
	// Matrix is the world transform. nil means identity.
	Matrix *geom.Matrix4
}

func (m *Model) WorldMatrix() *geom.Matrix4 {
	if m.Matrix == nil {
		return geom.NewMatrix4()
	}
	return m.Matrix
}
