// Package converter builds scene model records from glTF documents.
package converter

import (
	"fmt"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/binzume/urhoconv/fileutil"
	"github.com/binzume/urhoconv/geom"
	"github.com/binzume/urhoconv/logger"
	"github.com/binzume/urhoconv/scene"
)

type GLTFToUrhoOption struct {
	// RegisterFiles registers the resource paths the model, material and
	// texture files are expected at. Files must be set.
	RegisterFiles bool
	Files         *fileutil.Options
	// Terrain are node name patterns (path.Match) exported as TerrainPatch.
	Terrain []string
}

type gltfToUrho struct {
	options *GLTFToUrhoOption

	src       *gltf.Document
	dst       *scene.Scene
	names     map[string]bool
	materials map[uint32]*scene.Material
}

func NewGLTFToUrhoConverter(options *GLTFToUrhoOption) *gltfToUrho {
	if options == nil {
		options = &GLTFToUrhoOption{}
	}
	return &gltfToUrho{
		options: options,
	}
}

// yUpToZUp maps glTF coordinates (+Y up) to the +Z up space of the model records.
var yUpToZUp = &geom.Matrix4{
	1, 0, 0, 0,
	0, 0, 1, 0,
	0, -1, 0, 0,
	0, 0, 0, 1,
}

func localMatrix(n *gltf.Node) *geom.Matrix4 {
	if m := n.MatrixOrDefault(); m != gltf.DefaultMatrix {
		return geom.NewMatrix4FromSlice(m[:])
	}
	t := n.Translation
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()
	return geom.NewTRSMatrix4(
		geom.NewVector3FromArray(t),
		geom.NewQuaternion(r[0], r[1], r[2], r[3]),
		geom.NewVector3FromArray(s))
}

func (c *gltfToUrho) uniqueName(name string) string {
	if !c.names[name] {
		c.names[name] = true
		return name
	}
	for i := 1; ; i++ {
		n := fmt.Sprintf("%s.%03d", name, i)
		if !c.names[n] {
			c.names[n] = true
			return n
		}
	}
}

func (c *gltfToUrho) isTerrain(name string) bool {
	for _, p := range c.options.Terrain {
		if ok, _ := path.Match(p, name); ok {
			return true
		}
	}
	return false
}

func (c *gltfToUrho) register(t fileutil.PathType, name string) {
	if !c.options.RegisterFiles || name == "" {
		return
	}
	if _, ok := c.dst.FindFile(t, name); ok {
		return
	}
	_, p := c.options.Files.GetFilepath(t, name)
	c.dst.AddFile(t, name, p)
}

func (c *gltfToUrho) textureName(info uint32) string {
	if int(info) >= len(c.src.Textures) {
		return ""
	}
	tex := c.src.Textures[info]
	if tex.Source == nil || int(*tex.Source) >= len(c.src.Images) {
		return ""
	}
	img := c.src.Images[*tex.Source]
	if img.Name != "" {
		return img.Name
	}
	if img.URI == "" || img.IsEmbeddedResource() {
		return ""
	}
	base := path.Base(img.URI)
	return strings.TrimSuffix(base, path.Ext(base))
}

func (c *gltfToUrho) convertMaterial(i uint32) *scene.Material {
	if mat, ok := c.materials[i]; ok {
		return mat
	}
	m := c.src.Materials[i]
	mat := &scene.Material{Name: m.Name, Textures: map[scene.TextureSlot]string{}}
	if mat.Name == "" {
		mat.Name = fmt.Sprintf("Material%d", i)
	}
	if m.PBRMetallicRoughness != nil && m.PBRMetallicRoughness.BaseColorTexture != nil {
		mat.Textures[scene.TextureDiffuse] = c.textureName(m.PBRMetallicRoughness.BaseColorTexture.Index)
	}
	if m.NormalTexture != nil && m.NormalTexture.Index != nil {
		mat.Textures[scene.TextureNormal] = c.textureName(*m.NormalTexture.Index)
	}
	if m.EmissiveTexture != nil {
		mat.Textures[scene.TextureEmissive] = c.textureName(m.EmissiveTexture.Index)
	}
	for slot, name := range mat.Textures {
		if name == "" {
			delete(mat.Textures, slot)
			continue
		}
		c.register(fileutil.PathTextures, name)
	}
	c.register(fileutil.PathMaterials, mat.Name)
	c.materials[i] = mat
	return mat
}

// boundingBox is in Urho3D model space (+Y up, left-handed).
func (c *gltfToUrho) boundingBox(mesh *gltf.Mesh) (geom.Box3, error) {
	box := geom.NewEmptyBox3()
	for _, p := range mesh.Primitives {
		a, ok := p.Attributes["POSITION"]
		if !ok {
			continue
		}
		acr := c.src.Accessors[a]
		if len(acr.Min) == 3 && len(acr.Max) == 3 {
			box.ExpandByPoint(geom.NewVector3(acr.Min[0], acr.Min[1], -acr.Max[2]))
			box.ExpandByPoint(geom.NewVector3(acr.Max[0], acr.Max[1], -acr.Min[2]))
			continue
		}
		pos, err := modeler.ReadPosition(c.src, acr, [][3]float32{})
		if err != nil {
			return *box, errors.Wrapf(err, "read positions of %q", mesh.Name)
		}
		for _, v := range pos {
			box.ExpandByPoint(geom.NewVector3(v[0], v[1], -v[2]))
		}
	}
	if box.IsEmpty() {
		return geom.Box3{}, nil
	}
	return *box, nil
}

func (c *gltfToUrho) convertNode(i uint32, world *geom.Matrix4, parent string) error {
	if int(i) >= len(c.src.Nodes) {
		return errors.Errorf("invalid node index %d", i)
	}
	n := c.src.Nodes[i]
	world = world.Mul(localMatrix(n))
	name := parent
	if n.Mesh != nil {
		if int(*n.Mesh) >= len(c.src.Meshes) {
			return errors.Errorf("invalid mesh index %d", *n.Mesh)
		}
		mesh := c.src.Meshes[*n.Mesh]
		nodeName := n.Name
		if nodeName == "" {
			nodeName = mesh.Name
		}
		if nodeName == "" {
			nodeName = fmt.Sprintf("Node%d", i)
		}
		m := &scene.Model{
			Name:       c.uniqueName(nodeName),
			ParentName: parent,
			Matrix:     yUpToZUp.Mul(world).Mul(yUpToZUp.Transposed()),
		}
		if n.Skin != nil {
			m.Kind = scene.AnimatedModel
		}
		for _, p := range mesh.Primitives {
			if len(p.Targets) > 0 {
				m.Kind = scene.AnimatedModel
			}
			if p.Material != nil && int(*p.Material) < len(c.src.Materials) {
				m.Materials = append(m.Materials, c.convertMaterial(*p.Material))
			} else {
				m.Materials = append(m.Materials, nil)
			}
		}
		if c.isTerrain(m.Name) {
			m.Kind = scene.TerrainPatch
		}
		bbox, err := c.boundingBox(mesh)
		if err != nil {
			return err
		}
		m.BoundingBox = bbox
		c.register(fileutil.PathModels, m.Name)
		c.dst.Load(m)
		logger.Debug("model", zap.String("name", m.Name), zap.Stringer("kind", m.Kind), zap.String("parent", parent))
		name = m.Name
	} else {
		// children of an empty node are not nested
		name = ""
	}
	for _, child := range n.Children {
		if err := c.convertNode(child, world, name); err != nil {
			return err
		}
	}
	return nil
}

func (c *gltfToUrho) roots() []uint32 {
	if len(c.src.Scenes) > 0 {
		s := uint32(0)
		if c.src.Scene != nil && int(*c.src.Scene) < len(c.src.Scenes) {
			s = *c.src.Scene
		}
		return c.src.Scenes[s].Nodes
	}
	isChild := map[uint32]bool{}
	for _, n := range c.src.Nodes {
		for _, child := range n.Children {
			isChild[child] = true
		}
	}
	var roots []uint32
	for i := range c.src.Nodes {
		if !isChild[uint32(i)] {
			roots = append(roots, uint32(i))
		}
	}
	return roots
}

// Convert returns the mesh nodes of the default scene as model records.
func (c *gltfToUrho) Convert(src *gltf.Document, sceneName string) (*scene.Scene, error) {
	if c.options.RegisterFiles && c.options.Files == nil {
		return nil, errors.New("RegisterFiles requires Files")
	}
	c.src = src
	c.dst = scene.NewScene(sceneName)
	c.names = map[string]bool{}
	c.materials = map[uint32]*scene.Material{}
	for _, i := range c.roots() {
		if err := c.convertNode(i, geom.NewMatrix4(), ""); err != nil {
			return nil, err
		}
	}
	return c.dst, nil
}
