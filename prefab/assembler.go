package prefab

import (
	"go.uber.org/zap"

	"github.com/binzume/urhoconv/fileutil"
	"github.com/binzume/urhoconv/geom"
	"github.com/binzume/urhoconv/logger"
	"github.com/binzume/urhoconv/scene"
	"github.com/binzume/urhoconv/urho"
)

type Pass int

const (
	// PassIndividual builds one flat prefab per model.
	PassIndividual Pass = iota
	// PassCollective builds one node tree for all models, wrapped in a scene if requested.
	PassCollective
)

type Prefab struct {
	Name string
	Root *urho.Element
}

type Result struct {
	Individual []*Prefab
	// Collective is the root node of the collective pass. It is a child of Scene when Scene is set.
	Collective *urho.Element
	Scene      *urho.Element
	// Skipped lists models without a model file.
	Skipped []string
}

// attribute is written only when value differs from def.
type attribute struct {
	name  string
	value string
	def   string
}

func appendNonDefault(e *urho.Element, attrs ...attribute) {
	for _, a := range attrs {
		if a.value != a.def {
			e.Append(urho.NewAttribute(a.name, a.value))
		}
	}
}

func vec3(v Vec3) string {
	return urho.FormatVector3(v.Vector3())
}

func mask(l Layers) string {
	return urho.FormatInt(urho.BitMask([8]bool(l)))
}

func rigidBodyAttributes(p *PhysicsSettings) []attribute {
	f := urho.FormatFloat
	return []attribute{
		{"Mass", f(p.Mass), "0"},
		{"Friction", f(p.Friction), "0.5"},
		{"Anisotropic Friction", vec3(p.AnisotropicFriction), "1 1 1"},
		{"Rolling Friction", f(p.RollingFriction), "0"},
		{"Restitution", f(p.Restitution), "0"},
		{"Linear Velocity", vec3(p.LinearVelocity), "0 0 0"},
		{"Angular Velocity", vec3(p.AngularVelocity), "0 0 0"},
		{"Linear Factor", vec3(p.LinearFactor), "1 1 1"},
		{"Angular Factor", vec3(p.AngularFactor), "1 1 1"},
		{"Linear Damping", f(p.LinearDamping), "0"},
		{"Angular Damping", f(p.AngularDamping), "0"},
		{"Linear Rest Threshold", f(p.LinearRestThreshold), "0.8"},
		{"Angular Rest Threshold", f(p.AngularRestThreshold), "1"},
		{"Collision Layer", mask(p.CollisionLayer), "1"},
		{"Collision Mask", mask(p.CollisionMask), "-1"},
		{"Contact Threshold", f(p.ContactThreshold), "1e+18"},
		{"CCD Radius", f(p.CCDRadius), "0"},
		{"CCD Motion Threshold", f(p.CCDMotionThreshold), "0"},
		{"Collision Event Mode", p.CollisionEventMode, CollisionEventWhenActive},
		{"Use Gravity", urho.FormatBool(p.UseGravity), "true"},
		{"Is Kinematic", urho.FormatBool(p.IsKinematic), "false"},
		{"Is Trigger", urho.FormatBool(p.IsTrigger), "false"},
		{"Gravity Override", vec3(p.GravityOverride), "0 0 0"},
	}
}

func drawableAttributes(d *DrawableSettings) []attribute {
	f := urho.FormatFloat
	return []attribute{
		{"Is Occluder", urho.FormatBool(d.IsOccluder), "false"},
		{"Can Be Occluded", urho.FormatBool(d.CanBeOccluded), "true"},
		{"Cast Shadows", urho.FormatBool(d.CastShadows), "false"},
		{"Draw Distance", f(d.DrawDistance), "0"},
		{"Shadow Distance", f(d.ShadowDistance), "0"},
		{"LOD Bias", f(d.LODBias), "1"},
		{"Max Lights", urho.FormatInt(d.MaxLights), "0"},
		{"View Mask", mask(d.ViewMask), "-1"},
		{"Light Mask", mask(d.LightMask), "-1"},
		{"Shadow Mask", mask(d.ShadowMask), "-1"},
		{"Zone Mask", mask(d.ZoneMask), "-1"},
		{"Occlusion LOD Level", urho.FormatInt(d.OcclusionLODLevel), "-1"},
	}
}

// ShapeGeometry returns the size and offset of a box-like collision shape.
func ShapeGeometry(p *PhysicsSettings, bbox *geom.Box3) (size, offset *geom.Vector3) {
	extent := bbox.Size()
	size = extent.Mul(p.SizeFactor.Vector3())
	offset = bbox.Center()
	// flat boxes still need a volume
	if p.ShapeType == ShapeBox && extent.Y == 0 {
		size.Y = 1
		offset.Y = -0.5
	}
	if p.OverwriteSize {
		size = p.Size.Vector3()
	}
	if p.OverwriteOffsetPosition {
		offset = p.OffsetPosition.Vector3()
	}
	return
}

func isMeshShape(shapeType string) bool {
	return shapeType == ShapeTriangleMesh || shapeType == ShapeConvexHull
}

// modelBuilder emits the components of one model.
type modelBuilder struct {
	s         *scene.Scene
	m         *scene.Model
	set       *ObjectSettings
	ids       *idAllocator
	modelFile string
}

func (b *modelBuilder) rigidBody() *urho.Element {
	c := urho.NewComponent("RigidBody", b.ids.nextComponent())
	appendNonDefault(c, rigidBodyAttributes(&b.set.Physics)...)
	return c
}

func (b *modelBuilder) collisionShape() *urho.Element {
	p := &b.set.Physics
	c := urho.NewComponent("CollisionShape", b.ids.nextComponent())
	c.Append(urho.NewAttribute("Shape Type", p.ShapeType))
	if isMeshShape(p.ShapeType) {
		model := b.modelFile
		if p.OverwriteModel {
			model = p.Model
		}
		c.Append(urho.NewAttribute("Model", "Model;"+model))
	} else {
		size, offset := ShapeGeometry(p, &b.m.BoundingBox)
		appendNonDefault(c,
			attribute{"Size", urho.FormatVector3(size), "1 1 1"},
			attribute{"Offset Position", urho.FormatVector3(offset), "0 0 0"})
	}
	appendNonDefault(c,
		attribute{"Offset Rotation", vec3(p.OffsetRotation), "0 0 0"},
		attribute{"LOD Level", urho.FormatInt(p.LODLevel), "0"},
		attribute{"Collision Margin", urho.FormatFloat(p.CollisionMargin), "0.04"},
		attribute{"CustomGeometry NodeID", urho.FormatInt(p.CustomGeometryNodeID), "0"})
	return c
}

func (b *modelBuilder) navigable() *urho.Element {
	if !b.set.CreateNavigable || (b.m.Kind != scene.StaticModel && b.m.Kind != scene.TerrainPatch) {
		return nil
	}
	return urho.NewComponent("Navigable", b.ids.nextComponent())
}

func (b *modelBuilder) drawable() *urho.Element {
	materials := "Material"
	for _, mat := range b.m.Materials {
		var p string
		if mat != nil {
			p, _ = b.s.FindFile(fileutil.PathMaterials, mat.Name)
		}
		materials += ";" + p
	}
	c := urho.NewComponent(b.m.Kind.String(), b.ids.nextComponent())
	c.Append(
		urho.NewAttribute("Model", "Model;"+b.modelFile),
		urho.NewAttribute("Material", materials))
	appendNonDefault(c, drawableAttributes(&b.set.Drawable)...)
	return c
}

func (b *modelBuilder) subNode() *urho.Element {
	n := urho.NewNode(b.ids.nextNode())
	n.Append(urho.NewAttribute("Name", "SubNode"))
	appendNonDefault(n, attribute{"Rotation", vec3(b.set.SubNodeRotation), "0 0 0"})
	return n
}

func (e *Exporter) physicsEnabled() bool {
	return e.Options.DoPhysics && e.Options.ExportMode != ExportProps
}

func (e *Exporter) objectSettings(name string) *ObjectSettings {
	if e.Options.MergeObjects || e.Options.BatchComponents {
		name = SharedSettings
	}
	return e.settings.ObjectSettings(name)
}

// Assemble builds the documents of one pass in memory. Models are sorted first.
func (e *Exporter) Assemble(s *scene.Scene, pass Pass) (*Result, error) {
	if err := s.SortModels(); err != nil {
		return nil, err
	}

	res := &Result{}
	var ids *idAllocator
	if pass == PassCollective {
		ids = newIDAllocator()
		if e.Options.DoScenePrefab {
			res.Scene = e.newSceneElement(ids)
		}
		res.Collective = e.newRootNode(ids.nextNode(), s.Name)
		if res.Scene != nil {
			res.Scene.Append(res.Collective)
		}
	}

	type emitted struct {
		elem  *urho.Element
		model *scene.Model
	}
	elements := map[string]*emitted{}

	for _, m := range s.Models {
		modelFile, ok := s.FindFile(fileutil.PathModels, m.Name)
		if !ok {
			logger.Warn("model file does not exist, skipped", zap.String("model", m.Name))
			res.Skipped = append(res.Skipped, m.Name)
			continue
		}

		b := &modelBuilder{s: s, m: m, set: e.objectSettings(m.Name), ids: ids, modelFile: modelFile}
		if pass == PassIndividual {
			b.ids = newIDAllocator()
		}
		node := urho.NewNode(b.ids.nextNode())
		node.Append(urho.NewAttribute("Name", m.Name))

		if pass == PassCollective {
			parent := res.Collective
			matrix := m.WorldMatrix()
			if p, ok := elements[m.ParentName]; ok && m.Kind == scene.StaticModel && p.model.Kind == scene.StaticModel {
				parent = p.elem
				matrix = p.model.WorldMatrix().Inverse().Mul(matrix)
			}
			parent.Append(node)
			if !e.Options.Transform.GlobalOrigin {
				e.Options.Transform.NodeTransform(matrix).apply(node)
			}
		}

		if e.physicsEnabled() && b.set.Physics.Activate {
			node.Append(b.rigidBody(), b.collisionShape())
		}

		content := node
		if pass == PassIndividual && b.set.CreateSubNode {
			content = b.subNode()
			node.Append(content)
		}
		if nav := b.navigable(); nav != nil {
			content.Append(nav)
		}
		content.Append(b.drawable())

		if pass == PassIndividual {
			res.Individual = append(res.Individual, &Prefab{Name: m.Name, Root: node})
		}
		elements[m.Name] = &emitted{elem: node, model: m}
	}
	return res, nil
}
