package prefab

import "github.com/binzume/urhoconv/geom"

// Vec3 is a vector in the form used by configuration files.
type Vec3 [3]float32

func (v Vec3) Vector3() *geom.Vector3 {
	return geom.NewVector3FromArray(v)
}

// Layers are the 8 bits of an Urho3D mask.
type Layers [8]bool

var (
	AllLayers  = Layers{true, true, true, true, true, true, true, true}
	FirstLayer = Layers{true}
)

const (
	ShapeBox          = "Box"
	ShapeCapsule      = "Capsule"
	ShapeCone         = "Cone"
	ShapeConvexHull   = "ConvexHull"
	ShapeCylinder     = "Cylinder"
	ShapeSphere       = "Sphere"
	ShapeStaticPlane  = "StaticPlane"
	ShapeTriangleMesh = "TriangleMesh"
)

const (
	CollisionEventNever      = "Never"
	CollisionEventWhenActive = "When Active"
	CollisionEventAlways     = "Always"
)

type PhysicsSettings struct {
	Activate bool `yaml:"activate"`

	Mass                 float32 `yaml:"mass"`
	Friction             float32 `yaml:"friction"`
	AnisotropicFriction  Vec3    `yaml:"anisotropic_friction,flow"`
	RollingFriction      float32 `yaml:"rolling_friction"`
	Restitution          float32 `yaml:"restitution"`
	LinearVelocity       Vec3    `yaml:"linear_velocity,flow"`
	AngularVelocity      Vec3    `yaml:"angular_velocity,flow"`
	LinearFactor         Vec3    `yaml:"linear_factor,flow"`
	AngularFactor        Vec3    `yaml:"angular_factor,flow"`
	LinearDamping        float32 `yaml:"linear_damping"`
	AngularDamping       float32 `yaml:"angular_damping"`
	LinearRestThreshold  float32 `yaml:"linear_rest_threshold"`
	AngularRestThreshold float32 `yaml:"angular_rest_threshold"`
	CollisionLayer       Layers  `yaml:"collision_layer,flow"`
	CollisionMask        Layers  `yaml:"collision_mask,flow"`
	ContactThreshold     float32 `yaml:"contact_threshold"`
	CCDRadius            float32 `yaml:"ccd_radius"`
	CCDMotionThreshold   float32 `yaml:"ccd_motion_threshold"`
	CollisionEventMode   string  `yaml:"collision_event_mode"`
	UseGravity           bool    `yaml:"use_gravity"`
	IsKinematic          bool    `yaml:"is_kinematic"`
	IsTrigger            bool    `yaml:"is_trigger"`
	GravityOverride      Vec3    `yaml:"gravity_override,flow"`

	ShapeType               string  `yaml:"shape_type"`
	SizeFactor              Vec3    `yaml:"size_factor,flow"`
	OverwriteSize           bool    `yaml:"overwrite_size"`
	Size                    Vec3    `yaml:"size,flow"`
	OverwriteOffsetPosition bool    `yaml:"overwrite_offset_position"`
	OffsetPosition          Vec3    `yaml:"offset_position,flow"`
	OffsetRotation          Vec3    `yaml:"offset_rotation,flow"`
	OverwriteModel          bool    `yaml:"overwrite_model"`
	Model                   string  `yaml:"model"`
	LODLevel                int     `yaml:"lod_level"`
	CollisionMargin         float32 `yaml:"collision_margin"`
	CustomGeometryNodeID    int     `yaml:"customgeometry_nodeid"`
}

type DrawableSettings struct {
	IsOccluder        bool    `yaml:"is_occluder"`
	CanBeOccluded     bool    `yaml:"can_be_occluded"`
	CastShadows       bool    `yaml:"cast_shadows"`
	DrawDistance      float32 `yaml:"draw_distance"`
	ShadowDistance    float32 `yaml:"shadow_distance"`
	LODBias           float32 `yaml:"lod_bias"`
	MaxLights         int     `yaml:"max_lights"`
	ViewMask          Layers  `yaml:"view_mask,flow"`
	LightMask         Layers  `yaml:"light_mask,flow"`
	ShadowMask        Layers  `yaml:"shadow_mask,flow"`
	ZoneMask          Layers  `yaml:"zone_mask,flow"`
	OcclusionLODLevel int     `yaml:"occlusion_lod_level"`
}

// ObjectSettings are the component settings of one object.
type ObjectSettings struct {
	Physics  PhysicsSettings  `yaml:"physics"`
	Drawable DrawableSettings `yaml:"drawable"`

	CreateSubNode   bool `yaml:"create_subnode"`
	SubNodeRotation Vec3 `yaml:"subnode_rotation,flow"`
	CreateNavigable bool `yaml:"create_navigable"`
}

// DefaultObjectSettings matches the Urho3D component defaults.
func DefaultObjectSettings() *ObjectSettings {
	return &ObjectSettings{
		Physics: PhysicsSettings{
			Friction:             0.5,
			AnisotropicFriction:  Vec3{1, 1, 1},
			LinearFactor:         Vec3{1, 1, 1},
			AngularFactor:        Vec3{1, 1, 1},
			LinearRestThreshold:  0.8,
			AngularRestThreshold: 1,
			CollisionLayer:       FirstLayer,
			CollisionMask:        AllLayers,
			ContactThreshold:     1e18,
			CollisionEventMode:   CollisionEventWhenActive,
			UseGravity:           true,
			ShapeType:            ShapeTriangleMesh,
			SizeFactor:           Vec3{1, 1, 1},
			CollisionMargin:      0.04,
		},
		Drawable: DrawableSettings{
			CanBeOccluded:     true,
			LODBias:           1,
			ViewMask:          AllLayers,
			LightMask:         AllLayers,
			ShadowMask:        AllLayers,
			ZoneMask:          AllLayers,
			OcclusionLODLevel: -1,
		},
	}
}

// UnmarshalYAML fills omitted fields with the defaults.
func (s *ObjectSettings) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain ObjectSettings
	*s = *DefaultObjectSettings()
	return unmarshal((*plain)(s))
}

type SettingsProvider interface {
	ObjectSettings(name string) *ObjectSettings
}

// SettingsMap looks up settings by object name and falls back to "*".
type SettingsMap map[string]*ObjectSettings

const SharedSettings = "*"

func (m SettingsMap) ObjectSettings(name string) *ObjectSettings {
	if s, ok := m[name]; ok && s != nil {
		return s
	}
	if s, ok := m[SharedSettings]; ok && s != nil {
		return s
	}
	return DefaultObjectSettings()
}
