// Package prefab assembles Urho3D prefab and scene documents from a scene registry.
package prefab

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/binzume/urhoconv/fileutil"
	"github.com/binzume/urhoconv/logger"
	"github.com/binzume/urhoconv/scene"
	"github.com/binzume/urhoconv/urho"
)

type ExportMode string

const (
	ExportEverything ExportMode = "Everything"
	// ExportProps exports models without physics.
	ExportProps ExportMode = "Props"
)

type Options struct {
	DoIndividualPrefab bool `yaml:"individual_prefab"`
	DoCollectivePrefab bool `yaml:"collective_prefab"`
	DoScenePrefab      bool `yaml:"scene_prefab"`
	DoPhysics          bool `yaml:"physics"`
	DoMaterialsList    bool `yaml:"materials_list"`

	// MergeObjects and BatchComponents take component settings from the "*" entry.
	// MergeObjects also disables the collective document.
	MergeObjects    bool `yaml:"merge_objects"`
	BatchComponents bool `yaml:"batch_components"`

	Navigation   bool       `yaml:"navigation"`
	Navigable    bool       `yaml:"navigable"`
	CreateSkybox bool       `yaml:"skybox"`
	SkyboxPath   string     `yaml:"skybox_path"`
	ExportMode   ExportMode `yaml:"export_mode"`

	Transform TransformOptions `yaml:"-"`
}

func DefaultOptions() Options {
	return Options{
		DoIndividualPrefab: true,
		ExportMode:         ExportEverything,
		Transform:          DefaultTransformOptions(),
	}
}

// FileResolver is implemented by *fileutil.Options.
type FileResolver interface {
	GetFilepath(t fileutil.PathType, name string) (string, string)
	CheckFilepath(path string) bool
}

type Exporter struct {
	Options  Options
	files    FileResolver
	settings SettingsProvider
}

func NewExporter(options Options, files FileResolver, settings SettingsProvider) *Exporter {
	if settings == nil {
		settings = SettingsMap{}
	}
	return &Exporter{Options: options, files: files, settings: settings}
}

func (e *Exporter) newSceneElement(ids *idAllocator) *urho.Element {
	sc := urho.NewScene(sceneID)
	sc.Append(
		urho.NewComponent("Octree", octreeID),
		urho.NewComponent("DebugRenderer", debugRendererID))

	if e.Options.CreateSkybox {
		sky := urho.NewComponent("Skybox", skyboxID)
		sky.Append(
			urho.NewAttribute("Model", "Model;Models/Box.mdl"),
			urho.NewAttribute("Material", "Material;"+e.Options.SkyboxPath))
		sc.Append(sky)
	}
	if e.Options.Navigation {
		sc.Append(urho.NewComponent("NavigationMesh", navigationMeshID))
	}
	if e.physicsEnabled() {
		sc.Append(urho.NewComponent("PhysicsWorld", physicsWorldID))
	}

	light := urho.NewNode(ids.nextNode())
	light.Append(
		urho.NewAttribute("Name", "DirectionalLight"),
		urho.NewAttribute("Rotation", "0.9 0.4 0.25 0"))
	lc := urho.NewComponent("Light", lightID)
	lc.Append(urho.NewAttribute("Light Type", "Directional"))
	light.Append(lc)
	sc.Append(light)
	return sc
}

func (e *Exporter) newRootNode(id int, name string) *urho.Element {
	root := urho.NewNode(id)
	root.Append(urho.NewAttribute("Name", name))
	if e.Options.Navigation && e.Options.Navigable {
		root.Append(urho.NewComponent("Navigable", 0))
	}
	return root
}

// write saves a document. A path rejected by the overwrite policy is skipped silently.
func (e *Exporter) write(t fileutil.PathType, name string, root *urho.Element) error {
	full, urhoPath := e.files.GetFilepath(t, name)
	if !e.files.CheckFilepath(full) {
		return nil
	}
	logger.Info("creating prefab", zap.Stringer("type", t), zap.String("path", urhoPath))
	return urho.WriteFile(full, root)
}

// Export writes every requested document of s.
// A failed write does not stop the others; all failures are returned together.
func (e *Exporter) Export(s *scene.Scene) error {
	var errs error
	if e.Options.DoIndividualPrefab {
		res, err := e.Assemble(s, PassIndividual)
		if err != nil {
			return err
		}
		for _, p := range res.Individual {
			errs = multierr.Append(errs, e.write(fileutil.PathObjects, p.Name, p.Root))
		}
	}

	if e.Options.DoCollectivePrefab || e.Options.DoScenePrefab {
		res, err := e.Assemble(s, PassCollective)
		if err != nil {
			return multierr.Append(errs, err)
		}
		if e.Options.DoCollectivePrefab && !e.Options.MergeObjects {
			errs = multierr.Append(errs, e.write(fileutil.PathObjects, s.Name, res.Collective))
		}
		if res.Scene != nil {
			errs = multierr.Append(errs, e.write(fileutil.PathScenes, s.Name, res.Scene))
		}
	}

	if e.Options.DoMaterialsList {
		errs = multierr.Append(errs, e.ExportMaterialsLists(s))
	}
	return errs
}

// ExportMaterialsLists writes the material list file of every model.
func (e *Exporter) ExportMaterialsLists(s *scene.Scene) error {
	var errs error
	for _, m := range s.Models {
		full, urhoPath := e.files.GetFilepath(fileutil.PathMatList, m.Name)
		if !e.files.CheckFilepath(full) {
			continue
		}
		logger.Debug("creating material list", zap.String("path", urhoPath))
		errs = multierr.Append(errs, s.WriteMaterialsListFile(full, m))
	}
	return errs
}
