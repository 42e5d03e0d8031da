package prefab

import (
	"os"

	"go.uber.org/zap"

	"github.com/binzume/urhoconv/fileutil"
	"github.com/binzume/urhoconv/geom"
	"github.com/binzume/urhoconv/logger"
	"github.com/binzume/urhoconv/scene"
	"github.com/binzume/urhoconv/urho"
)

// Instance places an individual prefab in a scene.
type Instance struct {
	// Name of the prefab file.
	Name string
	// ObjectName is unique per instance.
	ObjectName string
	// ParentName is the ObjectName of the parent instance.
	ParentName string
	// Matrix is relative to the parent instance if any, otherwise world. nil means identity.
	Matrix *geom.Matrix4
}

// InstancesFromScene returns one instance per model. Children of other models
// get a transform relative to their parent.
func InstancesFromScene(s *scene.Scene) []*Instance {
	var instances []*Instance
	for _, m := range s.Models {
		inst := &Instance{Name: m.Name, ObjectName: m.Name, Matrix: m.WorldMatrix()}
		if p := s.FindModel(m.ParentName); m.ParentName != "" && p != nil {
			inst.ParentName = p.Name
			inst.Matrix = p.WorldMatrix().Inverse().Mul(m.WorldMatrix())
		}
		instances = append(instances, inst)
	}
	return instances
}

func (e *Exporter) readPrefab(name string) *urho.Element {
	path, _ := e.files.GetFilepath(fileutil.PathObjects, name)
	if _, err := os.Stat(path); err != nil {
		logger.Error("cannot find prefab", zap.String("path", path))
		return nil
	}
	root, err := urho.ReadFile(path)
	if err != nil {
		logger.Error("cannot read prefab", zap.String("path", path), zap.Error(err))
		return nil
	}
	if root.Tag() != urho.TagNode {
		logger.Error("invalid prefab", zap.String("path", path), zap.String("root", root.Tag()))
		return nil
	}
	return root
}

// BuildScenePrefab builds a scene from previously written individual prefabs.
// Instances whose prefab is missing or invalid are skipped.
func (e *Exporter) BuildScenePrefab(sceneName string, instances []*Instance) *urho.Element {
	ids := newIDAllocator()
	sc := e.newSceneElement(ids)
	sc.Append(e.newRootNode(ids.nextNode(), sceneName))

	elements := map[string]*urho.Element{}
	for _, inst := range instances {
		root := e.readPrefab(inst.Name)
		if root == nil {
			continue
		}
		matrix := inst.Matrix
		if matrix == nil {
			matrix = geom.NewMatrix4()
		}
		e.Options.Transform.NodeTransform(matrix).apply(root)

		if p, ok := elements[inst.ParentName]; ok && inst.ParentName != "" {
			p.Append(root)
		} else {
			sc.Append(root)
		}
		elements[inst.ObjectName] = root
	}
	return sc
}

func (e *Exporter) ExportScenePrefab(sceneName string, instances []*Instance) error {
	return e.write(fileutil.PathScenes, sceneName, e.BuildScenePrefab(sceneName, instances))
}
