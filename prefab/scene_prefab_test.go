package prefab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/binzume/urhoconv/fileutil"
	"github.com/binzume/urhoconv/geom"
	"github.com/binzume/urhoconv/urho"
)

func TestInstancesFromScene(t *testing.T) {
	s := newTestScene()
	if err := s.SortModels(); err != nil {
		t.Fatal(err)
	}
	instances := InstancesFromScene(s)
	if len(instances) != 2 {
		t.Fatal("instances", len(instances))
	}
	if instances[0].ObjectName != "Cube" || instances[0].ParentName != "" {
		t.Error("Cube instance", instances[0])
	}
	child := instances[1]
	if child.Name != "Cube.001" || child.ParentName != "Cube" {
		t.Error("Cube.001 instance", child)
	}
	if child.Matrix.Translation().Sub(geom.NewVector3(0, 0, 2)).Len() > 0.0001 {
		t.Error("child matrix should be local", child.Matrix)
	}
}

func TestScenePrefab(t *testing.T) {
	dir := t.TempDir()
	files := fileutil.NewOptions(dir)
	e := NewExporter(DefaultOptions(), files, nil)
	if err := e.Export(newTestScene()); err != nil {
		t.Fatal(err)
	}

	// a prefab with a transform and a file with the wrong root
	moved := urho.NewNode(base)
	moved.Append(urho.NewAttribute("Name", "Moved"), urho.NewAttribute("Position", "9 9 9"))
	movedPath, _ := files.GetFilepath(fileutil.PathObjects, "Moved")
	if err := urho.WriteFile(movedPath, moved); err != nil {
		t.Fatal(err)
	}
	badPath, _ := files.GetFilepath(fileutil.PathObjects, "Bad")
	if err := urho.WriteFile(badPath, urho.NewScene(1)); err != nil {
		t.Fatal(err)
	}

	sc := e.BuildScenePrefab("Level", []*Instance{
		{Name: "Cube", ObjectName: "Cube", Matrix: geom.NewTranslateMatrix4(1, 3, 2)},
		{Name: "Cube.001", ObjectName: "Cube.001", ParentName: "Cube", Matrix: geom.NewTranslateMatrix4(0, 0, 2)},
		{Name: "Cube", ObjectName: "Cube2"},
		{Name: "Missing", ObjectName: "Missing"},
		{Name: "Bad", ObjectName: "Bad"},
		{Name: "Moved", ObjectName: "Moved", ParentName: "Unknown", Matrix: geom.NewTranslateMatrix4(1, 3, 2)},
	})

	nodes := sc.FindAll(urho.TagNode)
	if len(nodes) != 5 {
		t.Fatal("scene nodes: light, root, Cube, Cube2, Moved", len(nodes))
	}
	if attr(t, nodes[1], "Name") != "Level" || id(nodes[1]) != base+1 {
		t.Error("root node")
	}

	cube := nodes[2]
	if attr(t, cube, "Name") != "Cube" || attr(t, cube, "Position") != "1 2 3" {
		t.Error("Position should be appended", attr(t, cube, "Position"))
	}
	if attr(t, cube, "Rotation") != "0 0 0" || attr(t, cube, "Scale") != "1 1 1" {
		t.Error("Rotation and Scale should be appended")
	}
	children := cube.FindAll(urho.TagNode)
	if len(children) != 1 || attr(t, children[0], "Name") != "Cube.001" {
		t.Fatal("Cube.001 should be placed under Cube")
	}
	if attr(t, children[0], "Position") != "0 2 0" {
		t.Error("child position", attr(t, children[0], "Position"))
	}

	if attr(t, nodes[3], "Name") != "Cube" || attr(t, nodes[3], "Position") != "0 0 0" {
		t.Error("second instance of Cube")
	}
	if nodes[2] == nodes[3] {
		t.Error("instances must not share elements")
	}

	m := nodes[4]
	var positions int
	for _, a := range m.FindAll(urho.TagAttribute) {
		if n, _ := a.Attr("name"); n == "Position" {
			positions++
		}
	}
	if positions != 1 || attr(t, m, "Position") != "1 2 3" {
		t.Error("existing Position should be replaced", positions)
	}

	if err := e.ExportScenePrefab("Level", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Scenes/Level.xml")); err != nil {
		t.Error("scene file not written")
	}
}
