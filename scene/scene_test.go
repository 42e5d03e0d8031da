package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/binzume/urhoconv/fileutil"
	"github.com/binzume/urhoconv/tree"
)

func names(models []*Model) []string {
	var r []string
	for _, m := range models {
		r = append(r, m.Name)
	}
	return r
}

func equals(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortModels(t *testing.T) {
	s := NewScene("Scene")
	s.Load(
		&Model{Name: "Cube.001", ParentName: "Cube"},
		&Model{Name: "Sphere", ParentName: "Empty"},
		&Model{Name: "Cube"},
	)
	if err := s.SortModels(); err != nil {
		t.Fatal(err)
	}
	if !equals(names(s.Models), []string{"Cube", "Cube.001", "Sphere"}) {
		t.Error("unexpected order", names(s.Models))
	}

	s = NewScene("Scene")
	s.Load(&Model{Name: "a", ParentName: "b"}, &Model{Name: "b", ParentName: "a"})
	if err := s.SortModels(); !errors.Is(err, tree.ErrCycle) {
		t.Error("expected cycle error", err)
	}
	if !equals(names(s.Models), []string{"a", "b"}) {
		t.Error("order should be unchanged", names(s.Models))
	}
}

func TestFiles(t *testing.T) {
	s := NewScene("Scene")
	if !s.AddFile(fileutil.PathModels, "Cube", "Models/Cube.mdl") {
		t.Error("AddFile")
	}
	if s.AddFile(fileutil.PathModels, "Cube", "Models/Other.mdl") {
		t.Error("duplicate AddFile should fail")
	}
	if !s.AddFile(fileutil.PathMaterials, "Cube", "Materials/Cube.xml") {
		t.Error("same name in another category should be accepted")
	}
	if s.AddFile(fileutil.PathModels, "", "Models/.mdl") {
		t.Error("empty name should be rejected")
	}

	if p, ok := s.FindFile(fileutil.PathModels, "Cube"); !ok || p != "Models/Cube.mdl" {
		t.Error("first registration should win", p)
	}
	if _, ok := s.FindFile(fileutil.PathModels, ""); ok {
		t.Error("empty name should not be found")
	}
	if _, ok := s.FindFile(fileutil.PathTextures, "Cube"); ok {
		t.Error("texture should not be found")
	}
}

func TestMaterialsList(t *testing.T) {
	s := NewScene("Scene")
	s.AddFile(fileutil.PathMaterials, "Wood", "Materials/Wood.xml")
	m := &Model{Name: "Window", Materials: []*Material{{Name: "Wood"}, {Name: "Glass"}, {Name: "Wood"}}}
	s.Load(m)

	var buf bytes.Buffer
	if err := s.WriteMaterialsList(&buf, m); err != nil {
		t.Fatal(err)
	}
	expected := "Materials/Wood.xml\nnull\nMaterials/Wood.xml\n"
	if buf.String() != expected {
		t.Errorf("unexpected material list %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "Window.txt")
	if err := s.WriteMaterialsListFile(path, m); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != expected {
		t.Errorf("unexpected file %q", b)
	}

	if s.FindModel("Window") != m || s.FindModel("Door") != nil {
		t.Error("FindModel")
	}
}

func TestKind(t *testing.T) {
	if StaticModel.String() != "StaticModel" || AnimatedModel.String() != "AnimatedModel" || TerrainPatch.String() != "TerrainPatch" {
		t.Error("Kind.String()")
	}
}
