package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetFilepath(t *testing.T) {
	opt := NewOptions("out")
	for _, c := range []struct {
		typ      PathType
		name     string
		expected string
	}{
		{PathModels, "Cube", "Models/Cube.mdl"},
		{PathMatList, "Cube", "Models/Cube.txt"},
		{PathMaterials, "Glass", "Materials/Glass.xml"},
		{PathObjects, "Cube.001", "Objects/Cube.001.xml"},
		{PathScenes, "Scene", "Scenes/Scene.xml"},
		{PathTextures, "a/b:c", "Textures/a_b_c.png"},
		{PathObjects, "Café", "Objects/Café.xml"},
	} {
		full, urhoPath := opt.GetFilepath(c.typ, c.name)
		if urhoPath != c.expected {
			t.Error(c.typ, urhoPath, c.expected)
		}
		if full != filepath.Join("out", filepath.FromSlash(c.expected)) {
			t.Error(c.typ, full)
		}
	}

	opt.UseSubDirs = false
	if _, p := opt.GetFilepath(PathModels, "Cube"); p != "Cube.mdl" {
		t.Error("no subdirs", p)
	}
	opt.UseSubDirs = true
	opt.SubDirs = map[PathType]string{PathModels: "Data/Models"}
	if _, p := opt.GetFilepath(PathModels, "Cube"); p != "Data/Models/Cube.mdl" {
		t.Error("custom subdir", p)
	}
}

func TestCheckFilepath(t *testing.T) {
	opt := NewOptions(t.TempDir())
	full, _ := opt.GetFilepath(PathObjects, "Cube")

	if !opt.CheckFilepath(full) {
		t.Fatal("new file should be writable")
	}
	if _, err := os.Stat(filepath.Dir(full)); err != nil {
		t.Error("directory should be created", err)
	}
	if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if opt.CheckFilepath(full) {
		t.Error("existing file should not be overwritten")
	}
	opt.FileOverwrite = true
	if !opt.CheckFilepath(full) {
		t.Error("existing file should be overwritten")
	}
}

func TestPathType(t *testing.T) {
	for _, typ := range []PathType{PathRoot, PathModels, PathMaterials, PathTechniques, PathTextures, PathMatList, PathObjects, PathScenes} {
		if p, ok := ParsePathType(typ.String()); !ok || p != typ {
			t.Error("ParsePathType", typ)
		}
	}
	if p, ok := ParsePathType("models"); !ok || p != PathModels {
		t.Error("ParsePathType should ignore case")
	}
	if _, ok := ParsePathType("Sounds"); ok {
		t.Error("unknown path type")
	}
}
