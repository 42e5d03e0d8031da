package scene

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/binzume/urhoconv/fileutil"
	"github.com/binzume/urhoconv/logger"
	"github.com/binzume/urhoconv/tree"
)

type fileKey struct {
	typ  fileutil.PathType
	name string
}

type Scene struct {
	Name   string
	Models []*Model

	files map[fileKey]string
}

func NewScene(name string) *Scene {
	return &Scene{Name: name, files: map[fileKey]string{}}
}

func (s *Scene) Load(models ...*Model) {
	s.Models = append(s.Models, models...)
}

// AddFile registers the resource path of a named file. The first registration wins.
func (s *Scene) AddFile(typ fileutil.PathType, name, path string) bool {
	if name == "" {
		logger.Error("file name is empty", zap.Stringer("type", typ), zap.String("path", path))
		return false
	}
	k := fileKey{typ, name}
	if _, ok := s.files[k]; ok {
		logger.Error("file already added", zap.Stringer("type", typ), zap.String("name", name))
		return false
	}
	s.files[k] = path
	return true
}

func (s *Scene) FindFile(typ fileutil.PathType, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	p, ok := s.files[fileKey{typ, name}]
	return p, ok
}

func (s *Scene) FindModel(name string) *Model {
	for _, m := range s.Models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// SortModels reorders the models so that parents precede their children.
// On error the order is left unchanged.
func (s *Scene) SortModels() error {
	t := tree.New()
	for _, m := range s.Models {
		t.Push(m.Name, m.ParentName)
	}
	names, err := t.ToList()
	if err != nil {
		return errors.Wrap(err, "sort models")
	}

	remaining := append([]*Model(nil), s.Models...)
	sorted := make([]*Model, 0, len(s.Models))
	for _, name := range names {
		for i, m := range remaining {
			if m.Name == name {
				sorted = append(sorted, m)
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	// models sharing a name keep their relative order
	s.Models = append(sorted, remaining...)
	return nil
}

// MaterialsList returns the material resource path of each geometry in order.
// Unregistered materials are "null".
func (s *Scene) MaterialsList(m *Model) []string {
	list := make([]string, 0, len(m.Materials))
	for _, mat := range m.Materials {
		var name string
		if mat != nil {
			name = mat.Name
		}
		p, ok := s.FindFile(fileutil.PathMaterials, name)
		if !ok {
			p = "null"
		}
		list = append(list, p)
	}
	return list
}

func (s *Scene) WriteMaterialsList(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	for _, p := range s.MaterialsList(m) {
		if _, err := bw.WriteString(p + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (s *Scene) WriteMaterialsListFile(path string, m *Model) (err error) {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create material list")
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return s.WriteMaterialsList(w, m)
}
