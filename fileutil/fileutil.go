// Package fileutil resolves output paths for exported Urho3D resources.
package fileutil

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/binzume/urhoconv/logger"
)

type PathType int

const (
	PathRoot PathType = iota
	PathModels
	PathMaterials
	PathTechniques
	PathTextures
	PathMatList
	PathObjects
	PathScenes
)

var pathTypeNames = map[PathType]string{
	PathRoot:       "Root",
	PathModels:     "Models",
	PathMaterials:  "Materials",
	PathTechniques: "Techniques",
	PathTextures:   "Textures",
	PathMatList:    "MatList",
	PathObjects:    "Objects",
	PathScenes:     "Scenes",
}

func (t PathType) String() string {
	if s, ok := pathTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// ParsePathType is the inverse of PathType.String.
func ParsePathType(s string) (PathType, bool) {
	for t, name := range pathTypeNames {
		if strings.EqualFold(name, s) {
			return t, true
		}
	}
	return 0, false
}

var DefaultSubDirs = map[PathType]string{
	PathModels:     "Models",
	PathMaterials:  "Materials",
	PathTechniques: "Techniques",
	PathTextures:   "Textures",
	PathMatList:    "Models",
	PathObjects:    "Objects",
	PathScenes:     "Scenes",
}

var extensions = map[PathType]string{
	PathModels:     ".mdl",
	PathMaterials:  ".xml",
	PathTechniques: ".xml",
	PathTextures:   ".png",
	PathMatList:    ".txt",
	PathObjects:    ".xml",
	PathScenes:     ".xml",
}

type Options struct {
	OutputPath    string
	UseSubDirs    bool
	FileOverwrite bool
	// SubDirs overrides DefaultSubDirs per path type.
	SubDirs map[PathType]string
}

func NewOptions(outputPath string) *Options {
	return &Options{OutputPath: outputPath, UseSubDirs: true}
}

func (o *Options) subDir(t PathType) string {
	if !o.UseSubDirs {
		return ""
	}
	if d, ok := o.SubDirs[t]; ok {
		return d
	}
	return DefaultSubDirs[t]
}

// GetFilepath returns the file system path and the resource path used inside
// Urho3D documents, which is relative to the output directory and slash separated.
func (o *Options) GetFilepath(t PathType, name string) (string, string) {
	urhoPath := path.Join(o.subDir(t), SanitizeName(name)+extensions[t])
	return filepath.Join(o.OutputPath, filepath.FromSlash(urhoPath)), urhoPath
}

// CheckFilepath creates the parent directory and reports whether path may be written.
func (o *Options) CheckFilepath(p string) bool {
	if _, err := os.Stat(p); err == nil && !o.FileOverwrite {
		logger.Warn("file already exists", zap.String("path", p))
		return false
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		logger.Error("cannot create directory", zap.String("path", p), zap.Error(err))
		return false
	}
	return true
}

// SanitizeName normalizes name to NFC and replaces characters not allowed in file names.
func SanitizeName(name string) string {
	name = norm.NFC.String(name)
	return strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, name)
}
