package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/binzume/urhoconv/config"
	"github.com/binzume/urhoconv/converter"
	"github.com/binzume/urhoconv/logger"
	"github.com/binzume/urhoconv/prefab"
	"github.com/binzume/urhoconv/scene"
)

func sceneName(input string) string {
	base := filepath.Base(input)
	return base[0 : len(base)-len(filepath.Ext(base))]
}

func loadScene(input string, cfg *config.Config) (*scene.Scene, error) {
	ext := strings.ToLower(filepath.Ext(input))
	if ext != ".glb" && ext != ".gltf" {
		return nil, errors.Errorf("unsupported input type: %v", ext)
	}
	doc, err := gltf.Open(input)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", input)
	}
	name := cfg.Input.SceneName
	if name == "" {
		name = sceneName(input)
	}
	conv := converter.NewGLTFToUrhoConverter(&converter.GLTFToUrhoOption{
		RegisterFiles: cfg.Input.RegisterFiles,
		Files:         cfg.FileOptions(),
		Terrain:       cfg.Input.Terrain,
	})
	return conv.Convert(doc, name)
}

func run(input string, cfg *config.Config, fromPrefabs bool) error {
	s, err := loadScene(input, cfg)
	if err != nil {
		return err
	}
	if err := s.SortModels(); err != nil {
		return err
	}
	logger.Info("scene loaded", zap.String("scene", s.Name), zap.Int("models", len(s.Models)))

	exporter := prefab.NewExporter(cfg.ExporterOptions(), cfg.FileOptions(), cfg.Objects)
	if fromPrefabs {
		return exporter.ExportScenePrefab(s.Name, prefab.InstancesFromScene(s))
	}
	return exporter.Export(s)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.glb\n", os.Args[0])
		flag.PrintDefaults()
	}
	flags := config.RegisterFlags(flag.CommandLine)
	fromPrefabs := flag.Bool("fromprefabs", false, "build the scene from exported object prefabs")
	saveConfig := flag.String("saveconfig", "", "write the effective config to a file")
	flag.Parse()

	cfg, err := config.Load(flags.ConfigPath(), flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, cfg.Logging.File, true); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Sugar.Debugf("config: %+v", cfg)

	if *saveConfig != "" {
		if err := cfg.SaveTo(*saveConfig); err != nil {
			logger.Error("cannot save config", zap.Error(err))
			os.Exit(1)
		}
	}
	if flag.NArg() == 0 {
		if *saveConfig == "" {
			flag.Usage()
		}
		return
	}

	for _, input := range flag.Args() {
		if err := run(input, cfg, *fromPrefabs); err != nil {
			logger.Error("export failed", zap.String("input", input), zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
	}
}
