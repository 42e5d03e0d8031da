package config

import (
	"flag"

	"github.com/binzume/urhoconv/prefab"
)

// Flags are the command line overrides. Only flags given on the command line are applied.
type Flags struct {
	fs *flag.FlagSet

	config       *string
	output       *string
	overwrite    *bool
	sceneName    *string
	individual   *bool
	collective   *bool
	scenePrefab  *bool
	physics      *bool
	materials    *bool
	globalOrigin *bool
	scale        *float64
	frontView    *string
	logLevel     *string
	logFile      *string
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:           fs,
		config:       fs.String("config", "", "config file (yaml)"),
		output:       fs.String("o", "", "output directory"),
		overwrite:    fs.Bool("overwrite", false, "overwrite existing files"),
		sceneName:    fs.String("scene", "", "scene name (default: input file name)"),
		individual:   fs.Bool("individual", false, "export a prefab per object"),
		collective:   fs.Bool("collective", false, "export a prefab of all objects"),
		scenePrefab:  fs.Bool("sceneprefab", false, "export a scene"),
		physics:      fs.Bool("physics", false, "export physics components"),
		materials:    fs.Bool("matlist", false, "write material list files"),
		globalOrigin: fs.Bool("globalorigin", false, "omit node transforms"),
		scale:        fs.Float64("scale", 1, "scale"),
		frontView:    fs.String("front", "", "front view: X_PLUS, X_MINUS, Y_PLUS, Y_MINUS, Z_PLUS, Z_MINUS"),
		logLevel:     fs.String("loglevel", "", "debug, info, warn or error"),
		logFile:      fs.String("logfile", "", "log file"),
	}
}

func (f *Flags) ConfigPath() string {
	return *f.config
}

func (f *Flags) Apply(c *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "o":
			c.Output.Path = *f.output
		case "overwrite":
			c.Output.FileOverwrite = *f.overwrite
		case "scene":
			c.Input.SceneName = *f.sceneName
		case "individual":
			c.Export.DoIndividualPrefab = *f.individual
		case "collective":
			c.Export.DoCollectivePrefab = *f.collective
		case "sceneprefab":
			c.Export.DoScenePrefab = *f.scenePrefab
		case "physics":
			c.Export.DoPhysics = *f.physics
		case "matlist":
			c.Export.DoMaterialsList = *f.materials
		case "globalorigin":
			c.Transform.GlobalOrigin = *f.globalOrigin
		case "scale":
			c.Transform.Scale = float32(*f.scale)
		case "front":
			c.Transform.FrontView = prefab.FrontView(*f.frontView)
		case "loglevel":
			c.Logging.Level = *f.logLevel
		case "logfile":
			c.Logging.File.Path = *f.logFile
		}
	})
}
