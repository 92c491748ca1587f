package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"orbitals/animator"
	"orbitals/config"
)

type flags struct {
	config   string
	policy   *animator.Policy
	model    string
	frag     string
	width    int
	ar       string
	windowed bool
	set      map[string]bool
}

func NewFlags() (*flags, error) {
	configPath := flag.String("config", "", "Path to a TOML scene configuration file")
	policy := flag.String("policy", "", "Damping policy of the pointer-following group: snap, ease-in or exponential")
	model := flag.String("model", "", "Path to the STL model spinning below the rings")
	frag := flag.String("frag", "", "Path to a fragment shader source file replacing the built-in one")
	width := flag.Int("width", 1280, "Render width in pixels")
	ar := flag.String("ar", "16:9", "Render aspect ratio in width:height format")
	windowed := flag.Bool("windowed", true, "If true, the render is displayed in a window of the render size instead of fullscreen")

	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *configPath != "" {
		if ok, err := exists(*configPath); !ok {
			return nil, fmt.Errorf("error: Config file not found:\n\t%s", err.Error())
		}
	}

	var parsedPolicy *animator.Policy
	if *policy != "" {
		p, err := animator.ParsePolicy(*policy)
		if err != nil {
			return nil, fmt.Errorf("error: %s", err.Error())
		}
		parsedPolicy = &p
	}

	if *model != "" && filepath.Ext(*model) != ".stl" {
		return nil, fmt.Errorf("error: Model file must have a .stl extension")
	}

	if *frag != "" {
		if ok, err := exists(*frag); !ok {
			return nil, fmt.Errorf("error: Fragment shader source file not found:\n\t%s", err.Error())
		}
		if filepath.Ext(*frag) != ".frag" {
			return nil, fmt.Errorf("error: Fragment shader source file must have a .frag extension")
		}
	}

	if *width <= 0 {
		return nil, fmt.Errorf("error: Render width must be greater than 0")
	}

	if _, err := config.ParseAspectRatio(*ar); err != nil {
		return nil, fmt.Errorf("error: Aspect Ratio could not be parsed:\n\t%s", err.Error())
	}

	return &flags{
		config:   *configPath,
		policy:   parsedPolicy,
		model:    *model,
		frag:     *frag,
		width:    *width,
		ar:       *ar,
		windowed: *windowed,
		set:      set,
	}, nil
}

// Apply overrides cfg with the flags given on the command line.
func (f flags) Apply(cfg *config.File) {
	if f.policy != nil {
		cfg.Controller.Policy = *f.policy
	}
	if f.model != "" {
		cfg.Model.Path = f.model
	}
	if f.set["width"] {
		cfg.Window.Width = f.width
	}
	if f.set["ar"] {
		cfg.Window.AspectRatio = f.ar
	}
	if f.set["windowed"] {
		cfg.Window.Windowed = f.windowed
	}
}

func (f flags) Config() string {
	return f.config
}

func (f flags) Frag() string {
	return f.frag
}
