package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/contactbook/internal/ctxlog"
	"github.com/vk/contactbook/internal/fsutil"
)

// fileSettings is the schema of one settings file. Every attribute is
// optional; nil means "not set in this file".
type fileSettings struct {
	WindowDays *int    `hcl:"window_days,optional"`
	LogLevel   *string `hcl:"log_level,optional"`
	LogFormat  *string `hcl:"log_format,optional"`
	Prompt     *string `hcl:"prompt,optional"`
	Greeting   *string `hcl:"greeting,optional"`
}

// Load resolves the settings. path may name a settings file or a directory
// searched recursively for .hcl files, applied in lexical order. An empty or
// missing path leaves the defaults in place.
func Load(ctx context.Context, path string) (Settings, error) {
	logger := ctxlog.FromContext(ctx)
	settings := Defaults()

	files, err := settingsFiles(path)
	if err != nil {
		return Settings{}, err
	}
	logger.Debug("Discovered settings files.", "path", path, "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := envEvalContext(os.Environ())
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return Settings{}, fmt.Errorf("failed to parse settings file %s: %w", file, diags)
		}

		var fs fileSettings
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &fs); diags.HasErrors() {
			return Settings{}, fmt.Errorf("failed to decode settings file %s: %w", file, diags)
		}
		fs.applyTo(&settings)
		logger.Debug("Applied settings file.", "file", file)
	}

	if err := applyEnv(&settings); err != nil {
		return Settings{}, err
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

func settingsFiles(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error accessing settings path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return fsutil.FindFilesByExtension(path, ".hcl")
}

func (fs *fileSettings) applyTo(s *Settings) {
	if fs.WindowDays != nil {
		s.WindowDays = *fs.WindowDays
	}
	if fs.LogLevel != nil {
		s.LogLevel = strings.ToLower(*fs.LogLevel)
	}
	if fs.LogFormat != nil {
		s.LogFormat = strings.ToLower(*fs.LogFormat)
	}
	if fs.Prompt != nil {
		s.Prompt = *fs.Prompt
	}
	if fs.Greeting != nil {
		s.Greeting = *fs.Greeting
	}
}

// envEvalContext exposes the process environment to settings expressions as
// the env object, e.g. env.HOME.
func envEvalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, e := range environ {
		name, value, ok := strings.Cut(e, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
