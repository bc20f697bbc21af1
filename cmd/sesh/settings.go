package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// settingsFileName is looked up from the working directory towards the root.
const settingsFileName = "sesh.toml"

type settingsFile struct {
	Diagnostics struct {
		Color  string `toml:"color"`
		Format string `toml:"format"`
		Max    int    `toml:"max"`
	} `toml:"diagnostics"`
	Tokenize struct {
		Format string `toml:"format"`
		Jobs   int    `toml:"jobs"`
		Cache  bool   `toml:"cache"`
		UI     string `toml:"ui"`
	} `toml:"tokenize"`
}

// settingValue binds one key of sesh.toml to a flag. A non-empty command
// limits the binding to that subcommand.
type settingValue struct {
	key     []string
	command string
	flag    string
	value   string
}

// findSettings walks up from dir looking for sesh.toml.
func findSettings(dir string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		candidate := filepath.Join(dir, settingsFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// loadSettings decodes path and returns the values it defines.
func loadSettings(path string) ([]settingValue, error) {
	var sf settingsFile
	meta, err := toml.DecodeFile(path, &sf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	all := []settingValue{
		{key: []string{"diagnostics", "color"}, flag: "color", value: sf.Diagnostics.Color},
		{key: []string{"diagnostics", "format"}, flag: "diag-format", value: sf.Diagnostics.Format},
		{key: []string{"diagnostics", "max"}, flag: "max-diagnostics", value: strconv.Itoa(sf.Diagnostics.Max)},
		{key: []string{"tokenize", "format"}, command: "tokenize", flag: "format", value: sf.Tokenize.Format},
		{key: []string{"tokenize", "jobs"}, command: "tokenize", flag: "jobs", value: strconv.Itoa(sf.Tokenize.Jobs)},
		{key: []string{"tokenize", "cache"}, command: "tokenize", flag: "cache", value: strconv.FormatBool(sf.Tokenize.Cache)},
		{key: []string{"tokenize", "ui"}, command: "tokenize", flag: "ui", value: sf.Tokenize.UI},
	}
	var defined []settingValue
	for _, s := range all {
		if meta.IsDefined(s.key...) {
			defined = append(defined, s)
		}
	}
	return defined, nil
}

// settingsPath returns the explicit --config path, or the sesh.toml found
// from the working directory upwards. "" means there is nothing to load.
func settingsPath(explicit string, getwd func() (string, error)) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config file %s not found", explicit)
		}
		return explicit, nil
	}
	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("looking for %s: %w", settingsFileName, err)
	}
	found, _ := findSettings(wd)
	return found, nil
}

// applySettings fills flags of cmd that were not given on the command line
// from sesh.toml. --config names the file; otherwise it is searched for and
// may be absent.
func applySettings(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	path, err = settingsPath(path, os.Getwd)
	if err != nil || path == "" {
		return err
	}

	values, err := loadSettings(path)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	for _, s := range values {
		if s.command != "" && s.command != cmd.Name() {
			continue
		}
		f := flags.Lookup(s.flag)
		if f == nil || f.Changed {
			continue
		}
		if err := flags.Set(s.flag, s.value); err != nil {
			return fmt.Errorf("%s: %s: %w", path, f.Name, err)
		}
	}
	return nil
}
