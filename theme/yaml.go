package theme

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// Preset loads a named embedded token preset ("default", "dark").
func Preset(name string) (Tokens, error) {
	data, err := presetFS.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return Tokens{}, fmt.Errorf("unknown theme preset %q", name)
	}
	return parseTokens(data, DefaultTokens())
}

// PresetNames returns the embedded preset names, sorted.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		// Should never happen — the FS is compiled in.
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// LoadFile reads a YAML theme file and applies it over base. Any token group
// or single token present in the file overrides base; everything else keeps
// the base value.
func LoadFile(path string, base Tokens) (Tokens, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tokens{}, fmt.Errorf("read theme file: %w", err)
	}
	return parseTokens(data, base)
}

// parseTokens unmarshals YAML token overrides onto a copy of base.
func parseTokens(data []byte, base Tokens) (Tokens, error) {
	tokens := base
	if err := yaml.Unmarshal(data, &tokens); err != nil {
		return Tokens{}, fmt.Errorf("parse theme tokens: %w", err)
	}
	return tokens, nil
}
