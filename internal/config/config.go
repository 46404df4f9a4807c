package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed landmarks.yaml
var landmarksYAML []byte

// DefaultGroups are the landmark groups excluded when nothing else is configured.
var DefaultGroups = []string{"mouth", "right_eye", "left_eye"}

type Config struct {
	DataDir   string
	Filter    FilterConfig
	Convert   ConvertConfig
	Landmarks LandmarksConfig
}

type FilterConfig struct {
	InputPath  string
	OutputPath string   // empty means overwrite InputPath
	Groups     []string // landmark groups to exclude
}

type ConvertConfig struct {
	InputPath  string
	OutputPath string
}

type LandmarksConfig struct {
	Groups map[string][]int `yaml:"groups"`
}

// GroupNames returns the known group names in sorted order.
func (c *LandmarksConfig) GroupNames() []string {
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ExcludedIndices resolves group names into 1-based vertex indices.
// Landmark ids are 0-based, mesh vertex references are 1-based.
func (c *LandmarksConfig) ExcludedIndices(groups []string) ([]int, error) {
	var indices []int
	for _, name := range groups {
		ids, ok := c.Groups[name]
		if !ok {
			return nil, fmt.Errorf("unknown landmark group %q (known: %s)", name, strings.Join(c.GroupNames(), ", "))
		}
		for _, id := range ids {
			indices = append(indices, id+1)
		}
	}
	return indices, nil
}

// envString returns the env var value or defaultVal when unset or empty.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// envList splits a comma separated env var, ignoring blank entries.
func envList(key string, defaultVal []string) []string {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func Load() *Config {
	var landmarks LandmarksConfig
	if err := yaml.Unmarshal(landmarksYAML, &landmarks); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded landmarks.yaml: " + err.Error())
	}

	dataDir := envString("MESH_DATA_DIR", filepath.Join("..", "data"))

	return &Config{
		DataDir: dataDir,
		Filter: FilterConfig{
			InputPath:  envString("MESH_FILTER_INPUT", filepath.Join(dataDir, "mediapipe478_noclip.obj")),
			OutputPath: envString("MESH_FILTER_OUTPUT", filepath.Join(dataDir, "mediapipe478.obj")),
			Groups:     envList("MESH_EXCLUDE_GROUPS", DefaultGroups),
		},
		Convert: ConvertConfig{
			InputPath:  envString("MESH_CONVERT_INPUT", filepath.Join(dataDir, "mediapipe478_clip.obj")),
			OutputPath: envString("MESH_CONVERT_OUTPUT", filepath.Join(dataDir, "mediapipe478.json")),
		},
		Landmarks: landmarks,
	}
}
