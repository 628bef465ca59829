package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// FileName is the project manifest filename, looked up in the working
// directory.
const FileName = "servectl.yaml"

// Project holds per-project overrides for the build front-end.
type Project struct {
	Program string       `yaml:"program,omitempty" json:"program,omitempty"`
	Install InstallBlock `yaml:"install,omitempty" json:"install,omitempty"`
	Cargo   CargoBlock   `yaml:"cargo,omitempty" json:"cargo,omitempty"`
}

// InstallBlock configures the install step.
type InstallBlock struct {
	BinDir string `yaml:"bin_dir,omitempty" json:"bin_dir,omitempty"`
}

// CargoBlock configures the cargo invocation.
type CargoBlock struct {
	Bin        string `yaml:"bin,omitempty" json:"bin,omitempty"`
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
}

// Parse reads and validates a project manifest file.
func Parse(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("manifest %s: %s", path, result.Issues[0].Message)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &p, nil
}

// Find locates and parses the manifest in dir. A missing file is not an
// error; it returns an empty Project so defaults apply.
func Find(dir string) (*Project, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Project{}, nil
	}
	return Parse(path)
}
