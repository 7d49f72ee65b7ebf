// Package config provides repovault run configuration, read from an optional
// .repovault.json file under the projects root with field-wise defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the per-projects-root configuration file
const ConfigFileName = ".repovault.json"

// Default fallback branch priorities. The backup and clone commands
// historically prefer different third choices (release vs develop), so each
// has its own explicit list; neither silently wins over the other.
var (
	DefaultBackupFallbacks = []string{"main", "master", "release"}
	DefaultCloneFallbacks  = []string{"main", "master", "develop"}
)

// DefaultPageSize is the provider listing page size
const DefaultPageSize = 100

// DefaultRemote is the remote queried and pulled from
const DefaultRemote = "origin"

// Config is the run configuration
type Config struct {
	ProjectsDir          string   `json:"projectsDir,omitempty"`
	Remote               string   `json:"remote,omitempty"`
	PageSize             int      `json:"pageSize,omitempty"`
	BackupBranchPriority []string `json:"backupBranchPriority,omitempty"`
	CloneBranchPriority  []string `json:"cloneBranchPriority,omitempty"`
	LogDir               string   `json:"logDir,omitempty"`
}

// Load reads the configuration for a projects root. A missing file yields
// defaults; a malformed file is an error rather than a silent fallback.
func Load(projectsDir string) (*Config, error) {
	cfg := &Config{ProjectsDir: projectsDir}

	data, err := os.ReadFile(filepath.Join(projectsDir, ConfigFileName))
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	cfg.applyDefaults(projectsDir)
	return cfg, nil
}

func (c *Config) applyDefaults(projectsDir string) {
	if c.ProjectsDir == "" {
		c.ProjectsDir = projectsDir
	}
	if c.Remote == "" {
		c.Remote = DefaultRemote
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if len(c.BackupBranchPriority) == 0 {
		c.BackupBranchPriority = append([]string(nil), DefaultBackupFallbacks...)
	}
	if len(c.CloneBranchPriority) == 0 {
		c.CloneBranchPriority = append([]string(nil), DefaultCloneFallbacks...)
	}
	if c.LogDir == "" {
		c.LogDir = c.ProjectsDir
	}
}

// DefaultProjectsDir returns ~/Projects, the conventional projects root
func DefaultProjectsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Projects"
	}
	return filepath.Join(home, "Projects")
}
