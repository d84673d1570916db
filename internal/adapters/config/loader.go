// Package config provides the launcher profile loader.
package config

import (
	"os"
	"path/filepath"

	"github.com/lanternmc/lantern/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default profile filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ProfileFileName}
}

// Load reads the profile from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Profile, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a profile file from the given path.
func Load(path string) (*domain.Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read profile file")
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse profile file")
	}

	return file.toDomain()
}

type profileFile struct {
	Version  string   `yaml:"version"`
	Channel  string   `yaml:"channel"`
	WorkDir  string   `yaml:"workDir"`
	Java     string   `yaml:"java"`
	Player   player   `yaml:"player"`
	Features []string `yaml:"features"`
	Platform platform `yaml:"platform"`
	Parallel int      `yaml:"parallelism"`
}

type player struct {
	Name string `yaml:"name"`
	UUID string `yaml:"uuid"`
	Type string `yaml:"type"`
}

type platform struct {
	Name string `yaml:"name"`
	Arch string `yaml:"arch"`
}

func (f profileFile) toDomain() (*domain.Profile, error) {
	channel := domain.Channel(f.Channel)
	switch channel {
	case "", domain.ChannelRelease:
		channel = domain.ChannelRelease
	case domain.ChannelSnapshot:
	default:
		return nil, zerr.With(zerr.New("unknown channel"), "channel", f.Channel)
	}

	if f.Parallel < 0 {
		return nil, zerr.With(zerr.New("parallelism must not be negative"), "parallelism", f.Parallel)
	}

	workDir := f.WorkDir
	if workDir == "" {
		workDir = "run"
	}

	java := f.Java
	if java == "" {
		java = "java"
	}

	userType := f.Player.Type
	if userType == "" {
		userType = "msa"
	}

	return &domain.Profile{
		VersionID:   f.Version,
		Channel:     channel,
		WorkDir:     workDir,
		JavaBin:     java,
		PlayerName:  f.Player.Name,
		PlayerUUID:  f.Player.UUID,
		UserType:    userType,
		Features:    f.Features,
		Platform:    domain.Platform{Name: f.Platform.Name, Arch: f.Platform.Arch},
		Parallelism: f.Parallel,
	}, nil
}
