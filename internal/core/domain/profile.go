package domain

import "runtime"

// Channel selects which manifest pointer to follow when no explicit version
// id is configured.
type Channel string

const (
	// ChannelRelease follows the latest stable release.
	ChannelRelease Channel = "release"
	// ChannelSnapshot follows the latest snapshot.
	ChannelSnapshot Channel = "snapshot"
)

// DefaultParallelism caps the number of simultaneous artifact downloads when
// the profile does not set one.
const DefaultParallelism = 4

// Profile is the launcher configuration for a single run, loaded once at
// startup. There is no ambient global state: every component that needs a
// run-scoped value receives it from here.
type Profile struct {
	// VersionID pins an exact version. Empty means "latest of Channel".
	VersionID string
	Channel   Channel
	// WorkDir is the root under which libraries, assets and the game
	// directory are materialized.
	WorkDir string
	// JavaBin is the java executable used to start the game.
	JavaBin string

	PlayerName string
	PlayerUUID string
	UserType   string

	// Features lists the enabled launcher features (demo mode, custom
	// resolution, ...) referenced by guarded arguments.
	Features []string

	// Platform overrides the detected os name/arch when non-empty.
	Platform Platform

	// Parallelism bounds concurrent downloads. Zero means
	// DefaultParallelism.
	Parallelism int
}

// EffectivePlatform returns the configured platform, falling back to the
// detected one field by field.
func (p *Profile) EffectivePlatform() Platform {
	detected := DetectPlatform()
	out := p.Platform
	if out.Name == "" {
		out.Name = detected.Name
	}
	if out.Arch == "" {
		out.Arch = detected.Arch
	}
	return out
}

// EffectiveParallelism returns the configured download bound or the default.
func (p *Profile) EffectiveParallelism() int {
	if p.Parallelism > 0 {
		return p.Parallelism
	}
	return DefaultParallelism
}

// DetectPlatform maps the Go runtime identifiers onto the manifest's
// platform vocabulary.
func DetectPlatform() Platform {
	name := runtime.GOOS
	switch name {
	case "darwin":
		name = "osx"
	}

	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "386":
		arch = "x86"
	}

	return Platform{Name: name, Arch: arch}
}
