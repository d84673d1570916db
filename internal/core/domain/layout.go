package domain

import "path/filepath"

const (
	// LibrariesDirName is the name of the library repository directory.
	LibrariesDirName = "libraries"

	// AssetsDirName is the name of the assets root directory.
	AssetsDirName = "assets"

	// IndexesDirName is the name of the asset index directory under assets.
	IndexesDirName = "indexes"

	// ObjectsDirName is the name of the asset object store under assets.
	ObjectsDirName = "objects"

	// NativesDirName is the name of the native library directory.
	NativesDirName = "natives"

	// GameDirName is the name of the game working directory.
	GameDirName = ".minecraft"

	// LedgerFileName is the name of the sync ledger file.
	LedgerFileName = "lantern_ledger.json"

	// ProfileFileName is the name of the launcher configuration file.
	ProfileFileName = "lantern.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout resolves every path the launcher touches relative to a single work
// directory. All returned paths are joins of the root; callers that need
// absolute paths resolve the root before constructing the Layout.
type Layout struct {
	Root string
}

// NewLayout creates a Layout rooted at the given work directory.
func NewLayout(root string) Layout {
	return Layout{Root: filepath.Clean(root)}
}

// LibrariesDir returns the library repository root.
func (l Layout) LibrariesDir() string {
	return filepath.Join(l.Root, LibrariesDirName)
}

// LibraryPath returns the destination for a library artifact. The artifact
// path uses forward slashes in the manifest and is normalized here.
func (l Layout) LibraryPath(artifactPath string) string {
	return filepath.Join(l.LibrariesDir(), filepath.FromSlash(artifactPath))
}

// ClientJarPath returns the destination for the client jar of a version.
func (l Layout) ClientJarPath(versionID string) string {
	return filepath.Join(l.Root, versionID+".jar")
}

// AssetsDir returns the assets root.
func (l Layout) AssetsDir() string {
	return filepath.Join(l.Root, AssetsDirName)
}

// AssetIndexPath returns the destination for an asset index document.
func (l Layout) AssetIndexPath(indexID string) string {
	return filepath.Join(l.AssetsDir(), IndexesDirName, indexID+".json")
}

// AssetObjectPath returns the content-addressed destination for an asset
// object: objects/<first two hash chars>/<hash>.
func (l Layout) AssetObjectPath(hash string) string {
	return filepath.Join(l.AssetsDir(), ObjectsDirName, hash[:2], hash)
}

// NativesDir returns the directory native libraries are extracted to. It is
// substituted into the JVM argument grammar even for versions that ship no
// natives.
func (l Layout) NativesDir() string {
	return filepath.Join(l.Root, NativesDirName)
}

// GameDir returns the game working directory.
func (l Layout) GameDir() string {
	return filepath.Join(l.Root, GameDirName)
}

// LedgerPath returns the location of the sync ledger.
func (l Layout) LedgerPath() string {
	return filepath.Join(l.Root, LedgerFileName)
}
