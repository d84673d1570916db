package domain

// FileInfo is the downloadable portion of a manifest entry: where to get the
// bytes and how to verify them.
type FileInfo struct {
	SHA1 string
	Size int64
	URL  string
}

// Version is one entry of the global version manifest.
type Version struct {
	ID   string
	Type string
	URL  string
	SHA1 string
}

// VersionManifest lists every published version plus the current release and
// snapshot ids.
type VersionManifest struct {
	LatestRelease  string
	LatestSnapshot string
	Versions       []Version
}

// FindVersion returns the version with the given id, or false when absent.
func (m *VersionManifest) FindVersion(id string) (Version, bool) {
	for _, v := range m.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return Version{}, false
}

// Library is a single classpath dependency of a version. Rules restrict the
// library to a platform; a library with no rules applies everywhere.
type Library struct {
	Name     string
	Artifact LibraryArtifact
	Rules    []Rule
}

// LibraryArtifact is the library's downloadable jar plus its repository
// layout path relative to the libraries root.
type LibraryArtifact struct {
	Path string
	Info FileInfo
}

// AssetIndexRef points at the asset index document for a version.
type AssetIndexRef struct {
	ID   string
	Info FileInfo
}

// VersionInfo is the per-version document: everything needed to materialize
// and launch that version.
type VersionInfo struct {
	ID         string
	Type       string
	MainClass  string
	AssetIndex AssetIndexRef
	ClientJar  FileInfo
	Libraries  []Library
	JVMArgs    []Argument
	GameArgs   []Argument
}

// AssetObject is one entry of an asset index, addressed by its content hash.
type AssetObject struct {
	Hash string
	Size int64
}

// AssetIndex maps asset names to their content-addressed objects.
type AssetIndex struct {
	Objects map[string]AssetObject
}
