package mojang

import (
	"encoding/json"

	"github.com/lanternmc/lantern/internal/core/domain"
	"go.trai.ch/zerr"
)

// Wire types for the piston-meta documents. They are converted to domain
// types immediately after decoding; nothing outside this package sees them.

type versionManifestDTO struct {
	Latest   latestDTO    `json:"latest"`
	Versions []versionDTO `json:"versions"`
}

type latestDTO struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

type versionDTO struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
}

func (d versionManifestDTO) toDomain() *domain.VersionManifest {
	versions := make([]domain.Version, len(d.Versions))
	for i, v := range d.Versions {
		versions[i] = domain.Version{ID: v.ID, Type: v.Type, URL: v.URL, SHA1: v.SHA1}
	}
	return &domain.VersionManifest{
		LatestRelease:  d.Latest.Release,
		LatestSnapshot: d.Latest.Snapshot,
		Versions:       versions,
	}
}

type versionInfoDTO struct {
	ID         string       `json:"id"`
	Type       string       `json:"type"`
	MainClass  string       `json:"mainClass"`
	Arguments  argumentsDTO `json:"arguments"`
	AssetIndex struct {
		ID string `json:"id"`
		fileInfoDTO
	} `json:"assetIndex"`
	Downloads struct {
		Client fileInfoDTO `json:"client"`
	} `json:"downloads"`
	Libraries []libraryDTO `json:"libraries"`
}

type fileInfoDTO struct {
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

func (d fileInfoDTO) toDomain() domain.FileInfo {
	return domain.FileInfo{SHA1: d.SHA1, Size: d.Size, URL: d.URL}
}

type argumentsDTO struct {
	Game []argumentDTO `json:"game"`
	JVM  []argumentDTO `json:"jvm"`
}

type libraryDTO struct {
	Name      string `json:"name"`
	Downloads struct {
		Artifact struct {
			Path string `json:"path"`
			fileInfoDTO
		} `json:"artifact"`
	} `json:"downloads"`
	Rules []ruleDTO `json:"rules"`
}

type ruleDTO struct {
	Action   string          `json:"action"`
	Features map[string]bool `json:"features"`
	OS       *osDTO          `json:"os"`
}

type osDTO struct {
	Name *string `json:"name"`
	Arch *string `json:"arch"`
}

func (d ruleDTO) toDomain() (domain.Rule, error) {
	var action domain.RuleAction
	switch d.Action {
	case "allow":
		action = domain.ActionAllow
	case "disallow", "deny":
		action = domain.ActionDeny
	default:
		return domain.Rule{}, zerr.With(zerr.New("unknown rule action"), "action", d.Action)
	}

	rule := domain.Rule{Action: action, Features: d.Features}
	if d.OS != nil {
		rule.OS = &domain.OSConstraint{Name: d.OS.Name, Arch: d.OS.Arch}
	}
	return rule, nil
}

// argumentDTO is the untagged union of the argument grammar: either a bare
// string or a {rules, value} object where value is a string or an array of
// strings. The variant is decided structurally here, at parse time.
type argumentDTO struct {
	literal string
	rules   []ruleDTO
	value   []string
	guarded bool
}

func (a *argumentDTO) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.literal = s
		a.guarded = false
		return nil
	}

	var obj struct {
		Rules []ruleDTO       `json:"rules"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return zerr.Wrap(err, "argument is neither a string nor a rules object")
	}

	var single string
	if err := json.Unmarshal(obj.Value, &single); err == nil {
		a.value = []string{single}
	} else {
		var many []string
		if err := json.Unmarshal(obj.Value, &many); err != nil {
			return zerr.Wrap(err, "argument value is neither a string nor an array")
		}
		a.value = many
	}

	a.rules = obj.Rules
	a.guarded = true
	return nil
}

func (a argumentDTO) toDomain() (domain.Argument, error) {
	if !a.guarded {
		return domain.LiteralArgument(a.literal), nil
	}

	rules := make([]domain.Rule, len(a.rules))
	for i, r := range a.rules {
		rule, err := r.toDomain()
		if err != nil {
			return domain.Argument{}, err
		}
		rules[i] = rule
	}
	return domain.GuardedArgument(rules, a.value), nil
}

func (d versionInfoDTO) toDomain() (*domain.VersionInfo, error) {
	jvmArgs, err := argumentsToDomain(d.Arguments.JVM)
	if err != nil {
		return nil, err
	}
	gameArgs, err := argumentsToDomain(d.Arguments.Game)
	if err != nil {
		return nil, err
	}

	libraries := make([]domain.Library, len(d.Libraries))
	for i, lib := range d.Libraries {
		rules := make([]domain.Rule, len(lib.Rules))
		for j, r := range lib.Rules {
			rule, err := r.toDomain()
			if err != nil {
				return nil, err
			}
			rules[j] = rule
		}
		libraries[i] = domain.Library{
			Name: lib.Name,
			Artifact: domain.LibraryArtifact{
				Path: lib.Downloads.Artifact.Path,
				Info: lib.Downloads.Artifact.fileInfoDTO.toDomain(),
			},
			Rules: rules,
		}
	}

	return &domain.VersionInfo{
		ID:        d.ID,
		Type:      d.Type,
		MainClass: d.MainClass,
		AssetIndex: domain.AssetIndexRef{
			ID:   d.AssetIndex.ID,
			Info: d.AssetIndex.fileInfoDTO.toDomain(),
		},
		ClientJar: d.Downloads.Client.toDomain(),
		Libraries: libraries,
		JVMArgs:   jvmArgs,
		GameArgs:  gameArgs,
	}, nil
}

func argumentsToDomain(dtos []argumentDTO) ([]domain.Argument, error) {
	args := make([]domain.Argument, len(dtos))
	for i, dto := range dtos {
		arg, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}

type assetIndexDTO struct {
	Objects map[string]assetObjectDTO `json:"objects"`
}

type assetObjectDTO struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// ParseAssetIndex decodes an asset index document.
func ParseAssetIndex(data []byte) (*domain.AssetIndex, error) {
	var dto assetIndexDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse asset index")
	}

	objects := make(map[string]domain.AssetObject, len(dto.Objects))
	for name, obj := range dto.Objects {
		objects[name] = domain.AssetObject{Hash: obj.Hash, Size: obj.Size}
	}
	return &domain.AssetIndex{Objects: objects}, nil
}
