package domain

// Platform holds the operating system name and architecture of the current
// run, in manifest vocabulary (windows/linux/osx, x86/x86_64/arm64). It is
// constructed once at startup and passed read-only into rule evaluation.
type Platform struct {
	Name string
	Arch string
}

// FeatureSet is the set of launcher features enabled for the current run.
type FeatureSet map[string]bool

// NewFeatureSet builds a FeatureSet from a list of enabled feature names.
func NewFeatureSet(names []string) FeatureSet {
	fs := make(FeatureSet, len(names))
	for _, n := range names {
		fs[n] = true
	}
	return fs
}

// Enabled reports whether the named feature is part of the set.
func (fs FeatureSet) Enabled(name string) bool {
	return fs[name]
}

// RuleAction decides whether a matching rule includes or excludes its value.
type RuleAction string

const (
	// ActionAllow includes the value when the rule conditions match.
	ActionAllow RuleAction = "allow"
	// ActionDeny excludes the value when the rule conditions match.
	ActionDeny RuleAction = "deny"
)

// OSConstraint restricts a rule to a platform. A nil sub-field is a
// wildcard matching any value.
type OSConstraint struct {
	Name *string
	Arch *string
}

// Rule is a single conditional clause attached to an argument or library.
// Features maps a feature name to its required state: true demands the
// feature be enabled, false demands it be absent.
type Rule struct {
	Action   RuleAction
	Features map[string]bool
	OS       *OSConstraint
}

// Matches reports the rule's contribution to an inclusion decision. The
// positive result of the feature and platform checks is inverted for a deny
// rule, so a deny rule matches precisely when its conditions do not hold.
func (r Rule) Matches(platform Platform, features FeatureSet) bool {
	passed := r.featuresPass(features) && r.osPasses(platform)
	return passed != (r.Action == ActionDeny)
}

func (r Rule) featuresPass(features FeatureSet) bool {
	for name, required := range r.Features {
		if features.Enabled(name) != required {
			return false
		}
	}
	return true
}

func (r Rule) osPasses(platform Platform) bool {
	if r.OS == nil {
		return true
	}
	if r.OS.Name != nil && *r.OS.Name != platform.Name {
		return false
	}
	if r.OS.Arch != nil && *r.OS.Arch != platform.Arch {
		return false
	}
	return true
}

// RulesMatch reports whether every rule in the list matches. An empty list
// matches unconditionally.
func RulesMatch(rules []Rule, platform Platform, features FeatureSet) bool {
	for _, r := range rules {
		if !r.Matches(platform, features) {
			return false
		}
	}
	return true
}
