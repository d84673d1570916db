// Package launchargs expands the launch argument grammars into flat
// argument vectors: rule-guarded inclusion plus placeholder substitution.
package launchargs

import (
	"fmt"
	"regexp"

	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports"
)

var placeholderPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// Query carries the run-scoped context an argument list is resolved
// against. It is constructed once and read-only during resolution.
type Query struct {
	Constants domain.Constants
	Features  domain.FeatureSet
	Platform  domain.Platform
}

// Resolver expands argument specs. Resolution never fails: a missing
// placeholder key degrades to an empty string, since a dropped launch
// argument is less catastrophic than aborting a fully synced session.
type Resolver struct {
	logger ports.Logger
}

// NewResolver creates a Resolver.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve expands specs in input order into a flat list of strings. A
// literal spec contributes its string; a guarded spec contributes its value
// only when every rule matches, with array values expanding in place. Every
// contributed string is placeholder-substituted.
func (r *Resolver) Resolve(specs []domain.Argument, q Query) []string {
	resolved := make([]string, 0, len(specs))

	for _, spec := range specs {
		for _, raw := range r.expand(spec, q) {
			resolved = append(resolved, r.substitute(raw, q.Constants))
		}
	}

	return resolved
}

func (r *Resolver) expand(spec domain.Argument, q Query) []string {
	switch spec.Kind {
	case domain.ArgumentLiteral:
		return []string{spec.Literal}
	case domain.ArgumentGuarded:
		if domain.RulesMatch(spec.Rules, q.Platform, q.Features) {
			return spec.Value
		}
		return nil
	default:
		return nil
	}
}

// substitute replaces every ${key} occurrence with the constant's value.
// An unresolved key is replaced by an empty string and logged; it does not
// abort the resolution.
func (r *Resolver) substitute(s string, constants domain.Constants) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		key := match[2 : len(match)-1]
		value, ok := constants[key]
		if !ok {
			r.logger.Warn(fmt.Sprintf("no value for placeholder %q", key))
			return ""
		}
		return value
	})
}
