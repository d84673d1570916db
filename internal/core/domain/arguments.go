package domain

// Constants maps placeholder keys to their substituted values. It is built
// once per run from configuration and resolved paths and is read-only
// during argument resolution.
type Constants map[string]string

// ArgumentKind discriminates the two forms an argument spec can take.
type ArgumentKind int

const (
	// ArgumentLiteral is a plain string contributed unconditionally.
	ArgumentLiteral ArgumentKind = iota
	// ArgumentGuarded is a value contributed only when all its rules match.
	ArgumentGuarded
)

// Argument is one entry of a launch argument grammar. The manifest encodes
// it as either a bare string or a rules object; the manifest adapter decides
// the variant structurally at parse time.
type Argument struct {
	Kind    ArgumentKind
	Literal string
	Rules   []Rule
	// Value holds the guarded payload. A single-string payload is a
	// one-element slice; an array payload keeps its element order.
	Value []string
}

// LiteralArgument builds the literal variant.
func LiteralArgument(s string) Argument {
	return Argument{Kind: ArgumentLiteral, Literal: s}
}

// GuardedArgument builds the rule-guarded variant.
func GuardedArgument(rules []Rule, value []string) Argument {
	return Argument{Kind: ArgumentGuarded, Rules: rules, Value: value}
}
