// Package cliargs translates raw command-line tokens into a single API call
// descriptor: a method name, ordered positional arguments, and a typed
// parameter map built from --key=value style flags.
package cliargs

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoMethod is returned when no method name token is present.
var ErrNoMethod = errors.New("no method name given")

// PaginatorMethod is the fixed helper method the descriptor is rewritten to
// when the global --all flag is set. The original method name becomes the
// first positional argument.
const PaginatorMethod = "paginator"

// ConfigureMethod is the pseudo-method that starts the interactive setup
// wizard instead of an API call. It is exempt from the pagination rewrite.
const ConfigureMethod = "configure"

// AccessLevelParam is the parameter key set by the literal access-level flags.
const AccessLevelParam = "access_level"

// GitLab permission tiers.
const (
	AccessGuest     = 10
	AccessReporter  = 20
	AccessDeveloper = 30
	AccessMaster    = 40
	AccessOwner     = 50
)

// accessLevelFlags maps the five literal flags to their numeric constants.
// These are matched before generic flag parsing.
var accessLevelFlags = map[string]int{
	"--guest":     AccessGuest,
	"--reporter":  AccessReporter,
	"--developer": AccessDeveloper,
	"--master":    AccessMaster,
	"--owner":     AccessOwner,
}

// Kind discriminates the variants of a parameter Value.
type Kind int

const (
	StringKind Kind = iota
	BoolKind
	IntKind
)

// Value is a tagged union over the parameter types a flag token can produce.
// Every token maps to exactly one variant.
type Value struct {
	kind Kind
	str  string
	b    bool
	n    int
}

// StringValue returns a string-variant Value.
func StringValue(s string) Value { return Value{kind: StringKind, str: s} }

// BoolValue returns a bool-variant Value.
func BoolValue(b bool) Value { return Value{kind: BoolKind, b: b} }

// IntValue returns an int-variant Value.
func IntValue(n int) Value { return Value{kind: IntKind, n: n} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Encode renders the value in its wire form: strings verbatim, booleans as
// "1"/"0", integers in decimal.
func (v Value) Encode() string {
	switch v.kind {
	case BoolKind:
		if v.b {
			return "1"
		}
		return "0"
	case IntKind:
		return strconv.Itoa(v.n)
	default:
		return v.str
	}
}

// Params maps normalized parameter keys to values.
type Params map[string]Value

// Descriptor is the structured form of one API call, constructed once per
// invocation and consumed exactly once by the dispatcher.
type Descriptor struct {
	Method string
	Args   []string
	Params Params
}

var (
	keyValueFlag = regexp.MustCompile(`^--([^\s=]+)=(.*)$`)
	negatedFlag  = regexp.MustCompile(`^--no-([^\s=]+)$`)
	booleanFlag  = regexp.MustCompile(`^--([^\s=]+)$`)
)

// Normalize converts a flag key or method name into a valid identifier,
// replacing hyphens with underscores.
func Normalize(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// Parse partitions tokens into a Descriptor. Tokens matching the flag grammar
// become parameters; everything else is positional, with the first positional
// becoming the method name. When all is set the descriptor is rewritten to the
// pagination helper form: the method name is pushed back onto the positional
// args and replaced with PaginatorMethod.
func Parse(tokens []string, all bool) (*Descriptor, error) {
	desc := &Descriptor{Params: make(Params)}

	for _, tok := range tokens {
		if level, ok := accessLevelFlags[tok]; ok {
			desc.Params[AccessLevelParam] = IntValue(level)
			continue
		}
		if m := keyValueFlag.FindStringSubmatch(tok); m != nil {
			desc.Params[Normalize(m[1])] = StringValue(m[2])
			continue
		}
		if m := negatedFlag.FindStringSubmatch(tok); m != nil {
			desc.Params[Normalize(m[1])] = BoolValue(false)
			continue
		}
		if m := booleanFlag.FindStringSubmatch(tok); m != nil {
			desc.Params[Normalize(m[1])] = BoolValue(true)
			continue
		}
		desc.Args = append(desc.Args, tok)
	}

	if len(desc.Args) == 0 {
		return nil, ErrNoMethod
	}
	desc.Method = Normalize(desc.Args[0])
	desc.Args = desc.Args[1:]

	if all && desc.Method != ConfigureMethod {
		// Preserved rewrite rule: the original method becomes the first
		// positional argument of the pagination helper.
		desc.Args = append([]string{desc.Method}, desc.Args...)
		desc.Method = PaginatorMethod
	}

	return desc, nil
}
