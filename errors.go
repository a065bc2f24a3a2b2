package navskema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/navskema/i18n"
	"github.com/reoring/navskema/internal/engine"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeMissingName          = "missing_name"
	CodeDuplicateName        = "duplicate_name"
	CodeInvalidChild         = "invalid_child"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeParseError           = "parse_error"
	CodeDuplicateKey         = engine.CodeDuplicateKey
	CodeDepthExceeded        = engine.CodeDepthExceeded
	// Schema-wide validation pass
	CodeInvalidInitialRoute = "invalid_initial_route"
	CodeShadowedName        = "shadowed_name"
	CodeRootMissing         = "root_missing"
)

// Construction errors. Literal trees that trip one of these fail at build
// time; nothing in the resolver returns them.
var (
	ErrMissingName   = errors.New("navskema: node name is empty")
	ErrDuplicateName = errors.New("navskema: duplicate sibling name")
	ErrInvalidKind   = errors.New("navskema: invalid node kind")
	ErrInvalidChild  = errors.New("navskema: invalid child node")
)

// Issue represents a single schema defect.
type Issue struct {
	Path    string // JSON Pointer into the wire form (for example: /0/children/1).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	// Params carries structured parameters (e.g., {"group":"(tabs)", "ref":"hom"})
	// for i18n and tooling.
	Params map[string]any
}

// Issues is a collection of schema defects that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_initial_route at /0/children/0
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// ByCode returns the issues carrying the given code.
func (iss Issues) ByCode(code string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Code == code {
			out = append(out, it)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// localize fills empty messages from the current i18n translator.
func localize(iss Issues) Issues {
	for i := range iss {
		if iss[i].Message != "" {
			continue
		}
		data := make(map[string]string, len(iss[i].Params))
		for k, v := range iss[i].Params {
			data[k] = fmt.Sprint(v)
		}
		iss[i].Message = i18n.T(iss[i].Code, data)
	}
	return iss
}
