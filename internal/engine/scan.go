// Package engine pre-scans JSON wire documents for defects that a plain
// unmarshal into map[string]any silently hides.
package engine

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Issue codes produced by Scan.
const (
	CodeDuplicateKey  = "duplicate_key"
	CodeDepthExceeded = "depth_exceeded"
)

// DefaultMaxDepth bounds container nesting when Limits.MaxDepth is zero.
const DefaultMaxDepth = 64

// Limits controls a scan.
type Limits struct {
	// MaxDepth is the deepest container nesting accepted; 0 means
	// DefaultMaxDepth, negative disables the check.
	MaxDepth int
	// MaxIssues stops the scan once that many issues were found; <= 0 means
	// unlimited.
	MaxIssues int
}

// SimpleIssue is a minimal issue representation; callers map it onto their
// own error model.
type SimpleIssue struct {
	Code string
	Path string // JSON Pointer
	Key  string // the repeated key, for duplicate_key
}

type frame struct {
	object       bool
	keys         map[string]struct{}
	expectingKey bool
	pos          string // current member key (escaped) or element index
	next         int
}

// Scan walks data token by token. Syntax errors are returned as err together
// with the issues found before them.
func Scan(data []byte, lim Limits) ([]SimpleIssue, error) {
	maxDepth := lim.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		issues []SimpleIssue
		stack  []frame
	)
	full := func() bool { return lim.MaxIssues > 0 && len(issues) >= lim.MaxIssues }

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return issues, nil
		}
		if err != nil {
			return issues, err
		}

		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			stack = stack[:len(stack)-1]
			endValue(stack)
			continue
		}

		if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectingKey {
			top := &stack[n-1]
			key, _ := tok.(string)
			top.pos = escape(key)
			top.expectingKey = false
			if _, dup := top.keys[key]; dup {
				issues = append(issues, SimpleIssue{Code: CodeDuplicateKey, Path: pointer(stack), Key: key})
				if full() {
					return issues, nil
				}
			}
			top.keys[key] = struct{}{}
			continue
		}

		// a value starts
		if n := len(stack); n > 0 && !stack[n-1].object {
			top := &stack[n-1]
			top.pos = strconv.Itoa(top.next)
			top.next++
		}
		switch tok {
		case json.Delim('{'), json.Delim('['):
			if maxDepth > 0 && len(stack) >= maxDepth {
				issues = append(issues, SimpleIssue{Code: CodeDepthExceeded, Path: pointer(stack)})
				return issues, nil
			}
			stack = append(stack, frame{
				object:       tok == json.Delim('{'),
				keys:         map[string]struct{}{},
				expectingKey: tok == json.Delim('{'),
			})
		default:
			endValue(stack)
		}
	}
}

func endValue(stack []frame) {
	if n := len(stack); n > 0 && stack[n-1].object {
		stack[n-1].expectingKey = true
	}
}

func pointer(stack []frame) string {
	if len(stack) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, f := range stack {
		b.WriteByte('/')
		b.WriteString(f.pos)
	}
	return b.String()
}

// escape applies RFC6901 escaping: '~' -> '~0', '/' -> '~1'.
func escape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
