package framework

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters holds the -run and -skip parameters.
//
// As with "go test -run", each pattern is split on "/" and the pieces are matched against the
// corresponding levels of the test path. A test whose path is shorter than a -run pattern is
// selected if all of its levels match, so that the groups containing the wanted tests will run.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.anyMatch(id, true)) &&
		!r.MustNotMatch.anyMatch(id, false)
}

// IsDefined returns true if either list has any patterns.
func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

type RegexList struct {
	patterns []pathPattern
}

type pathPattern struct {
	source   string
	elements []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.source+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	p := pathPattern{source: value}
	for _, e := range strings.Split(value, "/") {
		rx, err := regexp.Compile(e)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		p.elements = append(p.elements, rx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

// Patterns returns the original pattern strings.
func (r RegexList) Patterns() []string {
	ret := make([]string, 0, len(r.patterns))
	for _, p := range r.patterns {
		ret = append(ret, p.source)
	}
	return ret
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) anyMatch(id TestID, allowPartial bool) bool {
	for _, p := range r.patterns {
		if p.match(id.Path, allowPartial) {
			return true
		}
	}
	return false
}

func (p pathPattern) match(path []string, allowPartial bool) bool {
	if len(path) < len(p.elements) && !allowPartial {
		return false
	}
	for i, rx := range p.elements {
		if i >= len(path) {
			break
		}
		if !rx.MatchString(path[i]) {
			return false
		}
	}
	return true
}

// ExactPattern returns a -run pattern that selects exactly the test with this ID.
func ExactPattern(id TestID) string {
	parts := make([]string, 0, len(id.Path))
	for _, p := range id.Path {
		parts = append(parts, "^"+regexp.QuoteMeta(p)+"$")
	}
	return strings.Join(parts, "/")
}
