package form

import (
	"strings"

	"github.com/samber/lo"
)

// TagSet is an ordered set of tags.
type TagSet []string

// NewTagSet builds a set from raw values, dropping blanks and duplicates.
func NewTagSet(values ...string) TagSet {
	s := TagSet{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s TagSet) Has(tag string) bool {
	return lo.Contains(s, tag)
}

// Add appends a trimmed tag. Empty or already present tags are rejected.
func (s *TagSet) Add(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || s.Has(tag) {
		return false
	}
	*s = append(*s, tag)
	return true
}

func (s *TagSet) Remove(tag string) bool {
	if !s.Has(tag) {
		return false
	}
	*s = lo.Without(*s, tag)
	return true
}

// Toggle flips membership of a vocabulary tag, leaving every other entry alone.
func (s *TagSet) Toggle(tag string) {
	if !s.Remove(tag) {
		s.Add(tag)
	}
}

func (s TagSet) Strings() []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}
