package models

import "fmt"

// TargetType identifies which kind of user-generated content a moderation
// action points at. The set is closed: unknown values are rejected at parse
// time instead of silently mapping to a missing table.
type TargetType string

const (
	TargetPost     TargetType = "post"
	TargetAdoption TargetType = "adoption"
	TargetComment  TargetType = "comment"
	TargetSound    TargetType = "sound"
	TargetAnimal   TargetType = "animal"
)

var targetTables = map[TargetType]string{
	TargetPost:     "posts",
	TargetAdoption: "adoptions",
	TargetComment:  "comments",
	TargetSound:    "sounds",
	TargetAnimal:   "animals",
}

// ParseTargetType validates a client-supplied target type string.
func ParseTargetType(s string) (TargetType, error) {
	t := TargetType(s)
	if _, ok := targetTables[t]; !ok {
		return "", fmt.Errorf("unknown target type %q", s)
	}
	return t, nil
}

// Table returns the table holding content of this type. Valid for every
// parsed TargetType; the zero value panics rather than querying nothing.
func (t TargetType) Table() string {
	table, ok := targetTables[t]
	if !ok {
		panic("unparsed target type: " + string(t))
	}
	return table
}
