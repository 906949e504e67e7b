package role

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is the canonical role identifier. The numeric values match the seeded
// rows of the roles table.
type ID uint

const (
	Admin   ID = 1
	Manager ID = 2
	Member  ID = 3
)

var AllRoles = []ID{Admin, Manager, Member}

var names = map[ID]string{
	Admin:   "Admin",
	Manager: "Manager",
	Member:  "Member",
}

func (id ID) IsValid() bool {
	_, ok := names[id]
	return ok
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", uint(id))
}

// Normalize maps any unknown identifier to Member.
func (id ID) Normalize() ID {
	if id.IsValid() {
		return id
	}
	return Member
}

// Parse resolves a role name, case-insensitively, or a numeric id.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	for id, name := range names {
		if strings.EqualFold(name, s) {
			return id, nil
		}
	}
	if n, err := strconv.ParseUint(s, 10, 32); err == nil && ID(n).IsValid() {
		return ID(n), nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// UnmarshalJSON accepts either the numeric id or the role name.
func (id *ID) UnmarshalJSON(b []byte) error {
	var n uint
	if err := json.Unmarshal(b, &n); err == nil {
		if !ID(n).IsValid() {
			return fmt.Errorf("unknown role id %d", n)
		}
		*id = ID(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("role must be an id or a name")
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
