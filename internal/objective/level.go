package objective

import (
	"strings"

	"github.com/saulo-duarte/okrun-lambda/internal/role"
)

// Level is the organizational scope of an objective. Values are the stored
// labels.
type Level string

const (
	LevelCompany    Level = "Công ty"
	LevelDepartment Level = "Phòng ban"
	LevelTeam       Level = "Nhóm"
	LevelIndividual Level = "Cá nhân"
)

const DefaultLevel = LevelIndividual

var AllLevels = []Level{
	LevelCompany,
	LevelDepartment,
	LevelTeam,
	LevelIndividual,
}

var levelKeys = map[string]Level{
	"company":    LevelCompany,
	"department": LevelDepartment,
	"team":       LevelTeam,
	"individual": LevelIndividual,
}

func (l Level) IsValid() bool {
	for _, v := range AllLevels {
		if l == v {
			return true
		}
	}
	return false
}

// Key returns the English key of a level, e.g. "company".
func (l Level) Key() string {
	for k, v := range levelKeys {
		if v == l {
			return k
		}
	}
	return ""
}

// ParseLevel accepts a stored label or its English key, case-insensitively.
// An empty string yields DefaultLevel.
func ParseLevel(s string) (Level, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLevel, true
	}
	for _, l := range AllLevels {
		if strings.EqualFold(string(l), s) {
			return l, true
		}
	}
	l, ok := levelKeys[strings.ToLower(s)]
	return l, ok
}

// AllowedLevels lists, from widest to narrowest, the levels a role may
// create. Unknown roles get the Member set.
func AllowedLevels(r role.ID) []Level {
	switch r.Normalize() {
	case role.Admin:
		return []Level{LevelCompany, LevelDepartment, LevelTeam, LevelIndividual}
	case role.Manager:
		return []Level{LevelDepartment, LevelTeam, LevelIndividual}
	default:
		return []Level{LevelTeam, LevelIndividual}
	}
}

func CanCreate(r role.ID, l Level) bool {
	for _, allowed := range AllowedLevels(r) {
		if allowed == l {
			return true
		}
	}
	return false
}
