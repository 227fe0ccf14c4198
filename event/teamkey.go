package event

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const teamKeyPrefix = "frc"

// ErrInvalidTeamFormat reports a team identifier that is neither a number, a
// digit string, nor an "frc"-prefixed key.
var ErrInvalidTeamFormat = errors.New("invalid team format")

// TeamID identifies a team as either a raw number or a key string. Every public
// operation that accepts a team normalizes it through CanonicalTeamKey first.
type TeamID interface {
	canonicalKey() (string, error)
}

// TeamNumber is a team identified by its FRC number, e.g. TeamNumber(1418).
type TeamNumber int

func (n TeamNumber) canonicalKey() (string, error) {
	return teamKeyPrefix + strconv.Itoa(int(n)), nil
}

// TeamKey is a team identified by a string: either digits ("1418") or a
// case-insensitive canonical key ("frc1418", "FRC1418").
type TeamKey string

func (k TeamKey) canonicalKey() (string, error) {
	s := strings.ToLower(strings.TrimSpace(string(k)))
	s = strings.TrimPrefix(s, teamKeyPrefix)
	if s == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidTeamFormat, string(k))
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTeamFormat, string(k))
	}
	return teamKeyPrefix + strconv.Itoa(n), nil
}

// CanonicalTeamKey normalizes a TeamID into the canonical "frc<number>" form.
func CanonicalTeamKey(id TeamID) (string, error) {
	if id == nil {
		return "", fmt.Errorf("%w: nil team id", ErrInvalidTeamFormat)
	}
	return id.canonicalKey()
}

// teamNumberOf extracts the numeric part of a normalized team identifier.
func teamNumberOf(id TeamID) (int, error) {
	key, err := CanonicalTeamKey(id)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimPrefix(key, teamKeyPrefix))
}
