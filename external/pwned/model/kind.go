// Package model holds the records exchanged with the Pwned service and the
// wire schema of each one.
package model

import (
	"strings"
	"time"

	"github.com/riskibarqy/pwned-go/external/pwned/wire"
)

// Kind is the closed set of competition resources the service exposes.
type Kind string

const (
	KindTournament Kind = "tournament"
	KindLeague     Kind = "league"
)

// Resource is the collection segment used in request paths.
func (k Kind) Resource() string {
	return string(k) + "s"
}

func (k Kind) Valid() bool {
	return k == KindTournament || k == KindLeague
}

func ParseKind(name string) (Kind, bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	return kind, kind.Valid()
}

const (
	TypeLeague       = "league"
	TypeChampionship = "championship"

	StatusLive = "live"
)

// TimeLayout is the timestamp format the service reads and writes.
const TimeLayout = "2006-01-02 15:04:05"

// ParseTime reads a timestamp field. It reports false when the field is unset,
// null or not in TimeLayout.
func ParseTime(field wire.Opt[string]) (time.Time, bool) {
	raw, ok := field.Lookup()
	if !ok || strings.TrimSpace(raw) == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(TimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func FormatTime(t time.Time) wire.Opt[string] {
	return wire.Some(t.Format(TimeLayout))
}
