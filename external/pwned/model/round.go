package model

import "github.com/riskibarqy/pwned-go/external/pwned/wire"

// Round is one step of a competition schedule. Stages and groups keep the
// order the server returned them in.
type Round struct {
	RoundNumber wire.Opt[int]
	Identifier  wire.Opt[string]
	Name        wire.Opt[string]
	Description wire.Opt[string]
	Time        wire.Opt[string]
	StartedAt   wire.Opt[string]
	Stages      wire.Opt[[]*Stage]
	Groups      wire.Opt[[]*Group]
}

func (r *Round) Schema() wire.Schema {
	return wire.Schema{
		wire.Scalar("roundNumber", &r.RoundNumber),
		wire.Scalar("identifier", &r.Identifier),
		wire.Scalar("name", &r.Name),
		wire.Scalar("description", &r.Description),
		wire.Scalar("time", &r.Time),
		wire.Scalar("startedAt", &r.StartedAt),
		wire.NestedList("stages", &r.Stages),
		wire.NestedList("groups", &r.Groups),
	}
}

func (r *Round) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }

func (r *Round) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }

// Matches flattens the matches of every stage in order.
func (r *Round) Matches() []*Match {
	var out []*Match
	for _, stage := range r.Stages.Get() {
		if stage == nil {
			continue
		}
		out = append(out, stage.Matches.Get()...)
	}
	return out
}

type Stage struct {
	MapName     wire.Opt[string]
	Description wire.Opt[string]
	Time        wire.Opt[string]
	Matches     wire.Opt[[]*Match]
}

func (s *Stage) Schema() wire.Schema {
	return wire.Schema{
		wire.Scalar("mapName", &s.MapName),
		wire.Scalar("description", &s.Description),
		wire.Scalar("time", &s.Time),
		wire.NestedList("matches", &s.Matches),
	}
}

func (s *Stage) MarshalJSON() ([]byte, error) { return wire.Marshal(s) }

func (s *Stage) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, s) }

// Group is a pool in a grouped tournament format. The service does not
// document its members, so it carries none.
type Group struct{}

func (g *Group) Schema() wire.Schema { return wire.Schema{} }

func (g *Group) MarshalJSON() ([]byte, error) { return wire.Marshal(g) }

func (g *Group) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, g) }

// Match pairs a signup with its opponent.
type Match struct {
	ID              wire.Opt[int64]
	Signup          wire.Opt[*Signup]
	SignupOpponent  wire.Opt[*Signup]
	Score           wire.Opt[int]
	ScoreOpponent   wire.Opt[int]
	Seeding         wire.Opt[int]
	SeedingOpponent wire.Opt[int]
	IsWalkover      wire.Opt[bool]
	Time            wire.Opt[string]
	MapName         wire.Opt[string]
}

func (m *Match) Schema() wire.Schema {
	return wire.Schema{
		wire.Scalar("id", &m.ID),
		wire.Nested("signup", &m.Signup),
		wire.Nested("signupOpponent", &m.SignupOpponent),
		wire.Scalar("score", &m.Score),
		wire.Scalar("scoreOpponent", &m.ScoreOpponent),
		wire.Scalar("seeding", &m.Seeding),
		wire.Scalar("seedingOpponent", &m.SeedingOpponent),
		wire.Scalar("isWalkover", &m.IsWalkover),
		wire.Scalar("time", &m.Time),
		wire.Scalar("mapName", &m.MapName),
	}
}

func (m *Match) MarshalJSON() ([]byte, error) { return wire.Marshal(m) }

func (m *Match) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }
