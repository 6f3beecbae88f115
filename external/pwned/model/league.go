package model

import "github.com/riskibarqy/pwned-go/external/pwned/wire"

// LeagueScoringModel is the server-side point weighting applied to a league
// table. Championship models weight finishing positions instead of results.
type LeagueScoringModel struct {
	ID             wire.Opt[int64]
	Type           wire.Opt[string]
	Name           wire.Opt[string]
	Description    wire.Opt[string]
	Active         wire.Opt[bool]
	PointsWin      wire.Opt[int]
	PointsDraw     wire.Opt[int]
	PointsLoss     wire.Opt[int]
	PointsPosition wire.Opt[[]int]
	PointsBonus    wire.Opt[int]
}

func (m *LeagueScoringModel) Schema() wire.Schema {
	return wire.Schema{
		wire.Scalar("id", &m.ID),
		wire.Scalar("type", &m.Type),
		wire.Scalar("name", &m.Name),
		wire.Scalar("description", &m.Description),
		wire.Scalar("active", &m.Active),
		wire.Scalar("winPoints", &m.PointsWin),
		wire.Scalar("drawPoints", &m.PointsDraw),
		wire.Scalar("lossPoints", &m.PointsLoss),
		wire.Scalar("positionPoints", &m.PointsPosition),
		wire.Scalar("bonusPoints", &m.PointsBonus),
	}
}

func (m *LeagueScoringModel) MarshalJSON() ([]byte, error) { return wire.Marshal(m) }

func (m *LeagueScoringModel) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

// LeagueTablePosition is one standing row as computed by the server.
type LeagueTablePosition struct {
	Signup       wire.Opt[*Signup]
	Position     wire.Opt[int]
	Wins         wire.Opt[int]
	Draws        wire.Opt[int]
	Losses       wire.Opt[int]
	Points       wire.Opt[int]
	Score        wire.Opt[int]
	ScoreFor     wire.Opt[int]
	ScoreAgainst wire.Opt[int]
}

func (p *LeagueTablePosition) Schema() wire.Schema {
	return wire.Schema{
		wire.Nested("signup", &p.Signup),
		wire.Scalar("position", &p.Position),
		wire.Scalar("wins", &p.Wins),
		wire.Scalar("draws", &p.Draws),
		wire.Scalar("losses", &p.Losses),
		wire.Scalar("points", &p.Points),
		wire.Scalar("score", &p.Score),
		wire.Scalar("scoreFor", &p.ScoreFor),
		wire.Scalar("scoreAgainst", &p.ScoreAgainst),
	}
}

func (p *LeagueTablePosition) MarshalJSON() ([]byte, error) { return wire.Marshal(p) }

func (p *LeagueTablePosition) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, p) }

// ChampionshipResult is a signup's finishing position and score in one
// championship round.
type ChampionshipResult struct {
	Signup   wire.Opt[*Signup]
	Position wire.Opt[int]
	Score    wire.Opt[int]
}

func (r *ChampionshipResult) Schema() wire.Schema {
	return wire.Schema{
		wire.Nested("signup", &r.Signup),
		wire.Scalar("position", &r.Position),
		wire.Scalar("score", &r.Score),
	}
}

func (r *ChampionshipResult) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }

func (r *ChampionshipResult) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
