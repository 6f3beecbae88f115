package model

import "github.com/riskibarqy/pwned-go/external/pwned/wire"

// AnyCompetition is satisfied by *Tournament and *League.
type AnyCompetition interface {
	wire.Record
	Kind() Kind
	Common() *Competition
}

// Competition carries the fields shared by tournaments and leagues.
type Competition struct {
	ID             wire.Opt[int64]
	Name           wire.Opt[string]
	GameID         wire.Opt[int64]
	PlayersOnTeam  wire.Opt[int]
	CountryID      wire.Opt[int64]
	Language       wire.Opt[string]
	Description    wire.Opt[string]
	LastActivityAt wire.Opt[string]
	LiveAt         wire.Opt[string]
	TeamCount      wire.Opt[int]
	RoundCount     wire.Opt[int]
	RoundCurrent   wire.Opt[int]
	DemandGUIDs    wire.Opt[bool]
	OnlyRegistered wire.Opt[bool]
	SignupMode     wire.Opt[string]
	SignupCount    wire.Opt[int]
	Path           wire.Opt[string]
	Status         wire.Opt[string]

	// Game is filled from responses only and never sent back.
	Game *Game
}

func (c *Competition) Schema() wire.Schema {
	return wire.Schema{
		wire.Scalar("id", &c.ID),
		wire.Scalar("name", &c.Name),
		wire.Scalar("gameId", &c.GameID),
		wire.Scalar("playersOnTeam", &c.PlayersOnTeam),
		wire.Scalar("countryId", &c.CountryID),
		wire.Scalar("language", &c.Language),
		wire.Scalar("description", &c.Description),
		wire.Scalar("lastActivityAt", &c.LastActivityAt),
		wire.Scalar("liveAt", &c.LiveAt),
		wire.Scalar("teamCount", &c.TeamCount),
		wire.Scalar("roundCount", &c.RoundCount),
		wire.Scalar("roundCurrent", &c.RoundCurrent),
		wire.Scalar("demandGUIDs", &c.DemandGUIDs),
		wire.Scalar("onlyRegistered", &c.OnlyRegistered),
		wire.Scalar("signupMode", &c.SignupMode),
		wire.Scalar("signupCount", &c.SignupCount),
		wire.Scalar("path", &c.Path),
		wire.Scalar("status", &c.Status),
	}
}

func (c *Competition) decodeGame(obj *wire.Object) error {
	game, err := decodeExtra[Game](obj, "game")
	if err != nil {
		return err
	}
	c.Game = game
	return nil
}

// decodeExtra reads a nested record stored under a key that is not part of
// the owner's schema.
func decodeExtra[T any, P wire.Ptr[T]](obj *wire.Object, key string) (P, error) {
	var field wire.Opt[P]
	if err := wire.DecodeObject(obj, wire.Schema{wire.Nested(key, &field)}); err != nil {
		return nil, err
	}
	return field.Get(), nil
}

// Tournament is a bracket competition built from a server template.
type Tournament struct {
	Competition

	Template      wire.Opt[string]
	GroupSize     wire.Opt[int]
	GroupCount    wire.Opt[int]
	QuickProgress wire.Opt[bool]
}

func (t *Tournament) Schema() wire.Schema {
	return wire.Merge(t.Competition.Schema(),
		wire.Scalar("template", &t.Template),
		wire.Scalar("groupSize", &t.GroupSize),
		wire.Scalar("groupCount", &t.GroupCount),
		wire.Scalar("quickProgress", &t.QuickProgress),
	)
}

func (t *Tournament) Kind() Kind { return KindTournament }

func (t *Tournament) Common() *Competition { return &t.Competition }

func (t *Tournament) MarshalJSON() ([]byte, error) { return wire.Marshal(t) }

func (t *Tournament) UnmarshalJSON(data []byte) error {
	obj, err := wire.ParseObject(data)
	if err != nil {
		return err
	}
	if err := wire.DecodeObject(obj, t); err != nil {
		return err
	}
	return t.decodeGame(obj)
}

// League is a round-robin (league) or points-race (championship) competition.
type League struct {
	Competition

	LeagueType     wire.Opt[string]
	ScoringModelID wire.Opt[int64]

	// ScoringModel is filled from the embedded scoringModel object of a
	// response. It is not part of the schema and is never sent back.
	ScoringModel *LeagueScoringModel
}

func (l *League) Schema() wire.Schema {
	return wire.Merge(l.Competition.Schema(),
		wire.Scalar("leagueType", &l.LeagueType),
		wire.Scalar("teamCount", &l.TeamCount),
		wire.Scalar("scoringModelId", &l.ScoringModelID),
		wire.Scalar("roundCount", &l.RoundCount),
	)
}

func (l *League) Kind() Kind { return KindLeague }

func (l *League) Common() *Competition { return &l.Competition }

func (l *League) MarshalJSON() ([]byte, error) { return wire.Marshal(l) }

func (l *League) UnmarshalJSON(data []byte) error {
	obj, err := wire.ParseObject(data)
	if err != nil {
		return err
	}
	if err := wire.DecodeObject(obj, l); err != nil {
		return err
	}
	if err := l.decodeGame(obj); err != nil {
		return err
	}

	scoringModel, err := decodeExtra[LeagueScoringModel](obj, "scoringModel")
	if err != nil {
		return err
	}
	l.ScoringModel = scoringModel
	return nil
}
