package model

import "github.com/riskibarqy/pwned-go/external/pwned/wire"

type Game struct {
	ID                wire.Opt[int64]
	Name              wire.Opt[string]
	TeamBased         wire.Opt[bool]
	PrivateServers    wire.Opt[bool]
	Active            wire.Opt[bool]
	DefaultLeagueType wire.Opt[string]
}

func (g *Game) Schema() wire.Schema {
	return wire.Schema{
		wire.Scalar("id", &g.ID),
		wire.Scalar("name", &g.Name),
		wire.Scalar("teamBased", &g.TeamBased),
		wire.Scalar("privateServers", &g.PrivateServers),
		wire.Scalar("active", &g.Active),
		wire.Scalar("defaultLeagueType", &g.DefaultLeagueType),
	}
}

func (g *Game) MarshalJSON() ([]byte, error) { return wire.Marshal(g) }

func (g *Game) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, g) }

type Country struct {
	ID              wire.Opt[int64]
	Code            wire.Opt[string]
	LanguageKey     wire.Opt[string]
	CountryKey      wire.Opt[string]
	DefaultLanguage wire.Opt[string]
}

func (c *Country) Schema() wire.Schema {
	return wire.Schema{
		wire.Scalar("id", &c.ID),
		wire.Scalar("code", &c.Code),
		wire.Scalar("languageKey", &c.LanguageKey),
		wire.Scalar("countryKey", &c.CountryKey),
		wire.Scalar("defaultLanguage", &c.DefaultLanguage),
	}
}

func (c *Country) MarshalJSON() ([]byte, error) { return wire.Marshal(c) }

func (c *Country) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, c) }

// TournamentTemplate names a bracket layout, e.g. "singleelim8", and the
// number of teams it seats.
type TournamentTemplate struct {
	Description wire.Opt[string]
	Template    wire.Opt[string]
	Teams       wire.Opt[int]
}

func (t *TournamentTemplate) Schema() wire.Schema {
	return wire.Schema{
		wire.Scalar("description", &t.Description),
		wire.Scalar("template", &t.Template),
		wire.Scalar("teams", &t.Teams),
	}
}

func (t *TournamentTemplate) MarshalJSON() ([]byte, error) { return wire.Marshal(t) }

func (t *TournamentTemplate) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, t) }
