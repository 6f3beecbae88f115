package pwned

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/pwned-go/external/pwned/model"
)

// CompetitionRef addresses one competition on the service. It holds the
// client, never the record, so records stay plain values.
type CompetitionRef struct {
	client *Client
	Kind   model.Kind
	ID     int64
}

// LeagueRef adds the league-only operations to a CompetitionRef.
type LeagueRef struct {
	CompetitionRef
}

func (c *Client) Tournament(id int64) CompetitionRef {
	return CompetitionRef{client: c, Kind: model.KindTournament, ID: id}
}

func (c *Client) League(id int64) LeagueRef {
	return LeagueRef{CompetitionRef{client: c, Kind: model.KindLeague, ID: id}}
}

// Ref returns the handle for a fetched or created competition.
func (c *Client) Ref(competition model.AnyCompetition) (CompetitionRef, error) {
	if competition == nil {
		return CompetitionRef{}, ErrMissingID
	}
	id, ok := competition.Common().ID.Lookup()
	if !ok {
		return CompetitionRef{}, crerr.Wrapf(ErrMissingID, "%s ref", competition.Kind())
	}
	return CompetitionRef{client: c, Kind: competition.Kind(), ID: id}, nil
}

func (r CompetitionRef) Get(ctx context.Context) (model.AnyCompetition, error) {
	return r.client.Get(ctx, string(r.Kind), r.ID)
}

func (r CompetitionRef) Update(ctx context.Context, competition model.AnyCompetition) error {
	return r.client.Update(ctx, r.Kind, r.ID, competition)
}

func (r CompetitionRef) Start(ctx context.Context) error {
	return r.client.Start(ctx, r.Kind, r.ID)
}

func (r CompetitionRef) AddSignups(ctx context.Context, signups ...*model.Signup) error {
	return r.client.AddSignups(ctx, r.Kind, r.ID, signups)
}

func (r CompetitionRef) Signups(ctx context.Context) ([]*model.Signup, error) {
	return r.client.Signups(ctx, r.Kind, r.ID)
}

func (r CompetitionRef) RemoveSignup(ctx context.Context, signup *model.Signup) error {
	return r.client.RemoveSignup(ctx, r.Kind, r.ID, signup)
}

func (r CompetitionRef) Round(ctx context.Context, roundNumber int) (*model.Round, error) {
	return r.client.Round(ctx, r.Kind, r.ID, roundNumber)
}

func (r CompetitionRef) Rounds(ctx context.Context) ([]*model.Round, error) {
	return r.client.Rounds(ctx, r.Kind, r.ID)
}

func (r CompetitionRef) UpdateRound(ctx context.Context, round *model.Round) error {
	return r.client.UpdateRound(ctx, r.Kind, r.ID, round)
}

func (r CompetitionRef) Match(ctx context.Context, matchID int64) (*model.Match, error) {
	return r.client.Match(ctx, r.Kind, r.ID, matchID)
}

func (r CompetitionRef) UpdateMatch(ctx context.Context, match *model.Match) error {
	return r.client.UpdateMatch(ctx, r.Kind, r.ID, match)
}

// AsLeague narrows the handle when it addresses a league.
func (r CompetitionRef) AsLeague() (LeagueRef, bool) {
	if r.Kind != model.KindLeague {
		return LeagueRef{}, false
	}
	return LeagueRef{r}, true
}

func (r LeagueRef) Table(ctx context.Context) ([]*model.LeagueTablePosition, error) {
	return r.client.LeagueTable(ctx, r.ID)
}

func (r LeagueRef) SetChampionshipRoundResults(ctx context.Context, roundNumber int, results []*model.ChampionshipResult) error {
	return r.client.SetChampionshipRoundResults(ctx, r.ID, roundNumber, results)
}
