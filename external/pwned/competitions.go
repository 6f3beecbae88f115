package pwned

import (
	"context"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/pwned-go/external/pwned/model"
)

func (c *Client) CreateTournament(ctx context.Context, tournament *model.Tournament) (*model.Tournament, error) {
	raw, err := c.call(ctx, http.MethodPost, model.KindTournament.Resource(), tournament)
	if err != nil {
		return nil, crerr.Wrap(err, "create tournament")
	}
	return decodeOne[model.Tournament](raw)
}

func (c *Client) CreateLeague(ctx context.Context, league *model.League) (*model.League, error) {
	raw, err := c.call(ctx, http.MethodPost, model.KindLeague.Resource(), league)
	if err != nil {
		return nil, crerr.Wrap(err, "create league")
	}
	return decodeOne[model.League](raw)
}

// Create posts competition to the collection of its kind and returns the
// record the service created, of the same concrete type.
func (c *Client) Create(ctx context.Context, competition model.AnyCompetition) (model.AnyCompetition, error) {
	switch v := competition.(type) {
	case *model.Tournament:
		return c.CreateTournament(ctx, v)
	case *model.League:
		return c.CreateLeague(ctx, v)
	case nil:
		return nil, crerr.New("create: nil competition")
	default:
		return nil, &UnknownTypeError{Kind: string(competition.Kind())}
	}
}

// Get fetches a competition by kind name. Only "tournament" and "league"
// are known; anything else fails with *UnknownTypeError.
func (c *Client) Get(ctx context.Context, kindName string, id int64) (model.AnyCompetition, error) {
	kind, ok := model.ParseKind(kindName)
	if !ok {
		return nil, &UnknownTypeError{Kind: kindName}
	}

	switch kind {
	case model.KindTournament:
		return c.GetTournament(ctx, id)
	case model.KindLeague:
		return c.GetLeague(ctx, id)
	}
	return nil, &UnknownTypeError{Kind: kindName}
}

func (c *Client) GetTournament(ctx context.Context, id int64) (*model.Tournament, error) {
	path, _ := competitionPath(model.KindTournament, id)
	raw, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "get tournament %d", id)
	}
	return decodeOne[model.Tournament](raw)
}

func (c *Client) GetLeague(ctx context.Context, id int64) (*model.League, error) {
	raw, err := c.call(ctx, http.MethodGet, leaguePath(id), nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "get league %d", id)
	}
	return decodeOne[model.League](raw)
}

// Update sends every set field of competition to {kind}s/{id}.
func (c *Client) Update(ctx context.Context, kind model.Kind, id int64, competition model.AnyCompetition) error {
	path, err := competitionPath(kind, id)
	if err != nil {
		return err
	}
	if _, err := c.call(ctx, http.MethodPost, path, competition); err != nil {
		return crerr.Wrapf(err, "update %s %d", kind, id)
	}
	return nil
}

// Start moves the competition to the live status.
func (c *Client) Start(ctx context.Context, kind model.Kind, id int64) error {
	path, err := competitionPath(kind, id)
	if err != nil {
		return err
	}
	body := map[string]string{"status": model.StatusLive}
	if _, err := c.call(ctx, http.MethodPost, path, body); err != nil {
		return crerr.Wrapf(err, "start %s %d", kind, id)
	}
	return nil
}
