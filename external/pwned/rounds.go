package pwned

import (
	"context"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/pwned-go/external/pwned/model"
)

func (c *Client) Round(ctx context.Context, kind model.Kind, competitionID int64, roundNumber int) (*model.Round, error) {
	path, err := competitionPath(kind, competitionID, "rounds", itoa(roundNumber))
	if err != nil {
		return nil, err
	}
	raw, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "get round %d of %s %d", roundNumber, kind, competitionID)
	}
	return decodeOne[model.Round](raw)
}

func (c *Client) Rounds(ctx context.Context, kind model.Kind, competitionID int64) ([]*model.Round, error) {
	path, err := competitionPath(kind, competitionID, "rounds")
	if err != nil {
		return nil, err
	}
	raw, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "list rounds of %s %d", kind, competitionID)
	}
	return decodeList[model.Round](raw)
}

// UpdateRound posts round to the round addressed by its RoundNumber.
func (c *Client) UpdateRound(ctx context.Context, kind model.Kind, competitionID int64, round *model.Round) error {
	if round == nil {
		return crerr.Wrap(ErrMissingID, "update round")
	}
	roundNumber, ok := round.RoundNumber.Lookup()
	if !ok {
		return crerr.Wrap(ErrMissingID, "update round: round number not set")
	}

	path, err := competitionPath(kind, competitionID, "rounds", itoa(roundNumber))
	if err != nil {
		return err
	}
	if _, err := c.call(ctx, http.MethodPost, path, round); err != nil {
		return crerr.Wrapf(err, "update round %d of %s %d", roundNumber, kind, competitionID)
	}
	return nil
}

func (c *Client) Match(ctx context.Context, kind model.Kind, competitionID, matchID int64) (*model.Match, error) {
	path, err := competitionPath(kind, competitionID, "matches", formatID(matchID))
	if err != nil {
		return nil, err
	}
	raw, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "get match %d of %s %d", matchID, kind, competitionID)
	}
	return decodeOne[model.Match](raw)
}

// UpdateMatch posts match, typically with scores set, to the match
// addressed by its ID.
func (c *Client) UpdateMatch(ctx context.Context, kind model.Kind, competitionID int64, match *model.Match) error {
	if match == nil {
		return crerr.Wrap(ErrMissingID, "update match")
	}
	matchID, ok := match.ID.Lookup()
	if !ok {
		return crerr.Wrap(ErrMissingID, "update match")
	}

	path, err := competitionPath(kind, competitionID, "matches", formatID(matchID))
	if err != nil {
		return err
	}
	if _, err := c.call(ctx, http.MethodPost, path, match); err != nil {
		return crerr.Wrapf(err, "update match %d of %s %d", matchID, kind, competitionID)
	}
	return nil
}
