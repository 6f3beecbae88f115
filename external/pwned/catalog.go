package pwned

import (
	"context"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/pwned-go/external/pwned/model"
)

func (c *Client) Games(ctx context.Context) ([]*model.Game, error) {
	raw, err := c.call(ctx, http.MethodGet, "games", nil)
	if err != nil {
		return nil, crerr.Wrap(err, "list games")
	}
	return decodeList[model.Game](raw)
}

func (c *Client) Countries(ctx context.Context) ([]*model.Country, error) {
	raw, err := c.call(ctx, http.MethodGet, "countries", nil)
	if err != nil {
		return nil, crerr.Wrap(err, "list countries")
	}
	return decodeList[model.Country](raw)
}

func (c *Client) TournamentTemplates(ctx context.Context) ([]*model.TournamentTemplate, error) {
	raw, err := c.call(ctx, http.MethodGet, "tournaments/templates", nil)
	if err != nil {
		return nil, crerr.Wrap(err, "list tournament templates")
	}
	return decodeList[model.TournamentTemplate](raw)
}
