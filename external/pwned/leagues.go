package pwned

import (
	"context"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/pwned-go/external/pwned/model"
	"github.com/riskibarqy/pwned-go/external/pwned/wire"
)

// LeagueTable returns the standings as the service computed them.
func (c *Client) LeagueTable(ctx context.Context, leagueID int64) ([]*model.LeagueTablePosition, error) {
	raw, err := c.call(ctx, http.MethodGet, leaguePath(leagueID, "table"), nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "get table of league %d", leagueID)
	}
	return decodeList[model.LeagueTablePosition](raw)
}

// SetChampionshipRoundResults posts the finishing positions of one
// championship round. Every entry must carry a signup with an id; it is
// repeated as signupId next to the nested signup.
func (c *Client) SetChampionshipRoundResults(ctx context.Context, leagueID int64, roundNumber int, results []*model.ChampionshipResult) error {
	body := make([]*wire.Object, 0, len(results))
	for i, result := range results {
		obj, err := championshipResultObject(result)
		if err != nil {
			return crerr.Wrapf(err, "championship result %d", i)
		}
		body = append(body, obj)
	}

	path := leaguePath(leagueID, "rounds", itoa(roundNumber), "results")
	if _, err := c.call(ctx, http.MethodPost, path, body); err != nil {
		return crerr.Wrapf(err, "set results of round %d in league %d", roundNumber, leagueID)
	}
	return nil
}

func championshipResultObject(result *model.ChampionshipResult) (*wire.Object, error) {
	if result == nil {
		return nil, ErrMissingID
	}
	signup := result.Signup.Get()
	if signup == nil {
		return nil, ErrMissingID
	}
	signupID, ok := signup.ID.Lookup()
	if !ok {
		return nil, ErrMissingID
	}

	obj, err := wire.Encode(result)
	if err != nil {
		return nil, err
	}
	if err := obj.SetValue("signupId", signupID); err != nil {
		return nil, err
	}
	return obj, nil
}

// LeagueScoringModels lists scoring models, all of them when modelType is
// empty, otherwise only those of that type ("league" or "championship").
func (c *Client) LeagueScoringModels(ctx context.Context, modelType string) ([]*model.LeagueScoringModel, error) {
	path := scoringModelsPath
	if modelType = strings.TrimSpace(modelType); modelType != "" {
		path = scoringModelPath(modelType)
	}
	raw, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "list league scoring models")
	}
	return decodeList[model.LeagueScoringModel](raw)
}

func (c *Client) LeagueScoringModel(ctx context.Context, id int64) (*model.LeagueScoringModel, error) {
	raw, err := c.call(ctx, http.MethodGet, scoringModelPath(formatID(id)), nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "get league scoring model %d", id)
	}
	return decodeOne[model.LeagueScoringModel](raw)
}

func (c *Client) CreateLeagueScoringModel(ctx context.Context, scoringModel *model.LeagueScoringModel) (*model.LeagueScoringModel, error) {
	raw, err := c.call(ctx, http.MethodPost, scoringModelsPath, scoringModel)
	if err != nil {
		return nil, crerr.Wrap(err, "create league scoring model")
	}
	return decodeOne[model.LeagueScoringModel](raw)
}

func (c *Client) UpdateLeagueScoringModel(ctx context.Context, scoringModel *model.LeagueScoringModel) error {
	if scoringModel == nil {
		return crerr.Wrap(ErrMissingID, "update league scoring model")
	}
	id, ok := scoringModel.ID.Lookup()
	if !ok {
		return crerr.Wrap(ErrMissingID, "update league scoring model")
	}
	if _, err := c.call(ctx, http.MethodPost, scoringModelPath(formatID(id)), scoringModel); err != nil {
		return crerr.Wrapf(err, "update league scoring model %d", id)
	}
	return nil
}

// DeleteLeagueScoringModel deactivates the model. The service keeps it
// readable with active set to false.
func (c *Client) DeleteLeagueScoringModel(ctx context.Context, id int64) error {
	if _, err := c.call(ctx, http.MethodDelete, scoringModelPath(formatID(id)), nil); err != nil {
		return crerr.Wrapf(err, "delete league scoring model %d", id)
	}
	return nil
}
