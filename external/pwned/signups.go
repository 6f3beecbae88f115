package pwned

import (
	"context"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/pwned-go/external/pwned/model"
)

func (c *Client) AddSignups(ctx context.Context, kind model.Kind, competitionID int64, signups []*model.Signup) error {
	path, err := competitionPath(kind, competitionID, "signups")
	if err != nil {
		return err
	}
	if _, err := c.call(ctx, http.MethodPost, path, signups); err != nil {
		return crerr.Wrapf(err, "add %d signups to %s %d", len(signups), kind, competitionID)
	}
	return nil
}

func (c *Client) Signups(ctx context.Context, kind model.Kind, competitionID int64) ([]*model.Signup, error) {
	path, err := competitionPath(kind, competitionID, "signups")
	if err != nil {
		return nil, err
	}
	raw, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "list signups of %s %d", kind, competitionID)
	}
	return decodeList[model.Signup](raw)
}

// RemoveSignup deletes signup from the competition. The DELETE carries the
// signup's wire object as its body, and the signature covers it.
func (c *Client) RemoveSignup(ctx context.Context, kind model.Kind, competitionID int64, signup *model.Signup) error {
	if signup == nil {
		return crerr.Wrap(ErrMissingID, "remove signup")
	}
	signupID, ok := signup.ID.Lookup()
	if !ok {
		return crerr.Wrap(ErrMissingID, "remove signup")
	}

	path, err := competitionPath(kind, competitionID, "signups", formatID(signupID))
	if err != nil {
		return err
	}
	if _, err := c.call(ctx, http.MethodDelete, path, signup); err != nil {
		return crerr.Wrapf(err, "remove signup %d from %s %d", signupID, kind, competitionID)
	}
	return nil
}
