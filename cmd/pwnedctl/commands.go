package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/pwned-go/external/pwned"
	"github.com/riskibarqy/pwned-go/external/pwned/model"
	"github.com/riskibarqy/pwned-go/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const usage = `usage: pwnedctl <command> [arguments]

commands:
  games                              list games
  countries                          list countries
  templates                          list tournament templates
  catalog                            games, countries and templates in one document
  get [-workers n] <kind> <id>...    fetch competitions (kind: tournament|league)
  signups <kind> <id>                list signups
  rounds <kind> <id>                 list rounds
  round <kind> <id> <n>              fetch one round
  match <kind> <id> <matchId>        fetch one match
  table <leagueId>                   league standings
  scoring-models [type]              list league scoring models
  scoring-model <id>                 fetch one scoring model
  start <kind> <id>                  set the competition live
  remove-signup <kind> <id> <signupId>`

var errUsage = crerr.New("invalid arguments")

type commandLine struct {
	client *pwned.Client
	logger *logging.Logger
	out    io.Writer
}

func (c *commandLine) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(c.out, usage)
		return errUsage
	}

	name, rest := args[0], args[1:]
	switch name {
	case "games":
		return c.print(c.client.Games(ctx))
	case "countries":
		return c.print(c.client.Countries(ctx))
	case "templates":
		return c.print(c.client.TournamentTemplates(ctx))
	case "catalog":
		return c.catalog(ctx)
	case "get":
		return c.get(ctx, rest)
	case "signups":
		ref, err := c.ref(rest, 2)
		if err != nil {
			return err
		}
		return c.print(ref.Signups(ctx))
	case "rounds":
		ref, err := c.ref(rest, 2)
		if err != nil {
			return err
		}
		return c.print(ref.Rounds(ctx))
	case "round":
		ref, err := c.ref(rest, 3)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(rest[2])
		if err != nil {
			return crerr.Wrapf(errUsage, "round number %q", rest[2])
		}
		return c.print(ref.Round(ctx, n))
	case "match":
		ref, err := c.ref(rest, 3)
		if err != nil {
			return err
		}
		matchID, err := parseID(rest[2])
		if err != nil {
			return err
		}
		return c.print(ref.Match(ctx, matchID))
	case "table":
		if len(rest) != 1 {
			return crerr.Wrap(errUsage, "table <leagueId>")
		}
		leagueID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		return c.print(c.client.League(leagueID).Table(ctx))
	case "scoring-models":
		modelType := ""
		if len(rest) > 0 {
			modelType = rest[0]
		}
		return c.print(c.client.LeagueScoringModels(ctx, modelType))
	case "scoring-model":
		if len(rest) != 1 {
			return crerr.Wrap(errUsage, "scoring-model <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		return c.print(c.client.LeagueScoringModel(ctx, id))
	case "start":
		ref, err := c.ref(rest, 2)
		if err != nil {
			return err
		}
		if err := ref.Start(ctx); err != nil {
			return err
		}
		c.logger.InfoContext(ctx, "competition started", "kind", ref.Kind, "id", ref.ID)
		return nil
	case "remove-signup":
		return c.removeSignup(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprintln(c.out, usage)
		return nil
	default:
		fmt.Fprintln(c.out, usage)
		return crerr.Wrapf(errUsage, "unknown command %q", name)
	}
}

type catalogDocument struct {
	Games     []*model.Game               `json:"games"`
	Countries []*model.Country            `json:"countries"`
	Templates []*model.TournamentTemplate `json:"templates"`
}

// catalog issues its three independent reads concurrently and fails on the
// first error.
func (c *commandLine) catalog(ctx context.Context) error {
	var doc catalogDocument

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		games, err := c.client.Games(ctx)
		doc.Games = games
		return err
	})
	p.Go(func(ctx context.Context) error {
		countries, err := c.client.Countries(ctx)
		doc.Countries = countries
		return err
	})
	p.Go(func(ctx context.Context) error {
		templates, err := c.client.TournamentTemplates(ctx)
		doc.Templates = templates
		return err
	})
	if err := p.Wait(); err != nil {
		return err
	}
	return c.print(&doc, nil)
}

type fetchResult struct {
	ID          int64                `json:"id"`
	Competition model.AnyCompetition `json:"competition,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// get fetches several competitions of one kind on a bounded worker pool.
// A failed id is reported in its row and does not stop the others.
func (c *commandLine) get(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("get", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	workers := flags.Int("workers", 4, "concurrent requests")
	if err := flags.Parse(args); err != nil {
		return crerr.Wrap(errUsage, err.Error())
	}
	args = flags.Args()
	if len(args) < 2 || *workers < 1 {
		return crerr.Wrap(errUsage, "get [-workers n] <kind> <id>...")
	}

	kindName := args[0]
	ids := make([]int64, 0, len(args)-1)
	for _, raw := range args[1:] {
		id, err := parseID(raw)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	workerPool, err := ants.NewPool(*workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make([]fetchResult, 0, len(ids))
	)
	for _, id := range ids {
		id := id
		wg.Add(1)
		if err := workerPool.Submit(func() {
			defer wg.Done()

			row := fetchResult{ID: id}
			competition, err := c.client.Get(ctx, kindName, id)
			if err != nil {
				row.Error = err.Error()
				c.logger.WarnContext(ctx, "fetch competition failed", "kind", kindName, "id", id, "error", err)
			} else {
				row.Competition = competition
			}

			mu.Lock()
			results = append(results, row)
			mu.Unlock()
		}); err != nil {
			wg.Done()
			return fmt.Errorf("submit fetch to worker pool: %w", err)
		}
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return c.print(results, nil)
}

// removeSignup looks the signup up first so the DELETE carries its full
// wire object.
func (c *commandLine) removeSignup(ctx context.Context, args []string) error {
	ref, err := c.ref(args, 3)
	if err != nil {
		return err
	}
	signupID, err := parseID(args[2])
	if err != nil {
		return err
	}

	signups, err := ref.Signups(ctx)
	if err != nil {
		return err
	}
	for _, signup := range signups {
		if id, ok := signup.ID.Lookup(); ok && id == signupID {
			if err := ref.RemoveSignup(ctx, signup); err != nil {
				return err
			}
			c.logger.InfoContext(ctx, "signup removed", "kind", ref.Kind, "id", ref.ID, "signup_id", signupID)
			return nil
		}
	}
	return crerr.Newf("signup %d not found in %s %d", signupID, ref.Kind, ref.ID)
}

func (c *commandLine) ref(args []string, want int) (pwned.CompetitionRef, error) {
	if len(args) != want {
		return pwned.CompetitionRef{}, crerr.Wrapf(errUsage, "expected %d arguments, got %d", want, len(args))
	}
	kind, ok := model.ParseKind(args[0])
	if !ok {
		return pwned.CompetitionRef{}, &pwned.UnknownTypeError{Kind: args[0]}
	}
	id, err := parseID(args[1])
	if err != nil {
		return pwned.CompetitionRef{}, err
	}
	if kind == model.KindLeague {
		return c.client.League(id).CompetitionRef, nil
	}
	return c.client.Tournament(id), nil
}

func (c *commandLine) print(v any, err error) error {
	if err != nil {
		return err
	}
	raw, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return crerr.Wrap(err, "encode output")
	}
	_, err = fmt.Fprintln(c.out, string(raw))
	return err
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, crerr.Wrapf(errUsage, "invalid id %q", raw)
	}
	return id, nil
}
