package pwned

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/pwned-go/external/pwned/model"
	"github.com/riskibarqy/pwned-go/external/pwned/wire"
)

const (
	testPublicKey  = "abc"
	testPrivateKey = "123"
)

type recordedRequest struct {
	Method    string
	Path      string
	PublicKey string
	Signature string
	UserAgent string
	Body      string
}

type fakeService struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newFakeService(t *testing.T, status int, body string) (*fakeService, *httptest.Server) {
	t.Helper()

	svc := &fakeService{status: status, body: body}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		svc.mu.Lock()
		svc.requests = append(svc.requests, recordedRequest{
			Method:    r.Method,
			Path:      strings.TrimPrefix(r.URL.Path, "/api/"),
			PublicKey: r.URL.Query().Get("publicKey"),
			Signature: r.URL.Query().Get("signature"),
			UserAgent: r.Header.Get("User-Agent"),
			Body:      string(raw),
		})
		svc.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(svc.status)
		_, _ = w.Write([]byte(svc.body))
	}))
	t.Cleanup(server.Close)
	return svc, server
}

func (s *fakeService) last(t *testing.T) recordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatalf("expected a request to reach the service")
	}
	return s.requests[len(s.requests)-1]
}

func (s *fakeService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(ClientConfig{
		BaseURL:    baseURL + "/api",
		PublicKey:  testPublicKey,
		PrivateKey: testPrivateKey,
		Timeout:    5 * time.Second,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func assertSigned(t *testing.T, req recordedRequest) {
	t.Helper()
	if req.PublicKey != testPublicKey {
		t.Fatalf("expected publicKey %q, got %q", testPublicKey, req.PublicKey)
	}
	want := Sign(testPublicKey, testPrivateKey, req.Method, req.Path, req.Body)
	if req.Signature != want {
		t.Fatalf("signature mismatch for %s %s body=%q: want %s, got %s", req.Method, req.Path, req.Body, want, req.Signature)
	}
}

func TestNewClient_ValidatesConfig(t *testing.T) {
	t.Parallel()

	cases := []ClientConfig{
		{PublicKey: "pk", PrivateKey: "sk"},
		{BaseURL: "not a url", PublicKey: "pk", PrivateKey: "sk"},
		{BaseURL: "http://pwned.test", PrivateKey: "sk"},
		{BaseURL: "http://pwned.test", PublicKey: "pk"},
	}
	for _, cfg := range cases {
		if _, err := NewClient(cfg); err == nil {
			t.Fatalf("expected config %+v to be rejected", cfg)
		}
	}

	client, err := NewClient(ClientConfig{BaseURL: "http://pwned.test/api", PublicKey: "pk", PrivateKey: "sk"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.BaseURL() != "http://pwned.test/api/" {
		t.Fatalf("expected trailing slash added, got %q", client.BaseURL())
	}
}

func TestCreateTournament_SingleElim8(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":{
		"id":"17","name":"Friday Cup","gameId":"2","template":"singleelim8",
		"teamCount":"8","roundCount":3,"roundCurrent":null,
		"game":{"id":2,"name":"Quake Live","teamBased":"0"}
	}}`)
	client := newTestClient(t, server.URL)

	created, err := client.CreateTournament(context.Background(), &model.Tournament{
		Competition: model.Competition{
			Name:          wire.Some("Friday Cup"),
			GameID:        wire.Some[int64](2),
			PlayersOnTeam: wire.Some(1),
		},
		Template: wire.Some("singleelim8"),
	})
	if err != nil {
		t.Fatalf("create tournament: %v", err)
	}

	if got := created.TeamCount.Get(); got != 8 {
		t.Fatalf("expected team count 8, got %d", got)
	}
	if got := created.RoundCount.Get(); got != 3 {
		t.Fatalf("expected round count 3, got %d", got)
	}
	if created.ID.Get() != 17 {
		t.Fatalf("expected id 17, got %d", created.ID.Get())
	}
	if !created.RoundCurrent.IsNull() {
		t.Fatalf("expected roundCurrent null")
	}
	if created.Description.IsSet() {
		t.Fatalf("expected description unset")
	}
	if created.Game == nil || created.Game.Name.Get() != "Quake Live" {
		t.Fatalf("expected embedded game, got %+v", created.Game)
	}

	req := svc.last(t)
	if req.Method != http.MethodPost || req.Path != "tournaments" {
		t.Fatalf("unexpected request %s %s", req.Method, req.Path)
	}
	if req.Body != `{"name":"Friday Cup","gameId":2,"playersOnTeam":1,"template":"singleelim8"}` {
		t.Fatalf("unexpected body %s", req.Body)
	}
	if !strings.HasPrefix(req.UserAgent, "go-pwned-api/"+Version+"/") {
		t.Fatalf("unexpected user agent %q", req.UserAgent)
	}
	assertSigned(t, req)
}

func TestCall_Envelope(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		wantRaw string
		wantAPI string
		invalid bool
	}{
		{name: "result", status: 200, body: `{"result":{"id":5}}`, wantRaw: `{"id":5}`},
		{name: "bare payload", status: 200, body: `{"id":5}`, wantRaw: `{"id":5}`},
		{name: "bare list", status: 200, body: `[{"id":5}]`, wantRaw: `[{"id":5}]`},
		{name: "falsy error ignored", status: 200, body: `{"error":false,"result":{"id":5}}`, wantRaw: `{"id":5}`},
		{name: "error reason", status: 200, body: `{"error":{"reason":"bad"}}`, wantAPI: "bad"},
		{name: "error string", status: 200, body: `{"error":"denied"}`, wantAPI: "denied"},
		{name: "http 4xx with json error", status: 403, body: `{"error":{"reason":"Invalid signature"}}`, wantAPI: "Invalid signature"},
		{name: "invalid json", status: 500, body: `<html>oops</html>`, invalid: true},
		{name: "empty body", status: 502, body: ``, invalid: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, server := newFakeService(t, tc.status, tc.body)
			client := newTestClient(t, server.URL)

			raw, err := client.call(context.Background(), http.MethodGet, "games", nil)
			switch {
			case tc.wantAPI != "":
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected APIError, got %v", err)
				}
				if apiErr.Reason != tc.wantAPI || apiErr.StatusCode != tc.status {
					t.Fatalf("unexpected api error %+v", apiErr)
				}
				if string(apiErr.Raw) != tc.body {
					t.Fatalf("expected raw body attached, got %q", apiErr.Raw)
				}
			case tc.invalid:
				var invalidErr *InvalidResponseError
				if !errors.As(err, &invalidErr) {
					t.Fatalf("expected InvalidResponseError, got %v", err)
				}
				if string(invalidErr.Raw) != tc.body {
					t.Fatalf("expected raw body attached, got %q", invalidErr.Raw)
				}
			default:
				if err != nil {
					t.Fatalf("call: %v", err)
				}
				if string(raw) != tc.wantRaw {
					t.Fatalf("expected payload %s, got %s", tc.wantRaw, raw)
				}
			}
		})
	}
}

func TestRemoveSignup_SignsDeleteBody(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":true}`)
	client := newTestClient(t, server.URL)

	signup := &model.Signup{
		ID:   wire.Some[int64](44),
		Name: wire.Some("Team Rocket"),
	}
	if err := client.Tournament(9).RemoveSignup(context.Background(), signup); err != nil {
		t.Fatalf("remove signup: %v", err)
	}

	req := svc.last(t)
	if req.Method != http.MethodDelete || req.Path != "tournaments/9/signups/44" {
		t.Fatalf("unexpected request %s %s", req.Method, req.Path)
	}
	if req.Body != `{"id":44,"name":"Team Rocket"}` {
		t.Fatalf("unexpected delete body %q", req.Body)
	}

	want := Sign(testPublicKey, testPrivateKey, "DELETE", "tournaments/9/signups/44", `{"id":44,"name":"Team Rocket"}`)
	if req.Signature != want {
		t.Fatalf("expected signature %s, got %s", want, req.Signature)
	}
	if req.Signature == Sign(testPublicKey, testPrivateKey, "DELETE", "tournaments/9/signups/44", "") {
		t.Fatalf("signature must cover the body")
	}
}

func TestRemoveSignup_RequiresID(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":true}`)
	client := newTestClient(t, server.URL)

	err := client.RemoveSignup(context.Background(), model.KindLeague, 1, &model.Signup{Name: wire.Some("x")})
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if svc.count() != 0 {
		t.Fatalf("expected no request")
	}
}

func TestGet_UnknownKind(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":{}}`)
	client := newTestClient(t, server.URL)

	_, err := client.Get(context.Background(), "cup", 1)
	var unknown *UnknownTypeError
	if !errors.As(err, &unknown) || unknown.Kind != "cup" {
		t.Fatalf("expected UnknownTypeError for cup, got %v", err)
	}
	if svc.count() != 0 {
		t.Fatalf("expected no request for unknown kind")
	}

	err = client.Start(context.Background(), model.Kind("cup"), 1)
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTypeError from start, got %v", err)
	}
}

func TestGet_DispatchesByKind(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":{"id":3,"leagueType":"championship","scoringModel":{"id":2,"type":"championship","positionPoints":[10,8,6]}}}`)
	client := newTestClient(t, server.URL)

	got, err := client.Get(context.Background(), "League", 3)
	if err != nil {
		t.Fatalf("get league: %v", err)
	}
	league, ok := got.(*model.League)
	if !ok {
		t.Fatalf("expected *model.League, got %T", got)
	}
	if league.ScoringModel == nil || len(league.ScoringModel.PointsPosition.Get()) != 3 {
		t.Fatalf("expected scoring model decoded, got %+v", league.ScoringModel)
	}
	if req := svc.last(t); req.Method != http.MethodGet || req.Path != "leagues/3" || req.Body != "" {
		t.Fatalf("unexpected request %+v", req)
	}
	assertSigned(t, svc.last(t))
}

func TestStart_PostsLiveStatus(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":true}`)
	client := newTestClient(t, server.URL)

	if err := client.League(4).Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	req := svc.last(t)
	if req.Method != http.MethodPost || req.Path != "leagues/4" || req.Body != `{"status":"live"}` {
		t.Fatalf("unexpected request %+v", req)
	}
	assertSigned(t, req)
}

func TestSignups_NullIsEmptyList(t *testing.T) {
	t.Parallel()

	_, server := newFakeService(t, http.StatusOK, `{"result":null}`)
	client := newTestClient(t, server.URL)

	signups, err := client.Tournament(1).Signups(context.Background())
	if err != nil {
		t.Fatalf("signups: %v", err)
	}
	if signups == nil || len(signups) != 0 {
		t.Fatalf("expected empty list, got %v", signups)
	}

	_, err = client.GetTournament(context.Background(), 1)
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestRounds_KeepsNestedOrder(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":[
		{"roundNumber":1,"stages":[{"mapName":"dm6","matches":[{"id":1},{"id":2}]},{"mapName":"dm17","matches":[{"id":3}]}],"groups":[]},
		{"roundNumber":"2","stages":[]}
	]}`)
	client := newTestClient(t, server.URL)

	rounds, err := client.Tournament(5).Rounds(context.Background())
	if err != nil {
		t.Fatalf("rounds: %v", err)
	}
	if len(rounds) != 2 || rounds[1].RoundNumber.Get() != 2 {
		t.Fatalf("unexpected rounds %+v", rounds)
	}

	matches := rounds[0].Matches()
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i, match := range matches {
		if match.ID.Get() != int64(i+1) {
			t.Fatalf("expected match %d at position %d, got %d", i+1, i, match.ID.Get())
		}
	}
	if req := svc.last(t); req.Path != "tournaments/5/rounds" {
		t.Fatalf("unexpected path %s", req.Path)
	}
}

func TestUpdateMatch_PostsToMatchID(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":true}`)
	client := newTestClient(t, server.URL)

	match := &model.Match{
		ID:            wire.Some[int64](31),
		Score:         wire.Some(3),
		ScoreOpponent: wire.Some(1),
	}
	if err := client.Tournament(5).UpdateMatch(context.Background(), match); err != nil {
		t.Fatalf("update match: %v", err)
	}
	req := svc.last(t)
	if req.Path != "tournaments/5/matches/31" || req.Body != `{"id":31,"score":3,"scoreOpponent":1}` {
		t.Fatalf("unexpected request %+v", req)
	}
	assertSigned(t, req)

	if err := client.UpdateRound(context.Background(), model.KindTournament, 5, &model.Round{Name: wire.Some("Final")}); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID for round without number, got %v", err)
	}
}

func TestSetChampionshipRoundResults_AddsSignupID(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":true}`)
	client := newTestClient(t, server.URL)

	results := []*model.ChampionshipResult{
		{Signup: wire.Some(&model.Signup{ID: wire.Some[int64](7)}), Position: wire.Some(1), Score: wire.Some(1000)},
		{Signup: wire.Some(&model.Signup{ID: wire.Some[int64](8)}), Position: wire.Some(2), Score: wire.Some(950)},
	}
	if err := client.League(2).SetChampionshipRoundResults(context.Background(), 1, results); err != nil {
		t.Fatalf("set results: %v", err)
	}

	req := svc.last(t)
	want := `[{"signup":{"id":7},"position":1,"score":1000,"signupId":7},{"signup":{"id":8},"position":2,"score":950,"signupId":8}]`
	if req.Path != "leagues/2/rounds/1/results" || req.Body != want {
		t.Fatalf("unexpected request %s body %s", req.Path, req.Body)
	}
	assertSigned(t, req)

	err := client.SetChampionshipRoundResults(context.Background(), 2, 1, []*model.ChampionshipResult{{Position: wire.Some(1)}})
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestLeagueScoringModels_Paths(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":[{"id":1,"type":"league","winPoints":"3"}]}`)
	client := newTestClient(t, server.URL)
	ctx := context.Background()

	models, err := client.LeagueScoringModels(ctx, "")
	if err != nil {
		t.Fatalf("scoring models: %v", err)
	}
	if len(models) != 1 || models[0].PointsWin.Get() != 3 {
		t.Fatalf("unexpected models %+v", models)
	}
	if req := svc.last(t); req.Path != "leagues/scoringmodels" {
		t.Fatalf("unexpected path %s", req.Path)
	}

	if _, err := client.LeagueScoringModels(ctx, "championship"); err != nil {
		t.Fatalf("scoring models by type: %v", err)
	}
	if req := svc.last(t); req.Path != "leagues/scoringmodels/championship" {
		t.Fatalf("unexpected path %s", req.Path)
	}

	if err := client.DeleteLeagueScoringModel(ctx, 12); err != nil {
		t.Fatalf("delete scoring model: %v", err)
	}
	if req := svc.last(t); req.Method != http.MethodDelete || req.Path != "leagues/scoringmodels/12" || req.Body != "" {
		t.Fatalf("unexpected request %+v", req)
	}

	err = client.UpdateLeagueScoringModel(ctx, &model.LeagueScoringModel{Name: wire.Some("x")})
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestCall_TransportErrorRedactsSignature(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := newTestClient(t, baseURL)
	_, err := client.Games(context.Background())

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if transportErr.Method != http.MethodGet {
		t.Fatalf("unexpected method %s", transportErr.Method)
	}
	if !strings.Contains(transportErr.URL, "signature=REDACTED") {
		t.Fatalf("expected redacted signature in %s", transportErr.URL)
	}
}

func TestCall_CircuitBreakerFailsFast(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := NewClient(ClientConfig{
		BaseURL:    baseURL,
		PublicKey:  testPublicKey,
		PrivateKey: testPrivateKey,
		CircuitBreaker: CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
		},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		var transportErr *TransportError
		if _, err := client.Countries(ctx); !errors.As(err, &transportErr) {
			t.Fatalf("attempt %d: expected TransportError, got %v", i, err)
		}
	}
	if _, err := client.Countries(ctx); !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable once open, got %v", err)
	}
}

func TestCall_APIErrorDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	_, server := newFakeService(t, http.StatusBadRequest, `{"error":{"reason":"nope"}}`)
	client, err := NewClient(ClientConfig{
		BaseURL:        server.URL,
		PublicKey:      testPublicKey,
		PrivateKey:     testPrivateKey,
		CircuitBreaker: CircuitBreakerConfig{Enabled: true, FailureThreshold: 1},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := client.Games(context.Background()); !IsAPIError(err) {
			t.Fatalf("attempt %d: expected APIError, got %v", i, err)
		}
	}
}

func TestFastTransport_SendsDeleteBody(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":true}`)
	client, err := NewClient(ClientConfig{
		BaseURL:    server.URL + "/api/",
		PublicKey:  testPublicKey,
		PrivateKey: testPrivateKey,
		Transport:  NewFastTransport(nil, 5*time.Second),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	signup := &model.Signup{ID: wire.Some[int64](3)}
	if err := client.RemoveSignup(context.Background(), model.KindLeague, 8, signup); err != nil {
		t.Fatalf("remove signup: %v", err)
	}

	req := svc.last(t)
	if req.Method != http.MethodDelete || req.Path != "leagues/8/signups/3" || req.Body != `{"id":3}` {
		t.Fatalf("unexpected request %+v", req)
	}
	assertSigned(t, req)
}

func TestAddSignups_PostsListBody(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":true}`)
	client := newTestClient(t, server.URL)

	err := client.Tournament(12).AddSignups(context.Background(),
		&model.Signup{Name: wire.Some("Alpha"), Contact: wire.Some("alpha@example.test")},
		&model.Signup{Name: wire.Some("Bravo"), Seeding: wire.Some(2)},
	)
	if err != nil {
		t.Fatalf("add signups: %v", err)
	}

	req := svc.last(t)
	want := `[{"name":"Alpha","contact":"alpha@example.test"},{"name":"Bravo","seeding":2}]`
	if req.Method != http.MethodPost || req.Path != "tournaments/12/signups" || req.Body != want {
		t.Fatalf("unexpected request %+v", req)
	}
	assertSigned(t, req)
}

func TestCreateLeagueScoringModel_ReturnsCreated(t *testing.T) {
	t.Parallel()

	svc, server := newFakeService(t, http.StatusOK, `{"result":{"id":"9","type":"league","name":"Three points","winPoints":3,"drawPoints":1,"lossPoints":0,"active":"1"}}`)
	client := newTestClient(t, server.URL)
	ctx := context.Background()

	created, err := client.CreateLeagueScoringModel(ctx, &model.LeagueScoringModel{
		Type:       wire.Some(model.TypeLeague),
		Name:       wire.Some("Three points"),
		PointsWin:  wire.Some(3),
		PointsDraw: wire.Some(1),
		PointsLoss: wire.Some(0),
	})
	if err != nil {
		t.Fatalf("create scoring model: %v", err)
	}
	if created.ID.Get() != 9 || !created.Active.Get() || created.PointsLoss.Get() != 0 || !created.PointsLoss.IsSet() {
		t.Fatalf("unexpected scoring model %+v", created)
	}

	req := svc.last(t)
	want := `{"type":"league","name":"Three points","winPoints":3,"drawPoints":1,"lossPoints":0}`
	if req.Path != "leagues/scoringmodels" || req.Body != want {
		t.Fatalf("unexpected request %s body %s", req.Path, req.Body)
	}
	assertSigned(t, req)

	if _, err := client.LeagueScoringModel(ctx, 9); err != nil {
		t.Fatalf("get scoring model: %v", err)
	}
	if req := svc.last(t); req.Method != http.MethodGet || req.Path != "leagues/scoringmodels/9" {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestRef_RequiresIDAndNarrowsByKind(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://127.0.0.1:1")

	if _, err := client.Ref(&model.League{}); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}

	ref, err := client.Ref(&model.Tournament{Competition: model.Competition{ID: wire.Some(int64(4))}})
	if err != nil {
		t.Fatalf("ref: %v", err)
	}
	if ref.Kind != model.KindTournament || ref.ID != 4 {
		t.Fatalf("unexpected ref %+v", ref)
	}
	if _, ok := ref.AsLeague(); ok {
		t.Fatalf("tournament ref must not narrow to a league")
	}
	if league, ok := client.League(7).AsLeague(); !ok || league.ID != 7 {
		t.Fatalf("expected league ref 7, got %+v %v", league, ok)
	}
}
