package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"SportsHub/internal/adapter"
	"SportsHub/internal/config"
	"SportsHub/internal/interfaces"
	"SportsHub/internal/model"
	"SportsHub/internal/repository"
	"SportsHub/internal/service"
	"SportsHub/internal/sportsapi"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeague struct {
	key  string
	name string
	fail bool
}

func (f *fakeLeague) GetName() string { return f.name }
func (f *fakeLeague) GetKey() string  { return f.key }

func (f *fakeLeague) FetchGames(ctx context.Context, season string) ([]model.GameSummary, error) {
	if f.fail {
		return nil, &sportsapi.Error{Kind: sportsapi.KindStatus, StatusCode: 503, Err: errors.New("unavailable")}
	}
	home, away := 101, 99
	return []model.GameSummary{{League: f.name, GameID: 1, HomeTeam: "Home Club", AwayTeam: "Away Club", HomeScore: &home, AwayScore: &away}}, nil
}

func (f *fakeLeague) FetchStandings(ctx context.Context, season string) ([]model.StandingSummary, error) {
	if f.fail {
		return nil, &sportsapi.Error{Kind: sportsapi.KindDecode, Err: errors.New("bad json")}
	}
	return []model.StandingSummary{{League: f.name, Rank: 1, Team: "Top Club", Won: 10}}, nil
}

func init() {
	adapter.Register("testleague", func(key string, cfg *config.LeagueConfig, client *sportsapi.Client, logger *logrus.Logger) interfaces.LeagueAdapter {
		return &fakeLeague{key: key, name: cfg.Name}
	})
	adapter.Register("downleague", func(key string, cfg *config.LeagueConfig, client *sportsapi.Client, logger *logrus.Logger) interfaces.LeagueAdapter {
		return &fakeLeague{key: key, name: cfg.Name, fail: true}
	})
}

type testEnv struct {
	router       *gin.Engine
	productsPath string
	matchesPath  string
	products     *service.ProductService
	matches      *service.MatchService
}

func writeJSON(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	dir := t.TempDir()
	productsPath := writeJSON(t, dir, "products.json", []model.ProductModel{
		{ID: "sport-basketball", Title: "Basketball", ProductType: model.ProductTypeSport},
		{ID: "team-celtics", Title: "Boston Celtics", ProductType: model.ProductTypeTeam, Sport: "NBA", Trophies: 18, FoundingYear: 1946, Ratings: []int{5}},
		{ID: "team-lakers", Title: "Los Angeles Lakers", ProductType: model.ProductTypeTeam, Sport: "NBA", Trophies: 17, FoundingYear: 1947},
		{ID: "team-arsenal", Title: "Arsenal", ProductType: model.ProductTypeTeam, Sport: "Soccer", Trophies: 13},
	})
	matchesPath := writeJSON(t, dir, "matches.json", []model.MatchModel{
		{ID: "m-1", Match: "Celtics vs Lakers", Location: "TD Garden", Team1: "Boston Celtics", Team2: "Los Angeles Lakers", Team1Score: 114, Team2Score: 105},
	})

	products := service.NewProductService(repository.NewJSONFile[model.ProductModel](productsPath, logger), logger)
	matches := service.NewMatchService(repository.NewJSONFile[model.MatchModel](matchesPath, logger), logger)
	names := service.NewTeamNameServiceFrom(model.TeamNames{Sports: map[string][]string{
		"NBA":    {"Boston Celtics", "Los Angeles Lakers", "Chicago Bulls"},
		"Soccer": {"Arsenal"},
	}}, logger)

	cfg := &config.Config{
		Server: config.ServerConfig{CORSOrigins: []string{"https://fan.example.com"}},
		Leagues: map[string]config.LeagueConfig{
			"testleague": {Name: "Test League"},
			"downleague": {Name: "Down League"},
		},
	}
	registry := adapter.NewLeagueRegistry(cfg, nil, logger)

	r := gin.New()
	SetupRouter(r, &Dependencies{
		Config:     cfg,
		Products:   products,
		Matches:    matches,
		TeamNames:  names,
		Comparison: service.NewComparisonService(products, matches, logger),
		Leagues:    service.NewLeagueService(registry, logger),
		Sync:       service.NewSyncService(registry, logger),
		Logger:     logger,
	})

	return &testEnv{
		router:       r,
		productsPath: productsPath,
		matchesPath:  matchesPath,
		products:     products,
		matches:      matches,
	}
}

func (e *testEnv) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	return e.do(http.MethodPost, target, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func TestPages(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "home", target: "/", wantStatus: http.StatusOK, wantBody: "Boston Celtics"},
		{name: "health", target: "/health", wantStatus: http.StatusOK, wantBody: `"ok"`},
		{name: "all products", target: "/products", wantStatus: http.StatusOK, wantBody: "Arsenal"},
		{name: "filtered products", target: "/products?productType=Sport", wantStatus: http.StatusOK, wantBody: "Basketball"},
		{name: "unknown filter", target: "/products?sport=Curling", wantStatus: http.StatusBadRequest, wantBody: "unrecognized filter"},
		{name: "product detail", target: "/products/team-celtics", wantStatus: http.StatusOK, wantBody: "Celtics vs Lakers"},
		{name: "missing product", target: "/products/nope", wantStatus: http.StatusNotFound, wantBody: "product not found"},
		{name: "new product form", target: "/products/new", wantStatus: http.StatusOK, wantBody: `name="title"`},
		{name: "edit product form", target: "/products/team-lakers/edit", wantStatus: http.StatusOK, wantBody: "Los Angeles Lakers"},
		{name: "matches", target: "/matches", wantStatus: http.StatusOK, wantBody: "TD Garden"},
		{name: "edit match", target: "/matches/m-1/edit", wantStatus: http.StatusOK, wantBody: "Celtics vs Lakers"},
		{name: "missing match", target: "/matches/nope/edit", wantStatus: http.StatusNotFound},
		{name: "league games", target: "/leagues/testleague/games", wantStatus: http.StatusOK, wantBody: "Home Club"},
		{name: "league standings", target: "/leagues/TestLeague/standings", wantStatus: http.StatusOK, wantBody: "Top Club"},
		{name: "unknown league", target: "/leagues/curling/games", wantStatus: http.StatusNotFound},
		{name: "upstream failure", target: "/leagues/downleague/standings", wantStatus: http.StatusBadGateway},
		{name: "compare form", target: "/compare", wantStatus: http.StatusOK, wantBody: "Compare teams"},
		{name: "compare teams", target: "/compare?team1=team-celtics&team2=team-lakers", wantStatus: http.StatusOK, wantBody: "Older club: Boston Celtics"},
		{name: "compare non-team", target: "/compare?team1=team-celtics&team2=sport-basketball", wantStatus: http.StatusBadRequest},
		{name: "compare missing", target: "/compare?team1=team-celtics&team2=nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodGet, tt.target, nil, "")
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestCreateProduct(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
	}{
		{
			name:       "valid team",
			form:       url.Values{"title": {"Chicago Bulls"}, "productType": {"Team"}, "sport": {"NBA"}, "trophies": {"6"}},
			wantStatus: http.StatusSeeOther,
		},
		{
			name:       "numeric product type",
			form:       url.Values{"title": {"Hockey"}, "productType": {"1"}},
			wantStatus: http.StatusSeeOther,
		},
		{
			name:       "unknown team name",
			form:       url.Values{"title": {"Springfield Atoms"}, "productType": {"Team"}, "sport": {"NBA"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate team",
			form:       url.Values{"title": {"boston celtics"}, "productType": {"Team"}, "sport": {"NBA"}},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "title too long",
			form:       url.Values{"title": {strings.Repeat("x", 34)}, "productType": {"Sport"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "trophies out of range",
			form:       url.Values{"title": {"Chicago Bulls"}, "productType": {"Team"}, "sport": {"NBA"}, "trophies": {"101"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing type",
			form:       url.Values{"title": {"Tennis"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			w := env.postForm("/products", tt.form)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			all, err := env.products.GetAllData()
			require.NoError(t, err)
			if tt.wantStatus == http.StatusSeeOther {
				assert.Len(t, all, 5)
				assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/products/"))
			} else {
				assert.Len(t, all, 4)
			}
		})
	}
}

func TestCreateDefaultThenEdit(t *testing.T) {
	env := newTestEnv(t)

	w := env.postForm("/products/default", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	require.True(t, strings.HasSuffix(location, "/edit"))

	w = env.do(http.MethodGet, location, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Enter Title")

	id := strings.TrimSuffix(strings.TrimPrefix(location, "/products/"), "/edit")
	w = env.postForm("/products/"+id, url.Values{"title": {"Curling"}, "description": {"Stones on ice"}})
	assert.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())

	p, err := env.products.GetProduct(id)
	require.NoError(t, err)
	assert.Equal(t, "Curling", p.Title)
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)

	w := env.postForm("/products/team-lakers", url.Values{
		"title":        {"Los Angeles Lakers"},
		"description":  {"  Showtime  "},
		"foundingYear": {"1947"},
		"trophies":     {"18"},
		"productType":  {"Sport"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())

	p, err := env.products.GetProduct("team-lakers")
	require.NoError(t, err)
	assert.Equal(t, "Showtime", p.Description)
	assert.Equal(t, 18, p.Trophies)
	assert.Equal(t, model.ProductTypeTeam, p.ProductType)

	// 改名成已有球队
	w = env.postForm("/products/team-lakers", url.Values{"title": {"Boston Celtics"}})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.postForm("/products/nope", url.Values{"title": {"Ghost"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSportCascades(t *testing.T) {
	env := newTestEnv(t)

	w := env.postForm("/products/sport-basketball/delete", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)

	all, err := env.products.GetAllData()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Arsenal", all[0].Title)

	w = env.postForm("/products/sport-basketball/delete", url.Values{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateAndCommentPages(t *testing.T) {
	env := newTestEnv(t)

	w := env.postForm("/products/team-celtics/rate", url.Values{"rating": {"3"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = env.postForm("/products/team-celtics/rate", url.Values{"rating": {"9"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.postForm("/products/team-celtics/rate", url.Values{"rating": {"five"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.postForm("/products/missing/rate", url.Values{"rating": {"3"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.postForm("/products/missing/comments", url.Values{"comment": {"Hello"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.postForm("/products/team-celtics/comments", url.Values{"comment": {"Banner 18"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	p, err := env.products.GetProduct("team-celtics")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3}, p.Ratings)
	require.Len(t, p.CommentList, 1)
	assert.Equal(t, "Banner 18", p.CommentList[0].Comment)
}

func TestMatchPages(t *testing.T) {
	env := newTestEnv(t)

	w := env.postForm("/matches", url.Values{
		"match":      {"Lakers vs Celtics"},
		"date":       {"2024-04-01T19:30"},
		"location":   {"Crypto.com Arena"},
		"team1":      {"Los Angeles Lakers"},
		"team2":      {"Boston Celtics"},
		"team1Score": {"120"},
		"team2Score": {"111"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())

	w = env.postForm("/matches", url.Values{"match": {"Bad"}, "location": {"X"}, "team1": {"A"}, "team2": {"B"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.postForm("/matches", url.Values{"match": {"Bad date"}, "date": {"someday"}, "location": {"Somewhere"}, "team1": {"A"}, "team2": {"B"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	all, err := env.matches.GetAllData()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 2024, all[1].Date.Year())

	w = env.postForm("/matches/m-1/swap", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	m, err := env.matches.GetMatch("m-1")
	require.NoError(t, err)
	assert.Equal(t, "Los Angeles Lakers", m.Team1)
	assert.Equal(t, 114, m.Team1Score)

	w = env.postForm("/matches/m-1", url.Values{
		"match": {"Renamed"}, "location": {"TD Garden"}, "team1": {"A"}, "team2": {"B"}, "team1Score": {"-2"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.postForm("/matches/m-1", url.Values{
		"match": {"Renamed"}, "location": {"TD Garden"}, "team1": {"A"}, "team2": {"B"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	m, err = env.matches.GetMatch("m-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", m.Match)

	w = env.postForm("/matches/m-1/delete", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	w = env.postForm("/matches/m-1/delete", url.Values{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductAPI_List(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/products?productType=Team&sport=NBA", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []model.ProductModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)

	w = env.do(http.MethodGet, "/api/products?productType=Bogus", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductAPI_Rate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "valid", body: `{"ProductId":"team-lakers","Rating":4}`, wantStatus: http.StatusOK},
		{name: "zero rating", body: `{"ProductId":"team-lakers","Rating":0}`, wantStatus: http.StatusOK},
		{name: "out of range", body: `{"ProductId":"team-lakers","Rating":6}`, wantStatus: http.StatusBadRequest},
		{name: "missing rating", body: `{"ProductId":"team-lakers"}`, wantStatus: http.StatusBadRequest},
		{name: "missing id", body: `{"Rating":3}`, wantStatus: http.StatusBadRequest},
		{name: "unknown product", body: `{"ProductId":"nope","Rating":3}`, wantStatus: http.StatusNotFound},
		{name: "malformed", body: `{"ProductId":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			w := env.do(http.MethodPatch, "/api/products", strings.NewReader(tt.body), "application/json")
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			p, err := env.products.GetProduct("team-lakers")
			require.NoError(t, err)
			if tt.wantStatus == http.StatusOK {
				assert.Len(t, p.Ratings, 1)
			} else {
				assert.Empty(t, p.Ratings)
			}
		})
	}
}

func TestProductAPI_CORS(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://fan.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://fan.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSyncLeague(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/sync/league/testleague", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var result service.SyncResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, service.SyncResult{League: "testleague", Games: 1, Standings: 1}, result)

	w = env.do(http.MethodPost, "/sync/league/downleague", nil, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = env.do(http.MethodPost, "/sync/league/curling", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
