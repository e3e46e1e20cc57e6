package football_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futdash/futdash/internal/apitest"
	"github.com/futdash/futdash/internal/credential"
	"github.com/futdash/futdash/internal/dispatch"
	"github.com/futdash/futdash/internal/football"
	"github.com/futdash/futdash/internal/notify"
)

func setupClient(t *testing.T) (*football.Client, *apitest.Server) {
	t.Helper()

	backend := apitest.New()
	t.Cleanup(backend.Close)

	creds := credential.NewStore(filepath.Join(t.TempDir(), "credential.json"), 30*time.Minute)
	backend.Seed("alice", "secret1", "alice@x.com", "Flamengo")
	_, err := creds.Save(backend.IssueToken("alice"))
	require.NoError(t, err)

	api := dispatch.New(backend.URL, creds, notify.Discard)
	return football.NewClient(api), backend
}

func TestBrasileiraoTeams(t *testing.T) {
	client, _ := setupClient(t)

	list, err := client.BrasileiraoTeams(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "BSA", list.Competition.Code)
	require.Len(t, list.Teams, 3)
	assert.Equal(t, 3, list.Count)
	assert.Equal(t, "CR Flamengo", list.Teams[1].Name)
	assert.Equal(t, "FLA", list.Teams[1].TLA)
	assert.Equal(t, 1895, list.Teams[1].Founded)
}

func TestTeamDetails(t *testing.T) {
	client, _ := setupClient(t)

	details, err := client.Team(context.Background(), 1783)
	require.NoError(t, err)

	assert.Equal(t, "CR Flamengo", details.Name)
	assert.Equal(t, "Red / Black", details.ClubColors)
	require.NotNil(t, details.Area)
	assert.Equal(t, "Brazil", details.Area.Name)
	require.NotNil(t, details.Coach)
	assert.Equal(t, "Filipe Luís", details.Coach.Name)
	require.Len(t, details.Squad, 2)
	assert.Equal(t, "Goalkeeper", details.Squad[0].Position)
}

func TestTeamDetails_UnknownTeam(t *testing.T) {
	client, _ := setupClient(t)

	_, err := client.Team(context.Background(), 9999)
	require.Error(t, err)

	var apiErr *dispatch.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, dispatch.KindNotFound, apiErr.Kind)
}

func TestTeamMatches(t *testing.T) {
	client, _ := setupClient(t)

	list, err := client.TeamMatches(context.Background(), 1783)
	require.NoError(t, err)

	require.Len(t, list.Matches, 3)
	finished := list.Matches[0]
	assert.Equal(t, "FINISHED", finished.Status)
	assert.Equal(t, "CR Flamengo", finished.HomeTeam.Name)
	assert.Equal(t, "HOME_TEAM", finished.Score.Winner)
	require.NotNil(t, finished.Score.FullTime)
	require.NotNil(t, finished.Score.FullTime.Home)
	assert.Equal(t, 2, *finished.Score.FullTime.Home)
}

func TestIndicators(t *testing.T) {
	client, _ := setupClient(t)

	ind, err := client.Indicators(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "CR Flamengo", ind.Historical.OldestTeam.Name)
	assert.Equal(t, 1895, ind.Historical.OldestTeam.Founded)
	assert.Equal(t, 3, ind.Temporal.CentenaryTeams)
	require.Len(t, ind.Temporal.ByDecade, 3)
	assert.Equal(t, "1890s", ind.Temporal.ByDecade[0].Decade)
	require.Len(t, ind.Rankings.Oldest, 2)
}

func TestImportData(t *testing.T) {
	client, _ := setupClient(t)

	result, err := client.ImportData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "import completed", result.Message)
}

// The real backend reports import failures inside a 200 body.
func TestImportData_ErrorInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": "import failed", "detail": "upstream provider unavailable"}`))
	}))
	defer srv.Close()

	creds := credential.NewStore(filepath.Join(t.TempDir(), "credential.json"), 30*time.Minute)
	client := football.NewClient(dispatch.New(srv.URL, creds, notify.Discard))

	_, err := client.ImportData(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "upstream provider unavailable")
}
