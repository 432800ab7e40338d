package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBuilder_Go/internal/bootstrap"
	"github.com/osse101/CardBuilder_Go/internal/config"
	"github.com/osse101/CardBuilder_Go/internal/domain"
	"github.com/osse101/CardBuilder_Go/internal/generator"
	"github.com/osse101/CardBuilder_Go/internal/recordstore"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	repos, err := bootstrap.InitializeRepositories(recordstore.NewMemoryBackend())
	require.NoError(t, err)
	repos.Picker = generator.NewSeededPicker(7)

	out := &bytes.Buffer{}
	cfg := &config.Config{
		Version:           "test",
		AppShareURL:       "https://example.com/share",
		AppReviewURL:      "https://example.com/review",
		AppUsagePolicyURL: "https://example.com/policy",
	}
	return &App{Config: cfg, Repos: repos, Out: out}, out
}

func runCmd(t *testing.T, app *App, line string) error {
	t.Helper()
	app.Out.(*bytes.Buffer).Reset()
	return DefaultRegistry().Dispatch(context.Background(), app, strings.Fields(line))
}

func onlyGame(t *testing.T, app *App) domain.Game {
	t.Helper()
	games, err := app.Repos.Games.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)
	return games[0]
}

func TestDispatch_UnknownCommand(t *testing.T) {
	app, out := newTestApp(t)

	err := runCmd(t, app, "shuffle")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out.String(), "Available Commands")
}

func TestDispatch_NoArgs(t *testing.T) {
	app, _ := newTestApp(t)
	assert.ErrorIs(t, runCmd(t, app, ""), errUsage)
}

func TestExecute_ExitCodes(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	assert.Equal(t, exitOK, execute(ctx, DefaultRegistry(), app, []string{"games", "list"}))
	assert.Equal(t, exitUsage, execute(ctx, DefaultRegistry(), app, []string{"games", "bogus"}))
	assert.Equal(t, exitError, execute(ctx, DefaultRegistry(), app, []string{"pick", "zero"}))
}

func TestGames_AddListShow(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, runCmd(t, app, "games list"))
	assert.Contains(t, out.String(), MsgNoGames)

	require.NoError(t, runCmd(t, app, "games add -name Snap -players 2 -time 10m -rules draw -cards 0,3"))
	g := onlyGame(t, app)
	assert.Equal(t, "Snap", g.Name)
	assert.Equal(t, "2", g.Players)
	assert.Equal(t, "10m", g.Duration)
	assert.Equal(t, []int{0, 3}, g.CardIndices)

	require.NoError(t, runCmd(t, app, "games list"))
	assert.Contains(t, out.String(), "Snap")
	assert.Contains(t, out.String(), "Players")

	require.NoError(t, runCmd(t, app, "games show "+g.ID.String()))
	assert.Contains(t, out.String(), "card1")
	assert.Contains(t, out.String(), "card4")
}

func TestGames_AddUsesSelection(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, runCmd(t, app, "cards select 5"))
	require.NoError(t, runCmd(t, app, "cards select 2"))
	require.NoError(t, runCmd(t, app, "games add -name Solo -players 1 -time 5m -rules draw"))

	assert.Equal(t, []int{5, 2}, onlyGame(t, app).CardIndices)
}

func TestGames_AddRequiresName(t *testing.T) {
	app, _ := newTestApp(t)

	err := runCmd(t, app, "games add -players 4")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGames_AddRequiresEveryField(t *testing.T) {
	app, _ := newTestApp(t)

	for _, line := range []string{
		"games add -name X -time 5m -rules draw",
		"games add -name X -players 2 -rules draw",
		"games add -name X -players 2 -time 5m",
		"games add -name X",
	} {
		assert.ErrorIs(t, runCmd(t, app, line), domain.ErrInvalidInput, line)
	}

	games, err := app.Repos.Games.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGames_EditRejectsBlankField(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, runCmd(t, app, "games add -name Snap -players 2 -time 10m -rules fast"))
	g := onlyGame(t, app)

	err := DefaultRegistry().Dispatch(context.Background(), app, []string{"games", "edit", g.ID.String(), "-rules", ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "fast", onlyGame(t, app).Rules)
}

func TestGames_AddRejectsBadCards(t *testing.T) {
	app, _ := newTestApp(t)

	assert.ErrorIs(t, runCmd(t, app, "games add -name X -players 2 -time 5m -rules draw -cards 1,a"), errUsage)
	assert.ErrorIs(t, runCmd(t, app, "games add -name X -players 2 -time 5m -rules draw -cards -1"), domain.ErrInvalidInput)
}

func TestGames_EditOnlyGivenFields(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, runCmd(t, app, "games add -name Snap -players 2 -time 10m -rules fast -cards 1"))
	g := onlyGame(t, app)

	require.NoError(t, runCmd(t, app, "games edit "+g.ID.String()+" -players 3"))

	got := onlyGame(t, app)
	assert.Equal(t, "3", got.Players)
	assert.Equal(t, "Snap", got.Name)
	assert.Equal(t, "fast", got.Rules)
	assert.Equal(t, []int{1}, got.CardIndices)
}

func TestGames_EditMissing(t *testing.T) {
	app, _ := newTestApp(t)

	err := runCmd(t, app, "games edit 1b4e28ba-2fa1-11d2-883f-0016d3cca427 -name X")
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}

func TestGames_DeleteAndClear(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, runCmd(t, app, "games add -name A -players 2 -time 5m -rules draw"))
	require.NoError(t, runCmd(t, app, "games add -name B -players 2 -time 5m -rules draw"))

	games, err := app.Repos.Games.LoadAll(context.Background())
	require.NoError(t, err)
	require.NoError(t, runCmd(t, app, "games delete "+games[0].ID.String()))
	assert.Equal(t, "B", onlyGame(t, app).Name)

	require.NoError(t, runCmd(t, app, "games clear"))
	games, err = app.Repos.Games.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGames_InvalidID(t *testing.T) {
	app, _ := newTestApp(t)
	assert.ErrorIs(t, runCmd(t, app, "games show nope"), errUsage)
	assert.ErrorIs(t, runCmd(t, app, "games delete"), errUsage)
}

func TestStats_SetShowClear(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, runCmd(t, app, "stats show"))
	assert.Contains(t, out.String(), MsgNoStatistics)

	require.NoError(t, runCmd(t, app, "stats set -wins 4 -defeats 0 -hours 12 -favorite Snap"))
	first, err := app.Repos.Statistics.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, first)

	require.NoError(t, runCmd(t, app, "stats set -defeats 2"))
	second, err := app.Repos.Statistics.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "4", second.Wins)
	assert.Equal(t, "2", second.Defeats)
	assert.Equal(t, "Snap", second.FavoriteGame)

	require.NoError(t, runCmd(t, app, "stats show"))
	assert.Contains(t, out.String(), "Favorite Game:")
	assert.Contains(t, out.String(), "Hours Played:")

	require.NoError(t, runCmd(t, app, "stats clear"))
	gone, err := app.Repos.Statistics.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestStats_RejectsNonNumeric(t *testing.T) {
	app, _ := newTestApp(t)
	assert.ErrorIs(t, runCmd(t, app, "stats set -wins lots -defeats 0 -hours 1 -favorite Snap"), domain.ErrInvalidInput)
}

func TestStats_NewRecordRequiresEveryField(t *testing.T) {
	app, _ := newTestApp(t)

	assert.ErrorIs(t, runCmd(t, app, "stats set -wins 4"), domain.ErrInvalidInput)
	assert.ErrorIs(t, runCmd(t, app, "stats set -wins 4 -defeats 1 -hours 3"), domain.ErrInvalidInput)

	stat, err := app.Repos.Statistics.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stat)
}

func TestCards_SelectUnselect(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, runCmd(t, app, "cards selection"))
	assert.Contains(t, out.String(), MsgNoSelection)

	require.NoError(t, runCmd(t, app, "cards select 1"))
	require.NoError(t, runCmd(t, app, "cards select 4"))
	assert.Equal(t, "1,4\n", out.String())

	require.NoError(t, runCmd(t, app, "cards unselect 1"))
	assert.Equal(t, "4\n", out.String())

	require.NoError(t, runCmd(t, app, "cards list"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 21)
	for _, line := range lines[1:] {
		if strings.HasSuffix(line, " card5") {
			assert.True(t, strings.HasPrefix(line, "[x]"), line)
		} else {
			assert.True(t, strings.HasPrefix(line, "[ ]"), line)
		}
	}
}

func TestCards_SelectUnknownCard(t *testing.T) {
	app, _ := newTestApp(t)

	assert.ErrorIs(t, runCmd(t, app, "cards select 999"), domain.ErrInvalidInput)
	assert.ErrorIs(t, runCmd(t, app, "cards select x"), errUsage)
}

func TestCards_ListForGame(t *testing.T) {
	app, out := newTestApp(t)
	require.NoError(t, runCmd(t, app, "games add -name Snap -players 2 -time 10m -rules draw -cards 7,2"))
	g := onlyGame(t, app)

	require.NoError(t, runCmd(t, app, "cards list -game "+g.ID.String()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	// catalog order, not game order
	assert.Contains(t, lines[1], "card3")
	assert.Contains(t, lines[2], "card8")
}

func TestPick(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, runCmd(t, app, "pick 1"))
	assert.Equal(t, "Player 1 starts.\n", out.String())

	assert.ErrorIs(t, runCmd(t, app, "pick 0"), domain.ErrInvalidPlayerCount)
	assert.ErrorIs(t, runCmd(t, app, "pick"), errUsage)
}

func TestAbout(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, runCmd(t, app, "about"))
	assert.Contains(t, out.String(), "Usage Policy:")
	assert.Contains(t, out.String(), "https://example.com/review")
}

func TestMetrics(t *testing.T) {
	app, out := newTestApp(t)
	require.NoError(t, runCmd(t, app, "games list"))

	require.NoError(t, runCmd(t, app, "metrics"))
	assert.Contains(t, out.String(), "cardbuilder_store_operations_total")
}
