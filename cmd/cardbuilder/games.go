package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/CardBuilder_Go/internal/domain"
)

// GamesCommand manages saved games
type GamesCommand struct{}

func (c *GamesCommand) Name() string {
	return "games"
}

func (c *GamesCommand) Description() string {
	return "Manage saved games (list, show, add, edit, delete, clear)"
}

func (c *GamesCommand) Run(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return usageError("%s: list, show, add, edit, delete, clear", ErrMsgMissingArgument)
	}

	switch args[0] {
	case "list":
		return c.list(ctx, app)
	case "show":
		return c.show(ctx, app, args[1:])
	case "add":
		return c.add(ctx, app, args[1:])
	case "edit":
		return c.edit(ctx, app, args[1:])
	case "delete":
		return c.delete(ctx, app, args[1:])
	case "clear":
		return c.clear(ctx, app)
	default:
		return usageError("%s: %s", ErrMsgUnknownSubcommand, args[0])
	}
}

func (c *GamesCommand) list(ctx context.Context, app *App) error {
	games, err := app.Repos.Games.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintln(app.Out, MsgNoGames)
		return nil
	}

	tw := newTable(app.Out)
	writeHeader(tw, "id", "name", "players", "time", "cards")
	for _, g := range games {
		writeRow(tw, g.ID.String(), g.Name, g.Players, g.Duration, strconv.Itoa(len(g.CardIndices)))
	}
	return tw.Flush()
}

func (c *GamesCommand) show(ctx context.Context, app *App, args []string) error {
	id, _, err := parseGameID(args)
	if err != nil {
		return err
	}
	g, err := app.Repos.Games.LoadOne(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return fmt.Errorf("%w: %s", domain.ErrGameNotFound, id)
	}

	err = writeFields(app.Out,
		"id", g.ID.String(),
		"name", g.Name,
		"players", g.Players,
		"time", g.Duration,
		"rules", g.Rules,
		"cards", joinInts(g.CardIndices),
	)
	if err != nil {
		return err
	}

	for _, card := range app.Repos.Catalog.Filter(g.CardIndices) {
		fmt.Fprintf(app.Out, "  #%d %s\n", card.Index, card.ImageRef)
	}
	return nil
}

// add saves a new game. Without -cards the editor selection is used.
func (c *GamesCommand) add(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("games add", app.Out)
	name := fs.String(flagName, "", "game name")
	players := fs.String(flagPlayers, "", "number of players")
	duration := fs.String(flagTime, "", "game duration")
	rules := fs.String(flagRules, "", "rules text")
	cards := fs.String(flagCards, "", "comma-separated card indices")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}

	var indices []int
	var err error
	if setFlags(fs)[flagCards] {
		indices, err = parseCardList(*cards)
	} else {
		indices, err = app.Repos.Games.LoadSelectedCardIndices(ctx)
	}
	if err != nil {
		return err
	}

	in := gameInput{Name: *name, Players: *players, Duration: *duration, Rules: *rules, CardIndices: indices}
	if err := validateInput(in); err != nil {
		return err
	}

	g := domain.NewGame(in.Name, in.Players, in.Duration, in.Rules, in.CardIndices)
	if err := app.Repos.Games.Save(ctx, g); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, MsgGameSaved+"\n", g.ID)
	return nil
}

// edit applies only the flags that were given
func (c *GamesCommand) edit(ctx context.Context, app *App, args []string) error {
	id, rest, err := parseGameID(args)
	if err != nil {
		return err
	}

	fs := newFlagSet("games edit", app.Out)
	name := fs.String(flagName, "", "game name")
	players := fs.String(flagPlayers, "", "number of players")
	duration := fs.String(flagTime, "", "game duration")
	rules := fs.String(flagRules, "", "rules text")
	cards := fs.String(flagCards, "", "comma-separated card indices")
	if err := fs.Parse(rest); err != nil {
		return usageError("%v", err)
	}

	set := setFlags(fs)
	var in gameEditInput
	var update domain.GameUpdate
	if set[flagName] {
		in.Name = name
		update = update.WithName(*name)
	}
	if set[flagPlayers] {
		in.Players = players
		update = update.WithPlayers(*players)
	}
	if set[flagTime] {
		in.Duration = duration
		update = update.WithDuration(*duration)
	}
	if set[flagRules] {
		in.Rules = rules
		update = update.WithRules(*rules)
	}
	if set[flagCards] {
		indices, err := parseCardList(*cards)
		if err != nil {
			return err
		}
		in.CardIndices = indices
		update = update.WithCardIndices(indices)
	}
	if err := validateInput(in); err != nil {
		return err
	}

	if err := app.Repos.Games.Update(ctx, id, update); err != nil {
		return err
	}
	if update.IsEmpty() {
		fmt.Fprintln(app.Out, MsgNothingToUpdate)
		return nil
	}
	fmt.Fprintf(app.Out, MsgGameUpdated+"\n", id)
	return nil
}

func (c *GamesCommand) delete(ctx context.Context, app *App, args []string) error {
	id, _, err := parseGameID(args)
	if err != nil {
		return err
	}
	if err := app.Repos.Games.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, MsgGameDeleted+"\n", id)
	return nil
}

func (c *GamesCommand) clear(ctx context.Context, app *App) error {
	if err := app.Repos.Games.DeleteAll(ctx); err != nil {
		return err
	}
	fmt.Fprintln(app.Out, MsgGamesCleared)
	return nil
}
