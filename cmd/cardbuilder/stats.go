package main

import (
	"context"
	"fmt"

	"github.com/osse101/CardBuilder_Go/internal/domain"
)

// StatsCommand manages the personal statistics record
type StatsCommand struct{}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Show or edit personal statistics (show, set, clear)"
}

func (c *StatsCommand) Run(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return usageError("%s: show, set, clear", ErrMsgMissingArgument)
	}

	switch args[0] {
	case "show":
		return c.show(ctx, app)
	case "set":
		return c.set(ctx, app, args[1:])
	case "clear":
		if err := app.Repos.Statistics.Delete(ctx); err != nil {
			return err
		}
		fmt.Fprintln(app.Out, MsgStatsCleared)
		return nil
	default:
		return usageError("%s: %s", ErrMsgUnknownSubcommand, args[0])
	}
}

func (c *StatsCommand) show(ctx context.Context, app *App) error {
	stat, err := app.Repos.Statistics.Load(ctx)
	if err != nil {
		return err
	}
	if stat == nil {
		fmt.Fprintln(app.Out, MsgNoStatistics)
		return nil
	}
	return writeFields(app.Out,
		"wins", stat.Wins,
		"defeats", stat.Defeats,
		"hours_played", stat.HoursPlayed,
		"favorite_game", stat.FavoriteGame,
	)
}

// set edits the stored record field by field and saves it back whole
func (c *StatsCommand) set(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("stats set", app.Out)
	wins := fs.String(flagWins, "", "number of wins")
	defeats := fs.String(flagDefeats, "", "number of defeats")
	hours := fs.String(flagHours, "", "hours played")
	favorite := fs.String(flagFavorite, "", "favorite game")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}

	current, err := app.Repos.Statistics.Load(ctx)
	if err != nil {
		return err
	}
	var stat domain.Statistic
	if current != nil {
		stat = *current
	} else {
		stat = domain.NewStatistic("", "", "", "")
	}

	set := setFlags(fs)
	if set[flagWins] {
		stat.Wins = *wins
	}
	if set[flagDefeats] {
		stat.Defeats = *defeats
	}
	if set[flagHours] {
		stat.HoursPlayed = *hours
	}
	if set[flagFavorite] {
		stat.FavoriteGame = *favorite
	}

	// a new record needs every field; an existing one may be edited piecemeal
	var in any = statsEditInput{Wins: stat.Wins, Defeats: stat.Defeats, HoursPlayed: stat.HoursPlayed, FavoriteGame: stat.FavoriteGame}
	if current == nil {
		in = statsInput{Wins: stat.Wins, Defeats: stat.Defeats, HoursPlayed: stat.HoursPlayed, FavoriteGame: stat.FavoriteGame}
	}
	if err := validateInput(in); err != nil {
		return err
	}

	if err := app.Repos.Statistics.Save(ctx, stat); err != nil {
		return err
	}
	fmt.Fprintln(app.Out, MsgStatsSaved)
	return nil
}
