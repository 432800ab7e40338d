package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/osse101/CardBuilder_Go/internal/domain"
)

// CardsCommand browses the catalog and edits the card selection
type CardsCommand struct{}

func (c *CardsCommand) Name() string {
	return "cards"
}

func (c *CardsCommand) Description() string {
	return "Browse the card catalog and edit the selection (list, selection, select, unselect)"
}

func (c *CardsCommand) Run(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return usageError("%s: list, selection, select, unselect", ErrMsgMissingArgument)
	}

	switch args[0] {
	case "list":
		return c.list(ctx, app, args[1:])
	case "selection":
		return c.selection(ctx, app)
	case "select":
		return c.toggle(ctx, app, args[1:], true)
	case "unselect":
		return c.toggle(ctx, app, args[1:], false)
	default:
		return usageError("%s: %s", ErrMsgUnknownSubcommand, args[0])
	}
}

// list prints the catalog. With -game only that game's cards are shown.
func (c *CardsCommand) list(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("cards list", app.Out)
	gameID := fs.String(flagGame, "", "show only the cards of this game")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}

	var views []cardView
	if *gameID != "" {
		id, err := uuid.Parse(*gameID)
		if err != nil {
			return usageError("%s: %q", ErrMsgInvalidGameID, *gameID)
		}
		g, err := app.Repos.Games.LoadOne(ctx, id)
		if err != nil {
			return err
		}
		if g == nil {
			return fmt.Errorf("%w: %s", domain.ErrGameNotFound, id)
		}
		views = cardViews(app.Repos.Catalog.Filter(g.CardIndices), g.CardIndices)
	} else {
		selected, err := app.Repos.Games.LoadSelectedCardIndices(ctx)
		if err != nil {
			return err
		}
		views = cardViews(app.Repos.Catalog.All(), selected)
	}

	tw := newTable(app.Out)
	writeHeader(tw, "selected", "index", "image")
	for _, v := range views {
		writeRow(tw, mark(v.Selected), strconv.Itoa(v.Index), v.ImageRef)
	}
	return tw.Flush()
}

func (c *CardsCommand) selection(ctx context.Context, app *App) error {
	selected, err := app.Repos.Games.LoadSelectedCardIndices(ctx)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Fprintln(app.Out, MsgNoSelection)
		return nil
	}
	fmt.Fprintln(app.Out, joinInts(selected))
	return nil
}

func (c *CardsCommand) toggle(ctx context.Context, app *App, args []string, selected bool) error {
	index, err := parseCardIndex(args)
	if err != nil {
		return err
	}
	if _, ok := app.Repos.Catalog.Get(index); !ok {
		return fmt.Errorf("%w: %s %d", domain.ErrInvalidInput, ErrMsgUnknownCard, index)
	}

	result, err := app.Repos.Games.ToggleSelectedCard(ctx, index, selected)
	if err != nil {
		return err
	}
	if len(result) == 0 {
		fmt.Fprintln(app.Out, MsgNoSelection)
		return nil
	}
	fmt.Fprintln(app.Out, joinInts(result))
	return nil
}
