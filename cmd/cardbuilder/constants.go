package main

const appName = "cardbuilder"

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Flag names shared by game and stats commands
const (
	flagName     = "name"
	flagPlayers  = "players"
	flagTime     = "time"
	flagRules    = "rules"
	flagCards    = "cards"
	flagGame     = "game"
	flagWins     = "wins"
	flagDefeats  = "defeats"
	flagHours    = "hours"
	flagFavorite = "favorite"
)

// Messages
const (
	MsgNoGames         = "No games saved."
	MsgNoStatistics    = "No statistics saved."
	MsgNoSelection     = "No cards selected."
	MsgGameSaved       = "Saved game %s"
	MsgGameUpdated     = "Updated game %s"
	MsgGameDeleted     = "Deleted game %s"
	MsgGamesCleared    = "Deleted all games."
	MsgStatsSaved      = "Statistics saved."
	MsgStatsCleared    = "Statistics cleared."
	MsgPlayerPicked    = "Player %d starts."
	MsgNothingToUpdate = "Nothing to update."

	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgUnknownSubcommand = "unknown subcommand"
	ErrMsgMissingArgument   = "missing argument"
	ErrMsgInvalidGameID     = "invalid game id"
	ErrMsgInvalidCardIndex  = "invalid card index"
	ErrMsgUnknownCard       = "card is not in the catalog"

	LogMsgCommandStarted = "Command started"
	LogMsgCommandFailed  = "Command failed"
	LogMsgConfigFailed   = "Failed to load configuration"
)
