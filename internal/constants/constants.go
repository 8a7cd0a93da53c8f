package constants

// Centralized constants for env keys, routes and shared messages.
const (
	// Environment variable keys
	EnvConfigPath = "CARDS_CONFIG"
	EnvDBPath     = "CARDS_DB"
	EnvDebug      = "CARDS_DEBUG"

	// Defaults
	DefaultConfigPath    = "./cards_config.json"
	DefaultDBPath        = "./data/cards.db"
	DefaultServerAddress = ":8080"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// Routes used by the backend router
const (
	RouteAPIPrefix       = "/api"
	RouteCards           = "/cards"
	RouteCardByName      = "/cards/:name"
	RouteCardLeaderboard = "/cards/leaderboard"
	RouteCardImport      = "/cards/import"
	RouteCardExport      = "/cards/export"
	RouteElements        = "/elements"
	RouteDuels           = "/duels"
	RouteDuelByID        = "/duels/:duelID"
	RouteVersion         = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrCardNotFound        = "Card not found"
	ErrCardNameRequired    = "Card name is required"
	ErrFailedFetchCards    = "Failed to fetch cards"
	ErrFailedSaveCard      = "Failed to save card"
	ErrFailedDeleteCard    = "Failed to delete card"
	ErrFailedImportCards   = "Failed to import cards"
	ErrFailedExportCards   = "Failed to export cards"
	ErrDuelNotFound        = "Duel not found"
	ErrFailedFetchDuels    = "Failed to fetch duels"
	ErrFailedRunDuel       = "Failed to run duel"
	ErrDuelNeedsTwoCards   = "A duel needs two distinct cards from the collection"
	ErrTooFewCardsForDuel  = "At least two cards are required for a duel"
	ErrDuelCombatantAbsent = "Combatant not found in the collection"
)

// Logging field names
const (
	LogFieldAddr   = "addr"
	LogFieldName   = "name"
	LogFieldDuelID = "duel_id"
)
