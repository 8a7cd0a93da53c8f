package api

import (
	"github.com/gin-gonic/gin"

	"github.com/tcwang/elemental-cards/internal/collection"
	"github.com/tcwang/elemental-cards/internal/constants"
	"github.com/tcwang/elemental-cards/internal/duel"
	"github.com/tcwang/elemental-cards/internal/element"
)

// Handler groups all HTTP handlers for the card catalog and the duel
// simulator.
type Handler struct {
	cards *collection.Service
	duels *duel.Service
	table *element.Table
}

func NewHandler(cards *collection.Service, duels *duel.Service, table *element.Table) *Handler {
	return &Handler{cards: cards, duels: duels, table: table}
}

// Register mounts every route under the API prefix.
func (h *Handler) Register(router gin.IRouter) {
	api := router.Group(constants.RouteAPIPrefix)

	api.GET(constants.RouteCards, h.ListCards)
	api.POST(constants.RouteCards, h.CreateCard)
	api.GET(constants.RouteCardLeaderboard, h.Leaderboard)
	api.POST(constants.RouteCardImport, h.ImportCards)
	api.GET(constants.RouteCardExport, h.ExportCards)
	api.GET(constants.RouteCardByName, h.GetCard)
	api.PATCH(constants.RouteCardByName, h.UpdateCard)
	api.DELETE(constants.RouteCardByName, h.DeleteCard)

	api.GET(constants.RouteElements, h.ListElements)

	api.POST(constants.RouteDuels, h.CreateDuel)
	api.GET(constants.RouteDuels, h.ListDuels)
	api.GET(constants.RouteDuelByID, h.GetDuel)

	api.GET(constants.RouteVersion, Version)
}
