package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tcwang/elemental-cards/internal/constants"
	"github.com/tcwang/elemental-cards/internal/duel"
	"github.com/tcwang/elemental-cards/internal/storage"
)

// DuelRequest names the two combatants by their card names.
type DuelRequest struct {
	CardA string `json:"card_a" binding:"required"`
	CardB string `json:"card_b" binding:"required"`
}

// CreateDuel simulates a duel between two cards from the collection
// and records the result for replay.
func (h *Handler) CreateDuel(c *gin.Context) {
	var req DuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	outcome, err := h.duels.Run(req.CardA, req.CardB)
	switch {
	case errors.Is(err, duel.ErrCardNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrDuelCombatantAbsent})
	case errors.Is(err, duel.ErrSameCard):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDuelNeedsTwoCards})
	case errors.Is(err, duel.ErrTooFewCards):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrTooFewCardsForDuel})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRunDuel})
	default:
		c.JSON(http.StatusOK, outcome)
	}
}

// ListDuels returns recent duels, newest first, without round logs.
func (h *Handler) ListDuels(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	duels, err := h.duels.History(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchDuels})
		return
	}
	c.JSON(http.StatusOK, duels)
}

// GetDuel replays one stored duel, round log included.
func (h *Handler) GetDuel(c *gin.Context) {
	replay, err := h.duels.Get(c.Param("duelID"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrDuelNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchDuels})
		return
	}
	c.JSON(http.StatusOK, replay)
}
