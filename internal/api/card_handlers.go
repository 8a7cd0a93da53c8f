package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tcwang/elemental-cards/internal/card"
	"github.com/tcwang/elemental-cards/internal/collection"
	"github.com/tcwang/elemental-cards/internal/constants"
)

// CardRequest is the JSON body for creating or overwriting a card.
type CardRequest struct {
	Name    string `json:"name" binding:"required"`
	HP      int    `json:"hp"`
	Attack  int    `json:"attack"`
	Defense int    `json:"defense"`
	Element string `json:"element"`
	Rarity  string `json:"rarity"`
}

// ListCards returns the whole collection in insertion order.
func (h *Handler) ListCards(c *gin.Context) {
	cards, err := h.cards.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCards})
		return
	}
	c.JSON(http.StatusOK, cards)
}

// CreateCard inserts a card, overwriting any card with the same name.
// A create responds 201, an overwrite 200.
func (h *Handler) CreateCard(c *gin.Context) {
	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	newCard := card.New(req.Name, req.HP, req.Attack, req.Defense, req.Element, req.Rarity)
	created, err := h.cards.Upsert(newCard)
	if err != nil {
		if errors.Is(err, collection.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCardNameRequired})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveCard})
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, newCard)
}

// GetCard looks one card up by exact name.
func (h *Handler) GetCard(c *gin.Context) {
	found, err := h.cards.Find(c.Param("name"))
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCardNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCards})
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateCard applies a partial patch; omitted fields keep their
// current value and the score is re-derived.
func (h *Handler) UpdateCard(c *gin.Context) {
	var patch card.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	updated, err := h.cards.Update(c.Param("name"), patch)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCardNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveCard})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCard removes one card by name.
func (h *Handler) DeleteCard(c *gin.Context) {
	if err := h.cards.Delete(c.Param("name")); err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCardNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedDeleteCard})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "card deleted"})
}

// Leaderboard returns the highest-scoring cards, top 10 by default.
func (h *Handler) Leaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	cards, err := h.cards.Top(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCards})
		return
	}
	c.JSON(http.StatusOK, cards)
}
