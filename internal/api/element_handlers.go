package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type matchupView struct {
	Element string   `json:"element"`
	Beats   []string `json:"beats"`
	LosesTo []string `json:"loses_to"`
}

// ListElements renders the advantage table in construction order.
func (h *Handler) ListElements(c *gin.Context) {
	entries := h.table.Entries()
	out := make([]matchupView, 0, len(entries))
	for _, e := range entries {
		v := matchupView{
			Element: string(e.Element),
			Beats:   make([]string, 0, len(e.Relation.Beats)),
			LosesTo: make([]string, 0, len(e.Relation.LosesTo)),
		}
		for _, b := range e.Relation.Beats {
			v.Beats = append(v.Beats, string(b))
		}
		for _, l := range e.Relation.LosesTo {
			v.LosesTo = append(v.LosesTo, string(l))
		}
		out = append(out, v)
	}
	c.JSON(http.StatusOK, out)
}
