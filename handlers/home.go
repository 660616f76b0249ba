package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Home renders the search page. Master data failures degrade to an empty
// search form rather than an error page.
func (h *Handler) Home(c *gin.Context) {
	master, err := h.Backend.FetchMasterData(c.Request.Context())
	if err != nil {
		h.Logger.Warn("failed to fetch master data", zap.Error(err))
	}
	h.render(c, http.StatusOK, "home.html", gin.H{
		"Master": master,
	})
}

// Search sends the visitor to the doctor listing, carrying only the selections
// that were actually made: empty ones are omitted from the query string.
func (h *Handler) Search(c *gin.Context) {
	params := url.Values{}
	if speciality := c.Query("speciality"); speciality != "" {
		params.Set("speciality", speciality)
	}
	if class := c.Query("class"); class != "" {
		params.Set("class", class)
	}

	target := "/doctors"
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}
	c.Redirect(http.StatusFound, target)
}
