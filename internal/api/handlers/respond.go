package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KeisukeTTTT/estate-management/internal/pipeline"
)

// respondOutcome maps a terminal pipeline state to HTTP. A redirecting commit
// becomes 303 See Other so the browser follows with a GET of the listing.
func respondOutcome(c *gin.Context, out pipeline.Outcome) {
	switch out.State {
	case pipeline.StateCommitted:
		if out.RedirectTo != "" {
			c.Redirect(http.StatusSeeOther, out.RedirectTo)
			return
		}
		c.JSON(http.StatusOK, out.Result)
	case pipeline.StateRejected:
		c.JSON(http.StatusUnprocessableEntity, out.Result)
	default:
		c.JSON(http.StatusInternalServerError, out.Result)
	}
}
