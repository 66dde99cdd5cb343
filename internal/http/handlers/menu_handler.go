// README: Menu listing handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"railsim/internal/menu"
)

func ListMenu(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"commands": menu.Items()})
}
