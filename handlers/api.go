// Package handlers exposes the lending backend over HTTP.
package handlers

import (
	"log"
	"net/http"

	"github.com/bookowl/backend/auth"
	"github.com/bookowl/backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles the services behind the HTTP surface.
type API struct {
	accounts *services.AccountService
	catalog  *services.CatalogService
	ledger   *services.Ledger
	tokens   *auth.TokenService
}

// New wires an API over the given database and token service.
func New(db *gorm.DB, tokens *auth.TokenService) *API {
	return &API{
		accounts: services.NewAccountService(db, tokens),
		catalog:  services.NewCatalogService(db),
		ledger:   services.NewLedger(db),
		tokens:   tokens,
	}
}

// writeServiceError translates a service error into the HTTP status taxonomy:
// auth failures 401, not-found 404, conflicts and validation failures 400,
// anything else 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case auth.IsAuthError(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.IsConflict(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("unhandled service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
