package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneyharbor/internal/catalog"
	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/platform"
)

// CatalogHandler serves the investment catalog and the platform directory.
type CatalogHandler struct {
	catalog   *catalog.Catalog
	platforms *platform.Directory
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog, platforms *platform.Directory) *CatalogHandler {
	return &CatalogHandler{catalog: cat, platforms: platforms}
}

// GetCatalog lists every investment option.
// @Summary     List investment options
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string]interface{} "Options and count"
// @Router      /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	options := h.catalog.Options()
	c.JSON(http.StatusOK, gin.H{"options": options, "count": len(options)})
}

// GetOption returns one investment option.
// @Summary     Get an investment option
// @Tags        catalog
// @Produce     json
// @Param       id path string true "Option ID"
// @Success     200 {object} catalog.InvestmentOption "Option"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /catalog/{id} [get]
func (h *CatalogHandler) GetOption(c *gin.Context) {
	opt, ok := h.catalog.Find(c.Param("id"))
	if !ok {
		respondWithError(c, apperrors.ErrInvestmentNotFound)
		return
	}
	c.JSON(http.StatusOK, opt)
}

// GetPlatforms lists the verified platform directory.
// @Summary     List platforms
// @Tags        platforms
// @Produce     json
// @Success     200 {object} map[string]interface{} "Platforms"
// @Router      /platforms [get]
func (h *CatalogHandler) GetPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": h.platforms.Platforms()})
}

// LookupPlatform resolves a free-text platform name.
// @Summary     Look up a platform
// @Description Resolve a platform name by exact, cleaned, substring, then fuzzy match
// @Tags        platforms
// @Produce     json
// @Param       name query string true "Platform name"
// @Success     200 {object} platform.Platform "Platform"
// @Failure     400 {object} ErrorResponse "Missing name"
// @Failure     404 {object} ErrorResponse "No matching platform"
// @Router      /platforms/lookup [get]
func (h *CatalogHandler) LookupPlatform(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required"))
		return
	}

	p, ok := h.platforms.Lookup(name)
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "No matching platform"))
		return
	}
	c.JSON(http.StatusOK, p)
}
