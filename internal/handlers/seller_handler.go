package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"seller-insights-service/internal/clients"
	"seller-insights-service/internal/models"
	"seller-insights-service/internal/repository"
)

// SellerHandler serves the seller account info endpoints. A failed lookup
// makes that section unavailable without affecting the rest of the
// dashboard.
type SellerHandler struct {
	repo   *repository.SnapshotRepository
	logger *logrus.Logger
}

func NewSellerHandler(repo *repository.SnapshotRepository, logger *logrus.Logger) *SellerHandler {
	return &SellerHandler{repo: repo, logger: logger}
}

// GetProfile returns the seller account profile
// GET /api/v1/seller/profile
func (h *SellerHandler) GetProfile(c *gin.Context) {
	profile, err := h.repo.GetSellerProfile(c.Request.Context())
	if err != nil {
		h.respondFetchFailure(c, "seller profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}

// GetLegalInfo returns the registered business entity record
// GET /api/v1/seller/legal
func (h *SellerHandler) GetLegalInfo(c *gin.Context) {
	info, err := h.repo.GetLegalInfo(c.Request.Context())
	if err != nil {
		h.respondFetchFailure(c, "legal registry", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": info})
}

// GetFavorites returns how many shoppers favorited the store
// GET /api/v1/seller/favorites
func (h *SellerHandler) GetFavorites(c *gin.Context) {
	count, err := h.repo.GetFavoritesCount(c.Request.Context())
	if err != nil {
		h.respondFetchFailure(c, "favorites count", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"favoritesCount": count},
	})
}

func (h *SellerHandler) respondFetchFailure(c *gin.Context, section string, err error) {
	h.logger.WithError(err).WithField("section", section).Error("Seller info lookup failed")

	code := "FETCH_FAILED"
	var validationErr *clients.ValidationError
	if errors.As(err, &validationErr) {
		code = "VALIDATION_ERROR"
	}

	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    code,
			Message: "Failed to load " + section,
		},
	})
}
