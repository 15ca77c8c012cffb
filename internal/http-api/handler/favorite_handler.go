package handler

import (
	"net/http"

	"platerate/internal/http-api/dto"
	"platerate/internal/http-api/middleware"
	"platerate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// RegisterRoutes registers favorite routes, all of which require
// authentication.
func (h *FavoriteHandler) RegisterRoutes(authed *gin.RouterGroup) {
	favorites := authed.Group("/favorites")
	{
		favorites.GET("", h.List)
		favorites.POST("", h.Add)
		favorites.DELETE("", h.Remove)
		favorites.GET("/:plate", h.Check)
	}
}

// List returns the caller's favorite vehicles
// GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	favorites, err := h.favoriteService.ListFavorites(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// Add puts a vehicle on the caller's favorites list
// POST /api/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddFavoriteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.favoriteService.AddFavorite(userID, req.LicensePlate, req.Notes); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "vehicle added to favorites"})
}

// Remove takes a vehicle off the caller's favorites list
// DELETE /api/favorites
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.RemoveFavoriteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.favoriteService.RemoveFavorite(userID, req.LicensePlate); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vehicle removed from favorites"})
}

// Check reports whether a vehicle is on the caller's favorites list
// GET /api/favorites/:plate
func (h *FavoriteHandler) Check(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(userID, c.Param("plate"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": isFavorite})
}
