package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/shortify/shortify/internal/errors"
	"github.com/shortify/shortify/internal/model"
)

// LinkService is the slice of the mapping service the HTTP layer needs.
type LinkService interface {
	Shorten(ctx context.Context, req *model.ShortenRequest) (*model.ShortenResponse, error)
	Expand(ctx context.Context, shortCode string) (string, error)
	Redirect(ctx context.Context, shortCode string) (string, error)
	Stats(ctx context.Context, shortCode string) (*model.StatsResponse, error)
}

type LinkHandler struct {
	linkService LinkService
}

func NewLinkHandler(linkService LinkService) *LinkHandler {
	return &LinkHandler{
		linkService: linkService,
	}
}

func (h *LinkHandler) Shorten(c *gin.Context) {
	var req model.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format",
		})
		return
	}

	response, err := h.linkService.Shorten(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *LinkHandler) Expand(c *gin.Context) {
	shortCode := c.Param("code")

	longURL, err := h.linkService.Expand(c.Request.Context(), shortCode)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ExpandResponse{LongURL: longURL})
}

func (h *LinkHandler) Stats(c *gin.Context) {
	shortCode := c.Param("code")

	response, err := h.linkService.Stats(c.Request.Context(), shortCode)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Redirect resolves the code and issues a 302. The visit is recorded before
// the response goes out, so stats always reflect every successful redirect.
func (h *LinkHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("code")

	longURL, err := h.linkService.Redirect(c.Request.Context(), shortCode)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, longURL)
}

// handleError maps service errors to HTTP status codes.
func (h *LinkHandler) handleError(c *gin.Context, err error) {
	if apperrors.IsValidationError(err) {
		validationErr := apperrors.GetValidationError(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": validationErr.Message,
			"field":   validationErr.Field,
		})
		return
	}

	if errors.Is(err, apperrors.ErrAliasTaken) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "alias_taken",
			"message": "Short code already taken",
		})
		return
	}

	if errors.Is(err, apperrors.ErrLinkNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "link_not_found",
			"message": "Link not found",
		})
		return
	}

	if apperrors.IsBusinessError(err) {
		businessErr := apperrors.GetBusinessError(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "business_error",
			"message": businessErr.Message,
			"code":    businessErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "internal_error",
		"message": "An unexpected error occurred",
	})
}
