package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ewok0116/CS308-Project/internal/auth/credentials"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_fields",
			"details": "invalid request body",
		})
		return
	}

	u, err := h.credentialService.Register(c.Request.Context(), credentials.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Address:  req.Address,
	})

	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "missing_fields",
				"details": err.Error(),
			})
		case errors.Is(err, credentials.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_email_format",
				"details": err.Error(),
			})
		case errors.Is(err, credentials.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "password_too_short",
				"details": err.Error(),
			})
		case errors.Is(err, credentials.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error":   "email_conflict",
				"details": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to register user",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "user registered",
		"user":    u.Public(),
	})
}
