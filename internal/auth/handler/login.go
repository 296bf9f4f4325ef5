package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ewok0116/CS308-Project/internal/auth/credentials"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_fields",
			"details": "invalid request body",
		})
		return
	}

	u, err := h.credentialService.Authenticate(
		c.Request.Context(),
		req.Email,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "missing_fields",
				"details": err.Error(),
			})
		case errors.Is(err, credentials.ErrInvalidCredentials):
			// identical body for unknown email and wrong password
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_credentials",
				"details": "invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to log in",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "login successful",
		"user":    u.Public(),
	})
}
