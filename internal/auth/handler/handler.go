package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ewok0116/CS308-Project/internal/auth/credentials"
)

type Handler struct {
	credentialService *credentials.Service
}

func NewHandler(credentialService *credentials.Service) *Handler {
	return &Handler{
		credentialService: credentialService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
}
