package roles

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ewok0116/CS308-Project/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the role endpoints. The user-role routes are
// gated by authentication plus the admin role.
func (h *Handler) RegisterRoutes(r *gin.Engine, authenticate middleware.Stage) {
	r.GET("/roles", h.List)

	admin := middleware.Chain(
		authenticate,
		middleware.RequireRoles("admin"),
	)

	r.GET("/users/:id/role", admin, h.GetUserRole)
	r.PUT("/users/:id/role", admin, h.SetUserRole)
}

func (h *Handler) List(c *gin.Context) {
	roles, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to list roles",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

func (h *Handler) GetUserRole(c *gin.Context) {
	uid := c.Param("id")

	role, err := h.service.Get(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to get user role",
			"details": err.Error(),
		})
		return
	}

	var out any
	if role != "" {
		out = role
	}

	c.JSON(http.StatusOK, gin.H{"uid": uid, "role": out})
}

type setRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) SetUserRole(c *gin.Context) {
	uid := c.Param("id")

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_role",
			"details": "role is required in body",
		})
		return
	}

	if err := h.service.Set(c.Request.Context(), uid, req.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to set role",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"uid": uid, "role": req.Role})
}
