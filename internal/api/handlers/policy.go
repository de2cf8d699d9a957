package handlers

import (
	"net/http"

	"inventory-optimizer/internal/allocator"
	"inventory-optimizer/internal/api/models"

	"github.com/gin-gonic/gin"
)

// PolicyHandler lists the validation policies the server understands.
type PolicyHandler struct {
	active allocator.Policy
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(active allocator.Policy) *PolicyHandler {
	return &PolicyHandler{active: active}
}

// ListPolicies handles GET /api/v1/policies
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	policies := []models.PolicyInfo{
		{
			Name:        string(allocator.PolicyFailFast),
			Description: "Reject the request at the first invalid input, checking candidates in order.",
			Default:     h.active == allocator.PolicyFailFast,
		},
		{
			Name:        string(allocator.PolicyCollectAll),
			Description: "Check every candidate and report all violations in one error message.",
			Default:     h.active == allocator.PolicyCollectAll,
		},
	}
	c.JSON(http.StatusOK, gin.H{"policies": policies})
}
