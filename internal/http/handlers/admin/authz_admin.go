package admin

import (
	"strconv"

	"github.com/finotty/duqueLoja/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListAuthzRoles lists known roles
func (h *Handler) ListAuthzRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.authz_failed", err)
		return
	}
	response.Success(c, gin.H{"roles": roles})
}

// AuthzRoleRequest role creation request
type AuthzRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// CreateAuthzRole ensures a role exists
func (h *Handler) CreateAuthzRole(c *gin.Context) {
	var req AuthzRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	role, err := h.AuthzService.EnsureRole(req.Role)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.authz_role_invalid", err)
		return
	}
	response.Success(c, gin.H{"role": role})
}

// AuthzPolicyRequest policy grant/revoke request
type AuthzPolicyRequest struct {
	Role   string `json:"role" binding:"required"`
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// GrantAuthzPolicy grants a policy to a role
func (h *Handler) GrantAuthzPolicy(c *gin.Context) {
	var req AuthzPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.AuthzService.GrantRolePolicy(req.Role, req.Object, req.Action); err != nil {
		respondError(c, response.CodeInternal, "error.authz_failed", err)
		return
	}
	response.Success(c, gin.H{"granted": true})
}

// RevokeAuthzPolicy revokes a policy from a role
func (h *Handler) RevokeAuthzPolicy(c *gin.Context) {
	var req AuthzPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.AuthzService.RevokeRolePolicy(req.Role, req.Object, req.Action); err != nil {
		respondError(c, response.CodeInternal, "error.authz_failed", err)
		return
	}
	response.Success(c, gin.H{"revoked": true})
}

// GetAuthzRolePolicies lists a role's policies
func (h *Handler) GetAuthzRolePolicies(c *gin.Context) {
	policies, err := h.AuthzService.GetRolePolicies(c.Param("role"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.authz_role_invalid", err)
		return
	}
	response.Success(c, gin.H{"policies": policies})
}

// GetAuthzAdminRoles lists an operator's roles
func (h *Handler) GetAuthzAdminRoles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	roles, err := h.AuthzService.GetAdminRoles(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "error.authz_failed", err)
		return
	}
	response.Success(c, gin.H{"roles": roles})
}

// SetAuthzAdminRolesRequest role assignment request
type SetAuthzAdminRolesRequest struct {
	Roles []string `json:"roles"`
}

// SetAuthzAdminRoles replaces an operator's role assignments
func (h *Handler) SetAuthzAdminRoles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req SetAuthzAdminRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.AuthzService.SetAdminRoles(uint(id), req.Roles); err != nil {
		respondError(c, response.CodeInternal, "error.authz_failed", err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}
