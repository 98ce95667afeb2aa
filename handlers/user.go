package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves user listing, registration, role checks and token
// issuance.
type UserHandler struct {
	Users user.UserService
}

func NewUserHandler(users user.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// IssueJWT returns an access token for a registered email. An unknown or
// missing email yields an empty token, not an error, so the client can move
// on to registration.
func (h *UserHandler) IssueJWT(c *gin.Context) {
	email := c.Query("email")
	token, err := h.Users.IssueToken(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// GetUsers lists every registered user.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Users.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser registers a new account.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user payload", err.Error())
		return
	}

	created, err := h.Users.Create(c.Request.Context(), u)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// CheckAdmin reports whether the given email resolves to the admin role.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	role, err := h.Users.ResolveRole(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": role == models.RoleAdmin})
}

// PromoteAdmin upserts the admin role onto the given user id. Promotion is
// idempotent; a nonexistent id creates a role-only record.
func (h *UserHandler) PromoteAdmin(c *gin.Context) {
	id := c.Param("id")
	matched, err := h.Users.PromoteToAdmin(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to promote user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "matchedExisting": matched})
}
