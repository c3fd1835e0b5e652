package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerconnect/gateway/internal/models"
	"careerconnect/gateway/internal/upstream"
)

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Login exchanges credentials with the upstream, installs the session
// and honors the "next" return state planted by the role gate.
func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.api.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}

	user, err := h.sessions.Login(c.Request.Context(), result.Token, result.User)
	if err != nil {
		h.log.Error().Err(err).Msg("session install failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session_unavailable"})
		return
	}

	if next := localPath(c.Query("next")); next != "" {
		c.Redirect(http.StatusFound, next)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout is safe without an active session.
func (h HandlerSet) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		h.log.Error().Err(err).Msg("logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session_unavailable"})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

type registerRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Role     string `json:"role" form:"role" binding:"required,oneof=job_seeker employer"`
}

func (h HandlerSet) RegisterAccount(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.api.Register(c.Request.Context(), upstream.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		h.writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "registered"})
}

// Home reports the current identity; unauthenticated is a normal
// answer here, not an error.
func (h HandlerSet) Home(c *gin.Context) {
	user := h.sessions.Current()
	c.JSON(http.StatusOK, gin.H{
		"authenticated": user != nil,
		"user":          user,
	})
}

// localPath accepts only same-origin destinations for the post-login
// redirect; anything else is ignored.
func localPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}
