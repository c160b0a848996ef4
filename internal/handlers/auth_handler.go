package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshpatel5/Event-Ticket-System/internal/helpers"
	"github.com/harshpatel5/Event-Ticket-System/internal/middleware"
	"github.com/harshpatel5/Event-Ticket-System/internal/models"
	"github.com/harshpatel5/Event-Ticket-System/internal/session"
)

func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}

	if err := client.Register(c.Request.Context(), req); err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully."})
}

// Login proxies credentials upstream and, on success, returns the bearer
// token together with the profile fetched with it, so clients need a single
// round trip instead of login-then-me.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}

	res, err := client.Login(c.Request.Context(), req)
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	user, err := client.Me(c.Request.Context(), session.Session{Token: res.Token})
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": res.Token,
		"user":  user,
	})
}

// Me returns the current profile from the upstream. A stale token surfaces as
// the upstream's 401, which is the caller's cue to clear its session copy.
func Me(c *gin.Context) {
	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}

	user, err := client.Me(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
