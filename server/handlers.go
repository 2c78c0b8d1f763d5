package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tailored-agentic-units/chatbot/core/chat"
	"github.com/tailored-agentic-units/chatbot/history"
	"github.com/tailored-agentic-units/chatbot/users"
)

const apiVersion = "1.0.0"

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "chatbot",
		"version": apiVersion,
		"endpoints": gin.H{
			"chat":     "/chat",
			"sessions": "/sessions",
			"users":    "/users",
			"health":   "/health",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

type chatRequest struct {
	Message     string `json:"message" binding:"required"`
	DisplayName string `json:"display_name"`
	SessionID   string `json:"session_id"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.engine.Chat(c.Request.Context(), chat.Request{
		Message:     req.Message,
		DisplayName: req.DisplayName,
		SessionID:   req.SessionID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSessions(c *gin.Context) {
	ids, err := s.engine.Sessions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": ids})
}

func (s *Server) handleHistory(c *gin.Context) {
	sessionID := c.Param("session_id")

	exchanges, err := s.engine.History(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, history.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("session %q not found", sessionID),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, exchanges)
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

func (s *Server) handleCreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.registry.Create(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (s *Server) handleListUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	list, err := s.registry.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleGetUser(c *gin.Context) {
	userID := c.Param("user_id")

	user, err := s.registry.Get(c.Request.Context(), userID)
	if err != nil {
		s.writeUserError(c, userID, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

func (s *Server) handleUpdateUser(c *gin.Context) {
	userID := c.Param("user_id")

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.registry.ApplyUpdate(c.Request.Context(), userID, users.Update{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		s.writeUserError(c, userID, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleDeleteUser(c *gin.Context) {
	userID := c.Param("user_id")

	if err := s.registry.Delete(c.Request.Context(), userID); err != nil {
		s.writeUserError(c, userID, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) writeUserError(c *gin.Context, userID string, err error) {
	if errors.Is(err, users.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("user %q not found", userID),
		})
		return
	}
	if errors.Is(err, users.ErrEmptyUsername) || errors.Is(err, users.ErrEmptyEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
