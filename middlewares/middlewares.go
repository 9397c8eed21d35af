package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"superapp/models"
	"superapp/store"

	"github.com/gin-gonic/gin"
)

func Auth(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("token")
		payload, err := ValidateToken(c.Request.Context(), token, s)
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			c.Abort()
			return
		}
		c.Request.Header.Set("payload", payload)
		c.Next()
	}
}

func ValidateToken(ctx context.Context, authorizationHeader string, s *store.Store) (string, error) {
	if !strings.Contains(authorizationHeader, "Bearer") {
		return "", errors.New("invalid-token")
	}
	tokenString := strings.Replace(authorizationHeader, "Bearer ", "", -1)

	var session models.SessionPayload
	if !s.Load(ctx, tokenString, &session) {
		return "", errors.New("session-not-found")
	}

	if session.Email == "" {
		return "", errors.New("empty-payload")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	return string(payload), nil
}
