package controllers

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"superapp/models"
	"superapp/store"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const sessionTTL = 30 * time.Minute

func (api *API) Authenticate(c *gin.Context) {
	var authRequest models.AuthRequest
	if err := c.ShouldBindJSON(&authRequest); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if authRequest.Email == "" || authRequest.Password == "" {
		sendError(c, http.StatusBadRequest, "missing-email-or-password")
		return
	}

	// the whole gate: no password database behind this
	if !strings.HasSuffix(authRequest.Email, "@gmail.com") {
		sendError(c, http.StatusUnauthorized, "email-must-use-gmail-domain")
		return
	}

	ctx := c.Request.Context()

	var oldToken string
	if api.Store.Load(ctx, "auth:"+authRequest.Email, &oldToken) {
		log.Println("removing old session..")
		if err := api.Store.Remove(ctx, oldToken); err != nil {
			log.Println(err)
		}
	}

	var authResponse models.AuthResponse
	authResponse.Session = models.Session{
		Email:   authRequest.Email,
		LoginAt: time.Now().UTC().Format(time.RFC3339),
	}

	var err error
	authResponse.Token, err = api.GenerateToken(authResponse.Session)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := api.Store.Save(ctx, store.KeyUser, authResponse.Session); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, authResponse)
}

func (api *API) CheckSession(c *gin.Context) {
	u := ParsePayload(c)

	var token string
	if !api.Store.Load(c.Request.Context(), "auth:"+u.Email, &token) {
		sendError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	c.JSON(http.StatusOK, genericOK)
}

func (api *API) Logout(c *gin.Context) {
	u := ParsePayload(c)
	token, _ := c.Cookie("token")
	tokenString := strings.Replace(token, "Bearer ", "", -1)

	ctx := c.Request.Context()
	for _, key := range []string{tokenString, "auth:" + u.Email, store.KeyUser} {
		if err := api.Store.Remove(ctx, key); err != nil {
			log.Println(err)
			sendError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, genericOK)
}

func (api *API) GenerateToken(session models.Session) (string, error) {
	key, err := base64.StdEncoding.DecodeString(os.Getenv("SESSION_KEY"))
	if err != nil {
		log.Println(err)
		return "", err
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = session.Email
	claims["login-at"] = session.LoginAt
	claims["expires"] = int(sessionTTL.Seconds())

	tokenString, err := token.SignedString(key)
	if err != nil {
		log.Println(err)
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload := models.SessionPayload{Session: session}
	if err := api.Store.SaveTTL(ctx, tokenString, payload, sessionTTL); err != nil {
		log.Println(err)
		return "", err
	}
	if err := api.Store.SaveTTL(ctx, "auth:"+session.Email, tokenString, sessionTTL); err != nil {
		log.Println(err)
		return "", err
	}

	return "Bearer " + tokenString, nil
}
