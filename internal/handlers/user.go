package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"contactbook/internal/models"
	"contactbook/internal/store"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=100"`
	Name     string `json:"name" binding:"required,max=100"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=100"`
}

type updateUserRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`
	Password string `json:"password" binding:"omitempty,max=100"`
}

// userResponse carries the session token only while one is live, which is
// how a client learns its credential at login.
func userResponse(user *models.User) gin.H {
	resp := gin.H{
		"username": user.Username,
		"name":     user.Name,
	}
	if user.Token != "" {
		resp["token"] = user.Token
	}
	return resp
}

func Register(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if !bindJSON(c, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondInternal(c, "USER", err)
			return
		}

		// Uniqueness is the store's call: the insert itself reports a taken
		// username, so concurrent registrations cannot slip past a pre-check.
		user := &models.User{
			Username: req.Username,
			Password: string(hash),
			Name:     req.Name,
		}
		if err := st.Users.Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				log.Println("[USER] [ERROR] register username taken:", req.Username)
				respondErrors(c, http.StatusBadRequest, gin.H{
					"username": []string{"The username has already been taken."},
				})
				return
			}
			respondInternal(c, "USER", err)
			return
		}

		log.Println("[USER] [INFO] registered:", user.Username)
		respondData(c, http.StatusCreated, userResponse(user))
	}
}

func Login(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !bindJSON(c, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		// Unknown username and wrong password answer identically so the
		// response is not a user-existence oracle.
		user, err := st.Users.FindByUsername(ctx, req.Username)
		if errors.Is(err, store.ErrNotFound) {
			respondMessage(c, http.StatusUnauthorized, "Username or password wrong.")
			return
		}
		if err != nil {
			respondInternal(c, "USER", err)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			respondMessage(c, http.StatusUnauthorized, "Username or password wrong.")
			return
		}

		token, err := newSessionToken()
		if err != nil {
			respondInternal(c, "USER", err)
			return
		}
		user.Token = token
		if err := st.Users.Update(ctx, user); err != nil {
			respondInternal(c, "USER", err)
			return
		}

		log.Println("[USER] [INFO] login succeeded:", user.Username)
		respondData(c, http.StatusOK, userResponse(user))
	}
}

func GetCurrentUser(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		respondData(c, http.StatusOK, userResponse(user))
	}
}

func UpdateCurrentUser(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req updateUserRequest
		if !bindJSON(c, &req) {
			return
		}

		if req.Name != "" {
			user.Name = req.Name
		}
		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				respondInternal(c, "USER", err)
				return
			}
			user.Password = string(hash)
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := st.Users.Update(ctx, user); err != nil {
			respondInternal(c, "USER", err)
			return
		}

		log.Println("[USER] [INFO] updated:", user.Username)
		respondData(c, http.StatusOK, userResponse(user))
	}
}

func Logout(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		user.Token = ""
		if err := st.Users.Update(ctx, user); err != nil {
			respondInternal(c, "USER", err)
			return
		}

		log.Println("[USER] [INFO] logged out:", user.Username)
		respondData(c, http.StatusOK, true)
	}
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
