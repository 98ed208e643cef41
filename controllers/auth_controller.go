package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"github.com/surveyforge/question-server/config"
	"github.com/surveyforge/question-server/middleware"
	"github.com/surveyforge/question-server/models"
	"github.com/surveyforge/question-server/utils"
)

type registerReq struct {
	Username string `json:"username" binding:"required,min=1"`
	Nickname string `json:"nickname"`
	Password string `json:"password" binding:"required,min=6"`
}

func Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Username already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot hash password"})
		return
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Username
	}
	user := models.User{
		Username: req.Username,
		Nickname: nickname,
		Password: hash,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"nickname":   user.Nickname,
			"created_at": user.CreatedAt,
		},
	})
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	token, err := utils.GenerateToken(strconv.FormatUint(uint64(user.ID), 10), user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

type googleLoginReq struct {
	Credential string `json:"credential" binding:"required"`
}

// GoogleLogin verifies a Google ID token and signs the user in, provisioning
// an account on first use. The email claim doubles as the username.
func GoogleLogin(c *gin.Context) {
	var req googleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Google sign-in is not configured"})
		return
	}

	payload, err := idtoken.Validate(c.Request.Context(), req.Credential, clientID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Google credential"})
		return
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Google credential has no email"})
		return
	}
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}

	var user models.User
	err = config.DB.Where("username = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First sign-in: provision the account with an unusable password.
		seed, terr := utils.RandomToken()
		if terr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot create account"})
			return
		}
		hash, herr := utils.HashPassword(seed)
		if herr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot create account"})
			return
		}
		user = models.User{Username: email, Nickname: name, Password: hash}
		if cerr := config.DB.Create(&user).Error; cerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot create account"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot load account"})
		return
	}

	token, err := utils.GenerateToken(strconv.FormatUint(uint64(user.ID), 10), user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Cannot issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// UserInfo returns the authenticated user's public profile.
func UserInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": c.MustGet(middleware.CtxUserPublic)})
}
