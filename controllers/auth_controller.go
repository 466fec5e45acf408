package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/middleware"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
	"github.com/DavidBatoDev/pup-alumni-portal-server/utils"
)

type registerReq struct {
	FirstName string `json:"first_name" binding:"required,min=1"`
	LastName  string `json:"last_name" binding:"required,min=1"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

func Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	var count int64
	config.DB.Model(&models.Alumni{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Email already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to hash password"})
		return
	}

	alumni := models.Alumni{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hash,
	}
	if err := config.DB.Create(&alumni).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": alumni})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	var alumni models.Alumni
	if err := config.DB.Where("email = ?", req.Email).First(&alumni).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}
	if !utils.CheckPassword(alumni.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(strconv.FormatUint(uint64(alumni.ID), 10), alumni.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token":  token,
			"alumni": alumni,
		},
	})
}

func Me(c *gin.Context) {
	alumni := currentAlumni(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": alumni})
}

// currentAlumni returns the account AuthJWT stored in the request context.
func currentAlumni(c *gin.Context) models.Alumni {
	return c.MustGet(middleware.CtxAlumni).(models.Alumni)
}
