package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/homechef/marketplace-api/middlewares"
	"github.com/homechef/marketplace-api/models"
	"github.com/homechef/marketplace-api/utils"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// canAccessProfile is the cross-role read/write predicate:
//   - everyone may read and write their own profile
//   - a consumer may read (never write) a chef's profile
//   - a chef may never read a consumer's profile
//   - every other combination is denied
func canAccessProfile(requester, target *models.User, write bool) bool {
	if requester.ID == target.ID {
		return true
	}
	if !write && requester.Consumer != nil && target.Chef != nil {
		return true
	}
	return false
}

func (pc *ProfileController) loadTarget(c *gin.Context) (*models.User, bool) {
	userID, _ := strconv.Atoi(c.Param("user_id"))

	var target models.User
	err := pc.DB.Preload("Chef").Preload("Consumer").First(&target, userID).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return nil, false
	}
	return &target, true
}

// GetProfile returns the target user's type-specific profile.
func (pc *ProfileController) GetProfile(c *gin.Context) {
	requester := middlewares.CurrentUser(c)
	target, ok := pc.loadTarget(c)
	if !ok {
		return
	}

	if !canAccessProfile(requester, target, false) {
		utils.RespondError(c, http.StatusForbidden, errors.New("you do not have permission to view this profile"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data", profilePayload(target))
}

// UpdateProfile applies partial updates to the user row and its role profile.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	requester := middlewares.CurrentUser(c)
	target, ok := pc.loadTarget(c)
	if !ok {
		return
	}

	if !canAccessProfile(requester, target, true) {
		utils.RespondError(c, http.StatusForbidden, errors.New("you do not have permission to update this profile"))
		return
	}

	var req struct {
		FirstName         *string  `json:"first_name"`
		LastName          *string  `json:"last_name"`
		PhoneNumber       *string  `json:"phone_number"`
		ProfilePictureURL *string  `json:"profile_picture_url"`
		AddressLongitude  *float64 `json:"address_longitude"`
		AddressLatitude   *float64 `json:"address_latitude"`

		// chef fields
		Bio                *string `json:"bio"`
		CuisineSpecialties *string `json:"cuisine_specialties"`

		// consumer fields
		DietaryPreferences *string `json:"dietary_preferences"`
		Allergies          *string `json:"allergies"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.FirstName != nil {
		target.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		target.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		target.PhoneNumber = *req.PhoneNumber
	}
	if req.ProfilePictureURL != nil {
		target.ProfilePictureURL = req.ProfilePictureURL
	}
	if req.AddressLongitude != nil {
		target.AddressLongitude = req.AddressLongitude
	}
	if req.AddressLatitude != nil {
		target.AddressLatitude = req.AddressLatitude
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(target).Error; err != nil {
			return err
		}
		if target.Chef != nil {
			if req.Bio != nil {
				target.Chef.Bio = *req.Bio
			}
			if req.CuisineSpecialties != nil {
				target.Chef.CuisineSpecialties = *req.CuisineSpecialties
			}
			return tx.Save(target.Chef).Error
		}
		if target.Consumer != nil {
			if req.DietaryPreferences != nil {
				target.Consumer.DietaryPreferences = *req.DietaryPreferences
			}
			if req.Allergies != nil {
				target.Consumer.Allergies = *req.Allergies
			}
			return tx.Save(target.Consumer).Error
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile updated", profilePayload(target))
}
