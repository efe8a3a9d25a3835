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

type CardController struct {
	DB *gorm.DB
}

func NewCardController(db *gorm.DB) *CardController {
	return &CardController{DB: db}
}

// CreateCard stores a card keeping only the last four digits. Adding the
// first card marks the account active.
func (cc *CardController) CreateCard(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var req struct {
		CardNumber     string `json:"card_number" binding:"required,min=12,max=19"`
		CardholderName string `json:"cardholder_name" binding:"required"`
		ExpMonth       int    `json:"exp_month" binding:"required,min=1,max=12"`
		ExpYear        int    `json:"exp_year" binding:"required"`
		IsDefault      bool   `json:"is_default"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	card := models.PaymentCard{
		UserID:         user.ID,
		CardLast4:      req.CardNumber[len(req.CardNumber)-4:],
		CardholderName: req.CardholderName,
		ExpMonth:       req.ExpMonth,
		ExpYear:        req.ExpYear,
		IsDefault:      req.IsDefault,
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&card).Error; err != nil {
			return err
		}
		if !user.IsActive {
			return tx.Model(&models.User{}).Where("id = ?", user.ID).
				Update("is_active", true).Error
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Card added", gin.H{"card": card})
}

// ListCards returns the caller's cards.
func (cc *CardController) ListCards(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	cards := make([]models.PaymentCard, 0)
	if err := cc.DB.Where("user_id = ?", user.ID).Order("is_default desc, created_at").Find(&cards).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment cards", cards)
}

// DeleteCard removes one of the caller's cards. Removing the last card marks
// the account inactive again.
func (cc *CardController) DeleteCard(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	cardID, _ := strconv.Atoi(c.Param("card_id"))

	var card models.PaymentCard
	if err := cc.DB.Where("id = ? AND user_id = ?", cardID, user.ID).First(&card).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("card not found"))
		return
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&card).Error; err != nil {
			return err
		}
		var remaining int64
		if err := tx.Model(&models.PaymentCard{}).Where("user_id = ?", user.ID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Model(&models.User{}).Where("id = ?", user.ID).
				Update("is_active", false).Error
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Card deleted", gin.H{"card_id": card.ID})
}
