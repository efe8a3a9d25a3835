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

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// ListReviews returns all reviews for a dish, newest first.
func (rc *ReviewController) ListReviews(c *gin.Context) {
	dishID, _ := strconv.Atoi(c.Param("dish_id"))

	var dish models.Dish
	if err := rc.DB.First(&dish, dishID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("dish not found"))
		return
	}

	var reviews []models.DishReview
	err := rc.DB.Preload("Customer.Consumer").
		Where("dish_id = ?", dish.ID).Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	payload := make([]gin.H, 0, len(reviews))
	for i := range reviews {
		payload = append(payload, reviewPayload(&reviews[i]))
	}
	utils.RespondJSON(c, http.StatusOK, "Dish reviews", payload)
}

// CreateReview adds a review. Consumers only; one review per customer per dish.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	dishID, _ := strconv.Atoi(c.Param("dish_id"))

	var dish models.Dish
	if err := rc.DB.First(&dish, dishID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("dish not found"))
		return
	}

	if user.UserType() != models.UserTypeConsumer {
		utils.RespondError(c, http.StatusForbidden, errors.New("only customers can submit reviews"))
		return
	}

	var req struct {
		Rating     int    `json:"rating" binding:"required,min=1,max=5"`
		ReviewText string `json:"review_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var count int64
	rc.DB.Model(&models.DishReview{}).
		Where("dish_id = ? AND customer_id = ?", dish.ID, user.ID).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("you have already reviewed this dish"))
		return
	}

	review := models.DishReview{
		DishID:     dish.ID,
		CustomerID: user.ID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}
	// The composite unique index backs this up under concurrent submissions.
	if err := rc.DB.Create(&review).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("you have already reviewed this dish"))
		return
	}

	review.Customer = *user
	utils.RespondJSON(c, http.StatusCreated, "Review added", reviewPayload(&review))
}
