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

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GetAllCategories lists every category with its dish count.
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	payload := make([]gin.H, 0, len(categories))
	for i := range categories {
		payload = append(payload, categoryPayload(&categories[i], cc.dishCount(categories[i].ID)))
	}
	utils.RespondJSON(c, http.StatusOK, "All categories", payload)
}

// GetCategoryByID returns one category.
func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var category models.Category
	if err := cc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category detail", categoryPayload(&category, cc.dishCount(category.ID)))
}

// ListChefCategories lists categories that contain the caller's dishes.
func (cc *CategoryController) ListChefCategories(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var categories []models.Category
	err := cc.DB.
		Joins("JOIN dishes ON dishes.category_id = categories.id").
		Where("dishes.chef_id = ?", user.ID).
		Distinct().Order("categories.name").
		Find(&categories).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	payload := make([]gin.H, 0, len(categories))
	for i := range categories {
		payload = append(payload, categoryPayload(&categories[i], cc.dishCount(categories[i].ID)))
	}
	utils.RespondJSON(c, http.StatusOK, "Chef categories", payload)
}

// CreateCategory lets a chef add a category. Names are globally unique.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user.UserType() != models.UserTypeChef {
		utils.RespondError(c, http.StatusForbidden, errors.New("only chefs can create categories"))
		return
	}

	var body struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var count int64
	cc.DB.Model(&models.Category{}).Where("name = ?", body.Name).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category with this name already exists"))
		return
	}

	category := models.Category{Name: body.Name, Description: body.Description}
	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Category created", categoryPayload(&category, 0))
}

// chefScopedCategory restricts lookups to categories containing the chef's dishes.
func (cc *CategoryController) chefScopedCategory(c *gin.Context, user *models.User) (*models.Category, bool) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var category models.Category
	err := cc.DB.
		Joins("JOIN dishes ON dishes.category_id = categories.id").
		Where("categories.id = ? AND dishes.chef_id = ?", id, user.ID).
		First(&category).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return nil, false
	}
	return &category, true
}

// GetChefCategory returns one of the caller's categories.
func (cc *CategoryController) GetChefCategory(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	category, ok := cc.chefScopedCategory(c, user)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category detail", categoryPayload(category, cc.dishCount(category.ID)))
}

// UpdateCategory renames or redescribes one of the caller's categories.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	category, ok := cc.chefScopedCategory(c, user)
	if !ok {
		return
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		category.Name = *body.Name
	}
	if body.Description != nil {
		category.Description = *body.Description
	}

	if err := cc.DB.Save(category).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category updated", categoryPayload(category, cc.dishCount(category.ID)))
}

// DeleteCategory removes one of the caller's categories and, via the cascade,
// the dishes in it.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	category, ok := cc.chefScopedCategory(c, user)
	if !ok {
		return
	}

	if err := cc.DB.Delete(category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": category.ID})
}

func (cc *CategoryController) dishCount(categoryID uint) int64 {
	var count int64
	cc.DB.Model(&models.Dish{}).Where("category_id = ?", categoryID).Count(&count)
	return count
}
