package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/homechef/marketplace-api/middlewares"
	"github.com/homechef/marketplace-api/models"
	"github.com/homechef/marketplace-api/utils"
)

type DishController struct {
	DB *gorm.DB
}

func NewDishController(db *gorm.DB) *DishController {
	return &DishController{DB: db}
}

// ListDishes is the public catalog: available dishes only, filterable by
// category and price range.
func (dc *DishController) ListDishes(c *gin.Context) {
	query := dc.DB.Model(&models.Dish{}).
		Preload("Chef.Chef").Preload("Category").Preload("Reviews").
		Where("is_available = ?", true)

	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if v, err := decimal.NewFromString(minPrice); err == nil {
			query = query.Where("price >= ?", v)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if v, err := decimal.NewFromString(maxPrice); err == nil {
			query = query.Where("price <= ?", v)
		}
	}

	var dishes []models.Dish
	if err := query.Order("name").Find(&dishes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	payload := make([]gin.H, 0, len(dishes))
	for i := range dishes {
		payload = append(payload, dishListPayload(&dishes[i]))
	}
	utils.RespondJSON(c, http.StatusOK, "Dishes", payload)
}

// GetDishByID is the public detail view with nested images, reviews and
// variety sections.
func (dc *DishController) GetDishByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("dish_id"))

	var dish models.Dish
	err := dc.DB.
		Preload("Chef.Chef").Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary desc, created_at")
		}).
		Preload("Reviews.Customer.Consumer").
		Preload("VarietySections.Options").
		First(&dish, id).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("dish not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dish detail", dishDetailPayload(&dish))
}

// ListChefDishes lists the caller's own dishes. Non-chefs get an empty list.
func (dc *DishController) ListChefDishes(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user.UserType() != models.UserTypeChef {
		utils.RespondJSON(c, http.StatusOK, "Chef dishes", []gin.H{})
		return
	}

	var dishes []models.Dish
	err := dc.DB.Preload("Chef.Chef").Preload("Category").Preload("Reviews").
		Where("chef_id = ?", user.ID).Order("name").Find(&dishes).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	payload := make([]gin.H, 0, len(dishes))
	for i := range dishes {
		payload = append(payload, dishListPayload(&dishes[i]))
	}
	utils.RespondJSON(c, http.StatusOK, "Chef dishes", payload)
}

type dishImageRequest struct {
	ImageURL  string `json:"image_url" binding:"required"`
	IsPrimary bool   `json:"is_primary"`
}

// CreateDish adds a dish owned by the authenticated chef. Dish names are
// unique per chef.
func (dc *DishController) CreateDish(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user.UserType() != models.UserTypeChef {
		utils.RespondError(c, http.StatusForbidden, errors.New("only chefs can create dishes"))
		return
	}

	var req struct {
		Name            string             `json:"name" binding:"required"`
		Description     string             `json:"description" binding:"required"`
		CategoryID      uint               `json:"category_id" binding:"required"`
		Price           decimal.Decimal    `json:"price" binding:"required"`
		PreparationTime int                `json:"preparation_time" binding:"required,min=1"`
		IsAvailable     *bool              `json:"is_available"`
		Images          []dishImageRequest `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.Category
	if err := dc.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category does not exist"))
		return
	}

	var count int64
	dc.DB.Model(&models.Dish{}).Where("chef_id = ? AND name = ?", user.ID, req.Name).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("you already have a dish with this name"))
		return
	}

	dish := models.Dish{
		ChefID:          user.ID,
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		Price:           req.Price,
		PreparationTime: req.PreparationTime,
		IsAvailable:     true,
	}
	if req.IsAvailable != nil {
		dish.IsAvailable = *req.IsAvailable
	}

	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dish).Error; err != nil {
			return err
		}
		for _, img := range req.Images {
			image := models.DishImage{
				DishID:    dish.ID,
				ImageURL:  img.ImageURL,
				IsPrimary: img.IsPrimary,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
			dish.Images = append(dish.Images, image)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dish.Chef = *user
	dish.Category = category
	utils.InfoLogger.Printf("Chef %d created dish %q", user.ID, dish.Name)
	utils.RespondJSON(c, http.StatusCreated, "Dish created", dishDetailPayload(&dish))
}

// chefScopedDish restricts lookups to the caller's own dishes.
func (dc *DishController) chefScopedDish(c *gin.Context, user *models.User) (*models.Dish, bool) {
	id, _ := strconv.Atoi(c.Param("dish_id"))

	var dish models.Dish
	err := dc.DB.
		Preload("Chef.Chef").Preload("Category").
		Preload("Images").Preload("Reviews.Customer.Consumer").
		Preload("VarietySections.Options").
		Where("id = ? AND chef_id = ?", id, user.ID).
		First(&dish).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("dish not found"))
		return nil, false
	}
	return &dish, true
}

// GetChefDish returns one of the caller's dishes.
func (dc *DishController) GetChefDish(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	dish, ok := dc.chefScopedDish(c, user)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish detail", dishDetailPayload(dish))
}

// UpdateDish applies partial updates to one of the caller's dishes.
func (dc *DishController) UpdateDish(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	dish, ok := dc.chefScopedDish(c, user)
	if !ok {
		return
	}

	var req struct {
		Name            *string             `json:"name"`
		Description     *string             `json:"description"`
		CategoryID      *uint               `json:"category_id"`
		Price           *decimal.Decimal    `json:"price"`
		PreparationTime *int                `json:"preparation_time"`
		IsAvailable     *bool               `json:"is_available"`
		Images          *[]dishImageRequest `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil && *req.Name != dish.Name {
		var count int64
		dc.DB.Model(&models.Dish{}).Where("chef_id = ? AND name = ?", user.ID, *req.Name).Count(&count)
		if count > 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("you already have a dish with this name"))
			return
		}
		dish.Name = *req.Name
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := dc.DB.First(&category, *req.CategoryID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("category does not exist"))
			return
		}
		dish.CategoryID = *req.CategoryID
		dish.Category = category
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if req.PreparationTime != nil {
		dish.PreparationTime = *req.PreparationTime
	}
	if req.IsAvailable != nil {
		dish.IsAvailable = *req.IsAvailable
	}

	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(dish).Error; err != nil {
			return err
		}
		if req.Images == nil {
			return nil
		}
		// Replace the image set wholesale.
		if err := tx.Where("dish_id = ?", dish.ID).Delete(&models.DishImage{}).Error; err != nil {
			return err
		}
		dish.Images = dish.Images[:0]
		for _, img := range *req.Images {
			image := models.DishImage{
				DishID:    dish.ID,
				ImageURL:  img.ImageURL,
				IsPrimary: img.IsPrimary,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
			dish.Images = append(dish.Images, image)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dish updated", dishDetailPayload(dish))
}

// DeleteDish removes one of the caller's dishes.
func (dc *DishController) DeleteDish(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	dish, ok := dc.chefScopedDish(c, user)
	if !ok {
		return
	}

	if err := dc.DB.Delete(dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish deleted", gin.H{"dish_id": dish.ID})
}
