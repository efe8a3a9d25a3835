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

// VarietyController manages the two-level option groups on a dish. Writes are
// restricted to the dish's own chef; ownership flows through the dish.
type VarietyController struct {
	DB *gorm.DB
}

func NewVarietyController(db *gorm.DB) *VarietyController {
	return &VarietyController{DB: db}
}

func (vc *VarietyController) loadDish(c *gin.Context) (*models.Dish, bool) {
	dishID, _ := strconv.Atoi(c.Param("dish_id"))

	var dish models.Dish
	if err := vc.DB.First(&dish, dishID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("dish not found"))
		return nil, false
	}
	return &dish, true
}

func (vc *VarietyController) requireOwner(c *gin.Context, dish *models.Dish) bool {
	user := middlewares.CurrentUser(c)
	if user == nil || user.ID != dish.ChefID {
		utils.RespondError(c, http.StatusForbidden, errors.New("only the dish's chef can manage varieties"))
		return false
	}
	return true
}

func (vc *VarietyController) loadSection(c *gin.Context, dish *models.Dish) (*models.DishVarietySection, bool) {
	sectionID, _ := strconv.Atoi(c.Param("section_id"))

	var section models.DishVarietySection
	err := vc.DB.Preload("Options").
		Where("id = ? AND dish_id = ?", sectionID, dish.ID).
		First(&section).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("variety section not found"))
		return nil, false
	}
	return &section, true
}

func (vc *VarietyController) loadOption(c *gin.Context, section *models.DishVarietySection) (*models.DishVarietyOption, bool) {
	optionID, _ := strconv.Atoi(c.Param("option_id"))

	var option models.DishVarietyOption
	err := vc.DB.Where("id = ? AND section_id = ?", optionID, section.ID).First(&option).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("variety option not found"))
		return nil, false
	}
	return &option, true
}

// ListSections returns all variety sections of a dish with their options.
func (vc *VarietyController) ListSections(c *gin.Context) {
	dish, ok := vc.loadDish(c)
	if !ok {
		return
	}

	var sections []models.DishVarietySection
	err := vc.DB.Preload("Options").
		Where("dish_id = ?", dish.ID).Order("created_at").
		Find(&sections).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	payload := make([]gin.H, 0, len(sections))
	for i := range sections {
		payload = append(payload, varietySectionPayload(&sections[i]))
	}
	utils.RespondJSON(c, http.StatusOK, "Variety sections", payload)
}

// CreateSection adds a variety section. Section names are unique per dish.
func (vc *VarietyController) CreateSection(c *gin.Context) {
	dish, ok := vc.loadDish(c)
	if !ok || !vc.requireOwner(c, dish) {
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		IsRequired  bool   `json:"is_required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var count int64
	vc.DB.Model(&models.DishVarietySection{}).
		Where("dish_id = ? AND name = ?", dish.ID, req.Name).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("this dish already has a section with this name"))
		return
	}

	section := models.DishVarietySection{
		DishID:      dish.ID,
		Name:        req.Name,
		Description: req.Description,
		IsRequired:  req.IsRequired,
	}
	if err := vc.DB.Create(&section).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Variety section created", varietySectionPayload(&section))
}

// GetSection returns one variety section with its options.
func (vc *VarietyController) GetSection(c *gin.Context) {
	dish, ok := vc.loadDish(c)
	if !ok {
		return
	}
	section, ok := vc.loadSection(c, dish)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Variety section detail", varietySectionPayload(section))
}

// UpdateSection applies partial updates to a section.
func (vc *VarietyController) UpdateSection(c *gin.Context) {
	dish, ok := vc.loadDish(c)
	if !ok || !vc.requireOwner(c, dish) {
		return
	}
	section, ok := vc.loadSection(c, dish)
	if !ok {
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		IsRequired  *bool   `json:"is_required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil && *req.Name != section.Name {
		var count int64
		vc.DB.Model(&models.DishVarietySection{}).
			Where("dish_id = ? AND name = ?", dish.ID, *req.Name).Count(&count)
		if count > 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("this dish already has a section with this name"))
			return
		}
		section.Name = *req.Name
	}
	if req.Description != nil {
		section.Description = *req.Description
	}
	if req.IsRequired != nil {
		section.IsRequired = *req.IsRequired
	}

	if err := vc.DB.Save(section).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Variety section updated", varietySectionPayload(section))
}

// DeleteSection removes a section and, via the cascade, its options.
func (vc *VarietyController) DeleteSection(c *gin.Context) {
	dish, ok := vc.loadDish(c)
	if !ok || !vc.requireOwner(c, dish) {
		return
	}
	section, ok := vc.loadSection(c, dish)
	if !ok {
		return
	}

	if err := vc.DB.Delete(section).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Variety section deleted", gin.H{"section_id": section.ID})
}

// ListOptions returns all options in a section.
func (vc *VarietyController) ListOptions(c *gin.Context) {
	dish, ok := vc.loadDish(c)
	if !ok {
		return
	}
	section, ok := vc.loadSection(c, dish)
	if !ok {
		return
	}

	payload := make([]gin.H, 0, len(section.Options))
	for i := range section.Options {
		payload = append(payload, varietyOptionPayload(&section.Options[i]))
	}
	utils.RespondJSON(c, http.StatusOK, "Variety options", payload)
}

// CreateOption adds an option to a section. Option names are unique per section.
func (vc *VarietyController) CreateOption(c *gin.Context) {
	dish, ok := vc.loadDish(c)
	if !ok || !vc.requireOwner(c, dish) {
		return
	}
	section, ok := vc.loadSection(c, dish)
	if !ok {
		return
	}

	var req struct {
		Name            string          `json:"name" binding:"required"`
		PriceAdjustment decimal.Decimal `json:"price_adjustment"`
		IsAvailable     *bool           `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var count int64
	vc.DB.Model(&models.DishVarietyOption{}).
		Where("section_id = ? AND name = ?", section.ID, req.Name).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("this section already has an option with this name"))
		return
	}

	option := models.DishVarietyOption{
		SectionID:       section.ID,
		Name:            req.Name,
		PriceAdjustment: req.PriceAdjustment,
		IsAvailable:     true,
	}
	if req.IsAvailable != nil {
		option.IsAvailable = *req.IsAvailable
	}
	if err := vc.DB.Create(&option).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Variety option created", varietyOptionPayload(&option))
}

// GetOption returns one option.
func (vc *VarietyController) GetOption(c *gin.Context) {
	dish, ok := vc.loadDish(c)
	if !ok {
		return
	}
	section, ok := vc.loadSection(c, dish)
	if !ok {
		return
	}
	option, ok := vc.loadOption(c, section)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Variety option detail", varietyOptionPayload(option))
}

// UpdateOption applies partial updates to an option.
func (vc *VarietyController) UpdateOption(c *gin.Context) {
	dish, ok := vc.loadDish(c)
	if !ok || !vc.requireOwner(c, dish) {
		return
	}
	section, ok := vc.loadSection(c, dish)
	if !ok {
		return
	}
	option, ok := vc.loadOption(c, section)
	if !ok {
		return
	}

	var req struct {
		Name            *string          `json:"name"`
		PriceAdjustment *decimal.Decimal `json:"price_adjustment"`
		IsAvailable     *bool            `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil && *req.Name != option.Name {
		var count int64
		vc.DB.Model(&models.DishVarietyOption{}).
			Where("section_id = ? AND name = ?", section.ID, *req.Name).Count(&count)
		if count > 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("this section already has an option with this name"))
			return
		}
		option.Name = *req.Name
	}
	if req.PriceAdjustment != nil {
		option.PriceAdjustment = *req.PriceAdjustment
	}
	if req.IsAvailable != nil {
		option.IsAvailable = *req.IsAvailable
	}

	if err := vc.DB.Save(option).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Variety option updated", varietyOptionPayload(option))
}

// DeleteOption removes one option.
func (vc *VarietyController) DeleteOption(c *gin.Context) {
	dish, ok := vc.loadDish(c)
	if !ok || !vc.requireOwner(c, dish) {
		return
	}
	section, ok := vc.loadSection(c, dish)
	if !ok {
		return
	}
	option, ok := vc.loadOption(c, section)
	if !ok {
		return
	}

	if err := vc.DB.Delete(option).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Variety option deleted", gin.H{"option_id": option.ID})
}
