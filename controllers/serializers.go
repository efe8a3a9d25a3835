package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/homechef/marketplace-api/models"
)

// Payload builders shared by the controllers. Handlers never hand GORM models
// straight to the client; these keep the wire shapes in one place.

func userPayload(u *models.User) gin.H {
	return gin.H{
		"id":                  u.ID,
		"first_name":          u.FirstName,
		"last_name":           u.LastName,
		"email":               u.Email,
		"phone_number":        u.PhoneNumber,
		"profile_picture_url": u.ProfilePictureURL,
		"address_longitude":   u.AddressLongitude,
		"address_latitude":    u.AddressLatitude,
		"is_active":           u.IsActive,
		"user_type":           u.UserType(),
		"created_at":          u.CreatedAt,
		"updated_at":          u.UpdatedAt,
	}
}

func chefPayload(chef *models.Chef, u *models.User) gin.H {
	return gin.H{
		"id":                  chef.ID,
		"user":                userPayload(u),
		"bio":                 chef.Bio,
		"cuisine_specialties": chef.CuisineSpecialties,
		"rating":              chef.Rating,
		"total_reviews":       chef.TotalReviews,
		"is_verified":         chef.IsVerified,
		"created_at":          chef.CreatedAt,
	}
}

func consumerPayload(consumer *models.Consumer, u *models.User) gin.H {
	return gin.H{
		"id":                  consumer.ID,
		"user":                userPayload(u),
		"dietary_preferences": consumer.DietaryPreferences,
		"allergies":           consumer.Allergies,
		"total_orders":        consumer.TotalOrders,
		"created_at":          consumer.CreatedAt,
	}
}

// profilePayload returns the type-specific profile for a user, or the bare
// user when no role profile exists.
func profilePayload(u *models.User) gin.H {
	switch u.UserType() {
	case models.UserTypeChef:
		return chefPayload(u.Chef, u)
	case models.UserTypeConsumer:
		return consumerPayload(u.Consumer, u)
	}
	return gin.H{"user": userPayload(u)}
}

func categoryPayload(cat *models.Category, dishCount int64) gin.H {
	return gin.H{
		"id":          cat.ID,
		"name":        cat.Name,
		"description": cat.Description,
		"dish_count":  dishCount,
		"created_at":  cat.CreatedAt,
		"updated_at":  cat.UpdatedAt,
	}
}

func dishListPayload(d *models.Dish) gin.H {
	return gin.H{
		"id":               d.ID,
		"name":             d.Name,
		"description":      d.Description,
		"price":            d.Price,
		"is_available":     d.IsAvailable,
		"preparation_time": d.PreparationTime,
		"chef":             userPayload(&d.Chef),
		"category": gin.H{
			"id":   d.Category.ID,
			"name": d.Category.Name,
		},
		"average_rating": d.AverageRating(),
		"created_at":     d.CreatedAt,
		"updated_at":     d.UpdatedAt,
	}
}

func dishDetailPayload(d *models.Dish) gin.H {
	payload := dishListPayload(d)

	images := make([]gin.H, 0, len(d.Images))
	for i := range d.Images {
		img := &d.Images[i]
		images = append(images, gin.H{
			"id":         img.ID,
			"image_url":  img.ImageURL,
			"is_primary": img.IsPrimary,
			"created_at": img.CreatedAt,
		})
	}
	payload["images"] = images

	reviews := make([]gin.H, 0, len(d.Reviews))
	for i := range d.Reviews {
		reviews = append(reviews, reviewPayload(&d.Reviews[i]))
	}
	payload["reviews"] = reviews

	sections := make([]gin.H, 0, len(d.VarietySections))
	for i := range d.VarietySections {
		sections = append(sections, varietySectionPayload(&d.VarietySections[i]))
	}
	payload["variety_sections"] = sections

	return payload
}

func reviewPayload(r *models.DishReview) gin.H {
	return gin.H{
		"id":          r.ID,
		"dish_id":     r.DishID,
		"customer":    userPayload(&r.Customer),
		"rating":      r.Rating,
		"review_text": r.ReviewText,
		"created_at":  r.CreatedAt,
		"updated_at":  r.UpdatedAt,
	}
}

func varietySectionPayload(s *models.DishVarietySection) gin.H {
	options := make([]gin.H, 0, len(s.Options))
	for i := range s.Options {
		options = append(options, varietyOptionPayload(&s.Options[i]))
	}
	return gin.H{
		"id":          s.ID,
		"dish_id":     s.DishID,
		"name":        s.Name,
		"description": s.Description,
		"is_required": s.IsRequired,
		"options":     options,
		"created_at":  s.CreatedAt,
		"updated_at":  s.UpdatedAt,
	}
}

func varietyOptionPayload(o *models.DishVarietyOption) gin.H {
	return gin.H{
		"id":               o.ID,
		"section_id":       o.SectionID,
		"name":             o.Name,
		"price_adjustment": o.PriceAdjustment,
		"is_available":     o.IsAvailable,
		"created_at":       o.CreatedAt,
		"updated_at":       o.UpdatedAt,
	}
}

func orderListPayload(o *models.Order) gin.H {
	return gin.H{
		"order_id":      o.OrderID,
		"customer_name": o.Customer.FullName(),
		"chef_name":     o.Chef.FullName(),
		"status":        o.Status,
		"total_amount":  o.TotalAmount,
		"created_at":    o.CreatedAt,
		"items_count":   len(o.Items),
	}
}

func orderDetailPayload(o *models.Order) gin.H {
	items := make([]gin.H, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, gin.H{
			"id":               item.ID,
			"dish_id":          item.DishID,
			"dish_name":        item.Dish.Name,
			"dish_description": item.Dish.Description,
			"dish_price":       item.Dish.Price,
			"quantity":         item.Quantity,
			"unit_price":       item.UnitPrice,
			"special_requests": item.SpecialRequests,
		})
	}
	return gin.H{
		"order_id":                o.OrderID,
		"customer_id":             o.CustomerID,
		"customer_name":           o.Customer.FullName(),
		"chef_id":                 o.ChefID,
		"chef_name":               o.Chef.FullName(),
		"status":                  o.Status,
		"total_amount":            o.TotalAmount,
		"delivery_address":        o.DeliveryAddress,
		"delivery_longitude":      o.DeliveryLongitude,
		"delivery_latitude":       o.DeliveryLatitude,
		"estimated_delivery_time": o.EstimatedDeliveryTime,
		"special_instructions":    o.SpecialInstructions,
		"items":                   items,
		"created_at":              o.CreatedAt,
		"updated_at":              o.UpdatedAt,
	}
}
