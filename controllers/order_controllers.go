package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/homechef/marketplace-api/middlewares"
	"github.com/homechef/marketplace-api/models"
	"github.com/homechef/marketplace-api/statemachine"
	"github.com/homechef/marketplace-api/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// ListOrders returns the caller's orders: placed orders for consumers,
// received orders for chefs, nothing for anyone else.
func (oc *OrderController) ListOrders(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	query := oc.DB.Preload("Customer").Preload("Chef").Preload("Items")
	switch user.UserType() {
	case models.UserTypeConsumer:
		query = query.Where("customer_id = ?", user.ID)
	case models.UserTypeChef:
		query = query.Where("chef_id = ?", user.ID)
	default:
		utils.RespondJSON(c, http.StatusOK, "Orders", []gin.H{})
		return
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	payload := make([]gin.H, 0, len(orders))
	for i := range orders {
		payload = append(payload, orderListPayload(&orders[i]))
	}
	utils.RespondJSON(c, http.StatusOK, "Orders", payload)
}

// CreateOrder places an order with the given chef. Each item snapshots the
// dish price into unit_price; the total is computed from the snapshots.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user.UserType() != models.UserTypeConsumer {
		utils.RespondError(c, http.StatusForbidden, errors.New("only customers can place orders"))
		return
	}

	type itemRequest struct {
		DishID          uint   `json:"dish_id" binding:"required"`
		Quantity        int    `json:"quantity" binding:"required,min=1"`
		SpecialRequests string `json:"special_requests"`
	}
	var req struct {
		ChefID                uint          `json:"chef_id" binding:"required"`
		DeliveryAddress       string        `json:"delivery_address" binding:"required"`
		DeliveryLongitude     *float64      `json:"delivery_longitude"`
		DeliveryLatitude      *float64      `json:"delivery_latitude"`
		EstimatedDeliveryTime *time.Time    `json:"estimated_delivery_time"`
		SpecialInstructions   string        `json:"special_instructions"`
		Items                 []itemRequest `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var chef models.User
	err := oc.DB.Preload("Chef").First(&chef, req.ChefID).Error
	if err != nil || chef.Chef == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("chef does not exist"))
		return
	}

	seen := make(map[uint]bool, len(req.Items))
	dishes := make([]models.Dish, 0, len(req.Items))
	for _, item := range req.Items {
		if seen[item.DishID] {
			utils.RespondError(c, http.StatusBadRequest, errors.New("each dish can only appear once per order"))
			return
		}
		seen[item.DishID] = true

		var dish models.Dish
		if err := oc.DB.Where("id = ? AND chef_id = ?", item.DishID, chef.ID).First(&dish).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("dish does not exist or does not belong to this chef"))
			return
		}
		dishes = append(dishes, dish)
	}

	order := models.Order{
		CustomerID:            user.ID,
		ChefID:                chef.ID,
		Status:                models.StatusPending,
		DeliveryAddress:       req.DeliveryAddress,
		DeliveryLongitude:     req.DeliveryLongitude,
		DeliveryLatitude:      req.DeliveryLatitude,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		SpecialInstructions:   req.SpecialInstructions,
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for i, item := range req.Items {
			orderItem := models.OrderItem{
				OrderPK:         order.ID,
				DishID:          dishes[i].ID,
				Quantity:        item.Quantity,
				UnitPrice:       dishes[i].Price,
				SpecialRequests: item.SpecialRequests,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			orderItem.Dish = dishes[i]
			order.Items = append(order.Items, orderItem)
			total = total.Add(orderItem.Subtotal())
		}

		order.TotalAmount = total
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_amount", total).Error; err != nil {
			return err
		}

		return tx.Model(&models.Consumer{}).Where("user_id = ?", user.ID).
			UpdateColumn("total_orders", gorm.Expr("total_orders + 1")).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order.Customer = *user
	order.Chef = chef
	utils.InfoLogger.Printf("Order %s placed by user %d with chef %d", order.OrderID, user.ID, chef.ID)
	utils.RespondJSON(c, http.StatusCreated, "Order placed", orderDetailPayload(&order))
}

// scopedOrder looks up an order by its public UUID, restricted to the
// caller's side of it. Unrelated users see a 404.
func (oc *OrderController) scopedOrder(c *gin.Context, user *models.User) (*models.Order, bool) {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return nil, false
	}

	query := oc.DB.Preload("Customer").Preload("Chef").Preload("Items.Dish")
	switch user.UserType() {
	case models.UserTypeConsumer:
		query = query.Where("customer_id = ?", user.ID)
	case models.UserTypeChef:
		query = query.Where("chef_id = ?", user.ID)
	default:
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return nil, false
	}

	var order models.Order
	if err := query.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return nil, false
	}
	return &order, true
}

// GetOrder returns the order detail for its customer or chef.
func (oc *OrderController) GetOrder(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	order, ok := oc.scopedOrder(c, user)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", orderDetailPayload(order))
}

// UpdateOrder changes the order status. The assigned chef may perform any
// transition the workflow table allows; the customer may only cancel while
// the order is still pending or confirmed.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	order, ok := oc.scopedOrder(c, user)
	if !ok {
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if order.ChefID == user.ID {
		if err := statemachine.CanTransition(order.Status, req.Status, statemachine.ActorChef); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	} else {
		if err := statemachine.CanTransition(order.Status, req.Status, statemachine.ActorCustomer); err != nil {
			utils.RespondError(c, http.StatusForbidden, errors.New("you can only cancel pending or confirmed orders"))
			return
		}
	}

	previous := order.Status
	order.Status = req.Status
	if err := oc.DB.Model(order).Update("status", req.Status).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %s: %s -> %s by user %d", order.OrderID, previous, order.Status, user.ID)
	utils.RespondJSON(c, http.StatusOK, "Order updated", orderDetailPayload(order))
}
