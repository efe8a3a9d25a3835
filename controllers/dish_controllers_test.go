package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homechef/marketplace-api/models"
)

func TestCreateDishChefOnly(t *testing.T) {
	_, r := setupTest(t)
	_, consumerToken := newConsumer(t, r, "amy@example.com", "08111111111")

	w := doJSON(r, http.MethodPost, "/dishes/chef", consumerToken, gin.H{
		"name":             "Pad Thai",
		"description":      "Noodles",
		"category_id":      1,
		"price":            "11.00",
		"preparation_time": 30,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateDishUnknownCategory(t *testing.T) {
	_, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")

	w := doJSON(r, http.MethodPost, "/dishes/chef", chefToken, gin.H{
		"name":             "Pad Thai",
		"description":      "Noodles",
		"category_id":      9999,
		"price":            "11.00",
		"preparation_time": 30,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDishNamesUniquePerChef(t *testing.T) {
	_, r := setupTest(t)
	_, firstToken := newChef(t, r, "one@example.com", "08111111111")
	_, secondToken := newChef(t, r, "two@example.com", "08122222222")
	catID := createCategory(t, r, firstToken, "Mains")

	createDish(t, r, firstToken, catID, "Pad Thai", "11.00")

	w := doJSON(r, http.MethodPost, "/dishes/chef", firstToken, gin.H{
		"name":             "Pad Thai",
		"description":      "Noodles again",
		"category_id":      catID,
		"price":            "12.00",
		"preparation_time": 25,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A different chef can reuse the name.
	createDish(t, r, secondToken, catID, "Pad Thai", "10.00")
}

func TestPublicListingHidesUnavailableDishes(t *testing.T) {
	_, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	catID := createCategory(t, r, chefToken, "Mains")
	createDish(t, r, chefToken, catID, "Pad Thai", "11.00")
	hidden := createDish(t, r, chefToken, catID, "Sold Out Special", "9.00")

	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/dishes/chef/%d", hidden), chefToken, gin.H{
		"is_available": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/dishes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := dataList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Pad Thai", list[0].(map[string]interface{})["name"])

	// The chef still sees it in the management list.
	w = doJSON(r, http.MethodGet, "/dishes/chef", chefToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, w), 2)
}

func TestPublicListingFilters(t *testing.T) {
	_, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	mains := createCategory(t, r, chefToken, "Mains")
	desserts := createCategory(t, r, chefToken, "Desserts")
	createDish(t, r, chefToken, mains, "Pad Thai", "11.00")
	createDish(t, r, chefToken, desserts, "Tiramisu", "8.50")
	createDish(t, r, chefToken, desserts, "Gold Leaf Cake", "80.00")

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/dishes?category=%d", desserts), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, w), 2)

	w = doJSON(r, http.MethodGet, "/dishes?min_price=9&max_price=20", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := dataList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Pad Thai", list[0].(map[string]interface{})["name"])
}

func TestDishDetailIncludesImagesAndAverageRating(t *testing.T) {
	_, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	catID := createCategory(t, r, chefToken, "Mains")

	w := doJSON(r, http.MethodPost, "/dishes/chef", chefToken, gin.H{
		"name":             "Pad Thai",
		"description":      "Noodles",
		"category_id":      catID,
		"price":            "11.00",
		"preparation_time": 30,
		"images": []gin.H{
			{"image_url": "https://img.example.com/1.jpg", "is_primary": true},
			{"image_url": "https://img.example.com/2.jpg"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	dishID := uint(dataObject(t, w)["id"].(float64))

	_, amyToken := newConsumer(t, r, "amy@example.com", "08122222222")
	_, bobToken := newConsumer(t, r, "bob@example.com", "08133333333")
	for token, rating := range map[string]int{amyToken: 5, bobToken: 4} {
		w = doJSON(r, http.MethodPost, fmt.Sprintf("/dishes/%d/reviews", dishID), token, gin.H{
			"rating": rating,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/dishes/%d", dishID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataObject(t, w)
	assert.InDelta(t, 4.5, data["average_rating"].(float64), 0.001)
	images := data["images"].([]interface{})
	require.Len(t, images, 2)
	assert.Equal(t, true, images[0].(map[string]interface{})["is_primary"])
	assert.Len(t, data["reviews"].([]interface{}), 2)
}

func TestChefDishScoping(t *testing.T) {
	_, r := setupTest(t)
	_, ownerToken := newChef(t, r, "one@example.com", "08111111111")
	_, otherToken := newChef(t, r, "two@example.com", "08122222222")
	catID := createCategory(t, r, ownerToken, "Mains")
	dishID := createDish(t, r, ownerToken, catID, "Pad Thai", "11.00")

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/dishes/chef/%d", dishID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/dishes/chef/%d", dishID), otherToken, gin.H{
		"price": "1.00",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/dishes/chef/%d", dishID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateDishPartial(t *testing.T) {
	db, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	catID := createCategory(t, r, chefToken, "Mains")
	dishID := createDish(t, r, chefToken, catID, "Pad Thai", "11.00")

	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/dishes/chef/%d", dishID), chefToken, gin.H{
		"price": "12.50",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := dataObject(t, w)
	assert.Equal(t, "Pad Thai", data["name"])

	var dish models.Dish
	require.NoError(t, db.First(&dish, dishID).Error)
	assert.True(t, dish.Price.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, "A test dish", dish.Description)
}

func TestDeleteDish(t *testing.T) {
	db, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	catID := createCategory(t, r, chefToken, "Mains")
	dishID := createDish(t, r, chefToken, catID, "Pad Thai", "11.00")

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/dishes/chef/%d", dishID), chefToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Dish{}).Where("id = ?", dishID).Count(&count)
	assert.Zero(t, count)
}
