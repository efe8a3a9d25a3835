package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	_, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	catID := createCategory(t, r, chefToken, "Mains")
	dishID := createDish(t, r, chefToken, catID, "Pad Thai", "11.00")
	_, amyToken := newConsumer(t, r, "amy@example.com", "08122222222")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/dishes/%d/reviews", dishID), amyToken, gin.H{
		"rating":      5,
		"review_text": "Best noodles in town",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := dataObject(t, w)
	assert.EqualValues(t, 5, data["rating"])
	assert.Equal(t, "Best noodles in town", data["review_text"])
}

func TestOneReviewPerCustomerPerDish(t *testing.T) {
	_, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	catID := createCategory(t, r, chefToken, "Mains")
	dishID := createDish(t, r, chefToken, catID, "Pad Thai", "11.00")
	_, amyToken := newConsumer(t, r, "amy@example.com", "08122222222")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/dishes/%d/reviews", dishID), amyToken, gin.H{
		"rating": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/dishes/%d/reviews", dishID), amyToken, gin.H{
		"rating": 3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, parseBody(t, w)["message"], "already reviewed")
}

func TestChefCannotReview(t *testing.T) {
	_, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	catID := createCategory(t, r, chefToken, "Mains")
	dishID := createDish(t, r, chefToken, catID, "Pad Thai", "11.00")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/dishes/%d/reviews", dishID), chefToken, gin.H{
		"rating": 5,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReviewRatingRange(t *testing.T) {
	_, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	catID := createCategory(t, r, chefToken, "Mains")
	dishID := createDish(t, r, chefToken, catID, "Pad Thai", "11.00")
	_, amyToken := newConsumer(t, r, "amy@example.com", "08122222222")

	for _, rating := range []int{0, 6, -1} {
		w := doJSON(r, http.MethodPost, fmt.Sprintf("/dishes/%d/reviews", dishID), amyToken, gin.H{
			"rating": rating,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
	}
}

func TestReviewMissingDish(t *testing.T) {
	_, r := setupTest(t)
	_, amyToken := newConsumer(t, r, "amy@example.com", "08111111111")

	w := doJSON(r, http.MethodPost, "/dishes/9999/reviews", amyToken, gin.H{
		"rating": 5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/dishes/9999/reviews", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReviewsIsPublic(t *testing.T) {
	_, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	catID := createCategory(t, r, chefToken, "Mains")
	dishID := createDish(t, r, chefToken, catID, "Pad Thai", "11.00")
	_, amyToken := newConsumer(t, r, "amy@example.com", "08122222222")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/dishes/%d/reviews", dishID), amyToken, gin.H{
		"rating": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/dishes/%d/reviews", dishID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := dataList(t, w)
	require.Len(t, list, 1)
	customer := list[0].(map[string]interface{})["customer"].(map[string]interface{})
	assert.Equal(t, "consumer", customer["user_type"])
}
