package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerCanReadChefProfile(t *testing.T) {
	_, r := setupTest(t)
	chefID, _ := newChef(t, r, "chef@example.com", "08111111111")
	_, consumerToken := newConsumer(t, r, "amy@example.com", "08122222222")

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/auth/profile/%d", chefID), consumerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := dataObject(t, w)
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "chef", user["user_type"])
}

func TestChefCannotReadConsumerProfile(t *testing.T) {
	_, r := setupTest(t)
	_, chefToken := newChef(t, r, "chef@example.com", "08111111111")
	consumerID, _ := newConsumer(t, r, "amy@example.com", "08122222222")

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/auth/profile/%d", consumerID), chefToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChefCannotReadAnotherChefProfile(t *testing.T) {
	_, r := setupTest(t)
	_, firstToken := newChef(t, r, "one@example.com", "08111111111")
	otherID, _ := newChef(t, r, "two@example.com", "08122222222")

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/auth/profile/%d", otherID), firstToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestConsumerCannotWriteChefProfile(t *testing.T) {
	_, r := setupTest(t)
	chefID, _ := newChef(t, r, "chef@example.com", "08111111111")
	_, consumerToken := newConsumer(t, r, "amy@example.com", "08122222222")

	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/auth/profile/%d", chefID), consumerToken, gin.H{
		"bio": "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateOwnProfile(t *testing.T) {
	_, r := setupTest(t)
	chefID, chefToken := newChef(t, r, "chef@example.com", "08111111111")

	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/auth/profile/%d", chefID), chefToken, gin.H{
		"first_name":          "Renamed",
		"bio":                 "Twenty years of home cooking",
		"cuisine_specialties": "Italian, Thai",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := dataObject(t, w)
	assert.Equal(t, "Twenty years of home cooking", data["bio"])
	assert.Equal(t, "Italian, Thai", data["cuisine_specialties"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Renamed", user["first_name"])

	// Untouched fields survive a partial update.
	assert.Equal(t, "User", user["last_name"])
}

func TestProfileNotFound(t *testing.T) {
	_, r := setupTest(t)
	_, token := newConsumer(t, r, "amy@example.com", "08111111111")

	w := doJSON(r, http.MethodGet, "/auth/profile/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
