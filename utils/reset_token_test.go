package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homechef/marketplace-api/models"
	"github.com/homechef/marketplace-api/utils"
)

func TestResetTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 7, Password: "bcrypt-hash-a"}

	token, err := utils.MakeResetToken(user)
	require.NoError(t, err)
	assert.NoError(t, utils.CheckResetToken(user, token))
}

func TestResetTokenDiesWithPasswordChange(t *testing.T) {
	user := &models.User{ID: 7, Password: "bcrypt-hash-a"}

	token, err := utils.MakeResetToken(user)
	require.NoError(t, err)

	user.Password = "bcrypt-hash-b"
	assert.Error(t, utils.CheckResetToken(user, token))
}

func TestResetTokenBoundToUser(t *testing.T) {
	alice := &models.User{ID: 1, Password: "same-hash"}
	bob := &models.User{ID: 2, Password: "same-hash"}

	token, err := utils.MakeResetToken(alice)
	require.NoError(t, err)
	assert.Error(t, utils.CheckResetToken(bob, token))
}

func TestUIDEncoding(t *testing.T) {
	id, err := utils.DecodeUID(utils.EncodeUID(42))
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = utils.DecodeUID("!!not-base64!!")
	assert.Error(t, err)

	_, err = utils.DecodeUID(utils.EncodeUID(0))
	assert.NoError(t, err)
}
