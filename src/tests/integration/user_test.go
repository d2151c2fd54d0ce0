package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freelancenexus/nexus-go/src/models"
)

func TestRegisterAndLogin(t *testing.T) {
	uid, token := registerAndLogin(t, "alice", "CLIENT")
	require.NotZero(t, uid)
	require.NotEmpty(t, token)

	t.Run("duplicate username", func(t *testing.T) {
		reg := map[string]string{
			"username":  "alice",
			"email":     "alice2@example.com",
			"password":  "test-password",
			"full_name": "alice again",
			"role":      "CLIENT",
		}
		doRequest(t, userRouter, "POST", "/register", "", reg, http.StatusConflict)
	})

	t.Run("wrong password", func(t *testing.T) {
		login := map[string]string{"username": "alice", "password": "wrong"}
		doRequest(t, userRouter, "POST", "/login", "", login, http.StatusUnauthorized)
	})

	t.Run("invalid role rejected at the edge", func(t *testing.T) {
		reg := map[string]string{
			"username":  "eve",
			"email":     "eve@example.com",
			"password":  "test-password",
			"full_name": "eve",
			"role":      "ADMIN",
		}
		doRequest(t, userRouter, "POST", "/register", "", reg, http.StatusBadRequest)
	})
}

func TestUserAccess(t *testing.T) {
	uid, token := registerAndLogin(t, "carol", "CLIENT")
	otherUID, _ := registerAndLogin(t, "dave", "FREELANCER")

	t.Run("requires a token", func(t *testing.T) {
		doRequest(t, userRouter, "GET", fmt.Sprintf("/users/%d", uid), "", nil, http.StatusUnauthorized)
	})

	t.Run("reads a profile", func(t *testing.T) {
		resp := doRequest(t, userRouter, "GET", fmt.Sprintf("/users/%d", uid), token, nil, http.StatusOK)

		var user models.User
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &user))
		require.Equal(t, "carol", user.Username)
		require.Empty(t, user.PasswordHash)
	})

	t.Run("updates own profile", func(t *testing.T) {
		body := map[string]string{"full_name": "Carol D."}
		resp := doRequest(t, userRouter, "PUT", fmt.Sprintf("/users/%d", uid), token, body, http.StatusOK)
		require.Contains(t, resp.Body.String(), "Carol D.")
	})

	t.Run("cannot update someone else", func(t *testing.T) {
		body := map[string]string{"full_name": "hijacked"}
		doRequest(t, userRouter, "PUT", fmt.Sprintf("/users/%d", otherUID), token, body, http.StatusForbidden)
	})

	t.Run("user listing is admin only", func(t *testing.T) {
		doRequest(t, userRouter, "GET", "/users", token, nil, http.StatusForbidden)
	})
}
