package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRoutesAreGated(t *testing.T) {
	ts := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/users"},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/1"},
		{http.MethodPut, "/users/1"},
		{http.MethodDelete, "/users/1"},
	} {
		rec := ts.do(tc.method, tc.path, `{"username":"bob"}`, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestUserRegisterHashesPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "pw", "Alice", "Anders")
	token := ts.token(t, "alice")

	body := `{"username":"bob","email":"bob@example.com","password":"hunter22","first_name":"Bob","last_name":"Brown","date_of_birth":"1990-04-01"}`
	rec := ts.do(http.MethodPost, "/users", body, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	id := uint64(decode(t, rec)["result"].(map[string]any)["user_id"].(float64))
	stored := ts.users.users[id]
	require.NotEqual(t, "hunter22", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
}

func TestUserRegisterValidation(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "pw", "Alice", "Anders")
	token := ts.token(t, "alice")

	rec := ts.do(http.MethodPost, "/users", `{"first_name":"Bob"}`, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errs := decode(t, rec)["errors"].(map[string]any)
	require.Contains(t, errs, "username")
	require.Contains(t, errs, "email")
	require.Contains(t, errs, "password")
}

func TestUserRetrieveHidesPassword(t *testing.T) {
	ts := newTestServer(t)
	uid := ts.seedUser(t, "alice", "pw", "Alice", "Anders")
	token := ts.token(t, "alice")

	rec := ts.do(http.MethodGet, fmt.Sprintf("/users/%d", uid), "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	result := decode(t, rec)["result"].(map[string]any)
	require.Equal(t, "Alice Anders", result["full_name"])
	require.Equal(t, "alice", result["username"])
	require.NotContains(t, result, "password")
	require.NotContains(t, result, "first_name")
}

func TestUserRetrieveMissing(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "pw", "Alice", "Anders")
	token := ts.token(t, "alice")

	rec := ts.do(http.MethodGet, "/users/999", "", token)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found.", decode(t, rec)["message"])
}

func TestUserPartialUpdateRehashesPassword(t *testing.T) {
	ts := newTestServer(t)
	uid := ts.seedUser(t, "alice", "oldpw", "Alice", "Anders")
	token := ts.token(t, "alice")

	rec := ts.do(http.MethodPut, fmt.Sprintf("/users/%d", uid), `{"password":"newpw"}`, token)
	require.Equal(t, http.StatusAccepted, rec.Code)

	stored := ts.users.users[uid]
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpw")))
	// Omitted fields keep their values.
	require.Equal(t, "alice", stored.Username)
	require.Equal(t, "Alice", stored.FirstName)
}

func TestUserUpdateMissingTarget(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "pw", "Alice", "Anders")
	token := ts.token(t, "alice")

	rec := ts.do(http.MethodPut, "/users/999", `{"email":"x@example.com"}`, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "User to update not found.", decode(t, rec)["message"])
}

func TestUserList(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "pw", "Alice", "Anders")
	ts.seedUser(t, "bob", "pw", "Bob", "Brown")
	token := ts.token(t, "alice")

	rec := ts.do(http.MethodGet, "/users", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	result := decode(t, rec)["result"].([]any)
	require.Len(t, result, 2)
	first := result[0].(map[string]any)
	require.Equal(t, "Alice Anders", first["full_name"])
	require.NotContains(t, first, "email")
}

func TestUserCreateHonorsSuppliedID(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "alice", "pw", "Alice", "Anders")
	token := ts.token(t, "alice")

	body := `{"user_id":77,"username":"carol","email":"carol@example.com","password":"pw","first_name":"Carol","last_name":"Clark"}`
	rec := ts.do(http.MethodPost, "/users", body, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, float64(77), decode(t, rec)["result"].(map[string]any)["user_id"])

	_, err := ts.users.Retrieve(context.Background(), 77)
	require.NoError(t, err)
}
