package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-server/models"
)

func TestGetOrCreateUser_CreatesWithEmptyCart(t *testing.T) {
	f := newFakeStore()
	router := newTestRouter(f)
	token := tokenFor(t, "auth0|new")

	w := performRequest(router, http.MethodPost, "/user",
		`{"id":"auth0|new","full_name":"Ada Lovelace","email":"ada@example.com"}`, token)

	body := requireStatus(t, w, http.StatusOK)
	assert.Equal(t, false, body["error"])
	assert.Equal(t, "User added successfully", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "auth0|new", data["_id"])
	assert.Equal(t, "Ada Lovelace", data["full_name"])
	assert.Empty(t, data["cart"])

	stored, ok := f.users["auth0|new"]
	require.True(t, ok)
	assert.Equal(t, []models.CartEntry{}, stored.Cart)
}

func TestGetOrCreateUser_ReturnsExistingRecord(t *testing.T) {
	f := newFakeStore()
	seededUser(f, "auth0|ada", models.CartEntry{ProductID: "p1", Quantity: 2})
	router := newTestRouter(f)
	token := tokenFor(t, "auth0|ada")

	w := performRequest(router, http.MethodPost, "/user", `{"id":"auth0|ada"}`, token)

	body := requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "User fetched successfully", body["message"])

	data := body["data"].(map[string]interface{})
	cartEntries := data["cart"].([]interface{})
	require.Len(t, cartEntries, 1)
	entry := cartEntries[0].(map[string]interface{})
	assert.Equal(t, "p1", entry["productId"])
	assert.InDelta(t, 2.0, entry["quantity"].(float64), 1e-9)
}

func TestGetOrCreateUser_MissingID(t *testing.T) {
	f := newFakeStore()
	router := newTestRouter(f)
	token := tokenFor(t, "auth0|ada")

	w := performRequest(router, http.MethodPost, "/user", `{"full_name":"No ID"}`, token)

	body := requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, true, body["error"])
}

func TestGetOrCreateUser_TokenSubjectMismatch(t *testing.T) {
	f := newFakeStore()
	router := newTestRouter(f)
	token := tokenFor(t, "auth0|mallory")

	w := performRequest(router, http.MethodPost, "/user", `{"id":"auth0|ada"}`, token)

	body := requireStatus(t, w, http.StatusForbidden)
	assert.Equal(t, true, body["error"])
}

func TestUpdateUserCart_ReplacesWholeCart(t *testing.T) {
	f := newFakeStore()
	seededUser(f, "auth0|ada", models.CartEntry{ProductID: "old", Quantity: 1})
	router := newTestRouter(f)
	token := tokenFor(t, "auth0|ada")

	w := performRequest(router, http.MethodPut, "/user",
		`{"id":"auth0|ada","cart":[{"productId":"p1","quantity":3},{"productId":"p2","quantity":1}]}`, token)

	body := requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "User updated successfully", body["message"])

	assert.Equal(t, []models.CartEntry{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 1},
	}, f.users["auth0|ada"].Cart)
}

func TestUpdateUserCart_EmptyCartClears(t *testing.T) {
	f := newFakeStore()
	seededUser(f, "auth0|ada", models.CartEntry{ProductID: "p1", Quantity: 4})
	router := newTestRouter(f)
	token := tokenFor(t, "auth0|ada")

	w := performRequest(router, http.MethodPut, "/user", `{"id":"auth0|ada","cart":[]}`, token)

	requireStatus(t, w, http.StatusOK)
	assert.Empty(t, f.users["auth0|ada"].Cart)
}

func TestUpdateUserCart_UnknownUser(t *testing.T) {
	f := newFakeStore()
	router := newTestRouter(f)
	token := tokenFor(t, "auth0|ghost")

	w := performRequest(router, http.MethodPut, "/user",
		`{"id":"auth0|ghost","cart":[{"productId":"p1","quantity":1}]}`, token)

	body := requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "User not found", body["message"])
	assert.Equal(t, true, body["error"])
}

func TestUpdateUserCart_RejectsZeroQuantityEntry(t *testing.T) {
	// Stored carts only hold quantities >= 1; removal happens by omitting
	// the entry from the replacement array.
	f := newFakeStore()
	seededUser(f, "auth0|ada", models.CartEntry{ProductID: "p1", Quantity: 1})
	router := newTestRouter(f)
	token := tokenFor(t, "auth0|ada")

	w := performRequest(router, http.MethodPut, "/user",
		`{"id":"auth0|ada","cart":[{"productId":"p1","quantity":0}]}`, token)

	requireStatus(t, w, http.StatusBadRequest)
	// stored cart untouched
	assert.Equal(t, []models.CartEntry{{ProductID: "p1", Quantity: 1}}, f.users["auth0|ada"].Cart)
}
