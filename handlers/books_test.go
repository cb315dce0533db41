package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBooksIsPublic(t *testing.T) {
	router := newTestRouter(t)
	adminToken := bootstrapAdmin(t, router)
	addBook(t, router, adminToken, "Dune")
	addBook(t, router, adminToken, "Solaris")

	// No token needed to browse the catalog
	resp := doJSON(t, router, http.MethodGet, "/books", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var books []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &books))
	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0]["title"])
}

func TestAddBookCopiesDefaulting(t *testing.T) {
	router := newTestRouter(t)
	adminToken := bootstrapAdmin(t, router)

	// Omitted copies defaults to one
	resp := doJSON(t, router, http.MethodPost, "/add_book", adminToken, gin.H{
		"title":  "Dune",
		"author": "Frank Herbert",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, float64(1), decodeBody(t, resp)["copies"])

	// An explicit zero is stored as zero
	resp = doJSON(t, router, http.MethodPost, "/add_book", adminToken, gin.H{
		"title":  "Solaris",
		"author": "Stanislaw Lem",
		"copies": 0,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, float64(0), decodeBody(t, resp)["copies"])
}

func TestAddBookValidation(t *testing.T) {
	router := newTestRouter(t)
	adminToken := bootstrapAdmin(t, router)

	resp := doJSON(t, router, http.MethodPost, "/add_book", adminToken, gin.H{
		"author": "A",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/add_book", adminToken, gin.H{
		"title":  "T",
		"author": "A",
		"copies": -2,
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
