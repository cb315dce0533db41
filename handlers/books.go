package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddBookRequest carries a pointer for copies so an explicit zero can be
// told apart from an omitted field, which defaults to one copy.
type AddBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Copies *int   `json:"copies"`
}

// GetBooks handles GET /books. No auth required.
func (a *API) GetBooks(c *gin.Context) {
	books, err := a.catalog.ListBooks()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// AddBook handles POST /add_book (admin only).
func (a *API) AddBook(c *gin.Context) {
	var req AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	copies := 1
	if req.Copies != nil {
		copies = *req.Copies
	}

	book, err := a.catalog.AddBook(req.Title, req.Author, copies)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}
