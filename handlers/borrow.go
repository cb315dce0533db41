package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type BorrowRequestInput struct {
	BookID    uint      `json:"book_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// CreateBorrowRequest handles POST /borrow_request. The request is admitted
// as pending unless an approved reservation already covers an overlapping
// period for the same book.
func (a *API) CreateBorrowRequest(c *gin.Context) {
	var req BorrowRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user := CurrentUser(c)
	request, err := a.ledger.CreateRequest(user.ID, req.BookID, req.StartDate, req.EndDate)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetBorrowHistory handles GET /borrow_history. Returns the caller's own
// borrow requests.
func (a *API) GetBorrowHistory(c *gin.Context) {
	user := CurrentUser(c)
	requests, err := a.ledger.ListForUser(user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetBorrowRequests handles GET /borrow_requests (admin only).
func (a *API) GetBorrowRequests(c *gin.Context) {
	requests, err := a.ledger.ListAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ApproveRequest handles POST /approve_request/:id (admin only).
// Re-approving an approved request is a no-op.
func (a *API) ApproveRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "borrow request not found"})
		return
	}

	request, approveErr := a.ledger.Approve(uint(id))
	if approveErr != nil {
		writeServiceError(c, approveErr)
		return
	}

	c.JSON(http.StatusOK, request)
}

// GetUserBorrowHistory handles GET /user/:id/borrow_history (admin only).
// Responds 404 when the user has no borrow requests.
func (a *API) GetUserBorrowHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No borrow history found for this user"})
		return
	}

	requests, listErr := a.ledger.ListForUser(uint(id))
	if listErr != nil {
		writeServiceError(c, listErr)
		return
	}
	if len(requests) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No borrow history found for this user"})
		return
	}

	c.JSON(http.StatusOK, requests)
}
