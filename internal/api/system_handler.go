package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// collectionNameCap bounds how many collection names the connectivity
// report lists.
const collectionNameCap = 10

// SystemHandler serves the liveness and store-connectivity endpoints.
type SystemHandler struct {
	db     *mongo.Database
	uriSet bool
}

// NewSystemHandler creates a new SystemHandler. uriSet reports whether a
// store connection string was configured (as opposed to the default).
func NewSystemHandler(db *mongo.Database, uriSet bool) *SystemHandler {
	return &SystemHandler{db: db, uriSet: uriSet}
}

// Root handles GET /.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Workout & Nutrition Tracker Backend Ready"})
}

// TestDatabase handles GET /test: a best-effort report of store
// connectivity and the collections it holds.
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if h.uriSet {
		response["database_url"] = "set"
	}

	if h.db == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	response["database_name"] = h.db.Name()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	names, err := h.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		response["database"] = "error: " + truncate(err.Error(), maxErrorDetail)
		c.JSON(http.StatusOK, response)
		return
	}

	if len(names) > collectionNameCap {
		names = names[:collectionNameCap]
	}
	response["database"] = "connected"
	response["connection_status"] = "connected"
	response["collections"] = names

	c.JSON(http.StatusOK, response)
}
