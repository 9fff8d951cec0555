package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MonirMohammed1995/matrimony-management-server/middleware"
	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

type FavouriteRequest struct {
	BiodataID int64 `json:"biodataId" binding:"required"`
}

// AddFavourite bookmarks a biodata for the caller. Duplicates are
// rejected with a 409.
func (h *Handler) AddFavourite(c *gin.Context) {
	var req FavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	err := h.Store.Biodatas.FindOne(ctx, bson.M{"biodataId": req.BiodataID}).Err()
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Biodata not found"})
		return
	}
	if err != nil {
		log.Printf("[AddFavourite] biodata lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	count, err := h.Store.Favourites.CountDocuments(ctx, bson.M{
		"userEmail": email,
		"biodataId": req.BiodataID,
	})
	if err != nil {
		log.Printf("[AddFavourite] duplicate check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Already favourited"})
		return
	}

	fav := models.Favourite{
		ID:        primitive.NewObjectID(),
		UserEmail: email,
		BiodataID: req.BiodataID,
		CreatedAt: time.Now().Unix(),
	}

	if _, err := h.Store.Favourites.InsertOne(ctx, fav); err != nil {
		log.Printf("[AddFavourite] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favourite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Favourite added"})
}

// RemoveFavourite drops the caller's bookmark on a biodata.
func (h *Handler) RemoveFavourite(c *gin.Context) {
	biodataID, err := strconv.ParseInt(c.Param("biodataId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid biodata ID"})
		return
	}

	email := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	result, err := h.Store.Favourites.DeleteOne(ctx, bson.M{
		"userEmail": email,
		"biodataId": biodataID,
	})
	if err != nil {
		log.Printf("[RemoveFavourite] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favourite"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favourite not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favourite removed"})
}

// ListFavourites returns the caller's bookmarks, newest first, each
// joined with the biodata it points at when that still exists.
func (h *Handler) ListFavourites(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.Store.Favourites.Find(ctx, bson.M{"userEmail": email}, findOpts)
	if err != nil {
		log.Printf("[ListFavourites] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favourites"})
		return
	}
	defer cursor.Close(ctx)

	favourites := []models.Favourite{}
	if err := cursor.All(ctx, &favourites); err != nil {
		log.Printf("[ListFavourites] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode favourites"})
		return
	}

	if len(favourites) == 0 {
		c.JSON(http.StatusOK, []map[string]interface{}{})
		return
	}

	ids := make([]int64, 0, len(favourites))
	for _, f := range favourites {
		ids = append(ids, f.BiodataID)
	}

	bioCursor, err := h.Store.Biodatas.Find(ctx, bson.M{"biodataId": bson.M{"$in": ids}})
	if err != nil {
		log.Printf("[ListFavourites] biodata find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biodatas"})
		return
	}
	defer bioCursor.Close(ctx)

	var biodatas []models.Biodata
	if err := bioCursor.All(ctx, &biodatas); err != nil {
		log.Printf("[ListFavourites] biodata decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode biodatas"})
		return
	}

	bioMap := make(map[int64]models.Biodata, len(biodatas))
	for _, b := range biodatas {
		bioMap[b.BiodataID] = b
	}

	response := make([]map[string]interface{}, len(favourites))
	for i, f := range favourites {
		entry := map[string]interface{}{
			"id":        f.ID.Hex(),
			"biodataId": f.BiodataID,
			"createdAt": f.CreatedAt,
		}
		if b, ok := bioMap[f.BiodataID]; ok {
			entry["biodata"] = b
		}
		response[i] = entry
	}

	c.JSON(http.StatusOK, response)
}
