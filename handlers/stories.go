package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

type SuccessStoryRequest struct {
	SelfBiodataID    int64  `json:"selfBiodataId" binding:"required"`
	PartnerBiodataID int64  `json:"partnerBiodataId" binding:"required"`
	CoupleImage      string `json:"coupleImage"`
	MarriageDate     string `json:"marriageDate"`
	Review           string `json:"review" binding:"required"`
}

// CreateSuccessStory appends a story. Stories are never edited.
func (h *Handler) CreateSuccessStory(c *gin.Context) {
	var req SuccessStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	story := models.SuccessStory{
		ID:               primitive.NewObjectID(),
		SelfBiodataID:    req.SelfBiodataID,
		PartnerBiodataID: req.PartnerBiodataID,
		CoupleImage:      req.CoupleImage,
		MarriageDate:     req.MarriageDate,
		Review:           req.Review,
		CreatedAt:        time.Now().Unix(),
	}

	if _, err := h.Store.SuccessStories.InsertOne(ctx, story); err != nil {
		log.Printf("[CreateSuccessStory] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create success story"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Success story created"})
}

// ListSuccessStories returns every story, newest first.
func (h *Handler) ListSuccessStories(c *gin.Context) {
	ctx, cancel := opCtx()
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.Store.SuccessStories.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		log.Printf("[ListSuccessStories] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch success stories"})
		return
	}
	defer cursor.Close(ctx)

	stories := []models.SuccessStory{}
	if err := cursor.All(ctx, &stories); err != nil {
		log.Printf("[ListSuccessStories] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode success stories"})
		return
	}

	c.JSON(http.StatusOK, stories)
}
