package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MonirMohammed1995/matrimony-management-server/middleware"
	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

// ListContactRequests returns the caller's own requests; admins see
// every request.
func (h *Handler) ListContactRequests(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{"email": email}
	admin, err := h.isAdmin(ctx, email)
	if err != nil {
		log.Printf("[ListContactRequests] role lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if admin {
		filter = bson.M{}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.Store.ContactRequests.Find(ctx, filter, findOpts)
	if err != nil {
		log.Printf("[ListContactRequests] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact requests"})
		return
	}
	defer cursor.Close(ctx)

	requests := []models.ContactRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		log.Printf("[ListContactRequests] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode contact requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ApproveContactRequest moves a pending request to approved. The filter
// includes the pending status so the transition happens at most once.
func (h *Handler) ApproveContactRequest(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	result, err := h.Store.ContactRequests.UpdateOne(
		ctx,
		bson.M{"_id": requestID, "status": models.StatusPending},
		bson.M{"$set": bson.M{"status": models.StatusApproved}},
	)
	if err != nil {
		log.Printf("[ApproveContactRequest] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve contact request"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending contact request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact request approved"})
}

// DeleteContactRequest lets the requester withdraw a request that has
// not been approved yet.
func (h *Handler) DeleteContactRequest(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	email := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	result, err := h.Store.ContactRequests.DeleteOne(ctx, bson.M{
		"_id":    requestID,
		"email":  email,
		"status": models.StatusPending,
	})
	if err != nil {
		log.Printf("[DeleteContactRequest] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact request"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending contact request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact request withdrawn"})
}

type PremiumRequestBody struct {
	BiodataID int64 `json:"biodataId" binding:"required"`
}

// CreatePremiumRequest asks for premium status on the caller's own
// biodata.
func (h *Handler) CreatePremiumRequest(c *gin.Context) {
	var req PremiumRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	var biodata models.Biodata
	err := h.Store.Biodatas.FindOne(ctx, bson.M{"biodataId": req.BiodataID}).Decode(&biodata)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Biodata not found"})
		return
	}
	if err != nil {
		log.Printf("[CreatePremiumRequest] biodata lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if biodata.OwnerEmail != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Can only request premium for your own biodata"})
		return
	}
	if biodata.IsPremium {
		c.JSON(http.StatusConflict, gin.H{"error": "Biodata is already premium"})
		return
	}

	count, err := h.Store.PremiumRequests.CountDocuments(ctx, bson.M{
		"biodataId": req.BiodataID,
		"status":    models.StatusPending,
	})
	if err != nil {
		log.Printf("[CreatePremiumRequest] duplicate check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Premium request already pending"})
		return
	}

	request := models.PremiumRequest{
		ID:        primitive.NewObjectID(),
		Email:     email,
		BiodataID: req.BiodataID,
		Status:    models.StatusPending,
		CreatedAt: time.Now().Unix(),
	}

	if _, err := h.Store.PremiumRequests.InsertOne(ctx, request); err != nil {
		log.Printf("[CreatePremiumRequest] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create premium request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Premium request created"})
}

// ListPremiumRequests returns pending requests for admin review.
func (h *Handler) ListPremiumRequests(c *gin.Context) {
	ctx, cancel := opCtx()
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.Store.PremiumRequests.Find(ctx, bson.M{"status": models.StatusPending}, findOpts)
	if err != nil {
		log.Printf("[ListPremiumRequests] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch premium requests"})
		return
	}
	defer cursor.Close(ctx)

	requests := []models.PremiumRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		log.Printf("[ListPremiumRequests] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode premium requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ApprovePremiumRequest flips the request to approved and marks both
// the biodata and the owning account premium.
func (h *Handler) ApprovePremiumRequest(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	now := time.Now().Unix()

	var request models.PremiumRequest
	err = h.Store.PremiumRequests.FindOneAndUpdate(
		ctx,
		bson.M{"_id": requestID, "status": models.StatusPending},
		bson.M{"$set": bson.M{"status": models.StatusApproved, "approvedAt": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending premium request not found"})
		return
	}
	if err != nil {
		log.Printf("[ApprovePremiumRequest] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve premium request"})
		return
	}

	if _, err := h.Store.Biodatas.UpdateOne(
		ctx,
		bson.M{"biodataId": request.BiodataID},
		bson.M{"$set": bson.M{"isPremium": true, "updatedAt": now}},
	); err != nil {
		log.Printf("[ApprovePremiumRequest] biodata update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark biodata premium"})
		return
	}

	if _, err := h.Store.Users.UpdateOne(
		ctx,
		bson.M{"email": request.Email},
		bson.M{"$set": bson.M{"isPremium": true}},
	); err != nil {
		log.Printf("[ApprovePremiumRequest] user update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark user premium"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Premium request approved"})
}
