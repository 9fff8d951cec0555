package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

// AdminStats aggregates the dashboard counters: biodata counts by type,
// premium counts, user count and the summed contact-unlock revenue.
func (h *Handler) AdminStats(c *gin.Context) {
	ctx, cancel := opCtx()
	defer cancel()

	totalBiodatas, err := h.Store.Biodatas.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("[AdminStats] biodata count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	maleCount, err := h.Store.Biodatas.CountDocuments(ctx, bson.M{
		"biodataType": primitive.Regex{Pattern: "^male$", Options: "i"},
	})
	if err != nil {
		log.Printf("[AdminStats] male count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	femaleCount, err := h.Store.Biodatas.CountDocuments(ctx, bson.M{
		"biodataType": primitive.Regex{Pattern: "^female$", Options: "i"},
	})
	if err != nil {
		log.Printf("[AdminStats] female count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	premiumCount, err := h.Store.Biodatas.CountDocuments(ctx, bson.M{"isPremium": true})
	if err != nil {
		log.Printf("[AdminStats] premium count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	totalUsers, err := h.Store.Users.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("[AdminStats] user count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := h.Store.Payments.Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("[AdminStats] revenue aggregate failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	defer cursor.Close(ctx)

	var revenue int64
	var sums []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &sums); err != nil {
		log.Printf("[AdminStats] revenue decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	if len(sums) > 0 {
		revenue = sums[0].Total
	}

	pendingContacts, err := h.Store.ContactRequests.CountDocuments(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		log.Printf("[AdminStats] pending contact count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBiodatas":          totalBiodatas,
		"maleBiodatas":           maleCount,
		"femaleBiodatas":         femaleCount,
		"premiumBiodatas":        premiumCount,
		"totalUsers":             totalUsers,
		"totalRevenue":           revenue,
		"pendingContactRequests": pendingContacts,
	})
}
