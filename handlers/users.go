package handlers

import (
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MonirMohammed1995/matrimony-management-server/middleware"
	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

type UpsertUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// UpsertUser creates the account on first sign-in and refreshes name,
// photo and lastSeen on later ones. Role and premium flag are only ever
// written on insert so admin grants survive re-login.
func (h *Handler) UpsertUser(c *gin.Context) {
	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	now := time.Now().Unix()
	update := bson.M{
		"$set": bson.M{
			"name":     req.Name,
			"photoURL": req.PhotoURL,
			"lastSeen": now,
		},
		"$setOnInsert": bson.M{
			"email":     req.Email,
			"role":      models.RoleUser,
			"isPremium": false,
			"createdAt": now,
		},
	}

	result, err := h.Store.Users.UpdateOne(
		ctx,
		bson.M{"email": req.Email},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("[UpsertUser] upsert failed for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	if result.UpsertedCount > 0 {
		c.JSON(http.StatusCreated, gin.H{"message": "User created"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// ListUsers returns all accounts, admin only. An optional name filter
// narrows by case-insensitive substring.
func (h *Handler) ListUsers(c *gin.Context) {
	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{}
	if name := c.Query("name"); name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}
	}

	cursor, err := h.Store.Users.Find(ctx, filter)
	if err != nil {
		log.Printf("[ListUsers] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		log.Printf("[ListUsers] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser fetches one account. Callers may read their own record;
// anything else needs the admin role.
func (h *Handler) GetUser(c *gin.Context) {
	email := c.Param("email")
	requester := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	if requester != email {
		admin, err := h.isAdmin(ctx, requester)
		if err != nil {
			log.Printf("[GetUser] role lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if !admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot read another user's account"})
			return
		}
	}

	var user models.User
	err := h.Store.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("[GetUser] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// MakeAdmin promotes an account to the admin role.
func (h *Handler) MakeAdmin(c *gin.Context) {
	h.setUserFlag(c, bson.M{"role": models.RoleAdmin}, "User promoted to admin")
}

// MakePremium grants the premium flag on an account.
func (h *Handler) MakePremium(c *gin.Context) {
	h.setUserFlag(c, bson.M{"isPremium": true}, "User marked premium")
}

func (h *Handler) setUserFlag(c *gin.Context, set bson.M, message string) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	result, err := h.Store.Users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		log.Printf("[setUserFlag] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
