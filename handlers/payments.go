package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MonirMohammed1995/matrimony-management-server/middleware"
	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

// CreatePaymentIntent starts a Stripe PaymentIntent for the fixed
// contact-unlock fee and hands the client secret back to the frontend.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	if h.Cfg.Stripe.SecretKey == "" {
		log.Printf("[CreatePaymentIntent] stripe secret key missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payments not configured"})
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(h.Cfg.Stripe.ContactFee),
		Currency: stripe.String(h.Cfg.Stripe.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("[CreatePaymentIntent] stripe call failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

type PaymentRequest struct {
	BiodataID     int64  `json:"biodataId" binding:"required"`
	TransactionID string `json:"transactionId" binding:"required"`
	Amount        int64  `json:"amount"`
}

// CreatePayment persists a completed charge and spawns the pending
// contact request the admin later approves. A second payment for the
// same biodata by the same user is rejected.
func (h *Handler) CreatePayment(c *gin.Context) {
	var req PaymentRequest
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
		log.Printf("[CreatePayment] biodata lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	count, err := h.Store.ContactRequests.CountDocuments(ctx, bson.M{
		"email":     email,
		"biodataId": req.BiodataID,
	})
	if err != nil {
		log.Printf("[CreatePayment] duplicate check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Contact request already exists"})
		return
	}

	amount := req.Amount
	if amount <= 0 {
		amount = h.Cfg.Stripe.ContactFee
	}

	now := time.Now().Unix()
	payment := models.Payment{
		ID:            primitive.NewObjectID(),
		Email:         email,
		BiodataID:     req.BiodataID,
		TransactionID: req.TransactionID,
		Amount:        amount,
		Currency:      h.Cfg.Stripe.Currency,
		CreatedAt:     now,
	}

	if _, err := h.Store.Payments.InsertOne(ctx, payment); err != nil {
		log.Printf("[CreatePayment] payment insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	request := models.ContactRequest{
		ID:        primitive.NewObjectID(),
		Email:     email,
		BiodataID: req.BiodataID,
		Status:    models.StatusPending,
		CreatedAt: now,
	}

	if _, err := h.Store.ContactRequests.InsertOne(ctx, request); err != nil {
		log.Printf("[CreatePayment] contact request insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Payment recorded",
		"contactRequestId": request.ID.Hex(),
	})
}
