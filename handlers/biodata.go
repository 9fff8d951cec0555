package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MonirMohammed1995/matrimony-management-server/database"
	"github.com/MonirMohammed1995/matrimony-management-server/middleware"
	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

type BiodataRequest struct {
	BiodataType           string `json:"biodataType" binding:"required"`
	Name                  string `json:"name" binding:"required"`
	ProfileImage          string `json:"profileImage"`
	DateOfBirth           string `json:"dateOfBirth"`
	Age                   int    `json:"age" binding:"required,gt=0"`
	Height                string `json:"height"`
	Weight                string `json:"weight"`
	Occupation            string `json:"occupation"`
	Race                  string `json:"race"`
	FathersName           string `json:"fathersName"`
	MothersName           string `json:"mothersName"`
	PermanentDivision     string `json:"permanentDivision"`
	PresentDivision       string `json:"presentDivision"`
	MaritalStatus         string `json:"maritalStatus"`
	ExpectedPartnerAge    string `json:"expectedPartnerAge"`
	ExpectedPartnerHeight string `json:"expectedPartnerHeight"`
	ContactEmail          string `json:"contactEmail"`
	MobileNumber          string `json:"mobileNumber"`
}

// CreateBiodata allocates the next biodata id and inserts the profile.
// If allocation fails nothing is written; a profile never exists
// without its id.
func (h *Handler) CreateBiodata(c *gin.Context) {
	var req BiodataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	biodataID, err := h.Alloc.NextID(ctx, models.SequenceBiodataID)
	if err != nil {
		log.Printf("[CreateBiodata] id allocation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create biodata"})
		return
	}

	now := time.Now().Unix()
	biodata := models.Biodata{
		ID:                    primitive.NewObjectID(),
		BiodataID:             biodataID,
		OwnerEmail:            email,
		BiodataType:           req.BiodataType,
		Name:                  req.Name,
		ProfileImage:          req.ProfileImage,
		DateOfBirth:           req.DateOfBirth,
		Age:                   req.Age,
		Height:                req.Height,
		Weight:                req.Weight,
		Occupation:            req.Occupation,
		Race:                  req.Race,
		FathersName:           req.FathersName,
		MothersName:           req.MothersName,
		PermanentDivision:     req.PermanentDivision,
		PresentDivision:       req.PresentDivision,
		MaritalStatus:         req.MaritalStatus,
		ExpectedPartnerAge:    req.ExpectedPartnerAge,
		ExpectedPartnerHeight: req.ExpectedPartnerHeight,
		ContactEmail:          req.ContactEmail,
		MobileNumber:          req.MobileNumber,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if _, err := h.Store.Biodatas.InsertOne(ctx, biodata); err != nil {
		log.Printf("[CreateBiodata] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create biodata"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Biodata created",
		"biodataId": biodataID,
	})
}

// UpdateBiodata rewrites the mutable profile fields. Only the owner or
// an admin may update; biodataId, ownerEmail and createdAt never change.
func (h *Handler) UpdateBiodata(c *gin.Context) {
	biodataID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid biodata ID"})
		return
	}

	var req BiodataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	var existing models.Biodata
	err = h.Store.Biodatas.FindOne(ctx, bson.M{"biodataId": biodataID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Biodata not found"})
		return
	}
	if err != nil {
		log.Printf("[UpdateBiodata] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if existing.OwnerEmail != email {
		admin, err := h.isAdmin(ctx, email)
		if err != nil {
			log.Printf("[UpdateBiodata] role lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if !admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot update another user's biodata"})
			return
		}
	}

	update := bson.M{"$set": bson.M{
		"biodataType":           req.BiodataType,
		"name":                  req.Name,
		"profileImage":          req.ProfileImage,
		"dateOfBirth":           req.DateOfBirth,
		"age":                   req.Age,
		"height":                req.Height,
		"weight":                req.Weight,
		"occupation":            req.Occupation,
		"race":                  req.Race,
		"fathersName":           req.FathersName,
		"mothersName":           req.MothersName,
		"permanentDivision":     req.PermanentDivision,
		"presentDivision":       req.PresentDivision,
		"maritalStatus":         req.MaritalStatus,
		"expectedPartnerAge":    req.ExpectedPartnerAge,
		"expectedPartnerHeight": req.ExpectedPartnerHeight,
		"contactEmail":          req.ContactEmail,
		"mobileNumber":          req.MobileNumber,
		"updatedAt":             time.Now().Unix(),
	}}

	if _, err := h.Store.Biodatas.UpdateOne(ctx, bson.M{"biodataId": biodataID}, update); err != nil {
		log.Printf("[UpdateBiodata] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update biodata"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Biodata updated"})
}

// DeleteBiodata removes a profile, owner or admin only. The id is not
// returned to the sequence.
func (h *Handler) DeleteBiodata(c *gin.Context) {
	biodataID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid biodata ID"})
		return
	}

	email := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	var existing models.Biodata
	err = h.Store.Biodatas.FindOne(ctx, bson.M{"biodataId": biodataID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Biodata not found"})
		return
	}
	if err != nil {
		log.Printf("[DeleteBiodata] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if existing.OwnerEmail != email {
		admin, err := h.isAdmin(ctx, email)
		if err != nil {
			log.Printf("[DeleteBiodata] role lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if !admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete another user's biodata"})
			return
		}
	}

	if _, err := h.Store.Biodatas.DeleteOne(ctx, bson.M{"biodataId": biodataID}); err != nil {
		log.Printf("[DeleteBiodata] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete biodata"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Biodata deleted"})
}

// GetBiodata fetches one profile by its allocated id.
func (h *Handler) GetBiodata(c *gin.Context) {
	biodataID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid biodata ID"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	var biodata models.Biodata
	err = h.Store.Biodatas.FindOne(ctx, bson.M{"biodataId": biodataID}).Decode(&biodata)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Biodata not found"})
		return
	}
	if err != nil {
		log.Printf("[GetBiodata] find failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biodata"})
		return
	}

	c.JSON(http.StatusOK, biodata)
}

// ListBiodatas runs the public profile search. Filters are ANDed, the
// free-text term ORs over name, occupation and permanent division, and
// the total always counts the full match set.
func (h *Handler) ListBiodatas(c *gin.Context) {
	query := parseBiodataQuery(c)

	ctx, cancel := opCtx()
	defer cancel()

	biodatas, total, err := h.Store.QueryBiodatas(ctx, query)
	if err != nil {
		log.Printf("[ListBiodatas] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biodatas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"biodatas": biodatas,
		"total":    total,
		"page":     query.Page,
		"limit":    query.Limit,
	})
}

// parseBiodataQuery reads the listing parameters defensively: numeric
// params that fail to parse impose no constraint instead of failing the
// request.
func parseBiodataQuery(c *gin.Context) database.BiodataQuery {
	q := database.BiodataQuery{
		Gender:            c.Query("gender"),
		PermanentDivision: c.Query("permanentDivision"),
		PresentDivision:   c.Query("presentDivision"),
		MaritalStatus:     c.Query("maritalStatus"),
		Search:            c.Query("q"),
		SortDesc:          c.Query("sort") == "desc",
		Page:              1,
	}

	if v, err := strconv.Atoi(c.Query("minAge")); err == nil {
		q.MinAge = &v
	}
	if v, err := strconv.Atoi(c.Query("maxAge")); err == nil {
		q.MaxAge = &v
	}
	if v, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil && v > 0 {
		q.Page = v
	}
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		q.Limit = v
	}

	return q
}

// UploadPhoto pushes a profile photo to Cloudinary and returns its URL.
func (h *Handler) UploadPhoto(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)

	ctx, cancel := opCtx()
	defer cancel()

	if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form data"})
		return
	}

	photoFile, _, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photo file provided"})
		return
	}
	defer photoFile.Close()

	cld, err := cloudinary.NewFromURL(h.Cfg.CloudinaryURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cloudinary configuration error"})
		return
	}

	uploadParams := uploader.UploadParams{
		Folder:         "matrimony/photos",
		PublicID:       email + "_" + time.Now().Format("20060102150405"),
		Transformation: "c_limit,w_800,h_800,q_auto",
	}

	uploadResult, err := cld.Upload.Upload(ctx, photoFile, uploadParams)
	if err != nil {
		log.Printf("[UploadPhoto] upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": uploadResult.SecureURL})
}
