package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"virtual-healthcare/authentication"
	"virtual-healthcare/services"

	"github.com/gin-gonic/gin"
)

// credentialError translates service errors into the response envelope.
// Unexpected failures stay opaque.
func credentialError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Credentials not found"})
	case services.IsConflict(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Doctor ID, username, and password are required"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
	case errors.Is(err, services.ErrNoDoctors):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No doctors found. Please seed doctors first."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message, "error": "internal server error"})
	}
}

// GetAllCredentials lists every credential with the hash redacted
func GetAllCredentials(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	views, err := credentialService.GetAll(ctx)
	if err != nil {
		credentialError(c, err, "Error fetching credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(views),
		"data":    views,
	})
}

// GetCredentialsByID
func GetCredentialsByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid credential id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	view, err := credentialService.GetByID(ctx, id)
	if err != nil {
		credentialError(c, err, "Error fetching credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

// GetCredentialsByDoctorID
func GetCredentialsByDoctorID(c *gin.Context) {
	doctorID, err := strconv.Atoi(c.Param("doctorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid doctor id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	view, err := credentialService.GetByDoctor(ctx, doctorID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Credentials not found for this doctor"})
			return
		}
		credentialError(c, err, "Error fetching credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

// CreateCredentials registers login credentials for an existing doctor
func CreateCredentials(c *gin.Context) {
	var req struct {
		DoctorID int    `json:"doctorId"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	view, err := credentialService.Create(ctx, req.DoctorID, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Doctor not found"})
			return
		}
		credentialError(c, err, "Error creating credentials")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Credentials created successfully",
		"data":    view,
	})
}

// UpdateCredentials changes username and/or password, leaving omitted fields alone
func UpdateCredentials(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid credential id"})
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	view, err := credentialService.Update(ctx, id, req.Username, req.Password)
	if err != nil {
		credentialError(c, err, "Error updating credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Credentials updated successfully",
		"data":    view,
	})
}

// DeleteCredentials removes a credential without touching the doctor record
func DeleteCredentials(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid credential id"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := credentialService.Delete(ctx, id); err != nil {
		credentialError(c, err, "Error deleting credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Credentials deleted successfully"})
}

// VerifyLogin checks a username/password pair and hands back the doctor
// identity plus a signed token
func VerifyLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password are required"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	identity, err := credentialService.Verify(ctx, req.Username, req.Password)
	if err != nil {
		credentialError(c, err, "Error verifying login")
		return
	}

	token, err := authentication.GenerateDoctorToken(identity.DoctorID, identity.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    identity,
		"token":   token,
	})
}

// SeedCredentials bulk-provisions one credential per doctor. Destructive,
// admin-gated.
func SeedCredentials(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	seeded, err := credentialService.Seed(ctx)
	if err != nil {
		credentialError(c, err, "Error seeding credentials")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Credentials seeded successfully",
		"count":   len(seeded),
		"data":    seeded,
		"note":    "Default password for all doctors is: " + services.DefaultSeedPassword,
	})
}
