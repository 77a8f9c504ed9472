package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"virtual-healthcare/authentication"
	"virtual-healthcare/configuration"
	"virtual-healthcare/models"
	"virtual-healthcare/sequence"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var adminAlloc sequence.Allocator

// redactAdmin drops the hash before an admin record is serialized
func redactAdmin(admin models.Admin) models.Admin {
	admin.Password = ""
	return admin
}

// GetAllAdmins
func GetAllAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := configuration.DB.Order("id asc").Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching admins", "error": "internal server error"})
		return
	}

	for i := range admins {
		admins[i].Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(admins), "data": admins})
}

// GetAdminByID
func GetAdminByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid admin id"})
		return
	}

	var admin models.Admin
	if err := configuration.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": redactAdmin(admin)})
}

// GetAdminByEmail
func GetAdminByEmail(c *gin.Context) {
	email := strings.ToLower(c.Param("email"))

	var admin models.Admin
	if err := configuration.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": redactAdmin(admin)})
}

// CreateAdmin registers a new administrator with a hashed password and a
// lowercased unique email
func CreateAdmin(c *gin.Context) {
	var admin models.Admin
	if err := c.ShouldBindJSON(&admin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}

	if err := validate.Struct(admin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill all the mandatory fields", "error": err.Error()})
		return
	}

	admin.Email = strings.ToLower(admin.Email)

	var existing models.Admin
	if err := configuration.DB.Where("email = ?", admin.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating admin", "error": "internal server error"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
		return
	}
	admin.Password = string(hashed)

	_, err = adminAlloc.Next(
		func() (int, error) {
			var max int
			err := configuration.DB.Model(&models.Admin{}).Select("COALESCE(MAX(id), 0)").Scan(&max).Error
			return max, err
		},
		func(id int) error {
			admin.ID = id
			return configuration.DB.Create(&admin).Error
		},
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error creating admin", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin created successfully",
		"data":    redactAdmin(admin),
	})
}

// AdminLogin verifies email/password and issues an admin token. Unknown
// email and wrong password answer identically.
func AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide email and password"})
		return
	}

	var admin models.Admin
	if err := configuration.DB.Where("email = ?", strings.ToLower(req.Email)).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := authentication.GenerateAdminToken(admin.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    redactAdmin(admin),
		"token":   token,
	})
}

// UpdateAdmin patches the record; a new password gets re-hashed, omitted
// fields stay as they are
func UpdateAdmin(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid admin id"})
		return
	}

	var admin models.Admin
	if err := configuration.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admin not found"})
		return
	}

	var req struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		PhoneNumber string `json:"phoneNumber"`
		Email       string `json:"email"`
		Password    string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}

	if req.FirstName != "" {
		admin.FirstName = req.FirstName
	}
	if req.LastName != "" {
		admin.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		admin.PhoneNumber = req.PhoneNumber
	}
	if req.Email != "" {
		newEmail := strings.ToLower(req.Email)
		if newEmail != admin.Email {
			var existing models.Admin
			if err := configuration.DB.Where("email = ? AND id <> ?", newEmail, id).First(&existing).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already exists"})
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating admin", "error": "internal server error"})
				return
			}
			admin.Email = newEmail
		}
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
			return
		}
		admin.Password = string(hashed)
	}

	if err := configuration.DB.Save(&admin).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error updating admin", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin updated successfully",
		"data":    redactAdmin(admin),
	})
}

// DeleteAdmin
func DeleteAdmin(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid admin id"})
		return
	}

	var admin models.Admin
	if err := configuration.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admin not found"})
		return
	}

	if err := configuration.DB.Delete(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting admin", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin deleted successfully"})
}

// SeedAdmin resets the admin collection to the single bootstrap account
func SeedAdmin(c *gin.Context) {
	if err := configuration.DB.Where("1 = 1").Delete(&models.Admin{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error seeding admin", "error": "internal server error"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("abdullah.hassan"), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
		return
	}

	admin := models.Admin{
		ID:          1,
		FirstName:   "Abdullah",
		LastName:    "Hassan",
		PhoneNumber: "+92 300 1234567",
		Email:       "abdullah.hassan@hospital.com",
		Password:    string(hashed),
	}
	if err := configuration.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error seeding admin", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin seeded successfully",
		"data":    redactAdmin(admin),
	})
}
