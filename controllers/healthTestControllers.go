package controllers

import (
	"net/http"
	"strconv"

	"virtual-healthcare/configuration"
	"virtual-healthcare/models"
	"virtual-healthcare/sequence"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

var healthTestAlloc sequence.Allocator

// GetAllTests
func GetAllTests(c *gin.Context) {
	var tests []models.HealthTest
	if err := configuration.DB.Order("id asc").Find(&tests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching health tests", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(tests), "data": tests})
}

// GetTestByID
func GetTestByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid test id"})
		return
	}

	var test models.HealthTest
	if err := configuration.DB.Where("id = ?", id).First(&test).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Health test not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": test})
}

// GetTestsByDepartment matches the department name case-insensitively
func GetTestsByDepartment(c *gin.Context) {
	department := c.Param("department")

	var tests []models.HealthTest
	if err := configuration.DB.
		Where("department ILIKE ?", "%"+department+"%").
		Order("id asc").Find(&tests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching health tests by department", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(tests), "data": tests})
}

// CreateTest
func CreateTest(c *gin.Context) {
	var test models.HealthTest
	if err := c.ShouldBindJSON(&test); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}

	if err := validate.Struct(test); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill all the mandatory fields", "error": err.Error()})
		return
	}

	_, err := healthTestAlloc.Next(
		func() (int, error) {
			var max int
			err := configuration.DB.Model(&models.HealthTest{}).Select("COALESCE(MAX(id), 0)").Scan(&max).Error
			return max, err
		},
		func(id int) error {
			test.ID = id
			return configuration.DB.Create(&test).Error
		},
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error creating health test", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": test})
}

// UpdateTest
func UpdateTest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid test id"})
		return
	}

	var test models.HealthTest
	if err := configuration.DB.Where("id = ?", id).First(&test).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Health test not found"})
		return
	}

	if err := c.ShouldBindJSON(&test); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}
	test.ID = id

	if err := configuration.DB.Save(&test).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error updating health test", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": test})
}

// DeleteTest
func DeleteTest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid test id"})
		return
	}

	var test models.HealthTest
	if err := configuration.DB.Where("id = ?", id).First(&test).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Health test not found"})
		return
	}

	if err := configuration.DB.Delete(&test).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting health test", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Health test deleted successfully"})
}

// SeedTests resets the test catalogue to the initial data. Destructive.
func SeedTests(c *gin.Context) {
	if err := configuration.DB.Where("1 = 1").Delete(&models.HealthTest{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error seeding health tests", "error": "internal server error"})
		return
	}

	tests := []models.HealthTest{
		{ID: 1, Name: "Complete Blood Count (CBC)", Price: 25, Department: "Hematology", AvailableTimeSlots: pq.StringArray{"Morning 8-11 AM", "Afternoon 2-5 PM"}},
		{ID: 2, Name: "Chest X-Ray", Price: 80, Department: "Radiology", AvailableTimeSlots: pq.StringArray{"Morning 9-12 PM", "Evening 3-6 PM"}},
		{ID: 3, Name: "Lipid Profile", Price: 35, Department: "Biochemistry", AvailableTimeSlots: pq.StringArray{"Morning 8-11 AM", "Afternoon 1-4 PM", "Evening 5-7 PM"}},
		{ID: 4, Name: "ECG (Electrocardiogram)", Price: 45, Department: "Cardiology", AvailableTimeSlots: pq.StringArray{"Morning 9-12 PM", "Afternoon 2-5 PM"}},
		{ID: 5, Name: "Thyroid Function Test", Price: 55, Department: "Endocrinology", AvailableTimeSlots: pq.StringArray{"Morning 8-10 AM", "Late Morning 10-12 PM"}},
		{ID: 6, Name: "Ultrasound Abdomen", Price: 120, Department: "Radiology", AvailableTimeSlots: pq.StringArray{"Morning 10-12 PM", "Afternoon 2-4 PM", "Evening 4-6 PM"}},
		{ID: 7, Name: "Blood Sugar Test", Price: 15, Department: "Biochemistry", AvailableTimeSlots: pq.StringArray{"Morning 8-11 AM", "Afternoon 2-5 PM"}},
		{ID: 8, Name: "Urine Analysis", Price: 20, Department: "Pathology", AvailableTimeSlots: pq.StringArray{"Morning 8-12 PM", "Afternoon 1-5 PM"}},
	}

	if err := configuration.DB.Create(&tests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error seeding health tests", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Health tests seeded successfully",
		"count":   len(tests),
		"data":    tests,
	})
}
