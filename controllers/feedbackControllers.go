package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"virtual-healthcare/configuration"
	"virtual-healthcare/models"
	"virtual-healthcare/sequence"

	"github.com/gin-gonic/gin"
)

var feedbackAlloc sequence.Allocator

// GetAllFeedback
func GetAllFeedback(c *gin.Context) {
	var feedback []models.Feedback
	if err := configuration.DB.Order("id asc").Find(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching feedback", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(feedback), "data": feedback})
}

// GetFeedbackByID
func GetFeedbackByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid feedback id"})
		return
	}

	var feedback models.Feedback
	if err := configuration.DB.Where("id = ?", id).First(&feedback).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Feedback not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": feedback})
}

// CreateFeedback
func CreateFeedback(c *gin.Context) {
	var feedback models.Feedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}

	if err := validate.Struct(feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill all the mandatory fields", "error": err.Error()})
		return
	}
	feedback.Email = strings.ToLower(feedback.Email)

	_, err := feedbackAlloc.Next(
		func() (int, error) {
			var max int
			err := configuration.DB.Model(&models.Feedback{}).Select("COALESCE(MAX(id), 0)").Scan(&max).Error
			return max, err
		},
		func(id int) error {
			feedback.ID = id
			return configuration.DB.Create(&feedback).Error
		},
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error creating feedback", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": feedback})
}

// UpdateFeedback
func UpdateFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid feedback id"})
		return
	}

	var feedback models.Feedback
	if err := configuration.DB.Where("id = ?", id).First(&feedback).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Feedback not found"})
		return
	}

	if err := c.ShouldBindJSON(&feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}
	feedback.ID = id
	feedback.Email = strings.ToLower(feedback.Email)

	if err := configuration.DB.Save(&feedback).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error updating feedback", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": feedback})
}

// DeleteFeedback
func DeleteFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid feedback id"})
		return
	}

	var feedback models.Feedback
	if err := configuration.DB.Where("id = ?", id).First(&feedback).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Feedback not found"})
		return
	}

	if err := configuration.DB.Delete(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting feedback", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Feedback deleted successfully"})
}
