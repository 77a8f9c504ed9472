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

var departmentAlloc sequence.Allocator

// GetAllDepartments
func GetAllDepartments(c *gin.Context) {
	var departments []models.Department
	if err := configuration.DB.Order("id asc").Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching departments", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(departments), "data": departments})
}

// GetDepartmentByID
func GetDepartmentByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid department id"})
		return
	}

	var department models.Department
	if err := configuration.DB.Where("id = ?", id).First(&department).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Department not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": department})
}

// CreateDepartment
func CreateDepartment(c *gin.Context) {
	var department models.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}

	if err := validate.Struct(department); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill all the mandatory fields", "error": err.Error()})
		return
	}

	_, err := departmentAlloc.Next(
		func() (int, error) {
			var max int
			err := configuration.DB.Model(&models.Department{}).Select("COALESCE(MAX(id), 0)").Scan(&max).Error
			return max, err
		},
		func(id int) error {
			department.ID = id
			return configuration.DB.Create(&department).Error
		},
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error creating department", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": department})
}

// UpdateDepartment
func UpdateDepartment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid department id"})
		return
	}

	var department models.Department
	if err := configuration.DB.Where("id = ?", id).First(&department).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Department not found"})
		return
	}

	if err := c.ShouldBindJSON(&department); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}
	department.ID = id

	if err := configuration.DB.Save(&department).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error updating department", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": department})
}

// DeleteDepartment
func DeleteDepartment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid department id"})
		return
	}

	var department models.Department
	if err := configuration.DB.Where("id = ?", id).First(&department).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Department not found"})
		return
	}

	if err := configuration.DB.Delete(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting department", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Department deleted successfully"})
}

// SeedDepartments resets the department list to the initial data. Destructive.
func SeedDepartments(c *gin.Context) {
	if err := configuration.DB.Where("1 = 1").Delete(&models.Department{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error seeding departments", "error": "internal server error"})
		return
	}

	departments := []models.Department{
		{ID: 1, Name: "Cardiologist", Description: "Comprehensive heart care services including diagnosis, treatment, and prevention of cardiovascular diseases with state-of-the-art technology.", Icon: "fas fa-heartbeat", Services: pq.StringArray{"ECG", "Echocardiography", "Cardiac Catheterization", "Heart Surgery", "Pacemaker Implantation"}, Specialists: 1},
		{ID: 2, Name: "Neurologist", Description: "Advanced neurological care for brain, spine, and nervous system disorders with cutting-edge diagnostic and treatment facilities.", Icon: "fas fa-brain", Services: pq.StringArray{"MRI Scans", "EEG", "Stroke Treatment", "Epilepsy Care", "Brain Surgery"}, Specialists: 1},
		{ID: 3, Name: "Pediatrician", Description: "Dedicated healthcare for children from newborns to adolescents, providing comprehensive medical care in a child-friendly environment.", Icon: "fas fa-baby", Services: pq.StringArray{"Vaccinations", "Growth Monitoring", "Pediatric Surgery", "NICU", "Child Psychology"}, Specialists: 1},
		{ID: 4, Name: "Orthopedic Surgeon", Description: "Complete bone, joint, and muscle care including sports medicine, joint replacement, and trauma surgery with rehabilitation services.", Icon: "fas fa-bone", Services: pq.StringArray{"Joint Replacement", "Sports Medicine", "Trauma Surgery", "Physiotherapy", "Arthroscopy"}, Specialists: 1},
		{ID: 5, Name: "Dermatologist", Description: "Comprehensive skin care services including medical, surgical, and cosmetic dermatology with advanced laser treatments.", Icon: "fas fa-hand-paper", Services: pq.StringArray{"Skin Cancer Treatment", "Cosmetic Procedures", "Laser Therapy", "Acne Treatment", "Dermatologic Surgery"}, Specialists: 1},
		{ID: 6, Name: "General Surgeon", Description: "Expert surgical care including minimally invasive procedures, emergency surgeries, and comprehensive operative management.", Icon: "fas fa-user-md", Services: pq.StringArray{"Appendectomy", "Gallbladder Surgery", "Hernia Repair", "Emergency Surgery", "Minimally Invasive Surgery"}, Specialists: 1},
	}

	if err := configuration.DB.Create(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error seeding departments", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Departments seeded successfully",
		"count":   len(departments),
		"data":    departments,
	})
}
