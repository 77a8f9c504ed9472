package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"virtual-healthcare/configuration"
	"virtual-healthcare/models"
	"virtual-healthcare/schedule"
	"virtual-healthcare/sequence"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var doctorAlloc sequence.Allocator

const doctorsCacheKey = "doctors:all"

func preloadSlots(db *gorm.DB) *gorm.DB {
	return db.Preload("TimeSlots", func(db *gorm.DB) *gorm.DB {
		return db.Order("time_slots.id asc")
	})
}

// GetAllDoctors returns the roster sorted by id, served from redis when the
// cached copy is still fresh
func GetAllDoctors(c *gin.Context) {
	if cached, err := configuration.GetRedis(doctorsCacheKey); err == nil && cached != "" {
		var doctors []models.Doctor
		if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "count": len(doctors), "data": doctors})
			return
		}
	}

	var doctors []models.Doctor
	if err := preloadSlots(configuration.DB).Order("id asc").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching doctors", "error": "internal server error"})
		return
	}

	if data, err := json.Marshal(doctors); err == nil {
		configuration.SetRedis(doctorsCacheKey, data, 60*time.Second)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(doctors), "data": doctors})
}

// GetDoctorByID
func GetDoctorByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid doctor id"})
		return
	}

	var doctor models.Doctor
	if err := preloadSlots(configuration.DB).Where("id = ?", id).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Doctor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doctor})
}

// GetDoctorsBySpecialty matches the specialty case-insensitively as a substring
func GetDoctorsBySpecialty(c *gin.Context) {
	specialty := c.Param("specialty")

	var doctors []models.Doctor
	if err := preloadSlots(configuration.DB).
		Where("specialty ILIKE ?", "%"+specialty+"%").
		Order("id asc").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching doctors by specialty", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(doctors), "data": doctors})
}

// GetDoctorsByDay lists doctors whose availableDays mention the day,
// case-insensitively
func GetDoctorsByDay(c *gin.Context) {
	day := c.Param("day")

	var doctors []models.Doctor
	if err := preloadSlots(configuration.DB).
		Where("array_to_string(available_days, ',') ILIKE ?", "%"+day+"%").
		Order("id asc").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching doctors by day", "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(doctors), "data": doctors})
}

// GetDoctorAvailability shapes the doctor's slots into the full weekly view
func GetDoctorAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid doctor id"})
		return
	}

	var doctor models.Doctor
	if err := preloadSlots(configuration.DB).Where("id = ?", id).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Doctor not found"})
		return
	}

	weekly := schedule.Build(&doctor)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"doctorId": doctor.ID,
			"source":   weekly.Source,
			"week":     weekly.Week(),
		},
	})
}

// GetDoctorAvailabilityByDay returns the slots for one weekday. A closed or
// unknown day answers with an empty list, not an error.
func GetDoctorAvailabilityByDay(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid doctor id"})
		return
	}
	day := c.Param("day")

	var doctor models.Doctor
	if err := preloadSlots(configuration.DB).Where("id = ?", id).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Doctor not found"})
		return
	}

	weekly := schedule.Build(&doctor)
	slots := weekly.SlotsForDay(day)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(slots),
		"data": gin.H{
			"doctorId":  doctor.ID,
			"day":       day,
			"available": weekly.IsDayAvailable(day),
			"slots":     slots,
		},
	})
}

// CreateDoctor
func CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}

	// Validate doctor struct fields
	if err := validate.Struct(doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill all the mandatory fields", "error": err.Error()})
		return
	}

	_, err := doctorAlloc.Next(
		func() (int, error) {
			var max int
			err := configuration.DB.Model(&models.Doctor{}).Select("COALESCE(MAX(id), 0)").Scan(&max).Error
			return max, err
		},
		func(id int) error {
			doctor.ID = id
			return configuration.DB.Create(&doctor).Error
		},
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error creating doctor", "error": "internal server error"})
		return
	}

	configuration.DelRedis(doctorsCacheKey)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": doctor})
}

// UpdateDoctor rewrites the record, replacing the slot rows with whatever
// the payload carries
func UpdateDoctor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid doctor id"})
		return
	}

	var doctor models.Doctor
	if err := preloadSlots(configuration.DB).Where("id = ?", id).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Doctor not found"})
		return
	}

	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Binding error", "error": err.Error()})
		return
	}
	doctor.ID = id

	// Slot rows are wiped and re-created so removed slots do not linger.
	if err := configuration.DB.Where("doctor_id = ?", id).Delete(&models.TimeSlot{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating doctor", "error": "internal server error"})
		return
	}
	for i := range doctor.TimeSlots {
		doctor.TimeSlots[i].ID = 0
		doctor.TimeSlots[i].DoctorID = id
	}

	if err := configuration.DB.Save(&doctor).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error updating doctor", "error": "internal server error"})
		return
	}

	configuration.DelRedis(doctorsCacheKey)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": doctor})
}

// DeleteDoctor removes the doctor, its slot rows and its credential row, so
// no orphaned login is left behind
func DeleteDoctor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid doctor id"})
		return
	}

	var doctor models.Doctor
	if err := configuration.DB.Where("id = ?", id).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Doctor not found"})
		return
	}

	if err := configuration.DB.Where("doctor_id = ?", id).Delete(&models.TimeSlot{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting doctor", "error": "internal server error"})
		return
	}
	if err := configuration.DB.Delete(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting doctor", "error": "internal server error"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	if err := credentialService.DeleteByDoctor(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting doctor credentials", "error": "internal server error"})
		return
	}

	configuration.DelRedis(doctorsCacheKey)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Doctor deleted successfully"})
}

// GetDoctorProfile serves the authenticated doctor's own record with the
// weekly availability attached
func GetDoctorProfile(c *gin.Context) {
	doctorID, ok := c.Get("doctor_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Doctor not authenticated"})
		return
	}

	var doctor models.Doctor
	if err := preloadSlots(configuration.DB).Where("id = ?", doctorID).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Doctor not found"})
		return
	}

	weekly := schedule.Build(&doctor)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"doctor": doctor,
			"week":   weekly.Week(),
			"source": weekly.Source,
		},
	})
}

// SeedDoctors resets the roster to the initial doctor data. Destructive.
func SeedDoctors(c *gin.Context) {
	if err := configuration.DB.Where("1 = 1").Delete(&models.TimeSlot{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error seeding doctors", "error": "internal server error"})
		return
	}
	if err := configuration.DB.Where("1 = 1").Delete(&models.Doctor{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error seeding doctors", "error": "internal server error"})
		return
	}

	doctors := initialDoctors()
	if err := configuration.DB.Create(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error seeding doctors", "error": "internal server error"})
		return
	}

	configuration.DelRedis(doctorsCacheKey)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Doctors seeded successfully",
		"count":   len(doctors),
		"data":    doctors,
	})
}
