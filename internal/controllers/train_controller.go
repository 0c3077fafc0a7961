package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartcoach/internal/config"
	"smartcoach/internal/models"
)

type createTrainInput struct {
	Number string `json:"number" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// CreateTrain registers a new train. The number is unique regardless
// of case.
func CreateTrain(c *gin.Context) {
	var input createTrainInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	number := strings.TrimSpace(input.Number)
	name := strings.TrimSpace(input.Name)
	if number == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Train number and name are required."})
		return
	}

	var count int64
	config.DB.Model(&models.Train{}).Where("LOWER(number) = LOWER(?)", number).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Train with this number already exists."})
		return
	}

	train := models.Train{Number: number, Name: name}
	if err := config.DB.Create(&train).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Train with this number already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while adding the train: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Train added successfully.", "train": train})
}

// ListTrains returns all trains with their coaches, as shown on the
// report form and the admin dashboard.
func ListTrains(c *gin.Context) {
	var trains []models.Train
	if err := config.DB.Preload("Coaches").Find(&trains).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch trains"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trains})
}

// DeleteTrain removes a train together with its coaches and their
// defects. Deleting an unknown id is a no-op success.
func DeleteTrain(c *gin.Context) {
	id := c.Param("id")

	// Hard delete throughout: a soft-deleted train would keep its
	// number locked behind the unique index.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var coachIDs []uint
		if err := tx.Model(&models.Coach{}).Where("train_id = ?", id).Pluck("id", &coachIDs).Error; err != nil {
			return err
		}
		if len(coachIDs) > 0 {
			if err := tx.Unscoped().Where("coach_id IN ?", coachIDs).Delete(&models.Defect{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("train_id = ?", id).Delete(&models.Coach{}).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&models.Train{}, id).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete train: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Train deleted successfully."})
}

type createCoachInput struct {
	CoachNumber string `json:"coach_number" binding:"required"`
	CoachType   string `json:"coach_type" binding:"required"`
}

// CreateCoach adds a coach to a train.
func CreateCoach(c *gin.Context) {
	trainID := c.Param("id")

	var input createCoachInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCoachType(input.CoachType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coach type."})
		return
	}

	var train models.Train
	if err := config.DB.First(&train, trainID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Train not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	coach := models.Coach{
		CoachNumber: input.CoachNumber,
		CoachType:   input.CoachType,
		TrainID:     train.ID,
	}
	if err := config.DB.Create(&coach).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Coach with this number already exists on this train."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create coach: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Coach " + coach.CoachNumber + " added to " + train.Name + ".",
		"coach":   coach,
	})
}

// DeleteCoach removes a coach and its defects.
func DeleteCoach(c *gin.Context) {
	id := c.Param("id")

	var coach models.Coach
	if err := config.DB.Preload("Train").First(&coach, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coach not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	// Hard delete so the coach number becomes reusable on this train
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("coach_id = ?", coach.ID).Delete(&models.Defect{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&coach).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coach: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coach " + coach.CoachNumber + " removed from " + coach.Train.Name + ".",
	})
}

// GetCoaches is the lookup the report form calls when a train is
// picked.
func GetCoaches(c *gin.Context) {
	trainID := c.Param("id")

	var coaches []models.Coach
	if err := config.DB.Where("train_id = ?", trainID).Find(&coaches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch coaches"})
		return
	}

	out := make([]gin.H, 0, len(coaches))
	for _, coach := range coaches {
		out = append(out, gin.H{
			"id":           coach.ID,
			"coach_number": coach.CoachNumber,
			"coach_type":   coach.CoachType,
		})
	}
	c.JSON(http.StatusOK, gin.H{"coaches": out})
}
