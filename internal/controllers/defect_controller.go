package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"smartcoach/internal/config"
	"smartcoach/internal/models"
	"smartcoach/internal/notify"
	"smartcoach/internal/storage"
)

type imageUpload struct {
	Filename string `json:"filename" binding:"required"`
	Data     string `json:"data" binding:"required"` // base64
}

type coachReport struct {
	CoachID     uint         `json:"coach_id" binding:"required"`
	DefectTypes []string     `json:"defect_types"`
	CustomText  string       `json:"custom_text"`
	Image       *imageUpload `json:"image"`
}

type reportDefectsInput struct {
	TrainID uint          `json:"train_id" binding:"required"`
	Coaches []coachReport `json:"coaches" binding:"required"`
}

// ReportDefects materializes one defect record per selected
// (coach, defect type) pair. Each coach commits independently, so a
// failure on one coach leaves the others' records intact, and an
// unknown coach id is skipped rather than aborting the batch.
func ReportDefects(c *gin.Context) {
	var input reportDefectsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := uint(c.MustGet("user_id").(float64))
	var reporter models.User
	if err := config.DB.First(&reporter, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "reporting user not found"})
		return
	}

	var summaries []notify.SummaryLine
	created := 0

	for _, sel := range input.Coaches {
		var coach models.Coach
		err := config.DB.Preload("Train").
			Where("id = ? AND train_id = ?", sel.CoachID, input.TrainID).
			First(&coach).Error
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"coach_id": sel.CoachID,
				"train_id": input.TrainID,
			}).Warn("skipping unknown coach in defect report")
			continue
		}

		if len(sel.DefectTypes) == 0 {
			continue
		}

		// One stored image per coach, shared by all its defect rows
		imagePath := ""
		if sel.Image != nil {
			path, err := storage.SaveDefectImage(sel.Image.Filename, sel.Image.Data)
			if err != nil {
				logrus.WithError(err).WithField("coach_id", coach.ID).
					Warn("could not store defect image")
			} else {
				imagePath = path
			}
		}

		// Records for one coach commit together; a failure here rolls
		// back only this coach and the loop moves on.
		var coachLines []notify.SummaryLine
		err = config.DB.Transaction(func(tx *gorm.DB) error {
			coachLines = coachLines[:0]
			for _, defectType := range sel.DefectTypes {
				if !models.ValidDefectType(defectType) {
					logrus.WithField("defect_type", defectType).
						Warn("skipping unknown defect type in report")
					continue
				}
				customText := ""
				if defectType == "Other" {
					customText = sel.CustomText
				}
				defect := models.Defect{
					CoachID:      coach.ID,
					DefectType:   defectType,
					CustomText:   customText,
					ImagePath:    imagePath,
					ReportedByID: reporter.ID,
					ReportedAt:   time.Now(),
					Status:       models.StatusPending,
				}
				if err := tx.Create(&defect).Error; err != nil {
					return err
				}
				coachLines = append(coachLines, notify.SummaryLine{
					Coach:      coach.Label(),
					DefectType: defectType,
					CustomText: customText,
					HasPhoto:   imagePath != "",
					Status:     defect.Status,
				})
			}
			return nil
		})
		if err != nil {
			logrus.WithError(err).WithField("coach_id", coach.ID).
				Error("defect batch failed for coach")
			continue
		}
		created += len(coachLines)
		summaries = append(summaries, coachLines...)
	}

	if created > 0 {
		notify.DeliverAsync(notify.ReportSummary(reporter.Username, reporter.Email, summaries))
		c.JSON(http.StatusOK, gin.H{
			"message":         "Defect(s) reported successfully!",
			"defects_created": created,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "No defects were submitted.",
		"defects_created": 0,
	})
}

// MyDefects lists the authenticated passenger's own reports, newest
// first.
func MyDefects(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	var defects []models.Defect
	if err := config.DB.Preload("Coach").Preload("Coach.Train").
		Where("reported_by_id = ?", userID).
		Order("reported_at DESC").
		Find(&defects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching defects: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": defects})
}

// ListDefects returns every defect for the staff triage view.
func ListDefects(c *gin.Context) {
	var defects []models.Defect
	if err := config.DB.Preload("Coach").Preload("Coach.Train").Preload("ReportedBy").
		Order("reported_at DESC").
		Find(&defects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing defects: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": defects})
}

type statusUpdateInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateDefectStatus moves a defect to a new status and notifies the
// original reporter. A missing defect changes nothing.
func UpdateDefectStatus(c *gin.Context) {
	defectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid defect ID format."})
		return
	}

	var input statusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value."})
		return
	}

	var defect models.Defect
	if err := config.DB.Preload("Coach").Preload("Coach.Train").Preload("ReportedBy").
		First(&defect, uint(defectID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Defect not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	previous := defect.Status
	if !models.CanTransition(previous, input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transition from '" + previous + "' to '" + input.Status + "' is not allowed."})
		return
	}

	if err := config.DB.Model(&defect).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update defect: " + err.Error()})
		return
	}

	notify.DeliverAsync(notify.StatusUpdate(
		defect.ReportedBy.Username,
		defect.ReportedBy.Email,
		defect.ID,
		defect.Coach.Train.Label(),
		defect.Coach.CoachNumber,
		defect.DefectType,
		previous,
		input.Status,
	))

	c.JSON(http.StatusOK, gin.H{
		"message": "Defect ID " + strconv.FormatUint(defectID, 10) + " updated to '" + input.Status + "'",
		"defect":  defect,
	})
}
