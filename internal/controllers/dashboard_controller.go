package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartcoach/internal/classify"
	"smartcoach/internal/config"
	"smartcoach/internal/models"
)

// AdminDashboard recomputes the aggregate numbers from the current
// defect set on every call. Defect volume is small enough that no
// cached view is kept.
func AdminDashboard(c *gin.Context) {
	var defects []models.Defect
	if err := config.DB.Select("defect_type", "status").Find(&defects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading defects: " + err.Error()})
		return
	}

	rows := make([]classify.Defect, 0, len(defects))
	for _, d := range defects {
		rows = append(rows, classify.Defect{DefectType: d.DefectType, Status: d.Status})
	}
	agg := classify.Count(rows)

	var trains []models.Train
	if err := config.DB.Preload("Coaches").Find(&trains).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading trains: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_defects":      agg.Total,
		"defect_type_counts": agg.Categories,
		"status_counts":      agg.StatusCounts,
		"pending_count":      agg.PendingCount,
		"trains":             trains,
	})
}
