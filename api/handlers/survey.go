package handlers

import (
	"net/http"

	"github.com/slugspace/slugspace/database"
	"github.com/slugspace/slugspace/models"
	"github.com/slugspace/slugspace/pkg/recommend"

	"github.com/gin-gonic/gin"
)

// GetSurveyQuestions 获取书院测评问题
func GetSurveyQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions": models.GetSurveyQuestions(),
	})
}

// SubmitSurvey 提交测评答案，返回得票最多的书院
func SubmitSurvey(c *gin.Context) {
	var req models.SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := models.EvaluateSurvey(req.Answers)
	if result.College == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid answers provided"})
		return
	}

	var college models.College
	if err := database.DB.Where("name = ?", result.College).First(&college).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"result": result, "college": college})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// MatchCollegesByTags 按选中标签推荐书院（标签确认页使用）
func MatchCollegesByTags(c *gin.Context) {
	var req struct {
		Tags []string `json:"tags" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var colleges []models.College
	if err := database.DB.Find(&colleges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch colleges"})
		return
	}

	scored := recommend.RecommendByTags(colleges, func(col models.College) []string {
		return col.Tags
	}, req.Tags)

	results := make([]gin.H, 0, len(scored))
	for _, s := range scored {
		results = append(results, gin.H{
			"id":    s.Candidate.ID,
			"name":  s.Candidate.Name,
			"tags":  s.Candidate.Tags,
			"score": s.Score,
		})
	}

	c.JSON(http.StatusOK, gin.H{"colleges": results})
}
