package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/slugspace/slugspace/configs"
	"github.com/slugspace/slugspace/database"
	"github.com/slugspace/slugspace/models"
	"github.com/slugspace/slugspace/pkg/cache"
	"github.com/slugspace/slugspace/pkg/recommend"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler 推荐接口处理器
// 持有各实体类型的打分器和结果缓存
type RecommendationHandler struct {
	clubScorer    *recommend.Scorer[clubCandidate]
	courseScorer  *recommend.Scorer[courseCandidate]
	collegeScorer *recommend.Scorer[models.College]
	cache         *cache.Cache
}

// 社团候选，附带成员数和热度
type clubCandidate struct {
	models.Club
	MemberCount int
	Popularity  float64
}

// 课程候选，附带学习小组数和活跃度
type courseCandidate struct {
	models.Course
	GroupCount int
	Activity   float64
}

// NewRecommendationHandler 创建推荐处理器
func NewRecommendationHandler(cfg *configs.Config) *RecommendationHandler {
	clubFields := recommend.Fields[clubCandidate]{
		ID:          func(c clubCandidate) string { return c.Club.ID },
		Name:        func(c clubCandidate) string { return c.Club.Name },
		Description: func(c clubCandidate) string { return c.Club.Description },
		Category:    func(c clubCandidate) string { return c.Club.Category },
		Popularity:  func(c clubCandidate) float64 { return c.Popularity },
	}

	// 课程热度乘数历史上就比社团高
	courseWeights := recommend.DefaultWeights()
	courseWeights.Popularity = 0.3
	courseFields := recommend.Fields[courseCandidate]{
		ID:          func(c courseCandidate) string { return c.Course.ID },
		Name:        func(c courseCandidate) string { return c.Course.Name },
		Description: func(c courseCandidate) string { return c.Course.Description },
		Category:    func(c courseCandidate) string { return c.Course.Code + " " + c.Course.Department },
		Popularity:  func(c courseCandidate) float64 { return c.Activity },
	}

	collegeFields := recommend.Fields[models.College]{
		ID:          func(c models.College) string { return c.ID },
		Name:        func(c models.College) string { return c.Name },
		Description: func(c models.College) string { return c.Description + " " + strings.Join(c.Stereotypes, " ") },
		Category:    func(c models.College) string { return strings.Join(c.Tags, " ") },
	}

	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &RecommendationHandler{
		clubScorer:    recommend.NewScorer(clubFields),
		courseScorer:  recommend.NewScorerWithWeights(courseFields, courseWeights),
		collegeScorer: recommend.NewScorer(collegeFields),
		cache:         cache.New(cfg.Cache.MaxEntries, ttl),
	}
}

// RegisterRoutes 注册路由
func (h *RecommendationHandler) RegisterRoutes(authorized *gin.RouterGroup) {
	authorized.GET("/recommendations", h.GetRecommendations)
}

// GetRecommendations 获取个性化推荐
// type为clubs/courses/colleges之一，limit限制在1-50
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	recType := c.DefaultQuery("type", "clubs")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 1
	}
	if limit > 50 {
		limit = 50
	}

	// 命中缓存直接返回
	key := cache.Key(user.ID, recType, limit)
	if cached, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, gin.H{"recommendations": cached, "cached": true})
		return
	}

	profile := recommend.Profile{
		Interests: user.Interests,
		Major:     user.Major,
		Year:      string(user.Year),
		College:   user.College,
	}

	var results []gin.H
	var err error
	switch recType {
	case "clubs":
		results, err = h.recommendClubs(user, profile, limit)
	case "courses":
		results, err = h.recommendCourses(user, profile, limit)
	case "colleges":
		results, err = h.recommendColleges(user, profile, limit)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recommendation type"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recommendations"})
		return
	}

	h.cache.Set(key, results)
	c.JSON(http.StatusOK, gin.H{"recommendations": results})
}

// recommendClubs 推荐社团，排除用户已加入的
func (h *RecommendationHandler) recommendClubs(user models.User, profile recommend.Profile, limit int) ([]gin.H, error) {
	var clubs []models.Club
	err := database.DB.Preload("Analytics").
		Where("is_active = ?", true).
		Where("id NOT IN (?)", database.DB.Model(&models.ClubMember{}).
			Select("club_id").Where("user_id = ?", user.ID)).
		Find(&clubs).Error
	if err != nil {
		return nil, err
	}

	memberCounts, err := countByKey(&models.ClubMember{}, "club_id")
	if err != nil {
		return nil, err
	}

	candidates := make([]clubCandidate, 0, len(clubs))
	for _, club := range clubs {
		candidates = append(candidates, clubCandidate{
			Club:        club,
			MemberCount: memberCounts[club.ID],
			Popularity:  float64(club.Analytics.PopularityScore()),
		})
	}

	scored := h.clubScorer.Recommend(candidates, profile, limit)
	results := make([]gin.H, 0, len(scored))
	for _, s := range scored {
		club := s.Candidate
		results = append(results, gin.H{
			"id":                  club.Club.ID,
			"name":                club.Club.Name,
			"category":            club.Club.Category,
			"description":         club.Club.Description,
			"memberCount":         club.MemberCount,
			"popularityScore":     club.Popularity,
			"recommendationScore": s.Score,
			"matchPercentage":     recommend.MatchPercentage(s.Score, len(profile.Interests)),
			"reasonsToJoin":       recommend.ClubReasons(len(profile.Interests) > 0, club.Popularity, club.MemberCount),
			"type":                "club",
		})
	}
	return results, nil
}

// recommendCourses 推荐课程，排除用户已加入学习小组的
func (h *RecommendationHandler) recommendCourses(user models.User, profile recommend.Profile, limit int) ([]gin.H, error) {
	var courses []models.Course
	err := database.DB.Preload("Analytics").
		Where("is_active = ?", true).
		Where("id NOT IN (?)", database.DB.Model(&models.StudyGroupMember{}).
			Select("course_id").Where("user_id = ?", user.ID)).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	groupCounts, err := countByKey(&models.StudyGroupMember{}, "course_id")
	if err != nil {
		return nil, err
	}

	candidates := make([]courseCandidate, 0, len(courses))
	for _, course := range courses {
		candidates = append(candidates, courseCandidate{
			Course:     course,
			GroupCount: groupCounts[course.ID],
			Activity:   float64(course.Analytics.ActivityScore()),
		})
	}

	scored := h.courseScorer.Recommend(candidates, profile, limit)
	results := make([]gin.H, 0, len(scored))
	for _, s := range scored {
		course := s.Candidate
		results = append(results, gin.H{
			"id":                  course.Course.ID,
			"code":                course.Course.Code,
			"name":                course.Course.Name,
			"description":         course.Course.Description,
			"studyGroupCount":     course.GroupCount,
			"activityScore":       course.Activity,
			"recommendationScore": s.Score,
			"matchPercentage":     recommend.MatchPercentage(s.Score, len(profile.Interests)),
			"reasonsToJoin":       recommend.CourseReasons(course.GroupCount, course.Activity),
			"type":                "course",
		})
	}
	return results, nil
}

// recommendColleges 推荐书院
func (h *RecommendationHandler) recommendColleges(user models.User, profile recommend.Profile, limit int) ([]gin.H, error) {
	var colleges []models.College
	if err := database.DB.Find(&colleges).Error; err != nil {
		return nil, err
	}

	scored := h.collegeScorer.Recommend(colleges, profile, limit)
	majorLower := strings.ToLower(user.Major)
	stemMajor := strings.Contains(majorLower, "computer") || strings.Contains(majorLower, "engineering")

	results := make([]gin.H, 0, len(scored))
	for _, s := range scored {
		college := s.Candidate
		stereotypes := strings.ToLower(strings.Join(college.Stereotypes, " "))
		results = append(results, gin.H{
			"id":                  college.ID,
			"name":                college.Name,
			"stereotypes":         college.Stereotypes,
			"recommendationScore": s.Score,
			"matchPercentage":     recommend.MatchPercentage(s.Score, len(profile.Interests)),
			"matchingReasons": recommend.CollegeReasons(
				stemMajor,
				strings.Contains(stereotypes, "stem"),
				strings.Contains(stereotypes, "creative") && containsInterest(profile.Interests, "art"),
			),
			"type": "college",
		})
	}
	return results, nil
}

// countByKey 统计成员表按外键分组的行数
func countByKey(model interface{}, column string) (map[string]int, error) {
	type row struct {
		K   string
		Cnt int
	}
	var rows []row
	err := database.DB.Model(model).
		Select(column + " AS k, COUNT(*) AS cnt").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.K] = r.Cnt
	}
	return counts, nil
}

func containsInterest(interests []string, target string) bool {
	for _, interest := range interests {
		if strings.EqualFold(strings.TrimSpace(interest), target) {
			return true
		}
	}
	return false
}
