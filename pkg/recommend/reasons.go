package recommend

import (
	"math"
)

// 推荐理由的触发阈值
const (
	popularClubThreshold     = 5
	activeCommunityThreshold = 20
	activeGroupsThreshold    = 3
	engagementThreshold      = 5
)

// ClubReasons 生成社团推荐理由
// 理由只是展示层的补充说明，不参与排序
func ClubReasons(interestMatch bool, popularity float64, memberCount int) []string {
	var reasons []string
	if interestMatch {
		reasons = append(reasons, "Matches your interests")
	}
	if popularity > popularClubThreshold {
		reasons = append(reasons, "Popular among students")
	}
	if memberCount > activeCommunityThreshold {
		reasons = append(reasons, "Active community")
	}
	return reasons
}

// CourseReasons 生成课程推荐理由
func CourseReasons(studyGroupCount int, activityScore float64) []string {
	var reasons []string
	if studyGroupCount > activeGroupsThreshold {
		reasons = append(reasons, "Active study groups")
	}
	if activityScore > engagementThreshold {
		reasons = append(reasons, "High student engagement")
	}
	return reasons
}

// CollegeReasons 生成书院推荐理由
func CollegeReasons(stemMajor bool, stemCollege bool, creative bool) []string {
	var reasons []string
	if stemMajor && stemCollege {
		reasons = append(reasons, "Great for STEM majors")
	}
	if creative {
		reasons = append(reasons, "Creative community")
	}
	return reasons
}

// MatchPercentage 将原始分换算为展示用的匹配百分比
// 公式为 min(100, round(score/(n*10)*100))，仅用于展示
func MatchPercentage(score float64, numInterests int) int {
	if numInterests <= 0 || score <= 0 {
		return 0
	}
	pct := int(math.Round(score / (float64(numInterests) * 10) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
