package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPercentage(t *testing.T) {
	// 公式: min(100, round(score/(n*10)*100))
	assert.Equal(t, 100, MatchPercentage(10, 1))
	assert.Equal(t, 50, MatchPercentage(5, 1))
	assert.Equal(t, 100, MatchPercentage(35, 2))
	assert.Equal(t, 65, MatchPercentage(13, 2))
	assert.Equal(t, 0, MatchPercentage(0, 3))
	assert.Equal(t, 0, MatchPercentage(12, 0))
	assert.Equal(t, 0, MatchPercentage(-1, 1))
}

func TestClubReasons(t *testing.T) {
	reasons := ClubReasons(true, 8, 25)
	assert.Equal(t, []string{"Matches your interests", "Popular among students", "Active community"}, reasons)

	// 阈值以下不产生理由
	assert.Empty(t, ClubReasons(false, 5, 20))
}

func TestCourseReasons(t *testing.T) {
	reasons := CourseReasons(4, 6)
	assert.Equal(t, []string{"Active study groups", "High student engagement"}, reasons)

	assert.Empty(t, CourseReasons(3, 5))
}

func TestCollegeReasons(t *testing.T) {
	reasons := CollegeReasons(true, true, true)
	assert.Equal(t, []string{"Great for STEM majors", "Creative community"}, reasons)

	assert.Empty(t, CollegeReasons(true, false, false))
}
