package models

// SurveyQuestion 书院测评问题
type SurveyQuestion struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// SurveyRequest 测评提交请求
type SurveyRequest struct {
	Answers []string `json:"answers" binding:"required,min=1"`
}

// SurveyResult 测评结果
type SurveyResult struct {
	College string         `json:"college"`
	Votes   map[string]int `json:"votes"`
}

// GetSurveyQuestions 获取全部测评问题
func GetSurveyQuestions() []SurveyQuestion {
	return []SurveyQuestion{
		{
			ID:      1,
			Text:    "How would you describe your social energy level?",
			Options: []string{"Very outgoing and social", "Moderately social", "Prefer smaller groups", "Mostly introverted"},
		},
		{
			ID:      2,
			Text:    "What's your preferred study environment?",
			Options: []string{"Loud and energetic spaces", "Moderate activity", "Quiet and peaceful", "Complete silence"},
		},
		{
			ID:      3,
			Text:    "What activities interest you most?",
			Options: []string{"Parties and social events", "Academic clubs and study groups", "Arts and creative activities", "Environmental and outdoor activities"},
		},
		{
			ID:      4,
			Text:    "How do you feel about activism and social justice?",
			Options: []string{"Very passionate about it", "Somewhat interested", "Neutral", "Not my main focus"},
		},
		{
			ID:      5,
			Text:    "What's your academic focus?",
			Options: []string{"STEM/Engineering", "Arts and Humanities", "Environmental Studies", "Social Sciences", "Undecided"},
		},
	}
}

// 答案到书院的静态映射
var answerToCollege = map[string]string{
	"Very outgoing and social":              "Cowell College",
	"Moderately social":                     "Stevenson College",
	"Prefer smaller groups":                 "Merrill College",
	"Mostly introverted":                    "Crown College",
	"Loud and energetic spaces":             "Stevenson College",
	"Moderate activity":                     "Colleges Nine & Ten",
	"Quiet and peaceful":                    "Merrill College",
	"Complete silence":                      "Crown College",
	"Parties and social events":             "Cowell College",
	"Academic clubs and study groups":       "Crown College",
	"Arts and creative activities":          "Porter College",
	"Environmental and outdoor activities":  "Rachel Carson College",
	"Very passionate about it":              "Kresge College",
	"Somewhat interested":                   "Oakes College",
	"Neutral":                               "Colleges Nine & Ten",
	"Not my main focus":                     "Crown College",
	"STEM/Engineering":                      "Crown College",
	"Arts and Humanities":                   "Porter College",
	"Environmental Studies":                 "Rachel Carson College",
	"Social Sciences":                       "Oakes College",
	"Undecided":                             "Colleges Nine & Ten",
}

// EvaluateSurvey 统计各书院得票，返回得票最多的书院
// 平票时按答案顺序先到先得
func EvaluateSurvey(answers []string) SurveyResult {
	votes := make(map[string]int)
	best := ""
	for _, answer := range answers {
		college, ok := answerToCollege[answer]
		if !ok {
			continue
		}
		votes[college]++
		if best == "" || votes[college] > votes[best] {
			best = college
		}
	}
	return SurveyResult{College: best, Votes: votes}
}
