package recommend

import (
	"math"
	"sort"
	"strings"
)

// 默认返回条数
const DefaultLimit = 10

// 特殊类别加分
const (
	greekLetterBonus = 10
	sportClubBoost   = 1
)

// Profile 参与匹配的用户画像
type Profile struct {
	Interests []string
	Major     string
	Year      string
	College   string
}

// Fields 候选实体的字段提取配置
// 同一套打分逻辑通过它适配社团/课程/书院三种实体
type Fields[T any] struct {
	ID          func(T) string
	Name        func(T) string
	Description func(T) string
	Category    func(T) string
	Popularity  func(T) float64
}

// Weights 打分权重配置
type Weights struct {
	KeywordName     float64 // 关键词展开命中名称
	KeywordDesc     float64 // 关键词展开命中描述
	KeywordCategory float64 // 关键词展开命中类别
	DirectName      float64 // 原始兴趣命中名称
	DirectDesc      float64 // 原始兴趣命中描述
	DirectCategory  float64 // 原始兴趣命中类别
	CategoryGroup   float64 // 宽泛类别组命中
	MajorToken      float64 // 专业分词命中（每词）
	Popularity      float64 // 热度乘数
}

// DefaultWeights 默认权重
// 这些常量是产品调出来的经验值，改动会改变推荐行为
func DefaultWeights() Weights {
	return Weights{
		KeywordName:     10,
		KeywordDesc:     8,
		KeywordCategory: 6,
		DirectName:      9,
		DirectDesc:      6,
		DirectCategory:  5,
		CategoryGroup:   3,
		MajorToken:      2,
		Popularity:      0.2,
	}
}

// Scored 附带分数与推荐理由的候选
type Scored[T any] struct {
	Candidate T       `json:"candidate"`
	Score     float64 `json:"score"`
	Reasons   []string `json:"reasons,omitempty"`
}

// Scorer 兴趣匹配打分器
// 纯函数式，无副作用，可被任意数量的调用方并发使用
type Scorer[T any] struct {
	fields  Fields[T]
	weights Weights
}

// NewScorer 使用默认权重创建打分器
func NewScorer[T any](fields Fields[T]) *Scorer[T] {
	return NewScorerWithWeights(fields, DefaultWeights())
}

// NewScorerWithWeights 使用自定义权重创建打分器
func NewScorerWithWeights[T any](fields Fields[T], weights Weights) *Scorer[T] {
	return &Scorer[T]{fields: fields, weights: weights}
}

func (s *Scorer[T]) extract(fn func(T) string, candidate T) string {
	if fn == nil {
		return ""
	}
	return strings.ToLower(fn(candidate))
}

// Score 计算单个候选对给定画像的匹配分
// 缺失字段按空值处理，任何输入下结果都是非负的
func (s *Scorer[T]) Score(candidate T, profile Profile) float64 {
	w := s.weights
	name := s.extract(s.fields.Name, candidate)
	desc := s.extract(s.fields.Description, candidate)
	category := s.extract(s.fields.Category, candidate)
	combined := name + " " + desc + " " + category

	score := 0.0

	for _, raw := range profile.Interests {
		interest := strings.ToLower(strings.TrimSpace(raw))
		if interest == "" {
			continue
		}

		// 1. 关键词展开匹配（最高优先级）
		// 名称命中后停止，描述命中后停止，类别命中继续累计
		if keywords, ok := interestKeywords[interest]; ok {
			for _, keyword := range keywords {
				if WholeWordMatch(name, keyword) {
					score += w.KeywordName
					break
				}
				if WholeWordMatch(desc, keyword) {
					score += w.KeywordDesc
					break
				}
				if WholeWordMatch(category, keyword) {
					score += w.KeywordCategory
				}
			}
		}

		// 2. 原始兴趣命中名称
		// 单词走词边界匹配，短语走子串匹配，两种策略的不对称是有意为之
		if !strings.Contains(interest, " ") {
			if WholeWordMatch(name, interest) {
				score += w.DirectName
			}
		} else if strings.Contains(name, interest) {
			score += w.DirectName
		}

		// 3. 原始兴趣命中描述
		if !strings.Contains(interest, " ") {
			if WholeWordMatch(desc, interest) {
				score += w.DirectDesc
			}
		} else if strings.Contains(desc, interest) {
			score += w.DirectDesc
		}

		// 4. 原始兴趣命中类别
		if strings.Contains(category, interest) {
			score += w.DirectCategory
		}

		// 5. 宽泛类别组匹配（如"Sports"、"Tech"）
		for group, keywords := range categoryKeywords {
			groupLower := strings.ToLower(group)
			if groupLower == interest || strings.Contains(interest, groupLower) {
				for _, keyword := range keywords {
					if WholeWordMatch(combined, keyword) {
						score += w.CategoryGroup
					}
				}
			}
		}

		// 6. 希腊字母社团类别加分
		if (strings.Contains(interest, "fraternity") || strings.Contains(interest, "sorority") ||
			strings.Contains(interest, "greek")) && strings.Contains(category, "greek letter") {
			score += greekLetterBonus
		}

		// 7. 运动类兜底加分，仅在此前毫无命中时生效
		if score == 0 && strings.Contains(category, "sport club") {
			for _, hint := range sportInterestHints {
				if strings.Contains(interest, hint) {
					score += sportClubBoost
					break
				}
			}
		}
	}

	// 专业分词匹配，仅取长度大于3的词
	if profile.Major != "" {
		for _, word := range strings.Fields(strings.ToLower(profile.Major)) {
			if len(word) > 3 && WholeWordMatch(combined, word) {
				score += w.MajorToken
			}
		}
	}

	// 热度加分，不受零分过滤门槛影响地参与累加
	if s.fields.Popularity != nil {
		score += s.fields.Popularity(candidate) * w.Popularity
	}

	return math.Round(score*100) / 100
}

// Recommend 对候选列表打分并返回前limit个正分结果
// 降序排列，同分保持输入顺序；零分候选一律不出现在结果中
func (s *Scorer[T]) Recommend(candidates []T, profile Profile, limit int) []Scored[T] {
	scored := make([]Scored[T], 0, len(candidates))
	for _, candidate := range candidates {
		sc := s.Score(candidate, profile)
		if sc <= 0 {
			continue
		}
		scored = append(scored, Scored[T]{Candidate: candidate, Score: sc})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// RecommendByTags 按标签重合数为候选排序
// 每个选中标签与候选标签集重合一次计1分，仅返回有重合的候选
func RecommendByTags[T any](candidates []T, tags func(T) []string, selected []string) []Scored[T] {
	scored := make([]Scored[T], 0, len(candidates))
	for _, candidate := range candidates {
		have := make(map[string]bool)
		for _, tag := range tags(candidate) {
			have[strings.ToLower(strings.TrimSpace(tag))] = true
		}
		count := 0
		for _, tag := range selected {
			if have[strings.ToLower(strings.TrimSpace(tag))] {
				count++
			}
		}
		if count == 0 {
			continue
		}
		scored = append(scored, Scored[T]{Candidate: candidate, Score: float64(count)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
