package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testClub struct {
	id          string
	name        string
	description string
	category    string
	popularity  float64
}

func testFields() Fields[testClub] {
	return Fields[testClub]{
		ID:          func(c testClub) string { return c.id },
		Name:        func(c testClub) string { return c.name },
		Description: func(c testClub) string { return c.description },
		Category:    func(c testClub) string { return c.category },
		Popularity:  func(c testClub) float64 { return c.popularity },
	}
}

func TestScoreKeywordExpansion(t *testing.T) {
	scorer := NewScorer(testFields())

	// "Martial Arts"展开后的"judo"整词命中名称，+10
	judoClub := testClub{id: "c1", name: "UCSC Judo Club", category: "Sport Club"}
	bakingClub := testClub{id: "c2", name: "Baking Society", category: "Special Interest"}
	profile := Profile{Interests: []string{"Martial Arts"}}

	assert.Equal(t, 10.0, scorer.Score(judoClub, profile))
	assert.Equal(t, 0.0, scorer.Score(bakingClub, profile))
}

func TestRecommendEndToEnd(t *testing.T) {
	scorer := NewScorer(testFields())

	candidates := []testClub{
		{id: "c1", name: "UCSC Judo Club", category: "Sport Club"},
		{id: "c2", name: "Baking Society", category: "Special Interest"},
	}
	profile := Profile{Interests: []string{"Martial Arts"}}

	results := scorer.Recommend(candidates, profile, 5)

	// 零分候选永远不出现在结果中
	assert.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].Candidate.id)
	assert.Equal(t, 10.0, results[0].Score)
}

func TestWholeWordPrecision(t *testing.T) {
	scorer := NewScorer(testFields())
	profile := Profile{Interests: []string{"running"}}

	// 整词命中
	positive := testClub{id: "p", name: "UCSC Running Club"}
	assert.Greater(t, scorer.Score(positive, profile), 0.0)

	// "running"作为句中独立词也算整词命中
	traditions := testClub{id: "t", name: "Longest Running Traditions Club"}
	assert.Greater(t, scorer.Score(traditions, profile), 0.0)

	// 无词边界的拼接不得误中
	negative := testClub{id: "n", name: "the cross-countryrunning-club"}
	assert.Equal(t, 0.0, scorer.Score(negative, profile))
}

func TestPhraseMatching(t *testing.T) {
	scorer := NewScorer(testFields())

	// 多词兴趣按词组边界匹配描述
	club := testClub{id: "c", name: "Athletics", description: "our cross country team meets every morning"}
	profile := Profile{Interests: []string{"cross country"}}

	assert.Greater(t, scorer.Score(club, profile), 0.0)
}

func TestEmptyInterests(t *testing.T) {
	scorer := NewScorer(testFields())

	// 空兴趣列表时分数恰好等于热度加成
	popular := testClub{id: "p", name: "Chess Club", popularity: 30}
	quiet := testClub{id: "q", name: "Quiet Club", popularity: 0}
	profile := Profile{Interests: []string{}}

	assert.Equal(t, 6.0, scorer.Score(popular, profile)) // 30 * 0.2
	assert.Equal(t, 0.0, scorer.Score(quiet, profile))

	// 零分候选被排除
	results := scorer.Recommend([]testClub{popular, quiet}, profile, 10)
	assert.Len(t, results, 1)
	assert.Equal(t, "p", results[0].Candidate.id)
}

func TestScoreNonNegative(t *testing.T) {
	scorer := NewScorer(testFields())

	clubs := []testClub{
		{},
		{id: "x", name: "", description: "", category: ""},
		{id: "y", name: "Random Club", popularity: 0},
	}
	profiles := []Profile{
		{},
		{Interests: []string{""}},
		{Interests: []string{"  ", "soccer", "AI/ML"}, Major: "Computer Science"},
	}

	for _, club := range clubs {
		for _, profile := range profiles {
			assert.GreaterOrEqual(t, scorer.Score(club, profile), 0.0)
		}
	}
}

func TestRecommendDeterminism(t *testing.T) {
	scorer := NewScorer(testFields())

	candidates := []testClub{
		{id: "a", name: "UCSC Soccer Club", category: "Sport Club"},
		{id: "b", name: "Hiking Club", description: "outdoor hiking and camping", category: "Recreation"},
		{id: "c", name: "Ballroom Dance Team", category: "Performing Arts", popularity: 12},
	}
	profile := Profile{Interests: []string{"soccer", "dance", "Outdoors"}, Major: "Environmental Studies"}

	first := scorer.Recommend(candidates, profile, 10)
	for i := 0; i < 5; i++ {
		again := scorer.Recommend(candidates, profile, 10)
		assert.Equal(t, first, again)
	}
}

func TestRecommendOrderAndLimit(t *testing.T) {
	scorer := NewScorer(testFields())

	candidates := []testClub{
		{id: "a", name: "Baking Society", popularity: 1},
		{id: "b", name: "UCSC Judo Club", category: "Sport Club"},
		{id: "c", name: "Taekwondo Team", category: "Sport Club"},
		{id: "d", name: "Karate Club", category: "Sport Club"},
	}
	profile := Profile{Interests: []string{"Martial Arts"}}

	results := scorer.Recommend(candidates, profile, 2)

	// 结果数不超过limit
	assert.LessOrEqual(t, len(results), 2)

	// 降序排列
	for i := 0; i+1 < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].Score, results[i+1].Score)
	}
}

func TestRecommendStableTies(t *testing.T) {
	scorer := NewScorer(testFields())

	// 同分候选保持输入顺序
	candidates := []testClub{
		{id: "first", name: "Judo Alpha", category: "Sport Club"},
		{id: "second", name: "Judo Beta", category: "Sport Club"},
		{id: "third", name: "Judo Gamma", category: "Sport Club"},
	}
	profile := Profile{Interests: []string{"judo"}}

	results := scorer.Recommend(candidates, profile, 10)

	assert.Len(t, results, 3)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, results[1].Score, results[2].Score)
	assert.Equal(t, "first", results[0].Candidate.id)
	assert.Equal(t, "second", results[1].Candidate.id)
	assert.Equal(t, "third", results[2].Candidate.id)
}

func TestMajorTokenMatching(t *testing.T) {
	scorer := NewScorer(testFields())

	club := testClub{id: "c", name: "Computer Science Society", category: "Academic"}
	profile := Profile{Major: "Computer Science"}

	// "computer"和"science"各+2，介词等短词不计
	assert.Equal(t, 4.0, scorer.Score(club, profile))
}

func TestCategoryGroupMatching(t *testing.T) {
	scorer := NewScorer(testFields())

	// 宽泛兴趣"Tech"命中组合文本中的组关键词，每词+3
	club := testClub{id: "c", name: "Robotics Group", description: "engineering and programming projects", category: "Technology"}
	profile := Profile{Interests: []string{"Tech"}}

	// technology/engineering/programming三个组关键词各+3，
	// 类别"technology"包含原始兴趣"tech"再+5
	assert.Equal(t, 14.0, scorer.Score(club, profile))
}

func TestGreekLetterBonus(t *testing.T) {
	scorer := NewScorer(testFields())

	chapter := testClub{id: "g", name: "Alpha Sigma Phi", category: "Greek Letter Organization"}
	profile := Profile{Interests: []string{"Greek Life"}}

	score := scorer.Score(chapter, profile)
	assert.Greater(t, score, 10.0)
}

func TestScorerWithCustomWeights(t *testing.T) {
	weights := DefaultWeights()
	weights.Popularity = 0.3
	scorer := NewScorerWithWeights(testFields(), weights)

	club := testClub{id: "c", name: "Something Else", popularity: 10}
	profile := Profile{Interests: []string{}}

	assert.Equal(t, 3.0, scorer.Score(club, profile))
}

func TestRecommendByTags(t *testing.T) {
	type college struct {
		id   string
		tags []string
	}
	colleges := []college{
		{id: "crown", tags: []string{"stem", "quiet", "academic"}},
		{id: "porter", tags: []string{"arts", "creative"}},
		{id: "cowell", tags: []string{"social"}},
	}

	results := RecommendByTags(colleges, func(c college) []string { return c.tags }, []string{"STEM", "quiet", "arts"})

	assert.Len(t, results, 2)
	assert.Equal(t, "crown", results[0].Candidate.id)
	assert.Equal(t, 2.0, results[0].Score)
	assert.Equal(t, "porter", results[1].Candidate.id)
	assert.Equal(t, 1.0, results[1].Score)
}
