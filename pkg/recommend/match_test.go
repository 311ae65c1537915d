package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWholeWordMatch(t *testing.T) {
	cases := []struct {
		text     string
		word     string
		expected bool
	}{
		// 单词按词边界匹配
		{"ucsc running club", "running", true},
		{"longest running traditions", "running", true},
		{"the cross-countryrunning-club", "running", false},
		{"programmer meetup", "program", false},
		{"ai club", "ai", true},
		{"aikido club", "ai", false},

		// 短语按词组边界匹配
		{"our cross country team meets weekly", "cross country", true},
		{"cross country", "cross country", true},
		{"crosscountry runners", "cross country", false},
		{"the cross-country team", "cross country", false},

		// 大小写不敏感
		{"UCSC Judo Club", "judo", true},

		// 正则特殊字符按字面处理
		// 词边界依赖词字符，符号结尾的词没有右边界
		{"c++ programming club", "c++", false},
		{"c-plus-plus programming club", "plus", true},

		// 空输入
		{"", "running", false},
		{"running club", "", false},
		{"running club", "   ", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, WholeWordMatch(tc.text, tc.word),
			"text=%q word=%q", tc.text, tc.word)
	}
}
