package recommend

import (
	"regexp"
	"strings"
	"sync"
)

// 已编译的词边界正则缓存，word -> *regexp.Regexp
var wordPatterns sync.Map

func wordPattern(word string) *regexp.Regexp {
	if v, ok := wordPatterns.Load(word); ok {
		return v.(*regexp.Regexp)
	}

	escaped := regexp.QuoteMeta(word)
	var re *regexp.Regexp
	if strings.Contains(word, " ") {
		// 短语按词组边界匹配，不允许子词拼接
		re = regexp.MustCompile(`(?i)(^|\s)` + escaped + `(\s|$)`)
	} else {
		// 单词按词边界匹配，避免"running"误中"countryrunning"
		re = regexp.MustCompile(`(?i)\b` + escaped + `\b`)
	}
	wordPatterns.Store(word, re)
	return re
}

// WholeWordMatch 判断word是否以完整词形式出现在text中
func WholeWordMatch(text, word string) bool {
	word = strings.TrimSpace(word)
	if text == "" || word == "" {
		return false
	}
	return wordPattern(word).MatchString(text)
}
