package recommend

// 兴趣到关键词的直接映射，保证精确匹配
var interestKeywords = map[string][]string{
	// 格斗运动
	"martial arts": {"judo", "taekwondo", "muay thai", "karate", "grappling", "fencing", "martial", "combat"},
	"judo":         {"judo"},
	"taekwondo":    {"taekwondo"},
	"muay thai":    {"muay thai"},
	"karate":       {"karate"},
	"fencing":      {"fencing"},
	"grappling":    {"grappling"},

	// 足球
	"soccer": {"soccer", "football"},

	// 跑步
	"running":       {"cross country", "track", "running"},
	"cross country": {"cross country"},

	// 兄弟会/姐妹会
	"fraternities": {"fraternity", "greek letter", "alpha", "sigma", "delta", "kappa", "phi", "tau"},
	"sororities":   {"sorority", "greek letter", "alpha", "sigma", "delta", "kappa", "phi"},
	"greek life":   {"fraternity", "sorority", "greek letter", "greek"},

	// 其他运动
	"basketball":       {"basketball"},
	"volleyball":       {"volleyball"},
	"tennis":           {"tennis"},
	"swimming":         {"swimming", "water polo"},
	"cycling":          {"cycling", "bike"},
	"baseball":         {"baseball"},
	"softball":         {"softball"},
	"lacrosse":         {"lacrosse"},
	"rugby":            {"rugby"},
	"ultimate frisbee": {"ultimate"},
	"badminton":        {"badminton"},
	"triathlon":        {"triathlon"},
	"sailing":          {"sailing"},
	"surfing":          {"surfing"},
	"ice hockey":       {"ice hockey", "hockey"},

	// 技术
	"ai/ml":            {"ai", "machine learning", "artificial intelligence", "ml"},
	"web development":  {"web", "developer", "frontend", "backend"},
	"cybersecurity":    {"cybersecurity", "security", "infosec"},
	"data science":     {"data science", "data analysis", "analytics"},
	"game development": {"game", "gaming", "game design"},

	// 艺术
	"a cappella": {"a cappella", "acappella", "capella"},
	"dance":      {"dance", "dancing"},
	"music":      {"music", "musical"},
	"theater":    {"theater", "theatre", "drama"},

	// 商业
	"entrepreneurship": {"entrepreneurship", "startup", "entrepreneur"},
	"investing":        {"investing", "investment", "finance"},
}

// 宽泛兴趣类别到关键词的映射
var categoryKeywords = map[string][]string{
	"Sports":            {"sport club", "athletic"},
	"Tech":              {"technology", "computer", "engineering", "coding", "programming"},
	"Writing":           {"writing", "literary", "journalism", "poetry"},
	"Science":           {"science", "research", "laboratory", "academic"},
	"Outdoors":          {"outdoor", "nature", "hiking", "camping"},
	"Arts":              {"art", "creative", "design", "visual", "performing"},
	"Business":          {"business", "finance", "marketing", "consulting"},
	"Health & Wellness": {"health", "medical", "wellness", "pre-med"},
	"Gaming":            {"gaming", "game", "esports"},
	"Social Impact":     {"service", "volunteer", "non-profit"},
	"Socialization":     {"fraternity", "sorority", "greek", "social"},
}

// 触发"Sport Club"类别兜底加分的兴趣词
var sportInterestHints = []string{"martial", "soccer", "running", "basketball", "volleyball", "tennis"}
