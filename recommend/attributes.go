package recommend

import "trip-server/models"

// Coarse profile values expand to several scored sub-attributes. The
// tables are explicit per category; a profile value not found here is
// treated as a direct sub-attribute name.
var coarseAttributes = map[string]map[string][]string{
	models.CategoryAge: {
		"若年層":  {"10代", "20代"},
		"ミドル層": {"30代", "40代", "50代"},
		"シニア層": {"60代", "70代", "80代", "90代", "100代"},
	},
	models.CategoryStayDays: {
		"宿泊": {"1泊", "2泊", "3泊", "4泊以上"},
	},
	models.CategoryCompanion: {
		"ふたり旅": {"恋人", "夫婦2人"},
		"家族連れ": {
			"小学生以下連れの家族", "中学生以下連れの家族", "高校生連れの家族",
		},
	},
	models.CategoryPurpose: {
		"温泉・リラックス": {"温泉や露天風呂", "宿でのんびり過ごす"},
		"グルメ・買い物":  {"地元の美味しいものを食べる", "買い物、アウトレット"},
		"観光名所めぐり": {
			"名所、旧跡の観光", "まちあるき、都市散策", "花見や紅葉などの自然鑑賞",
		},
		"アウトドア派": {
			"アウトドア（海水浴、釣り、登山など）", "スキー・スノボ、マリンスポーツ",
			"その他スポーツ（ゴルフ、テニスなど）",
		},
	},
}

// regionPrefectures maps a region profile value to the prefectures it
// covers. Region acts as a filter, not a score term.
var regionPrefectures = map[string][]string{
	"北陸": {"富山県", "石川県", "福井県"},
	"関東": {"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県"},
	"関西": {"滋賀県", "京都府", "大阪府", "兵庫県", "奈良県", "和歌山県"},
}

// expandAttribute returns the sub-attributes a profile value stands for.
func expandAttribute(category, value string) []string {
	if groups, ok := coarseAttributes[category]; ok {
		if subs, ok := groups[value]; ok {
			return subs
		}
	}
	return []string{value}
}

// matchesRegion reports whether a prefecture belongs to the given
// region value. An unknown region matches by direct equality so a bare
// prefecture name can be used as a filter too.
func matchesRegion(region, prefecture string) bool {
	prefs, ok := regionPrefectures[region]
	if !ok {
		return region == prefecture
	}
	for _, p := range prefs {
		if p == prefecture {
			return true
		}
	}
	return false
}
