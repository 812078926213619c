package consts

const (
	TagTypeGenre    = "genre"
	TagTypeArtist   = "artist"
	TagTypeDecade   = "decade"
	TagTypeLanguage = "language"
	TagTypeMood     = "mood"
)

// TagTypes 合法的标签类型集合
var TagTypes = map[string]struct{}{
	TagTypeGenre:    {},
	TagTypeArtist:   {},
	TagTypeDecade:   {},
	TagTypeLanguage: {},
	TagTypeMood:     {},
}

const (
	RankNewReleases = "new_releases"
	RankMostPopular = "most_popular"
	RankMostViral   = "most_viral"
	RankMostWanted  = "most_wanted"
)

const (
	// HistoryListLimit 搜索历史每个榜单返回的条数
	HistoryListLimit = 10

	// PopularCandidatePool 双信号热门榜的候选池大小
	PopularCandidatePool = 20
	// PopularPanelSize 双信号热门榜最终返回条数
	PopularPanelSize = 5

	// DefaultRankLimit 排行接口默认条数
	DefaultRankLimit = 10
	// MaxRankLimit 排行接口条数上限
	MaxRankLimit = 50
)
