package consts

const (
	SongLikeKey  = "song:like:"
	SongViewKey  = "song:view:"
	SongClickKey = "song:click:"
	SongDirtyKey = "song:dirty"

	RankRailKey         = "rank:rail:"
	RankPopularPanelKey = "rank:popular:panel"

	SongMetrics7DaysKey  = "song:metrics:7days:"
	SongMetrics30DaysKey = "song:metrics:30days:"
)
