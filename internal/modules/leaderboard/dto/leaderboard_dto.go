package dto

type RankStatus struct {
	RankName      string  `json:"rank_name"`
	NextRank      string  `json:"next_rank"`
	CurrentPoints int     `json:"current_points"`
	TargetPoints  int     `json:"target_points"`
	Progress      float64 `json:"progress"`
}

type LeaderboardEntry struct {
	Username   string     `json:"username"`
	AvatarURL  *string    `json:"avatar_url"`
	Position   int        `json:"position"`
	RankStatus RankStatus `json:"rank_status"`
}
