package consts

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

const (
	DefaultStatsDays    = 30
	DefaultTrendingDays = 7
	DefaultTrendingSize = 10
)
