package model

import "encoding/json"

// APIResponse api-sports 各联赛共用的外层结构，只有 Response 的元素类型不同
type APIResponse[T any] struct {
	Get        string                 `json:"get"`
	Parameters map[string]interface{} `json:"parameters"`
	Errors     json.RawMessage        `json:"errors"` // 无错误时为 [] 或 {}，有错误时为对象
	Results    int                    `json:"results"`
	Response   []T                    `json:"response"`
}

// ========== 通用子结构 ==========

type APITeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type APILeague struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
	Flag    string `json:"flag"`
	Season  int    `json:"season"`
	Round   string `json:"round"`
}

type APIStatus struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

// ========== 美式橄榄球 v1.american-football (GET /games) ==========

// GameResponse NFL 单场比赛
type GameResponse struct {
	Game struct {
		ID    int    `json:"id"`
		Stage string `json:"stage"`
		Week  string `json:"week"`
		Date  struct {
			Timezone  string `json:"timezone"`
			Date      string `json:"date"`
			Time      string `json:"time"`
			Timestamp int64  `json:"timestamp"`
		} `json:"date"`
		Venue struct {
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
		Status struct {
			Short string `json:"short"`
			Long  string `json:"long"`
			Timer string `json:"timer"`
		} `json:"status"`
	} `json:"game"`
	League struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Season string `json:"season"`
		Logo   string `json:"logo"`
	} `json:"league"`
	Teams struct {
		Home APITeam `json:"home"`
		Away APITeam `json:"away"`
	} `json:"teams"`
	Scores struct {
		Home QuarterScores `json:"home"`
		Away QuarterScores `json:"away"`
	} `json:"scores"`
}

// QuarterScores 分节比分，未开赛时各项为 null
type QuarterScores struct {
	Quarter1 *int `json:"quarter_1"`
	Quarter2 *int `json:"quarter_2"`
	Quarter3 *int `json:"quarter_3"`
	Quarter4 *int `json:"quarter_4"`
	Overtime *int `json:"overtime"`
	Total    *int `json:"total"`
}

// NFLStanding NFL 积分榜单行 (GET /standings)
type NFLStanding struct {
	League     APILeague `json:"league"`
	Conference string    `json:"conference"`
	Division   string    `json:"division"`
	Position   int       `json:"position"`
	Team       APITeam   `json:"team"`
	Won        int       `json:"won"`
	Lost       int       `json:"lost"`
	Ties       int       `json:"ties"`
	Points     struct {
		For        int `json:"for"`
		Against    int `json:"against"`
		Difference int `json:"difference"`
	} `json:"points"`
	Streak string `json:"streak"`
}

// ========== 篮球 v2.nba (GET /games) ==========

type NbaTeam struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Code     string `json:"code"`
	Logo     string `json:"logo"`
}

type NbaTeamScore struct {
	Win       int      `json:"win"`
	Loss      int      `json:"loss"`
	Linescore []string `json:"linescore"`
	Points    *int     `json:"points"`
}

// NbaGameResponse NBA 单场比赛
type NbaGameResponse struct {
	ID     int    `json:"id"`
	League string `json:"league"`
	Season int    `json:"season"`
	Date   struct {
		Start    string `json:"start"`
		End      string `json:"end"`
		Duration string `json:"duration"`
	} `json:"date"`
	Stage  int `json:"stage"`
	Status struct {
		Clock    string `json:"clock"`
		Halftime bool   `json:"halftime"`
		Short    int    `json:"short"`
		Long     string `json:"long"`
	} `json:"status"`
	Arena struct {
		Name    string `json:"name"`
		City    string `json:"city"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"arena"`
	Teams struct {
		Visitors NbaTeam `json:"visitors"`
		Home     NbaTeam `json:"home"`
	} `json:"teams"`
	Scores struct {
		Visitors NbaTeamScore `json:"visitors"`
		Home     NbaTeamScore `json:"home"`
	} `json:"scores"`
}

// NBAStanding NBA 积分榜单行 (GET /standings)
type NBAStanding struct {
	League     string  `json:"league"`
	Season     int     `json:"season"`
	Team       NbaTeam `json:"team"`
	Conference struct {
		Name string `json:"name"`
		Rank int    `json:"rank"`
		Win  int    `json:"win"`
		Loss int    `json:"loss"`
	} `json:"conference"`
	Division struct {
		Name        string `json:"name"`
		Rank        int    `json:"rank"`
		Win         int    `json:"win"`
		Loss        int    `json:"loss"`
		GamesBehind string `json:"gamesBehind"`
	} `json:"division"`
	Win struct {
		Home       int    `json:"home"`
		Away       int    `json:"away"`
		Total      int    `json:"total"`
		Percentage string `json:"percentage"`
		LastTen    int    `json:"lastTen"`
	} `json:"win"`
	Loss struct {
		Home       int    `json:"home"`
		Away       int    `json:"away"`
		Total      int    `json:"total"`
		Percentage string `json:"percentage"`
		LastTen    int    `json:"lastTen"`
	} `json:"loss"`
	GamesBehind string `json:"gamesBehind"`
	Streak      int    `json:"streak"`
	WinStreak   bool   `json:"winStreak"`
}

// ========== 足球 v3.football (GET /fixtures) ==========

type GoalPair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// FixtureResponse 足球单场比赛
type FixtureResponse struct {
	Fixture struct {
		ID        int    `json:"id"`
		Referee   string `json:"referee"`
		Timezone  string `json:"timezone"`
		Date      string `json:"date"`
		Timestamp int64  `json:"timestamp"`
		Venue     struct {
			ID   *int   `json:"id"`
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
		Status APIStatus `json:"status"`
	} `json:"fixture"`
	League APILeague `json:"league"`
	Teams  struct {
		Home FixtureTeam `json:"home"`
		Away FixtureTeam `json:"away"`
	} `json:"teams"`
	Goals GoalPair `json:"goals"`
	Score struct {
		Halftime  GoalPair `json:"halftime"`
		Fulltime  GoalPair `json:"fulltime"`
		Extratime GoalPair `json:"extratime"`
		Penalty   GoalPair `json:"penalty"`
	} `json:"score"`
}

type FixtureTeam struct {
	APITeam
	Winner *bool `json:"winner"`
}

// LeagueStandings 足球积分榜：response 每个元素是一个联赛，standings 按小组分组
type LeagueStandings struct {
	League struct {
		APILeague
		Standings [][]TeamStanding `json:"standings"`
	} `json:"league"`
}

// TeamStandingRecord 主/客/总战绩
type TeamStandingRecord struct {
	Played int `json:"played"`
	Win    int `json:"win"`
	Draw   int `json:"draw"`
	Lose   int `json:"lose"`
	Goals  struct {
		For     int `json:"for"`
		Against int `json:"against"`
	} `json:"goals"`
}

// TeamStanding 足球积分榜单行
type TeamStanding struct {
	Rank        int                `json:"rank"`
	Team        APITeam            `json:"team"`
	Points      int                `json:"points"`
	GoalsDiff   int                `json:"goalsDiff"`
	Group       string             `json:"group"`
	Form        string             `json:"form"`
	Status      string             `json:"status"`
	Description string             `json:"description"`
	All         TeamStandingRecord `json:"all"`
	Home        TeamStandingRecord `json:"home"`
	Away        TeamStandingRecord `json:"away"`
	Update      string             `json:"update"`
}

// ========== 页面展示用的统一结构 ==========

// GameSummary 抹平三个联赛差异后的单场比赛
type GameSummary struct {
	League    string
	GameID    int
	Date      string
	Venue     string
	Status    string
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
}

// StandingSummary 抹平三个联赛差异后的积分榜单行
type StandingSummary struct {
	League string
	Group  string
	Rank   int
	Team   string
	Logo   string
	Won    int
	Lost   int
	Drawn  int
	Points int
}
