package model

import (
	"strings"
	"time"
)

// matchDateLayouts 兼容 RFC3339 与无时区偏移的历史写法
var matchDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// MatchDate 比赛时间，序列化为 RFC3339，解析时兼容多种格式
type MatchDate struct {
	time.Time
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *MatchDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseMatchDate(s)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// MarshalJSON 零值写为 null
func (d MatchDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

// UnmarshalParam 表单绑定（datetime-local 输入为 2006-01-02T15:04）
func (d *MatchDate) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseMatchDate(param)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// ParseMatchDate 依次尝试已知格式
func ParseMatchDate(s string) (time.Time, error) {
	var parseErr error
	for _, layout := range matchDateLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return parsed, nil
		}
		parseErr = err
	}
	return time.Time{}, parseErr
}

// MatchModel 两支本地球队之间的一场比赛（matches.json 中的一条记录）
type MatchModel struct {
	ID         string    `json:"Id"`
	Match      string    `json:"Match" form:"match" validate:"required"`
	Date       MatchDate `json:"Date" form:"date"`
	Location   string    `json:"Location" form:"location" validate:"required,min=3,max=100"`
	Team1      string    `json:"Team1" form:"team1"`
	Team2      string    `json:"Team2" form:"team2"`
	Team1Score int       `json:"Team1_Score" form:"team1Score"`
	Team2Score int       `json:"Team2_Score" form:"team2Score"`
}

// Validate 按字段规则校验
func (m *MatchModel) Validate() error {
	return validate.Struct(m)
}

// HasTeam 判断球队是否参赛（忽略大小写）
func (m *MatchModel) HasTeam(name string) bool {
	return strings.EqualFold(m.Team1, name) || strings.EqualFold(m.Team2, name)
}
