package model

// TeamNames names.json 结构：运动 -> 该运动下的合法球队名称
type TeamNames struct {
	Sports map[string][]string `json:"Sports"`
}
