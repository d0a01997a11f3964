package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ProductType 产品类型枚举（运动 / 球队）
type ProductType int

const (
	ProductTypeUndefined ProductType = iota
	ProductTypeSport
	ProductTypeTeam
)

var productTypeNames = map[ProductType]string{
	ProductTypeUndefined: "Undefined",
	ProductTypeSport:     "Sport",
	ProductTypeTeam:      "Team",
}

func (t ProductType) String() string {
	if name, ok := productTypeNames[t]; ok {
		return name
	}
	return "Undefined"
}

// ParseProductType 按名称（忽略大小写）解析产品类型
func ParseProductType(s string) (ProductType, bool) {
	s = strings.TrimSpace(s)
	for t, name := range productTypeNames {
		if strings.EqualFold(name, s) {
			return t, true
		}
	}
	return ProductTypeUndefined, false
}

// UnmarshalJSON 同时接受数字和名称两种写法
func (t *ProductType) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*t = ProductTypeUndefined
		return nil
	}
	if n, err := strconv.Atoi(strings.Trim(s, `"`)); err == nil {
		if _, ok := productTypeNames[ProductType(n)]; !ok {
			return fmt.Errorf("未知的 ProductType: %d", n)
		}
		*t = ProductType(n)
		return nil
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("无法解析 ProductType: %s", s)
	}
	parsed, ok := ParseProductType(name)
	if !ok {
		return fmt.Errorf("未知的 ProductType: %s", name)
	}
	*t = parsed
	return nil
}

// UnmarshalParam 表单绑定（gin BindUnmarshaler），同样接受数字或名称
func (t *ProductType) UnmarshalParam(param string) error {
	return t.UnmarshalJSON([]byte(strconv.Quote(strings.TrimSpace(param))))
}

// CommentModel 产品评论
type CommentModel struct {
	ID      string `json:"Id"`
	Comment string `json:"Comment" validate:"max=500"`
}

// Validate 按字段规则校验
func (c *CommentModel) Validate() error {
	return validate.Struct(c)
}

// ProductModel 运动或球队（products.json 中的一条记录）
type ProductModel struct {
	ID           string         `json:"Id"`
	Title        string         `json:"Title" form:"title" validate:"required,min=1,max=33"`
	Description  string         `json:"Description" form:"description" validate:"max=500"`
	Image        string         `json:"img" form:"image" validate:"omitempty,url"`
	URL          string         `json:"url" form:"url" validate:"omitempty,url"`
	Ratings      []int          `json:"Ratings" validate:"dive,min=0,max=5"`
	ProductType  ProductType    `json:"ProductType" form:"productType"`
	Sport        string         `json:"Sport" form:"sport"`
	FoundingYear int            `json:"FoundingYear" form:"foundingYear" validate:"omitempty,min=1800,max=2024"`
	Trophies     int            `json:"Trophies" form:"trophies" validate:"min=0,max=100"`
	CommentList  []CommentModel `json:"CommentList" validate:"dive"`
}

// Validate 按字段规则校验
func (p *ProductModel) Validate() error {
	return validate.Struct(p)
}

// AverageRating 平均评分，无评分时返回 0
func (p *ProductModel) AverageRating() float64 {
	if len(p.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Ratings {
		sum += r
	}
	return float64(sum) / float64(len(p.Ratings))
}
