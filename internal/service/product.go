package service

import (
	"sort"
	"strings"

	"SportsHub/internal/model"
	"SportsHub/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	MinRating = 0
	MaxRating = 5
)

// sportAliases 运动标题 -> 球队记录上使用的联赛标签（仅级联删除时使用）
var sportAliases = map[string]string{
	"basketball": "NBA",
	"football":   "NFL",
	"soccer":     "Soccer",
}

// 可识别的筛选值
var (
	filterProductTypes = []model.ProductType{model.ProductTypeSport, model.ProductTypeTeam}
	filterSports       = []string{"NFL", "NBA", "Soccer"}
)

// TeamTag 运动标题映射到球队上的联赛标签，无别名时原样返回
func TeamTag(sportTitle string) string {
	if tag, ok := sportAliases[strings.ToLower(strings.TrimSpace(sportTitle))]; ok {
		return tag
	}
	return sportTitle
}

// ProductService 基于 products.json 的运动/球队增删改查
type ProductService struct {
	store  *repository.JSONFile[model.ProductModel]
	logger *logrus.Logger
}

// NewProductService 创建 ProductService
func NewProductService(store *repository.JSONFile[model.ProductModel], logger *logrus.Logger) *ProductService {
	return &ProductService{
		store:  store,
		logger: logger,
	}
}

// GetAllData 读取全部产品；文件缺失或损坏时返回错误
func (s *ProductService) GetAllData() ([]model.ProductModel, error) {
	return s.store.Load()
}

// GetProduct 按 Id 查询，不存在返回 nil
func (s *ProductService) GetProduct(productID string) (*model.ProductModel, error) {
	if productID == "" {
		return nil, nil
	}
	products, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == productID {
			return &products[i], nil
		}
	}
	return nil, nil
}

// GetFilteredData 按类型/联赛筛选（空字符串表示未提供）。
// 提供了无法识别的筛选值时 ok=false，与"没有匹配结果"区分。
func (s *ProductService) GetFilteredData(productType, sport string) ([]model.ProductModel, bool, error) {
	var (
		typeFilter  model.ProductType
		sportFilter string
	)
	if productType != "" {
		t, ok := model.ParseProductType(productType)
		if !ok || !containsType(filterProductTypes, t) {
			return nil, false, nil
		}
		typeFilter = t
	}
	if sport != "" {
		canonical, ok := canonicalSport(sport)
		if !ok {
			return nil, false, nil
		}
		sportFilter = canonical
	}

	products, err := s.store.Load()
	if err != nil {
		return nil, false, err
	}

	result := make([]model.ProductModel, 0, len(products))
	for _, p := range products {
		if productType != "" && p.ProductType != typeFilter {
			continue
		}
		if sport != "" && p.Sport != sportFilter {
			continue
		}
		result = append(result, p)
	}
	return result, true, nil
}

// AddRating 追加评分；id 为空、不存在或评分越界时返回 false 且不修改文件
func (s *ProductService) AddRating(productID string, rating int) (bool, error) {
	if productID == "" || rating < MinRating || rating > MaxRating {
		return false, nil
	}

	found := false
	err := s.store.Update(func(products []model.ProductModel) ([]model.ProductModel, bool, error) {
		for i := range products {
			if products[i].ID != productID {
				continue
			}
			if products[i].Ratings == nil {
				products[i].Ratings = []int{}
			}
			products[i].Ratings = append(products[i].Ratings, rating)
			found = true
			return products, true, nil
		}
		return products, false, nil
	})
	if err != nil {
		return false, err
	}
	if found {
		s.logger.WithFields(logrus.Fields{"product_id": productID, "rating": rating}).Info("新增评分")
	}
	return found, nil
}

// CreateDefault 以占位内容新建一条产品
func (s *ProductService) CreateDefault() (*model.ProductModel, error) {
	return s.CreateData(model.ProductModel{
		Title:       "Enter Title",
		Description: "Enter Description",
		URL:         "Enter URL",
		Image:       "",
	})
}

// CreateData 新建产品，总是生成新的 Id（覆盖调用方传入的 Id）
func (s *ProductService) CreateData(product model.ProductModel) (*model.ProductModel, error) {
	product.ID = uuid.NewString()
	err := s.store.Update(func(products []model.ProductModel) ([]model.ProductModel, bool, error) {
		return append(products, product), true, nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"product_id": product.ID, "title": product.Title}).Info("新建产品")
	return &product, nil
}

// UpdateData 按 Id 更新可编辑字段（评分与 Id 不变）；不存在时返回 nil 且不重写文件
func (s *ProductService) UpdateData(data model.ProductModel) (*model.ProductModel, error) {
	var updated *model.ProductModel
	err := s.store.Update(func(products []model.ProductModel) ([]model.ProductModel, bool, error) {
		for i := range products {
			if products[i].ID != data.ID {
				continue
			}
			p := &products[i]
			p.Title = data.Title
			p.Description = strings.TrimSpace(data.Description)
			p.URL = data.URL
			p.Image = data.Image
			p.FoundingYear = data.FoundingYear
			p.Trophies = data.Trophies
			p.CommentList = data.CommentList
			copied := *p
			updated = &copied
			return products, true, nil
		}
		return products, false, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddComment 追加评论；产品不存在时返回 false
func (s *ProductService) AddComment(productID, comment string) (bool, error) {
	comment = strings.TrimSpace(comment)
	if productID == "" || comment == "" {
		return false, nil
	}
	entry := model.CommentModel{ID: uuid.NewString(), Comment: comment}
	if err := entry.Validate(); err != nil {
		return false, nil
	}

	found := false
	err := s.store.Update(func(products []model.ProductModel) ([]model.ProductModel, bool, error) {
		for i := range products {
			if products[i].ID == productID {
				products[i].CommentList = append(products[i].CommentList, entry)
				found = true
				return products, true, nil
			}
		}
		return products, false, nil
	})
	return found, err
}

// DeleteData 按 Id 删除；删除运动时级联删除所属球队，整个操作只重写一次文件。
// 返回被删除的产品，不存在时返回 nil。
func (s *ProductService) DeleteData(productID string) (*model.ProductModel, error) {
	var deleted *model.ProductModel
	cascaded := 0
	err := s.store.Update(func(products []model.ProductModel) ([]model.ProductModel, bool, error) {
		idx := -1
		for i := range products {
			if products[i].ID == productID {
				idx = i
				break
			}
		}
		if productID == "" || idx < 0 {
			return products, false, nil
		}
		target := products[idx]
		deleted = &target

		tag := ""
		if target.ProductType == model.ProductTypeSport {
			tag = TeamTag(target.Title)
		}
		kept := make([]model.ProductModel, 0, len(products)-1)
		for i, p := range products {
			if i == idx {
				continue
			}
			if tag != "" && p.ProductType == model.ProductTypeTeam && strings.EqualFold(p.Sport, tag) {
				cascaded++
				continue
			}
			kept = append(kept, p)
		}
		return kept, true, nil
	})
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		s.logger.WithFields(logrus.Fields{
			"product_id": deleted.ID,
			"title":      deleted.Title,
			"cascaded":   cascaded,
		}).Info("删除产品")
	}
	return deleted, nil
}

// IsDuplicateTeam 是否已存在同名球队（忽略大小写）
func (s *ProductService) IsDuplicateTeam(title string) (bool, error) {
	return s.isDuplicate(title, model.ProductTypeTeam)
}

// IsDuplicateSport 是否已存在同名运动（忽略大小写）
func (s *ProductService) IsDuplicateSport(title string) (bool, error) {
	return s.isDuplicate(title, model.ProductTypeSport)
}

func (s *ProductService) isDuplicate(title string, productType model.ProductType) (bool, error) {
	products, err := s.store.Load()
	if err != nil {
		return false, err
	}
	for _, p := range products {
		if p.ProductType == productType && strings.EqualFold(p.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

// GetTopTeamsByTrophies 按联赛分组，组内按奖杯数降序、标题升序取前 topCount 支球队
func (s *ProductService) GetTopTeamsByTrophies(topCount int) (map[string][]model.ProductModel, error) {
	if topCount <= 0 {
		topCount = 3
	}
	products, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]model.ProductModel)
	for _, p := range products {
		if p.ProductType == model.ProductTypeTeam {
			groups[p.Sport] = append(groups[p.Sport], p)
		}
	}
	for sport, teams := range groups {
		sort.SliceStable(teams, func(i, j int) bool {
			if teams[i].Trophies != teams[j].Trophies {
				return teams[i].Trophies > teams[j].Trophies
			}
			return teams[i].Title < teams[j].Title
		})
		if len(teams) > topCount {
			teams = teams[:topCount]
		}
		groups[sport] = teams
	}
	return groups, nil
}

func canonicalSport(s string) (string, bool) {
	for _, known := range filterSports {
		if strings.EqualFold(known, strings.TrimSpace(s)) {
			return known, true
		}
	}
	return "", false
}

func containsType(types []model.ProductType, t model.ProductType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

