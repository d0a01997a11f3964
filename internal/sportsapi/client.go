package sportsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"SportsHub/internal/interfaces"
	"SportsHub/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultEndpoint   = "games"
	DefaultCacheTTL   = 25 * time.Minute
	DefaultMaxResults = 100

	RapidAPIKeyHeader  = "x-rapidapi-key"
	RapidAPIHostHeader = "x-rapidapi-host"
)

// Query 一次联赛/赛季查询；BaseURL/Host/Endpoint 决定调用哪个上游
type Query struct {
	LeagueID string
	Season   string
	BaseURL  string
	Host     string
	Endpoint string
}

func (q Query) endpoint() string {
	ep := strings.Trim(q.Endpoint, "/")
	if ep == "" {
		return DefaultEndpoint
	}
	return ep
}

// CacheKey 默认接口为 "Games_<league>_<season>"，其他接口以接口名为前缀，避免积分榜覆盖赛程
func (q Query) CacheKey() string {
	ep := q.endpoint()
	prefix := "Games"
	if ep != DefaultEndpoint {
		prefix = strings.ToUpper(ep[:1]) + ep[1:]
	}
	return prefix + "_" + q.LeagueID + "_" + q.Season
}

// Client api-sports 客户端：拉取、解析、截断并缓存单个赛季的数据
type Client struct {
	apiKey     string
	httpClient *http.Client
	cache      interfaces.Cache
	logger     *logrus.Logger
	ttl        time.Duration
	maxResults int
	group      singleflight.Group
}

// Option 客户端可选项
type Option func(*Client)

// WithCacheTTL 覆盖默认 25 分钟缓存时长
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxResults 覆盖默认 100 条截断上限
func WithMaxResults(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxResults = n
		}
	}
}

// NewClient 创建客户端，cache 为显式依赖
func NewClient(apiKey string, httpClient *http.Client, cache interfaces.Cache, logger *logrus.Logger, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	c := &Client{
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      cache,
		logger:     logger,
		ttl:        DefaultCacheTTL,
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetGamesForSeason 获取某联赛某赛季的数据（元素类型由调用方按联赛指定）。
// 缓存命中直接返回；未命中时只请求一次，成功结果截断到上限后缓存。
// 任何失败都返回 *Error，失败结果不缓存、不重试。
func GetGamesForSeason[T any](ctx context.Context, c *Client, q Query) ([]T, error) {
	key := q.CacheKey()
	if cached, ok := c.cache.Get(key); ok {
		if items, ok := cached.([]T); ok {
			c.logger.WithField("key", key).Debug("sportsapi 缓存命中")
			return slices.Clone(items), nil
		}
		c.logger.WithField("key", key).Warn("缓存值类型不匹配，重新拉取")
	}

	// 同一个 key 的并发未命中只发起一次请求；共享请求不随某个调用方取消，由 http.Client 超时兜底
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		if cached, ok := c.cache.Get(key); ok {
			if items, ok := cached.([]T); ok {
				return items, nil
			}
		}
		items, err := fetch[T](shared, c, q)
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, items, c.ttl)
		return items, nil
	})

	select {
	case <-ctx.Done():
		return nil, &Error{Kind: KindTransport, LeagueID: q.LeagueID, Season: q.Season, Endpoint: q.endpoint(), Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]T)), nil
	}
}

func fetch[T any](ctx context.Context, c *Client, q Query) ([]T, error) {
	ep := q.endpoint()
	fail := func(kind ErrorKind, status int, err error) error {
		apiErr := &Error{Kind: kind, LeagueID: q.LeagueID, Season: q.Season, Endpoint: ep, StatusCode: status, Err: err}
		c.logger.WithError(apiErr).WithFields(logrus.Fields{
			"league":   q.LeagueID,
			"season":   q.Season,
			"endpoint": ep,
		}).Error("拉取联赛数据失败")
		return apiErr
	}

	reqURL, err := buildURL(q.BaseURL, ep, q.LeagueID, q.Season)
	if err != nil {
		return nil, fail(KindTransport, 0, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fail(KindTransport, 0, err)
	}
	req.Header.Set(RapidAPIKeyHeader, c.apiKey)
	req.Header.Set(RapidAPIHostHeader, q.Host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fail(KindTransport, 0, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Errorf("关闭响应体失败: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(KindTransport, resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fail(KindStatus, resp.StatusCode, fmt.Errorf("response: %s", truncate(body, 256)))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fail(KindEmptyBody, resp.StatusCode, errors.New("响应体为空"))
	}

	var wrapper model.APIResponse[T]
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fail(KindDecode, resp.StatusCode, err)
	}
	if upstreamErr := upstreamErrors(wrapper.Errors); upstreamErr != "" {
		return nil, fail(KindUpstream, resp.StatusCode, errors.New(upstreamErr))
	}

	items := wrapper.Response
	if len(items) > c.maxResults {
		items = items[:c.maxResults]
	}
	if items == nil {
		items = []T{}
	}
	c.logger.WithFields(logrus.Fields{
		"league":  q.LeagueID,
		"season":  q.Season,
		"results": wrapper.Results,
		"kept":    len(items),
	}).Info("成功获取联赛数据")
	return slices.Clone(items), nil
}

func buildURL(baseURL, endpoint, leagueID, season string) (string, error) {
	if baseURL == "" {
		return "", errors.New("base url 未配置")
	}
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/" + endpoint)
	if err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("league", leagueID)
	params.Set("season", season)
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// upstreamErrors api-sports 无错误时 errors 为 [] 或 {}，有错误时为非空对象/数组
func upstreamErrors(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return ""
	}
	var asMap map[string]interface{}
	if err := json.Unmarshal(trimmed, &asMap); err == nil {
		if len(asMap) == 0 {
			return ""
		}
		return fmt.Sprintf("%v", asMap)
	}
	var asSlice []interface{}
	if err := json.Unmarshal(trimmed, &asSlice); err == nil {
		if len(asSlice) == 0 {
			return ""
		}
		return fmt.Sprintf("%v", asSlice)
	}
	return string(trimmed)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
