package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// fileLocks 按文件路径共享的互斥锁，同一文件的多个 JSONFile 实例互斥
var fileLocks sync.Map // map[string]*sync.Mutex

func lockFor(path string) *sync.Mutex {
	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}
	mu, _ := fileLocks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// JSONFile 整个集合以一个 JSON 数组保存在单个文件中：每次修改都是
// 读取全部 → 内存中修改 → 重写整个文件，整个过程持有该文件的锁。
type JSONFile[T any] struct {
	path   string
	mu     *sync.Mutex
	logger *logrus.Logger
}

// NewJSONFile 创建文件集合（不检查文件是否存在，读取时才报错）
func NewJSONFile[T any](path string, logger *logrus.Logger) *JSONFile[T] {
	return &JSONFile[T]{
		path:   path,
		mu:     lockFor(path),
		logger: logger,
	}
}

// Path 数据文件路径
func (f *JSONFile[T]) Path() string {
	return f.path
}

// Load 读取整个集合；文件不存在或格式错误时返回错误（不兜底）
func (f *JSONFile[T]) Load() ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Save 重写整个集合
func (f *JSONFile[T]) Save(items []T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(items)
}

// Update 在文件锁内完成一次读-改-写；fn 返回 changed=false 时不重写文件
func (f *JSONFile[T]) Update(fn func(items []T) (updated []T, changed bool, err error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return err
	}
	updated, changed, err := fn(items)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return f.save(updated)
}

// load 属性名大小写不敏感（encoding/json 默认行为）
func (f *JSONFile[T]) load() ([]T, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("读取数据文件%s失败: %w", f.path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("解析数据文件%s失败: %w", f.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save 先写同目录临时文件再 rename，避免写到一半的文件被读到
func (f *JSONFile[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化数据失败: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("写入临时文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("关闭临时文件失败: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("替换数据文件%s失败: %w", f.path, err)
	}
	f.logger.WithFields(logrus.Fields{
		"file":  f.path,
		"count": len(items),
	}).Debug("数据文件已重写")
	return nil
}
