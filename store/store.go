// Package store 提供最高分的持久化实现：内存与 JSON 文件。
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// DefaultKey 与浏览器版 localStorage 使用的键一致
const DefaultKey = "snakeHighScore"

// Memory 进程内存储，测试与无盘运行使用
type Memory struct {
	mu    sync.Mutex
	score int
}

func NewMemory(initial int) *Memory {
	return &Memory{score: initial}
}

func (m *Memory) Get() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *Memory) Set(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}

// File 以 JSON 对象保存的键值存储，每个键一个整数。
// 写入先落临时文件再 rename，避免中途崩溃留下半个文件。
type File struct {
	mu   sync.Mutex
	path string
	key  string
}

// NewFile key 为空时使用 DefaultKey
func NewFile(path, key string) *File {
	if key == "" {
		key = DefaultKey
	}
	return &File{path: path, key: key}
}

func (f *File) Path() string { return f.path }

// Get 文件不存在或键缺失时返回 0
func (f *File) Get() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		return 0, err
	}
	v := doc[f.key]
	if v < 0 {
		return 0, nil
	}
	return v, nil
}

// Set 保留文件中的其它键
func (f *File) Set(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		// 损坏的文件直接覆盖
		doc = make(map[string]int)
	}
	doc[f.key] = score
	return f.save(doc)
}

func (f *File) load() (map[string]int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]int), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read high scores: %w", err)
	}
	doc := make(map[string]int)
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode high scores %s: %w", f.path, err)
	}
	return doc, nil
}

func (f *File) save(doc map[string]int) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".highscores-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close high scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace high scores: %w", err)
	}
	return nil
}

// Store 最高分的读写接口
type Store interface {
	Get() (int, error)
	Set(score int) error
}

type maxStore struct {
	mu    sync.Mutex
	inner Store
}

// Max 包装存储，Set 只在新值大于已存值时写入。
// 多个会话共享同一份最高分时，避免较小的值覆盖较大的值。
func Max(inner Store) Store {
	return &maxStore{inner: inner}
}

func (m *maxStore) Get() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Get()
}

func (m *maxStore) Set(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, err := m.inner.Get()
	if err == nil && cur >= score {
		return nil
	}
	return m.inner.Set(score)
}
