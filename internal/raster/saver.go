package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DirSaver writes files into a directory, creating it on first use
type DirSaver struct {
	Dir string
}

// Save writes data to Dir/name, replacing any earlier export
func (s DirSaver) Save(name string, data []byte) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// MemorySaver keeps saved files in memory
type MemorySaver struct {
	mu    sync.Mutex
	files map[string][]byte
	order []string
}

// Save records data under name
func (s *MemorySaver) Save(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	if _, ok := s.files[name]; !ok {
		s.order = append(s.order, name)
	}
	s.files[name] = append([]byte(nil), data...)
	return nil
}

// File returns the bytes saved under name
func (s *MemorySaver) File(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[name]
	return data, ok
}

// Names returns saved names in first-save order
func (s *MemorySaver) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}
