package gridmap

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/lintang-b-s/gridnav/pkg/util"
	"go.uber.org/zap"
)

// MapInfo summarizes a stored map.
type MapInfo struct {
	Name       string `json:"name"`
	Dimensions int    `json:"dimensions"`
	Revision   uint64 `json:"revision"`
	Path       string `json:"path,omitempty"`
}

// Store is a concurrent name -> GridMap registry.
type Store struct {
	mu       sync.RWMutex
	maps     map[string]*GridMap
	paths    map[string]string // file path -> map name
	revision uint64
	log      *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		maps:  make(map[string]*GridMap),
		paths: make(map[string]string),
		log:   log,
	}
}

// Put stores m under its name, replacing any previous version, and assigns it a new revision.
func (s *Store) Put(m *GridMap) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(m, "")
}

func (s *Store) put(m *GridMap, path string) uint64 {
	s.revision++
	m.revision = s.revision
	s.maps[m.Name] = m
	if path != "" {
		if old, ok := s.paths[path]; ok && old != m.Name {
			delete(s.maps, old)
		}
		s.paths[path] = m.Name
	}
	return m.revision
}

func (s *Store) Get(name string) (*GridMap, error) {
	s.mu.RLock()
	m, ok := s.maps[name]
	s.mu.RUnlock()
	if !ok {
		return nil, util.NewErrorf(util.ErrNotFound, "map %q not found", name)
	}
	return m, nil
}

func (s *Store) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.maps[name]; !ok {
		return false
	}
	delete(s.maps, name)
	for p, n := range s.paths {
		if n == name {
			delete(s.paths, p)
		}
	}
	s.revision++
	return true
}

func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// List returns the stored maps sorted by name.
func (s *Store) List() []MapInfo {
	s.mu.RLock()
	pathOf := make(map[string]string, len(s.paths))
	for p, n := range s.paths {
		pathOf[n] = p
	}
	infos := make([]MapInfo, 0, len(s.maps))
	for name, m := range s.maps {
		infos = append(infos, MapInfo{Name: name, Dimensions: m.Dimensions, Revision: m.revision, Path: pathOf[name]})
	}
	s.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// LoadFile loads the map at path into the store.
func (s *Store) LoadFile(path string) (*GridMap, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.put(m, path)
	s.mu.Unlock()
	s.log.Info("map loaded", zap.String("name", m.Name), zap.String("path", path),
		zap.Int("dimensions", m.Dimensions), zap.Uint64("revision", m.revision))
	return m, nil
}

// LoadDir loads every map file directly under dir. a broken file fails the whole load.
func (s *Store) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrNotFound, "gridmap: read dir %s", dir)
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() || !IsMapFile(e.Name()) {
			continue
		}
		if _, err := s.LoadFile(filepath.Join(dir, e.Name())); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Reload handles one changed file: a readable map replaces the stored one, a vanished file drops it.
func (s *Store) Reload(path string) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		s.mu.Lock()
		name, ok := s.paths[path]
		if ok {
			delete(s.paths, path)
			delete(s.maps, name)
			s.revision++
		}
		s.mu.Unlock()
		if ok {
			s.log.Info("map removed", zap.String("name", name), zap.String("path", path))
		}
		return
	}

	if _, err := s.LoadFile(path); err != nil {
		// keep serving the previous version
		s.log.Warn("map reload failed", zap.String("path", path), zap.Error(err))
	}
}

// Watch reloads maps of dir until ctx is done.
func (s *Store) Watch(ctx context.Context, dir string) error {
	w, err := NewWatcher(dir)
	if err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "gridmap: watch %s", dir)
	}
	defer w.Close()

	s.log.Info("watching maps", zap.String("dir", dir))
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			s.Reload(path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("map watcher error", zap.Error(err))
		}
	}
}
