package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/todoadmin/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketTodos = []byte("todos")
	bucketUsers = []byte("users")
)

// Keys within the buckets
const (
	keyAll         = "all"
	keyOwnerPrefix = "owner:"
)

// CollectionStore implements domain.Store using BoltDB.
type CollectionStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewCollectionStore opens the cache for serverURL under baseCacheDir.
// An empty baseCacheDir keeps everything in memory.
func NewCollectionStore(baseCacheDir, serverURL string) (*CollectionStore, error) {
	if baseCacheDir == "" {
		// Memory-only mode (no persistence)
		return &CollectionStore{cache: make(map[string][]byte)}, nil
	}

	dir := baseCacheDir
	if serverURL != "" {
		dir = filepath.Join(baseCacheDir, hashServerURL(serverURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "todoadmin.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	// Create buckets
	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketTodos, bucketUsers} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CollectionStore{db: db, cache: make(map[string][]byte)}, nil
}

// hashServerURL keeps caches for different backends apart
func hashServerURL(serverURL string) string {
	normalized := strings.TrimRight(strings.ToLower(serverURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func (s *CollectionStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CollectionStore) get(bucket []byte, key string, dest any) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *CollectionStore) set(bucket []byte, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func (s *CollectionStore) delete(bucket []byte, key string) {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		if b := tx.Bucket(bucket); b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

func (s *CollectionStore) clearBucket(bucket []byte) {
	s.mu.Lock()
	cachePrefix := string(bucket) + ":"
	for k := range s.cache {
		if strings.HasPrefix(k, cachePrefix) {
			delete(s.cache, k)
		}
	}
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	// Recreate the bucket rather than deleting key by key
	s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucket); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(bucket)
		return err
	})
}

// === Todos ===

func (s *CollectionStore) GetTodos() ([]*domain.Todo, bool) {
	var todos []*domain.Todo
	ok := s.get(bucketTodos, keyAll, &todos)
	return todos, ok
}

func (s *CollectionStore) SaveTodos(todos []*domain.Todo) error {
	return s.set(bucketTodos, keyAll, todos)
}

func (s *CollectionStore) GetOwnerTodos(ownerID string) ([]*domain.Todo, bool) {
	var todos []*domain.Todo
	ok := s.get(bucketTodos, keyOwnerPrefix+ownerID, &todos)
	return todos, ok
}

func (s *CollectionStore) SaveOwnerTodos(ownerID string, todos []*domain.Todo) error {
	return s.set(bucketTodos, keyOwnerPrefix+ownerID, todos)
}

// === Users ===

func (s *CollectionStore) GetUsers() ([]*domain.User, bool) {
	var users []*domain.User
	ok := s.get(bucketUsers, keyAll, &users)
	return users, ok
}

func (s *CollectionStore) SaveUsers(users []*domain.User) error {
	return s.set(bucketUsers, keyAll, users)
}

// === Invalidation ===

// InvalidateTodos drops every cached todo list, including per-owner lists
func (s *CollectionStore) InvalidateTodos() {
	s.clearBucket(bucketTodos)
}

// InvalidateOwnerTodos drops one owner's list and the combined list
func (s *CollectionStore) InvalidateOwnerTodos(ownerID string) {
	s.delete(bucketTodos, keyOwnerPrefix+ownerID)
	s.delete(bucketTodos, keyAll)
}

func (s *CollectionStore) InvalidateUsers() {
	s.delete(bucketUsers, keyAll)
}

func (s *CollectionStore) InvalidateAll() {
	s.clearBucket(bucketTodos)
	s.clearBucket(bucketUsers)
}

// Compile-time interface check
var _ domain.Store = (*CollectionStore)(nil)
