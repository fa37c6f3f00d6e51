// Redis-backed cache for computed operators, keyed by a hash of the
// driver request. Caching is strictly best-effort: a missing or
// unreachable Redis degrades to recomputation, never to failure.

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Kukyos/GroundStateFinder/internal/molecule"
	"github.com/Kukyos/GroundStateFinder/internal/operator"
)

// Entry is the stored representation of a cached operator.
type Entry struct {
	NumQubits int          `json:"num_qubits"`
	Paulis    []string     `json:"paulis"`
	Coeffs    [][2]float64 `json:"coeffs"`
	CachedAt  int64        `json:"cached_at"`
	HitCount  int32        `json:"hit_count"`
}

// Cache wraps a Redis client. A nil *Cache is valid and never hits.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// New connects to Redis at addr. An empty addr returns nil, disabling
// caching.
func New(addr string, ttl time.Duration, log *zap.Logger) *Cache {
	if addr == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
		log: log,
	}
}

// Key derives the cache key for a molecule/mapping pair from a hash of the
// canonical request fields.
func Key(mol molecule.Molecule, mapping string) string {
	canonical := fmt.Sprintf("%s|%s|%s|%d|%d|%s",
		mol.Formula, mol.Geometry(), mol.Basis, mol.Charge, mol.Multiplicity, mapping)
	sum := sha256.Sum256([]byte(canonical))
	return "hamiltonian:" + hex.EncodeToString(sum[:])
}

// Get retrieves a cached operator. Any Redis or decode error is treated as
// a miss.
func (c *Cache) Get(ctx context.Context, key string) (*operator.Op, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Debug("cache lookup failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.log.Debug("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	terms := make([]operator.Term, len(entry.Paulis))
	for i, p := range entry.Paulis {
		if i >= len(entry.Coeffs) {
			return nil, false
		}
		terms[i] = operator.Term{Label: p, Coeff: complex(entry.Coeffs[i][0], entry.Coeffs[i][1])}
	}
	op, err := operator.New(entry.NumQubits, terms)
	if err != nil {
		c.log.Debug("cache entry invalid", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	entry.HitCount++
	if updated, err := json.Marshal(entry); err == nil {
		c.rdb.Set(ctx, key, updated, redis.KeepTTL)
	}

	c.log.Debug("cache hit", zap.String("key", key), zap.Int32("hits", entry.HitCount))
	return op, true
}

// Put stores a computed operator under key with the configured TTL.
func (c *Cache) Put(ctx context.Context, key string, op *operator.Op) {
	if c == nil {
		return
	}
	terms := op.Terms()
	entry := Entry{
		NumQubits: op.NumQubits(),
		Paulis:    make([]string, len(terms)),
		Coeffs:    make([][2]float64, len(terms)),
		CachedAt:  time.Now().Unix(),
	}
	for i, t := range terms {
		entry.Paulis[i] = t.Label
		entry.Coeffs[i] = [2]float64{real(t.Coeff), imag(t.Coeff)}
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Debug("cache store failed", zap.String("key", key), zap.Error(err))
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
