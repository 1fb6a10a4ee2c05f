package attractor

import (
	"sync"

	"github.com/lixenwraith/sigilfield/vmath"
)

type cloudKey struct {
	typ        Type
	pointCount int
	radius     float64
	scale      float64
}

// Cache memoizes normalized point clouds by exact configuration match.
// An explicit object rather than a package singleton so independent
// rendering sessions cannot cross-contaminate. Entries live until
// Clear; there is no TTL or eviction.
type Cache struct {
	mu     sync.Mutex
	clouds map[cloudKey][]vmath.Vec3F
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{clouds: make(map[cloudKey][]vmath.Vec3F)}
}

// Points returns the normalized cloud for the key, generating and
// storing it on first use. Warmup and dt are the package defaults;
// callers needing overrides go through GeneratePoints directly.
// The returned slice is shared — treat it as read-only.
func (c *Cache) Points(typ Type, pointCount int, radius, scale float64) ([]vmath.Vec3F, error) {
	key := cloudKey{typ: typ, pointCount: pointCount, radius: radius, scale: scale}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cloud, ok := c.clouds[key]; ok {
		return cloud, nil
	}

	cfg := DefaultConfig(typ)
	cfg.PointCount = pointCount
	cfg.Radius = radius
	cfg.Scale = scale

	raw, err := GeneratePoints(cfg)
	if err != nil {
		return nil, err
	}
	cloud := Normalize(raw, radius, scale)
	c.clouds[key] = cloud
	return cloud, nil
}

// Clear empties the cache; the next Points call regenerates
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clouds = make(map[cloudKey][]vmath.Vec3F)
}

// Len reports the number of cached clouds
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clouds)
}
