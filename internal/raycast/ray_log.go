package raycast

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	Hit  Category = iota // primary ray hit an object
	Miss                 // primary ray escaped the scene
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

type RayLog struct {
	Name      string
	Category  Category
	Origin    Vec4
	Direction Vec4
	Point     Vec4 // hit point, if any
	Distance  Real // ray parameter of the hit, 0 on a miss
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[string][]RayLog // map of ray name to logs
}

var cache = &RayLogCache{
	rays: make(map[string][]RayLog),
}

func logRay(name string, category Category, origin, direction, point Vec4, distance Real) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[name] = append(cache.rays[name], RayLog{
		Name:      name,
		Category:  category,
		Origin:    origin,
		Direction: direction,
		Point:     point,
		Distance:  distance,
	})
}

// rayCounts returns the number of logged rays per category for one ray name.
func rayCounts(name string) map[Category]int {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	out := make(map[Category]int)
	for _, l := range cache.rays[name] {
		out[l.Category]++
	}
	return out
}

func resetRayLog() {
	cache.mu.Lock()
	cache.rays = make(map[string][]RayLog)
	cache.mu.Unlock()
}

func raysStats() {
	cache.mu.Lock()
	names := make([]string, 0, len(cache.rays))
	for k := range cache.rays {
		names = append(names, k)
	}
	cache.mu.Unlock()
	sort.Strings(names)
	for _, k := range names {
		counts := rayCounts(k)
		fmt.Printf("Ray type %s: hit=%d miss=%d\n", k, counts[Hit], counts[Miss])
	}
}
