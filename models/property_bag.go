package models

// PropertyBag is a flat mapping of string keys to integer values used for
// free-form per-dataset counters. It carries no behavior beyond get, set,
// containment and key enumeration.
type PropertyBag map[string]int64

// Get returns the value stored under key, or zero when the key is absent.
func (p PropertyBag) Get(key string) int64 {
	return p[key]
}

// Set stores value under key.
func (p PropertyBag) Set(key string, value int64) {
	p[key] = value
}

// Contains reports whether key is present in the bag.
func (p PropertyBag) Contains(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns all keys currently present in the bag, in unspecified order.
func (p PropertyBag) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	return keys
}
