package compositor

// FrameCache holds the last rendered output for a given input key.
// Reuse the output when nothing that feeds the frame has changed.
type FrameCache struct {
	key    uint64
	output string
	valid  bool
}

// Get returns the cached output if key matches.
func (c *FrameCache) Get(key uint64) (string, bool) {
	if c.valid && c.key == key {
		return c.output, true
	}
	return "", false
}

// Set stores output under key.
func (c *FrameCache) Set(key uint64, output string) {
	c.key = key
	c.output = output
	c.valid = true
}

// Invalidate clears the cache.
func (c *FrameCache) Invalidate() {
	c.valid = false
	c.output = ""
}

// FastHash computes a FNV-1a hash of s.
func FastHash(s string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}
