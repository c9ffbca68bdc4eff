package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a namespaced cache key: "<space>:<sha256(parts)>". The
// space ("layout", "artifact") stays outside the hash so backends can group
// entries by pipeline stage.
func hashKey(space string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return space + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the hex SHA-256 of data. Render inputs enter cache keys
// through it: the canonical definition JSON and the metrics set are both
// hashed before keying.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
