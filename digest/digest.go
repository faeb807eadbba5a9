// Package digest computes named hex digests over UTF-8 text.
//
// The algorithm is selected by name at call time, mirroring a registry of
// hash constructors. Unknown names fail with ErrUnsupportedAlgorithm rather
// than panicking.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"
)

// ErrUnsupportedAlgorithm is returned when an algorithm name is not in the
// registry. Match it with errors.Is.
var ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

var algorithms = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// Hex returns the hex-encoded digest of the UTF-8 bytes of text under the
// named algorithm. Names are case-insensitive ("MD5" and "md5" are the same
// algorithm). Unknown names return ErrUnsupportedAlgorithm.
func Hex(text, algorithm string) (string, error) {
	constructor, ok := algorithms[strings.ToLower(algorithm)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	h := constructor()
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Algorithms returns the supported algorithm names sorted lexicographically.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
