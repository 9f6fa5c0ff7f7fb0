package domain

// BanDocument is the on-disk shape of the ban list. User ids are serialized
// as decimal strings for compatibility with the original data files.
type BanDocument struct {
	Banned []string `json:"banned"`
}

// StyleCacheDocument caches the remote style catalog together with the unix
// timestamp of the last successful fetch.
type StyleCacheDocument struct {
	Styles []string `json:"styles"`
	TS     int64    `json:"ts"`
}

// StyleCacheTTLSeconds is how long a fetched style list stays fresh.
const StyleCacheTTLSeconds = 86400

// Fresh reports whether the cached list is non-empty and fetched recently
// enough to be served without a refetch.
func (d StyleCacheDocument) Fresh(now int64) bool {
	return len(d.Styles) > 0 && now-d.TS < StyleCacheTTLSeconds
}

// UsernameEntry maps a normalized handle to the user id last seen using it.
type UsernameEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	TS   int64  `json:"ts"`
}
