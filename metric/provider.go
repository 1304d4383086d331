package metric

const (
	hitKey = iota
	missKey
	errorKey
)

// importProvider maps import counter values to cache outcome buckets
type importProvider struct{}

func (p *importProvider) Keys() []string {
	return []string{CacheHit, CacheMiss, "error"}
}

func (p *importProvider) Map(value interface{}) int {
	switch actual := value.(type) {
	case error:
		if actual != nil {
			return errorKey
		}
	case string:
		switch actual {
		case CacheHit:
			return hitKey
		case CacheMiss:
			return missKey
		}
	}
	return -1
}
