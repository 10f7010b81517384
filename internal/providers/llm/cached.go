package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/cache"
)

const cacheKeyPrefix = "ai:completion:"

// CachedProvider memoizes successful completions. Cache failures are logged
// and otherwise ignored; errors from the wrapped provider are never cached.
type CachedProvider struct {
	base  Provider
	cache cache.Cache
	ttl   time.Duration
	log   logrus.FieldLogger
}

func NewCachedProvider(base Provider, c cache.Cache, ttl time.Duration, log logrus.FieldLogger) *CachedProvider {
	return &CachedProvider{base: base, cache: c, ttl: ttl, log: log}
}

func (p *CachedProvider) Name() string { return p.base.Name() }

func (p *CachedProvider) Close() error { return p.base.Close() }

func (p *CachedProvider) Complete(ctx context.Context, req Request) (string, error) {
	if req.NoCache {
		return p.base.Complete(ctx, req)
	}
	key := CacheKey(req)

	var cached string
	hit, err := p.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		p.log.WithError(err).Warn("completion cache read failed")
	}
	if hit && cached != "" {
		return cached, nil
	}

	out, err := p.base.Complete(ctx, req)
	if err != nil {
		return "", err
	}

	if err := p.cache.SetJSON(ctx, key, out, p.ttl); err != nil {
		p.log.WithError(err).Warn("completion cache write failed")
	}
	return out, nil
}

// Forget evicts the answer stored for req.
func (p *CachedProvider) Forget(ctx context.Context, req Request) {
	if err := p.cache.Del(ctx, CacheKey(req)); err != nil {
		p.log.WithError(err).Warn("completion cache evict failed")
	}
}

// CacheKey is stable for identical model and prompt pairs.
func CacheKey(req Request) string {
	h := sha256.New()
	h.Write([]byte(req.Model))
	h.Write([]byte{0})
	h.Write([]byte(req.System))
	h.Write([]byte{0})
	h.Write([]byte(req.User))
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}
