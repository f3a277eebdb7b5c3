package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/aiguilog/aiguilog/internal/repository"
	"github.com/aiguilog/aiguilog/internal/summitdata"
)

const (
	// minQueryLen mirrors the client-side guard: anything shorter never
	// reaches a data source.
	minQueryLen = 2

	defaultSearchLimit = 10
	maxSearchLimit     = 12

	searchCacheTTL = 5 * time.Minute
)

// SearchCache is the slice of the cache client the search path needs.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

type SummitService struct {
	summitRepo repository.SummitRepository
	static     []domain.SummitRecord
	cache      SearchCache
}

func NewSummitService(summitRepo repository.SummitRepository, static []domain.SummitRecord, cacheClient SearchCache) *SummitService {
	return &SummitService{
		summitRepo: summitRepo,
		static:     static,
		cache:      cacheClient,
	}
}

// Search returns autocomplete candidates for query. Names starting with
// the normalized query rank before names merely containing it, each tier
// in source order, live rows before bundled ones. A failing source is
// skipped with a logged warning; the caller always gets a result slice.
func (s *SummitService) Search(ctx context.Context, query string, limit int) []domain.SummitRecord {
	nq := summitdata.Normalize(query)
	if len([]rune(nq)) < minQueryLen {
		return []domain.SummitRecord{}
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	key := fmt.Sprintf("sommets:%s:%d", nq, limit)
	var cached []domain.SummitRecord
	if s.cache != nil {
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached
		}
	}

	candidates, live := s.liveCandidates(ctx, nq)
	candidates = append(candidates, s.static...)

	results := rank(candidates, nq, limit)

	// A degraded answer cached for the full TTL would keep hiding live
	// rows after the source recovers, so only healthy answers are kept.
	if live && s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, results, searchCacheTTL); err != nil {
			log.Printf("WARN [summit.Search] failed to cache results: %v", err)
		}
	}
	return results
}

// liveCandidates queries the live table. The second return reports
// whether the source answered; a false means the result is degraded to
// the bundled dataset.
func (s *SummitService) liveCandidates(ctx context.Context, nq string) ([]domain.SummitRecord, bool) {
	if s.summitRepo == nil {
		return nil, true
	}
	summits, err := s.summitRepo.Search(ctx, nq)
	if err != nil {
		log.Printf("WARN [summit.Search] live source unavailable, serving bundled dataset only: %v", err)
		return nil, false
	}
	records := make([]domain.SummitRecord, 0, len(summits))
	for _, summit := range summits {
		records = append(records, summit.Record())
	}
	return records, true
}

// rank applies the two-tier prefix/substring ordering and de-duplicates
// by normalized name, first occurrence winning.
func rank(candidates []domain.SummitRecord, nq string, limit int) []domain.SummitRecord {
	prefix := make([]domain.SummitRecord, 0, limit)
	substring := make([]domain.SummitRecord, 0, limit)
	seen := make(map[string]bool, len(candidates))

	for _, c := range candidates {
		name := summitdata.Normalize(c.Nom)
		if seen[name] {
			continue
		}
		switch {
		case strings.HasPrefix(name, nq):
			seen[name] = true
			prefix = append(prefix, c)
		case strings.Contains(name, nq):
			seen[name] = true
			substring = append(substring, c)
		}
	}

	results := append(prefix, substring...)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
