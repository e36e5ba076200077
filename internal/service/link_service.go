package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shortify/shortify/internal/cache"
	apperrors "github.com/shortify/shortify/internal/errors"
	"github.com/shortify/shortify/internal/model"
	"github.com/shortify/shortify/internal/repository"
	"github.com/shortify/shortify/internal/utils"
)

// LinkService orchestrates code generation, the mapping store and the lookup
// cache. The store is the source of truth; the cache only short-circuits URL
// lookups and is always best-effort.
type LinkService struct {
	linkRepo   repository.LinkRepository
	linkCache  cache.LinkCache
	baseURL    string
	codeLength int
}

func NewLinkService(linkRepo repository.LinkRepository, linkCache cache.LinkCache, baseURL string, codeLength int) *LinkService {
	if codeLength <= 0 {
		codeLength = utils.DefaultShortCodeLength
	}
	return &LinkService{
		linkRepo:   linkRepo,
		linkCache:  linkCache,
		baseURL:    baseURL,
		codeLength: codeLength,
	}
}

// Shorten creates a new mapping. With a custom alias the existence pre-check
// gives a fast conflict answer, but correctness rests on the store's unique
// constraint: the insert itself decides races. Generated-code collisions are
// surfaced as conflicts rather than retried; callers may resubmit.
func (s *LinkService) Shorten(ctx context.Context, req *model.ShortenRequest) (*model.ShortenResponse, error) {
	longURL := utils.SanitizeInput(req.LongURL)
	if err := utils.ValidateURL(longURL); err != nil {
		return nil, err
	}

	var shortCode string
	if req.CustomAlias != "" {
		if err := utils.ValidateAlias(req.CustomAlias); err != nil {
			return nil, err
		}

		exists, err := s.linkRepo.ExistsByCode(ctx, req.CustomAlias)
		if err != nil {
			return nil, fmt.Errorf("failed to check alias: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("alias '%s': %w", req.CustomAlias, apperrors.ErrAliasTaken)
		}

		shortCode = req.CustomAlias
	} else {
		code, err := utils.GenerateShortCodeWithLength(s.codeLength)
		if err != nil {
			return nil, apperrors.NewBusinessError("SHORT_CODE_GENERATION", "failed to generate short code", err)
		}
		shortCode = code
	}

	link := &model.Link{
		ShortCode: shortCode,
		LongURL:   longURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.linkRepo.Insert(ctx, link); err != nil {
		return nil, err
	}

	s.cacheURL(ctx, shortCode, longURL)

	return &model.ShortenResponse{
		ShortCode: shortCode,
		ShortURL:  s.buildShortURL(shortCode),
		LongURL:   longURL,
		CreatedAt: link.CreatedAt,
	}, nil
}

// Expand resolves a short code without touching stats. Cache hits skip the
// store entirely; misses fall through and populate the cache.
func (s *LinkService) Expand(ctx context.Context, shortCode string) (string, error) {
	if shortCode == "" {
		return "", apperrors.NewValidationError("code", "short code cannot be empty")
	}

	if longURL, err := s.linkCache.GetURL(ctx, shortCode); err == nil {
		return longURL, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("cache read failed, falling back to store")
	}

	link, err := s.linkRepo.FindByCode(ctx, shortCode)
	if err != nil {
		return "", err
	}

	s.cacheURL(ctx, shortCode, link.LongURL)

	return link.LongURL, nil
}

// Redirect resolves a short code and records the visit. Unlike Expand, the
// store is consulted even on a cache hit: the clicks increment and
// last_accessed update are part of the contract, and the store remains the
// authority for existence.
func (s *LinkService) Redirect(ctx context.Context, shortCode string) (string, error) {
	if shortCode == "" {
		return "", apperrors.NewValidationError("code", "short code cannot be empty")
	}

	cacheHit := true
	if _, err := s.linkCache.GetURL(ctx, shortCode); err != nil {
		cacheHit = false
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn().Err(err).Str("short_code", shortCode).Msg("cache read failed on redirect")
		}
	}

	longURL, err := s.linkRepo.RecordVisit(ctx, shortCode, time.Now().UTC())
	if err != nil {
		return "", err
	}

	if !cacheHit {
		s.cacheURL(ctx, shortCode, longURL)
	}

	return longURL, nil
}

// Stats reads click statistics from the store only; stats are never cached.
func (s *LinkService) Stats(ctx context.Context, shortCode string) (*model.StatsResponse, error) {
	if shortCode == "" {
		return nil, apperrors.NewValidationError("code", "short code cannot be empty")
	}

	link, err := s.linkRepo.FindByCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	return &model.StatsResponse{
		ShortCode:    link.ShortCode,
		LongURL:      link.LongURL,
		Clicks:       link.Clicks,
		LastAccessed: link.LastAccessed,
	}, nil
}

// cacheURL populates the lookup cache. Failures are logged and swallowed:
// correctness depends only on the store.
func (s *LinkService) cacheURL(ctx context.Context, shortCode, longURL string) {
	if err := s.linkCache.SetURL(ctx, shortCode, longURL); err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("failed to populate cache")
	}
}

func (s *LinkService) buildShortURL(shortCode string) string {
	return fmt.Sprintf("%s/r/%s", s.baseURL, shortCode)
}
