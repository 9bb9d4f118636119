package upsell

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"dinepos/internal/menu"
)

// Fallback suggestions are deterministic: the first two catalog
// items as received, with a fixed reason and confidence. The UI is
// never left without guidance just because the AI is down.
const (
	FallbackReason     = "Popular choice among customers"
	FallbackConfidence = 80
)

const (
	defaultTimeout   = 8 * time.Second
	transportRetries = 2
	retryBackoff     = 500 * time.Millisecond
)

// Suggestion is an upsell recommendation resolved to a real catalog
// item. Suggestions are ephemeral and replaced wholesale each cycle.
type Suggestion struct {
	Item       menu.MenuItem `json:"item"`
	Reason     string        `json:"reason"`
	Confidence float64       `json:"confidence"`
}

// Engine runs one suggestion-fetch cycle at a time:
// request → parse → match → fallback, strictly in that order.
// Overlapping cycles are resolved last-write-wins: a stale in-flight
// result is computed but never stored.
type Engine struct {
	provider Provider
	timeout  time.Duration
	retries  int
	backoff  time.Duration

	mu       sync.Mutex
	gen      uint64
	current  []Suggestion
	lastSize int
}

func NewEngine(provider Provider) *Engine {
	return &Engine{
		provider: provider,
		timeout:  defaultTimeout,
		retries:  transportRetries,
		backoff:  retryBackoff,
	}
}

// Suggestions returns the latest committed suggestion list.
func (e *Engine) Suggestions() []Suggestion {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Suggestion(nil), e.current...)
}

// CatalogChanged implements menu.CatalogListener: a cycle starts
// when the catalog becomes non-empty or changes size. An empty
// catalog keeps whatever was on screen, matching the remount-retry
// behavior the explicit Refresh exists to replace.
func (e *Engine) CatalogChanged(items []menu.MenuItem) {
	e.mu.Lock()
	changed := len(items) != e.lastSize
	e.lastSize = len(items)
	e.mu.Unlock()

	if !changed || len(items) == 0 {
		return
	}

	e.Refresh(context.Background(), nil, items)
}

// Refresh runs one full suggestion cycle and commits the result
// unless a newer cycle has started since.
func (e *Engine) Refresh(
	ctx context.Context,
	cart []CartItem,
	catalog []menu.MenuItem,
) []Suggestion {

	e.mu.Lock()
	e.gen++
	gen := e.gen
	e.mu.Unlock()

	sugs := e.fetch(ctx, cart, catalog)

	e.mu.Lock()
	if gen == e.gen {
		e.current = sugs
	}
	e.mu.Unlock()

	return sugs
}

func (e *Engine) fetch(
	ctx context.Context,
	cart []CartItem,
	catalog []menu.MenuItem,
) []Suggestion {

	if len(catalog) == 0 {
		// nothing to suggest and nothing to fabricate
		return []Suggestion{}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.completeWithRetry(ctx, BuildUpsellPrompt(cart, catalog))
	if err != nil {
		switch {
		case errors.Is(err, ErrRateLimited):
			log.Println("SUGGEST_RATE_LIMITED: temporarily unavailable, serving fallback")
		case errors.Is(err, ErrQuotaExhausted):
			log.Println("SUGGEST_QUOTA_EXHAUSTED: add credits to restore AI suggestions, serving fallback")
		default:
			log.Printf("SUGGEST_FAILED: %v, serving fallback", err)
		}
		return Fallback(catalog)
	}

	parsed, err := ParseSuggestions(raw)
	if err != nil {
		log.Printf("SUGGEST_PARSE_FAILED: %v, serving fallback", err)
		return Fallback(catalog)
	}

	matched := MatchCatalog(parsed, catalog)
	if len(matched) == 0 {
		return Fallback(catalog)
	}

	return matched
}

// completeWithRetry retries transient transport failures with
// backoff. Rate-limit and quota conditions are terminal for the
// cycle — retrying them would only burn the limit further.
func (e *Engine) completeWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; ; attempt++ {
		raw, err := e.provider.Complete(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrQuotaExhausted) {
			return "", err
		}
		if attempt >= e.retries {
			return "", lastErr
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(e.backoff << attempt):
		}
	}
}

// MatchCatalog resolves suggested names to catalog items with
// case-insensitive exact matching. Unresolvable names are dropped,
// and the first catalog match wins when names collide. The result
// never exceeds what the provider supplied.
func MatchCatalog(raw []RawSuggestion, catalog []menu.MenuItem) []Suggestion {
	var out []Suggestion

	for _, r := range raw {
		for _, item := range catalog {
			if strings.EqualFold(item.Name, r.ItemName) {
				out = append(out, Suggestion{
					Item:       item,
					Reason:     r.Reason,
					Confidence: r.Confidence,
				})
				break
			}
		}
	}

	return out
}

// Fallback returns the deterministic non-AI suggestion list: the
// first two catalog items in as-received order. An empty catalog
// yields an empty list.
func Fallback(catalog []menu.MenuItem) []Suggestion {
	n := 2
	if len(catalog) < n {
		n = len(catalog)
	}

	out := make([]Suggestion, 0, n)
	for _, item := range catalog[:n] {
		out = append(out, Suggestion{
			Item:       item,
			Reason:     FallbackReason,
			Confidence: FallbackConfidence,
		})
	}

	return out
}
