package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"primering/internal/analysis"
	"primering/internal/diary"
	"primering/internal/model"
	"primering/pkg/log"
)

// Config tunes generation and the result cache.
type Config struct {
	// Temperature defaults to 0.7 when nil. An explicit 0 is kept.
	Temperature *float64
	MaxTokens   int
	DateLayout  string
	CacheSize   int
	CacheTTL    time.Duration
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 1024
	defaultCacheSize   = 256
	defaultCacheTTL    = time.Hour
)

type implUseCase struct {
	l       log.Logger
	diaries diary.UseCase
	llm     analysis.Generator
	prompt  analysis.PromptBuilder
	cfg     Config
	cache   *expirable.LRU[string, model.AnalysisResult]
	gens    *generations
	now     func() time.Time
}

// New creates the analysis usecase. llm may be nil, in which case Analyze
// returns analysis.ErrUnavailable.
func New(l log.Logger, diaries diary.UseCase, llm analysis.Generator, cfg Config) *implUseCase {
	if cfg.Temperature == nil {
		t := defaultTemperature
		cfg.Temperature = &t
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	return &implUseCase{
		l:       l,
		diaries: diaries,
		llm:     llm,
		prompt:  analysis.PromptBuilder{DateLayout: cfg.DateLayout},
		cfg:     cfg,
		cache:   expirable.NewLRU[string, model.AnalysisResult](cfg.CacheSize, nil, cfg.CacheTTL),
		gens:    newGenerations(),
		now:     time.Now,
	}
}

// generations hands out a sequence number per request key. Only the holder
// of the latest number for a key is current.
type generations struct {
	mu     sync.Mutex
	seq    uint64
	latest map[string]uint64
}

func newGenerations() *generations {
	return &generations{latest: make(map[string]uint64)}
}

func (g *generations) start(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	g.latest[key] = g.seq
	return g.seq
}

func (g *generations) current(key string, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.latest[key] == gen
}

// finish forgets key when gen is still its latest request.
func (g *generations) finish(key string, gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.latest[key] == gen {
		delete(g.latest, key)
	}
}
