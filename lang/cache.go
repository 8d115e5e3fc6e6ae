package lang

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
)

// programCache stores parsed programs keyed by the xxh3 hash of their source
// and the nesting limit they were parsed with.
var programCache sync.Map

type cacheKey struct {
	hash     uint64
	maxDepth int
}

// entry is the cached result of parsing one source text.
//
// The source is retained so a hash collision is detected and parsed anew
// instead of returning another source's program.
type entry struct {
	once   sync.Once
	source string
	prog   *Program
	err    error
}

// parseCached parses source at most once per distinct source text.
// Errors are cached along with programs.
func parseCached(ctx context.Context, source string, cfg config) (*Program, error) {
	hash := xxh3.HashString(source)

	value, hit := programCache.LoadOrStore(cacheKey{hash, cfg.maxDepth}, &entry{source: source})

	ent, ok := value.(*entry)
	if !ok || ent.source != source {
		cfg.logger.TraceContext(
			ctx,
			"cache collision",
			slog.String("source_hash", strconv.FormatUint(hash, 16)),
		)

		return parse(ctx, source, cfg)
	}

	cfg.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit),
	)

	ent.once.Do(func() {
		ent.prog, ent.err = parse(ctx, source, cfg)
	})

	return ent.prog, ent.err
}

// ClearCache removes all cached programs.
func ClearCache() {
	programCache.Clear()
}
