package lang

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestParseString_CacheHit(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	source := "a = 1\nprint(a)"

	first, err := ParseString(t.Context(), source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	second, err := ParseString(t.Context(), source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if first != second {
		t.Error("expected cached program to be returned")
	}

	if first.String() != "a = 1\nprint(a)\n" {
		t.Errorf("unexpected program: %q", first.String())
	}
}

func TestParseString_CacheDisabled(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	source := "x = 2 + 2"

	first, err := ParseString(t.Context(), source, WithCache(false))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	second, err := ParseString(t.Context(), source, WithCache(false))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if first == second {
		t.Error("expected distinct programs with caching disabled")
	}

	if first.String() != second.String() {
		t.Errorf("expected equivalent programs, got %q and %q",
			first.String(), second.String())
	}
}

func TestParseString_CachesErrors(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	for range 2 {
		_, err := ParseString(t.Context(), "1 +")
		if !errors.Is(err, ErrUnexpectedEOF) {
			t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
		}
	}
}

func TestClearCache(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	first, err := ParseString(t.Context(), "y = 3")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	ClearCache()

	second, err := ParseString(t.Context(), "y = 3")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if first == second {
		t.Error("expected a fresh program after ClearCache")
	}
}

func TestParseString_Concurrent(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	const workers = 16

	var (
		wg    sync.WaitGroup
		progs [workers]*Program
		errs  [workers]error
	)

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			// Half the workers share one source.
			source := fmt.Sprintf("v = %d * 2", i%2)
			progs[i], errs[i] = ParseString(t.Context(), source)
		}()
	}

	wg.Wait()

	for i := range workers {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}

		if progs[i] != progs[i%2] {
			t.Errorf("worker %d: expected program shared with worker %d", i, i%2)
		}
	}
}

func BenchmarkParseString(b *testing.B) {
	b.Run("cached", func(b *testing.B) {
		ClearCache()
		b.ReportAllocs()

		for b.Loop() {
			_, err := ParseString(b.Context(), sampleProgram)
			if err != nil {
				b.Fatalf("parse error: %v", err)
			}
		}
	})

	b.Run("uncached", func(b *testing.B) {
		b.ReportAllocs()

		for b.Loop() {
			_, err := ParseString(b.Context(), sampleProgram, WithCache(false))
			if err != nil {
				b.Fatalf("parse error: %v", err)
			}
		}
	})
}
