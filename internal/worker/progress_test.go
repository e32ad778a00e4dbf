package worker

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestProgress_NilSafe(t *testing.T) {
	var p *Progress
	p.Add(3)
	if p.Done() != 0 {
		t.Errorf("expected 0 from nil progress, got %d", p.Done())
	}
}

func TestProgress_Throttled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := NewProgress(logger, "rank", 100, time.Hour)
	for i := 0; i < 100; i++ {
		p.Add(1)
	}

	if p.Done() != 100 {
		t.Errorf("expected 100 done, got %d", p.Done())
	}

	if n := strings.Count(buf.String(), "msg=progress"); n != 1 {
		t.Errorf("expected exactly 1 progress line within the interval, got %d", n)
	}
	if !strings.Contains(buf.String(), "stage=rank") {
		t.Errorf("expected stage attribute in %q", buf.String())
	}
}

func TestProgress_Concurrent(t *testing.T) {
	p := NewProgress(nil, "rank", 0, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.Add(1)
			}
		}()
	}
	wg.Wait()

	if p.Done() != 800 {
		t.Errorf("expected 800 done, got %d", p.Done())
	}
}
