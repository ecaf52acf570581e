package main

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stopwatch accumulates elapsed time into named buckets.
type Stopwatch struct {
	Buckets      map[string]time.Duration
	BucketStarts map[string]time.Time
	now          func() time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		Buckets:      make(map[string]time.Duration),
		BucketStarts: make(map[string]time.Time),
		now:          time.Now,
	}
}

func (s *Stopwatch) Start(b string) {
	s.BucketStarts[b] = s.now()
	if _, ok := s.Buckets[b]; !ok {
		s.Buckets[b] = 0
	}
}

// Stop is a no-op for a bucket that was never started.
func (s *Stopwatch) Stop(b string) {
	end := s.now()
	start, ok := s.BucketStarts[b]
	if !ok {
		return
	}
	s.Buckets[b] += end.Sub(start)
	delete(s.BucketStarts, b)
}

func (s *Stopwatch) Results() string {
	names := make([]string, 0, len(s.Buckets))
	for k := range s.Buckets {
		names = append(names, k)
	}
	sort.Strings(names)
	var sb strings.Builder
	for _, k := range names {
		fmt.Fprintf(&sb, "%s: %.4f\n", k, s.Buckets[k].Seconds())
	}
	return sb.String()
}
