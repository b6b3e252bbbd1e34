package buffers_test

import (
	"lazyseq/buffers"
	"testing"
)

func TestSeen(t *testing.T) {
	s := buffers.NewSeen[string]()

	if !s.Add("a") {
		t.Error("expected first Add(a) to report new")
	}
	if s.Add("a") {
		t.Error("expected second Add(a) to report seen")
	}
	if !s.Add("b") {
		t.Error("expected Add(b) to report new")
	}
}
