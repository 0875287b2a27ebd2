package chatbot

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestNewLogSeedsGreeting(t *testing.T) {
	l := NewLog(t0)
	msgs := l.Messages()
	if len(msgs) != 1 || msgs[0].Role != RoleBot || msgs[0].Content != Greeting {
		t.Fatalf("fresh log = %+v", msgs)
	}
}

func TestPostAndCompleteReply(t *testing.T) {
	l := NewLog(t0)

	epoch, ok := l.Post("Do you have vegan options?", t0)
	if !ok {
		t.Fatal("Post rejected valid input")
	}
	if !l.Pending() {
		t.Fatal("pending not set after Post")
	}

	// Input disabled while pending.
	if _, ok := l.Post("second question", t0); ok {
		t.Fatal("Post accepted input while a reply was pending")
	}

	if !l.CompleteReply(epoch, t0.Add(500*time.Millisecond)) {
		t.Fatal("CompleteReply rejected live epoch")
	}
	if l.Pending() {
		t.Fatal("pending stuck after reply")
	}

	msgs := l.Messages()
	if len(msgs) != 3 {
		t.Fatalf("log has %d messages, want 3", len(msgs))
	}
	if msgs[1].Role != RoleUser || msgs[2].Role != RoleBot {
		t.Fatalf("roles out of order: %+v", msgs)
	}
	if msgs[2].Content != Respond("Do you have vegan options?") {
		t.Fatalf("bot reply mismatch: %q", msgs[2].Content)
	}
}

func TestPostRejectsBlank(t *testing.T) {
	l := NewLog(t0)
	if _, ok := l.Post("", t0); ok {
		t.Fatal("Post accepted empty input")
	}
}

func TestCompleteReplyStaleEpoch(t *testing.T) {
	l := NewLog(t0)
	epoch, _ := l.Post("hello", t0)
	if !l.CompleteReply(epoch, t0) {
		t.Fatal("first CompleteReply failed")
	}
	if l.CompleteReply(epoch, t0) {
		t.Fatal("stale CompleteReply appended a duplicate reply")
	}
	if got := len(l.Messages()); got != 3 {
		t.Fatalf("log has %d messages, want 3", got)
	}
}

func TestLogIsAppendOnly(t *testing.T) {
	l := NewLog(t0)
	var prev []Message
	ask := []string{"hi", "vegan?", "asdkjasd", "delivery please"}

	for _, q := range ask {
		epoch, ok := l.Post(q, t0)
		if !ok {
			t.Fatalf("Post(%q) rejected", q)
		}
		l.CompleteReply(epoch, t0)

		cur := l.Messages()
		if len(cur) != len(prev)+2 {
			t.Fatalf("log grew from %d to %d, want +2", len(prev), len(cur))
		}
		for i := range prev {
			if cur[i] != prev[i] {
				t.Fatalf("prior entry %d changed: %+v -> %+v", i, prev[i], cur[i])
			}
		}
		prev = cur
	}
}
