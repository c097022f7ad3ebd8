package assistant

import "testing"

func TestReplyMatchesCannedQuestions(t *testing.T) {
	a := New()

	for _, q := range a.Questions() {
		if got := a.Reply(q.Question); got != q.Answer {
			t.Fatalf("Reply(%q) = %q", q.Question, got)
		}
	}

	if got := a.Reply("  how do I   CANCEL my appointment?  "); got != faq[3].Answer {
		t.Fatalf("expected cancel answer, got %q", got)
	}
}

func TestReplyFallback(t *testing.T) {
	a := New()

	for _, text := range []string{"", "do you sell gift cards?", "hours"} {
		if got := a.Reply(text); got != Fallback {
			t.Fatalf("Reply(%q) = %q, want fallback", text, got)
		}
	}
}

func TestQuestionsReturnsCopy(t *testing.T) {
	a := New()

	qs := a.Questions()
	qs[0].Answer = "changed"

	if a.Questions()[0].Answer == "changed" {
		t.Fatalf("Questions must not expose internal state")
	}
}
