package assistant

import "strings"

const (
	Greeting = "Hi! I'm the salon's virtual assistant. How can I help you today?"
	Fallback = "Thanks for your message. Our team will get back to you soon. Is there anything else I can help you with?"
)

type QA struct {
	Topic    string `json:"topic"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faq = []QA{
	{
		Topic:    "hours",
		Question: "What are your opening hours?",
		Answer:   "We are open Monday to Friday from 10:00 to 18:00. We are closed on weekends.",
	},
	{
		Topic:    "locations",
		Question: "Where are you located?",
		Answer:   "We have 3 locations. You can see the exact addresses in the booking section.",
	},
	{
		Topic:    "services",
		Question: "What services do you offer?",
		Answer:   "We offer haircuts, styling, hair treatments, colouring and professional barber services.",
	},
	{
		Topic:    "cancel",
		Question: "How do I cancel my appointment?",
		Answer:   "You can cancel from the \"My appointments\" section up to 2 hours before your appointment.",
	},
}

// Assistant answers the canned questions. It keeps no conversation state.
type Assistant struct {
	entries []QA
	index   map[string]string
}

func New() *Assistant {
	a := &Assistant{
		entries: faq,
		index:   make(map[string]string, len(faq)),
	}
	for _, e := range faq {
		a.index[normalize(e.Question)] = e.Answer
	}
	return a
}

func (a *Assistant) Questions() []QA {
	out := make([]QA, len(a.entries))
	copy(out, a.entries)
	return out
}

// Reply matches the text against the canned questions ignoring case and
// surrounding or repeated spaces.
func (a *Assistant) Reply(text string) string {
	if answer, ok := a.index[normalize(text)]; ok {
		return answer
	}
	return Fallback
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
