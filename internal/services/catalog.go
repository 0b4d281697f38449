package services

import "math/rand"

// Subjects a deck can be generated for.
var Subjects = []string{
	"Anatomy", "Physiology", "Biochemistry", "Histology", "Embryology",
	"Microbiology", "Parasitology", "Pharmacology", "Pathology", "Semiology",
	"Internal Medicine", "Pediatrics", "Neurology", "Surgery",
	"Obstetrics/Gynecology", "Other",
}

// TopicVisual is the icon and accent color the client shows for a body
// system.
type TopicVisual struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// TopicVisuals maps each topic (body system) to its visual. The key set
// doubles as the topic catalog.
var TopicVisuals = map[string]TopicVisual{
	"Cardiovascular":     {Icon: "❤️", Color: "#FF5757"},
	"Respiratory":        {Icon: "🫁", Color: "#46B9C7"},
	"Central Nervous":    {Icon: "🧠", Color: "#A67CEF"},
	"Peripheral Nervous": {Icon: "⚡", Color: "#FFD700"},
	"Digestive":          {Icon: "🍔", Color: "#FFB347"},
	"Renal":              {Icon: "💧", Color: "#5C94FF"},
	"Musculoskeletal":    {Icon: "💪", Color: "#90EE90"},
	"Endocrine":          {Icon: "🧬", Color: "#FF69B4"},
	"Hematologic":        {Icon: "🩸", Color: "#DC143C"},
	"Immune":             {Icon: "🛡️", Color: "#1E90FF"},
	"Reproductive":       {Icon: "🤰", Color: "#F5A6C1"},
	"General":            {Icon: "📚", Color: "#E0E0E0"},
	"Other":              {Icon: "❓", Color: "#4A4A4A"},
}

var stoicQuotes = []string{
	"“The obstacle is the way.” — Marcus Aurelius",
	"“Difficulty is what wakes up the genius.” — Seneca",
	"“It is not that we have little time, but that we waste much of it.” — Seneca",
	"“Excellence is a habit, not an act.” — Aristotle",
	"“An ounce of practice is worth a ton of theory.”",
	"“Success is the sum of small efforts repeated day after day.” — Robert Collier",
}

func RandomQuote() string {
	return stoicQuotes[rand.Intn(len(stoicQuotes))]
}

func ValidSubject(subject string) bool {
	for _, s := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

func ValidTopic(topic string) bool {
	_, ok := TopicVisuals[topic]
	return ok
}

// VisualFor returns the topic's visual, falling back to "Other" for topics
// outside the catalog.
func VisualFor(topic string) TopicVisual {
	if v, ok := TopicVisuals[topic]; ok {
		return v
	}
	return TopicVisuals["Other"]
}
