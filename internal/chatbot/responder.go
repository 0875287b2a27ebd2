// Package chatbot provides the canned-response chat assistant: a pure
// keyword-matching responder and an append-only message log.
package chatbot

import "strings"

// Greeting seeds the message log when the chat window opens.
const Greeting = "Hello! Welcome to Bakerra 👋 How can I help you today?"

// Fallback is returned when no keyword group matches.
const Fallback = "Thanks for your question! For detailed information, please visit our About section or contact us at hello@bakerra.com. We're here to help!"

// SuggestedQuestions are the quick prompts offered in the chat panel.
var SuggestedQuestions = []string{
	"What products do you offer?",
	"Do you have vegan options?",
	"What are your delivery options?",
	"How can I place a custom order?",
	"What are your operating hours?",
	"Do you offer gluten-free items?",
}

// rule pairs a keyword group with its canned reply. Rules are tested in
// order; the first group with any keyword contained in the input wins.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"product", "offer"},
		reply:    "At Bakerra, we offer fresh artisan breads, delicate pastries, cakes, cupcakes, and more! All handcrafted daily with the finest ingredients. Visit our Bakerra Picks section to see our full selection!",
	},
	{
		keywords: []string{"vegan"},
		reply:    "Yes! We offer vegan options for many of our products. Please check our menu or contact us at hello@bakerra.com for specific vegan items available.",
	},
	{
		keywords: []string{"delivery"},
		reply:    "We offer Standard Delivery (24 hours) for $3.99 and Express Delivery (6 hours) for +$5. You can add items to your cart and select your delivery preference during checkout!",
	},
	{
		keywords: []string{"custom", "order"},
		reply:    "We'd love to create a custom order for you! Please contact us at hello@bakerra.com or call (555) 123-4567 at least 48 hours in advance for custom cakes and pastry platters.",
	},
	{
		keywords: []string{"hour", "open", "time"},
		reply:    "Our hours are: Mon-Fri: 7am - 7pm, Sat-Sun: 8am - 6pm. Feel free to reach out if you have any questions!",
	},
	{
		keywords: []string{"gluten"},
		reply:    "Yes! We have gluten-free options available. Please check our Bakerra Ranges section or contact us for details on our gluten-free offerings.",
	},
	{
		keywords: []string{"hello", "hi"},
		reply:    "Hello! Welcome to Bakerra 👋 How can I help you today? Feel free to ask about our products, delivery, or anything else!",
	},
}

// Respond maps free-text input to a canned reply. Matching is
// case-insensitive substring containment in fixed priority order; unmatched
// input gets the fallback. Deterministic, stateless and total.
func Respond(userText string) string {
	msg := strings.ToLower(userText)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.reply
			}
		}
	}
	return Fallback
}
