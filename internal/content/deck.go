package content

import (
	"math/rand/v2"

	"github.com/meera/lingua/internal/question"
)

// Deck is an ordered run of questions handed out one at a time.
type Deck struct {
	questions []question.Question
	pos       int
}

// NewDeck copies the given questions into a fresh deck.
func NewDeck(qs []question.Question) *Deck {
	copied := make([]question.Question, len(qs))
	copy(copied, qs)
	return &Deck{questions: copied}
}

// Shuffle randomizes the undealt remainder of the deck.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rest := d.questions[d.pos:]
	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
}

// Next deals the next question. Returns false when the deck is empty.
func (d *Deck) Next() (question.Question, bool) {
	if d.pos >= len(d.questions) {
		return question.Question{}, false
	}
	q := d.questions[d.pos]
	d.pos++
	return q, true
}

// Remaining reports how many questions are still undealt.
func (d *Deck) Remaining() int {
	return len(d.questions) - d.pos
}

// Len reports the total deck size.
func (d *Deck) Len() int {
	return len(d.questions)
}
