package domain

import "strings"

// Phrase is an immutable, curried sentence under construction.
//
//	Say("hello").And("my").And("friends").Phrase() // "hello my friends"
//
// Every call to And returns a new Phrase, so a Phrase can be shared and
// extended along different branches.
type Phrase struct {
	words []string
}

// Say starts a phrase. With no argument the phrase is empty.
func Say(word ...string) Phrase {
	return Phrase{words: append([]string(nil), word...)}
}

// And returns a new phrase with word appended.
func (p Phrase) And(word string) Phrase {
	words := make([]string, len(p.words), len(p.words)+1)
	copy(words, p.words)

	return Phrase{words: append(words, word)}
}

// Phrase joins the accumulated words with single spaces.
func (p Phrase) Phrase() string {
	return strings.Join(p.words, " ")
}

// Words returns a copy of the accumulated words.
func (p Phrase) Words() []string {
	return append([]string(nil), p.words...)
}
