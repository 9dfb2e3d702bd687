// Package glyph defines the terminal symbols used when printing payments and
// responsibilities.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Kind marks what a timeline row represents.
type Kind int

const (
	Payment Kind = iota
	Responsibility
	Done
	Paid
	High
	Medium
	Low
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Key: "$", Symbol: "◆", Meaning: "payment due"},
		{Key: "+", Symbol: "●", Meaning: "responsibility"},
		{Key: "x", Symbol: "✘", Meaning: "responsibility completed"},
		{Key: "p", Symbol: "✔", Meaning: "payment made"},
		{Key: "!", Symbol: "!", Meaning: "high priority"},
		{Key: "-", Symbol: "–", Meaning: "medium priority"},
		{Key: ".", Symbol: "·", Meaning: "low priority"},
	}
}

func (k Kind) Glyph() Glyph {
	return DefaultGlyphs()[k]
}

func (k Kind) String() string {
	return k.Glyph().String()
}

func (g Glyph) String() string {
	return g.Symbol
}
