package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingEndChapter(t *testing.T) {
	r := Reading{Book: "John", StartChapter: 3, ChaptersRead: 2}
	assert.Equal(t, 4, r.EndChapter())

	single := Reading{Book: "Jude", StartChapter: 1, ChaptersRead: 1}
	assert.Equal(t, 1, single.EndChapter())
}
