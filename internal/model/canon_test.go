package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonShape(t *testing.T) {
	require.Len(t, Canon, 66)

	total := 0
	for _, book := range Canon {
		assert.Positive(t, book.Chapters, book.Name)
		assert.NotEmpty(t, book.KoreanName, book.Name)
		total += book.Chapters
	}
	assert.Equal(t, TotalCanonChapters, total)
	assert.Equal(t, 1189, total)
}

func TestChapterCount(t *testing.T) {
	count, ok := ChapterCount("Genesis")
	assert.True(t, ok)
	assert.Equal(t, 50, count)

	count, ok = ChapterCount("Psalms")
	assert.True(t, ok)
	assert.Equal(t, 150, count)

	count, ok = ChapterCount("Revelation")
	assert.True(t, ok)
	assert.Equal(t, 22, count)

	_, ok = ChapterCount("창세기")
	assert.False(t, ok)

	_, ok = ChapterCount("")
	assert.False(t, ok)
}

func TestKoreanBookName(t *testing.T) {
	assert.Equal(t, "창세기", KoreanBookName("Genesis"))
	assert.Equal(t, "요한복음", KoreanBookName("John"))
	assert.Equal(t, "요한계시록", KoreanBookName("Revelation"))

	// 모르는 책은 입력을 그대로 돌려준다
	assert.Equal(t, "Atlantis", KoreanBookName("Atlantis"))
}
