package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anonto42/microblog/backend/internal/models"
)

func TestPostPreview(t *testing.T) {
	post := &models.Post{Text: "a reasonably long post body"}

	assert.Equal(t, "a reasonably lo", post.Preview(15))
	assert.Equal(t, post.Text, post.Preview(1000))
	assert.Equal(t, post.Text, post.Preview(0))
}

func TestPostPreviewDoesNotSplitRunes(t *testing.T) {
	post := &models.Post{Text: "Тестовый текст"}

	assert.Equal(t, "Тестовый т", post.Preview(10))
}
