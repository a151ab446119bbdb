package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storeline/audit-backend/internal/entity"
)

func TestCollectImageURLsPriorityOrder(t *testing.T) {
	q := entity.QuestionRequest{
		ImageURL: "https://m.example.com/question.jpg",
		Answer: &entity.AnswerRequest{
			ImageURL: "https://m.example.com/answer.jpg",
			PhotoURL: "https://m.example.com/photo.jpg",
			Images:   []string{"https://m.example.com/a.jpg", "https://m.example.com/b.jpg"},
			Photos:   []string{"https://m.example.com/c.jpg"},
		},
	}

	assert.Equal(t, []string{
		"https://m.example.com/answer.jpg",
		"https://m.example.com/photo.jpg",
		"https://m.example.com/question.jpg",
		"https://m.example.com/a.jpg",
		"https://m.example.com/b.jpg",
		"https://m.example.com/c.jpg",
	}, collectImageURLs(q))
}

func TestCollectImageURLsDeduplicates(t *testing.T) {
	q := entity.QuestionRequest{
		ImageURL: "https://m.example.com/same.jpg",
		Answer: &entity.AnswerRequest{
			ImageURL: "https://m.example.com/same.jpg",
			Images:   []string{"https://m.example.com/same.jpg", "https://m.example.com/other.jpg"},
		},
	}

	assert.Equal(t, []string{
		"https://m.example.com/same.jpg",
		"https://m.example.com/other.jpg",
	}, collectImageURLs(q))
}

func TestCollectImageURLsNoAnswer(t *testing.T) {
	assert.Empty(t, collectImageURLs(entity.QuestionRequest{}))

	q := entity.QuestionRequest{ImageURL: " https://m.example.com/x.jpg "}
	assert.Equal(t, []string{"https://m.example.com/x.jpg"}, collectImageURLs(q))
}

func TestStoragePathToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc-123", "abc-123"},
		{"a/b/c", "a_b_c"},
		{"id with spaces", "id_with_spaces"},
		{"/leading/", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, storagePathToken(tt.in))
	}
}
