package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReviewRecomputesRating(t *testing.T) {
	p := Product{Name: "Sérum vitamine C"}

	require.NoError(t, p.AddReview(Review{Name: "Alice", Rating: 5, CreatedAt: time.Now()}))
	assert.Equal(t, 1, p.NumReviews)
	assert.InDelta(t, 5.0, p.Rating, 1e-9)

	require.NoError(t, p.AddReview(Review{Name: "Bob", Rating: 3, CreatedAt: time.Now()}))
	require.NoError(t, p.AddReview(Review{Name: "Chloé", Rating: 4, CreatedAt: time.Now()}))

	assert.Equal(t, 3, p.NumReviews)
	assert.Len(t, p.Reviews, p.NumReviews)
	assert.InDelta(t, 4.0, p.Rating, 1e-9)
}

func TestAddReviewRejectsDuplicateName(t *testing.T) {
	p := Product{Name: "Crème hydratante"}

	require.NoError(t, p.AddReview(Review{Name: "Alice", Rating: 2}))

	err := p.AddReview(Review{Name: "Alice", Rating: 5})
	assert.ErrorIs(t, err, ErrDuplicateReview)

	// L'avis refusé ne doit rien changer.
	assert.Equal(t, 1, p.NumReviews)
	assert.Len(t, p.Reviews, 1)
	assert.InDelta(t, 2.0, p.Rating, 1e-9)
}

func TestAddReviewAllowsDifferentNames(t *testing.T) {
	p := Product{}

	require.NoError(t, p.AddReview(Review{Name: "Alice", Rating: 1}))
	require.NoError(t, p.AddReview(Review{Name: "alice", Rating: 5}))

	// La comparaison est sensible à la casse, comme dans le front.
	assert.Equal(t, 2, p.NumReviews)
	assert.InDelta(t, 3.0, p.Rating, 1e-9)
}
