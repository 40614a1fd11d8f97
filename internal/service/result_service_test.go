package service

import (
	"testing"

	"github.com/mhngo/quiznest/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeNoHistory(t *testing.T) {
	svc := NewResultService(newFakeResultRepo())

	summary, err := svc.Summarize("nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.LatestScore)
	assert.Equal(t, 0, summary.PersonalBest)
	assert.Equal(t, 0, summary.GlobalBest)
	assert.False(t, summary.HasHistory)
}

func TestSummarizeLatestAndPersonalBest(t *testing.T) {
	repo := newFakeResultRepo()
	for _, score := range []int{3, 5, 2} {
		require.NoError(t, repo.Create(&model.Result{Score: score, UserID: "user-a"}))
	}
	svc := NewResultService(repo)

	summary, err := svc.Summarize("user-a")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.LatestScore)
	assert.Equal(t, 5, summary.PersonalBest)
	assert.Equal(t, 5, summary.GlobalBest)
	assert.True(t, summary.HasHistory)
}

func TestSummarizeGlobalBestSpansUsers(t *testing.T) {
	repo := newFakeResultRepo()
	require.NoError(t, repo.Create(&model.Result{Score: 5, UserID: "user-a"}))
	require.NoError(t, repo.Create(&model.Result{Score: 9, UserID: "user-b"}))
	require.NoError(t, repo.Create(&model.Result{Score: 4, UserID: "user-b"}))
	svc := NewResultService(repo)

	summary, err := svc.Summarize("user-a")
	require.NoError(t, err)
	assert.Equal(t, 5, summary.LatestScore)
	assert.Equal(t, 5, summary.PersonalBest)
	assert.Equal(t, 9, summary.GlobalBest)
}

func TestSummarizeGlobalBestVisibleToNewcomer(t *testing.T) {
	repo := newFakeResultRepo()
	require.NoError(t, repo.Create(&model.Result{Score: 7, UserID: "user-b"}))
	svc := NewResultService(repo)

	summary, err := svc.Summarize("user-a")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.LatestScore)
	assert.Equal(t, 0, summary.PersonalBest)
	assert.Equal(t, 7, summary.GlobalBest)
	assert.False(t, summary.HasHistory)
}

func TestHistoryNewestFirst(t *testing.T) {
	repo := newFakeResultRepo()
	for _, score := range []int{3, 5, 2} {
		require.NoError(t, repo.Create(&model.Result{Score: score, UserID: "user-a"}))
	}
	require.NoError(t, repo.Create(&model.Result{Score: 9, UserID: "user-b"}))
	svc := NewResultService(repo)

	history, err := svc.History("user-a")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 2, history[0].Score)
	assert.Equal(t, 5, history[1].Score)
	assert.Equal(t, 3, history[2].Score)
}

func TestHistoryEmptyForUnknownUser(t *testing.T) {
	svc := NewResultService(newFakeResultRepo())

	history, err := svc.History("nobody")
	require.NoError(t, err)
	assert.Empty(t, history)
}
