package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreOpenTwiceKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SetBest("best_snake", 30))
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	best, err := store.Best("best_snake")
	require.NoError(t, err)
	assert.Equal(t, 30, best)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore("flappy", score)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("dino", 500)
	require.NoError(t, err)

	scores, err := store.TopScores("flappy", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.False(t, scores[0].CreatedAt.IsZero(), "created_at should be parsed")

	dino, err := store.TopScores("dino", 10)
	require.NoError(t, err)
	require.Len(t, dino, 1)
	assert.Equal(t, 500, dino[0].Score)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		_, err := store.SaveScore("tetris", i*10)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("tetris", 5)
	require.NoError(t, err)
	require.Len(t, scores, 5)
	assert.Equal(t, 190, scores[0].Score)

	// Non-positive limits fall back to 10.
	scores, err = store.TopScores("tetris", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 10)
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pong")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	for _, score := range []int{7, 11, 3} {
		_, err := store.SaveScore("pong", score)
		require.NoError(t, err)
	}
	high, err = store.HighScore("pong")
	require.NoError(t, err)
	assert.Equal(t, 11, high)

	require.NoError(t, store.SetBest("best_pong", 11))
	require.NoError(t, store.ClearScores("pong"))

	all, err := store.AllScores("pong")
	require.NoError(t, err)
	assert.Empty(t, all)

	best, err := store.Best("best_pong")
	require.NoError(t, err)
	assert.Equal(t, 11, best, "clearing history keeps the best")
}

func TestStoreBests(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best("best_missing")
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	require.NoError(t, store.SetBest("best_snake", 40))
	require.NoError(t, store.SetBest("best_snake", 70))
	require.NoError(t, store.SetBest("best_snake", 30))
	require.NoError(t, store.SetBest("best_breakout", 15))

	best, err = store.Best("best_snake")
	require.NoError(t, err)
	assert.Equal(t, 70, best)

	all, err := store.AllBests()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "best_breakout", all[0].Key)
	assert.Equal(t, "best_snake", all[1].Key)
	assert.Equal(t, 70, all[1].Score)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("snake")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.GamesCount)
	assert.True(t, stats.LastPlayed.IsZero())

	for _, score := range []int{10, 20, 30} {
		_, err := store.SaveScore("snake", score)
		require.NoError(t, err)
	}
	_, err = store.SaveScore("pong", 4)
	require.NoError(t, err)

	stats, err = store.GetGameStats("snake")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.GamesCount)
	assert.Equal(t, 30, stats.HighScore)
	assert.InDelta(t, 20.0, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(60), stats.TotalScore)

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 4, all["pong"].HighScore)
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade-test/scores.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".arcade-test", "scores.db"))
	assert.NoError(t, err)
}
