package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingJob struct {
	runs int
	err  error
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(ctx context.Context) error {
	j.runs++
	return j.err
}

func TestScheduler_AddJob(t *testing.T) {
	s := New(zap.NewNop().Sugar())

	t.Run("valid schedule", func(t *testing.T) {
		err := s.AddJob("0 14 1 * *", &countingJob{})
		require.NoError(t, err)
		require.Equal(t, 1, s.Entries())
	})

	t.Run("seconds field is rejected", func(t *testing.T) {
		err := s.AddJob("0 0 14 1 * *", &countingJob{})
		require.Error(t, err)
	})

	t.Run("descriptor", func(t *testing.T) {
		err := s.AddJob("@monthly", &countingJob{})
		require.NoError(t, err)
		require.Equal(t, 2, s.Entries())
	})
}

func TestScheduler_RunNow(t *testing.T) {
	s := New(zap.NewNop().Sugar())

	job := &countingJob{}
	s.RunNow(job)
	require.Equal(t, 1, job.runs)

	failing := &countingJob{err: errors.New("boom")}
	s.RunNow(failing)
	require.Equal(t, 1, failing.runs)
}
