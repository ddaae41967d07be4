package worker_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pylintd/internal/analyzer"
	mockanalyzer "pylintd/internal/analyzer/mock"
	"pylintd/internal/worker"
	"pylintd/pkg/logger"
	"pylintd/pkg/serrors"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	os.Exit(m.Run())
}

func makeJob(id int64, attempt int, hash string) *river.Job[analyzer.JobArgs] {
	return &river.Job[analyzer.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: attempt},
		Args:   analyzer.JobArgs{SourceHash: hash},
	}
}

func TestAnalysisWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockanalyzer.NewMockAnalyzer(ctrl)
	w := worker.NewAnalysisWorker(mock, time.Second, 0)

	mock.EXPECT().Analyze(gomock.Any(), "abc").Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, 1, "abc")))
}

func TestAnalysisWorker_Work_ConflictCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockanalyzer.NewMockAnalyzer(ctrl)
	w := worker.NewAnalysisWorker(mock, time.Second, 0)

	mock.EXPECT().Analyze(gomock.Any(), "gone").Return(serrors.With(serrors.ErrConflict, "no pending analyses"))

	err := w.Work(context.Background(), makeJob(2, 1, "gone"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestAnalysisWorker_Work_TimeoutSnoozes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		attempt int
		want    time.Duration
	}{
		{name: "timeout", err: serrors.With(serrors.ErrTimeout, "pylint timed out"), attempt: 1, want: time.Second},
		{name: "unavailable", err: serrors.With(serrors.ErrUnavailable, "no pylint"), attempt: 3, want: 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := mockanalyzer.NewMockAnalyzer(ctrl)
			w := worker.NewAnalysisWorker(mock, time.Second, 0)

			mock.EXPECT().Analyze(gomock.Any(), "slow").Return(tt.err)

			err := w.Work(context.Background(), makeJob(3, tt.attempt, "slow"))
			var snoozeErr *river.JobSnoozeError
			require.ErrorAs(t, err, &snoozeErr)
			require.Equal(t, tt.want, snoozeErr.Duration)
		})
	}
}

func TestAnalysisWorker_Work_OtherErrorsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockanalyzer.NewMockAnalyzer(ctrl)
	w := worker.NewAnalysisWorker(mock, time.Second, 0)

	boom := errors.New("db down")
	mock.EXPECT().Analyze(gomock.Any(), "x").Return(boom)

	err := w.Work(context.Background(), makeJob(4, 1, "x"))
	require.ErrorIs(t, err, boom)

	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
	var snoozeErr *river.JobSnoozeError
	require.False(t, errors.As(err, &snoozeErr))
}

func TestAnalysisWorker_Timeout(t *testing.T) {
	w := worker.NewAnalysisWorker(nil, time.Second, 2*time.Minute)
	require.Equal(t, 2*time.Minute, w.Timeout(makeJob(5, 1, "x")))
}

func TestWorkers(t *testing.T) {
	require.NotNil(t, worker.Workers(nil, worker.Options{}))
}
