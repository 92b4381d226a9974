package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/audioscribe/audioscribe/internal/domain/model"
	apperrors "github.com/audioscribe/audioscribe/internal/errors"
	"github.com/audioscribe/audioscribe/internal/mocks"
)

func TestStatusService_GetStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := mocks.NewMockJobRepository(ctrl)
	jobs.EXPECT().
		GetByID(gomock.Any(), "job-1").
		Return(&model.Job{ID: "job-1", OwnerID: 42, Status: model.JobStatusProcessing}, nil)

	svc := NewStatusService(StatusServiceOptions{Jobs: jobs})

	job, err := svc.GetStatus(context.Background(), "job-1", 42)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusProcessing, job.Status)
}

func TestStatusService_GetStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := mocks.NewMockJobRepository(ctrl)
	jobs.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, apperrors.NotFound("resource not found"))

	svc := NewStatusService(StatusServiceOptions{Jobs: jobs})

	_, err := svc.GetStatus(context.Background(), "missing", 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStatusService_GetStatus_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := mocks.NewMockJobRepository(ctrl)
	jobs.EXPECT().
		GetByID(gomock.Any(), "job-1").
		Return(&model.Job{ID: "job-1", OwnerID: 7}, nil)

	svc := NewStatusService(StatusServiceOptions{Jobs: jobs})

	_, err := svc.GetStatus(context.Background(), "job-1", 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestStatusService_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := []*model.Job{
		{ID: "job-2", OwnerID: 42, Status: model.JobStatusPending},
		{ID: "job-1", OwnerID: 42, Status: model.JobStatusSuccess},
	}
	jobs := mocks.NewMockJobRepository(ctrl)
	jobs.EXPECT().ListForOwner(gomock.Any(), int64(42)).Return(want, nil)

	svc := NewStatusService(StatusServiceOptions{Jobs: jobs})

	got, err := svc.ListMine(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStatusService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := mocks.NewMockJobRepository(ctrl)
	jobs.EXPECT().
		GetByID(gomock.Any(), "job-1").
		Return(&model.Job{ID: "job-1", OwnerID: 42}, nil)
	jobs.EXPECT().Delete(gomock.Any(), "job-1", int64(42)).Return(true, nil)

	svc := NewStatusService(StatusServiceOptions{Jobs: jobs})

	require.NoError(t, svc.Delete(context.Background(), "job-1", 42))
}

func TestStatusService_Delete_UnknownIDIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := mocks.NewMockJobRepository(ctrl)
	jobs.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, apperrors.NotFound("resource not found"))

	svc := NewStatusService(StatusServiceOptions{Jobs: jobs})

	require.NoError(t, svc.Delete(context.Background(), "missing", 42))
}

func TestStatusService_Delete_RaceWithConcurrentDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := mocks.NewMockJobRepository(ctrl)
	jobs.EXPECT().
		GetByID(gomock.Any(), "job-1").
		Return(&model.Job{ID: "job-1", OwnerID: 42}, nil)
	// Row vanished between load and delete; still a success
	jobs.EXPECT().Delete(gomock.Any(), "job-1", int64(42)).Return(false, nil)

	svc := NewStatusService(StatusServiceOptions{Jobs: jobs})

	require.NoError(t, svc.Delete(context.Background(), "job-1", 42))
}

func TestStatusService_Delete_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := mocks.NewMockJobRepository(ctrl)
	jobs.EXPECT().
		GetByID(gomock.Any(), "job-1").
		Return(&model.Job{ID: "job-1", OwnerID: 7}, nil)

	svc := NewStatusService(StatusServiceOptions{Jobs: jobs})

	err := svc.Delete(context.Background(), "job-1", 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestStatusService_HealthProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockPublisher(ctrl)
	queue.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *model.WorkMessage) error {
			assert.Equal(t, model.MessageKindProbe, msg.Kind)
			assert.NotEmpty(t, msg.ProbeID)
			assert.Empty(t, msg.JobID)
			return nil
		})

	svc := NewStatusService(StatusServiceOptions{Queue: queue})

	probeID, err := svc.HealthProbe(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, probeID)
}

func TestStatusService_HealthProbe_PublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockPublisher(ctrl)
	queue.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	svc := NewStatusService(StatusServiceOptions{Queue: queue})

	_, err := svc.HealthProbe(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}

func TestStatusService_ProbeStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probes := mocks.NewMockProbeStore(ctrl)
	probes.EXPECT().ProbeSeen(gomock.Any(), "probe-1").Return(true, nil)

	svc := NewStatusService(StatusServiceOptions{Probes: probes})

	seen, err := svc.ProbeStatus(context.Background(), "probe-1")
	require.NoError(t, err)
	assert.True(t, seen)
}
