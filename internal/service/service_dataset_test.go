package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkarev/go-dataset-hub/internal/adapter"
	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/mock"
	"github.com/mkarev/go-dataset-hub/internal/store"
	"github.com/mkarev/go-dataset-hub/models"
)

func newTestDatasetSvc(t *testing.T, ctrl *gomock.Controller) (DatasetService, *mock.MockDatasetRepository, *mock.MockEngineAdapter) {
	t.Helper()
	mockRepo := mock.NewMockDatasetRepository(ctrl)
	mockEngine := mock.NewMockEngineAdapter(ctrl)

	return NewDatasetService(mockRepo, mockEngine, logger.Nop()), mockRepo, mockEngine
}

func TestDatasetService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	owners := []string{"team-a", "team-b"}
	stored := []models.Dataset{
		{Name: "reviews", Owner: "team-a", State: models.DatasetOpen},
		{Name: "tickets", Owner: "team-b", State: models.DatasetClosed},
	}
	mockRepo.EXPECT().List(ctx, owners).Return(stored, nil)

	datasets, err := svc.List(ctx, owners)
	require.NoError(t, err)
	assert.Equal(t, stored, datasets)
}

func TestDatasetService_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().List(ctx, []string{"team-a"}).Return([]models.Dataset{}, nil)

	datasets, err := svc.List(ctx, []string{"team-a"})
	require.NoError(t, err)
	assert.Empty(t, datasets)
}

func TestDatasetService_FindByName_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "reviews").
		Return(models.Dataset{Name: "reviews", Owner: "team-a"}, nil)

	dataset, err := svc.FindByName(ctx, "reviews", "team-a")
	require.NoError(t, err)
	assert.Equal(t, "reviews", dataset.Name)
}

func TestDatasetService_FindByName_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "missing").
		Return(models.Dataset{}, store.ErrDatasetNotFound)

	_, err := svc.FindByName(ctx, "missing", "team-a")
	assert.ErrorIs(t, err, store.ErrDatasetNotFound)
}

// An existing dataset under a foreign owner must come back as a distinct
// authorization failure, never as not-found.
func TestDatasetService_FindByName_ForeignOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "reviews").
		Return(models.Dataset{Name: "reviews", Owner: "team-b"}, nil)

	_, err := svc.FindByName(ctx, "reviews", "team-a")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.NotErrorIs(t, err, store.ErrDatasetNotFound)
}

func TestDatasetService_Update_MergesPartialData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Dataset{
		Name:     "reviews",
		Owner:    "team-a",
		State:    models.DatasetOpen,
		Tags:     map[string]string{"env": "prod", "lang": "en"},
		Metadata: map[string]string{"source": "s3"},
	}
	mockRepo.EXPECT().Get(ctx, "reviews").Return(stored, nil)
	mockRepo.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, dataset models.Dataset) (models.Dataset, error) {
			// Existing keys survive, updated keys win, untouched fields stay.
			assert.Equal(t, map[string]string{"env": "staging", "lang": "en"}, dataset.Tags)
			assert.Equal(t, map[string]string{"source": "s3"}, dataset.Metadata)
			assert.Equal(t, models.DatasetOpen, dataset.State)
			assert.Equal(t, "team-a", dataset.Owner)
			return dataset, nil
		},
	)

	update := models.DatasetUpdate{Tags: map[string]string{"env": "staging"}}
	updated, err := svc.Update(ctx, "reviews", update, "team-a")
	require.NoError(t, err)
	assert.Equal(t, "staging", updated.Tags["env"])
	assert.Equal(t, "en", updated.Tags["lang"])
}

func TestDatasetService_Update_NilFieldsLeaveRecordUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Dataset{
		Name:     "reviews",
		Owner:    "team-a",
		Tags:     map[string]string{"env": "prod"},
		Metadata: map[string]string{"source": "s3"},
	}
	mockRepo.EXPECT().Get(ctx, "reviews").Return(stored, nil)
	mockRepo.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, dataset models.Dataset) (models.Dataset, error) {
			assert.Equal(t, stored.Tags, dataset.Tags)
			assert.Equal(t, stored.Metadata, dataset.Metadata)
			return dataset, nil
		},
	)

	_, err := svc.Update(ctx, "reviews", models.DatasetUpdate{}, "team-a")
	require.NoError(t, err)
}

func TestDatasetService_Update_ForeignOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "reviews").
		Return(models.Dataset{Name: "reviews", Owner: "team-b"}, nil)

	update := models.DatasetUpdate{Tags: map[string]string{"env": "staging"}}
	_, err := svc.Update(ctx, "reviews", update, "team-a")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestDatasetService_Delete_DropsRecordAndIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockEngine := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "reviews").
		Return(models.Dataset{Name: "reviews", Owner: "team-a"}, nil)
	mockRepo.EXPECT().Remove(ctx, "reviews").Return(nil)
	mockEngine.EXPECT().DeleteIndex(ctx, "dataset.team-a.reviews").Return(nil)

	require.NoError(t, svc.Delete(ctx, "reviews", "team-a"))
}

func TestDatasetService_Delete_MissingIndexTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockEngine := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "reviews").
		Return(models.Dataset{Name: "reviews", Owner: "team-a"}, nil)
	mockRepo.EXPECT().Remove(ctx, "reviews").Return(nil)
	mockEngine.EXPECT().DeleteIndex(ctx, "dataset.team-a.reviews").
		Return(adapter.ErrIndexNotFound)

	require.NoError(t, svc.Delete(ctx, "reviews", "team-a"))
}

func TestDatasetService_Delete_SecondCallNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockEngine := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().Get(ctx, "reviews").
			Return(models.Dataset{Name: "reviews", Owner: "team-a"}, nil),
		mockRepo.EXPECT().Remove(ctx, "reviews").Return(nil),
		mockEngine.EXPECT().DeleteIndex(ctx, "dataset.team-a.reviews").Return(nil),
		mockRepo.EXPECT().Get(ctx, "reviews").
			Return(models.Dataset{}, store.ErrDatasetNotFound),
	)

	require.NoError(t, svc.Delete(ctx, "reviews", "team-a"))
	assert.ErrorIs(t, svc.Delete(ctx, "reviews", "team-a"), store.ErrDatasetNotFound)
}

func TestDatasetService_CloseDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockEngine := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "reviews").
		Return(models.Dataset{Name: "reviews", Owner: "team-a", State: models.DatasetOpen}, nil)
	mockRepo.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, dataset models.Dataset) (models.Dataset, error) {
			assert.Equal(t, models.DatasetClosed, dataset.State)
			return dataset, nil
		},
	)
	mockEngine.EXPECT().CloseIndex(ctx, "dataset.team-a.reviews").Return(nil)

	require.NoError(t, svc.CloseDataset(ctx, "reviews", "team-a"))
}

// Closing a closed dataset succeeds without touching the store or the engine.
func TestDatasetService_CloseDataset_AlreadyClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "reviews").
		Return(models.Dataset{Name: "reviews", Owner: "team-a", State: models.DatasetClosed}, nil)

	require.NoError(t, svc.CloseDataset(ctx, "reviews", "team-a"))
}

func TestDatasetService_OpenDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockEngine := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "reviews").
		Return(models.Dataset{Name: "reviews", Owner: "team-a", State: models.DatasetClosed}, nil)
	mockRepo.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, dataset models.Dataset) (models.Dataset, error) {
			assert.Equal(t, models.DatasetOpen, dataset.State)
			return dataset, nil
		},
	)
	mockEngine.EXPECT().OpenIndex(ctx, "dataset.team-a.reviews").Return(nil)

	require.NoError(t, svc.OpenDataset(ctx, "reviews", "team-a"))
}

func TestDatasetService_OpenDataset_AlreadyOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "reviews").
		Return(models.Dataset{Name: "reviews", Owner: "team-a", State: models.DatasetOpen}, nil)

	require.NoError(t, svc.OpenDataset(ctx, "reviews", "team-a"))
}

func TestDatasetService_CloseDataset_EngineFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockEngine := newTestDatasetSvc(t, ctrl)
	ctx := context.Background()

	engineErr := errors.New("engine timeout")
	mockRepo.EXPECT().Get(ctx, "reviews").
		Return(models.Dataset{Name: "reviews", Owner: "team-a", State: models.DatasetOpen}, nil)
	mockRepo.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, dataset models.Dataset) (models.Dataset, error) {
			return dataset, nil
		},
	)
	mockEngine.EXPECT().CloseIndex(ctx, "dataset.team-a.reviews").Return(engineErr)

	assert.ErrorIs(t, svc.CloseDataset(ctx, "reviews", "team-a"), engineErr)
}
