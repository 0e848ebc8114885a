// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package service

import (
	"context"
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/mkarev/go-dataset-hub/internal/adapter"
	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/store"
	"github.com/mkarev/go-dataset-hub/models"
)

type datasetService struct {
	logger            *logger.Logger
	datasetRepository store.DatasetRepository
	engine            adapter.EngineAdapter
}

// NewDatasetService wires dataset lifecycle management on top of the dataset
// repository and the search engine adapter.
func NewDatasetService(datasetRepository store.DatasetRepository, engine adapter.EngineAdapter, log *logger.Logger) DatasetService {
	return &datasetService{
		logger:            log,
		datasetRepository: datasetRepository,
		engine:            engine,
	}
}

func (s *datasetService) List(ctx context.Context, owners []string) ([]models.Dataset, error) {
	datasets, err := s.datasetRepository.List(ctx, owners)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	return datasets, nil
}

// FindByName resolves existence before ownership: a missing name reports
// not-found, while a name held by a foreign owner reports not-authorized.
// The two outcomes must stay distinct for the HTTP layer to map them to
// 404 and 403 respectively.
func (s *datasetService) FindByName(ctx context.Context, name, owner string) (models.Dataset, error) {
	dataset, err := s.datasetRepository.Get(ctx, name)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("find dataset %q: %w", name, err)
	}

	if dataset.Owner != owner {
		s.logger.Debug().
			Str("dataset", name).
			Str("owner", dataset.Owner).
			Str("requested_by", owner).
			Msg("dataset owned outside caller scope")
		return models.Dataset{}, ErrNotAuthorized
	}

	return dataset, nil
}

func (s *datasetService) Update(ctx context.Context, name string, data models.DatasetUpdate, owner string) (models.Dataset, error) {
	dataset, err := s.FindByName(ctx, name, owner)
	if err != nil {
		return models.Dataset{}, err
	}

	patch := models.Dataset{
		Tags:     data.Tags,
		Metadata: data.Metadata,
	}
	if err = mergo.Merge(&dataset, patch, mergo.WithOverride); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrMergingDatasetUpdate, err)
	}

	updated, err := s.datasetRepository.Put(ctx, dataset)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("update dataset %q: %w", name, err)
	}

	return updated, nil
}

func (s *datasetService) Delete(ctx context.Context, name, owner string) error {
	dataset, err := s.FindByName(ctx, name, owner)
	if err != nil {
		return err
	}

	if err = s.datasetRepository.Remove(ctx, dataset.Name); err != nil {
		return fmt.Errorf("delete dataset %q: %w", name, err)
	}

	// The record is gone either way; a missing index is not a failure.
	if err = s.engine.DeleteIndex(ctx, datasetIndexName(dataset)); err != nil && !errors.Is(err, adapter.ErrIndexNotFound) {
		s.logger.Error().Err(err).Str("dataset", name).Msg("dropping dataset index")
		return fmt.Errorf("delete dataset %q index: %w", name, err)
	}

	return nil
}

func (s *datasetService) CloseDataset(ctx context.Context, name, owner string) error {
	dataset, err := s.FindByName(ctx, name, owner)
	if err != nil {
		return err
	}

	if dataset.State == models.DatasetClosed {
		return nil
	}

	dataset.State = models.DatasetClosed
	if _, err = s.datasetRepository.Put(ctx, dataset); err != nil {
		return fmt.Errorf("close dataset %q: %w", name, err)
	}

	if err = s.engine.CloseIndex(ctx, datasetIndexName(dataset)); err != nil && !errors.Is(err, adapter.ErrIndexNotFound) {
		return fmt.Errorf("close dataset %q index: %w", name, err)
	}

	return nil
}

func (s *datasetService) OpenDataset(ctx context.Context, name, owner string) error {
	dataset, err := s.FindByName(ctx, name, owner)
	if err != nil {
		return err
	}

	if dataset.State == models.DatasetOpen {
		return nil
	}

	dataset.State = models.DatasetOpen
	if _, err = s.datasetRepository.Put(ctx, dataset); err != nil {
		return fmt.Errorf("open dataset %q: %w", name, err)
	}

	if err = s.engine.OpenIndex(ctx, datasetIndexName(dataset)); err != nil && !errors.Is(err, adapter.ErrIndexNotFound) {
		return fmt.Errorf("open dataset %q index: %w", name, err)
	}

	return nil
}

// datasetIndexName derives the backing index identifier. Owner is part of
// the key so renamed-but-colliding datasets in other groups never share
// backend resources.
func datasetIndexName(dataset models.Dataset) string {
	return fmt.Sprintf("dataset.%s.%s", dataset.Owner, dataset.Name)
}
