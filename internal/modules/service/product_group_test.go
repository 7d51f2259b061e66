package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
)

func TestProductGroupService_Create(t *testing.T) {
	tests := []struct {
		name        string
		group       *model.ProductGroup
		setup       func(*MockProductGroupRepo)
		expectError error
	}{
		{
			name:  "successful creation assigns id",
			group: &model.ProductGroup{Name: "rocky"},
			setup: func(r *MockProductGroupRepo) {
				r.On("ExistsByName", mock.Anything, "rocky", (*uuid.UUID)(nil)).Return(false, nil)
				r.On("Create", mock.Anything, mock.MatchedBy(func(g *model.ProductGroup) bool {
					return g.ID != uuid.Nil && g.Name == "rocky"
				})).Return(nil)
			},
		},
		{
			name:  "duplicate name conflicts",
			group: &model.ProductGroup{Name: "rocky"},
			setup: func(r *MockProductGroupRepo) {
				r.On("ExistsByName", mock.Anything, "rocky", (*uuid.UUID)(nil)).Return(true, nil)
			},
			expectError: repo.ErrConflict,
		},
		{
			name:  "existence check failure propagates",
			group: &model.ProductGroup{Name: "rocky"},
			setup: func(r *MockProductGroupRepo) {
				r.On("ExistsByName", mock.Anything, "rocky", (*uuid.UUID)(nil)).Return(false, errors.New("db down"))
			},
			expectError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockProductGroupRepo{}
			tt.setup(mockRepo)

			svc := NewProductGroupService(mockRepo)
			err := svc.Create(context.Background(), tt.group)

			if tt.expectError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError.Error())
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, tt.group.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductGroupService_Update(t *testing.T) {
	id := uuid.New()
	newName := "rocky-linux"

	tests := []struct {
		name        string
		patch       model.ProductGroupPatch
		setup       func(*MockProductGroupRepo)
		expectError error
	}{
		{
			name:  "rename to free name",
			patch: model.ProductGroupPatch{Name: &newName},
			setup: func(r *MockProductGroupRepo) {
				r.On("ExistsByName", mock.Anything, newName, &id).Return(false, nil)
				r.On("Update", mock.Anything, id, mock.Anything).
					Return(&model.ProductGroup{ID: id, Name: newName}, nil)
			},
		},
		{
			name:  "rename to taken name conflicts",
			patch: model.ProductGroupPatch{Name: &newName},
			setup: func(r *MockProductGroupRepo) {
				r.On("ExistsByName", mock.Anything, newName, &id).Return(true, nil)
			},
			expectError: repo.ErrConflict,
		},
		{
			name:  "description-only patch skips the name check",
			patch: model.ProductGroupPatch{Description: &newName},
			setup: func(r *MockProductGroupRepo) {
				r.On("Update", mock.Anything, id, mock.Anything).
					Return(&model.ProductGroup{ID: id, Name: "rocky"}, nil)
			},
		},
		{
			name:  "missing row",
			patch: model.ProductGroupPatch{Description: &newName},
			setup: func(r *MockProductGroupRepo) {
				r.On("Update", mock.Anything, id, mock.Anything).Return(nil, repo.ErrNotFound)
			},
			expectError: repo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockProductGroupRepo{}
			tt.setup(mockRepo)

			svc := NewProductGroupService(mockRepo)
			group, err := svc.Update(context.Background(), id, tt.patch)

			if tt.expectError != nil {
				assert.Error(t, err)
				assert.Nil(t, group)
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, group)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
