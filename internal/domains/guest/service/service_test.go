package service_test

import (
	"context"
	"errors"
	"hoteldash/config"
	"hoteldash/infras/otel/mocks"
	guestMocks "hoteldash/internal/domains/guest/mocks"
	"hoteldash/internal/domains/guest/model"
	"hoteldash/internal/domains/guest/model/dto"
	"hoteldash/internal/domains/guest/service"
	cacheMocks "hoteldash/shared/cache/mocks"
	"hoteldash/shared/constant"
	gDto "hoteldash/shared/dto"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Guest, *guestMocks.MockGuest) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel()), mockRepo
}

func TestGuestService_Create(t *testing.T) {
	req := dto.CreateGuestRequest{
		FirstName: "Mette",
		LastName:  "Hansen",
		Phone:     "+4512345678",
		Email:     "mette@example.com",
		Address:   "Nørregade 1",
	}

	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest)
		wantErr   error
		wantID    int64
	}{
		{
			name: "success",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(11), nil)
			},
			wantID: 11,
		},
		{
			name: "email already registered",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: model.ErrEmailDuplicate,
		},
		{
			name: "email registered concurrently",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErr: model.ErrEmailDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, "active", res.Status)
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: 3, FirstName: "Lars"}, nil)

		res, err := svc.Get(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, "Lars", res.FirstName)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		_, err := svc.Get(context.Background(), 3)

		assert.ErrorIs(t, err, model.ErrGuestNotFound)
	})
}

func TestGuestService_GetAll(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Guest{{ID: 1}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Guests, 1)
}
