package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yifan996/Itinerary/internal/models/request_models"
	"github.com/yifan996/Itinerary/pkg/utils"
)

func TestSaveProfile(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo, zap.NewNop())

	err := svc.SaveProfile(context.Background(), request_models.SaveProfileRequest{
		FormData:    request_models.ProfileForm{Days: 3, EAnxious: 0.2, ECurious: 0.8, ETired: 0.1},
		Personality: request_models.Personality{B5: []float64{0.7, 0.5, 0.6, 0.8, 0.3}, P: []float64{0.4, 0.6, 0.7}},
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	p := repo.created[0]
	assert.Equal(t, 3, p.Days)
	require.NotNil(t, p.ProfileVector)
	assert.Len(t, p.ProfileVector.Slice(), 8)
}

func TestSaveProfile_OddArityHasNoVector(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo, zap.NewNop())

	err := svc.SaveProfile(context.Background(), request_models.SaveProfileRequest{
		Personality: request_models.Personality{B5: []float64{0.7}},
	})
	require.NoError(t, err)
	assert.Nil(t, repo.created[0].ProfileVector)
}

func TestSaveProfile_StoreFailure(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{createErr: errors.New("down")}, zap.NewNop())

	err := svc.SaveProfile(context.Background(), request_models.SaveProfileRequest{})
	require.ErrorIs(t, err, utils.ErrDatabaseError)
}
