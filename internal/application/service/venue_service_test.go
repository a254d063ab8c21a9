package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/pkg/apperror"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

type fakeVenueRepo struct {
	byID map[uuid.UUID]*entity.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{byID: make(map[uuid.UUID]*entity.Venue)}
}

func (r *fakeVenueRepo) Create(_ context.Context, venue *entity.Venue) error {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	r.byID[venue.ID] = venue
	return nil
}

func (r *fakeVenueRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Venue, error) {
	return r.byID[id], nil
}

func (r *fakeVenueRepo) GetWithSpaces(_ context.Context, id uuid.UUID) (*entity.Venue, error) {
	return r.byID[id], nil
}

func (r *fakeVenueRepo) Update(_ context.Context, venue *entity.Venue) error {
	r.byID[venue.ID] = venue
	return nil
}

func (r *fakeVenueRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeVenueRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string, activeOnly bool) ([]entity.Venue, int64, error) {
	var out []entity.Venue
	for _, v := range r.byID {
		if activeOnly && !v.Active {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

type fakeVenueSpaceRepo struct {
	byID map[uuid.UUID]*entity.VenueSpace
}

func newFakeVenueSpaceRepo() *fakeVenueSpaceRepo {
	return &fakeVenueSpaceRepo{byID: make(map[uuid.UUID]*entity.VenueSpace)}
}

func (r *fakeVenueSpaceRepo) Create(_ context.Context, space *entity.VenueSpace) error {
	if space.ID == uuid.Nil {
		space.ID = uuid.New()
	}
	r.byID[space.ID] = space
	return nil
}

func (r *fakeVenueSpaceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.VenueSpace, error) {
	return r.byID[id], nil
}

func (r *fakeVenueSpaceRepo) Update(_ context.Context, space *entity.VenueSpace) error {
	r.byID[space.ID] = space
	return nil
}

func (r *fakeVenueSpaceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeVenueSpaceRepo) ListByVenue(_ context.Context, venueID uuid.UUID) ([]entity.VenueSpace, error) {
	var out []entity.VenueSpace
	for _, s := range r.byID {
		if s.VenueID == venueID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func newVenueService() (*VenueService, *fakeVenueRepo, *fakeVenueSpaceRepo) {
	venues := newFakeVenueRepo()
	spaces := newFakeVenueSpaceRepo()
	return NewVenueService(venues, spaces), venues, spaces
}

func TestCreateVenueSpaceRequiresVenue(t *testing.T) {
	svc, _, _ := newVenueService()

	_, err := svc.CreateVenueSpace(context.Background(), &CreateVenueSpaceInput{
		VenueID: uuid.New(),
		Name:    "Orphan Hall",
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestVenueSpaceSessionRates(t *testing.T) {
	svc, _, _ := newVenueService()

	venue, err := svc.CreateVenue(context.Background(), &CreateVenueInput{
		Name:   "Riverside Resort",
		Active: true,
	})
	require.NoError(t, err)

	space, err := svc.CreateVenueSpace(context.Background(), &CreateVenueSpaceInput{
		VenueID:     venue.ID,
		Name:        "Grand Lawn",
		Capacity:    500,
		MorningRate: 40000,
		EveningRate: 50000,
		FullDayRate: 80000,
	})
	require.NoError(t, err)

	assert.Equal(t, 40000.0, space.SessionRate(enum.SessionMorning))
	assert.Equal(t, 50000.0, space.SessionRate(enum.SessionEvening))
	assert.Equal(t, 80000.0, space.SessionRate(enum.SessionFullDay))
	assert.Zero(t, space.SessionRate("midnight"), "unknown sessions carry no rate")
}

func TestUpdateVenueSpaceNotFound(t *testing.T) {
	svc, _, _ := newVenueService()

	_, err := svc.UpdateVenueSpace(context.Background(), &UpdateVenueSpaceInput{
		ID:   uuid.New(),
		Name: "Renamed",
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListVenueSpacesScopedToVenue(t *testing.T) {
	svc, _, _ := newVenueService()

	first, err := svc.CreateVenue(context.Background(), &CreateVenueInput{Name: "First", Active: true})
	require.NoError(t, err)
	second, err := svc.CreateVenue(context.Background(), &CreateVenueInput{Name: "Second", Active: true})
	require.NoError(t, err)

	_, err = svc.CreateVenueSpace(context.Background(), &CreateVenueSpaceInput{VenueID: first.ID, Name: "Lawn"})
	require.NoError(t, err)
	_, err = svc.CreateVenueSpace(context.Background(), &CreateVenueSpaceInput{VenueID: second.ID, Name: "Hall"})
	require.NoError(t, err)

	spaces, err := svc.ListVenueSpaces(context.Background(), first.ID)
	require.NoError(t, err)
	require.Len(t, spaces, 1)
	assert.Equal(t, "Lawn", spaces[0].Name)
}
