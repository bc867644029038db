package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"weddinghub/internal/model"
	"weddinghub/internal/repository"
)

// fakeGuestRepo matches names the way the SQL lookup does: trimmed
// input against lowercased stored names, invited rows only.
type fakeGuestRepo struct {
	guests []*model.Guest
	err    error
}

func (f *fakeGuestRepo) FindInvitedByName(_ context.Context, name string) (*model.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, g := range f.guests {
		if g.Invited && strings.EqualFold(g.GuestName, name) {
			return g, nil
		}
	}
	return nil, nil
}

type fakeRSVPRepo struct {
	latest  *model.RSVP
	created []*model.RSVP
	updated []*model.RSVP
	err     error
}

func (f *fakeRSVPRepo) FindLatestByName(_ context.Context, name string) (*model.RSVP, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.latest != nil && strings.EqualFold(f.latest.GuestName, name) {
		return f.latest, nil
	}
	return nil, nil
}

func (f *fakeRSVPRepo) Create(_ context.Context, rsvp *model.RSVP) error {
	if f.err != nil {
		return f.err
	}
	rsvp.ID = len(f.created) + 1
	f.created = append(f.created, rsvp)
	return nil
}

// Update mirrors the SQL contract: the row must exist under the same
// case-insensitive name, otherwise nothing is rewritten.
func (f *fakeRSVPRepo) Update(_ context.Context, rsvp *model.RSVP) error {
	if f.err != nil {
		return f.err
	}
	if f.latest == nil || f.latest.ID != rsvp.ID || !strings.EqualFold(f.latest.GuestName, rsvp.GuestName) {
		return repository.ErrNotFound
	}
	f.updated = append(f.updated, rsvp)
	return nil
}

func TestVerifyMatchesCaseInsensitively(t *testing.T) {
	guests := &fakeGuestRepo{guests: []*model.Guest{
		{ID: 7, GuestName: "Jane Doe", PartySize: 2, Email: "jane@example.com", PlusOneName: "John", Invited: true},
	}}
	svc := NewVerificationService(guests, &fakeRSVPRepo{}, zap.NewNop())

	for _, name := range []string{"Jane Doe", "jane doe", "  JANE DOE  "} {
		result, err := svc.Verify(context.Background(), name)
		require.NoError(t, err)
		assert.True(t, result.Verified, "name %q should verify", name)
		require.NotNil(t, result.Guest)
		assert.Equal(t, "Jane Doe", result.Guest.Name)
		assert.Equal(t, 2, result.Guest.PartySize)
		assert.Nil(t, result.ExistingRSVP)
	}
}

func TestVerifyUnknownName(t *testing.T) {
	svc := NewVerificationService(&fakeGuestRepo{}, &fakeRSVPRepo{}, zap.NewNop())

	result, err := svc.Verify(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.Equal(t, NotOnListMessage, result.Message)
	assert.Nil(t, result.Guest)
}

func TestVerifyUninvitedGuestStaysInvisible(t *testing.T) {
	guests := &fakeGuestRepo{guests: []*model.Guest{
		{ID: 3, GuestName: "Jane Doe", PartySize: 2, Invited: false},
	}}
	svc := NewVerificationService(guests, &fakeRSVPRepo{}, zap.NewNop())

	result, err := svc.Verify(context.Background(), "Jane Doe")
	require.NoError(t, err)
	assert.False(t, result.Verified)
}

func TestVerifyReturnsExistingRSVP(t *testing.T) {
	guests := &fakeGuestRepo{guests: []*model.Guest{
		{ID: 7, GuestName: "Jane Doe", PartySize: 2, Invited: true},
	}}
	rsvps := &fakeRSVPRepo{latest: &model.RSVP{
		ID:                  42,
		GuestName:           "jane doe",
		Attending:           true,
		NumberOfGuests:      2,
		Email:               "jane@example.com",
		DietaryRestrictions: "vegetarian",
	}}
	svc := NewVerificationService(guests, rsvps, zap.NewNop())

	result, err := svc.Verify(context.Background(), "Jane Doe")
	require.NoError(t, err)
	assert.True(t, result.Verified)
	require.NotNil(t, result.ExistingRSVP)
	assert.Equal(t, 42, result.ExistingRSVP.ID)
	assert.Equal(t, 2, result.ExistingRSVP.GuestCount)
	assert.Equal(t, "vegetarian", result.ExistingRSVP.DietaryRestrictions)
}

func TestVerifyPropagatesStorageErrors(t *testing.T) {
	guests := &fakeGuestRepo{err: errors.New("db down")}
	svc := NewVerificationService(guests, &fakeRSVPRepo{}, zap.NewNop())

	_, err := svc.Verify(context.Background(), "Jane Doe")
	assert.Error(t, err)
}
