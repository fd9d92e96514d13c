package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ghayaruae/crm-server/internal/clock"
	"github.com/ghayaruae/crm-server/internal/model"
	repoMocks "github.com/ghayaruae/crm-server/internal/repository/mocks"
)

type masterMocks struct {
	targets      *repoMocks.MockTargetRepository
	followups    *repoMocks.MockFollowupRepository
	partRequests *repoMocks.MockPartRequestRepository
	salesmen     *repoMocks.MockSalesmanRepository
}

func newMasterService() (MasterService, masterMocks) {
	m := masterMocks{
		targets:      new(repoMocks.MockTargetRepository),
		followups:    new(repoMocks.MockFollowupRepository),
		partRequests: new(repoMocks.MockPartRequestRepository),
		salesmen:     new(repoMocks.MockSalesmanRepository),
	}
	svc := NewMasterService(MasterRepos{
		Targets:      m.targets,
		Followups:    m.followups,
		PartRequests: m.partRequests,
		Salesmen:     m.salesmen,
	}, clock.Fixed(fixedNow), zerolog.Nop())
	return svc, m
}

func TestMasterService_SaveTarget(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps caller and clock", func(t *testing.T) {
		svc, m := newMasterService()
		m.targets.On("Save", ctx, mock.MatchedBy(func(tg *model.Target) bool {
			return tg.TargetID == 0 &&
				tg.SalesmanID == 7 &&
				tg.From.String() == "2025-06-01" &&
				tg.To.String() == "2025-06-30" &&
				tg.Amount == 5000 &&
				*tg.AssignedBy == 3 &&
				tg.AssignedTime.Equal(fixedNow)
		})).Return(int64(12), nil).Once()

		id, err := svc.SaveTarget(ctx, 3, model.TargetInput{
			SalesmanID: 7,
			From:       "2025-06-01",
			To:         "2025-06-30",
			Amount:     5000,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
		m.targets.AssertExpectations(t)
	})

	t.Run("update of a missing target", func(t *testing.T) {
		svc, m := newMasterService()
		id := int64(99)
		m.targets.On("Save", ctx, mock.Anything).Return(int64(0), sql.ErrNoRows).Once()

		_, err := svc.SaveTarget(ctx, 3, model.TargetInput{TargetID: &id, SalesmanID: 7, From: "2025-06-01", To: "2025-06-30"})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("window ends before it starts", func(t *testing.T) {
		svc, m := newMasterService()

		_, err := svc.SaveTarget(ctx, 3, model.TargetInput{SalesmanID: 7, From: "2025-06-30", To: "2025-06-01"})

		var ie *InputError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "business_salesman_target_to", ie.Field)
		m.targets.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _ := newMasterService()

		_, err := svc.SaveTarget(ctx, 3, model.TargetInput{SalesmanID: 7, From: "01/06/2025", To: "2025-06-30"})

		var ie *InputError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "business_salesman_target_from", ie.Field)
	})
}

func TestMasterService_Deletes(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")

	tests := []struct {
		name     string
		setup    func(m masterMocks)
		call     func(svc MasterService) error
		expected error
	}{
		{
			name:  "target deleted",
			setup: func(m masterMocks) { m.targets.On("Delete", ctx, int64(5)).Return(int64(1), nil).Once() },
			call:  func(svc MasterService) error { return svc.DeleteTarget(ctx, 5) },
		},
		{
			name:     "missing target",
			setup:    func(m masterMocks) { m.targets.On("Delete", ctx, int64(5)).Return(int64(0), nil).Once() },
			call:     func(svc MasterService) error { return svc.DeleteTarget(ctx, 5) },
			expected: ErrNotFound,
		},
		{
			name:     "missing followup",
			setup:    func(m masterMocks) { m.followups.On("Delete", ctx, int64(8)).Return(int64(0), nil).Once() },
			call:     func(svc MasterService) error { return svc.DeleteFollowup(ctx, 8) },
			expected: ErrNotFound,
		},
		{
			name:     "part inquiry store failure",
			setup:    func(m masterMocks) { m.partRequests.On("Delete", ctx, int64(2)).Return(int64(0), boom).Once() },
			call:     func(svc MasterService) error { return svc.DeletePartRequest(ctx, 2) },
			expected: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newMasterService()
			tt.setup(m)

			err := tt.call(svc)

			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestMasterService_SaveFollowup(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown type rejected", func(t *testing.T) {
		svc, m := newMasterService()

		_, err := svc.SaveFollowup(ctx, model.FollowupInput{SalesmanID: 7, BusinessID: 3, Type: "Fax", Date: "2025-06-10"})

		var ie *InputError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "business_salesman_followup_type", ie.Field)
		m.followups.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("saved", func(t *testing.T) {
		svc, m := newMasterService()
		m.followups.On("Save", ctx, mock.MatchedBy(func(f *model.Followup) bool {
			return f.Type == "Call" && f.Date.String() == "2025-06-10" && f.BusinessID == 3
		})).Return(int64(41), nil).Once()

		id, err := svc.SaveFollowup(ctx, model.FollowupInput{SalesmanID: 7, BusinessID: 3, Type: "Call", Date: "2025-06-10"})

		require.NoError(t, err)
		assert.Equal(t, int64(41), id)
	})
}

func TestMasterService_SavePartRequest(t *testing.T) {
	ctx := context.Background()
	svc, m := newMasterService()
	m.partRequests.On("Save", ctx, mock.MatchedBy(func(pr *model.PartRequest) bool {
		return pr.RequestID == 0 &&
			*pr.SalesmanID == 7 &&
			pr.Status == 0 &&
			pr.StoreID == 0 &&
			pr.RequestDate.Equal(fixedNow) &&
			pr.PartName == "Brake pad" &&
			pr.Qty == 4
	})).Return(int64(15), nil).Once()

	id, err := svc.SavePartRequest(ctx, 7, model.PartRequestInput{PartName: "Brake pad", Qty: 4})

	require.NoError(t, err)
	assert.Equal(t, int64(15), id)
	m.partRequests.AssertExpectations(t)
}

func TestMasterService_GetTargetNotFound(t *testing.T) {
	ctx := context.Background()
	svc, m := newMasterService()
	m.targets.On("Get", ctx, int64(404)).Return(nil, sql.ErrNoRows).Once()

	got, err := svc.GetTarget(ctx, 404)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "target 404")
}
