package credit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmendezv/fiado/internal/credit"
)

func validParams() credit.CreateParams {
	return credit.CreateParams{
		ClientName:     "Ana",
		ClientLastName: "Ruiz",
		IDNumber:       "123",
		Phone:          "555",
		Address:        "Calle 1",
		TotalAmount:    100000,
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    credit.CreateParams
		setupMock func(m *credit.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: validParams(),
			setupMock: func(m *credit.MockRepository) {
				m.EXPECT().ListByIDNumber(gomock.Any(), "123").Return(nil, nil)
				m.EXPECT().
					CreateCredit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *credit.Credit) error {
						c.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "MissingClientName",
			params: func() credit.CreateParams {
				p := validParams()
				p.ClientName = "  "
				return p
			}(),
			wantErr: credit.ErrMissingField,
		},
		{
			name: "MissingAddress",
			params: func() credit.CreateParams {
				p := validParams()
				p.Address = ""
				return p
			}(),
			wantErr: credit.ErrMissingField,
		},
		{
			name: "ZeroAmount",
			params: func() credit.CreateParams {
				p := validParams()
				p.TotalAmount = 0
				return p
			}(),
			wantErr: credit.ErrInvalidAmount,
		},
		{
			name:   "SameIDNumberDifferentPerson",
			params: validParams(),
			setupMock: func(m *credit.MockRepository) {
				m.EXPECT().ListByIDNumber(gomock.Any(), "123").Return([]*credit.Credit{
					{ID: uuid.New(), ClientName: "Carlos", ClientLastName: "Gomez", IDNumber: "123"},
				}, nil)
			},
			wantErr: credit.ErrDuplicateIdentity,
		},
		{
			name:   "SameIDNumberSamePerson",
			params: validParams(),
			setupMock: func(m *credit.MockRepository) {
				// Name comparison ignores case: the same client may hold
				// several credits.
				m.EXPECT().ListByIDNumber(gomock.Any(), "123").Return([]*credit.Credit{
					{ID: uuid.New(), ClientName: "ANA", ClientLastName: "ruiz", IDNumber: "123"},
				}, nil)
				m.EXPECT().CreateCredit(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "RepoError",
			params: validParams(),
			setupMock: func(m *credit.MockRepository) {
				m.EXPECT().ListByIDNumber(gomock.Any(), "123").Return(nil, nil)
				m.EXPECT().CreateCredit(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := credit.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := credit.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)

				for _, sentinel := range []error{
					credit.ErrMissingField,
					credit.ErrInvalidAmount,
					credit.ErrDuplicateIdentity,
				} {
					if errors.Is(tt.wantErr, sentinel) {
						assert.ErrorIs(t, err, sentinel)
					}
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, credit.StatusActive, got.Status)
			assert.Empty(t, got.Payments)
			assert.Equal(t, int64(100000), got.TotalAmount)
			assert.False(t, got.Date.IsZero())
		})
	}
}

func TestService_Create_SentinelErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := credit.NewMockRepository(ctrl)
	svc := credit.NewService(repo)

	p := validParams()
	p.Phone = ""

	_, err := svc.Create(context.Background(), p)
	assert.ErrorIs(t, err, credit.ErrMissingField)
	assert.Contains(t, err.Error(), "phone")

	p = validParams()
	p.TotalAmount = -5

	_, err = svc.Create(context.Background(), p)
	assert.ErrorIs(t, err, credit.ErrInvalidAmount)
}

func TestService_Update(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	existing := func() *credit.Credit {
		return &credit.Credit{
			ID:             id,
			ClientName:     "Ana",
			ClientLastName: "Ruiz",
			IDNumber:       "123",
			Phone:          "555",
			Address:        "Calle 1",
			TotalAmount:    100000,
			Date:           created,
			Status:         credit.StatusActive,
			Payments: []credit.Payment{
				{ID: uuid.New(), CreditID: id, Amount: 30000},
			},
		}
	}

	t.Run("PreservesDateStatusAndPayments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := credit.NewMockRepository(ctrl)
		repo.EXPECT().GetCredit(gomock.Any(), id).Return(existing(), nil)
		repo.EXPECT().ListByIDNumber(gomock.Any(), "123").Return([]*credit.Credit{existing()}, nil)
		repo.EXPECT().UpdateCredit(gomock.Any(), gomock.Any()).Return(nil)

		svc := credit.NewService(repo)

		params := validParams()
		params.Phone = "556"
		params.TotalAmount = 120000

		got, err := svc.Update(context.Background(), id, params)
		require.NoError(t, err)

		assert.Equal(t, "556", got.Phone)
		assert.Equal(t, int64(120000), got.TotalAmount)
		assert.Equal(t, created, got.Date)
		assert.Equal(t, credit.StatusActive, got.Status)
		assert.Len(t, got.Payments, 1)
	})

	t.Run("IdentityCheckExcludesSelf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := credit.NewMockRepository(ctrl)
		repo.EXPECT().GetCredit(gomock.Any(), id).Return(existing(), nil)
		// Only the record being edited holds this id number; renaming the
		// client must be allowed.
		repo.EXPECT().ListByIDNumber(gomock.Any(), "123").Return([]*credit.Credit{existing()}, nil)
		repo.EXPECT().UpdateCredit(gomock.Any(), gomock.Any()).Return(nil)

		svc := credit.NewService(repo)

		params := validParams()
		params.ClientName = "Anabel"

		_, err := svc.Update(context.Background(), id, params)
		assert.NoError(t, err)
	})

	t.Run("ConflictWithOtherClient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := credit.NewMockRepository(ctrl)
		repo.EXPECT().GetCredit(gomock.Any(), id).Return(existing(), nil)
		repo.EXPECT().ListByIDNumber(gomock.Any(), "123").Return([]*credit.Credit{
			existing(),
			{ID: uuid.New(), ClientName: "Carlos", ClientLastName: "Gomez", IDNumber: "123"},
		}, nil)

		svc := credit.NewService(repo)

		_, err := svc.Update(context.Background(), id, validParams())
		assert.ErrorIs(t, err, credit.ErrDuplicateIdentity)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := credit.NewMockRepository(ctrl)
		repo.EXPECT().GetCredit(gomock.Any(), id).Return(nil, credit.ErrNotFound)

		svc := credit.NewService(repo)

		_, err := svc.Update(context.Background(), id, validParams())
		assert.ErrorIs(t, err, credit.ErrNotFound)
	})
}

func TestService_RecordPayment(t *testing.T) {
	id := uuid.New()

	withBalance := func(total, paid int64) *credit.Credit {
		c := &credit.Credit{
			ID:          id,
			ClientName:  "Ana",
			TotalAmount: total,
			Status:      credit.StatusActive,
		}
		if paid > 0 {
			c.Payments = []credit.Payment{{ID: uuid.New(), CreditID: id, Amount: paid}}
		}

		return c
	}

	t.Run("PartialPaymentStaysActive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := credit.NewMockRepository(ctrl)
		repo.EXPECT().GetCredit(gomock.Any(), id).Return(withBalance(100000, 0), nil)
		repo.EXPECT().AddPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		svc := credit.NewService(repo)

		got, err := svc.RecordPayment(context.Background(), id, credit.PaymentParams{Amount: 30000})
		require.NoError(t, err)

		assert.Equal(t, credit.StatusActive, got.Status)
		assert.Equal(t, int64(70000), got.RemainingBalance())
		require.Len(t, got.Payments, 1)
		assert.Equal(t, credit.MethodCash, got.Payments[0].Method)
		assert.False(t, got.Payments[0].Date.IsZero())
	})

	t.Run("FullPaymentMarksPaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := credit.NewMockRepository(ctrl)
		repo.EXPECT().GetCredit(gomock.Any(), id).Return(withBalance(100000, 70000), nil)
		repo.EXPECT().
			AddPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *credit.Credit, _ *credit.Payment) error {
				assert.Equal(t, credit.StatusPaid, c.Status)
				return nil
			})

		svc := credit.NewService(repo)

		got, err := svc.RecordPayment(context.Background(), id, credit.PaymentParams{
			Amount: 30000,
			Method: credit.MethodTransfer,
		})
		require.NoError(t, err)

		assert.Equal(t, credit.StatusPaid, got.Status)
		assert.Equal(t, int64(0), got.RemainingBalance())
	})

	t.Run("ExceedsBalance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := credit.NewMockRepository(ctrl)
		repo.EXPECT().GetCredit(gomock.Any(), id).Return(withBalance(100000, 70000), nil)

		svc := credit.NewService(repo)

		_, err := svc.RecordPayment(context.Background(), id, credit.PaymentParams{Amount: 30001})
		assert.ErrorIs(t, err, credit.ErrExceedsBalance)
	})

	t.Run("PaymentOnSettledCredit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := credit.NewMockRepository(ctrl)
		paid := withBalance(100000, 100000)
		paid.Status = credit.StatusPaid
		repo.EXPECT().GetCredit(gomock.Any(), id).Return(paid, nil)

		svc := credit.NewService(repo)

		_, err := svc.RecordPayment(context.Background(), id, credit.PaymentParams{Amount: 1})
		assert.ErrorIs(t, err, credit.ErrExceedsBalance)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := credit.NewMockRepository(ctrl)
		svc := credit.NewService(repo)

		_, err := svc.RecordPayment(context.Background(), id, credit.PaymentParams{Amount: 0})
		assert.ErrorIs(t, err, credit.ErrInvalidAmount)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := credit.NewMockRepository(ctrl)
	repo.EXPECT().DeleteCredit(gomock.Any(), id).Return(nil)

	svc := credit.NewService(repo)
	assert.NoError(t, svc.Delete(context.Background(), id))
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	status := credit.StatusActive
	filter := credit.ListFilter{Search: "ana", Status: &status}

	repo := credit.NewMockRepository(ctrl)
	repo.EXPECT().ListCredits(gomock.Any(), filter).Return([]*credit.Credit{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}, nil)

	svc := credit.NewService(repo)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
