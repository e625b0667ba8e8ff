package credit_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmendezv/fiado/internal/credit"
)

func TestSummarize(t *testing.T) {
	ana1 := &credit.Credit{
		ID:             uuid.New(),
		ClientName:     "Ana",
		ClientLastName: "Ruiz",
		IDNumber:       "123",
		Phone:          "555",
		TotalAmount:    100000,
		Status:         credit.StatusActive,
		Payments: []credit.Payment{
			{ID: uuid.New(), Amount: 30000},
		},
	}
	ana2 := &credit.Credit{
		ID:             uuid.New(),
		ClientName:     "ANA",
		ClientLastName: "ruiz",
		IDNumber:       "123",
		Phone:          "555",
		TotalAmount:    50000,
		Status:         credit.StatusActive,
	}
	carlos := &credit.Credit{
		ID:             uuid.New(),
		ClientName:     "Carlos",
		ClientLastName: "Gomez",
		IDNumber:       "456",
		Phone:          "556",
		TotalAmount:    20000,
		Status:         credit.StatusPaid,
		Payments: []credit.Payment{
			{ID: uuid.New(), Amount: 20000},
		},
	}

	summaries := credit.Summarize([]*credit.Credit{ana1, carlos, ana2})

	require.Len(t, summaries, 2)

	// Groups keep the order in which each client first appears.
	ana := summaries[0]
	assert.Equal(t, "Ana", ana.ClientName)
	assert.Equal(t, "Ruiz", ana.ClientLastName)
	assert.Equal(t, "123", ana.IDNumber)
	assert.Equal(t, 2, ana.Credits)
	assert.Equal(t, 2, ana.ActiveCredits)
	assert.Equal(t, int64(150000), ana.TotalCredit)
	assert.Equal(t, int64(30000), ana.TotalPaid)
	assert.Equal(t, int64(120000), ana.RemainingBalance())

	got := summaries[1]
	assert.Equal(t, "Carlos", got.ClientName)
	assert.Equal(t, 1, got.Credits)
	assert.Equal(t, 0, got.ActiveCredits)
	assert.Equal(t, int64(0), got.RemainingBalance())
}

func TestSummarize_OverdueCountsAsActive(t *testing.T) {
	overdue := &credit.Credit{
		ID:             uuid.New(),
		ClientName:     "Ana",
		ClientLastName: "Ruiz",
		IDNumber:       "123",
		TotalAmount:    40000,
		Status:         credit.StatusOverdue,
	}
	active := &credit.Credit{
		ID:             uuid.New(),
		ClientName:     "Ana",
		ClientLastName: "Ruiz",
		IDNumber:       "123",
		TotalAmount:    10000,
		Status:         credit.StatusActive,
	}
	paid := &credit.Credit{
		ID:             uuid.New(),
		ClientName:     "Ana",
		ClientLastName: "Ruiz",
		IDNumber:       "123",
		TotalAmount:    5000,
		Status:         credit.StatusPaid,
		Payments: []credit.Payment{
			{ID: uuid.New(), Amount: 5000},
		},
	}

	summaries := credit.Summarize([]*credit.Credit{overdue, active, paid})

	require.Len(t, summaries, 1)
	assert.Equal(t, 3, summaries[0].Credits)
	// Active means not paid, so overdue credits count too.
	assert.Equal(t, 2, summaries[0].ActiveCredits)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, credit.Summarize(nil))
}

func TestSummarize_DistinguishesSameNameDifferentID(t *testing.T) {
	a := &credit.Credit{ClientName: "Ana", ClientLastName: "Ruiz", IDNumber: "123", TotalAmount: 1000}
	b := &credit.Credit{ClientName: "Ana", ClientLastName: "Ruiz", IDNumber: "789", TotalAmount: 2000}

	summaries := credit.Summarize([]*credit.Credit{a, b})
	assert.Len(t, summaries, 2)
}
