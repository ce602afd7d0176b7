package repository

import (
	"context"

	"github.com/jvmonteiro/minipay/pkg/domain/account"
	"github.com/jvmonteiro/minipay/pkg/repository"
	"gorm.io/gorm"
)

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a ledger repository using the provided *gorm.DB.
func NewTransferRepository(db *gorm.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

// Create implements repository.TransferRepository. The database sequence
// assigns the monotonic id, which is written back into the given entry.
func (r *transferRepository) Create(ctx context.Context, transfer *account.Transfer) error {
	m := Transfer{
		SenderID:   transfer.SenderID,
		ReceiverID: transfer.ReceiverID,
		Amount:     transfer.Amount,
		CreatedAt:  transfer.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	transfer.ID = m.ID
	transfer.CreatedAt = m.CreatedAt
	return nil
}

// List implements repository.TransferRepository.
func (r *transferRepository) List(ctx context.Context) ([]*account.Transfer, error) {
	var rows []Transfer
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*account.Transfer, 0, len(rows))
	for i := range rows {
		m := &rows[i]
		out = append(out, account.NewTransferFromData(m.ID, m.SenderID, m.ReceiverID, m.Amount, m.CreatedAt))
	}
	return out, nil
}
