package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jvmonteiro/minipay/pkg/domain/account"
	"github.com/jvmonteiro/minipay/pkg/dto"
	transfersvc "github.com/jvmonteiro/minipay/pkg/service/transfer"
)

// TransferRequest is the payload for POST /transfers.
type TransferRequest struct {
	SenderID   string `json:"sender_id" validate:"required,uuid4"`
	ReceiverID string `json:"receiver_id" validate:"required,uuid4"`
	Amount     int64  `json:"amount" validate:"required"`
}

// TransferRoutes registers the transfer endpoints.
//
// Routes:
//   - POST /transfers : Execute a transfer between two accounts.
//   - GET  /transfers : List the ledger in creation order.
func TransferRoutes(app *fiber.App, svc *transfersvc.Service) {
	app.Post("/transfers", ExecuteTransfer(svc))
	app.Get("/transfers", ListTransfers(svc))
}

// ExecuteTransfer handles POST /transfers.
func ExecuteTransfer(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[TransferRequest](c)
		if err != nil {
			return nil
		}
		senderID, err := uuid.Parse(input.SenderID)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid sender id", err.Error())
		}
		receiverID, err := uuid.Parse(input.ReceiverID)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid receiver id", err.Error())
		}
		entry, err := svc.Execute(c.UserContext(), transfersvc.Command{
			SenderID:   senderID,
			ReceiverID: receiverID,
			Amount:     input.Amount,
		})
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Transfer rejected", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Transfer committed", toTransferDTO(entry))
	}
}

// ListTransfers handles GET /transfers.
func ListTransfers(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := svc.ListTransfers(c.UserContext())
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Ledger query failed", err.Error())
		}
		out := make([]*dto.TransferRead, 0, len(entries))
		for _, e := range entries {
			out = append(out, toTransferDTO(e))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transfers", out)
	}
}

func toTransferDTO(e *account.Transfer) *dto.TransferRead {
	return &dto.TransferRead{
		ID:         e.ID,
		SenderID:   e.SenderID,
		ReceiverID: e.ReceiverID,
		Amount:     e.Amount,
		CreatedAt:  e.CreatedAt,
	}
}
