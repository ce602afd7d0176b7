// Account and account type endpoints. These are thin adapters: all business
// rules live in the services, the handlers only translate payloads and map
// error kinds to status codes.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	accountsvc "github.com/jvmonteiro/minipay/pkg/service/account"
)

// CreateAccountTypeRequest is the payload for POST /account-types.
type CreateAccountTypeRequest struct {
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions" validate:"dive,oneof=send receive"`
}

// CreateAccountRequest is the payload for POST /accounts.
type CreateAccountRequest struct {
	AccountTypeID string `json:"account_type_id" validate:"required,uuid4"`
	Balance       int64  `json:"balance" validate:"gte=0"`
}

// AccountRoutes registers the account and account type endpoints.
//
// Routes:
//   - POST /account-types : Create a named permission bundle.
//   - POST /accounts      : Create an account of an existing type.
//   - GET  /accounts/:id  : Fetch an account joined with its type.
func AccountRoutes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/account-types", CreateAccountType(svc))
	app.Post("/accounts", CreateAccount(svc))
	app.Get("/accounts/:id", GetAccount(svc))
}

// CreateAccountType handles POST /account-types.
func CreateAccountType(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateAccountTypeRequest](c)
		if err != nil {
			return nil
		}
		at, err := svc.CreateAccountType(c.UserContext(), input.Name, input.Permissions)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Account type creation failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account type created", at)
	}
}

// CreateAccount handles POST /accounts.
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateAccountRequest](c)
		if err != nil {
			return nil
		}
		typeID, err := uuid.Parse(input.AccountTypeID)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account type id", err.Error())
		}
		a, err := svc.CreateAccount(c.UserContext(), typeID, input.Balance)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Account creation failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account created", a)
	}
}

// GetAccount handles GET /accounts/:id.
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		out, err := svc.GetAccountWithType(c.UserContext(), id)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Account lookup failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account found", out)
	}
}
