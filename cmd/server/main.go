package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/jvmonteiro/minipay/infra/database"
	infrarepo "github.com/jvmonteiro/minipay/infra/repository"
	"github.com/jvmonteiro/minipay/pkg/config"
	"github.com/jvmonteiro/minipay/pkg/domain/account"
	accountsvc "github.com/jvmonteiro/minipay/pkg/service/account"
	transfersvc "github.com/jvmonteiro/minipay/pkg/service/transfer"
	"github.com/jvmonteiro/minipay/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := setupLogger(cfg.Log)

	db, err := database.New(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	accounts := accountsvc.NewService(uow, logger)
	transfers := transfersvc.NewService(uow, logger,
		transfersvc.WithFundsGate(account.FundsGate(cfg.Transfer.FundsGate)),
		transfersvc.WithTimeout(cfg.Transfer.Timeout),
	)

	app := webapi.NewApp(accounts, transfers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	color.Green("minipay listening on %s", addr)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"funds_gate", cfg.Transfer.FundsGate,
		"transfer_timeout", cfg.Transfer.Timeout,
	)

	return app.Listen(addr)
}
