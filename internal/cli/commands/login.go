package commands

import (
	"context"
	"fmt"

	"ContactHub/internal/cli/bootstrap"
	"ContactHub/internal/cli/service"
	"ContactHub/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth cookie" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	tokens := bootstrap.Tokens(cfg)
	if err := service.NewAuthService(cfg.ServerURL, tokens, tokens).Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	if err := prepareUserStore(cfg); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

// prepareUserStore создаёт локальную БД вошедшего пользователя.
func prepareUserStore(cfg *config.Config) error {
	_, done, err := bootstrap.OpenLocal(cfg.ClientDBPath, logger)
	if err != nil {
		return err
	}
	return done()
}

func init() { RegisterCmd(loginCmd{}) }
