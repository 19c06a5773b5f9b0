package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ContactHub/internal/cli/bootstrap"
	fsrepo "ContactHub/internal/cli/repo/fs"
	"ContactHub/internal/cli/service"
	"ContactHub/internal/config"
)

type syncCmd struct{}

func (syncCmd) Name() string        { return "sync" }
func (syncCmd) Description() string { return "Upload contacts of the local store to the server" }
func (syncCmd) Usage() string       { return "sync" }

func (syncCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	login, err := (fsrepo.AuthFSStore{}).LoadLogin()
	if err != nil {
		return errors.New("no active user: run login or register first")
	}
	from, done, err := bootstrap.OpenLocal(cfg.ClientDBPath, logger)
	if err != nil {
		return err
	}
	defer done()

	fmt.Fprintln(Out, "→ Syncing local contacts to the server…")
	res, err := service.SyncContacts(ctx, from, bootstrap.OpenRemote(cfg), logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Created: %d, skipped: %d, failed: %d\n", res.Created, res.Skipped, res.Failed)
	if err := fsrepo.SaveLastSyncAt(login, time.Now().UTC().Format(time.RFC3339)); err != nil {
		logger.Warnw("save last sync time", "login", login, "error", err)
	}
	return nil
}

func init() { RegisterCmd(syncCmd{}) }
