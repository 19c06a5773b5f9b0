package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"ContactHub/internal/cli/api"
	"ContactHub/internal/cli/bootstrap"
	fsrepo "ContactHub/internal/cli/repo/fs"
	"ContactHub/internal/config"
)

type dataResponse struct {
	Result string `json:"result"`
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show session status on the server" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/test"
	token, _ := bootstrap.Tokens(cfg).Load()
	resp, body, err := api.PostJSON(ctx, endpoint, struct{}{}, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var dr dataResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Status:", dr.Result)
	fmt.Fprintln(Out, "Backend:", cfg.Backend)
	if login, err := (fsrepo.AuthFSStore{}).LoadLogin(); err == nil {
		fmt.Fprintln(Out, "User:", login)
		if ts, err := fsrepo.LoadLastSyncAt(login); err == nil {
			fmt.Fprintln(Out, "Last sync:", ts)
		}
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
