package commands

import (
	"context"
	"fmt"

	"ContactHub/internal/cli/model"
	"ContactHub/internal/cli/model/view"
	"ContactHub/internal/config"

	"golang.org/x/sync/errgroup"
)

type statsCmd struct{}

func (statsCmd) Name() string        { return "stats" }
func (statsCmd) Description() string { return "Show contact statistics" }
func (statsCmd) Usage() string       { return "stats" }

func (statsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	var st model.Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		st, err = s.contacts.GetStats(gctx)
		return err
	})
	g.Go(func() error { return s.cats.Load(gctx) })
	if err := g.Wait(); err != nil {
		return err
	}

	// категории без контактов тоже показываются
	for _, c := range s.cats.State().Categories {
		if _, ok := st.ByCategory[c.Name]; !ok {
			st.ByCategory[c.Name] = 0
		}
	}
	view.Stats(Out, st)
	if st.Total > 0 {
		fmt.Fprintf(Out, "Favorite share: %.0f%%\n", float64(st.Favorites)*100/float64(st.Total))
	}
	return nil
}

func init() { RegisterCmd(statsCmd{}) }
