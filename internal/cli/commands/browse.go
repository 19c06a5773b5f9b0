package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"ContactHub/internal/cli/model"
	"ContactHub/internal/cli/model/view"
	"ContactHub/internal/cli/viewmodel"
	"ContactHub/internal/config"

	"golang.org/x/sync/errgroup"
)

const defaultDebounce = 300 * time.Millisecond

type browseCmd struct{}

func (browseCmd) Name() string        { return "browse" }
func (browseCmd) Description() string { return "Interactive browsing: type to search, :help for commands" }
func (browseCmd) Usage() string       { return "browse" }

const browseHelp = `  <text>        search (debounced)
  :all          show all contacts
  :cat <name>   filter by category ("all" resets)
  :fav <id>     toggle favorite
  :stats        show statistics
  :q            quit`

func (browseCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.vm.Load(gctx) })
	g.Go(func() error { return s.cats.Load(gctx) })
	if err := g.Wait(); err != nil {
		return err
	}

	b := &browser{vm: s.vm}
	b.printCategories(s.cats.State().Categories)
	b.printList()
	fmt.Fprintln(Out, browseHelp)

	delay := cfg.SearchDebounce
	if delay <= 0 {
		delay = defaultDebounce
	}
	d := viewmodel.NewDebouncer(delay)
	defer d.Wait()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(In)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, ":") {
				d.Trigger(func() { b.search(ctx, line) })
				continue
			}
			d.Stop()
			d.Wait()
			if quit := b.command(ctx, s, line); quit {
				return nil
			}
		}
	}
}

// browser сериализует вывод основного цикла и отложенного поиска.
type browser struct {
	mu sync.Mutex
	vm *viewmodel.Contacts
}

func (b *browser) printList() {
	b.mu.Lock()
	defer b.mu.Unlock()
	view.List(Out, b.vm.State().Contacts)
}

func (b *browser) printf(format string, a ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(Out, format, a...)
}

func (b *browser) printCategories(list []model.Category) {
	names := make([]string, 0, len(list))
	for _, c := range list {
		names = append(names, c.Name)
	}
	b.printf("Categories: %s\n", strings.Join(names, ", "))
}

func (b *browser) search(ctx context.Context, text string) {
	if err := b.vm.Search(ctx, text); err != nil {
		b.printf("search failed: %v\n", err)
		return
	}
	b.printList()
}

func (b *browser) command(ctx context.Context, s *session, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	var err error
	switch cmd {
	case "q", "quit":
		return true
	case "help":
		b.printf("%s\n", browseHelp)
		return false
	case "all":
		if err = b.vm.Load(ctx); err == nil {
			b.printList()
		}
	case "cat":
		if err = b.vm.FilterByCategory(ctx, arg); err == nil {
			b.printList()
		}
	case "fav":
		var id int64
		if id, err = model.ParseID(arg); err == nil {
			var c *model.Contact
			if c, err = b.vm.ToggleFavorite(ctx, id); err == nil {
				b.printf("%s\n", view.Line(*c))
			}
		}
	case "stats":
		var st model.Stats
		if st, err = s.contacts.GetStats(ctx); err == nil {
			b.mu.Lock()
			view.Stats(Out, st)
			b.mu.Unlock()
		}
	default:
		b.printf("unknown command %q, try :help\n", cmd)
	}
	if err != nil {
		b.printf("error: %v\n", err)
	}
	return false
}

func init() { RegisterCmd(browseCmd{}) }
