package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ContactHub/internal/cli/model"
	"ContactHub/internal/cli/model/view"
	"ContactHub/internal/config"
)

type contactsCmd struct{}

func (contactsCmd) Name() string        { return "contacts" }
func (contactsCmd) Description() string { return "List contacts, optionally by category or favorites" }
func (contactsCmd) Usage() string       { return "contacts [--category <name>|--favorites]" }

func (contactsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("contacts", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.String("category", "", "category name or \"all\"")
	favorites := fs.Bool("favorites", false, "only favorites")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if *favorites && *category != "" {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	var list []model.Contact
	switch {
	case *favorites:
		list, err = s.contacts.GetFavorites(ctx)
	case *category != "":
		if err = s.vm.FilterByCategory(ctx, *category); err == nil {
			list = s.vm.State().Contacts
		}
	default:
		if err = s.vm.Load(ctx); err == nil {
			list = s.vm.State().Contacts
		}
	}
	if err != nil {
		return err
	}
	view.List(Out, list)
	return nil
}

type contactGetCmd struct{}

func (contactGetCmd) Name() string        { return "contact-get" }
func (contactGetCmd) Description() string { return "Show a contact by id" }
func (contactGetCmd) Usage() string       { return "contact-get <id>" }

func (contactGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("contact %d not found", id)
	}
	view.Details(Out, *c)
	return nil
}

type contactDeleteCmd struct{}

func (contactDeleteCmd) Name() string        { return "contact-delete" }
func (contactDeleteCmd) Description() string { return "Delete a contact by id" }
func (contactDeleteCmd) Usage() string       { return "contact-delete <id>" }

func (contactDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()
	return s.vm.Delete(ctx, id)
}

type contactFavCmd struct{}

func (contactFavCmd) Name() string        { return "contact-fav" }
func (contactFavCmd) Description() string { return "Toggle the favorite flag of a contact" }
func (contactFavCmd) Usage() string       { return "contact-fav <id>" }

func (contactFavCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()
	c, err := s.vm.ToggleFavorite(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, view.Line(*c))
	return nil
}

type searchCmd struct{}

func (searchCmd) Name() string        { return "search" }
func (searchCmd) Description() string { return "Search by name, email, company or phone" }
func (searchCmd) Usage() string       { return "search <text>" }

func (searchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()
	if err := s.vm.Search(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	view.List(Out, s.vm.State().Contacts)
	return nil
}

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List categories" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()
	if err := s.cats.Load(ctx); err != nil {
		return err
	}
	list := s.cats.State().Categories
	if len(list) == 0 {
		fmt.Fprintln(Out, "No categories")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(Out, "  %3d  %-12s %s %s\n", c.ID, c.Name, c.Color, c.Icon)
	}
	return nil
}

func init() {
	RegisterCmd(contactsCmd{})
	RegisterCmd(contactGetCmd{})
	RegisterCmd(contactDeleteCmd{})
	RegisterCmd(contactFavCmd{})
	RegisterCmd(searchCmd{})
	RegisterCmd(categoriesCmd{})
}
