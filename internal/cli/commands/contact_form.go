package commands

import (
	"context"
	"fmt"
	"strconv"

	"ContactHub/internal/cli/model"
	"ContactHub/internal/cli/model/view"
	"ContactHub/internal/config"
)

type contactAddCmd struct{}

func (contactAddCmd) Name() string        { return "contact-add" }
func (contactAddCmd) Description() string { return "Create a contact" }
func (contactAddCmd) Usage() string       { return "contact-add " + formUsage }

func (contactAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	fields, files, err := formFields(args)
	if err != nil {
		return err
	}
	in := model.ContactInput{
		FirstName:   fields["first"],
		LastName:    fields["last"],
		Email:       fields["email"],
		Phone:       fields["phone"],
		Company:     fields["company"],
		Position:    fields["position"],
		Category:    fields["category"],
		Notes:       fields["notes"],
		Attachments: files,
	}
	if v, ok := fields["fav"]; ok {
		if in.IsFavorite, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%w: fav must be true or false", ErrUsage)
		}
	}
	if errs := in.Validate(); len(errs) > 0 {
		return printFormErrors(errs)
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()
	c, err := s.vm.Create(ctx, in)
	if err != nil {
		return err
	}
	view.Details(Out, *c)
	return nil
}

type contactEditCmd struct{}

func (contactEditCmd) Name() string        { return "contact-edit" }
func (contactEditCmd) Description() string { return "Update contact fields (empty value clears a field)" }
func (contactEditCmd) Usage() string {
	return "contact-edit <id> [first=] [last=] [email=] [phone=] [company=] [position=] [category=] [notes=] [fav=] [attach=<path>]..."
}

func (contactEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := parseID(args[:1])
	if err != nil {
		return err
	}
	fields, files, err := formFields(args[1:])
	if err != nil {
		return err
	}
	var patch model.ContactPatch
	for k, v := range fields {
		switch k {
		case "first":
			patch.FirstName = &v
		case "last":
			patch.LastName = &v
		case "email":
			patch.Email = &v
		case "phone":
			patch.Phone = &v
		case "company":
			patch.Company = &v
		case "position":
			patch.Position = &v
		case "category":
			patch.Category = &v
		case "notes":
			patch.Notes = &v
		case "fav":
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: fav must be true or false", ErrUsage)
			}
			patch.IsFavorite = &b
		}
	}
	if len(files) > 0 {
		patch.Attachments = &files
	}
	if patch.IsEmpty() {
		return ErrUsage
	}
	if errs := model.ValidatePatch(patch); len(errs) > 0 {
		return printFormErrors(errs)
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	if len(files) > 0 {
		// вложения добавляются к существующим
		cur, err := s.contacts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return fmt.Errorf("contact %d not found", id)
		}
		all := append(cur.Attachments, files...)
		patch.Attachments = &all
	}
	c, err := s.vm.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	view.Details(Out, *c)
	return nil
}

func init() {
	RegisterCmd(contactAddCmd{})
	RegisterCmd(contactEditCmd{})
}
