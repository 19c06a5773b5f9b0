package service

import (
	"strings"

	"ContactHub/internal/cli/model"
	"ContactHub/internal/records"
)

// Единственная точка согласования сетевых имён полей (firstName_c, ...) с доменной моделью клиента.

func toModel(r records.Contact) model.Contact {
	c := model.Contact{
		ID:         r.ID,
		Name:       r.Name,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Company:    r.Company,
		Position:   r.Position,
		Category:   r.Category,
		Notes:      r.Notes,
		IsFavorite: r.IsFavorite,
		CreatedOn:  r.CreatedOn,
		ModifiedOn: r.ModifiedOn,
	}
	c.Attachments = make([]model.Attachment, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		c.Attachments = append(c.Attachments, model.Attachment(a))
	}
	return c
}

func toModels(list []records.Contact) []model.Contact {
	out := make([]model.Contact, 0, len(list))
	for _, r := range list {
		out = append(out, toModel(r))
	}
	model.SortContacts(out)
	return out
}

func toAttachments(list []model.Attachment) []records.Attachment {
	out := make([]records.Attachment, 0, len(list))
	for _, a := range list {
		out = append(out, records.Attachment(a))
	}
	return out
}

// nonEmpty возвращает nil для пустой строки: такие поля не передаются в хранилище.
func nonEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// createFields переводит форму создания в частичную запись, отбрасывая пустые поля.
func createFields(in model.ContactInput) records.ContactFields {
	f := records.ContactFields{
		FirstName: nonEmpty(in.FirstName),
		LastName:  nonEmpty(in.LastName),
		Email:     nonEmpty(in.Email),
		Phone:     nonEmpty(in.Phone),
		Company:   nonEmpty(in.Company),
		Position:  nonEmpty(in.Position),
		Category:  nonEmpty(in.Category),
		Notes:     nonEmpty(in.Notes),
	}
	if in.IsFavorite {
		f.IsFavorite = records.Ptr(true)
	}
	if len(in.Attachments) > 0 {
		f.Attachments = records.Ptr(toAttachments(in.Attachments))
	}
	f.Name = nonEmpty(records.DisplayName(in.FirstName, in.LastName))
	return f
}

// patchFields переводит патч в частичную запись. Идентификатор задаётся всегда.
func patchFields(id int64, p model.ContactPatch) records.ContactFields {
	f := records.ContactFields{
		ID:         records.Ptr(id),
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Email:      p.Email,
		Phone:      p.Phone,
		Company:    p.Company,
		Position:   p.Position,
		Category:   p.Category,
		Notes:      p.Notes,
		IsFavorite: p.IsFavorite,
	}
	if p.Attachments != nil {
		f.Attachments = records.Ptr(toAttachments(*p.Attachments))
	}
	return f
}

func toCategory(r records.Category) model.Category {
	return model.Category{ID: r.ID, Name: r.Name, Color: r.Color, Icon: r.Icon}
}
