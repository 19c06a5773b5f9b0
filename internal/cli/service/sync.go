package service

import (
	"context"
	"fmt"
	"strings"

	"ContactHub/internal/cli/repo"
	"ContactHub/internal/query"
	"ContactHub/internal/records"

	"go.uber.org/zap"
)

// SyncResult — итог переноса контактов.
type SyncResult struct {
	Created int
	Skipped int
	Failed  int
}

// syncKey — ключ дедупликации: email, а при его отсутствии отображаемое имя.
func syncKey(c records.Contact) string {
	if k := strings.ToLower(strings.TrimSpace(c.Email)); k != "" {
		return "email:" + k
	}
	return "name:" + strings.ToLower(strings.TrimSpace(c.Name))
}

// copyFields переносит содержимое контакта без идентификатора и меток времени.
func copyFields(c records.Contact) records.ContactFields {
	f := records.ContactFields{
		Name:      nonEmpty(c.Name),
		FirstName: nonEmpty(c.FirstName),
		LastName:  nonEmpty(c.LastName),
		Email:     nonEmpty(c.Email),
		Phone:     nonEmpty(c.Phone),
		Company:   nonEmpty(c.Company),
		Position:  nonEmpty(c.Position),
		Category:  nonEmpty(c.Category),
		Notes:     nonEmpty(c.Notes),
	}
	if c.IsFavorite {
		f.IsFavorite = records.Ptr(true)
	}
	if len(c.Attachments) > 0 {
		f.Attachments = records.Ptr(c.Attachments)
	}
	return f
}

// SyncContacts копирует контакты из from в to, пропуская уже существующие
// (совпадение email или, если email пуст, отображаемого имени).
func SyncContacts(ctx context.Context, from, to repo.ContactBackend, logger *zap.SugaredLogger) (SyncResult, error) {
	var res SyncResult
	if from == nil || to == nil {
		return res, ErrBackendUnavailable
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	all := query.New(records.ContactFieldNames...)
	local, err := from.FetchContacts(ctx, all)
	if err != nil {
		return res, fmt.Errorf("read source: %w", classify(err))
	}
	remote, err := to.FetchContacts(ctx, all)
	if err != nil {
		return res, fmt.Errorf("read target: %w", classify(err))
	}
	seen := make(map[string]struct{}, len(remote))
	for _, c := range remote {
		seen[syncKey(c)] = struct{}{}
	}

	var batch []records.ContactFields
	for _, c := range local {
		k := syncKey(c)
		if _, ok := seen[k]; ok {
			res.Skipped++
			continue
		}
		seen[k] = struct{}{}
		batch = append(batch, copyFields(c))
	}
	if len(batch) == 0 {
		return res, nil
	}

	results, err := to.CreateContacts(ctx, batch)
	if err != nil {
		return res, fmt.Errorf("create contacts: %w", classify(err))
	}
	for i, r := range results {
		if r.Success {
			res.Created++
			continue
		}
		res.Failed++
		logger.Warnw("sync: contact rejected", "index", i, "message", r.Message, "errors", r.Errors)
	}
	logger.Infow("sync finished", "created", res.Created, "skipped", res.Skipped, "failed", res.Failed)
	return res, nil
}
