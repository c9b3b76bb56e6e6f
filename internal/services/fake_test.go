package services

import (
	"context"
	"errors"

	"slambook/internal/models"
)

// fakeClient implements api.Client for unit tests. Unset behaviors return
// zero values; counters record how often each call happened.
type fakeClient struct {
	LoginRet string
	LoginErr error

	SignupRet string
	SignupErr error

	MeRet models.User
	MeErr error

	ListRet   []models.Entry
	ListErr   error
	ListCalls int

	GetRet models.Entry
	GetErr error

	CreateRet   models.Entry
	CreateErr   error
	CreateCalls int
	CreateDraft models.EntryDraft

	UpdateRet   models.Entry
	UpdateErr   error
	UpdateCalls int
	UpdateID    string
	UpdateDraft models.EntryDraft

	DeleteErr   error
	DeleteCalls int

	ToggleRet models.Entry
	ToggleErr error

	StatsRet models.EntryStatistics
	StatsErr error

	ExportRet string
	ExportErr error

	ImportRet     models.ImportResult
	ImportErr     error
	ImportEntries []models.Entry
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, name, email, password string) (string, error) {
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) Me(ctx context.Context) (models.User, error) {
	return f.MeRet, f.MeErr
}

func (f *fakeClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	f.ListCalls++
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	return f.GetRet, f.GetErr
}

func (f *fakeClient) CreateEntry(ctx context.Context, draft models.EntryDraft) (models.Entry, error) {
	f.CreateCalls++
	f.CreateDraft = draft
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateEntry(ctx context.Context, id string, draft models.EntryDraft) (models.Entry, error) {
	f.UpdateCalls++
	f.UpdateID = id
	f.UpdateDraft = draft
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteEntry(ctx context.Context, id string) error {
	f.DeleteCalls++
	return f.DeleteErr
}

func (f *fakeClient) ToggleFavorite(ctx context.Context, id string) (models.Entry, error) {
	return f.ToggleRet, f.ToggleErr
}

func (f *fakeClient) Statistics(ctx context.Context) (models.EntryStatistics, error) {
	return f.StatsRet, f.StatsErr
}

func (f *fakeClient) Export(ctx context.Context) (string, error) {
	return f.ExportRet, f.ExportErr
}

func (f *fakeClient) Import(ctx context.Context, entries []models.Entry) (models.ImportResult, error) {
	f.ImportEntries = entries
	return f.ImportRet, f.ImportErr
}

var errBoom = errors.New("boom")
