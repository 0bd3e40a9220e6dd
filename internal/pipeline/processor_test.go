package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/doctext"
	"github.com/receiptiq/receiptiq/internal/entity"
	"github.com/receiptiq/receiptiq/internal/flatten"
	"github.com/receiptiq/receiptiq/internal/llm"
)

type fakeReceipts struct {
	receipts map[uuid.UUID]*entity.Receipt
	statuses map[uuid.UUID][]constants.ReceiptStatus
	failures map[uuid.UUID]string
}

func newFakeReceipts(rs ...*entity.Receipt) *fakeReceipts {
	f := &fakeReceipts{
		receipts: map[uuid.UUID]*entity.Receipt{},
		statuses: map[uuid.UUID][]constants.ReceiptStatus{},
		failures: map[uuid.UUID]string{},
	}
	for _, r := range rs {
		f.receipts[r.ID] = r
	}
	return f
}

func (f *fakeReceipts) GetByID(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	r, ok := f.receipts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return r, nil
}

func (f *fakeReceipts) ListByProject(_ context.Context, projectID uuid.UUID) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, r := range f.receipts {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReceipts) SetStatus(_ context.Context, id uuid.UUID, status constants.ReceiptStatus) error {
	f.statuses[id] = append(f.statuses[id], status)
	f.receipts[id].Status = status
	return nil
}

func (f *fakeReceipts) SetFailed(_ context.Context, id uuid.UUID, message string) error {
	f.statuses[id] = append(f.statuses[id], constants.StatusFailed)
	f.receipts[id].Status = constants.StatusFailed
	f.failures[id] = message
	return nil
}

type fakeFields struct {
	forest []*entity.Field
	err    error
}

func (f *fakeFields) ListForest(context.Context, uuid.UUID) ([]*entity.Field, error) {
	return f.forest, f.err
}

type fakeStore struct {
	content     string
	downloadErr error
	staged      []string
}

func (s *fakeStore) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", errors.New("not used")
}

func (s *fakeStore) GetURL(_ context.Context, key string) (string, error) {
	return "https://store.example/" + key, nil
}

func (s *fakeStore) Download(_ context.Context, _ string, localPath string) error {
	if s.downloadErr != nil {
		return s.downloadErr
	}
	s.staged = append(s.staged, localPath)
	return os.WriteFile(localPath, []byte(s.content), 0o644)
}

func (s *fakeStore) Delete(context.Context, string) error { return nil }

type fakeDocText struct {
	doc doctext.Document
	err error
}

func (f *fakeDocText) Extract(context.Context, string, string) (doctext.Document, error) {
	return f.doc, f.err
}

type fakeLLM struct {
	result  map[string]any
	err     error
	calls   int
	lastReq llm.Request
}

func (f *fakeLLM) Extract(_ context.Context, req llm.Request) (map[string]any, []byte, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.result, []byte("{}"), nil
}

type memValues struct {
	values []*entity.DataValue
}

func (m *memValues) Upsert(_ context.Context, v *entity.DataValue) (*entity.DataValue, error) {
	stored := *v
	stored.ID = uuid.New()
	m.values = append(m.values, &stored)
	return &stored, nil
}

func testReceipt(projectID uuid.UUID) *entity.Receipt {
	return &entity.Receipt{
		ID:        uuid.New(),
		ProjectID: projectID,
		FilePath:  "receipts/p1/doc.pdf",
		FileName:  "doc.pdf",
		MimeType:  "application/pdf",
		Status:    constants.StatusPending,
	}
}

func vendorForest() []*entity.Field {
	return []*entity.Field{
		{ID: uuid.New(), Name: "vendor", Type: constants.FieldTypeString},
	}
}

func newTestProcessor(rs *fakeReceipts, fs *fakeFields, store *fakeStore, dt *fakeDocText, ex *fakeLLM) *Processor {
	values := &memValues{}
	return NewProcessor(rs, fs, store, dt, ex, flatten.New(values, nil), nil)
}

func TestProcessReceiptHappyPath(t *testing.T) {
	projectID := uuid.New()
	receipt := testReceipt(projectID)
	rs := newFakeReceipts(receipt)
	store := &fakeStore{content: "pdf"}
	ex := &fakeLLM{result: map[string]any{
		"vendor": map[string]any{"value": "ACME"},
	}}
	p := newTestProcessor(rs, &fakeFields{forest: vendorForest()}, store,
		&fakeDocText{doc: doctext.Document{Text: "ACME", Method: "pdf-text"}}, ex)

	values, err := p.ProcessReceipt(context.Background(), receipt)
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.Equal(t, "ACME", values[0].Value)

	// processing is persisted before completion
	require.Equal(t,
		[]constants.ReceiptStatus{constants.StatusProcessing, constants.StatusCompleted},
		rs.statuses[receipt.ID])

	// the LLM call carried both the presigned URL and the text/tokens
	require.Equal(t, 1, ex.calls)
	require.True(t, strings.HasPrefix(ex.lastReq.DocumentURL, "https://store.example/"))
	require.Equal(t, "ACME", ex.lastReq.Text)

	// the staged copy is cleaned up
	for _, staged := range store.staged {
		_, err := os.Stat(filepath.Dir(staged))
		require.True(t, os.IsNotExist(err), "staged dir should be removed")
	}
}

func TestProcessReceiptEmptySchema(t *testing.T) {
	receipt := testReceipt(uuid.New())
	rs := newFakeReceipts(receipt)
	ex := &fakeLLM{}
	p := newTestProcessor(rs, &fakeFields{}, &fakeStore{}, &fakeDocText{}, ex)

	_, err := p.ProcessReceipt(context.Background(), receipt)
	require.ErrorIs(t, err, common.ErrEmptySchema)
	require.Equal(t, constants.StatusFailed, receipt.Status)
	require.Zero(t, ex.calls)
}

func TestProcessReceiptUnreadableDocumentSkipsLLM(t *testing.T) {
	receipt := testReceipt(uuid.New())
	rs := newFakeReceipts(receipt)
	ex := &fakeLLM{}
	p := newTestProcessor(rs, &fakeFields{forest: vendorForest()}, &fakeStore{content: "img"},
		&fakeDocText{err: doctext.ErrUnreadableDocument}, ex)

	_, err := p.ProcessReceipt(context.Background(), receipt)
	require.ErrorIs(t, err, doctext.ErrUnreadableDocument)
	require.Zero(t, ex.calls, "LLM must not be called for unreadable documents")
	require.Equal(t, constants.StatusFailed, receipt.Status)
	require.Contains(t, rs.failures[receipt.ID], "no text could be extracted")
}

func TestProcessReceiptLLMFailureReRaises(t *testing.T) {
	receipt := testReceipt(uuid.New())
	rs := newFakeReceipts(receipt)
	boom := errors.New("provider timeout")
	p := newTestProcessor(rs, &fakeFields{forest: vendorForest()}, &fakeStore{content: "pdf"},
		&fakeDocText{doc: doctext.Document{Text: "x"}}, &fakeLLM{err: boom})

	_, err := p.ProcessReceipt(context.Background(), receipt)
	require.ErrorIs(t, err, boom)
	require.Equal(t, constants.StatusFailed, receipt.Status)
	require.Equal(t, "provider timeout", rs.failures[receipt.ID])
}

func TestProcessReceiptDownloadFailure(t *testing.T) {
	receipt := testReceipt(uuid.New())
	rs := newFakeReceipts(receipt)
	ex := &fakeLLM{}
	p := newTestProcessor(rs, &fakeFields{forest: vendorForest()},
		&fakeStore{downloadErr: errors.New("no such key")}, &fakeDocText{}, ex)

	_, err := p.ProcessReceipt(context.Background(), receipt)
	require.Error(t, err)
	require.Zero(t, ex.calls)
	require.Equal(t, constants.StatusFailed, receipt.Status)
}

func TestProcessProjectSkipsInFlight(t *testing.T) {
	projectID := uuid.New()
	pending := testReceipt(projectID)
	completed := testReceipt(projectID)
	completed.Status = constants.StatusCompleted
	failed := testReceipt(projectID)
	failed.Status = constants.StatusFailed
	inflight := testReceipt(projectID)
	inflight.Status = constants.StatusProcessing

	rs := newFakeReceipts(pending, completed, failed, inflight)
	ex := &fakeLLM{result: map[string]any{"vendor": map[string]any{"value": "A"}}}
	p := newTestProcessor(rs, &fakeFields{forest: vendorForest()}, &fakeStore{content: "pdf"},
		&fakeDocText{doc: doctext.Document{Text: "A"}}, ex)

	res, err := p.ProcessProject(context.Background(), projectID)
	require.NoError(t, err)
	require.Equal(t, 3, res.Processed)
	require.Equal(t, 1, res.Skipped)
	require.Zero(t, res.Failed)
	require.Empty(t, rs.statuses[inflight.ID])
}

func TestProcessProjectContinuesPastFailures(t *testing.T) {
	projectID := uuid.New()
	a := testReceipt(projectID)
	b := testReceipt(projectID)
	rs := newFakeReceipts(a, b)

	ex := &fakeLLM{err: errors.New("boom")}
	p := newTestProcessor(rs, &fakeFields{forest: vendorForest()}, &fakeStore{content: "pdf"},
		&fakeDocText{doc: doctext.Document{Text: "x"}}, ex)

	res, err := p.ProcessProject(context.Background(), projectID)
	require.NoError(t, err)
	require.Equal(t, 2, res.Failed)
	require.Equal(t, 2, ex.calls, "each receipt gets its own attempt")
}
