package services

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/models"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/providers/llm"
	pgrepo "github.com/ArpanMallick2005/Ai-resume-Analy/internal/repositories/postgres"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubProvider struct {
	out   string
	err   error
	calls []llm.Request
}

func (p *stubProvider) Complete(_ context.Context, req llm.Request) (string, error) {
	p.calls = append(p.calls, req)
	return p.out, p.err
}
func (p *stubProvider) Name() string { return "stub" }
func (p *stubProvider) Close() error { return nil }

type memResumeRepo struct {
	mu   sync.Mutex
	docs map[string]*models.Resume
	err  error
}

func newMemResumeRepo() *memResumeRepo {
	return &memResumeRepo{docs: map[string]*models.Resume{}}
}

func (r *memResumeRepo) Create(_ context.Context, res *models.Resume) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	res.ID = primitive.NewObjectID()
	cp := *res
	r.docs[res.ID.Hex()] = &cp
	return res.ID.Hex(), nil
}

func (r *memResumeRepo) GetByID(_ context.Context, userID, id string) (*models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok || d.UserID != userID {
		return nil, utils.ErrNotFound
	}
	return d, nil
}

func (r *memResumeRepo) ListByUser(_ context.Context, userID string, _ int64) ([]models.ResumeSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.ResumeSummary{}
	for _, d := range r.docs {
		if d.UserID == userID {
			out = append(out, models.ResumeSummary{ID: d.ID, Title: d.Title, CreatedAt: d.CreatedAt})
		}
	}
	return out, nil
}

func (r *memResumeRepo) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok || d.UserID != userID {
		return utils.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

type captureUsage struct {
	recs []models.UsageRecord
}

func (u *captureUsage) Record(_ context.Context, rec models.UsageRecord) {
	u.recs = append(u.recs, rec)
}

type memUserRepo struct {
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{byEmail: map[string]*models.User{}} }

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return utils.ErrConflict
	}
	u.ID = "3f0e4a39-6c51-4c1f-8a8e-6d8d1f5c2b11"
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, utils.ErrNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, utils.ErrNotFound
}

type failingUsageRepo struct{ inserts int }

func (r *failingUsageRepo) Insert(context.Context, *models.UsageRecord) error {
	r.inserts++
	return io.ErrUnexpectedEOF
}
func (r *failingUsageRepo) ListRecent(context.Context, int) ([]models.UsageRecord, error) {
	return nil, nil
}
func (r *failingUsageRepo) CountByStatus(context.Context, time.Time) ([]pgrepo.UsageCount, error) {
	return nil, nil
}

type memUploader struct {
	objects map[string][]byte
	err     error
}

func (u *memUploader) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if u.objects == nil {
		u.objects = map[string][]byte{}
	}
	u.objects[objectName] = b
	return "gs://test/" + objectName, nil
}

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (m *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}
