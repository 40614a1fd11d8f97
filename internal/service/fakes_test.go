package service

import (
	"errors"
	"sort"
	"time"

	"github.com/mhngo/quiznest/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the ordering and not-found
// semantics of the gorm-backed implementations so service tests do not need
// a live database.

type fakeQuestionRepo struct {
	questions []model.Question
	nextID    uint
	err       error
}

func newFakeQuestionRepo(questions ...model.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{}
	_ = repo.CreateBatch(questions)
	return repo
}

func (f *fakeQuestionRepo) CreateBatch(questions []model.Question) error {
	if f.err != nil {
		return f.err
	}
	for _, q := range questions {
		f.nextID++
		q.ID = f.nextID
		f.questions = append(f.questions, q)
	}
	return nil
}

func (f *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Question, len(f.questions))
	copy(out, f.questions)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuestionRepo) FindByTopic(topic string) ([]model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Question
	for _, q := range f.questions {
		if q.Topic == topic {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuestionRepo) DistinctTopics() ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := make(map[string]bool)
	var topics []string
	for _, q := range f.questions {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			topics = append(topics, q.Topic)
		}
	}
	sort.Strings(topics)
	return topics, nil
}

func (f *fakeQuestionRepo) Count() (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.questions)), nil
}

type fakeResultRepo struct {
	results []model.Result
	nextID  uint
	clock   time.Time
	err     error
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeResultRepo) Create(result *model.Result) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	f.clock = f.clock.Add(time.Second)
	result.ID = f.nextID
	result.CreatedAt = f.clock
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeResultRepo) FindLatestByUser(userID string) (*model.Result, error) {
	var latest *model.Result
	for i := range f.results {
		r := f.results[i]
		if r.UserID != userID {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) ||
			(r.CreatedAt.Equal(latest.CreatedAt) && r.ID > latest.ID) {
			latest = &r
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (f *fakeResultRepo) FindBestByUser(userID string) (*model.Result, error) {
	var best *model.Result
	for i := range f.results {
		r := f.results[i]
		if r.UserID != userID {
			continue
		}
		if best == nil || r.Score > best.Score {
			best = &r
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (f *fakeResultRepo) FindBest() (*model.Result, error) {
	var best *model.Result
	for i := range f.results {
		r := f.results[i]
		if best == nil || r.Score > best.Score {
			best = &r
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (f *fakeResultRepo) FindAllByUser(userID string) ([]model.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Result
	for _, r := range f.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

var errStorage = errors.New("storage unavailable")
