package testutil

import (
	"sort"
	"strings"
	"sync"

	apperrors "media2text/internal/app/errors"
	"media2text/internal/app/model"
)

// MemoryHistoryDAO is an in-memory HistoryDAO used by service and
// handler tests.
type MemoryHistoryDAO struct {
	mu sync.Mutex

	records map[int64]*model.HistoryRecord
	nextID  int64

	SaveError error
	Closed    bool
}

func NewMemoryHistoryDAO() *MemoryHistoryDAO {
	return &MemoryHistoryDAO{
		records: make(map[int64]*model.HistoryRecord),
		nextID:  1,
	}
}

func (m *MemoryHistoryDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

func (m *MemoryHistoryDAO) Save(record *model.HistoryRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveError != nil {
		return 0, m.SaveError
	}

	id := m.nextID
	m.nextID++
	clone := *record
	clone.ID = id
	m.records[id] = &clone
	return id, nil
}

func (m *MemoryHistoryDAO) GetByID(id int64) (*model.HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	clone := *record
	return &clone, nil
}

func (m *MemoryHistoryDAO) List(limit, offset int) ([]model.HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.sortedNewestFirst()
	if offset >= len(all) {
		return []model.HistoryRecord{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *MemoryHistoryDAO) Search(query string, limit int) ([]model.HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	query = strings.ToLower(query)
	var matched []model.HistoryRecord
	for _, record := range m.sortedNewestFirst() {
		if strings.Contains(strings.ToLower(record.SourceName), query) ||
			strings.Contains(strings.ToLower(record.Transcript), query) {
			matched = append(matched, record)
			if len(matched) == limit {
				break
			}
		}
	}
	if matched == nil {
		matched = []model.HistoryRecord{}
	}
	return matched, nil
}

func (m *MemoryHistoryDAO) ToggleFavorite(id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return false, apperrors.ErrRecordNotFound
	}
	record.Favorite = !record.Favorite
	return record.Favorite, nil
}

func (m *MemoryHistoryDAO) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return apperrors.ErrRecordNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *MemoryHistoryDAO) CheckIfProcessed(sourceName string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var best int64
	for id, record := range m.records {
		if record.SourceName == sourceName && id > best {
			best = id
		}
	}
	if best == 0 {
		return 0, apperrors.ErrRecordNotFound
	}
	return best, nil
}

func (m *MemoryHistoryDAO) sortedNewestFirst() []model.HistoryRecord {
	all := make([]model.HistoryRecord, 0, len(m.records))
	for _, record := range m.records {
		all = append(all, *record)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	return all
}
