package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

type memoryCache struct {
	entries map[string][]byte
	sets    int
	deletes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest any) error {
	raw, ok := m.entries[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	m.sets++
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.entries, key)
	}
	m.deletes += len(keys)
	return nil
}

func matrixAndTeamRecords() *fakeAnalyticsStore {
	matrixRecord := Record{
		Scope:                ScopeMatrix,
		GeneralAverage:       3.5,
		EmployeeCount:        8,
		CompanyName:          "Acme",
		PerformanceCycleName: "Q3",
		AssessmentMatrixName: "Q3 Review",
	}
	teamRecord := Record{
		Scope:          ScopeTeam,
		TeamID:         "team-1",
		TeamName:       "Platform",
		GeneralAverage: 4.0,
	}
	return &fakeAnalyticsStore{
		overview: &matrixRecord,
		team:     &teamRecord,
		all:      []Record{matrixRecord, teamRecord},
	}
}

func TestOverviewCacheHitSkipsStore(t *testing.T) {
	analytics := matrixAndTeamRecords()
	service := NewService(&fakeMatrixLookup{matrix: ownedMatrix()}, analytics, &fakeCycleStore{}).
		WithCache(newMemoryCache(), time.Minute)

	first, err := service.Overview(context.Background(), "matrix-1", "tenant-1")
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	readsAfterMiss := analytics.reads

	second, err := service.Overview(context.Background(), "matrix-1", "tenant-1")
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if analytics.reads != readsAfterMiss {
		t.Fatalf("second read must be served from cache, reads %d -> %d", readsAfterMiss, analytics.reads)
	}
	if second.Metadata.CompanyName != first.Metadata.CompanyName {
		t.Fatalf("cached response diverged: %+v vs %+v", first.Metadata, second.Metadata)
	}
}

func TestComputeInvalidatesTeamCache(t *testing.T) {
	analytics := matrixAndTeamRecords()
	service := NewService(&fakeMatrixLookup{matrix: ownedMatrix()}, analytics, &fakeCycleStore{}).
		WithCache(newMemoryCache(), time.Minute)

	if _, err := service.Team(context.Background(), "matrix-1", "team-1", "tenant-1"); err != nil {
		t.Fatalf("prime team cache: %v", err)
	}
	readsAfterPrime := analytics.reads

	if _, err := service.Team(context.Background(), "matrix-1", "team-1", "tenant-1"); err != nil {
		t.Fatalf("cached team read: %v", err)
	}
	if analytics.reads != readsAfterPrime {
		t.Fatal("team read before compute must come from cache")
	}

	if _, err := service.Compute(context.Background(), "matrix-1", "tenant-1"); err != nil {
		t.Fatalf("compute: %v", err)
	}

	if _, err := service.Team(context.Background(), "matrix-1", "team-1", "tenant-1"); err != nil {
		t.Fatalf("team read after compute: %v", err)
	}
	if analytics.reads == readsAfterPrime {
		t.Fatal("team read after compute must bypass the pre-compute cache entry")
	}
}

func TestComputeInvalidatesOverviewCache(t *testing.T) {
	analytics := matrixAndTeamRecords()
	service := NewService(&fakeMatrixLookup{matrix: ownedMatrix()}, analytics, &fakeCycleStore{}).
		WithCache(newMemoryCache(), time.Minute)

	if _, err := service.Overview(context.Background(), "matrix-1", "tenant-1"); err != nil {
		t.Fatalf("prime overview cache: %v", err)
	}
	readsAfterPrime := analytics.reads

	if _, err := service.Compute(context.Background(), "matrix-1", "tenant-1"); err != nil {
		t.Fatalf("compute: %v", err)
	}

	if _, err := service.Overview(context.Background(), "matrix-1", "tenant-1"); err != nil {
		t.Fatalf("overview read after compute: %v", err)
	}
	if analytics.reads == readsAfterPrime {
		t.Fatal("overview read after compute must bypass the pre-compute cache entry")
	}
}

func TestCacheGuardStillAppliesOnHit(t *testing.T) {
	analytics := matrixAndTeamRecords()
	service := NewService(&fakeMatrixLookup{matrix: ownedMatrix()}, analytics, &fakeCycleStore{}).
		WithCache(newMemoryCache(), time.Minute)

	if _, err := service.Overview(context.Background(), "matrix-1", "tenant-1"); err != nil {
		t.Fatalf("prime cache: %v", err)
	}

	// A cached entry must never be served across tenants.
	if _, err := service.Overview(context.Background(), "matrix-1", "tenant-2"); !errors.Is(err, ErrTenantMismatch) {
		t.Fatalf("expected ErrTenantMismatch, got %v", err)
	}
}
