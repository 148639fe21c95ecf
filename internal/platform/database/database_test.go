package database_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	readstore "link-analytics-service/internal/analytics/adapters/sqlstore"
	analytics "link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/analytics/core/ports"
	writestore "link-analytics-service/internal/clicks/adapters/sqlstore"
	"link-analytics-service/internal/clicks/core/domain"
	linkstore "link-analytics-service/internal/links/adapters/sqlstore"
	links "link-analytics-service/internal/links/core/domain"
	"link-analytics-service/internal/platform/database"
	"link-analytics-service/internal/platform/sqldb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverFor(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/clicks?sslmode=disable": database.DriverPostgres,
		"postgresql://localhost/clicks":                        database.DriverPostgres,
		"libsql://clicks-org.turso.io?authToken=x":             database.DriverLibSQL,
		"wss://clicks-org.turso.io":                            database.DriverLibSQL,
		"https://clicks-org.turso.io":                          database.DriverLibSQL,
		"file:clicks.db":                                       database.DriverSQLite,
		":memory:":                                             database.DriverSQLite,
		"/var/lib/clicks.db":                                   database.DriverSQLite,
	}
	for dsn, want := range tests {
		assert.Equal(t, want, database.DriverFor(dsn), dsn)
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "clicks.db")

	db, driver, err := database.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.Equal(t, database.DriverSQLite, driver)
	return db
}

func TestOpen_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	for _, name := range []string{"clicks", "idx_clicks_short_code_created_at", "links"} {
		var got string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE name = ?", name).Scan(&got)
		require.NoError(t, err, "%s should exist", name)
		assert.Equal(t, name, got)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, database.Migrate(context.Background(), db))
	require.NoError(t, database.Migrate(context.Background(), db))
}

func TestClicks_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	writer := writestore.NewClickRepository(db)
	reader := readstore.NewClickReader(sqldb.New(db, 5*time.Second))

	now := time.Date(2025, 12, 7, 12, 0, 0, 0, time.UTC)

	clicks := []*domain.Click{
		{
			ClickID:   "11111111-1111-4111-8111-111111111111",
			ShortCode: "abc123",
			Event: analytics.ClickEvent{
				CreatedAt: now.Add(-time.Hour),
				Country:   analytics.Some("USA"),
				Device:    analytics.Some("mobile"),
				OS:        analytics.Some("Android"),
			},
		},
		{
			ClickID:   "22222222-2222-4222-8222-222222222222",
			ShortCode: "abc123",
			Event: analytics.ClickEvent{
				CreatedAt: now.Add(-48 * time.Hour),
				Country:   analytics.Some("India"),
			},
		},
		{
			ClickID:   "33333333-3333-4333-8333-333333333333",
			ShortCode: "other",
			Event:     analytics.ClickEvent{CreatedAt: now.Add(-time.Minute)},
		},
	}

	for _, c := range clicks {
		created, err := writer.InsertClick(ctx, c)
		require.NoError(t, err)
		assert.True(t, created)
	}

	// same click_id again is a no-op
	created, err := writer.InsertClick(ctx, clicks[0])
	require.NoError(t, err)
	assert.False(t, created)

	all, err := reader.ListClicks(ctx, ports.ClickFilter{ShortCode: "abc123"})
	require.NoError(t, err)
	require.Len(t, all, 2)

	// ordered by created_at
	assert.True(t, all[0].CreatedAt.Equal(now.Add(-48*time.Hour)))
	assert.Equal(t, analytics.Some("India"), all[0].Country)
	assert.False(t, all[0].Device.Valid)

	assert.True(t, all[1].CreatedAt.Equal(now.Add(-time.Hour)))
	assert.Equal(t, analytics.Some("mobile"), all[1].Device)
	assert.Equal(t, analytics.Some("Android"), all[1].OS)
	assert.False(t, all[1].City.Valid)

	recent, err := reader.ListClicks(ctx, ports.ClickFilter{
		ShortCode: "abc123",
		Since:     now.Add(-24 * time.Hour),
	})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, analytics.Some("USA"), recent[0].Country)

	none, err := reader.ListClicks(ctx, ports.ClickFilter{ShortCode: "missing"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestLinks_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	sdb := sqldb.New(db, 5*time.Second)
	repo := linkstore.NewLinkRepository(sdb)
	clickWriter := writestore.NewClickRepository(db)
	clickReader := readstore.NewClickReader(sdb)

	createdAt := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)
	link := &links.Link{ShortCode: "abc1234", LongURL: "https://example.com/a", CreatedAt: createdAt}

	created, err := repo.InsertLink(ctx, link)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.InsertLink(ctx, &links.Link{ShortCode: "abc1234", LongURL: "https://other.example", CreatedAt: createdAt})
	require.NoError(t, err)
	assert.False(t, created, "short code is unique")

	got, found, err := repo.FindLink(ctx, "abc1234")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "https://example.com/a", got.LongURL)
	assert.True(t, got.CreatedAt.Equal(createdAt))

	_, found, err = repo.FindLink(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = clickWriter.InsertClick(ctx, &domain.Click{
		ClickID:   "44444444-4444-4444-8444-444444444444",
		ShortCode: "abc1234",
		Event:     analytics.ClickEvent{CreatedAt: createdAt.Add(time.Hour), Country: analytics.Some("USA")},
	})
	require.NoError(t, err)

	// rename carries the clicks along
	renamed, err := repo.RenameLink(ctx, "abc1234", "spring_sale")
	require.NoError(t, err)
	assert.True(t, renamed)

	_, found, err = repo.FindLink(ctx, "abc1234")
	require.NoError(t, err)
	assert.False(t, found)

	moved, err := clickReader.ListClicks(ctx, ports.ClickFilter{ShortCode: "spring_sale"})
	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.Equal(t, analytics.Some("USA"), moved[0].Country)

	renamed, err = repo.RenameLink(ctx, "abc1234", "other_code")
	require.NoError(t, err)
	assert.False(t, renamed)

	// delete removes the clicks too
	deleted, err := repo.DeleteLink(ctx, "spring_sale")
	require.NoError(t, err)
	assert.True(t, deleted)

	left, err := clickReader.ListClicks(ctx, ports.ClickFilter{ShortCode: "spring_sale"})
	require.NoError(t, err)
	assert.Empty(t, left)

	deleted, err = repo.DeleteLink(ctx, "spring_sale")
	require.NoError(t, err)
	assert.False(t, deleted)
}
