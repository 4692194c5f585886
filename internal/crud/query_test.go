package crud

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type note struct {
	ID      uint `gorm:"primarykey"`
	Title   string
	OwnerID uint
	Date    time.Time
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&note{}))

	return conn
}

func seedNotes(t *testing.T, conn *gorm.DB, n int) {
	t.Helper()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < n; i++ {
		require.NoError(t, conn.Create(&note{
			Title:   fmt.Sprintf("Note %02d", i),
			OwnerID: 1,
			Date:    base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}
}

func TestListQueryDefaults(t *testing.T) {
	var q ListQuery
	q.Defaults()

	assert.Equal(t, "asc", q.Sort)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)

	q = ListQuery{Sort: "desc", Page: 3, Limit: 25}
	q.Defaults()

	assert.Equal(t, "desc", q.Sort)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
}

func TestListPagination(t *testing.T) {
	conn := openTestDB(t)
	seedNotes(t, conn, 23)

	query := func() *gorm.DB { return conn.Model(&note{}) }

	q := ListQuery{Sort: "asc", Page: 1, Limit: 10}

	items, meta, err := List[note](query, q, "date")
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, int64(23), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, "Note 00", items[0].Title)

	q.Page = 3

	items, _, err = List[note](query, q, "date")
	require.NoError(t, err)
	assert.Len(t, items, 3)

	// Past the last page is empty, not an error.
	q.Page = 4

	items, _, err = List[note](query, q, "date")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListSortDescending(t *testing.T) {
	conn := openTestDB(t)
	seedNotes(t, conn, 5)

	items, _, err := List[note](func() *gorm.DB { return conn.Model(&note{}) },
		ListQuery{Sort: "desc", Page: 1, Limit: 10}, "date")
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "Note 04", items[0].Title)
	assert.Equal(t, "Note 00", items[4].Title)
}

func TestApplySearchCaseInsensitive(t *testing.T) {
	conn := openTestDB(t)

	for _, title := range []string{"Algebra Basics", "ADVANCED ALGEBRA", "Biology"} {
		require.NoError(t, conn.Create(&note{Title: title, OwnerID: 1, Date: time.Now()}).Error)
	}

	var matched []note
	require.NoError(t, ApplySearch(conn.Model(&note{}), "algebra", "title").Find(&matched).Error)
	assert.Len(t, matched, 2)

	// Empty search leaves the query untouched.
	matched = nil
	require.NoError(t, ApplySearch(conn.Model(&note{}), "", "title").Find(&matched).Error)
	assert.Len(t, matched, 3)
}

func TestApplySearchLiteralMetacharacters(t *testing.T) {
	conn := openTestDB(t)

	for _, title := range []string{"50% off", "500 off", "a_b", "axb"} {
		require.NoError(t, conn.Create(&note{Title: title, OwnerID: 1, Date: time.Now()}).Error)
	}

	var matched []note
	require.NoError(t, ApplySearch(conn.Model(&note{}), "50%", "title").Find(&matched).Error)
	require.Len(t, matched, 1)
	assert.Equal(t, "50% off", matched[0].Title)

	matched = nil
	require.NoError(t, ApplySearch(conn.Model(&note{}), "a_b", "title").Find(&matched).Error)
	require.Len(t, matched, 1)
	assert.Equal(t, "a_b", matched[0].Title)
}

func TestFirstOwned(t *testing.T) {
	conn := openTestDB(t)

	require.NoError(t, conn.Create(&note{Title: "Mine", OwnerID: 1, Date: time.Now()}).Error)

	owner := func(n *note) uint { return n.OwnerID }

	got, err := FirstOwned(conn, 1, 1, owner)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Title)

	_, err = FirstOwned(conn, 1, 2, owner)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = FirstOwned(conn, 999, 1, owner)
	assert.ErrorIs(t, err, ErrNotFound)
}
