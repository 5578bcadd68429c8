package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peakplot/pkg/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleReading(index int, hour int) models.Reading {
	return models.Reading{
		Index:     index,
		Timestamp: time.Date(2013, time.September, 18, hour, 0, 0, 0, time.UTC),
		UsageKW:   2.5,
		HourLabel: "Sep 18, 2013",
		Source:    "house",
	}
}

func TestInsertAndListReadings(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 3; i++ {
		r := sampleReading(i+1, i)
		require.NoError(t, db.InsertReading(&r))
	}

	readings, err := db.ListReadings("house")
	require.NoError(t, err)
	require.Len(t, readings, 3)

	assert.Equal(t, 1, readings[0].Index)
	assert.Equal(t, 2.5, readings[0].UsageKW)
	assert.Equal(t, "house", readings[0].Source)
	assert.True(t, readings[0].Timestamp.Before(readings[1].Timestamp))
}

func TestInsertIgnoresDuplicates(t *testing.T) {
	db := testDB(t)

	r := sampleReading(1, 0)
	require.NoError(t, db.InsertReading(&r))
	require.NoError(t, db.InsertReading(&r))

	readings, err := db.ListReadings("house")
	require.NoError(t, err)
	assert.Len(t, readings, 1)
}

func TestListReadingsRange(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 6; i++ {
		r := sampleReading(i+1, i)
		require.NoError(t, db.InsertReading(&r))
	}

	from := time.Date(2013, time.September, 18, 2, 0, 0, 0, time.UTC)
	to := time.Date(2013, time.September, 18, 5, 0, 0, 0, time.UTC)
	readings, err := db.ListReadingsRange("house", from, to)
	require.NoError(t, err)

	require.Len(t, readings, 3)
	assert.Equal(t, 3, readings[0].Index)
	assert.Equal(t, 5, readings[2].Index)
}

func TestSources(t *testing.T) {
	db := testDB(t)

	a := sampleReading(1, 0)
	b := sampleReading(1, 0)
	b.Source = "cabin"
	require.NoError(t, db.InsertReading(&a))
	require.NoError(t, db.InsertReading(&b))

	sources, err := db.Sources()
	require.NoError(t, err)
	assert.Equal(t, []string{"cabin", "house"}, sources)
}

func TestListReadingsUnknownSource(t *testing.T) {
	db := testDB(t)

	readings, err := db.ListReadings("nope")
	require.NoError(t, err)
	assert.Empty(t, readings)
}
