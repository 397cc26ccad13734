package services

import (
	"testing"
	"time"

	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReport_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())

	err := svc.SubmitReport(uuid.New(), models.TargetPost, uuid.New(), "   ")
	assert.ErrorIs(t, err, ErrInvalidReport)

	err = svc.SubmitReport(uuid.Nil, models.TargetPost, uuid.New(), "spam")
	assert.ErrorIs(t, err, ErrInvalidReport)
}

func TestSubmitReport_TargetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())
	reporter := createTestUser(t, db, "user")

	err := svc.SubmitReport(reporter.ID, models.TargetPost, uuid.New(), "spam")
	assert.ErrorIs(t, err, ErrTargetNotFound)

	// No orphaned report row may survive the aborted transaction.
	var count int64
	db.Model(&models.Report{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitReport_DuplicateSuppression(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())
	reporter := createTestUser(t, db, "user")
	owner := createTestUser(t, db, "user")
	post := createTestPost(t, db, owner.ID)

	require.NoError(t, svc.SubmitReport(reporter.ID, models.TargetPost, post.ID, "spam"))

	err := svc.SubmitReport(reporter.ID, models.TargetPost, post.ID, "spam again")
	assert.ErrorIs(t, err, ErrAlreadyReported)

	var count int64
	db.Model(&models.Report{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitReport_CounterBelowThreshold(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())
	reporter := createTestUser(t, db, "user")
	owner := createTestUser(t, db, "user")
	post := createTestPost(t, db, owner.ID)

	require.NoError(t, svc.SubmitReport(reporter.ID, models.TargetPost, post.ID, "spam"))

	var got models.Post
	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	assert.Equal(t, 1, got.ReportsCount)
	assert.False(t, got.IsHidden)
}

func TestSubmitReport_ThresholdCrossingHides(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())
	owner := createTestUser(t, db, "user")
	post := createTestPost(t, db, owner.ID)

	require.NoError(t, db.Model(&post).Update("reports_count", 2).Error)

	reporter := createTestUser(t, db, "user")
	require.NoError(t, svc.SubmitReport(reporter.ID, models.TargetPost, post.ID, "abuse"))

	var got models.Post
	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	assert.Equal(t, 3, got.ReportsCount)
	assert.True(t, got.IsHidden)
}

func TestSubmitReport_DailyLimitBoundary(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())
	reporter := createTestUser(t, db, "user")
	owner := createTestUser(t, db, "user")

	// Nine reports already filed today: the tenth succeeds.
	for i := 0; i < 9; i++ {
		report := models.Report{
			ReporterID: reporter.ID,
			TargetType: models.TargetPost,
			TargetID:   uuid.New(),
			Reason:     "spam",
		}
		require.NoError(t, db.Create(&report).Error)
	}

	post := createTestPost(t, db, owner.ID)
	require.NoError(t, svc.SubmitReport(reporter.ID, models.TargetPost, post.ID, "spam"))

	// Now at ten: the eleventh is rejected.
	other := createTestPost(t, db, owner.ID)
	err := svc.SubmitReport(reporter.ID, models.TargetPost, other.ID, "spam")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestSubmitReport_YesterdayDoesNotCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())
	reporter := createTestUser(t, db, "user")
	owner := createTestUser(t, db, "user")

	// Ten reports, all filed before today's midnight boundary.
	yesterday := time.Now().AddDate(0, 0, -1)
	for i := 0; i < 10; i++ {
		report := models.Report{
			ReporterID: reporter.ID,
			TargetType: models.TargetPost,
			TargetID:   uuid.New(),
			Reason:     "spam",
			CreatedAt:  yesterday,
		}
		require.NoError(t, db.Create(&report).Error)
	}

	post := createTestPost(t, db, owner.ID)
	assert.NoError(t, svc.SubmitReport(reporter.ID, models.TargetPost, post.ID, "spam"))
}

func TestSubmitReport_WorksAcrossTargetTypes(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())
	reporter := createTestUser(t, db, "user")
	owner := createTestUser(t, db, "user")
	listing := createTestAdoption(t, db, owner.ID)

	require.NoError(t, svc.SubmitReport(reporter.ID, models.TargetAdoption, listing.ID, "not a real cat"))

	var got models.Adoption
	require.NoError(t, db.First(&got, "id = ?", listing.ID).Error)
	assert.Equal(t, 1, got.ReportsCount)
}

// Mirrors the full moderation lifecycle: three distinct reporters hide the
// post, a fourth report still lands, and a repeat reporter is rejected.
func TestReportLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())

	a := createTestUser(t, db, "user")
	post := createTestPost(t, db, a.ID)

	b := createTestUser(t, db, "user")
	c := createTestUser(t, db, "user")
	d := createTestUser(t, db, "user")
	e := createTestUser(t, db, "user")

	require.NoError(t, svc.SubmitReport(b.ID, models.TargetPost, post.ID, "spam"))
	require.NoError(t, svc.SubmitReport(c.ID, models.TargetPost, post.ID, "spam"))

	var got models.Post
	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	assert.Equal(t, 2, got.ReportsCount)
	assert.False(t, got.IsHidden)

	require.NoError(t, svc.SubmitReport(d.ID, models.TargetPost, post.ID, "abuse"))

	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	assert.Equal(t, 3, got.ReportsCount)
	assert.True(t, got.IsHidden)

	// A later report still succeeds and keeps the post hidden.
	require.NoError(t, svc.SubmitReport(e.ID, models.TargetPost, post.ID, "spam"))
	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	assert.Equal(t, 4, got.ReportsCount)
	assert.True(t, got.IsHidden)

	err := svc.SubmitReport(b.ID, models.TargetPost, post.ID, "still spam")
	assert.ErrorIs(t, err, ErrAlreadyReported)
}

func TestListReports_NewestFirstCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())
	reporter := createTestUser(t, db, "user")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 60; i++ {
		report := models.Report{
			ReporterID: reporter.ID,
			TargetType: models.TargetPost,
			TargetID:   uuid.New(),
			Reason:     "spam",
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, db.Create(&report).Error)
	}

	reports, err := svc.ListReports(0)
	require.NoError(t, err)
	assert.Len(t, reports, 50)
	assert.True(t, reports[0].CreatedAt.After(reports[1].CreatedAt))
}
