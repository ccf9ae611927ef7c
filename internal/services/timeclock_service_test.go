package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/timeclock-api/internal/models"
	"github.com/yukikurage/timeclock-api/internal/repository"
	"github.com/yukikurage/timeclock-api/internal/storage"
	"github.com/yukikurage/timeclock-api/internal/testutil"
	"gorm.io/gorm"
)

type TimeClockServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	fs      afero.Fs
	service *TimeClockService
	now     time.Time
	worker  *models.User
	site    *models.Location
}

func (suite *TimeClockServiceTestSuite) SetupTest() {
	suite.db = testutil.NewTestDB(suite.T())
	suite.fs = afero.NewMemMapFs()

	photos, err := storage.NewFilePhotoStore(suite.fs, "uploads")
	suite.Require().NoError(err)

	suite.service = NewTimeClockService(repository.NewTimeLogRepository(suite.db), photos)
	suite.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.service.SetClock(func() time.Time { return suite.now })

	suite.worker = testutil.CreateUser(suite.T(), suite.db, "bob", "pw", models.RoleWorker)
	suite.site = testutil.CreateLocation(suite.T(), suite.db, "Site A", 1, 1, 100)
}

func (suite *TimeClockServiceTestSuite) assign() {
	testutil.CreateAssignment(suite.T(), suite.db, suite.worker.ID, suite.site.ID, models.AssignmentStatusActive, suite.now)
}

func (suite *TimeClockServiceTestSuite) countLogs() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&models.TimeLog{}).Count(&count).Error)
	return count
}

func (suite *TimeClockServiceTestSuite) TestClockInWithoutAssignment() {
	_, err := suite.service.ClockIn(context.Background(), ClockInput{UserID: suite.worker.ID})
	suite.ErrorIs(err, ErrNoActiveAssignment)
	suite.Zero(suite.countLogs())
}

func (suite *TimeClockServiceTestSuite) TestClockInThenOut() {
	suite.assign()
	ctx := context.Background()

	log, err := suite.service.ClockIn(ctx, ClockInput{UserID: suite.worker.ID, Lat: testutil.Float(1), Lon: testutil.Float(1)})
	suite.Require().NoError(err)
	suite.NotZero(log.ID)
	suite.Nil(log.ClockOutTime)
	suite.True(log.ClockInTime.Equal(suite.now))

	suite.now = suite.now.Add(90 * time.Minute)
	closed, err := suite.service.ClockOut(ctx, ClockInput{UserID: suite.worker.ID, Lat: testutil.Float(1), Lon: testutil.Float(1)})
	suite.Require().NoError(err)
	suite.Equal(log.ID, closed.ID)
	suite.Require().NotNil(closed.ClockOutTime)
	suite.True(closed.ClockOutTime.After(closed.ClockInTime))
	suite.InDelta(90, closed.DurationMinutes(), 1e-9)
}

func (suite *TimeClockServiceTestSuite) TestClockOutWithoutOpenLog() {
	suite.assign()

	_, err := suite.service.ClockOut(context.Background(), ClockInput{UserID: suite.worker.ID})
	suite.ErrorIs(err, ErrNoOpenTimeLog)
	suite.Zero(suite.countLogs())
}

func (suite *TimeClockServiceTestSuite) TestClockOutWithoutAssignment() {
	testutil.CreateTimeLog(suite.T(), suite.db, suite.worker.ID, suite.now, nil)

	_, err := suite.service.ClockOut(context.Background(), ClockInput{UserID: suite.worker.ID})
	suite.ErrorIs(err, ErrNoActiveAssignment)
}

func (suite *TimeClockServiceTestSuite) TestSubmitReportWithoutLog() {
	_, err := suite.service.SubmitReport(context.Background(), ReportInput{
		UserID: suite.worker.ID,
		Text:   "nothing",
		Photo:  &Photo{Filename: "a.jpg", Content: strings.NewReader("x")},
	})
	suite.ErrorIs(err, ErrNoTimeLog)

	files, err := afero.ReadDir(suite.fs, "uploads")
	suite.Require().NoError(err)
	suite.Empty(files)
}

func (suite *TimeClockServiceTestSuite) TestSubmitReportAttachesToLatestLog() {
	out := suite.now.Add(time.Hour)
	older := testutil.CreateTimeLog(suite.T(), suite.db, suite.worker.ID, suite.now, &out)
	// created later but with an earlier clock-in; still the target
	latest := testutil.CreateTimeLog(suite.T(), suite.db, suite.worker.ID, suite.now.Add(-48*time.Hour), nil)

	path, err := suite.service.SubmitReport(context.Background(), ReportInput{
		UserID: suite.worker.ID,
		Text:   "fixed the fence",
		Photo:  &Photo{Filename: "fence.PNG", Content: bytes.NewBufferString("png")},
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(path)
	suite.True(strings.HasPrefix(*path, "/uploads/"))
	suite.True(strings.HasSuffix(*path, ".png"))

	var stored models.TimeLog
	suite.Require().NoError(suite.db.First(&stored, latest.ID).Error)
	suite.Equal("fixed the fence", *stored.ReportText)
	suite.Equal(*path, *stored.PhotoPath)

	var untouched models.TimeLog
	suite.Require().NoError(suite.db.First(&untouched, older.ID).Error)
	suite.Nil(untouched.ReportText)

	content, err := afero.ReadFile(suite.fs, "uploads/"+strings.TrimPrefix(*path, "/uploads/"))
	suite.Require().NoError(err)
	suite.Equal("png", string(content))

	// a report without photo clears the previous path
	path, err = suite.service.SubmitReport(context.Background(), ReportInput{UserID: suite.worker.ID, Text: "second"})
	suite.Require().NoError(err)
	suite.Nil(path)
	var resubmitted models.TimeLog
	suite.Require().NoError(suite.db.First(&resubmitted, latest.ID).Error)
	suite.Equal("second", *resubmitted.ReportText)
	suite.Nil(resubmitted.PhotoPath)
}

func (suite *TimeClockServiceTestSuite) TestListLogs() {
	testutil.CreateTimeLog(suite.T(), suite.db, suite.worker.ID, suite.now, nil)

	logs, err := suite.service.ListLogs(context.Background())
	suite.Require().NoError(err)
	suite.Len(logs, 1)
	suite.Equal("bob", logs[0].User.Username)
}

func TestTimeClockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimeClockServiceTestSuite))
}

type failingPhotoStore struct{}

func (failingPhotoStore) Save(context.Context, string, io.Reader) (string, error) {
	return "", errors.New("disk full")
}

func TestTimeClockService_SubmitReportPhotoFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewTimeClockService(repository.NewTimeLogRepository(db), failingPhotoStore{})

	user := testutil.CreateUser(t, db, "bob", "pw", models.RoleWorker)
	log := testutil.CreateTimeLog(t, db, user.ID, time.Now(), nil)

	_, err := svc.SubmitReport(context.Background(), ReportInput{
		UserID: user.ID,
		Text:   "report",
		Photo:  &Photo{Filename: "a.jpg", Content: strings.NewReader("x")},
	})
	require.ErrorContains(t, err, "disk full")

	var stored models.TimeLog
	require.NoError(t, db.First(&stored, log.ID).Error)
	require.Nil(t, stored.ReportText)
}
