package warehouse

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"yt-warehouse/pkg/domain"
)

// memReader is an in-memory staging.Reader.
type memReader struct {
	channels  []domain.Channel
	playlists []domain.Playlist
	videos    []domain.Video
	comments  []domain.Comment
}

func (m *memReader) AllChannels(ctx context.Context) ([]domain.Channel, error) {
	return m.channels, nil
}
func (m *memReader) AllPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	return m.playlists, nil
}
func (m *memReader) AllVideos(ctx context.Context) ([]domain.Video, error) {
	return m.videos, nil
}
func (m *memReader) AllComments(ctx context.Context) ([]domain.Comment, error) {
	return m.comments, nil
}

func expectSchema(mock sqlmock.Sqlmock) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS channels").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS playlists").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS videos").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS comments").WillReturnResult(sqlmock.NewResult(0, 0))
}

func noRows() *sqlmock.Rows { return sqlmock.NewRows([]string{"1"}) }
func oneRow() *sqlmock.Rows { return sqlmock.NewRows([]string{"1"}).AddRow(1) }

func TestPropagateInsertsNewRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	reader := &memReader{
		channels: []domain.Channel{{
			ChannelID:   "UCxxx",
			ChannelName: "Acme",
			ChannelType: "N/A",
			VideoCount:  "2",
			ViewCount:   "100",
			SubsCount:   "N/A", // hidden: must become NULL, not 0
			PublishDate: "20170105",
		}},
		playlists: []domain.Playlist{{ChannelID: "UCxxx", PlaylistID: "PLyyy", PlaylistName: "Main"}},
		videos: []domain.Video{{
			ChannelID:    "UCxxx",
			VideoID:      "Vzzz",
			Title:        "First",
			PublishedAt:  "2022-03-15 10:30:00",
			ViewCount:    "100",
			LikeCount:    "N/A", // must coerce to 0
			DislikeCount: "N/A",
			CommentCount: "2",
			Duration:     "1:2:10",
		}},
		comments: []domain.Comment{{CommentID: "c1", VideoID: "Vzzz", CommenterName: "alice", CommentText: "hi", CommentPublishedAt: "2022-03-16 08:00:00"}},
	}

	expectSchema(mock)

	mock.ExpectQuery("SELECT 1 FROM channels").WithArgs("UCxxx").WillReturnRows(noRows())
	mock.ExpectExec("INSERT INTO channels").
		WithArgs("UCxxx", "Acme", "N/A", "", int64(2), int64(100), nil, "20170105", "", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery("SELECT 1 FROM playlists").WithArgs("PLyyy").WillReturnRows(noRows())
	mock.ExpectExec("INSERT INTO playlists").
		WithArgs("UCxxx", "PLyyy", "Main").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery("SELECT 1 FROM videos").WithArgs("Vzzz").WillReturnRows(noRows())
	mock.ExpectExec("INSERT INTO videos").
		WithArgs("UCxxx", "Vzzz", "First", "", "2022-03-15 10:30:00",
			int64(100), int64(0), int64(0), int64(2), int64(0),
			"1:2:10", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery("SELECT 1 FROM comments").WithArgs("c1").WillReturnRows(noRows())
	mock.ExpectQuery("SELECT 1 FROM videos").WithArgs("Vzzz").WillReturnRows(oneRow())
	mock.ExpectExec("INSERT INTO comments").
		WithArgs("c1", "Vzzz", "alice", "hi", "2022-03-16 08:00:00").
		WillReturnResult(sqlmock.NewResult(0, 1))

	propagator, err := NewPropagator(reader, db)
	if err != nil {
		t.Fatalf("NewPropagator: %v", err)
	}
	if err := propagator.Propagate(context.Background()); err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPropagateSkipsExistingRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	reader := &memReader{
		channels: []domain.Channel{{ChannelID: "UCxxx", ChannelName: "Acme"}},
		videos:   []domain.Video{{ChannelID: "UCxxx", VideoID: "Vzzz"}},
	}

	expectSchema(mock)
	// Both rows already present: no INSERT statements may run.
	mock.ExpectQuery("SELECT 1 FROM channels").WithArgs("UCxxx").WillReturnRows(oneRow())
	mock.ExpectQuery("SELECT 1 FROM videos").WithArgs("Vzzz").WillReturnRows(oneRow())

	propagator, _ := NewPropagator(reader, db)
	if err := propagator.Propagate(context.Background()); err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("rerun must be a no-op: %v", err)
	}
}

func TestPropagateDropsOrphanComment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	reader := &memReader{
		comments: []domain.Comment{{CommentID: "c9", VideoID: "Vmissing", CommenterName: "bob"}},
	}

	expectSchema(mock)
	mock.ExpectQuery("SELECT 1 FROM comments").WithArgs("c9").WillReturnRows(noRows())
	mock.ExpectQuery("SELECT 1 FROM videos").WithArgs("Vmissing").WillReturnRows(noRows())
	// No INSERT INTO comments expected: the orphan is dropped.

	propagator, _ := NewPropagator(reader, db)
	if err := propagator.Propagate(context.Background()); err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("orphan comment must be dropped, not inserted: %v", err)
	}
}

func TestPropagateRowFailureDoesNotAbortBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	reader := &memReader{
		playlists: []domain.Playlist{
			{ChannelID: "UCgone", PlaylistID: "PLbad"},
			{ChannelID: "UCxxx", PlaylistID: "PLok"},
		},
	}

	expectSchema(mock)
	mock.ExpectQuery("SELECT 1 FROM playlists").WithArgs("PLbad").WillReturnRows(noRows())
	mock.ExpectExec("INSERT INTO playlists").
		WithArgs("UCgone", "PLbad", "").
		WillReturnError(context.DeadlineExceeded) // any driver error
	mock.ExpectQuery("SELECT 1 FROM playlists").WithArgs("PLok").WillReturnRows(noRows())
	mock.ExpectExec("INSERT INTO playlists").
		WithArgs("UCxxx", "PLok", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	propagator, _ := NewPropagator(reader, db)
	if err := propagator.Propagate(context.Background()); err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("batch should continue past a failed row: %v", err)
	}
}

func TestCountOrZero(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"42", 42},
		{"0", 0},
		{"N/A", 0},
		{"", 0},
		{"not-a-number", 0},
	}
	for _, tt := range tests {
		if got := countOrZero(tt.in); got != tt.want {
			t.Errorf("countOrZero(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNullableCount(t *testing.T) {
	if got := nullableCount("7"); got != int64(7) {
		t.Errorf("nullableCount(7) = %v", got)
	}
	if got := nullableCount("N/A"); got != nil {
		t.Errorf("nullableCount(N/A) = %v, want nil", got)
	}
}
