package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("opening sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening gorm: %v", err)
	}
	return db, mock
}

// Get is a read; a student without a PKV record must get an empty view back
// without a record row being created.
func TestPKVGetDoesNotCreateRecord(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(studentID.String()))
	mock.ExpectQuery(`SELECT (.+) FROM "pkv_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	record, err := NewPKVService(db).Get(studentID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.StudentID != studentID || len(record.Entries) != 0 {
		t.Errorf("expected an empty record for %s, got %+v", studentID, record)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database activity: %v", err)
	}
}
