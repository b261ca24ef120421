package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestByPhone_Found(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOtpRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `otp_codes` WHERE phone_number").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "phone_number", "code", "expires_at", "is_verified"}).
			AddRow(3, "09123456789", "1234", time.Now().Add(5*time.Minute), false))

	otp, err := repo.LatestByPhone("09123456789")
	require.NoError(t, err)
	require.NotNil(t, otp)
	assert.Equal(t, "1234", otp.Code)
	assert.False(t, otp.IsVerified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestByPhone_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOtpRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `otp_codes` WHERE phone_number").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	otp, err := repo.LatestByPhone("09123456789")
	require.NoError(t, err)
	assert.Nil(t, otp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOtpMarkVerified(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOtpRepository(db)

	mock.ExpectExec("UPDATE `otp_codes` SET `is_verified`").
		WithArgs(true, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkVerified(3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpiredBefore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOtpRepository(db)

	cutoff := time.Now().Add(-24 * time.Hour)
	mock.ExpectExec("DELETE FROM `otp_codes` WHERE expires_at").
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := repo.DeleteExpiredBefore(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
