package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})
	return db, mock
}

func uniqueViolationErr(constraint string) error {
	return &pgconn.PgError{Code: uniqueViolation, ConstraintName: constraint}
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), ErrNotFound)

	err := translateError(uniqueViolationErr("idx_users_name"))
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "idx_users_name")

	other := &pgconn.PgError{Code: "23503"}
	assert.Same(t, error(other), translateError(other))
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user := &models.User{Name: "alice", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	assert.EqualValues(t, 1, user.ID)
}

func TestUserRepository_CreateUserDuplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(uniqueViolationErr("idx_users_name"))
	mock.ExpectRollback()

	err := repo.CreateUser(context.Background(), &models.User{Name: "alice"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_GetUserByName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE name = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(4, "bob", time.Now()))

	user, err := repo.GetUserByName(context.Background(), "bob")
	require.NoError(t, err)
	assert.EqualValues(t, 4, user.ID)
	assert.Equal(t, "bob", user.Name)
}

func TestUserRepository_GetUserByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	_, err := repo.GetUserByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepository_GetAllPostsNewestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresPostRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "posts" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "content", "created_at"}).
			AddRow(2, 1, nil, "second", now).
			AddRow(1, 1, "t", "first", now.Add(-time.Hour)))

	posts, err := repo.GetAllPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.EqualValues(t, 2, posts[0].ID)
	assert.Nil(t, posts[0].Title)
	assert.Equal(t, "t", *posts[1].Title)
}

func TestPostRepository_UpdatePostWithoutTitle(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "content"=$1 WHERE id = $2`)).
		WithArgs("edited", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE "posts"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "content", "created_at"}).
			AddRow(5, 1, "kept", "edited", time.Now()))

	post, err := repo.UpdatePost(context.Background(), 5, "edited", nil)
	require.NoError(t, err)
	assert.Equal(t, "edited", post.Content)
	assert.Equal(t, "kept", *post.Title)
}

func TestPostRepository_UpdatePostMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresPostRepository(db)

	title := "new"
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := repo.UpdatePost(context.Background(), 5, "edited", &title)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepository_DeletePost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts" WHERE id = $1`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "posts"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.DeletePost(context.Background(), 3))
	assert.ErrorIs(t, repo.DeletePost(context.Background(), 3), ErrNotFound)
}

func TestCommentRepository_GetCommentsByPostID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresCommentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE parent_id = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "parent_id", "title", "content", "created_at"}).
			AddRow(1, 2, 7, nil, "hi", time.Now()))

	comments, err := repo.GetCommentsByPostID(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.EqualValues(t, 7, comments[0].ParentID)
}

func TestLikeRepository_CreateLikeDuplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "likes"`).
		WillReturnError(uniqueViolationErr("idx_likes_user_post"))
	mock.ExpectRollback()

	postID := uint(1)
	err := repo.CreateLike(context.Background(), &models.Like{UserID: 1, ParentPostID: &postID})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestLikeRepository_DeleteLikeMatchesNullParent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM "likes" WHERE user_id = $1 AND parent_post_id IS NULL AND parent_comment_id = $2`)).
		WithArgs(4, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	commentID := uint(9)
	deleted, err := repo.DeleteLike(context.Background(), 4, nil, &commentID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}

func TestLikeRepository_CountLikes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "likes" WHERE parent_post_id = $1 AND parent_comment_id IS NULL`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	postID := uint(2)
	count, err := repo.CountLikes(context.Background(), &postID, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestResourceRepository_OwnerOf(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresResourceRepository(db)

	mock.ExpectQuery(`SELECT .*user_id.* FROM "comments" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(12))
	mock.ExpectQuery(`SELECT .*user_id.* FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	owner, err := repo.OwnerOf(context.Background(), models.ResourceComment, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 12, owner)

	_, err = repo.OwnerOf(context.Background(), models.ResourcePost, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResourceRepository_OwnerOfStoreFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresResourceRepository(db)

	boom := errors.New("connection refused")
	mock.ExpectQuery(`FROM "posts"`).WillReturnError(boom)

	_, err := repo.OwnerOf(context.Background(), models.ResourcePost, 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}
