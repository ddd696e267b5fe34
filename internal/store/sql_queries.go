package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/models"
)

var (
	userColumns = []string{"id", "username", "hashed_password", "created_at"}
	noteColumns = []string{"id", "title", "body", "user_id", "created_at", "updated_at"}
)

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder().
		Insert(user.TableName()).
		Columns("username", "hashed_password", "created_at").
		Values(user.Username, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func (db *DB) buildCreateNoteQuery(note models.Note) (string, []any, error) {
	return db.builder().
		Insert(note.TableName()).
		Columns("title", "body", "user_id", "created_at", "updated_at").
		Values(note.Title, note.Body, note.UserID, note.CreatedAt, note.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildListNotesQuery(request models.ListNotesRequest) (string, []any, error) {
	return db.builder().
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": request.UserID}).
		OrderBy("id ASC").
		Limit(request.Limit).
		Offset(request.Offset).
		ToSql()
}

func (db *DB) buildGetNoteQuery(noteID, userID int64) (string, []any, error) {
	return db.builder().
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

// buildUpdateNoteQuery sets only the fields present in update plus
// updated_at, which is taken from note.
func (db *DB) buildUpdateNoteQuery(note models.Note, update models.NoteUpdate) (string, []any, error) {
	query := db.builder().
		Update(note.TableName()).
		Set("updated_at", note.UpdatedAt)

	if update.Title.Set && update.Title.Value != nil {
		query = query.Set("title", *update.Title.Value)
	}
	if update.Body.Set {
		query = query.Set("body", update.Body.Value)
	}

	return query.
		Where(sq.Eq{"id": note.NoteID, "user_id": note.UserID}).
		ToSql()
}

func (db *DB) buildDeleteNoteQuery(noteID, userID int64) (string, []any, error) {
	return db.builder().
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}
