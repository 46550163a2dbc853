package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronina/datingbot/internal/models"
	"github.com/avoronina/datingbot/internal/storage"
	"github.com/jackc/pgx/v5"
)

// userColumns — единый список колонок таблицы users,
// используемый в SELECT, чтобы гарантировать одинаковый порядок сканирования.
const userColumns = `
user_id, username, age, gender, looking_for
`

// scanProfile сканирует одну строку анкеты из результата запроса
// в доменную модель. Незаполненные поля анкеты лежат в БД как NULL
// и превращаются в нулевые значения доменных типов.
func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	var username *string
	var age *int32
	var gender, lookingFor *string

	if err := row.Scan(
		&profile.UserID,
		&username,
		&age,
		&gender,
		&lookingFor,
	); err != nil {
		return nil, err
	}

	if username != nil {
		profile.Username = *username
	}

	if age != nil {
		profile.Age = *age
	}

	if gender != nil {
		profile.Gender = models.GenderFromString(*gender)
	}

	if lookingFor != nil {
		profile.LookingFor = models.LookingForFromString(*lookingFor)
	}

	return &profile, nil
}

// ProfileByID возвращает анкету по user_id.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *ProfilesStorage) ProfileByID(ctx context.Context, userID int64) (*models.Profile, error) {
	const op = "storage/postgres/profiles/ProfileByID"

	q := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	row := s.db.QueryRow(ctx, q, userID)

	result, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UpsertIdentity создаёт запись либо обновляет только username существующей.
// Атомарный insert-or-update закрывает гонку двух одновременных первых
// обращений одного нового пользователя: check-then-insert здесь недопустим.
func (s *ProfilesStorage) UpsertIdentity(ctx context.Context, userID int64, username string) error {
	const op = "storage/postgres/profiles/UpsertIdentity"

	q := `
	INSERT INTO users (user_id, username)
	VALUES ($1, $2)
	ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username
	`

	if _, err := s.db.Exec(ctx, q, userID, username); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetAge записывает возраст. Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *ProfilesStorage) SetAge(ctx context.Context, userID int64, age int32) error {
	const op = "storage/postgres/profiles/SetAge"

	q := `UPDATE users SET age = $2 WHERE user_id = $1`

	tag, err := s.db.Exec(ctx, q, userID, age)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SetGender записывает пол. Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *ProfilesStorage) SetGender(ctx context.Context, userID int64, gender models.Gender) error {
	const op = "storage/postgres/profiles/SetGender"

	q := `UPDATE users SET gender = $2 WHERE user_id = $1`

	tag, err := s.db.Exec(ctx, q, userID, gender.String())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SetLookingFor записывает предпочтение поиска.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *ProfilesStorage) SetLookingFor(ctx context.Context, userID int64, lookingFor models.LookingFor) error {
	const op = "storage/postgres/profiles/SetLookingFor"

	q := `UPDATE users SET looking_for = $2 WHERE user_id = $1`

	tag, err := s.db.Exec(ctx, q, userID, lookingFor.String())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
