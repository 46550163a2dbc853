// postgres предоставляет реализацию storage.ProfilesStorage на базе PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/avoronina/datingbot/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfilesStorage struct {
	db *pgxpool.Pool
}

// New создает и инициализирует пул соединений к PostgreSQL.
// Пул нужен, чтобы параллельные per-user воркеры не конкурировали
// за единственное соединение.
func New(ctx context.Context, dbURL string) (*ProfilesStorage, error) {
	const op = "storage/postgres/New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &ProfilesStorage{db: db}, nil
}

// schemaDDL повторяет migrations/1_init_users.up.sql: исходный сервис
// создавал таблицу сам при старте, это поведение сохранено.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
    user_id     BIGINT PRIMARY KEY,
    username    TEXT,
    age         INT,
    gender      TEXT,
    looking_for TEXT
);
`

// EnsureSchema создаёт таблицу users, если её ещё нет.
// Вызывается один раз при старте процесса.
func (s *ProfilesStorage) EnsureSchema(ctx context.Context) error {
	const op = "storage/postgres/EnsureSchema"

	if _, err := s.db.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close закрывает пул соединений.
// Должен вызываться при остановке приложения.
func (s *ProfilesStorage) Close() {
	s.db.Close()
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.ProfilesStorage = (*ProfilesStorage)(nil)
