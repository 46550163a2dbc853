package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avoronina/datingbot/internal/models"
	"github.com/avoronina/datingbot/internal/storage"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета postgres (реализация анкет в profiles.go):
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — инициализируют схему через EnsureSchema (тот же DDL, что и миграция);
// — проверяют:
//    UpsertIdentity: создание записи с незаполненной анкетой, обновление
//      только username при повторе и устойчивость к конкурентным identity-событиям;
//    ProfileByID: успешный сценарий, NULL-поля и ErrNotFound на отсутствующую запись;
//    SetAge/SetGender/SetLookingFor: запись полей и ErrNotFound без записи;
//    поведение при истёкшем контексте (context deadline exceeded).
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// startPostgres — поднимает PostgreSQL через testcontainers-go,
// инициализирует схему и возвращает хранилище с функцией очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*ProfilesStorage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting postgres container with image=%q", req.Image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
		ProviderType:     tc.ProviderDocker,
	})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	st, err := New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, st.EnsureSchema(ctx))

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func TestIntegration_UpsertIdentity_CreatesEmptyProfile(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	const uid int64 = 42

	require.NoError(t, st.UpsertIdentity(ctx, uid, "alice"))

	got, err := st.ProfileByID(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, uid, got.UserID)
	require.Equal(t, "alice", got.Username)
	require.Zero(t, got.Age)
	require.Equal(t, models.GenderUnspecified, got.Gender)
	require.Equal(t, models.LookingForUnspecified, got.LookingFor)
}

// Повторное identity-событие трогает только username, поля анкеты остаются.
func TestIntegration_UpsertIdentity_UpdatesUsernameOnly(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	const uid int64 = 42

	require.NoError(t, st.UpsertIdentity(ctx, uid, "alice"))
	require.NoError(t, st.SetAge(ctx, uid, 25))
	require.NoError(t, st.SetGender(ctx, uid, models.GenderFemale))

	require.NoError(t, st.UpsertIdentity(ctx, uid, "alice_new"))

	got, err := st.ProfileByID(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, "alice_new", got.Username)
	require.EqualValues(t, 25, got.Age)
	require.Equal(t, models.GenderFemale, got.Gender)
}

// Конкурентные identity-события одного нового пользователя: upsert атомарен,
// дубликатов и ошибок нет.
func TestIntegration_UpsertIdentity_ConcurrentFirstContact(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	const uid int64 = 77
	const workers = 16

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- st.UpsertIdentity(ctx, uid, fmt.Sprintf("name-%d", i))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := st.ProfileByID(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, uid, got.UserID)
}

func TestIntegration_ProfileByID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.ProfileByID(context.Background(), 9999)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// Полный цикл записи полей анкеты.
func TestIntegration_SetFields_RoundTrip(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	const uid int64 = 42

	require.NoError(t, st.UpsertIdentity(ctx, uid, "test"))
	require.NoError(t, st.SetAge(ctx, uid, 15))
	require.NoError(t, st.SetGender(ctx, uid, models.GenderMale))
	require.NoError(t, st.SetLookingFor(ctx, uid, models.LookingForAny))

	got, err := st.ProfileByID(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, &models.Profile{
		UserID:     uid,
		Username:   "test",
		Age:        15,
		Gender:     models.GenderMale,
		LookingFor: models.LookingForAny,
	}, got)
}

// Запись поля без существующей записи: ErrNotFound.
func TestIntegration_SetFields_NoRow(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	const uid int64 = 9999

	require.ErrorIs(t, st.SetAge(ctx, uid, 15), storage.ErrNotFound)
	require.ErrorIs(t, st.SetGender(ctx, uid, models.GenderMale), storage.ErrNotFound)
	require.ErrorIs(t, st.SetLookingFor(ctx, uid, models.LookingForAny), storage.ErrNotFound)
}

// Истёкший контекст: операции возвращают ошибку, не зависают.
func TestIntegration_ExpiredContext(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	require.Error(t, st.UpsertIdentity(ctx, 42, "late"))

	_, err := st.ProfileByID(ctx, 42)
	require.Error(t, err)
	require.NotErrorIs(t, err, storage.ErrNotFound)
}
