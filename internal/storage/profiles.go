// storage содержит контракт слоя хранилищ бота знакомств.
//
// Репозиторий анкет хранит одну запись на пользователя. Запись создаётся
// первым identity-событием (/start или /register), после чего отдельные
// поля анкеты дописываются строго через валидации контроллера регистрации.
// Набор обновляемых полей закрыт структурно: на каждое поле — свой типизированный
// метод с собственным SQL-запросом, никакой сборки имён колонок из строк.
package storage

import (
	"context"
	"errors"

	"github.com/avoronina/datingbot/internal/models"
)

// ErrNotFound — анкета не найдена.
var ErrNotFound = errors.New("not found")

// Profiles — контракт репозитория анкет.
type Profiles interface {
	// ProfileByID возвращает анкету по user_id.
	// Отсутствие записи — ErrNotFound; ошибки соединения/запроса — как есть.
	ProfileByID(ctx context.Context, userID int64) (*models.Profile, error)
	// UpsertIdentity атомарно создаёт запись с незаполненной анкетой либо,
	// если запись уже есть, обновляет только username. Одна операция
	// insert-or-update: никакого чтения с последующей вставкой.
	UpsertIdentity(ctx context.Context, userID int64, username string) error
	// SetAge записывает проверенный возраст. ErrNotFound, если записи нет.
	SetAge(ctx context.Context, userID int64, age int32) error
	// SetGender записывает проверенный пол. ErrNotFound, если записи нет.
	SetGender(ctx context.Context, userID int64, gender models.Gender) error
	// SetLookingFor записывает проверенное предпочтение поиска.
	// ErrNotFound, если записи нет.
	SetLookingFor(ctx context.Context, userID int64, lookingFor models.LookingFor) error
}

// ProfilesStorage — верхнеуровневый интерфейс хранилища анкет.
type ProfilesStorage interface {
	Profiles
	Close()
}
