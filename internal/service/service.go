// service содержит бизнес-логику бота знакомств:
// - identity-события (/start): upsert анкеты и сброс диалога;
// - конечный автомат регистрации (возраст -> пол -> предпочтение);
// - проверку анкеты перед поиском собеседника.
package service

import (
	"errors"

	"github.com/avoronina/datingbot/internal/session"
	"github.com/avoronina/datingbot/internal/storage"
)

var (
	// ErrInvalidAnswer — ответ не прошёл валидацию текущей стадии.
	// Стадия и БД при этом не меняются, пользователя переспрашивают.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrNoActiveSession — свободный текст без активного диалога регистрации.
	ErrNoActiveSession = errors.New("no active session")
	// ErrNotRegistered — анкета пользователя отсутствует в БД.
	ErrNotRegistered = errors.New("not registered")
	// ErrInternal — ошибка хранилища. Стадия не продвинута,
	// повтор того же ответа безопасен.
	ErrInternal = errors.New("internal")
)

// Service — контроллер диалога регистрации поверх репозитория анкет
// и транзиентного хранилища стадий.
type Service struct {
	profiles storage.Profiles
	sessions *session.Store
}

// New создает новый экземпляр Service.
func New(profiles storage.Profiles, sessions *session.Store) *Service {
	return &Service{
		profiles: profiles,
		sessions: sessions,
	}
}
