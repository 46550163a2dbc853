package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avoronina/datingbot/internal/models"
	"github.com/avoronina/datingbot/internal/pkg/log"
	"github.com/avoronina/datingbot/internal/session"
	"github.com/avoronina/datingbot/internal/storage"
)

// fallbackUsername подставляется, когда Telegram не отдаёт username.
const fallbackUsername = "NoUsername"

// AnswerResult — итог обработки одного ответа анкеты.
type AnswerResult struct {
	// Stage — стадия после обработки. При невалидном ответе равна текущей.
	Stage session.Stage
	// Completed — true, когда этим ответом анкета заполнена целиком.
	Completed bool
}

// Greet обрабатывает identity-событие (/start).
//
// Поведение:
//   - атомарно создаёт запись анкеты либо обновляет username существующей;
//   - сбрасывает диалог регистрации в Idle: начатая анкета молча
//     забывается, уже сохранённые в БД поля остаются.
//
// Ошибки: ErrInternal при отказе хранилища (стадия в этом случае не трогается).
func (s *Service) Greet(ctx context.Context, userID int64, username string) error {
	const op = "service/registration/Greet"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	username = strings.TrimSpace(username)
	if username == "" {
		username = fallbackUsername
	}

	if err := s.profiles.UpsertIdentity(ctx, userID, username); err != nil {
		lg.Error("storage error on UpsertIdentity", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.sessions.Clear(userID)

	return nil
}

// BeginRegistration запускает диалог анкеты (/register).
//
// Поведение:
//   - гарантирует наличие записи анкеты тем же атомарным upsert-ом,
//     что и Greet: /register без предшествующего /start тоже валиден;
//   - переводит пользователя на стадию возраста. Повторный /register
//     начинает анкету заново с первой стадии.
func (s *Service) BeginRegistration(ctx context.Context, userID int64, username string) error {
	const op = "service/registration/BeginRegistration"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	username = strings.TrimSpace(username)
	if username == "" {
		username = fallbackUsername
	}

	if err := s.profiles.UpsertIdentity(ctx, userID, username); err != nil {
		lg.Error("storage error on UpsertIdentity", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.sessions.Set(userID, session.StageAge)

	return nil
}

// Answer обрабатывает свободный текст как ответ текущей стадии анкеты.
//
// Порядок строго такой: валидация -> запись поля в БД -> продвижение стадии.
// Стадия продвигается только после успешной записи; при отказе хранилища
// пользователь остаётся на месте и может безопасно прислать тот же ответ ещё раз.
//
// Ошибки:
//   - ErrNoActiveSession — пользователь в Idle, текст анкете не принадлежит;
//   - ErrInvalidAnswer — ответ не прошёл валидацию, стадия и БД не изменены;
//   - ErrInternal — отказ хранилища, стадия не изменена.
func (s *Service) Answer(ctx context.Context, userID int64, text string) (AnswerResult, error) {
	const op = "service/registration/Answer"

	stage := s.sessions.Stage(userID)
	result := AnswerResult{Stage: stage}

	lg := log.From(ctx).With("op", op, "user_id", userID, "stage", stage.String())

	switch stage {
	case session.StageIdle:
		return result, fmt.Errorf("%s: %w", op, ErrNoActiveSession)

	case session.StageAge:
		age, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || age < models.MinAge || age > models.MaxAge {
			lg.Debug("invalid age answer")

			return result, fmt.Errorf("%s: %w", op, ErrInvalidAnswer)
		}

		if err := s.profiles.SetAge(ctx, userID, int32(age)); err != nil {
			lg.Error("storage error on SetAge", "err", err)

			return result, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		s.sessions.Set(userID, session.StageGender)
		result.Stage = session.StageGender

		return result, nil

	case session.StageGender:
		gender, ok := models.ParseGender(text)
		if !ok {
			lg.Debug("invalid gender answer")

			return result, fmt.Errorf("%s: %w", op, ErrInvalidAnswer)
		}

		if err := s.profiles.SetGender(ctx, userID, gender); err != nil {
			lg.Error("storage error on SetGender", "err", err)

			return result, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		s.sessions.Set(userID, session.StageLookingFor)
		result.Stage = session.StageLookingFor

		return result, nil

	case session.StageLookingFor:
		lookingFor, ok := models.ParseLookingFor(text)
		if !ok {
			lg.Debug("invalid looking_for answer")

			return result, fmt.Errorf("%s: %w", op, ErrInvalidAnswer)
		}

		if err := s.profiles.SetLookingFor(ctx, userID, lookingFor); err != nil {
			lg.Error("storage error on SetLookingFor", "err", err)

			return result, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		s.sessions.Clear(userID)
		result.Stage = session.StageIdle
		result.Completed = true

		lg.Info("registration completed")

		return result, nil

	default:
		lg.Error("unknown stage")

		return result, fmt.Errorf("%s: %w", op, ErrInternal)
	}
}

// Search проверяет анкету перед поиском собеседника.
//
// Проверяется только наличие записи, не заполненность полей — поведение
// исходного сервиса сохранено намеренно. Сам подбор собеседника
// не реализован, решение об ответе принимает транспорт.
//
// Ошибки:
//   - ErrNotRegistered — записи нет, пользователю предложат /register;
//   - ErrInternal — отказ хранилища.
func (s *Service) Search(ctx context.Context, userID int64) (*models.Profile, error) {
	const op = "service/registration/Search"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	profile, err := s.profiles.ProfileByID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Debug("profile not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotRegistered)
		default:
			lg.Error("storage error on ProfileByID", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return profile, nil
}

// StageOf возвращает текущую стадию диалога пользователя.
func (s *Service) StageOf(userID int64) session.Stage {
	return s.sessions.Stage(userID)
}
