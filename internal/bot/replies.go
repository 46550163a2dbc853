package bot

import "github.com/avoronina/datingbot/internal/session"

// Тексты ответов. Формулировки анкеты повторяют исходный сервис.
const (
	replyGreeting = "Привет! Я бот знакомств.\n\n" +
		"Используй /register, чтобы заполнить анкету, или /search, чтобы найти собеседника."

	replyPromptAge        = "Введите ваш возраст (число)."
	replyPromptGender     = "Введите ваш пол (М/Ж)."
	replyPromptLookingFor = "Кого ищете? (М/Ж/любые)"
	replyCompleted        = "Анкета заполнена! Можете использовать /search."

	replyBadAge        = "Введите реальный возраст (10–120)."
	replyBadGender     = "Пожалуйста, введите 'М' или 'Ж'."
	replyBadLookingFor = "Пожалуйста, введите 'М', 'Ж' или 'любые'."

	replyNeedRegister = "Сначала заполните анкету: /register"
	replySearchStub   = "Поиск собеседника пока не реализован.\n" +
		"Загляните позже — подбор пар появится в одном из обновлений."

	replyFallback = "Это простой бот для знакомств.\n" +
		"Используйте /start, /register или /search."

	replyStorageFailure = "Что-то пошло не так. Попробуйте ещё раз."
)

// promptFor возвращает вопрос очередной стадии анкеты.
func promptFor(stage session.Stage) string {
	switch stage {
	case session.StageAge:
		return replyPromptAge
	case session.StageGender:
		return replyPromptGender
	case session.StageLookingFor:
		return replyPromptLookingFor
	default:
		return replyCompleted
	}
}

// repromptFor возвращает переспрос стадии после невалидного ответа.
func repromptFor(stage session.Stage) string {
	switch stage {
	case session.StageAge:
		return replyBadAge
	case session.StageGender:
		return replyBadGender
	case session.StageLookingFor:
		return replyBadLookingFor
	default:
		return replyFallback
	}
}
