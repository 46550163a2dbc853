// models содержит доменные сущности бота знакомств.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import "strings"

// Gender — внутренний enum пола.
type Gender int8

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
)

// String возвращает каноническое текстовое значение для БД.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	default:
		return ""
	}
}

// GenderFromString восстанавливает enum из канонического значения БД.
func GenderFromString(s string) Gender {
	switch s {
	case "M":
		return GenderMale
	case "F":
		return GenderFemale
	default:
		return GenderUnspecified
	}
}

// ParseGender разбирает ответ пользователя на вопрос о поле.
// Принимаются односимвольные токены исходной локали («м»/«ж»)
// и латинские алиасы («m»/«f»), без учёта регистра.
func ParseGender(text string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "м", "m":
		return GenderMale, true
	case "ж", "f":
		return GenderFemale, true
	default:
		return GenderUnspecified, false
	}
}

// LookingFor — enum предпочтения поиска.
type LookingFor int8

const (
	LookingForUnspecified LookingFor = iota
	LookingForMale
	LookingForFemale
	LookingForAny
)

// String возвращает каноническое текстовое значение для БД.
func (l LookingFor) String() string {
	switch l {
	case LookingForMale:
		return "M"
	case LookingForFemale:
		return "F"
	case LookingForAny:
		return "any"
	default:
		return ""
	}
}

// LookingForFromString восстанавливает enum из канонического значения БД.
func LookingForFromString(s string) LookingFor {
	switch s {
	case "M":
		return LookingForMale
	case "F":
		return LookingForFemale
	case "any":
		return LookingForAny
	default:
		return LookingForUnspecified
	}
}

// ParseLookingFor разбирает ответ пользователя на вопрос «кого ищете».
// Принимаются токены исходной локали («м»/«ж»/«любые») и латинские
// алиасы («m»/«f»/«any»), без учёта регистра.
func ParseLookingFor(text string) (LookingFor, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "м", "m":
		return LookingForMale, true
	case "ж", "f":
		return LookingForFemale, true
	case "любые", "any":
		return LookingForAny, true
	default:
		return LookingForUnspecified, false
	}
}

// Пределы допустимого возраста анкеты.
const (
	MinAge = 10
	MaxAge = 120
)

// Profile — внутренняя доменная модель анкеты.
// UserID — идентификатор, выданный Telegram, иммутабелен.
// Age == 0 и Unspecified-значения enum означают «поле ещё не заполнено»:
// такие поля устанавливаются только через валидации контроллера регистрации.
type Profile struct {
	UserID     int64
	Username   string
	Age        int32
	Gender     Gender
	LookingFor LookingFor
}
