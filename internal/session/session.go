// session содержит транзиентное состояние диалога регистрации.
//
// Store — процессная карта user_id -> текущая стадия анкеты. Состояние
// живёт только в памяти: рестарт процесса теряет незавершённые регистрации,
// сами анкеты при этом остаются в БД. TTL у записей нет — поведение
// исходного сервиса сохранено.
package session

import "sync"

// Stage — стадия анкеты для одного пользователя.
type Stage int8

const (
	// StageIdle — активного диалога нет.
	StageIdle Stage = iota
	// StageAge — ожидается ответ с возрастом.
	StageAge
	// StageGender — ожидается ответ с полом.
	StageGender
	// StageLookingFor — ожидается ответ с предпочтением поиска.
	StageLookingFor
)

func (s Stage) String() string {
	switch s {
	case StageAge:
		return "awaiting_age"
	case StageGender:
		return "awaiting_gender"
	case StageLookingFor:
		return "awaiting_looking_for"
	default:
		return "idle"
	}
}

// shardCount — степень двойки, чтобы шардировать дешёвой маской.
const shardCount = 16

type shard struct {
	mu     sync.RWMutex
	stages map[int64]Stage
}

// Store — шардированная карта стадий. Блокировка пошардовая:
// пользователи из разных шардов не сериализуются друг о друга.
type Store struct {
	shards [shardCount]*shard
}

// NewStore создаёт пустой Store.
func NewStore() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i] = &shard{stages: make(map[int64]Stage)}
	}

	return s
}

func (s *Store) shardFor(userID int64) *shard {
	return s.shards[uint64(userID)&(shardCount-1)]
}

// Stage возвращает текущую стадию пользователя; для неизвестного — StageIdle.
func (s *Store) Stage(userID int64) Stage {
	sh := s.shardFor(userID)

	sh.mu.RLock()
	defer sh.mu.RUnlock()

	return sh.stages[userID]
}

// Set устанавливает стадию пользователя.
func (s *Store) Set(userID int64, stage Stage) {
	sh := s.shardFor(userID)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.stages[userID] = stage
}

// Clear сбрасывает пользователя в StageIdle и освобождает запись.
func (s *Store) Clear(userID int64) {
	sh := s.shardFor(userID)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	delete(sh.stages, userID)
}
